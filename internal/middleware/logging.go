// Package middleware holds the Connect interceptors wrapped around every meet service.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
)

// readOnlyPrefixes mark procedures that only read state. They are logged at
// debug level so polling screens do not flood the log.
var readOnlyPrefixes = []string{"List", "Get", "Backup", "SchoolFinalistsReport"}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the service, method, duration, and any error codes/messages.
// A nil logger uses slog.Default().
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			service, method := splitProcedure(req.Spec().Procedure)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					logger.Warn("RPC error",
						"service", service,
						"method", method,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"duration_ms", duration,
					)
				} else {
					logger.Error("RPC error",
						"service", service,
						"method", method,
						"error", err,
						"duration_ms", duration,
					)
				}
				return resp, err
			}

			level := slog.LevelInfo
			if isReadOnly(method) {
				level = slog.LevelDebug
			}
			logger.Log(ctx, level, "RPC ok",
				"service", service,
				"method", method,
				"peer", req.Peer().Addr,
				"duration_ms", duration,
			)
			return resp, nil
		}
	}
}

// splitProcedure turns "/trackmeet.v1.HeatService/GenerateHeats" into
// ("HeatService", "GenerateHeats").
func splitProcedure(procedure string) (string, string) {
	procedure = strings.TrimPrefix(procedure, "/")
	service, method, ok := strings.Cut(procedure, "/")
	if !ok {
		return "", procedure
	}
	if i := strings.LastIndex(service, "."); i >= 0 {
		service = service[i+1:]
	}
	return service, method
}

func isReadOnly(method string) bool {
	for _, p := range readOnlyPrefixes {
		if strings.HasPrefix(method, p) {
			return true
		}
	}
	return false
}
