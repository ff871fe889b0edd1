package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/metrics"
)

// MetricsInterceptor returns a Connect interceptor recording the count and
// duration of every RPC by procedure and Connect code.
func MetricsInterceptor(m *metrics.MeetMetrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.RecordRPC(req.Spec().Procedure, code, time.Since(start).Seconds())
			return resp, err
		}
	}
}
