package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/internal/storage"
)

var (
	// ErrInvalidArgument marks request validation failures.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfirmationRequired is returned by destructive operations called
	// without confirm set.
	ErrConfirmationRequired = errors.New("confirmation required")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, storage.ErrNotFound)
}

// connectError maps domain errors onto Connect codes.
func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, calculator.ErrHeatNotFound),
		errors.Is(err, calculator.ErrLaneNotFound),
		errors.Is(err, calculator.ErrEntrantNotInHeat):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, calculator.ErrPositionOutOfRange),
		errors.Is(err, calculator.ErrHeatFull),
		errors.Is(err, calculator.ErrDuplicateEntrant),
		errors.Is(err, calculator.ErrEntrantKind):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ErrConfirmationRequired):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
