package calculator

import "errors"

var (
	ErrPositionOutOfRange = errors.New("position must be between 1 and 8")
	ErrHeatNotFound       = errors.New("heat not found")
	ErrLaneNotFound       = errors.New("lane not found")
	ErrHeatFull           = errors.New("heat has no free lane")
	ErrEntrantNotInHeat   = errors.New("entrant not in heat")
	ErrDuplicateEntrant   = errors.New("entrant already placed in this event")
	ErrEntrantKind        = errors.New("entrant kind does not match event type")
)
