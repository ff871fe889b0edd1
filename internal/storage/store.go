// Package storage provides abstractions for persistent meet state.
package storage

import (
	"context"
	"errors"
)

// Keys of the state slices. Each slice is stored as one JSON document.
const (
	KeySchools        = "schools"
	KeyAthletes       = "athletes"
	KeyTrackEvents    = "trackEvents"
	KeyHeats          = "heats"
	KeyRelayEntries   = "relayEntries"
	KeyRelayTeams     = "relayTeams"
	KeyFinalPositions = "finalPositions"
	KeyMeetName       = "meetName"
)

// Keys lists every state slice in a stable order.
var Keys = []string{
	KeySchools,
	KeyAthletes,
	KeyTrackEvents,
	KeyHeats,
	KeyRelayEntries,
	KeyRelayTeams,
	KeyFinalPositions,
	KeyMeetName,
}

// ErrNotFound is returned when a school, athlete, event or heat id does not
// exist in the stored state.
var ErrNotFound = errors.New("not found")

// Store defines the key-value contract the meet state is persisted through.
// This abstraction allows swapping storage backends (SQLite, browser storage
// behind an API, etc.) without changing the service layer.
type Store interface {
	// Read returns the value stored under key.
	// A key that was never written reads as nil with no error.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error

	// WriteSlices stores several keys at once. Either every key is written
	// or none is.
	WriteSlices(ctx context.Context, values map[string][]byte) error

	// Clear deletes the given keys. Unknown keys are ignored.
	Clear(ctx context.Context, keys ...string) error

	// Close releases any resources held by the store.
	Close() error
}

// IsKey reports whether key names a state slice.
func IsKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
