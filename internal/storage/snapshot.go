package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmynk/trackmeet/internal/models"
)

// LoadSnapshot reads every state slice into a snapshot. Missing slices are
// left empty.
func LoadSnapshot(ctx context.Context, s Store) (*models.Snapshot, error) {
	snap := models.NewSnapshot()
	targets := map[string]any{
		KeySchools:        &snap.Schools,
		KeyAthletes:       &snap.Athletes,
		KeyTrackEvents:    &snap.Events,
		KeyHeats:          &snap.Heats,
		KeyRelayEntries:   &snap.RelayEntries,
		KeyRelayTeams:     &snap.RelayTeams,
		KeyFinalPositions: &snap.FinalPositions,
		KeyMeetName:       &snap.MeetName,
	}
	for _, key := range Keys {
		data, err := s.Read(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if len(data) == 0 {
			continue
		}
		if err := json.Unmarshal(data, targets[key]); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
	}
	if snap.RelayEntries == nil {
		snap.RelayEntries = make(map[string][]string)
	}
	if snap.FinalPositions == nil {
		snap.FinalPositions = make(models.FinalPositions)
	}
	return snap, nil
}

// EncodeSlices encodes the named slices of snap. With no keys every slice
// is encoded.
func EncodeSlices(snap *models.Snapshot, keys ...string) (map[string][]byte, error) {
	if len(keys) == 0 {
		keys = Keys
	}
	values := make(map[string][]byte, len(keys))
	for _, key := range keys {
		var v any
		switch key {
		case KeySchools:
			v = nonNil(snap.Schools)
		case KeyAthletes:
			v = nonNil(snap.Athletes)
		case KeyTrackEvents:
			v = nonNil(snap.Events)
		case KeyHeats:
			v = nonNil(snap.Heats)
		case KeyRelayEntries:
			v = snap.RelayEntries
		case KeyRelayTeams:
			v = nonNil(snap.RelayTeams)
		case KeyFinalPositions:
			v = snap.FinalPositions
		case KeyMeetName:
			v = snap.MeetName
		default:
			return nil, fmt.Errorf("unknown state slice %q", key)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		values[key] = data
	}
	return values, nil
}

// SaveSnapshot writes the named slices of snap (all of them when keys is
// empty) in one atomic write.
func SaveSnapshot(ctx context.Context, s Store, snap *models.Snapshot, keys ...string) error {
	values, err := EncodeSlices(snap, keys...)
	if err != nil {
		return err
	}
	if err := s.WriteSlices(ctx, values); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// nonNil keeps empty slices encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
