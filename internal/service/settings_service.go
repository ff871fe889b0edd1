package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/pkg/meetapi"
	"github.com/mmynk/trackmeet/pkg/meetapi/meetapiconnect"
)

// SettingsService implements the Connect SettingsService
type SettingsService struct {
	meetapiconnect.UnimplementedSettingsServiceHandler
	state       *State
	defaultName string
}

// NewSettingsService creates a SettingsService. defaultName is reported
// until a meet name has been saved.
func NewSettingsService(state *State, defaultName string) *SettingsService {
	return &SettingsService{state: state, defaultName: defaultName}
}

// Backup returns the whole meet state as one JSON document.
func (s *SettingsService) Backup(ctx context.Context, req *connect.Request[meetapi.BackupRequest]) (*connect.Response[meetapi.BackupResponse], error) {
	slog.Info("Backup request received")

	var data []byte
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		var err error
		data, err = json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode backup: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.Error("Backup failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Backup successful", "bytes", len(data))
	return connect.NewResponse(&meetapi.BackupResponse{Data: data}), nil
}

// DecodeBackup parses a document produced by Backup.
func DecodeBackup(data []byte) (*models.Snapshot, error) {
	if len(data) == 0 {
		return nil, invalidf("backup is empty")
	}
	snap := models.NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, invalidf("backup is not valid: %v", err)
	}
	if snap.RelayEntries == nil {
		snap.RelayEntries = make(map[string][]string)
	}
	if snap.FinalPositions == nil {
		snap.FinalPositions = make(models.FinalPositions)
	}
	return snap, nil
}

// Restore replaces the whole meet state with a backup. Confirm must be set.
func (s *SettingsService) Restore(ctx context.Context, req *connect.Request[meetapi.RestoreRequest]) (*connect.Response[meetapi.RestoreResponse], error) {
	slog.Info("Restore request received", "bytes", len(req.Msg.Data), "confirm", req.Msg.Confirm)

	if !req.Msg.Confirm {
		return nil, connectError(fmt.Errorf("%w: restoring replaces all meet data", ErrConfirmationRequired))
	}
	restored, err := DecodeBackup(req.Msg.Data)
	if err != nil {
		slog.Error("Restore failed", "error", err)
		return nil, connectError(err)
	}

	err = s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		*snap = *restored
		return storage.Keys, nil
	})
	if err != nil {
		slog.Error("Restore failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Restore successful",
		"schools", len(restored.Schools),
		"athletes", len(restored.Athletes),
		"events", len(restored.Events),
	)
	return connect.NewResponse(&meetapi.RestoreResponse{}), nil
}

// ClearData empties the named state slices, or every slice when none are
// named. Confirm must be set.
func (s *SettingsService) ClearData(ctx context.Context, req *connect.Request[meetapi.ClearDataRequest]) (*connect.Response[meetapi.ClearDataResponse], error) {
	slog.Info("ClearData request received", "slices", req.Msg.Slices, "confirm", req.Msg.Confirm)

	keys := req.Msg.Slices
	if len(keys) == 0 {
		keys = storage.Keys
	}
	for _, key := range keys {
		if !storage.IsKey(key) {
			return nil, connectError(invalidf("unknown data slice %q, expected one of %s", key, strings.Join(storage.Keys, ", ")))
		}
	}
	if !req.Msg.Confirm {
		return nil, connectError(fmt.Errorf("%w: clearing %s", ErrConfirmationRequired, strings.Join(keys, ", ")))
	}

	if err := s.state.Clear(ctx, keys...); err != nil {
		slog.Error("ClearData failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Data cleared", "slices", keys)
	return connect.NewResponse(&meetapi.ClearDataResponse{Cleared: keys}), nil
}

// GetMeetName returns the saved meet name, or the configured default.
func (s *SettingsService) GetMeetName(ctx context.Context, req *connect.Request[meetapi.GetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error) {
	name := s.defaultName
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		if snap.MeetName != "" {
			name = snap.MeetName
		}
		return nil
	})
	if err != nil {
		slog.Error("GetMeetName failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&meetapi.MeetNameResponse{Name: name}), nil
}

// SetMeetName saves the meet name shown on reports.
func (s *SettingsService) SetMeetName(ctx context.Context, req *connect.Request[meetapi.SetMeetNameRequest]) (*connect.Response[meetapi.MeetNameResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	slog.Info("SetMeetName request received", "name", name)

	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		snap.MeetName = name
		return []string{storage.KeyMeetName}, nil
	})
	if err != nil {
		slog.Error("SetMeetName failed", "error", err)
		return nil, connectError(err)
	}

	if name == "" {
		name = s.defaultName
	}
	return connect.NewResponse(&meetapi.MeetNameResponse{Name: name}), nil
}
