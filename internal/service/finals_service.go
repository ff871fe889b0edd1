package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/pkg/meetapi"
	"github.com/mmynk/trackmeet/pkg/meetapi/meetapiconnect"
)

// FinalsService implements the Connect FinalsService
type FinalsService struct {
	meetapiconnect.UnimplementedFinalsServiceHandler
	state *State
}

// NewFinalsService creates a new FinalsService.
func NewFinalsService(state *State) *FinalsService {
	return &FinalsService{state: state}
}

// ListFinalists seeds the final of an event from its heats and returns it in
// results order: recorded positions first, then by lane.
func (s *FinalsService) ListFinalists(ctx context.Context, req *connect.Request[meetapi.ListFinalistsRequest]) (*connect.Response[meetapi.ListFinalistsResponse], error) {
	eventID := req.Msg.EventID

	var finalists []meetapi.Finalist
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		if snap.Event(eventID) == nil {
			return notFound("event", eventID)
		}
		seeded := calculator.SeedFinalists(eventID, snap.Heats, snap.FinalPositions)
		calculator.OrderByResult(seeded)
		finalists = toAPIFinalists(snap, seeded)
		return nil
	})
	if err != nil {
		slog.Error("ListFinalists failed", "event_id", eventID, "error", err)
		return nil, connectError(err)
	}

	slog.Debug("ListFinalists successful", "event_id", eventID, "count", len(finalists))
	return connect.NewResponse(&meetapi.ListFinalistsResponse{Finalists: finalists}), nil
}

// SetFinalPosition records an entrant's final placing. Position 0 clears it.
func (s *FinalsService) SetFinalPosition(ctx context.Context, req *connect.Request[meetapi.SetFinalPositionRequest]) (*connect.Response[meetapi.SetFinalPositionResponse], error) {
	msg := req.Msg
	slog.Info("SetFinalPosition request received",
		"event_id", msg.EventID,
		"entrant_id", msg.EntrantID,
		"position", msg.Position,
	)

	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		event := snap.Event(msg.EventID)
		if event == nil {
			return nil, notFound("event", msg.EventID)
		}
		if event.IsRelay() {
			if snap.School(msg.EntrantID) == nil {
				return nil, notFound("school", msg.EntrantID)
			}
		} else if snap.Athlete(msg.EntrantID) == nil {
			return nil, notFound("athlete", msg.EntrantID)
		}

		key := models.FinalKey{EventID: msg.EventID, EntrantID: msg.EntrantID}
		if err := calculator.SetFinalPosition(snap.FinalPositions, key, msg.Position); err != nil {
			return nil, err
		}
		return []string{storage.KeyFinalPositions}, nil
	})
	if err != nil {
		slog.Error("SetFinalPosition failed", "event_id", msg.EventID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Final position recorded", "event_id", msg.EventID, "entrant_id", msg.EntrantID, "position", msg.Position)
	return connect.NewResponse(&meetapi.SetFinalPositionResponse{}), nil
}

// SchoolFinalistsReport lists every final each school has an entrant in.
func (s *FinalsService) SchoolFinalistsReport(ctx context.Context, req *connect.Request[meetapi.SchoolFinalistsReportRequest]) (*connect.Response[meetapi.SchoolFinalistsReportResponse], error) {
	var report []meetapi.SchoolFinalists
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		report = toAPISchoolFinalists(calculator.SchoolFinalistsReport(
			snap.Events, snap.Heats, snap.Athletes, snap.Schools, snap.FinalPositions,
		))
		return nil
	})
	if err != nil {
		slog.Error("SchoolFinalistsReport failed", "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&meetapi.SchoolFinalistsReportResponse{Schools: report}), nil
}
