package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/internal/metrics"
	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/pkg/meetapi"
	"github.com/mmynk/trackmeet/pkg/meetapi/meetapiconnect"
)

// HeatService implements the Connect HeatService
type HeatService struct {
	meetapiconnect.UnimplementedHeatServiceHandler
	state   *State
	metrics *metrics.MeetMetrics

	// allocator is only used inside State.Update, which serializes access
	// to its random source.
	allocator *calculator.HeatAllocator
}

// NewHeatService creates a HeatService. src seeds the heat shuffles; nil
// draws a fresh random seed.
func NewHeatService(state *State, m *metrics.MeetMetrics, src rand.Source) *HeatService {
	return &HeatService{
		state:     state,
		metrics:   m,
		allocator: calculator.NewHeatAllocator(src),
	}
}

// GenerateHeats builds the heats of an event from its current entries and
// replaces any existing heats in one write, clearing the event's recorded
// final positions. Existing heats are only replaced when confirm is set.
func (s *HeatService) GenerateHeats(ctx context.Context, req *connect.Request[meetapi.GenerateHeatsRequest]) (*connect.Response[meetapi.GenerateHeatsResponse], error) {
	eventID := req.Msg.EventID
	slog.Info("GenerateHeats request received", "event_id", eventID, "confirm", req.Msg.Confirm)

	var (
		heats    []meetapi.Heat
		direct   bool
		entrants int
	)
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		event := snap.Event(eventID)
		if event == nil {
			return nil, notFound("event", eventID)
		}
		if existing := snap.EventHeats(eventID); len(existing) > 0 && !req.Msg.Confirm {
			return nil, fmt.Errorf("%w: %s already has %d heats", ErrConfirmationRequired, event.DisplayName(), len(existing))
		}

		entries := calculator.ResolveEntries(event, snap.Athletes, snap.RelayEntries[eventID], snap.Schools)
		generated := s.allocator.Generate(event, entries)
		entrants = len(entries)
		direct = len(generated) == 1 && generated[0].IsFinals

		snap.ReplaceEventHeats(eventID, generated)
		snap.FinalPositions.DeleteEvent(eventID)
		heats = toAPIHeats(snap, generated)
		return []string{storage.KeyHeats, storage.KeyFinalPositions}, nil
	})
	if err != nil {
		slog.Error("GenerateHeats failed", "event_id", eventID, "error", err)
		return nil, connectError(err)
	}

	mode := metrics.ModeHeats
	if direct {
		mode = metrics.ModeDirectFinals
	}
	s.metrics.RecordHeatGeneration(mode, entrants)

	slog.Info("Heats generated",
		"event_id", eventID,
		"entrants", entrants,
		"heat_count", len(heats),
		"direct_finals", direct,
	)
	return connect.NewResponse(&meetapi.GenerateHeatsResponse{Heats: heats, DirectFinals: direct}), nil
}

// ListHeats returns the heats of an event by heat number.
func (s *HeatService) ListHeats(ctx context.Context, req *connect.Request[meetapi.ListHeatsRequest]) (*connect.Response[meetapi.ListHeatsResponse], error) {
	eventID := req.Msg.EventID

	var heats []meetapi.Heat
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		if snap.Event(eventID) == nil {
			return notFound("event", eventID)
		}
		eventHeats := snap.EventHeats(eventID)
		slices.SortStableFunc(eventHeats, func(a, b models.Heat) int { return a.HeatNumber - b.HeatNumber })
		heats = toAPIHeats(snap, eventHeats)
		return nil
	})
	if err != nil {
		slog.Error("ListHeats failed", "event_id", eventID, "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&meetapi.ListHeatsResponse{Heats: heats}), nil
}

// RecordHeatPosition sets or clears (position 0) a lane's heat position.
func (s *HeatService) RecordHeatPosition(ctx context.Context, req *connect.Request[meetapi.RecordHeatPositionRequest]) (*connect.Response[meetapi.RecordHeatPositionResponse], error) {
	msg := req.Msg
	slog.Info("RecordHeatPosition request received",
		"heat_id", msg.HeatID,
		"lane", msg.Lane,
		"position", msg.Position,
	)

	var heat meetapi.Heat
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		if err := calculator.RecordHeatPosition(snap.Heats, msg.HeatID, msg.Lane, msg.Position); err != nil {
			return nil, err
		}
		heat = toAPIHeat(snap, *snap.Heat(msg.HeatID))
		return []string{storage.KeyHeats}, nil
	})
	if err != nil {
		slog.Error("RecordHeatPosition failed", "heat_id", msg.HeatID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Heat position recorded", "heat_id", msg.HeatID, "status", heat.Status)
	return connect.NewResponse(&meetapi.RecordHeatPositionResponse{Heat: heat}), nil
}

// heatEvent returns the heat and its event, or a not found error.
func heatEvent(snap *models.Snapshot, heatID string) (*models.Heat, *models.TrackEvent, error) {
	heat := snap.Heat(heatID)
	if heat == nil {
		return nil, nil, fmt.Errorf("%w: %s", calculator.ErrHeatNotFound, heatID)
	}
	event := snap.Event(heat.EventID)
	if event == nil {
		return nil, nil, notFound("event", heat.EventID)
	}
	return heat, event, nil
}

// AddEntrant places an athlete, or a school in relay events, in the lowest
// free lane of a heat. A relay school is also registered in the event's
// entries.
func (s *HeatService) AddEntrant(ctx context.Context, req *connect.Request[meetapi.AddEntrantRequest]) (*connect.Response[meetapi.AddEntrantResponse], error) {
	msg := req.Msg
	slog.Info("AddEntrant request received", "heat_id", msg.HeatID, "entrant_id", msg.EntrantID)

	var heat meetapi.Heat
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		_, event, err := heatEvent(snap, msg.HeatID)
		if err != nil {
			return nil, err
		}
		if event.IsRelay() {
			if snap.School(msg.EntrantID) == nil {
				return nil, notFound("school", msg.EntrantID)
			}
		} else if snap.Athlete(msg.EntrantID) == nil {
			return nil, notFound("athlete", msg.EntrantID)
		}

		if err := calculator.AddEntrant(snap.Heats, msg.HeatID, event.Entrant(msg.EntrantID)); err != nil {
			return nil, err
		}
		heat = toAPIHeat(snap, *snap.Heat(msg.HeatID))

		keys := []string{storage.KeyHeats}
		if event.IsRelay() && !slices.Contains(snap.RelayEntries[event.ID], msg.EntrantID) {
			snap.RelayEntries[event.ID] = append(snap.RelayEntries[event.ID], msg.EntrantID)
			keys = append(keys, storage.KeyRelayEntries)
		}
		return keys, nil
	})
	if err != nil {
		slog.Error("AddEntrant failed", "heat_id", msg.HeatID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Entrant added", "heat_id", msg.HeatID, "entrant_id", msg.EntrantID)
	return connect.NewResponse(&meetapi.AddEntrantResponse{Heat: heat}), nil
}

// RemoveEntrant takes an entrant out of a heat along with its final position
// in the event. A relay school is also withdrawn from the event's entries.
func (s *HeatService) RemoveEntrant(ctx context.Context, req *connect.Request[meetapi.RemoveEntrantRequest]) (*connect.Response[meetapi.RemoveEntrantResponse], error) {
	msg := req.Msg
	slog.Info("RemoveEntrant request received", "heat_id", msg.HeatID, "entrant_id", msg.EntrantID)

	var heat meetapi.Heat
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		_, event, err := heatEvent(snap, msg.HeatID)
		if err != nil {
			return nil, err
		}
		if err := calculator.RemoveEntrant(snap.Heats, msg.HeatID, msg.EntrantID); err != nil {
			return nil, err
		}
		heat = toAPIHeat(snap, *snap.Heat(msg.HeatID))
		delete(snap.FinalPositions, models.FinalKey{EventID: event.ID, EntrantID: msg.EntrantID})

		keys := []string{storage.KeyHeats, storage.KeyFinalPositions}
		if event.IsRelay() {
			snap.RelayEntries[event.ID] = slices.DeleteFunc(snap.RelayEntries[event.ID], func(id string) bool {
				return id == msg.EntrantID
			})
			keys = append(keys, storage.KeyRelayEntries)
		}
		return keys, nil
	})
	if err != nil {
		slog.Error("RemoveEntrant failed", "heat_id", msg.HeatID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Entrant removed", "heat_id", msg.HeatID, "entrant_id", msg.EntrantID)
	return connect.NewResponse(&meetapi.RemoveEntrantResponse{Heat: heat}), nil
}
