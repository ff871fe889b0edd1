package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/patrickmn/go-cache"

	"github.com/mmynk/trackmeet/internal/calculator"
	"github.com/mmynk/trackmeet/internal/metrics"
	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/pkg/meetapi"
	"github.com/mmynk/trackmeet/pkg/meetapi/meetapiconnect"
)

const standingsCacheKey = "standings"

// StandingsService implements the Connect StandingsService. Computed
// standings are cached until the next write to the meet state.
type StandingsService struct {
	meetapiconnect.UnimplementedStandingsServiceHandler
	state   *State
	metrics *metrics.MeetMetrics
	cache   *cache.Cache
}

// NewStandingsService creates a StandingsService caching results for ttl.
func NewStandingsService(state *State, m *metrics.MeetMetrics, ttl time.Duration) *StandingsService {
	s := &StandingsService{
		state:   state,
		metrics: m,
		cache:   cache.New(ttl, 2*ttl),
	}
	state.OnChange(s.cache.Flush)
	return s
}

// GetTeamPoints returns the team standings and any final positions that
// could not be scored.
func (s *StandingsService) GetTeamPoints(ctx context.Context, req *connect.Request[meetapi.GetTeamPointsRequest]) (*connect.Response[meetapi.GetTeamPointsResponse], error) {
	if cached, ok := s.cache.Get(standingsCacheKey); ok {
		s.metrics.RecordStandingsLookup(metrics.ResultHit)
		return connect.NewResponse(cached.(*meetapi.GetTeamPointsResponse)), nil
	}
	s.metrics.RecordStandingsLookup(metrics.ResultMiss)

	var (
		standings []calculator.TeamStanding
		warnings  []calculator.Warning
		resp      *meetapi.GetTeamPointsResponse
	)
	err := s.state.View(ctx, func(snap *models.Snapshot) error {
		standings, warnings = calculator.CalculateTeamPoints(snap.FinalPositions, snap.Events, snap.Athletes, snap.Schools)
		resp = &meetapi.GetTeamPointsResponse{
			Standings: toAPIStandings(standings),
			Warnings:  toAPIWarnings(warnings),
		}
		// Stored while the state lock is held so a concurrent write's flush
		// cannot run before it.
		s.cache.SetDefault(standingsCacheKey, resp)
		return nil
	})
	if err != nil {
		slog.Error("GetTeamPoints failed", "error", err)
		return nil, connectError(err)
	}

	for _, w := range warnings {
		slog.Warn("Final position not scored",
			"event_id", w.EventID,
			"entrant_id", w.EntrantID,
			"position", w.Position,
			"reason", w.Message,
		)
	}
	s.metrics.RecordStandingsWarnings(len(warnings))

	slog.Info("GetTeamPoints successful", "schools", len(standings), "warnings", len(warnings))
	return connect.NewResponse(resp), nil
}
