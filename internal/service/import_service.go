package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/importer"
	"github.com/mmynk/trackmeet/internal/metrics"
	"github.com/mmynk/trackmeet/internal/models"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/pkg/meetapi"
	"github.com/mmynk/trackmeet/pkg/meetapi/meetapiconnect"
)

// ImportService implements the Connect ImportService
type ImportService struct {
	meetapiconnect.UnimplementedImportServiceHandler
	state    *State
	metrics  *metrics.MeetMetrics
	importer *importer.Importer
}

// NewImportService creates an ImportService deriving age categories against
// referenceYear (zero means the current year).
func NewImportService(state *State, m *metrics.MeetMetrics, referenceYear int) *ImportService {
	return &ImportService{
		state:    state,
		metrics:  m,
		importer: importer.New(referenceYear),
	}
}

func toImportResponse(res importer.Result) *meetapi.ImportResponse {
	resp := &meetapi.ImportResponse{
		Succeeded:  res.Succeeded,
		Duplicates: res.Duplicates,
		Failed:     res.Failed,
	}
	for _, e := range res.Errors {
		resp.Errors = append(resp.Errors, meetapi.RowError{Row: e.Row, Message: e.Message})
	}
	return resp
}

// ImportIndividualEntries adds athletes and event entries from an individual
// entries sheet. Valid rows are saved even when others fail.
func (s *ImportService) ImportIndividualEntries(ctx context.Context, req *connect.Request[meetapi.ImportIndividualEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error) {
	slog.Info("ImportIndividualEntries request received", "rows", len(req.Msg.Rows))

	rows := make([]importer.IndividualRow, len(req.Msg.Rows))
	for i, r := range req.Msg.Rows {
		rows[i] = importer.IndividualRow(r)
	}

	var res importer.Result
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		res = s.importer.ImportIndividual(snap, rows)
		if res.Succeeded == 0 {
			return nil, nil
		}
		return []string{storage.KeyAthletes}, nil
	})
	if err != nil {
		slog.Error("ImportIndividualEntries failed", "error", err)
		return nil, connectError(err)
	}

	s.metrics.RecordImport("individual", res.Succeeded, res.Duplicates, res.Failed)
	for _, e := range res.Errors {
		slog.Debug("Import row rejected", "row", e.Row, "reason", e.Message)
	}
	slog.Info("Individual entries imported",
		"succeeded", res.Succeeded,
		"duplicates", res.Duplicates,
		"failed", res.Failed,
	)
	return connect.NewResponse(toImportResponse(res)), nil
}

// ImportRelayEntries registers schools in relay events from a relay sheet.
func (s *ImportService) ImportRelayEntries(ctx context.Context, req *connect.Request[meetapi.ImportRelayEntriesRequest]) (*connect.Response[meetapi.ImportResponse], error) {
	slog.Info("ImportRelayEntries request received", "rows", len(req.Msg.Rows))

	rows := make([]importer.RelayRow, len(req.Msg.Rows))
	for i, r := range req.Msg.Rows {
		rows[i] = importer.RelayRow(r)
	}

	var res importer.Result
	err := s.state.Update(ctx, func(snap *models.Snapshot) ([]string, error) {
		res = s.importer.ImportRelay(snap, rows)
		if res.Succeeded == 0 {
			return nil, nil
		}
		return []string{storage.KeyRelayEntries}, nil
	})
	if err != nil {
		slog.Error("ImportRelayEntries failed", "error", err)
		return nil, connectError(err)
	}

	s.metrics.RecordImport("relay", res.Succeeded, res.Duplicates, res.Failed)
	slog.Info("Relay entries imported",
		"succeeded", res.Succeeded,
		"duplicates", res.Duplicates,
		"failed", res.Failed,
	)
	return connect.NewResponse(toImportResponse(res)), nil
}
