package service

import (
	"math/rand/v2"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/trackmeet/internal/metrics"
	"github.com/mmynk/trackmeet/internal/storage"
	"github.com/mmynk/trackmeet/pkg/meetapi/meetapiconnect"
)

// Options configures the meet services.
type Options struct {
	// ReferenceYear is the year ages are counted at. Zero means the current year.
	ReferenceYear int

	// MeetName is reported until a name has been saved.
	MeetName string

	// CacheTTL bounds how long computed standings are reused. Zero means five minutes.
	CacheTTL time.Duration

	// RandSource seeds heat allocation. Nil draws a fresh random seed.
	RandSource rand.Source

	// Metrics may be nil.
	Metrics *metrics.MeetMetrics
}

// Register mounts every meet service on mux and returns the shared state.
func Register(mux *http.ServeMux, store storage.Store, opts Options, handlerOpts ...connect.HandlerOption) *State {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	state := NewState(store, opts.Metrics)

	path, handler := meetapiconnect.NewRosterServiceHandler(NewRosterService(state, opts.ReferenceYear), handlerOpts...)
	mux.Handle(path, handler)

	path, handler = meetapiconnect.NewHeatServiceHandler(NewHeatService(state, opts.Metrics, opts.RandSource), handlerOpts...)
	mux.Handle(path, handler)

	path, handler = meetapiconnect.NewFinalsServiceHandler(NewFinalsService(state), handlerOpts...)
	mux.Handle(path, handler)

	path, handler = meetapiconnect.NewStandingsServiceHandler(NewStandingsService(state, opts.Metrics, opts.CacheTTL), handlerOpts...)
	mux.Handle(path, handler)

	path, handler = meetapiconnect.NewImportServiceHandler(NewImportService(state, opts.Metrics, opts.ReferenceYear), handlerOpts...)
	mux.Handle(path, handler)

	path, handler = meetapiconnect.NewSettingsServiceHandler(NewSettingsService(state, opts.MeetName), handlerOpts...)
	mux.Handle(path, handler)

	return state
}
