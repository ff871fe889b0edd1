// Package metrics provides Prometheus metrics for the meet server
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label values shared by the recording methods.
const (
	StatusSuccess = "success"
	StatusError   = "error"

	ResultHit  = "hit"
	ResultMiss = "miss"

	ModeHeats        = "heats"
	ModeDirectFinals = "direct_finals"

	OutcomeSucceeded = "succeeded"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// MeetMetrics contains Prometheus metrics for RPC handling and meet operations.
// A nil *MeetMetrics records nothing.
type MeetMetrics struct {
	registry *prometheus.Registry

	// RPC metrics
	rpcRequestsTotal   *prometheus.CounterVec
	rpcRequestDuration *prometheus.HistogramVec

	// Meet operation metrics
	heatsGeneratedTotal    *prometheus.CounterVec
	heatGenerationEntrants prometheus.Histogram
	standingsCacheTotal    *prometheus.CounterVec
	standingsWarningsTotal prometheus.Counter
	importRowsTotal        *prometheus.CounterVec
	stateWritesTotal       *prometheus.CounterVec
}

// NewMeetMetrics creates and registers new meet metrics
func NewMeetMetrics(registry *prometheus.Registry) (*MeetMetrics, error) {
	m := &MeetMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

// initMetrics initializes all Prometheus metrics
func (m *MeetMetrics) initMetrics() {
	m.rpcRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackmeet_rpc_requests_total",
			Help: "Total number of Connect RPC requests",
		},
		[]string{"procedure", "code"}, // code: ok, invalid_argument, not_found, ...
	)

	m.rpcRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trackmeet_rpc_request_duration_seconds",
			Help:    "Time taken to handle Connect RPC requests",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"procedure"},
	)

	m.heatsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackmeet_heat_generations_total",
			Help: "Total number of heat generations",
		},
		[]string{"mode"}, // mode: heats, direct_finals
	)

	m.heatGenerationEntrants = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trackmeet_heat_generation_entrants",
			Help:    "Number of entrants per heat generation",
			Buckets: []float64{0, 8, 16, 24, 32, 48, 64},
		},
	)

	m.standingsCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackmeet_standings_cache_total",
			Help: "Team standings lookups by cache result",
		},
		[]string{"result"}, // result: hit, miss
	)

	m.standingsWarningsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trackmeet_standings_warnings_total",
			Help: "Final position rows that could not be scored",
		},
	)

	m.importRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackmeet_import_entries_total",
			Help: "Imported entries by sheet and outcome",
		},
		[]string{"sheet", "outcome"}, // sheet: individual, relay; outcome: succeeded, duplicate, failed
	)

	m.stateWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trackmeet_state_writes_total",
			Help: "Writes of meet state slices",
		},
		[]string{"slice", "status"},
	)
}

func (m *MeetMetrics) getCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.rpcRequestsTotal,
		m.rpcRequestDuration,
		m.heatsGeneratedTotal,
		m.heatGenerationEntrants,
		m.standingsCacheTotal,
		m.standingsWarningsTotal,
		m.importRowsTotal,
		m.stateWritesTotal,
	}
}

// Describe implements the Collector interface
func (m *MeetMetrics) Describe(ch chan<- *prometheus.Desc) {
	for _, collector := range m.getCollectors() {
		collector.Describe(ch)
	}
}

// Collect implements the Collector interface
func (m *MeetMetrics) Collect(ch chan<- prometheus.Metric) {
	for _, collector := range m.getCollectors() {
		collector.Collect(ch)
	}
}

// RecordRPC records a finished RPC with its Connect code and duration in seconds
func (m *MeetMetrics) RecordRPC(procedure, code string, duration float64) {
	if m == nil {
		return
	}
	m.rpcRequestsTotal.WithLabelValues(procedure, code).Inc()
	m.rpcRequestDuration.WithLabelValues(procedure).Observe(duration)
}

// RecordHeatGeneration records a heat generation run
func (m *MeetMetrics) RecordHeatGeneration(mode string, entrants int) {
	if m == nil {
		return
	}
	m.heatsGeneratedTotal.WithLabelValues(mode).Inc()
	m.heatGenerationEntrants.Observe(float64(entrants))
}

// RecordStandingsLookup records whether standings came from the cache
func (m *MeetMetrics) RecordStandingsLookup(result string) {
	if m == nil {
		return
	}
	m.standingsCacheTotal.WithLabelValues(result).Inc()
}

// RecordStandingsWarnings adds unscorable ledger rows
func (m *MeetMetrics) RecordStandingsWarnings(n int) {
	if m == nil || n == 0 {
		return
	}
	m.standingsWarningsTotal.Add(float64(n))
}

// RecordImport records the counters of one import
func (m *MeetMetrics) RecordImport(sheet string, succeeded, duplicates, failed int) {
	if m == nil {
		return
	}
	m.importRowsTotal.WithLabelValues(sheet, OutcomeSucceeded).Add(float64(succeeded))
	m.importRowsTotal.WithLabelValues(sheet, OutcomeDuplicate).Add(float64(duplicates))
	m.importRowsTotal.WithLabelValues(sheet, OutcomeFailed).Add(float64(failed))
}

// RecordStateWrite records a write of one state slice
func (m *MeetMetrics) RecordStateWrite(slice, status string) {
	if m == nil {
		return
	}
	m.stateWritesTotal.WithLabelValues(slice, status).Inc()
}
