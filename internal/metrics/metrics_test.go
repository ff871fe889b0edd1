package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetMetricsRecording(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m, err := NewMeetMetrics(registry)
	require.NoError(t, err)

	m.RecordRPC("/trackmeet.v1.HeatService/GenerateHeats", "ok", 0.01)
	m.RecordHeatGeneration(ModeHeats, 16)
	m.RecordHeatGeneration(ModeDirectFinals, 5)
	m.RecordStandingsLookup(ResultMiss)
	m.RecordStandingsLookup(ResultHit)
	m.RecordStandingsLookup(ResultHit)
	m.RecordStandingsWarnings(2)
	m.RecordImport("individual", 3, 1, 2)

	assert.InDelta(t, 1, testutil.ToFloat64(m.rpcRequestsTotal.WithLabelValues("/trackmeet.v1.HeatService/GenerateHeats", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.heatsGeneratedTotal.WithLabelValues(ModeDirectFinals)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.standingsCacheTotal.WithLabelValues(ResultHit)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.standingsWarningsTotal), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.importRowsTotal.WithLabelValues("individual", OutcomeFailed)), 0)

	// Registering the same collector twice fails.
	_, err = NewMeetMetrics(registry)
	assert.Error(t, err)
}

func TestNilMeetMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *MeetMetrics
	assert.NotPanics(t, func() {
		m.RecordRPC("p", "ok", 1)
		m.RecordHeatGeneration(ModeHeats, 9)
		m.RecordStandingsLookup(ResultHit)
		m.RecordStandingsWarnings(1)
		m.RecordImport("relay", 1, 0, 0)
		m.RecordStateWrite("heats", StatusSuccess)
	})
}
