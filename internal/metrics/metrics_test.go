package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.StepEmitted("bfs", "visit")
	m.StepEmitted("bfs", "visit")
	m.RunStarted("dfs")
	m.RunFinished("dfs")
	m.RenderFailed("socketio")
	m.IntervalChanged(0.25)
	m.EngineInvalidated()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.stepsTotal.WithLabelValues("bfs", "visit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsStarted.WithLabelValues("dfs")))
	assert.Equal(t, 0.25, testutil.ToFloat64(m.playbackInterval))

	expected := `
# HELP graphstep_render_errors_total Renderer failures, by renderer name.
# TYPE graphstep_render_errors_total counter
graphstep_render_errors_total{renderer="socketio"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "graphstep_render_errors_total"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.StepEmitted("bfs", "init")
		m.RunStarted("bfs")
		m.RunFinished("bfs")
		m.RenderFailed("x")
		m.IntervalChanged(1)
		m.EngineInvalidated()
	})
}
