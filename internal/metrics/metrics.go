// Package metrics exposes playback counters through Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors updated by the playback controller and the
// renderer fan-out. A nil *Metrics is valid and records nothing.
type Metrics struct {
	stepsTotal        *prometheus.CounterVec
	runsStarted       *prometheus.CounterVec
	runsFinished      *prometheus.CounterVec
	renderErrors      *prometheus.CounterVec
	playbackInterval  prometheus.Gauge
	staleInvalidation prometheus.Counter
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		stepsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graphstep",
			Name:      "steps_total",
			Help:      "Traversal steps forwarded to renderers, by algorithm and phase.",
		}, []string{"algorithm", "phase"}),
		runsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graphstep",
			Name:      "runs_started_total",
			Help:      "Traversal runs started, by algorithm.",
		}, []string{"algorithm"}),
		runsFinished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graphstep",
			Name:      "runs_finished_total",
			Help:      "Traversal runs that reached their done step, by algorithm.",
		}, []string{"algorithm"}),
		renderErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graphstep",
			Name:      "render_errors_total",
			Help:      "Renderer failures, by renderer name.",
		}, []string{"renderer"}),
		playbackInterval: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphstep",
			Name:      "playback_interval_seconds",
			Help:      "Current automatic stepping interval.",
		}),
		staleInvalidation: f.NewCounter(prometheus.CounterOpts{
			Namespace: "graphstep",
			Name:      "stale_engines_total",
			Help:      "Engines discarded because the graph changed under them.",
		}),
	}
}

// StepEmitted counts one forwarded step.
func (m *Metrics) StepEmitted(algorithm, phase string) {
	if m == nil {
		return
	}
	m.stepsTotal.WithLabelValues(algorithm, phase).Inc()
}

// RunStarted counts a freshly built engine.
func (m *Metrics) RunStarted(algorithm string) {
	if m == nil {
		return
	}
	m.runsStarted.WithLabelValues(algorithm).Inc()
}

// RunFinished counts a run that emitted its done step.
func (m *Metrics) RunFinished(algorithm string) {
	if m == nil {
		return
	}
	m.runsFinished.WithLabelValues(algorithm).Inc()
}

// RenderFailed counts a renderer error.
func (m *Metrics) RenderFailed(renderer string) {
	if m == nil {
		return
	}
	m.renderErrors.WithLabelValues(renderer).Inc()
}

// IntervalChanged records the playback interval in seconds.
func (m *Metrics) IntervalChanged(seconds float64) {
	if m == nil {
		return
	}
	m.playbackInterval.Set(seconds)
}

// EngineInvalidated counts a stale engine being discarded.
func (m *Metrics) EngineInvalidated() {
	if m == nil {
		return
	}
	m.staleInvalidation.Inc()
}
