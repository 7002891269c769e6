package playback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/metrics"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/render"
	"github.com/specialistvlad/graphstep/internal/traversal"
	"github.com/specialistvlad/graphstep/internal/view"
)

// DefaultInterval is the automatic stepping cadence when none is configured.
const DefaultInterval = 500 * time.Millisecond

// ErrInvalidInterval is returned for non-positive stepping intervals.
var ErrInvalidInterval = errors.New("playback interval must be positive")

// Config is the initial selection of a Controller.
type Config struct {
	Algorithm traversal.Algorithm
	Start     nodeid.ID
	Interval  time.Duration
}

// Controller owns at most one traversal engine and forwards each pulled step
// to a renderer.
type Controller struct {
	graph    graph.Source
	renderer render.Renderer
	clock    Clock
	metrics  *metrics.Metrics
	newRunID func() string

	algorithm traversal.Algorithm
	start     nodeid.ID
	interval  time.Duration

	state         State
	engine        *traversal.Engine
	engineVersion uint64
	runID         string
	ticker        Ticker
	last          *traversal.Step
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithMetrics attaches Prometheus counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(ctl *Controller) { ctl.metrics = m }
}

// WithRunIDs replaces the UUID run id source.
func WithRunIDs(f func() string) Option {
	return func(ctl *Controller) { ctl.newRunID = f }
}

// New creates an idle controller over g that presents frames through r.
func New(g graph.Source, r render.Renderer, cfg Config, opts ...Option) (*Controller, error) {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, cfg.Interval)
	}
	c := &Controller{
		graph:     g,
		renderer:  r,
		clock:     RealClock{},
		newRunID:  uuid.NewString,
		algorithm: cfg.Algorithm,
		start:     cfg.Start,
		interval:  cfg.Interval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.metrics.IntervalChanged(c.interval.Seconds())
	return c, nil
}

// State returns the current playback state.
func (c *Controller) State() State { return c.state }

// Algorithm returns the selected algorithm.
func (c *Controller) Algorithm() traversal.Algorithm { return c.algorithm }

// StartNode returns the selected start node.
func (c *Controller) StartNode() nodeid.ID { return c.start }

// Interval returns the automatic stepping interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// RunID identifies the current engine run; empty when there is none.
func (c *Controller) RunID() string { return c.runID }

// HasEngine reports whether a run is in progress or parked.
func (c *Controller) HasEngine() bool { return c.engine != nil }

// Last returns the most recently forwarded step.
func (c *Controller) Last() (traversal.Step, bool) {
	if c.last == nil {
		return traversal.Step{}, false
	}
	return *c.last, true
}

// Ticks returns the channel automatic stepping listens on. It is nil unless
// the controller is running, which blocks forever in a select.
func (c *Controller) Ticks() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C()
}

// Start discards any engine, clears the display, builds a fresh engine for
// alg from start and begins automatic stepping.
func (c *Controller) Start(ctx context.Context, alg traversal.Algorithm, start nodeid.ID) {
	c.algorithm = alg
	c.start = start
	c.Reset(ctx)
	c.newEngine(ctx)
	c.run(ctx)
}

// Step pulls exactly one step. Automatic stepping, if active, is paused
// first. A finished run yields nothing until Start or Reset.
func (c *Controller) Step(ctx context.Context) (traversal.Step, bool) {
	logger := ctxlog.FromContext(ctx)
	if c.state == Finished {
		logger.Debug("Step ignored, run already finished.", "run_id", c.runID)
		return traversal.Step{}, false
	}
	if c.state == Running {
		c.Pause(ctx)
	}
	if c.discardIfStale(ctx) || c.engine == nil {
		c.newEngine(ctx)
		c.state = Paused
	}
	return c.pull(ctx)
}

// Pause stops automatic stepping and keeps the engine. Only valid while
// running.
func (c *Controller) Pause(ctx context.Context) {
	if c.state != Running {
		return
	}
	c.stopTicker()
	c.state = Paused
	ctxlog.FromContext(ctx).Debug("Playback paused.", "run_id", c.runID)
}

// Resume restarts automatic stepping at the current interval without losing
// engine state. From idle it starts a new run with the current selection.
func (c *Controller) Resume(ctx context.Context) {
	switch c.state {
	case Running, Finished:
		return
	case Idle:
		c.newEngine(ctx)
	}
	c.run(ctx)
}

// Reset stops automatic stepping, discards the engine and clears the display.
func (c *Controller) Reset(ctx context.Context) {
	c.stopTicker()
	c.engine = nil
	c.runID = ""
	c.last = nil
	c.state = Idle
	if err := c.renderer.Clear(ctx, view.Blank(c.algorithm, c.graph.NodeIDs())); err != nil {
		ctxlog.FromContext(ctx).Debug("Clearing display failed.", "error", err)
	}
}

// Select changes the algorithm and start node. The current engine is
// invalidated because it belongs to the old selection.
func (c *Controller) Select(ctx context.Context, alg traversal.Algorithm, start nodeid.ID) {
	c.algorithm = alg
	c.start = start
	c.Reset(ctx)
}

// SetSpeed changes the stepping interval. While running the ticker is
// replaced immediately; otherwise the interval applies on the next run.
func (c *Controller) SetSpeed(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, d)
	}
	c.interval = d
	c.metrics.IntervalChanged(d.Seconds())
	if c.state == Running {
		c.stopTicker()
		c.ticker = c.clock.NewTicker(d)
	}
	ctxlog.FromContext(ctx).Debug("Playback interval changed.", "interval", d, "state", c.state.String())
	return nil
}

// Tick performs one automatic pull. It is a no-op unless running.
func (c *Controller) Tick(ctx context.Context) {
	if c.state != Running {
		return
	}
	if c.discardIfStale(ctx) {
		return
	}
	c.pull(ctx)
}

func (c *Controller) run(ctx context.Context) {
	c.stopTicker()
	c.ticker = c.clock.NewTicker(c.interval)
	c.state = Running
	ctxlog.FromContext(ctx).Debug("Playback running.", "run_id", c.runID, "interval", c.interval)
}

func (c *Controller) newEngine(ctx context.Context) {
	c.engine = traversal.New(c.algorithm, c.start, c.graph.Adjacency())
	c.engineVersion = c.graph.Version()
	c.runID = c.newRunID()
	c.last = nil
	c.metrics.RunStarted(c.algorithm.String())
	ctxlog.FromContext(ctx).Info("Traversal run created.",
		"run_id", c.runID, "algorithm", c.algorithm.String(), "start", c.start.String())
}

// discardIfStale resets the controller when the graph changed since the
// engine was built. It reports whether an engine was discarded.
func (c *Controller) discardIfStale(ctx context.Context) bool {
	if c.engine == nil || c.engineVersion == c.graph.Version() {
		return false
	}
	ctxlog.FromContext(ctx).Info("Graph changed, discarding traversal run.", "run_id", c.runID)
	c.metrics.EngineInvalidated()
	c.Reset(ctx)
	return true
}

func (c *Controller) pull(ctx context.Context) (traversal.Step, bool) {
	step, ok := c.engine.Next()
	if !ok {
		c.finish(ctx)
		return traversal.Step{}, false
	}
	c.last = &step
	c.metrics.StepEmitted(step.Algorithm.String(), string(step.Phase))
	frame := view.NewFrame(c.runID, c.graph.NodeIDs(), step)
	if err := c.renderer.Render(ctx, frame); err != nil {
		ctxlog.FromContext(ctx).Debug("Rendering step failed.", "index", step.Index, "error", err)
	}
	if step.IsDone() {
		c.finish(ctx)
	}
	return step, true
}

func (c *Controller) finish(ctx context.Context) {
	c.stopTicker()
	if c.state != Finished {
		c.metrics.RunFinished(c.algorithm.String())
		ctxlog.FromContext(ctx).Info("Traversal run finished.", "run_id", c.runID, "steps", c.engine.Emitted())
	}
	c.state = Finished
}

func (c *Controller) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}
