package playback

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/traversal"
	"github.com/specialistvlad/graphstep/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	d       time.Duration
	ch      chan time.Time
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped = true }

type fakeClock struct {
	tickers []*fakeTicker
}

func (f *fakeClock) NewTicker(d time.Duration) Ticker {
	t := &fakeTicker{d: d, ch: make(chan time.Time, 1)}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *fakeClock) last() *fakeTicker {
	if len(f.tickers) == 0 {
		return nil
	}
	return f.tickers[len(f.tickers)-1]
}

type recorder struct {
	frames []view.Frame
	clears int
}

func (r *recorder) Render(_ context.Context, f view.Frame) error {
	r.frames = append(r.frames, f)
	return nil
}

func (r *recorder) Clear(context.Context, view.Frame) error {
	r.clears++
	return nil
}

func (r *recorder) steps() []traversal.Step {
	out := make([]traversal.Step, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.Step
	}
	return out
}

func pathGraph(t *testing.T) *graph.Model {
	t.Helper()
	m := graph.New()
	require.NoError(t, m.Replace(
		[]graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]graph.Edge{graph.NewEdge("A", "B"), graph.NewEdge("B", "C")},
	))
	return m
}

func newTestController(t *testing.T, g *graph.Model) (*Controller, *recorder, *fakeClock) {
	t.Helper()
	rec := &recorder{}
	clk := &fakeClock{}
	n := 0
	c, err := New(g, rec, Config{Algorithm: traversal.BFS, Start: "A", Interval: 100 * time.Millisecond},
		WithClock(clk),
		WithRunIDs(func() string { n++; return fmt.Sprintf("run-%d", n) }),
	)
	require.NoError(t, err)
	return c, rec, clk
}

func TestNew_Validation(t *testing.T) {
	_, err := New(graph.New(), &recorder{}, Config{Interval: -time.Second})
	assert.ErrorIs(t, err, ErrInvalidInterval)

	c, err := New(graph.New(), &recorder{}, Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultInterval, c.Interval())
	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Ticks())
}

func TestStart_RunsToFinished(t *testing.T) {
	ctx := context.Background()
	g := pathGraph(t)
	c, rec, clk := newTestController(t, g)

	c.Start(ctx, traversal.BFS, "A")
	require.Equal(t, Running, c.State())
	assert.Equal(t, "run-1", c.RunID())
	assert.Equal(t, 1, rec.clears)
	require.NotNil(t, c.Ticks())
	assert.Equal(t, 100*time.Millisecond, clk.last().d)

	for c.State() == Running {
		c.Tick(ctx)
	}

	assert.Equal(t, Finished, c.State())
	assert.True(t, clk.last().stopped)
	assert.Nil(t, c.Ticks())
	if diff := cmp.Diff(traversal.Run(traversal.BFS, "A", g.Adjacency()), rec.steps(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("forwarded steps differ (-want +got):\n%s", diff)
	}
	for _, f := range rec.frames {
		assert.Equal(t, "run-1", f.RunID)
		assert.Equal(t, "Queue", f.Title)
	}

	c.Tick(ctx)
	assert.Len(t, rec.frames, 10, "ticks after finishing must not pull")
}

func TestStep_FromIdleDoesNotRun(t *testing.T) {
	ctx := context.Background()
	c, rec, clk := newTestController(t, pathGraph(t))

	s, ok := c.Step(ctx)
	require.True(t, ok)
	assert.Equal(t, traversal.PhaseInit, s.Phase)
	assert.Equal(t, Paused, c.State())
	assert.Empty(t, clk.tickers, "manual stepping must not start the timer")
	assert.Len(t, rec.frames, 1)

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, s, last)
}

func TestStep_PausesAutomaticStepping(t *testing.T) {
	ctx := context.Background()
	c, _, clk := newTestController(t, pathGraph(t))

	c.Start(ctx, traversal.DFS, "A")
	c.Tick(ctx)
	s, ok := c.Step(ctx)
	require.True(t, ok)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, Paused, c.State())
	assert.True(t, clk.last().stopped)
}

func TestStep_ThroughDoneThenIgnored(t *testing.T) {
	ctx := context.Background()
	c, rec, _ := newTestController(t, pathGraph(t))

	for range 10 {
		_, ok := c.Step(ctx)
		require.True(t, ok)
	}
	assert.Equal(t, Finished, c.State())

	_, ok := c.Step(ctx)
	assert.False(t, ok)
	assert.Len(t, rec.frames, 10)

	c.Reset(ctx)
	s, ok := c.Step(ctx)
	require.True(t, ok)
	assert.Equal(t, 0, s.Index, "a reset controller starts a fresh run")
}

func TestPauseResume_Equivalence(t *testing.T) {
	ctx := context.Background()
	g := pathGraph(t)
	c, rec, clk := newTestController(t, g)

	c.Start(ctx, traversal.BFS, "A")
	c.Tick(ctx)
	c.Tick(ctx)
	c.Pause(ctx)
	assert.Equal(t, Paused, c.State())
	c.Tick(ctx) // ignored while paused
	c.Pause(ctx)
	c.Resume(ctx)
	assert.Equal(t, Running, c.State())
	assert.Len(t, clk.tickers, 2)
	c.Step(ctx)
	c.Resume(ctx)
	for c.State() == Running {
		c.Tick(ctx)
	}

	if diff := cmp.Diff(traversal.Run(traversal.BFS, "A", g.Adjacency()), rec.steps(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("interrupted playback differs (-want +got):\n%s", diff)
	}
}

func TestResume_FromIdleStartsRun(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t, pathGraph(t))
	c.Resume(ctx)
	assert.Equal(t, Running, c.State())
	assert.True(t, c.HasEngine())
}

func TestReset_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	c, rec, clk := newTestController(t, pathGraph(t))

	c.Start(ctx, traversal.BFS, "A")
	c.Tick(ctx)
	c.Reset(ctx)

	assert.Equal(t, Idle, c.State())
	assert.False(t, c.HasEngine())
	assert.Empty(t, c.RunID())
	assert.True(t, clk.last().stopped)
	assert.Equal(t, 2, rec.clears)
	_, ok := c.Last()
	assert.False(t, ok)
}

func TestSetSpeed(t *testing.T) {
	ctx := context.Background()
	c, rec, clk := newTestController(t, pathGraph(t))

	require.ErrorIs(t, c.SetSpeed(ctx, 0), ErrInvalidInterval)

	require.NoError(t, c.SetSpeed(ctx, 300*time.Millisecond))
	assert.Empty(t, clk.tickers, "idle speed change must not start a timer")

	c.Start(ctx, traversal.BFS, "A")
	require.Len(t, clk.tickers, 1)
	assert.Equal(t, 300*time.Millisecond, clk.tickers[0].d)

	c.Tick(ctx)
	require.NoError(t, c.SetSpeed(ctx, 50*time.Millisecond))
	require.Len(t, clk.tickers, 2)
	assert.True(t, clk.tickers[0].stopped)
	assert.False(t, clk.tickers[1].stopped)
	assert.Equal(t, 50*time.Millisecond, clk.tickers[1].d)
	assert.Equal(t, Running, c.State())

	c.Tick(ctx)
	require.Len(t, rec.frames, 2)
	assert.Equal(t, 0, rec.frames[0].Step.Index)
	assert.Equal(t, 1, rec.frames[1].Step.Index, "rescheduling must neither skip nor repeat a step")

	c.Pause(ctx)
	require.NoError(t, c.SetSpeed(ctx, 70*time.Millisecond))
	assert.Len(t, clk.tickers, 2)
	c.Resume(ctx)
	assert.Equal(t, 70*time.Millisecond, clk.last().d)
}

func TestSelect_InvalidatesEngine(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t, pathGraph(t))

	c.Start(ctx, traversal.BFS, "A")
	c.Tick(ctx)
	c.Select(ctx, traversal.DFS, "C")

	assert.Equal(t, Idle, c.State())
	assert.False(t, c.HasEngine())
	assert.Equal(t, traversal.DFS, c.Algorithm())
	assert.Equal(t, nodeid.ID("C"), c.StartNode())

	s, ok := c.Step(ctx)
	require.True(t, ok)
	assert.Equal(t, traversal.DFS, s.Algorithm)
	assert.Equal(t, []nodeid.ID{"C"}, s.Structure)
}

func TestGraphChange_DiscardsStaleEngine(t *testing.T) {
	ctx := context.Background()
	g := pathGraph(t)
	c, rec, _ := newTestController(t, g)

	c.Start(ctx, traversal.BFS, "A")
	c.Tick(ctx)
	c.Tick(ctx)
	firstRun := c.RunID()

	g.AddEdge(graph.NewEdge("A", "C"))
	c.Tick(ctx)
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.HasEngine())
	assert.Len(t, rec.frames, 2, "a stale engine must not be pulled")

	s, ok := c.Step(ctx)
	require.True(t, ok)
	assert.Equal(t, 0, s.Index)
	assert.NotEqual(t, firstRun, c.RunID())

	g.AddEdge(graph.NewEdge("B", "B"))
	s, ok = c.Step(ctx)
	require.True(t, ok)
	assert.Equal(t, 0, s.Index, "manual step after a graph change starts over")
}
