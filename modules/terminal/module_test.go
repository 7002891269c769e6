package terminal

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/registry"
	"github.com/specialistvlad/graphstep/internal/render"
	"github.com/specialistvlad/graphstep/internal/traversal"
	"github.com/specialistvlad/graphstep/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathIDs = []nodeid.ID{"A", "B", "C"}

func pathSteps(t *testing.T, alg traversal.Algorithm) []traversal.Step {
	t.Helper()
	adj := graph.BuildAdjacency(
		[]graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]graph.Edge{graph.NewEdge("A", "B"), graph.NewEdge("B", "C")},
	)
	return traversal.Run(alg, "A", adj)
}

func TestFormat_PlainBFS(t *testing.T) {
	r := New(&bytes.Buffer{}, false)
	steps := pathSteps(t, traversal.BFS)
	require.Len(t, steps, 10)

	first := r.Format(view.NewFrame("run-1", pathIDs, steps[0]))
	assert.Equal(t, "BFS #0 init\n  A B C\nQueue: A\nVisited: (empty)\n", first)

	enqueue := r.Format(view.NewFrame("run-1", pathIDs, steps[3]))
	assert.Contains(t, enqueue, "BFS #3 enqueue A -> B\n")
	assert.Contains(t, enqueue, "Queue: B\n")
	assert.Contains(t, enqueue, "Visited: A\n")

	last := r.Format(view.NewFrame("run-1", pathIDs, steps[9]))
	assert.Contains(t, last, "Queue: (empty)\n")
	assert.Contains(t, last, "Visited: A B C\n")
	assert.Contains(t, last, "done: 3 node(s) visited\n")
}

func TestFormat_DFSTitle(t *testing.T) {
	r := New(&bytes.Buffer{}, false)
	out := r.Format(view.NewFrame("", pathIDs, pathSteps(t, traversal.DFS)[0]))
	assert.Contains(t, out, "DFS #0 init")
	assert.Contains(t, out, "Stack: A\n")
}

func TestRenderAndClear_WriteToOutput(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	ctx := context.Background()

	require.NoError(t, r.Render(ctx, view.NewFrame("", pathIDs, pathSteps(t, traversal.BFS)[0])))
	require.NoError(t, r.Clear(ctx, view.Blank(traversal.BFS, pathIDs)))

	assert.Contains(t, buf.String(), "Queue: A\n")
	assert.Contains(t, buf.String(), "-- reset (bfs) --\n  A B C\n")
}

func TestModule_Register(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)
	var buf bytes.Buffer
	fan := render.NewFanout(nil)

	err := reg.Build(context.Background(), []config.Renderer{{Name: Name, Settings: map[string]string{"color": "false"}}}, &buf, fan)
	require.NoError(t, err)
	assert.Equal(t, 1, fan.Len())

	err = reg.Build(context.Background(), []config.Renderer{{Name: Name, Settings: map[string]string{"color": "maybe"}}}, &buf, render.NewFanout(nil))
	assert.ErrorContains(t, err, "setting 'color'")
}
