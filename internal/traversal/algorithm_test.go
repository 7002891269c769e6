package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	for _, in := range []string{"bfs", "BFS", " breadth-first "} {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err)
		assert.Equal(t, BFS, got)
	}
	for _, in := range []string{"dfs", "Depth-First", "depth_first"} {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err)
		assert.Equal(t, DFS, got)
	}

	_, err := ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, "bfs", BFS.String())
	assert.Equal(t, "dfs", DFS.String())
	assert.Equal(t, "Queue", BFS.ContainerName())
	assert.Equal(t, "Stack", DFS.ContainerName())
	assert.Equal(t, PhaseDequeue, BFS.RemovePhase())
	assert.Equal(t, PhasePush, DFS.AdmitPhase())
	assert.True(t, PhasePop.IsRemoval())
	assert.True(t, PhaseEnqueue.IsAdmission())
	assert.False(t, PhaseVisit.IsAdmission())
}
