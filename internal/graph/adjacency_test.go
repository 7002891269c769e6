package graph

import (
	"testing"

	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodes(ids ...nodeid.ID) []Node {
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{ID: id}
	}
	return out
}

func TestBuildAdjacency_SortsAndDeduplicates(t *testing.T) {
	adj := BuildAdjacency(
		nodes("A", "B", "C", "D"),
		[]Edge{NewEdge("A", "D"), NewEdge("A", "B"), NewEdge("C", "A"), NewEdge("B", "A")},
	)

	assert.Equal(t, []nodeid.ID{"B", "C", "D"}, adj.Neighbors("A"))
	assert.Equal(t, []nodeid.ID{"A"}, adj.Neighbors("B"))
	assert.Equal(t, []nodeid.ID{"A"}, adj.Neighbors("C"))
	assert.Equal(t, []nodeid.ID{"A"}, adj.Neighbors("D"))
}

func TestBuildAdjacency_DropsInvalidEdges(t *testing.T) {
	adj := BuildAdjacency(
		nodes("A", "B"),
		[]Edge{NewEdge("A", "A"), NewEdge("A", "Z"), NewEdge("Y", "B"), NewEdge("A", "B")},
	)

	require.Len(t, adj, 2)
	assert.Equal(t, []nodeid.ID{"B"}, adj.Neighbors("A"))
	assert.Equal(t, []nodeid.ID{"A"}, adj.Neighbors("B"))
	_, hasZ := adj["Z"]
	assert.False(t, hasZ, "unknown endpoints must not be introduced as nodes")
}

func TestBuildAdjacency_Symmetric(t *testing.T) {
	adj := BuildAdjacency(
		nodes("A", "B", "C", "D", "E"),
		[]Edge{NewEdge("A", "B"), NewEdge("B", "C"), NewEdge("D", "B"), NewEdge("E", "A")},
	)

	for v, nbs := range adj {
		for _, nb := range nbs {
			assert.Contains(t, adj.Neighbors(nb), v, "%s lists %s but not the reverse", v, nb)
		}
	}
}

func TestBuildAdjacency_IsolatedNodeHasEmptyList(t *testing.T) {
	adj := BuildAdjacency(nodes("A"), nil)
	nbs, ok := adj["A"]
	require.True(t, ok)
	assert.Empty(t, nbs)
}

func TestNeighbors_UnknownNode(t *testing.T) {
	adj := BuildAdjacency(nodes("A", "B"), []Edge{NewEdge("A", "B")})
	assert.Empty(t, adj.Neighbors("nope"))
	assert.Equal(t, 0, adj.Degree("nope"))
}

func TestComponent(t *testing.T) {
	adj := BuildAdjacency(
		nodes("A", "B", "C", "D"),
		[]Edge{NewEdge("A", "B"), NewEdge("C", "D")},
	)

	assert.Equal(t, map[nodeid.ID]struct{}{"A": {}, "B": {}}, adj.Component("A"))
	assert.Equal(t, map[nodeid.ID]struct{}{"D": {}, "C": {}}, adj.Component("D"))
	assert.Equal(t, map[nodeid.ID]struct{}{"X": {}}, adj.Component("X"))
}

func TestEdgeKey(t *testing.T) {
	assert.Equal(t, NewEdge("A", "B").Key(), NewEdge("B", "A").Key())
	assert.True(t, NewEdge("C", "C").IsLoop())
}
