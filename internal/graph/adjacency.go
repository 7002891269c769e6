package graph

import (
	"slices"

	"github.com/specialistvlad/graphstep/internal/nodeid"
)

// Adjacency maps a node to its lexicographically sorted, deduplicated
// neighbors. It is symmetric: if B is a neighbor of A, A is a neighbor of B.
type Adjacency map[nodeid.ID][]nodeid.ID

// BuildAdjacency derives the adjacency mapping for the given nodes and edges.
// It has no side effects and may be called any number of times.
func BuildAdjacency(nodes []Node, edges []Edge) Adjacency {
	sets := make(map[nodeid.ID]map[nodeid.ID]struct{}, len(nodes))
	for _, n := range nodes {
		sets[n.ID] = make(map[nodeid.ID]struct{})
	}

	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		us, okU := sets[e.U]
		vs, okV := sets[e.V]
		if !okU || !okV {
			continue
		}
		us[e.V] = struct{}{}
		vs[e.U] = struct{}{}
	}

	adj := make(Adjacency, len(sets))
	for id, set := range sets {
		list := make([]nodeid.ID, 0, len(set))
		for nb := range set {
			list = append(list, nb)
		}
		slices.Sort(list)
		adj[id] = list
	}
	return adj
}

// Neighbors returns the sorted neighbors of id. An unknown id yields an empty
// list rather than an error. The returned slice must not be modified.
func (a Adjacency) Neighbors(id nodeid.ID) []nodeid.ID {
	return a[id]
}

// Degree returns the number of neighbors of id.
func (a Adjacency) Degree(id nodeid.ID) int {
	return len(a[id])
}

// Component returns the set of nodes reachable from start, including start
// itself when it is known. An unknown start yields a component of just start.
func (a Adjacency) Component(start nodeid.ID) map[nodeid.ID]struct{} {
	seen := map[nodeid.ID]struct{}{start: {}}
	stack := []nodeid.ID{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range a[v] {
			if _, ok := seen[nb]; !ok {
				seen[nb] = struct{}{}
				stack = append(stack, nb)
			}
		}
	}
	return seen
}
