package graph

import "github.com/specialistvlad/graphstep/internal/nodeid"

// Node is a single vertex of the graph. X and Y are only used by renderers.
type Node struct {
	ID nodeid.ID
	X  int
	Y  int
}

// Edge is an unordered pair of node identifiers.
type Edge struct {
	U nodeid.ID
	V nodeid.ID
}

// NewEdge builds an edge from two identifiers.
func NewEdge(u, v nodeid.ID) Edge {
	return Edge{U: u, V: v}
}

// Key returns a canonical, order-independent representation of the edge.
func (e Edge) Key() string {
	if e.U < e.V {
		return string(e.U) + "|" + string(e.V)
	}
	return string(e.V) + "|" + string(e.U)
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool {
	return e.U == e.V
}
