package graph

import "github.com/specialistvlad/graphstep/internal/nodeid"

// Source is the read side of a graph as seen by the playback controller. It is
// queried once per traversal start and again on every pull to detect changes.
type Source interface {
	// Adjacency returns the current adjacency mapping.
	Adjacency() Adjacency
	// Version changes every time the node or edge collections change.
	Version() uint64
	// NodeIDs lists node identifiers in insertion order.
	NodeIDs() []nodeid.ID
	// Has reports whether a node with the given id exists.
	Has(id nodeid.ID) bool
}
