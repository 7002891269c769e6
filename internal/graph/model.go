package graph

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/graphstep/internal/nodeid"
)

// DefaultMaxNodes bounds graph size; it matches the single-letter naming
// scheme used by the generator.
const DefaultMaxNodes = 26

var (
	// ErrDuplicateNode is returned when a node id is added twice.
	ErrDuplicateNode = errors.New("duplicate node")
	// ErrTooManyNodes is returned when a mutation would exceed MaxNodes.
	ErrTooManyNodes = errors.New("too many nodes")
	// ErrInvalidNode is returned for nodes with an empty identifier.
	ErrInvalidNode = errors.New("invalid node")
)

// Model owns the node and edge collections of one graph and keeps the
// derived adjacency current.
type Model struct {
	maxNodes int
	nodes    []Node
	index    map[nodeid.ID]int
	edges    []Edge
	adj      Adjacency
	version  uint64
}

// Option configures a Model.
type Option func(*Model)

// WithMaxNodes overrides DefaultMaxNodes. Non-positive values are ignored.
func WithMaxNodes(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.maxNodes = n
		}
	}
}

// New creates an empty graph model.
func New(opts ...Option) *Model {
	m := &Model{
		maxNodes: DefaultMaxNodes,
		index:    make(map[nodeid.ID]int),
		adj:      Adjacency{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MaxNodes returns the configured node bound.
func (m *Model) MaxNodes() int {
	return m.maxNodes
}

// AddNode appends a node and rebuilds the adjacency.
func (m *Model) AddNode(n Node) error {
	if n.ID.IsNone() {
		return ErrInvalidNode
	}
	if _, exists := m.index[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
	}
	if len(m.nodes) >= m.maxNodes {
		return fmt.Errorf("%w: limit is %d", ErrTooManyNodes, m.maxNodes)
	}
	m.index[n.ID] = len(m.nodes)
	m.nodes = append(m.nodes, n)
	m.rebuild()
	return nil
}

// AddEdge appends an edge and rebuilds the adjacency. Edges that reference
// unknown nodes or loop back on themselves are kept in the edge list but never
// contribute to the adjacency.
func (m *Model) AddEdge(e Edge) {
	m.edges = append(m.edges, e)
	m.rebuild()
}

// Replace swaps the whole graph for a new node and edge set, as a
// regeneration does. On error the model is left unchanged.
func (m *Model) Replace(nodes []Node, edges []Edge) error {
	if len(nodes) > m.maxNodes {
		return fmt.Errorf("%w: %d nodes, limit is %d", ErrTooManyNodes, len(nodes), m.maxNodes)
	}
	index := make(map[nodeid.ID]int, len(nodes))
	for i, n := range nodes {
		if n.ID.IsNone() {
			return fmt.Errorf("%w at position %d", ErrInvalidNode, i)
		}
		if _, exists := index[n.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		index[n.ID] = i
	}

	m.nodes = append([]Node(nil), nodes...)
	m.index = index
	m.edges = append([]Edge(nil), edges...)
	m.rebuild()
	return nil
}

// ReplaceEdges keeps the nodes and swaps the edge set.
func (m *Model) ReplaceEdges(edges []Edge) {
	m.edges = append([]Edge(nil), edges...)
	m.rebuild()
}

// Nodes returns a copy of the nodes in insertion order.
func (m *Model) Nodes() []Node {
	return append([]Node(nil), m.nodes...)
}

// Edges returns a copy of the edges in insertion order.
func (m *Model) Edges() []Edge {
	return append([]Edge(nil), m.edges...)
}

// NodeIDs returns node identifiers in insertion order.
func (m *Model) NodeIDs() []nodeid.ID {
	ids := make([]nodeid.ID, len(m.nodes))
	for i, n := range m.nodes {
		ids[i] = n.ID
	}
	return ids
}

// Node looks up a node by id.
func (m *Model) Node(id nodeid.ID) (Node, bool) {
	i, ok := m.index[id]
	if !ok {
		return Node{}, false
	}
	return m.nodes[i], true
}

// Has implements Source.
func (m *Model) Has(id nodeid.ID) bool {
	_, ok := m.index[id]
	return ok
}

// Len returns the number of nodes.
func (m *Model) Len() int {
	return len(m.nodes)
}

// Adjacency implements Source.
func (m *Model) Adjacency() Adjacency {
	return m.adj
}

// Version implements Source.
func (m *Model) Version() uint64 {
	return m.version
}

func (m *Model) rebuild() {
	m.adj = BuildAdjacency(m.nodes, m.edges)
	m.version++
}
