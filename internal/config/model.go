package config

import (
	"errors"
	"fmt"
	"maps"

	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/traversal"
)

var (
	// ErrNoGraph is returned when a model has neither nodes nor a generator.
	ErrNoGraph = errors.New("configuration defines no nodes and no generator")
	// ErrConflictingGraph is returned when nodes and a generator are both set.
	ErrConflictingGraph = errors.New("configuration defines both nodes and a generator")
)

// Model is the unified representation of a graph file.
type Model struct {
	MaxNodes  int
	Nodes     []Node
	Edges     []Edge
	Playback  Playback
	Generator *Generator
	Renderers []Renderer
}

// Node is a declared graph node.
type Node struct {
	ID string
	X  int
	Y  int
}

// Edge is a declared undirected edge.
type Edge struct {
	U string
	V string
}

// Playback holds the controller selection. Zero values mean "not set".
type Playback struct {
	Algorithm string
	Start     string
	SpeedMs   int
}

// Generator asks for a random graph instead of declared nodes and edges.
type Generator struct {
	Nodes int
	Seed  *uint64
}

// Renderer selects a renderer module by name with free-form settings.
type Renderer struct {
	Name     string
	Settings map[string]string
}

// Merge folds other into m: collections append, set scalars override.
func (m *Model) Merge(other *Model) {
	if other.MaxNodes > 0 {
		m.MaxNodes = other.MaxNodes
	}
	m.Nodes = append(m.Nodes, other.Nodes...)
	m.Edges = append(m.Edges, other.Edges...)
	if other.Playback.Algorithm != "" {
		m.Playback.Algorithm = other.Playback.Algorithm
	}
	if other.Playback.Start != "" {
		m.Playback.Start = other.Playback.Start
	}
	if other.Playback.SpeedMs != 0 {
		m.Playback.SpeedMs = other.Playback.SpeedMs
	}
	if other.Generator != nil {
		m.Generator = other.Generator
	}
	for _, r := range other.Renderers {
		m.Renderers = append(m.Renderers, Renderer{Name: r.Name, Settings: maps.Clone(r.Settings)})
	}
}

// Validate checks the model for internal consistency.
func (m *Model) Validate() error {
	switch {
	case len(m.Nodes) == 0 && m.Generator == nil:
		return ErrNoGraph
	case len(m.Nodes) > 0 && m.Generator != nil:
		return ErrConflictingGraph
	}
	if m.MaxNodes < 0 {
		return fmt.Errorf("max_nodes must not be negative, got %d", m.MaxNodes)
	}
	for _, n := range m.Nodes {
		if _, err := nodeid.Parse(n.ID); err != nil {
			return fmt.Errorf("node: %w", err)
		}
	}
	for _, e := range m.Edges {
		if _, err := nodeid.Parse(e.U); err != nil {
			return fmt.Errorf("edge %s-%s: %w", e.U, e.V, err)
		}
		if _, err := nodeid.Parse(e.V); err != nil {
			return fmt.Errorf("edge %s-%s: %w", e.U, e.V, err)
		}
	}
	if m.Playback.Algorithm != "" {
		if _, err := traversal.ParseAlgorithm(m.Playback.Algorithm); err != nil {
			return err
		}
	}
	if m.Playback.Start != "" {
		if _, err := nodeid.Parse(m.Playback.Start); err != nil {
			return fmt.Errorf("playback start: %w", err)
		}
	}
	if m.Playback.SpeedMs < 0 {
		return fmt.Errorf("speed_ms must be positive, got %d", m.Playback.SpeedMs)
	}
	if m.Generator != nil && m.Generator.Nodes <= 0 {
		return fmt.Errorf("generator nodes must be positive, got %d", m.Generator.Nodes)
	}
	for _, r := range m.Renderers {
		if r.Name == "" {
			return errors.New("renderer name cannot be empty")
		}
	}
	return nil
}

// Graph converts declared nodes and edges into graph values. Edges that name
// unknown nodes are passed through; adjacency building drops them.
func (m *Model) Graph() ([]graph.Node, []graph.Edge, error) {
	nodes := make([]graph.Node, 0, len(m.Nodes))
	for _, n := range m.Nodes {
		id, err := nodeid.Parse(n.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("node: %w", err)
		}
		nodes = append(nodes, graph.Node{ID: id, X: n.X, Y: n.Y})
	}
	edges := make([]graph.Edge, 0, len(m.Edges))
	for _, e := range m.Edges {
		u, err := nodeid.Parse(e.U)
		if err != nil {
			return nil, nil, fmt.Errorf("edge: %w", err)
		}
		v, err := nodeid.Parse(e.V)
		if err != nil {
			return nil, nil, fmt.Errorf("edge: %w", err)
		}
		edges = append(edges, graph.NewEdge(u, v))
	}
	return nodes, edges, nil
}
