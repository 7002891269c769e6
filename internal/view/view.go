// Package view turns traversal steps into what a renderer displays: a
// display class per node, the container title and the two lists.
package view

import (
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/traversal"
)

// Class is the display state of a single node.
type Class string

const (
	Unvisited Class = "unvisited"
	Frontier  Class = "frontier"
	Current   Class = "current"
	Visited   Class = "visited"
)

// Frame is the renderer-facing view of one step.
type Frame struct {
	RunID string
	// Title names the container: "Queue" or "Stack".
	Title     string
	Step      traversal.Step
	Nodes     []nodeid.ID
	Classes   map[nodeid.ID]Class
	Structure []nodeid.ID
	Visited   []nodeid.ID
}

// Classify derives node classes from a step. Visited wins over everything;
// pending and touched nodes are frontier; the current node, if not visited
// yet, is current.
func Classify(nodes []nodeid.ID, step traversal.Step) map[nodeid.ID]Class {
	classes := make(map[nodeid.ID]Class, len(nodes))
	for _, id := range nodes {
		classes[id] = Unvisited
	}
	for _, id := range step.Visited {
		classes[id] = Visited
	}

	promote := func(id nodeid.ID, c Class) {
		if id.IsNone() || classes[id] == Visited {
			return
		}
		classes[id] = c
	}
	for _, id := range step.Structure {
		promote(id, Frontier)
	}
	promote(step.Touched, Frontier)
	promote(step.Current, Current)
	return classes
}

// NewFrame builds the frame for step over the given node set.
func NewFrame(runID string, nodes []nodeid.ID, step traversal.Step) Frame {
	return Frame{
		RunID:     runID,
		Title:     step.Algorithm.ContainerName(),
		Step:      step,
		Nodes:     append([]nodeid.ID(nil), nodes...),
		Classes:   Classify(nodes, step),
		Structure: step.Structure,
		Visited:   step.Visited,
	}
}

// Blank is the frame shown before any step: every node unvisited and both
// lists empty.
func Blank(alg traversal.Algorithm, nodes []nodeid.ID) Frame {
	classes := make(map[nodeid.ID]Class, len(nodes))
	for _, id := range nodes {
		classes[id] = Unvisited
	}
	return Frame{
		Title:     alg.ContainerName(),
		Step:      traversal.Step{Algorithm: alg, Phase: traversal.PhaseInit},
		Nodes:     append([]nodeid.ID(nil), nodes...),
		Classes:   classes,
		Structure: []nodeid.ID{},
		Visited:   []nodeid.ID{},
	}
}
