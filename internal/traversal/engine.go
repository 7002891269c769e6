package traversal

import (
	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/nodeid"
)

// Stepper produces traversal steps on demand. ok is false once the sequence
// is exhausted; every later call returns false as well.
type Stepper interface {
	Next() (step Step, ok bool)
}

type stage int

const (
	stageSeed stage = iota
	stageTake
	stageVisit
	stageExpand
	stageExhausted
)

// Engine is the explicit cursor of one traversal run. It is not safe for
// concurrent use and cannot be restarted; build a new one per run.
type Engine struct {
	alg   Algorithm
	start nodeid.ID
	adj   graph.Adjacency

	frontier    frontier
	inStructure map[nodeid.ID]struct{}
	visited     map[nodeid.ID]struct{}
	order       []nodeid.ID

	stage   stage
	current nodeid.ID
	pending []nodeid.ID
	next    int
	index   int
}

// New creates an engine for one run of alg from start over adj. A start node
// missing from adj is treated as having no neighbors.
func New(alg Algorithm, start nodeid.ID, adj graph.Adjacency) *Engine {
	return &Engine{
		alg:         alg,
		start:       start,
		adj:         adj,
		frontier:    newFrontier(alg),
		inStructure: make(map[nodeid.ID]struct{}),
		visited:     make(map[nodeid.ID]struct{}),
		order:       []nodeid.ID{},
	}
}

// Algorithm returns the variant this engine runs.
func (e *Engine) Algorithm() Algorithm {
	return e.alg
}

// Start returns the start node of the run.
func (e *Engine) Start() nodeid.ID {
	return e.start
}

// Emitted returns how many steps have been produced so far.
func (e *Engine) Emitted() int {
	return e.index
}

// Exhausted reports whether the done step has already been produced.
func (e *Engine) Exhausted() bool {
	return e.stage == stageExhausted
}

// Next advances the run by exactly one transition.
func (e *Engine) Next() (Step, bool) {
	for {
		switch e.stage {
		case stageSeed:
			e.admit(e.start)
			e.stage = stageTake
			return e.emit(PhaseInit, nodeid.None, nodeid.None), true

		case stageTake:
			if e.frontier.len() == 0 {
				e.stage = stageExhausted
				e.current = nodeid.None
				return e.emit(PhaseDone, nodeid.None, nodeid.None), true
			}
			v := e.frontier.take()
			delete(e.inStructure, v)
			e.current = v
			e.stage = stageVisit
			return e.emit(e.alg.RemovePhase(), v, nodeid.None), true

		case stageVisit:
			v := e.current
			if _, seen := e.visited[v]; seen {
				// A duplicate removal produces no visit and no expansion.
				e.stage = stageTake
				continue
			}
			e.visited[v] = struct{}{}
			e.order = append(e.order, v)
			e.pending = e.frontier.order(e.adj.Neighbors(v))
			e.next = 0
			e.stage = stageExpand
			return e.emit(PhaseVisit, v, nodeid.None), true

		case stageExpand:
			for e.next < len(e.pending) {
				nb := e.pending[e.next]
				e.next++
				if e.isVisited(nb) || e.isPending(nb) {
					continue
				}
				e.admit(nb)
				return e.emit(e.alg.AdmitPhase(), e.current, nb), true
			}
			e.pending = nil
			e.stage = stageTake

		default:
			return Step{}, false
		}
	}
}

func (e *Engine) admit(id nodeid.ID) {
	e.frontier.put(id)
	e.inStructure[id] = struct{}{}
}

func (e *Engine) isVisited(id nodeid.ID) bool {
	_, ok := e.visited[id]
	return ok
}

func (e *Engine) isPending(id nodeid.ID) bool {
	_, ok := e.inStructure[id]
	return ok
}

func (e *Engine) emit(phase Phase, current, touched nodeid.ID) Step {
	s := Step{
		Index:     e.index,
		Algorithm: e.alg,
		Phase:     phase,
		Current:   current,
		Touched:   touched,
		Structure: e.frontier.snapshot(),
		Visited:   append(make([]nodeid.ID, 0, len(e.order)), e.order...),
	}
	e.index++
	return s
}

// Collect drains s and returns every remaining step.
func Collect(s Stepper) []Step {
	var steps []Step
	for {
		step, ok := s.Next()
		if !ok {
			return steps
		}
		steps = append(steps, step)
	}
}

// Run is a convenience that builds an engine and drains it.
func Run(alg Algorithm, start nodeid.ID, adj graph.Adjacency) []Step {
	return Collect(New(alg, start, adj))
}
