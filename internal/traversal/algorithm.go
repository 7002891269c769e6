package traversal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unsupported names.
var ErrUnknownAlgorithm = errors.New("unknown traversal algorithm")

// Algorithm selects the traversal variant.
type Algorithm int

const (
	// BFS is breadth-first traversal over a FIFO queue.
	BFS Algorithm = iota
	// DFS is depth-first traversal over a LIFO stack.
	DFS
)

// ParseAlgorithm accepts "bfs", "dfs", "breadth-first" and "depth-first",
// case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first", "breadth_first":
		return BFS, nil
	case "dfs", "depth-first", "depth_first":
		return DFS, nil
	default:
		return BFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// String returns the short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ContainerName is the display title of the pending-work container.
func (a Algorithm) ContainerName() string {
	if a == DFS {
		return "Stack"
	}
	return "Queue"
}

// RemovePhase is the phase emitted when a node leaves the container.
func (a Algorithm) RemovePhase() Phase {
	if a == DFS {
		return PhasePop
	}
	return PhaseDequeue
}

// AdmitPhase is the phase emitted when a node enters the container.
func (a Algorithm) AdmitPhase() Phase {
	if a == DFS {
		return PhasePush
	}
	return PhaseEnqueue
}
