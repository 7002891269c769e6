package traversal

import "github.com/specialistvlad/graphstep/internal/nodeid"

// Phase names the kind of transition a Step records.
type Phase string

const (
	PhaseInit    Phase = "init"
	PhaseDequeue Phase = "dequeue"
	PhasePop     Phase = "pop"
	PhaseVisit   Phase = "visit"
	PhaseEnqueue Phase = "enqueue"
	PhasePush    Phase = "push"
	PhaseDone    Phase = "done"
)

// IsRemoval reports whether the phase removes a node from the container.
func (p Phase) IsRemoval() bool {
	return p == PhaseDequeue || p == PhasePop
}

// IsAdmission reports whether the phase adds a node to the container.
func (p Phase) IsAdmission() bool {
	return p == PhaseEnqueue || p == PhasePush
}

// Step is one discrete transition of a traversal. Structure and Visited are
// snapshots owned by the step; later engine progress never changes them.
type Step struct {
	// Index is the zero-based position of the step within its run.
	Index     int
	Algorithm Algorithm
	Phase     Phase
	// Current is the node being processed, or nodeid.None.
	Current nodeid.ID
	// Touched is the node admitted to the container by this step, or
	// nodeid.None. Only admission phases set it.
	Touched nodeid.ID
	// Structure is the container content, front/bottom first.
	Structure []nodeid.ID
	// Visited lists visited nodes in visitation order.
	Visited []nodeid.ID
}

// IsDone reports whether this is the terminal step of a run.
func (s Step) IsDone() bool {
	return s.Phase == PhaseDone
}
