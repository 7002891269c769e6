package traversal

import (
	"slices"

	"github.com/specialistvlad/graphstep/internal/nodeid"
)

// frontier is the pending-work container of a run.
type frontier interface {
	put(id nodeid.ID)
	take() nodeid.ID
	len() int
	snapshot() []nodeid.ID
	// order returns neighbors in the sequence they should be admitted.
	order(neighbors []nodeid.ID) []nodeid.ID
}

func newFrontier(alg Algorithm) frontier {
	if alg == DFS {
		return &stack{}
	}
	return &queue{}
}

// queue is FIFO; head advances instead of shifting the slice.
type queue struct {
	items []nodeid.ID
	head  int
}

func (q *queue) put(id nodeid.ID) { q.items = append(q.items, id) }

func (q *queue) take() nodeid.ID {
	id := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return id
}

func (q *queue) len() int { return len(q.items) - q.head }

func (q *queue) snapshot() []nodeid.ID {
	return append(make([]nodeid.ID, 0, q.len()), q.items[q.head:]...)
}

func (q *queue) order(neighbors []nodeid.ID) []nodeid.ID { return neighbors }

// stack is LIFO; the top is the last element.
type stack struct {
	items []nodeid.ID
}

func (s *stack) put(id nodeid.ID) { s.items = append(s.items, id) }

func (s *stack) take() nodeid.ID {
	last := len(s.items) - 1
	id := s.items[last]
	s.items = s.items[:last]
	return id
}

func (s *stack) len() int { return len(s.items) }

func (s *stack) snapshot() []nodeid.ID {
	return append(make([]nodeid.ID, 0, len(s.items)), s.items...)
}

func (s *stack) order(neighbors []nodeid.ID) []nodeid.ID {
	rev := slices.Clone(neighbors)
	slices.Reverse(rev)
	return rev
}
