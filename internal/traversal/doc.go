// Package traversal implements the step-addressable breadth-first and
// depth-first traversal engine.
//
// An Engine is a lazy, finite, non-restartable producer of Step values. Each
// call to Next performs exactly one discrete transition of the algorithm and
// returns a snapshot of it:
//
//	eng := traversal.New(traversal.BFS, "A", adj)
//	for {
//	    step, ok := eng.Next()
//	    if !ok {
//	        break
//	    }
//	    render(step)
//	}
//
// The engine has no notion of pausing or cancellation. A caller suspends a
// run by not calling Next and abandons it by dropping the reference; the
// engine holds no external resources.
//
// # Step Sequence
//
// Both variants share one skeleton:
//
//  1. Seed the container with the start node and emit an init step.
//  2. Remove one node (front of the queue for BFS, top of the stack for DFS)
//     and emit a dequeue/pop step. If the node was not visited yet, mark it,
//     emit a visit step, then emit one enqueue/push step per neighbor that is
//     neither visited nor already pending.
//  3. When the container is empty, emit a single done step.
//
// DFS pushes neighbors in reverse lexicographic order so they pop in
// ascending order, matching a recursive depth-first walk.
//
// Given the same adjacency, start and algorithm, the emitted sequence is
// always identical.
package traversal
