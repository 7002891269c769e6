// Package playback drives a traversal engine at a configurable cadence.
//
// # State Machine
//
//	idle ──Start/Resume──▶ running ──Pause──▶ paused
//	                         ▲  │               │
//	                         │  └───done───▶ finished
//	                         └────Resume────────┘
//	any state ──Reset──▶ idle
//
// A manual Step from idle builds an engine without entering running; the
// controller is then paused on that engine.
//
// # Single Stream of Control
//
// A Controller is not safe for concurrent use. Run is the event loop that
// owns it: it serialises ticks from the clock and Commands from callers, so
// every pull finishes (including the renderer call) before the next one can
// start. Pausing stops the ticker and leaves the engine cursor untouched.
//
// # Stale Engines
//
// The controller remembers the graph version an engine was built from. If
// the graph changed since, the next pull discards the engine instead of
// continuing on outdated adjacency.
package playback
