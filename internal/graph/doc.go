// Package graph holds the undirected graph that traversals run over.
//
// # Model and Adjacency
//
// The Model owns the node and edge collections. Every mutation (adding a
// node, adding an edge, replacing the whole graph) rebuilds the adjacency in
// full and bumps the model version. There is no incremental patching: graphs
// are bounded by MaxNodes and a rebuild is cheap.
//
// BuildAdjacency is the pure function behind the rebuild:
//
//	adj := graph.BuildAdjacency(nodes, edges)
//	adj.Neighbors("A") // sorted, deduplicated, symmetric
//
// Edges whose endpoints are unknown, or which form self-loops, are dropped
// silently. Looking up the neighbors of an unknown node yields an empty list.
//
// # Versions
//
// Consumers that derive long-lived state from the adjacency (the playback
// controller holds a traversal engine built from it) compare Version values to
// detect that the graph changed under them and must discard that state.
//
// # Thread-Safety
//
// A Model is not safe for concurrent use. The playback event loop is its only
// writer and reader.
package graph
