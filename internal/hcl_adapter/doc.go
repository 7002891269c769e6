// Package hcl_adapter reads graph files written in HCL and translates them
// into the format-agnostic config.Model.
//
// A graph file looks like:
//
//	node "A" {
//	  x = 400
//	  y = 60
//	}
//	node "B" {}
//
//	edges = [["A", "B"]]
//
//	playback {
//	  algorithm = "bfs"
//	  start     = "A"
//	  speed_ms  = 500
//	}
//
//	renderer "terminal" {
//	  color = true
//	}
package hcl_adapter
