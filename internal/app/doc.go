// Package app contains the core application logic. It loads a graph file,
// wires renderers and the playback controller, and runs the interactive
// session, decoupled from any specific entrypoint like a CLI.
package app
