// Package registry provides the central "glue" for the renderer modules.
//
// The Registry maps the renderer names used in graph files (e.g.
// `renderer "terminal" {}`) to the compiled factories that build them. Modules
// add themselves through Module.Register during application startup; the
// configured renderer list is then validated against the registry before any
// renderer is constructed.
package registry
