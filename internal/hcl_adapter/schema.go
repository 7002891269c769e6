package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode every top-level construct from any file.
type fileRoot struct {
	MaxNodes  *int             `hcl:"max_nodes,optional"`
	Edges     hcl.Expression   `hcl:"edges,optional"`
	Nodes     []*NodeBlock     `hcl:"node,block"`
	Playback  *PlaybackBlock   `hcl:"playback,block"`
	Generator *GeneratorBlock  `hcl:"generator,block"`
	Renderers []*RendererBlock `hcl:"renderer,block"`
}

// NodeBlock maps to a `node "<id>" { ... }` block.
type NodeBlock struct {
	ID string `hcl:"id,label"`
	X  int    `hcl:"x,optional"`
	Y  int    `hcl:"y,optional"`
}

// PlaybackBlock maps to the `playback { ... }` block.
type PlaybackBlock struct {
	Algorithm string `hcl:"algorithm,optional"`
	Start     string `hcl:"start,optional"`
	SpeedMs   int    `hcl:"speed_ms,optional"`
}

// GeneratorBlock maps to the `generator { ... }` block.
type GeneratorBlock struct {
	Nodes int            `hcl:"nodes"`
	Seed  hcl.Expression `hcl:"seed,optional"`
}

// RendererBlock maps to a `renderer "<name>" { ... }` block. Its body is kept
// raw because each renderer module defines its own settings.
type RendererBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}
