// This file translates the HCL schema structs into the format-agnostic
// configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var edgeListType = cty.List(cty.List(cty.String))

func translateNode(n *NodeBlock) config.Node {
	return config.Node{ID: n.ID, X: n.X, Y: n.Y}
}

// translateEdges evaluates the `edges` attribute: a list of two-element
// string lists. An omitted attribute yields no edges.
func translateEdges(ctx context.Context, expr hcl.Expression) ([]config.Edge, error) {
	if !isExprDefined(ctx, expr, "edges") {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid edges: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	val, err := convert.Convert(val, edgeListType)
	if err != nil {
		return nil, fmt.Errorf("edges must be a list of [u, v] pairs: %w", err)
	}
	var pairs [][]string
	if err := gocty.FromCtyValue(val, &pairs); err != nil {
		return nil, fmt.Errorf("edges must be a list of [u, v] pairs: %w", err)
	}

	edges := make([]config.Edge, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("edge #%d must have exactly two endpoints, got %d", i, len(p))
		}
		edges = append(edges, config.Edge{U: p[0], V: p[1]})
	}
	return edges, nil
}

func translatePlayback(p *PlaybackBlock) config.Playback {
	if p == nil {
		return config.Playback{}
	}
	return config.Playback{Algorithm: p.Algorithm, Start: p.Start, SpeedMs: p.SpeedMs}
}

func translateGenerator(ctx context.Context, g *GeneratorBlock) (*config.Generator, error) {
	if g == nil {
		return nil, nil
	}
	out := &config.Generator{Nodes: g.Nodes}
	if !isExprDefined(ctx, g.Seed, "seed") {
		return out, nil
	}
	val, diags := g.Seed.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid generator seed: %w", diags)
	}
	if val.IsNull() {
		return out, nil
	}
	var seed uint64
	if err := gocty.FromCtyValue(val, &seed); err != nil {
		return nil, fmt.Errorf("generator seed must be a non-negative integer: %w", err)
	}
	out.Seed = &seed
	return out, nil
}

func translateRenderer(r *RendererBlock) (config.Renderer, error) {
	settings, err := bodyToStrings(r.Body)
	if err != nil {
		return config.Renderer{}, fmt.Errorf("renderer '%s': %w", r.Name, err)
	}
	return config.Renderer{Name: r.Name, Settings: settings}, nil
}
