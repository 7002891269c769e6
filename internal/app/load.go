package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/fsutil"
	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/graphgen"
	"github.com/specialistvlad/graphstep/internal/hcl_adapter"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/traversal"
	"github.com/specialistvlad/graphstep/internal/yamlconfig"
)

// loaderFor picks the configuration loader by file extension. Directories
// and anything that is not YAML are read as HCL.
func loaderFor(path string) config.Loader {
	if fsutil.HasExtension(path, yamlconfig.Extensions...) {
		return yamlconfig.NewLoader()
	}
	return hcl_adapter.NewLoader()
}

// loadModel reads the graph file and applies the command-line overrides.
func loadModel(ctx context.Context, cfg *Config) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model, err := loaderFor(cfg.GraphPath).Load(ctx, cfg.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Algorithm != "" {
		model.Playback.Algorithm = cfg.Algorithm
	}
	if cfg.Start != "" {
		model.Playback.Start = cfg.Start
	}
	if cfg.SpeedMs > 0 {
		model.Playback.SpeedMs = cfg.SpeedMs
	}
	for _, name := range cfg.Renderers {
		if !slices.ContainsFunc(model.Renderers, func(r config.Renderer) bool { return r.Name == name }) {
			model.Renderers = append(model.Renderers, config.Renderer{Name: name, Settings: map[string]string{}})
		}
	}
	if len(model.Renderers) == 0 {
		model.Renderers = []config.Renderer{{Name: defaultRenderer, Settings: map[string]string{}}}
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.",
		"nodes", len(model.Nodes), "edges", len(model.Edges), "generated", model.Generator != nil)
	return model, nil
}

// buildGraph creates the graph model and the generator used for later
// regeneration. A seeded generator makes the whole session reproducible.
func buildGraph(model *config.Model) (*graph.Model, *graphgen.Generator, error) {
	var opts []graph.Option
	if model.MaxNodes > 0 {
		opts = append(opts, graph.WithMaxNodes(model.MaxNodes))
	}
	g := graph.New(opts...)

	gen := graphgen.NewRandom()
	if model.Generator != nil && model.Generator.Seed != nil {
		gen = graphgen.New(*model.Generator.Seed)
	}

	var (
		nodes []graph.Node
		edges []graph.Edge
		err   error
	)
	if model.Generator != nil {
		nodes, edges = gen.Graph(model.Generator.Nodes)
	} else if nodes, edges, err = model.Graph(); err != nil {
		return nil, nil, err
	}
	if err := g.Replace(nodes, edges); err != nil {
		return nil, nil, fmt.Errorf("failed to build graph: %w", err)
	}
	return g, gen, nil
}

// playbackSelection resolves the algorithm and start node. The start defaults
// to the first declared node and must exist in the graph.
func playbackSelection(model *config.Model, g *graph.Model) (traversal.Algorithm, nodeid.ID, error) {
	alg := traversal.BFS
	if model.Playback.Algorithm != "" {
		var err error
		if alg, err = traversal.ParseAlgorithm(model.Playback.Algorithm); err != nil {
			return alg, nodeid.None, err
		}
	}

	ids := g.NodeIDs()
	if len(ids) == 0 {
		return alg, nodeid.None, config.ErrNoGraph
	}
	start := ids[0]
	if model.Playback.Start != "" {
		id, err := nodeid.Parse(model.Playback.Start)
		if err != nil {
			return alg, nodeid.None, err
		}
		if !g.Has(id) {
			return alg, nodeid.None, fmt.Errorf("start node %s is not in the graph", id)
		}
		start = id
	}
	return alg, start, nil
}
