package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/fsutil"
)

// Extension is the file extension picked up when a directory is loaded.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every HCL file found under paths and merges them into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.Expand(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		part, err := l.decode(ctx, hclFile.Body, file)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}

	logger.Debug("HCL loading complete.", "nodes", len(model.Nodes), "edges", len(model.Edges), "renderers", len(model.Renderers))
	return model, nil
}

// LoadBytes parses a single in-memory HCL document.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, hclFile.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, file string) (*config.Model, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	model := &config.Model{}
	if root.MaxNodes != nil {
		model.MaxNodes = *root.MaxNodes
	}
	for _, n := range root.Nodes {
		model.Nodes = append(model.Nodes, translateNode(n))
	}
	edges, err := translateEdges(ctx, root.Edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	model.Edges = edges
	model.Playback = translatePlayback(root.Playback)
	if model.Generator, err = translateGenerator(ctx, root.Generator); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	for _, r := range root.Renderers {
		rd, err := translateRenderer(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		model.Renderers = append(model.Renderers, rd)
	}
	return model, nil
}
