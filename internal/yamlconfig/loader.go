// Package yamlconfig reads graph files written in YAML. The document mirrors
// the HCL format:
//
//	nodes:
//	  - {id: A, x: 400, y: 60}
//	  - {id: B}
//	edges:
//	  - [A, B]
//	playback:
//	  algorithm: bfs
//	  start: A
//	  speed_ms: 500
//	renderers:
//	  - name: terminal
//	    color: "true"
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions picked up when a directory is loaded.
var Extensions = []string{".yaml", ".yml"}

type document struct {
	MaxNodes  int             `yaml:"max_nodes"`
	Nodes     []nodeEntry     `yaml:"nodes"`
	Edges     [][]string      `yaml:"edges"`
	Playback  *playbackEntry  `yaml:"playback"`
	Generator *generatorEntry `yaml:"generator"`
	Renderers []rendererEntry `yaml:"renderers"`
}

type nodeEntry struct {
	ID string `yaml:"id"`
	X  int    `yaml:"x"`
	Y  int    `yaml:"y"`
}

type playbackEntry struct {
	Algorithm string `yaml:"algorithm"`
	Start     string `yaml:"start"`
	SpeedMs   int    `yaml:"speed_ms"`
}

type generatorEntry struct {
	Nodes int     `yaml:"nodes"`
	Seed  *uint64 `yaml:"seed"`
}

type rendererEntry struct {
	Name     string            `yaml:"name"`
	Settings map[string]string `yaml:",inline"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file found under paths and merges them.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	files, err := fsutil.Expand(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		part, err := l.LoadBytes(ctx, src, file)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}
	return model, nil
}

// LoadBytes parses a single in-memory YAML document. Unknown top-level keys
// are rejected.
func (l *Loader) LoadBytes(_ context.Context, src []byte, filename string) (*config.Model, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}
	return translate(&doc, filename)
}

func translate(doc *document, filename string) (*config.Model, error) {
	model := &config.Model{MaxNodes: doc.MaxNodes}
	for _, n := range doc.Nodes {
		model.Nodes = append(model.Nodes, config.Node{ID: n.ID, X: n.X, Y: n.Y})
	}
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%s: edge #%d must have exactly two endpoints, got %d", filename, i, len(e))
		}
		model.Edges = append(model.Edges, config.Edge{U: e[0], V: e[1]})
	}
	if doc.Playback != nil {
		model.Playback = config.Playback{
			Algorithm: doc.Playback.Algorithm,
			Start:     doc.Playback.Start,
			SpeedMs:   doc.Playback.SpeedMs,
		}
	}
	if doc.Generator != nil {
		model.Generator = &config.Generator{Nodes: doc.Generator.Nodes, Seed: doc.Generator.Seed}
	}
	for _, r := range doc.Renderers {
		settings := r.Settings
		if settings == nil {
			settings = map[string]string{}
		}
		model.Renderers = append(model.Renderers, config.Renderer{Name: r.Name, Settings: settings})
	}
	return model, nil
}
