package print

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/registry"
	"github.com/specialistvlad/graphstep/internal/render"
	"github.com/specialistvlad/graphstep/internal/view"
)

// Name is the renderer name used in graph files.
const Name = "print"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Renderer prints one plain line per step, suitable for piping.
type Renderer struct {
	out     io.Writer
	classes bool
}

var _ render.Renderer = (*Renderer)(nil)

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, f view.Frame) error {
	s := f.Step
	line := fmt.Sprintf("%s %d %s current=%s touched=%s %s=[%s] visited=[%s]",
		s.Algorithm, s.Index, s.Phase,
		orDash(s.Current), orDash(s.Touched),
		strings.ToLower(f.Title), join(f.Structure), join(f.Visited))
	if r.classes {
		line += " classes=" + formatClasses(f.Classes)
	}
	_, err := fmt.Fprintln(r.out, line)
	return err
}

// Clear implements render.Renderer.
func (r *Renderer) Clear(_ context.Context, f view.Frame) error {
	_, err := fmt.Fprintf(r.out, "%s reset\n", f.Step.Algorithm)
	return err
}

func orDash(id nodeid.ID) string {
	if id.IsNone() {
		return "-"
	}
	return string(id)
}

func join(ids []nodeid.ID) string {
	return strings.Join(nodeid.Strings(ids), ",")
}

// formatClasses prints non-unvisited classes sorted by node for consistent output.
func formatClasses(classes map[nodeid.ID]view.Class) string {
	keys := make([]string, 0, len(classes))
	for id, c := range classes {
		if c != view.Unvisited {
			keys = append(keys, string(id))
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%s", k, classes[nodeid.ID(k)]))
	}
	return strings.Join(parts, ",")
}

// Register registers the renderer with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer(Name, &registry.RegisteredRenderer{
		Settings: []string{"classes"},
		New: func(_ context.Context, env registry.Env) (render.Renderer, error) {
			classes, err := env.Settings.Bool("classes", false)
			if err != nil {
				return nil, err
			}
			return &Renderer{out: env.Out, classes: classes}, nil
		},
	})
}
