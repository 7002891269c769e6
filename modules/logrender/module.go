// Package logrender emits every traversal step as a structured log record.
package logrender

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/registry"
	"github.com/specialistvlad/graphstep/internal/render"
	"github.com/specialistvlad/graphstep/internal/view"
)

// Name is the renderer name used in graph files.
const Name = "log"

// Renderer logs frames through the context logger.
type Renderer struct {
	level slog.Level
}

var _ render.Renderer = (*Renderer)(nil)

// New creates a log renderer writing records at level.
func New(level slog.Level) *Renderer {
	return &Renderer{level: level}
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, f view.Frame) error {
	s := f.Step
	ctxlog.FromContext(ctx).Log(ctx, r.level, "Traversal step.",
		"run_id", f.RunID,
		"algorithm", s.Algorithm.String(),
		"index", s.Index,
		"phase", string(s.Phase),
		"current", s.Current.String(),
		"touched", s.Touched.String(),
		strings.ToLower(f.Title), nodeid.Strings(f.Structure),
		"visited", nodeid.Strings(f.Visited),
	)
	return nil
}

// Clear implements render.Renderer.
func (r *Renderer) Clear(ctx context.Context, f view.Frame) error {
	ctxlog.FromContext(ctx).Log(ctx, r.level, "Traversal reset.", "algorithm", f.Step.Algorithm.String(), "nodes", len(f.Nodes))
	return nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the renderer with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer(Name, &registry.RegisteredRenderer{
		Settings: []string{"level"},
		New: func(_ context.Context, env registry.Env) (render.Renderer, error) {
			var level slog.Level
			if err := level.UnmarshalText([]byte(env.Settings.String("level", "info"))); err != nil {
				return nil, fmt.Errorf("setting 'level': %w", err)
			}
			return New(level), nil
		},
	})
}
