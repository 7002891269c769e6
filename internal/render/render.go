// Package render defines the presentation contract the playback controller
// forwards frames to, and a fan-out that drives several renderers at once.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/metrics"
	"github.com/specialistvlad/graphstep/internal/view"
)

// Renderer displays frames. Implementations are called synchronously from
// the playback loop and must not retain the frame's slices.
type Renderer interface {
	// Render shows the frame of a freshly pulled step.
	Render(ctx context.Context, f view.Frame) error
	// Clear resets the display to the given blank frame.
	Clear(ctx context.Context, f view.Frame) error
}

// Closer is implemented by renderers that hold connections.
type Closer interface {
	Close(ctx context.Context) error
}

type named struct {
	name string
	r    Renderer
}

// Fanout forwards every call to each registered renderer in order. A failing
// renderer is logged and counted; the others still run.
type Fanout struct {
	renderers []named
	metrics   *metrics.Metrics
}

// NewFanout creates an empty fan-out. m may be nil.
func NewFanout(m *metrics.Metrics) *Fanout {
	return &Fanout{metrics: m}
}

// Add appends a renderer under name.
func (f *Fanout) Add(name string, r Renderer) {
	f.renderers = append(f.renderers, named{name: name, r: r})
}

// Len returns the number of renderers.
func (f *Fanout) Len() int {
	return len(f.renderers)
}

// Render implements Renderer.
func (f *Fanout) Render(ctx context.Context, fr view.Frame) error {
	return f.each(ctx, "render", func(r Renderer) error { return r.Render(ctx, fr) })
}

// Clear implements Renderer.
func (f *Fanout) Clear(ctx context.Context, fr view.Frame) error {
	return f.each(ctx, "clear", func(r Renderer) error { return r.Clear(ctx, fr) })
}

// Close closes every renderer that implements Closer.
func (f *Fanout) Close(ctx context.Context) error {
	var errs []error
	for _, n := range f.renderers {
		if c, ok := n.r.(Closer); ok {
			if err := c.Close(ctx); err != nil {
				errs = append(errs, fmt.Errorf("renderer %s: %w", n.name, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (f *Fanout) each(ctx context.Context, op string, call func(Renderer) error) error {
	logger := ctxlog.FromContext(ctx)
	var errs []error
	for _, n := range f.renderers {
		if err := call(n.r); err != nil {
			logger.Warn("Renderer failed.", "renderer", n.name, "op", op, "error", err)
			f.metrics.RenderFailed(n.name)
			errs = append(errs, fmt.Errorf("renderer %s: %w", n.name, err))
		}
	}
	return errors.Join(errs...)
}
