package registry

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/render"
)

// Build validates specs and constructs each renderer into fan. When a factory
// fails, the renderers already built are closed before returning.
func (r *Registry) Build(ctx context.Context, specs []config.Renderer, out io.Writer, fan *render.Fanout) error {
	if err := r.Validate(ctx, specs); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)

	for _, spec := range specs {
		h := r.renderers[spec.Name]
		rd, err := h.New(ctx, Env{Name: spec.Name, Settings: Settings(spec.Settings), Out: out})
		if err != nil {
			if cerr := fan.Close(ctx); cerr != nil {
				logger.Warn("Failed to close renderers after build error.", "error", cerr)
			}
			return fmt.Errorf("failed to build renderer '%s': %w", spec.Name, err)
		}
		fan.Add(spec.Name, rd)
		logger.Debug("Renderer built.", "renderer", spec.Name)
	}
	return nil
}
