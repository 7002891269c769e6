package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/graphstep/internal/config"
	"github.com/specialistvlad/graphstep/internal/ctxlog"
)

// ErrUnknownRenderer is returned when a configured renderer is not registered.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Validate checks that every configured renderer is registered and uses only
// the settings its module accepts. All problems are reported together.
func (r *Registry) Validate(ctx context.Context, specs []config.Renderer) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string
	var unknown bool

	for _, spec := range specs {
		h, ok := r.renderers[spec.Name]
		if !ok {
			unknown = true
			errs = append(errs, fmt.Sprintf("renderer '%s' is not registered (available: %s)", spec.Name, strings.Join(r.Names(), ", ")))
			continue
		}
		keys := make([]string, 0, len(spec.Settings))
		for k := range spec.Settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !h.accepts(k) {
				errs = append(errs, fmt.Sprintf("renderer '%s': unsupported setting '%s'", spec.Name, k))
			}
		}
	}

	if len(errs) == 0 {
		logger.Debug("Renderer configuration validated.", "count", len(specs))
		return nil
	}
	msg := "renderer validation failed:\n- " + strings.Join(errs, "\n- ")
	if unknown {
		return fmt.Errorf("%w: %s", ErrUnknownRenderer, msg)
	}
	return errors.New(msg)
}
