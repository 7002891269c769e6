package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"

	"github.com/specialistvlad/graphstep/internal/render"
)

// Module is the interface that all renderer modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Env is everything a factory receives to build one renderer instance.
type Env struct {
	// Name is the registered renderer name.
	Name string
	// Settings are the free-form attributes from the renderer block.
	Settings Settings
	// Out is where console-oriented renderers write.
	Out io.Writer
}

// Factory builds a renderer from its settings.
type Factory func(ctx context.Context, env Env) (render.Renderer, error)

// RegisteredRenderer holds the compiled parts of a renderer module.
type RegisteredRenderer struct {
	// Settings lists the accepted setting keys. Unknown keys are rejected.
	Settings []string
	New      Factory
}

// Registry holds every renderer registered for a single application instance.
type Registry struct {
	renderers map[string]*RegisteredRenderer
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{renderers: make(map[string]*RegisteredRenderer)}
}

// RegisterRenderer registers a renderer module under name. Registering the
// same name twice is a programming error and panics.
func (r *Registry) RegisterRenderer(name string, handler *RegisteredRenderer) {
	if _, exists := r.renderers[name]; exists {
		panic(fmt.Sprintf("renderer with name '%s' already registered", name))
	}
	if handler == nil || handler.New == nil {
		panic(fmt.Sprintf("renderer '%s' registered without a factory", name))
	}
	slog.Debug("Registering renderer.", "name", name)
	r.renderers[name] = handler
}

// Renderer looks up a registered renderer.
func (r *Registry) Renderer(name string) (*RegisteredRenderer, bool) {
	h, ok := r.renderers[name]
	return h, ok
}

// Names returns the registered renderer names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *RegisteredRenderer) accepts(key string) bool {
	return slices.Contains(h.Settings, key)
}
