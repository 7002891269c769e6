// Package socketio streams traversal frames to a socket.io server, so a
// browser front end can draw the graph.
package socketio

import (
	"context"
	"errors"
	"time"

	"github.com/specialistvlad/graphstep/internal/ctxlog"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/registry"
	"github.com/specialistvlad/graphstep/internal/render"
	"github.com/specialistvlad/graphstep/internal/view"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	// Name is the renderer name used in graph files.
	Name = "socketio"

	DefaultConnectTimeout = 15 * time.Second
	DefaultStepEvent      = "step"
	DefaultClearEvent     = "clear"
)

// ErrClosed is returned when emitting after Close.
var ErrClosed = errors.New("socket.io renderer is closed")

// emitter is the slice of the socket client the renderer needs.
type emitter interface {
	emit(event string, payload map[string]any)
	disconnect()
}

type socketEmitter struct {
	io *socket.Socket
}

func (s socketEmitter) emit(event string, payload map[string]any) {
	s.io.Emit(event, payload)
}

func (s socketEmitter) disconnect() {
	s.io.Disconnect()
}

// Renderer emits one event per frame.
type Renderer struct {
	conn       emitter
	stepEvent  string
	clearEvent string
}

var _ render.Renderer = (*Renderer)(nil)
var _ render.Closer = (*Renderer)(nil)

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, f view.Frame) error {
	if r.conn == nil {
		return ErrClosed
	}
	r.conn.emit(r.stepEvent, Payload(f))
	return nil
}

// Clear implements render.Renderer.
func (r *Renderer) Clear(_ context.Context, f view.Frame) error {
	if r.conn == nil {
		return ErrClosed
	}
	r.conn.emit(r.clearEvent, Payload(f))
	return nil
}

// Close disconnects the client. It is safe to call more than once.
func (r *Renderer) Close(ctx context.Context) error {
	if r.conn == nil {
		return nil
	}
	ctxlog.FromContext(ctx).Info("Disconnecting socket.io renderer")
	r.conn.disconnect()
	r.conn = nil
	return nil
}

// Payload is the JSON-friendly event body for a frame.
func Payload(f view.Frame) map[string]any {
	classes := make(map[string]any, len(f.Classes))
	for id, c := range f.Classes {
		classes[string(id)] = string(c)
	}
	return map[string]any{
		"run_id":    f.RunID,
		"algorithm": f.Step.Algorithm.String(),
		"index":     f.Step.Index,
		"phase":     string(f.Step.Phase),
		"current":   f.Step.Current.String(),
		"touched":   f.Step.Touched.String(),
		"title":     f.Title,
		"structure": strs(f.Structure),
		"visited":   strs(f.Visited),
		"classes":   classes,
		"done":      f.Step.IsDone(),
	}
}

func strs(ids []nodeid.ID) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the renderer with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer(Name, &registry.RegisteredRenderer{
		Settings: []string{"url", "namespace", "insecure_skip_verify", "connect_timeout", "step_event", "clear_event"},
		New:      newFromSettings,
	})
}

func newFromSettings(ctx context.Context, env registry.Env) (render.Renderer, error) {
	url := env.Settings.String("url", "")
	if url == "" {
		return nil, errors.New("setting 'url' is required")
	}
	insecure, err := env.Settings.Bool("insecure_skip_verify", false)
	if err != nil {
		return nil, err
	}
	timeout, err := env.Settings.Duration("connect_timeout", DefaultConnectTimeout)
	if err != nil {
		return nil, err
	}

	io, err := Dial(ctx, DialOptions{
		URL:                url,
		Namespace:          env.Settings.String("namespace", "/"),
		InsecureSkipVerify: insecure,
		Timeout:            timeout,
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{
		conn:       socketEmitter{io: io},
		stepEvent:  env.Settings.String("step_event", DefaultStepEvent),
		clearEvent: env.Settings.String("clear_event", DefaultClearEvent),
	}, nil
}
