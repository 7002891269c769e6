// Package terminal renders traversal frames as styled lines on a console.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/registry"
	"github.com/specialistvlad/graphstep/internal/render"
	"github.com/specialistvlad/graphstep/internal/view"
)

// Name is the renderer name used in graph files.
const Name = "terminal"

// Node colours follow the classic visualizer palette.
var (
	ColorUnvisited = lipgloss.Color("#9CA3AF")
	ColorFrontier  = lipgloss.Color("#F59E0B")
	ColorCurrent   = lipgloss.Color("#EF4444")
	ColorVisited   = lipgloss.Color("#10B981")
	ColorMuted     = lipgloss.Color("#2C4A54")
)

// Styles holds the lipgloss styles used for one renderer.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Classes map[view.Class]lipgloss.Style
}

// NewStyles builds the styles bound to lr. With color disabled every style is
// plain, so output is identical on any terminal.
func NewStyles(lr *lipgloss.Renderer, color bool) Styles {
	if !color {
		plain := lr.NewStyle()
		return Styles{
			Header: plain, Label: plain, Muted: plain,
			Classes: map[view.Class]lipgloss.Style{
				view.Unvisited: plain, view.Frontier: plain, view.Current: plain, view.Visited: plain,
			},
		}
	}
	chip := func(c lipgloss.Color) lipgloss.Style { return lr.NewStyle().Foreground(c).Bold(true) }
	return Styles{
		Header: lr.NewStyle().Bold(true),
		Label:  lr.NewStyle().Underline(true),
		Muted:  lr.NewStyle().Foreground(ColorMuted),
		Classes: map[view.Class]lipgloss.Style{
			view.Unvisited: lr.NewStyle().Foreground(ColorUnvisited),
			view.Frontier:  chip(ColorFrontier),
			view.Current:   chip(ColorCurrent).Reverse(true),
			view.Visited:   chip(ColorVisited),
		},
	}
}

// Renderer writes one block per frame.
type Renderer struct {
	out    io.Writer
	styles Styles
}

var _ render.Renderer = (*Renderer)(nil)

// New creates a terminal renderer writing to out.
func New(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, styles: NewStyles(lipgloss.NewRenderer(out), color)}
}

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, f view.Frame) error {
	_, err := io.WriteString(r.out, r.Format(f))
	return err
}

// Clear implements render.Renderer.
func (r *Renderer) Clear(_ context.Context, f view.Frame) error {
	var b strings.Builder
	b.WriteString(r.styles.Muted.Render(fmt.Sprintf("-- reset (%s) --", f.Step.Algorithm)))
	b.WriteByte('\n')
	b.WriteString(r.nodes(f))
	b.WriteByte('\n')
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Format renders a frame to text without writing it.
func (r *Renderer) Format(f view.Frame) string {
	var b strings.Builder
	header := fmt.Sprintf("%s #%d %s", strings.ToUpper(f.Step.Algorithm.String()), f.Step.Index, f.Step.Phase)
	if !f.Step.Current.IsNone() {
		header += " " + string(f.Step.Current)
	}
	if !f.Step.Touched.IsNone() && f.Step.Touched != f.Step.Current {
		header += " -> " + string(f.Step.Touched)
	}
	b.WriteString(r.styles.Header.Render(header))
	b.WriteByte('\n')
	b.WriteString(r.nodes(f))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s: %s\n", r.styles.Label.Render(f.Title), list(f.Structure))
	fmt.Fprintf(&b, "%s: %s\n", r.styles.Label.Render("Visited"), list(f.Visited))
	if f.Step.IsDone() {
		b.WriteString(r.styles.Muted.Render(fmt.Sprintf("done: %d node(s) visited", len(f.Visited))))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) nodes(f view.Frame) string {
	chips := make([]string, 0, len(f.Nodes))
	for _, id := range f.Nodes {
		style := r.styles.Classes[f.Classes[id]]
		chips = append(chips, style.Render(string(id)))
	}
	return "  " + strings.Join(chips, " ")
}

func list(ids []nodeid.ID) string {
	if len(ids) == 0 {
		return "(empty)"
	}
	return strings.Join(nodeid.Strings(ids), " ")
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the terminal renderer.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRenderer(Name, &registry.RegisteredRenderer{
		Settings: []string{"color"},
		New: func(_ context.Context, env registry.Env) (render.Renderer, error) {
			color, err := env.Settings.Bool("color", true)
			if err != nil {
				return nil, err
			}
			return New(env.Out, color), nil
		},
	})
}
