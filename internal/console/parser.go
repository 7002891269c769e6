package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/graphgen"
	"github.com/specialistvlad/graphstep/internal/nodeid"
	"github.com/specialistvlad/graphstep/internal/playback"
	"github.com/specialistvlad/graphstep/internal/traversal"
)

var (
	// ErrEmpty is returned for blank lines.
	ErrEmpty = errors.New("empty command")
	// ErrUnknownCommand is returned for unrecognised verbs.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnknownNode is returned when a command names a node not in the graph.
	ErrUnknownNode = errors.New("unknown node")
)

const helpText = `commands:
  start [bfs|dfs] [node]  begin a fresh run and play it
  step | s | n            advance one step (pauses playback)
  pause | p               stop automatic stepping
  resume | play | r       continue automatic stepping
  reset                   discard the run and clear the display
  speed <ms>              set the stepping interval
  algo <bfs|dfs>          select the algorithm
  from <node>             select the start node
  regen <n>               generate a new random graph with n nodes
  randomize               keep the nodes, draw new random edges
  status                  print the controller state
  help                    print this text
  quit | exit | q         leave
`

// Parser builds commands bound to one graph and generator.
type Parser struct {
	graph *graph.Model
	gen   *graphgen.Generator
	out   io.Writer
}

// NewParser creates a parser. out receives status and help text.
func NewParser(g *graph.Model, gen *graphgen.Generator, out io.Writer) *Parser {
	return &Parser{graph: g, gen: gen, out: out}
}

// Help returns the command reference.
func Help() string {
	return helpText
}

// Parse converts one line into a command.
func (p *Parser) Parse(line string) (playback.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "start":
		return p.parseStart(args)
	case "step", "s", "n", "next":
		return noArgs(verb, args, func(ctx context.Context, c *playback.Controller) error {
			c.Step(ctx)
			return nil
		})
	case "pause", "p":
		return noArgs(verb, args, func(ctx context.Context, c *playback.Controller) error {
			c.Pause(ctx)
			return nil
		})
	case "resume", "play", "r":
		return noArgs(verb, args, func(ctx context.Context, c *playback.Controller) error {
			c.Resume(ctx)
			return nil
		})
	case "reset":
		return noArgs(verb, args, func(ctx context.Context, c *playback.Controller) error {
			c.Reset(ctx)
			return nil
		})
	case "speed":
		return parseSpeed(args)
	case "algo", "algorithm":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: %s <bfs|dfs>", verb)
		}
		alg, err := traversal.ParseAlgorithm(args[0])
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, c *playback.Controller) error {
			c.Select(ctx, alg, c.StartNode())
			return nil
		}, nil
	case "from":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: from <node>")
		}
		id, err := p.node(args[0])
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, c *playback.Controller) error {
			resolved, err := p.resolve(id)
			if err != nil {
				return err
			}
			c.Select(ctx, c.Algorithm(), resolved)
			return nil
		}, nil
	case "regen":
		return p.parseRegen(args)
	case "randomize":
		return noArgs(verb, args, func(ctx context.Context, c *playback.Controller) error {
			p.graph.ReplaceEdges(p.gen.Edges(p.graph.Nodes()))
			c.Reset(ctx)
			return nil
		})
	case "status":
		return noArgs(verb, args, func(_ context.Context, c *playback.Controller) error {
			_, err := io.WriteString(p.out, Status(c))
			return err
		})
	case "help", "?":
		return noArgs(verb, args, func(context.Context, *playback.Controller) error {
			_, err := io.WriteString(p.out, helpText)
			return err
		})
	case "quit", "exit", "q":
		return noArgs(verb, args, func(context.Context, *playback.Controller) error {
			return playback.ErrQuit
		})
	default:
		return nil, fmt.Errorf("%w: %q (type 'help')", ErrUnknownCommand, verb)
	}
}

func noArgs(verb string, args []string, cmd playback.Command) (playback.Command, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("%s takes no arguments", verb)
	}
	return cmd, nil
}

// parseStart accepts the algorithm and start node in either order.
func (p *Parser) parseStart(args []string) (playback.Command, error) {
	if len(args) > 2 {
		return nil, fmt.Errorf("usage: start [bfs|dfs] [node]")
	}
	var alg *traversal.Algorithm
	var start nodeid.ID
	for _, a := range args {
		if parsed, err := traversal.ParseAlgorithm(a); err == nil && alg == nil {
			alg = &parsed
			continue
		}
		id, err := p.node(a)
		if err != nil {
			return nil, err
		}
		start = id
	}

	return func(ctx context.Context, c *playback.Controller) error {
		a, s := c.Algorithm(), c.StartNode()
		if alg != nil {
			a = *alg
		}
		if !start.IsNone() {
			resolved, err := p.resolve(start)
			if err != nil {
				return err
			}
			s = resolved
		}
		c.Start(ctx, a, s)
		return nil
	}, nil
}

func parseSpeed(args []string) (playback.Command, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: speed <ms>")
	}
	ms, err := strconv.Atoi(strings.TrimSuffix(args[0], "ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid speed %q: %w", args[0], err)
	}
	if ms <= 0 {
		return nil, fmt.Errorf("%w: %dms", playback.ErrInvalidInterval, ms)
	}
	d := time.Duration(ms) * time.Millisecond
	return func(ctx context.Context, c *playback.Controller) error {
		return c.SetSpeed(ctx, d)
	}, nil
}

// parseRegen replaces the whole graph and moves the start to the first node.
func (p *Parser) parseRegen(args []string) (playback.Command, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: regen <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid node count %q: %w", args[0], err)
	}
	n = graphgen.Clamp(n)
	return func(ctx context.Context, c *playback.Controller) error {
		nodes, edges := p.gen.Graph(n)
		if err := p.graph.Replace(nodes, edges); err != nil {
			return err
		}
		c.Select(ctx, c.Algorithm(), nodes[0].ID)
		return nil
	}, nil
}

func (p *Parser) node(raw string) (nodeid.ID, error) {
	return nodeid.Parse(raw)
}

// resolve finds id in the graph, accepting a lower-case spelling of an
// upper-case identifier ("a" for "A").
func (p *Parser) resolve(id nodeid.ID) (nodeid.ID, error) {
	if p.graph.Has(id) {
		return id, nil
	}
	if upper := nodeid.ID(strings.ToUpper(string(id))); p.graph.Has(upper) {
		return upper, nil
	}
	return nodeid.None, fmt.Errorf("%w: %s", ErrUnknownNode, id)
}

// Status summarises the controller for the status command.
func Status(c *playback.Controller) string {
	s := fmt.Sprintf("state=%s algorithm=%s start=%s speed=%s", c.State(), c.Algorithm(), c.StartNode(), c.Interval())
	if last, ok := c.Last(); ok {
		s += fmt.Sprintf(" step=%d phase=%s", last.Index, last.Phase)
	}
	return s + "\n"
}
