// Package graphgen builds demo graphs: letter-named nodes laid out on a
// circle, joined by a random spanning chain plus extra random edges.
//
// All randomness of the tool lives here; the traversal engine itself is
// deterministic.
package graphgen

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/specialistvlad/graphstep/internal/graph"
	"github.com/specialistvlad/graphstep/internal/nodeid"
)

const (
	// MinNodes is the smallest graph the generator produces.
	MinNodes = 2
	// MaxNodes is the largest graph the generator produces (A..Z).
	MaxNodes = 26

	centerX = 400
	centerY = 250
	radius  = 190

	// extraEdgeFactor scales the number of edges added on top of the chain.
	extraEdgeFactor = 1.2
)

// Generator produces random edge sets from a seedable source.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator with a fixed seed; equal seeds yield equal graphs.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a generator seeded from the clock.
func NewRandom() *Generator {
	return New(uint64(time.Now().UnixNano()))
}

// Clamp bounds a requested node count to [MinNodes, MaxNodes].
func Clamp(n int) int {
	return max(MinNodes, min(MaxNodes, n))
}

// Letters returns the first n single-letter identifiers: A, B, C, ...
func Letters(n int) []nodeid.ID {
	n = max(0, min(MaxNodes, n))
	out := make([]nodeid.ID, n)
	for i := range n {
		out[i] = nodeid.ID(rune('A' + i))
	}
	return out
}

// Nodes lays n letter-named nodes out evenly on a circle.
func Nodes(n int) []graph.Node {
	ids := Letters(n)
	out := make([]graph.Node, len(ids))
	for i, id := range ids {
		a := 2 * math.Pi * float64(i) / float64(len(ids))
		out[i] = graph.Node{
			ID: id,
			X:  int(math.Round(centerX + radius*math.Cos(a))),
			Y:  int(math.Round(centerY + radius*math.Sin(a))),
		}
	}
	return out
}

// Edges returns a random connected edge set over nodes: a chain through a
// shuffled ordering guarantees connectivity, then up to 1.2*n extra distinct
// edges are drawn with at most n*n attempts.
func (g *Generator) Edges(nodes []graph.Node) []graph.Edge {
	ids := make([]nodeid.ID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	m := len(ids)

	var edges []graph.Edge
	seen := make(map[string]struct{})
	add := func(u, v nodeid.ID) {
		if v < u {
			u, v = v, u
		}
		e := graph.NewEdge(u, v)
		if _, ok := seen[e.Key()]; ok {
			return
		}
		seen[e.Key()] = struct{}{}
		edges = append(edges, e)
	}

	shuffled := append([]nodeid.ID(nil), ids...)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for i := 1; i < m; i++ {
		add(shuffled[i-1], shuffled[i])
	}

	if m < 2 {
		return edges
	}
	target := m - 1 + int(math.Floor(float64(m)*extraEdgeFactor))
	for tries := 0; len(edges) < target && tries < m*m; tries++ {
		u := ids[g.rng.IntN(m)]
		v := ids[g.rng.IntN(m)]
		if u == v {
			continue
		}
		add(u, v)
	}
	return edges
}

// Graph generates a fresh graph with a clamped node count.
func (g *Generator) Graph(n int) ([]graph.Node, []graph.Edge) {
	nodes := Nodes(Clamp(n))
	return nodes, g.Edges(nodes)
}
