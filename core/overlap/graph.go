package overlap

import (
	"errors"
	"fmt"
	"strings"

	"readsanalyzer/core/ordered"
	"readsanalyzer/core/reads"
)

// SourcePolicy selects how SourceSequence picks the start of the layout.
type SourcePolicy int

const (
	// SourceNoPredecessor picks the first-inserted sequence with no incoming
	// edge (self edges excluded). If every sequence has a predecessor it
	// falls back to the SourceMinInDegree rule over the same counts.
	SourceNoPredecessor SourcePolicy = iota
	// SourceMinInDegree picks, among sequences that are the destination of
	// at least one edge, the one with the fewest incoming edges. Ties go to
	// the destination seen first in edge order.
	SourceMinInDegree
)

var policyNames = map[SourcePolicy]string{
	SourceNoPredecessor: "no-predecessor",
	SourceMinInDegree:   "min-indegree",
}

func (p SourcePolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("SourcePolicy(%d)", int(p))
}

// ParseSourcePolicy maps a policy name back to its value.
func ParseSourcePolicy(s string) (SourcePolicy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown source policy %q (want no-predecessor | min-indegree)", reads.ErrInvalidConfig, s)
}

// ErrNoSource is returned by SourceSequence when the policy has no
// candidate, e.g. SourceMinInDegree on a graph without edges.
var ErrNoSource = errors.New("no source sequence")

// Config holds graph parameters.
type Config struct {
	MinOverlap    int // minimum overlap length for an edge, > 0
	KeepSelfLoops bool
	Source        SourcePolicy
}

type node struct {
	count int
	fail  []int // failure(sequence), reused by every scan against this node
	out   []Overlap
}

// Graph is an overlap graph. Not safe for concurrent use.
type Graph struct {
	cfg   Config
	nodes *ordered.Map[string, *node]
	edges int
}

var _ reads.Processor = (*Graph)(nil)

// New creates an empty graph.
func New(c Config) (*Graph, error) {
	if c.MinOverlap <= 0 {
		return nil, fmt.Errorf("%w: minimum overlap must be > 0, got %d", reads.ErrInvalidConfig, c.MinOverlap)
	}
	if _, ok := policyNames[c.Source]; !ok {
		return nil, fmt.Errorf("%w: %v", reads.ErrInvalidConfig, c.Source)
	}
	return &Graph{cfg: c, nodes: ordered.New[string, *node](1 << 8)}, nil
}

// Config returns the parameters the graph was built with.
func (g *Graph) Config() Config { return g.cfg }

// ProcessRead adds one read. A repeated sequence only bumps its abundance;
// a new one gets its successor edges (against sequences already present)
// and then predecessor edges from every present sequence.
func (g *Graph) ProcessRead(seq string) error {
	if seq == "" {
		return fmt.Errorf("%w: empty sequence", reads.ErrInvalidRead)
	}
	if nd, ok := g.nodes.Get(seq); ok {
		nd.count++
		return nil
	}

	nd := &node{count: 1, fail: failure(seq)}
	g.nodes.Each(func(t string, tn *node) bool {
		if l := suffixPrefix(seq, t, tn.fail); l >= g.cfg.MinOverlap {
			nd.out = append(nd.out, Overlap{src: seq, dst: t, length: l})
		}
		return true
	})
	g.nodes.Set(seq, nd)
	g.edges += len(nd.out)

	// The new node is already in the map, so this scan reaches it too.
	g.nodes.Each(func(s string, sn *node) bool {
		if s == seq && !g.cfg.KeepSelfLoops {
			return true
		}
		if l := suffixPrefix(s, seq, nd.fail); l >= g.cfg.MinOverlap {
			sn.out = append(sn.out, Overlap{src: s, dst: seq, length: l})
			g.edges++
		}
		return true
	})
	return nil
}

// DistinctSequences returns every sequence seen, in first-seen order.
func (g *Graph) DistinctSequences() []string { return g.nodes.Keys() }

// Len is the number of distinct sequences.
func (g *Graph) Len() int { return g.nodes.Len() }

// EdgeCount is the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// SequenceAbundance returns how many times seq was processed.
func (g *Graph) SequenceAbundance(seq string) (int, error) {
	nd, ok := g.nodes.Get(seq)
	if !ok {
		return 0, fmt.Errorf("%w: sequence %q", reads.ErrUnknownKey, seq)
	}
	return nd.count, nil
}

// Overlaps returns a copy of the outgoing edges of seq.
func (g *Graph) Overlaps(seq string) ([]Overlap, error) {
	nd, ok := g.nodes.Get(seq)
	if !ok {
		return nil, fmt.Errorf("%w: sequence %q", reads.ErrUnknownKey, seq)
	}
	return append([]Overlap(nil), nd.out...), nil
}

// Edges returns all edges grouped by source in first-seen order, each group
// in adjacency order.
func (g *Graph) Edges() []Overlap {
	out := make([]Overlap, 0, g.edges)
	g.nodes.Each(func(_ string, nd *node) bool {
		out = append(out, nd.out...)
		return true
	})
	return out
}

// AbundanceDistribution returns d where d[c] is the number of distinct
// sequences seen exactly c times. d[0] is 0.
func (g *Graph) AbundanceDistribution() ([]int, error) {
	return g.distribution(func(nd *node) int { return nd.count })
}

// OverlapDistribution returns d where d[n] is the number of sequences with
// exactly n outgoing edges.
func (g *Graph) OverlapDistribution() ([]int, error) {
	return g.distribution(func(nd *node) int { return len(nd.out) })
}

func (g *Graph) distribution(value func(*node) int) ([]int, error) {
	if g.nodes.Len() == 0 {
		return nil, reads.ErrEmptyGraph
	}
	vals := make([]int, 0, g.nodes.Len())
	g.nodes.Each(func(_ string, nd *node) bool {
		vals = append(vals, value(nd))
		return true
	})
	return reads.Histogram(vals), nil
}

// inDegrees counts incoming edges per destination, keyed in the order
// destinations first appear in Edges().
func (g *Graph) inDegrees(countSelf bool) *ordered.Map[string, int] {
	deg := ordered.New[string, int](g.nodes.Len())
	g.nodes.Each(func(_ string, nd *node) bool {
		for _, o := range nd.out {
			if !countSelf && o.src == o.dst {
				continue
			}
			deg.Update(o.dst, func(n int, _ bool) int { return n + 1 })
		}
		return true
	})
	return deg
}

func minInDegree(deg *ordered.Map[string, int]) (string, error) {
	if deg.Len() == 0 {
		return "", ErrNoSource
	}
	best, bestN := deg.At(0)
	deg.Each(func(s string, n int) bool {
		if n < bestN {
			best, bestN = s, n
		}
		return true
	})
	return best, nil
}

// SourceSequence returns the sequence the layout starts from, chosen by
// Config.Source.
func (g *Graph) SourceSequence() (string, error) {
	if g.nodes.Len() == 0 {
		return "", reads.ErrEmptyGraph
	}
	if g.cfg.Source == SourceMinInDegree {
		return minInDegree(g.inDegrees(true))
	}
	deg := g.inDegrees(false)
	for i := 0; i < g.nodes.Len(); i++ {
		if s, _ := g.nodes.At(i); !deg.Has(s) {
			return s, nil
		}
	}
	return minInDegree(deg)
}

// LayoutPath walks greedily from SourceSequence, each step taking the
// longest overlap to a sequence not yet visited (first in adjacency order
// on ties), until no such edge remains. The path may be empty.
func (g *Graph) LayoutPath() ([]Overlap, error) {
	cur, err := g.SourceSequence()
	if errors.Is(err, ErrNoSource) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	visited := make(map[string]struct{}, g.nodes.Len())
	var path []Overlap
	for {
		visited[cur] = struct{}{}
		nd, _ := g.nodes.Get(cur)
		best := -1
		for i, o := range nd.out {
			if _, seen := visited[o.dst]; seen {
				continue
			}
			if best < 0 || o.length > nd.out[best].length {
				best = i
			}
		}
		if best < 0 {
			return path, nil
		}
		path = append(path, nd.out[best])
		cur = nd.out[best].dst
	}
}

// Assembly concatenates the layout: the first source sequence followed by
// the extension of every edge.
func (g *Graph) Assembly() (string, error) {
	path, err := g.LayoutPath()
	if errors.Is(err, reads.ErrEmptyGraph) {
		return "", fmt.Errorf("%w: %w", reads.ErrEmptyAssembly, err)
	}
	if err != nil {
		return "", err
	}
	return Assemble(path)
}

// Assemble spells out a layout path.
func Assemble(path []Overlap) (string, error) {
	if len(path) == 0 {
		return "", reads.ErrEmptyAssembly
	}
	n := len(path[0].src)
	for _, o := range path {
		n += len(o.dst) - o.length
	}
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteString(path[0].src)
	for _, o := range path {
		sb.WriteString(o.Extension())
	}
	return sb.String(), nil
}
