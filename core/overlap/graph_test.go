package overlap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readsanalyzer/core/reads"
)

func build(t *testing.T, c Config, seqs ...string) *Graph {
	t.Helper()
	g, err := New(c)
	require.NoError(t, err)
	_, err = reads.FeedSequences(g, seqs...)
	require.NoError(t, err)
	return g
}

func edgeSet(g *Graph) map[Overlap]bool {
	m := map[Overlap]bool{}
	for _, e := range g.Edges() {
		m[e] = true
	}
	return m
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{MinOverlap: 0})
	assert.ErrorIs(t, err, reads.ErrInvalidConfig)
	_, err = New(Config{MinOverlap: 3, Source: SourcePolicy(9)})
	assert.ErrorIs(t, err, reads.ErrInvalidConfig)
}

func TestParseSourcePolicy(t *testing.T) {
	for _, p := range []SourcePolicy{SourceNoPredecessor, SourceMinInDegree} {
		got, err := ParseSourcePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParseSourcePolicy("leftmost")
	assert.ErrorIs(t, err, reads.ErrInvalidConfig)
	assert.Equal(t, "SourcePolicy(7)", SourcePolicy(7).String())
}

func TestThreeReadScenario(t *testing.T) {
	g := build(t, Config{MinOverlap: 3}, "ACGT", "CGTA", "GTAC")

	assert.Equal(t, []Overlap{
		NewOverlap("ACGT", "CGTA", 3),
		NewOverlap("CGTA", "GTAC", 3),
	}, g.Edges())
	assert.Equal(t, 2, g.EdgeCount())

	asm, err := g.Assembly()
	require.NoError(t, err)
	assert.Equal(t, "ACGTAC", asm)
}

func TestSelfLoopsKept(t *testing.T) {
	g := build(t, Config{MinOverlap: 3, KeepSelfLoops: true}, "ACGT", "CGTA", "GTAC")

	out, err := g.Overlaps("ACGT")
	require.NoError(t, err)
	assert.Equal(t, []Overlap{NewOverlap("ACGT", "ACGT", 4), NewOverlap("ACGT", "CGTA", 3)}, out)
	assert.Equal(t, 5, g.EdgeCount())

	dist, err := g.OverlapDistribution()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, dist)

	// Self edges never lead anywhere new, so the walk is unchanged.
	asm, err := g.Assembly()
	require.NoError(t, err)
	assert.Equal(t, "ACGTAC", asm)
}

func TestSelfLoopNeedsMinOverlap(t *testing.T) {
	g := build(t, Config{MinOverlap: 4, KeepSelfLoops: true}, "ACG")
	assert.Zero(t, g.EdgeCount())
}

func TestDuplicateReadKeepsAdjacency(t *testing.T) {
	g := build(t, Config{MinOverlap: 2}, "ACGTAC", "TACGGT", "GGTACG")
	before := g.Edges()
	distinct := g.DistinctSequences()

	require.NoError(t, g.ProcessRead("TACGGT"))
	assert.Equal(t, before, g.Edges())
	assert.Equal(t, distinct, g.DistinctSequences())

	n, err := g.SequenceAbundance("TACGGT")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dist, err := g.AbundanceDistribution()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, dist)
}

func TestEdgesIndependentOfInsertionOrder(t *testing.T) {
	seqs := []string{"ACGTAC", "TACGGT", "GGTACG", "CGTTAC", "ACG"}
	want := edgeSet(build(t, Config{MinOverlap: 2}, seqs...))
	require.NotEmpty(t, want)

	var permute func(k int)
	permute = func(k int) {
		if k == len(seqs) {
			got := edgeSet(build(t, Config{MinOverlap: 2}, seqs...))
			assert.Equal(t, want, got, "order %v", seqs)
			return
		}
		for i := k; i < len(seqs); i++ {
			seqs[k], seqs[i] = seqs[i], seqs[k]
			permute(k + 1)
			seqs[k], seqs[i] = seqs[i], seqs[k]
		}
	}
	permute(0)
}

func TestEdgesMatchPairwiseDefinition(t *testing.T) {
	seqs := []string{"ACGTAC", "TACGGT", "GGTACG", "CGTTAC", "ACG"}
	g := build(t, Config{MinOverlap: 2}, seqs...)

	want := map[Overlap]bool{}
	for _, a := range seqs {
		for _, b := range seqs {
			if a == b {
				continue
			}
			if l := naiveOverlapLength(a, b); l >= 2 {
				want[NewOverlap(a, b, l)] = true
			}
		}
	}
	assert.Equal(t, want, edgeSet(g))
}

func TestSourceSequencePolicies(t *testing.T) {
	// ACGT has no predecessor, CGTA has one (ACGT).
	seqs := []string{"ACGT", "CGTA"}

	g := build(t, Config{MinOverlap: 3}, seqs...)
	src, err := g.SourceSequence()
	require.NoError(t, err)
	assert.Equal(t, "ACGT", src)

	// The min-in-degree rule only considers edge destinations.
	g = build(t, Config{MinOverlap: 3, Source: SourceMinInDegree}, seqs...)
	src, err = g.SourceSequence()
	require.NoError(t, err)
	assert.Equal(t, "CGTA", src)
	_, err = g.Assembly()
	assert.ErrorIs(t, err, reads.ErrEmptyAssembly)

	// With self edges every sequence is a destination; ACGT has the fewest.
	g = build(t, Config{MinOverlap: 3, Source: SourceMinInDegree, KeepSelfLoops: true}, "ACGT", "CGTA", "GTAC")
	src, err = g.SourceSequence()
	require.NoError(t, err)
	assert.Equal(t, "ACGT", src)
}

func TestSourceFallsBackWhenEverySequenceHasPredecessor(t *testing.T) {
	g := build(t, Config{MinOverlap: 2}, "ACGA", "GACG")
	src, err := g.SourceSequence()
	require.NoError(t, err)
	assert.Equal(t, "GACG", src)

	asm, err := g.Assembly()
	require.NoError(t, err)
	assert.Equal(t, "GACGA", asm)
}

func TestMinInDegreeWithoutEdges(t *testing.T) {
	g := build(t, Config{MinOverlap: 2, Source: SourceMinInDegree}, "AAAA", "CCCC")
	_, err := g.SourceSequence()
	assert.ErrorIs(t, err, ErrNoSource)

	path, err := g.LayoutPath()
	require.NoError(t, err)
	assert.Empty(t, path)

	_, err = g.Assembly()
	assert.ErrorIs(t, err, reads.ErrEmptyAssembly)
}

func TestLayoutTieBreakFollowsInsertionOrder(t *testing.T) {
	g := build(t, Config{MinOverlap: 2}, "AACC", "CCGG", "CCTT")
	asm, err := g.Assembly()
	require.NoError(t, err)
	assert.Equal(t, "AACCGG", asm)

	g = build(t, Config{MinOverlap: 2}, "AACC", "CCTT", "CCGG")
	asm, err = g.Assembly()
	require.NoError(t, err)
	assert.Equal(t, "AACCTT", asm)
}

func TestLayoutPrefersLongestOverlap(t *testing.T) {
	g := build(t, Config{MinOverlap: 2}, "TTACGT", "GTAAAA", "ACGTCC")
	path, err := g.LayoutPath()
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, NewOverlap("TTACGT", "ACGTCC", 4), path[0])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, path[i-1].Dest(), path[i].Source())
	}
}

func TestSingleSequenceHasNoAssembly(t *testing.T) {
	g := build(t, Config{MinOverlap: 1, KeepSelfLoops: true}, "ACGT")
	path, err := g.LayoutPath()
	require.NoError(t, err)
	assert.Empty(t, path)

	_, err = g.Assembly()
	assert.ErrorIs(t, err, reads.ErrEmptyAssembly)
}

func TestEmptyGraphQueries(t *testing.T) {
	g := build(t, Config{MinOverlap: 3})

	_, err := g.AbundanceDistribution()
	assert.ErrorIs(t, err, reads.ErrEmptyGraph)
	_, err = g.OverlapDistribution()
	assert.ErrorIs(t, err, reads.ErrEmptyGraph)
	_, err = g.SourceSequence()
	assert.ErrorIs(t, err, reads.ErrEmptyGraph)

	_, err = g.Assembly()
	assert.ErrorIs(t, err, reads.ErrEmptyAssembly)
	assert.ErrorIs(t, err, reads.ErrEmptyGraph)
}

func TestUnknownSequence(t *testing.T) {
	g := build(t, Config{MinOverlap: 3}, "ACGT")
	_, err := g.SequenceAbundance("TTTT")
	assert.True(t, errors.Is(err, reads.ErrUnknownKey))
	_, err = g.Overlaps("TTTT")
	assert.ErrorIs(t, err, reads.ErrUnknownKey)
}

func TestEmptyReadRejectedAtomically(t *testing.T) {
	g := build(t, Config{MinOverlap: 3}, "ACGT")
	err := g.ProcessRead("")
	assert.ErrorIs(t, err, reads.ErrInvalidRead)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, []string{"ACGT"}, g.DistinctSequences())
}

func TestOverlapsReturnsCopy(t *testing.T) {
	g := build(t, Config{MinOverlap: 3}, "ACGT", "CGTA")
	out, err := g.Overlaps("ACGT")
	require.NoError(t, err)
	require.Len(t, out, 1)
	out[0] = NewOverlap("X", "Y", 9)

	again, err := g.Overlaps("ACGT")
	require.NoError(t, err)
	assert.Equal(t, NewOverlap("ACGT", "CGTA", 3), again[0])
	assert.Equal(t, "A", again[0].Extension())
	assert.Equal(t, "ACGT->CGTA (3)", again[0].String())
}

func TestAssembleSpellsPath(t *testing.T) {
	asm, err := Assemble([]Overlap{
		NewOverlap("ACGTAC", "TACGGT", 3),
		NewOverlap("TACGGT", "GGTTT", 3),
	})
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGGTTT", asm)

	_, err = Assemble(nil)
	assert.ErrorIs(t, err, reads.ErrEmptyAssembly)
}
