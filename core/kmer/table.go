// Package kmer counts fixed-length substrings (k-mers) of reads.
package kmer

import (
	"fmt"

	"readsanalyzer/core/ordered"
	"readsanalyzer/core/reads"
)

// Config holds table parameters.
type Config struct {
	K         int  // k-mer length, > 0
	Canonical bool // count a k-mer and its reverse complement together
}

// Table is a k-mer frequency table. Every key has length K and every count
// is at least 1; counts only grow. Not safe for concurrent use.
type Table struct {
	cfg    Config
	counts *ordered.Map[string, int]
	total  int
}

var _ reads.Processor = (*Table)(nil)

// New creates an empty table.
func New(c Config) (*Table, error) {
	if c.K <= 0 {
		return nil, fmt.Errorf("%w: k-mer size must be > 0, got %d", reads.ErrInvalidConfig, c.K)
	}
	return &Table{cfg: c, counts: ordered.New[string, int](1 << 10)}, nil
}

// K returns the k-mer length.
func (t *Table) K() int { return t.cfg.K }

// Canonical reports whether k-mers are folded with their reverse complement.
func (t *Table) Canonical() bool { return t.cfg.Canonical }

// ProcessRead counts every k-mer starting at positions 0..len(seq)-K.
// Reads shorter than K contribute nothing.
func (t *Table) ProcessRead(seq string) error {
	k := t.cfg.K
	for i := 0; i+k <= len(seq); i++ {
		t.counts.Update(t.key(seq[i:i+k]), inc)
		t.total++
	}
	return nil
}

func inc(n int, _ bool) int { return n + 1 }

func (t *Table) key(kmer string) string {
	if t.cfg.Canonical {
		return Canonical(kmer)
	}
	return kmer
}

// DistinctKmers returns the observed k-mers in first-observation order.
func (t *Table) DistinctKmers() []string { return t.counts.Keys() }

// Len is the number of distinct k-mers.
func (t *Table) Len() int { return t.counts.Len() }

// TotalKmers is the number of k-mer occurrences counted so far.
func (t *Table) TotalKmers() int { return t.total }

// Abundance returns how many times kmer was observed.
func (t *Table) Abundance(kmer string) (int, error) {
	if len(kmer) == t.cfg.K {
		kmer = t.key(kmer)
	}
	n, ok := t.counts.Get(kmer)
	if !ok {
		return 0, fmt.Errorf("%w: k-mer %q", reads.ErrUnknownKey, kmer)
	}
	return n, nil
}

// AbundanceDistribution returns d where d[c] is the number of distinct
// k-mers seen exactly c times, for c up to the largest count. d[0] is 0.
func (t *Table) AbundanceDistribution() ([]int, error) {
	if t.counts.Len() == 0 {
		return nil, reads.ErrEmptyTable
	}
	vals := make([]int, 0, t.counts.Len())
	t.counts.Each(func(_ string, n int) bool {
		vals = append(vals, n)
		return true
	})
	return reads.Histogram(vals), nil
}

// Each visits k-mers and their counts in first-observation order until fn
// returns false.
func (t *Table) Each(fn func(kmer string, count int) bool) { t.counts.Each(fn) }
