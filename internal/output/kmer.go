package output

import (
	"io"

	"readsanalyzer/core/kmer"
	"readsanalyzer/internal/jsonutil"
	"readsanalyzer/pkg/api"
)

// KmerResult is everything the k-mer renderers need.
type KmerResult struct {
	Run    api.RunV1
	Table  *kmer.Table
	Header bool // column headers in text/TSV
	Counts bool // per-k-mer counts in text/JSON
}

// Distribution returns the abundance distribution, empty for an empty table.
func (r KmerResult) Distribution() []int {
	d, err := r.Table.AbundanceDistribution()
	if err != nil {
		return []int{}
	}
	return d
}

// KmerCounts lists every k-mer in first-observation order.
func KmerCounts(t *kmer.Table) []api.KmerCountV1 {
	out := make([]api.KmerCountV1, 0, t.Len())
	t.Each(func(k string, n int) bool {
		out = append(out, api.KmerCountV1{Kmer: k, Count: n})
		return true
	})
	return out
}

// ToKmerReport converts to the v1 wire schema.
func ToKmerReport(r KmerResult) api.KmerReportV1 {
	rep := api.KmerReportV1{
		RunV1:                 r.Run,
		K:                     r.Table.K(),
		Canonical:             r.Table.Canonical(),
		TotalKmers:            r.Table.TotalKmers(),
		DistinctKmers:         r.Table.Len(),
		AbundanceDistribution: r.Distribution(),
	}
	if r.Counts {
		rep.Counts = KmerCounts(r.Table)
	}
	return rep
}

// WriteKmerText writes a commented summary, the abundance distribution and,
// with Counts, every k-mer.
func WriteKmerText(w io.Writer, r KmerResult) error {
	ew := &errWriter{w: w}
	ew.run(r.Run)
	ew.meta("k", r.Table.K())
	ew.meta("canonical", r.Table.Canonical())
	ew.meta("total_kmers", r.Table.TotalKmers())
	ew.meta("distinct_kmers", r.Table.Len())
	ew.histogram(KmerAbundHeader, r.Header, r.Distribution(), 1)
	if r.Counts {
		ew.printf("\n")
		writeCounts(ew, r)
	}
	return ew.err
}

// WriteKmerTSV writes one k-mer per row and nothing else.
func WriteKmerTSV(w io.Writer, r KmerResult) error {
	ew := &errWriter{w: w}
	writeCounts(ew, r)
	return ew.err
}

func writeCounts(ew *errWriter, r KmerResult) {
	if r.Header {
		ew.printf("%s\n", KmerCountsHeader)
	}
	r.Table.Each(func(k string, n int) bool {
		ew.printf("%s\t%d\n", k, n)
		return ew.err == nil
	})
}

// WriteKmerJSON writes the report as indented JSON.
func WriteKmerJSON(w io.Writer, r KmerResult) error {
	return jsonutil.EncodePretty(w, ToKmerReport(r))
}
