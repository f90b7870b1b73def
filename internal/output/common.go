// Package output renders processor results as text, TSV, JSON, FASTA and
// Graphviz DOT. The core packages never format anything themselves.
package output

import (
	"fmt"
	"io"

	"readsanalyzer/pkg/api"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// TSV column headers.
const (
	KmerCountsHeader = "kmer\tcount"
	KmerAbundHeader  = "abundance\tkmers"
	SeqAbundHeader   = "abundance\tsequences"
	SuccessorsHeader = "successors\tsequences"
	LayoutHeader     = "source\tdest\toverlap"
)

const fastaLineWidth = 60

// errWriter keeps the first write error so renderers can write
// unconditionally and check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func (e *errWriter) meta(key string, v any) { e.printf("# %s\t%v\n", key, v) }

// histogram writes the non-zero rows of d from index from on.
func (e *errWriter) histogram(header string, withHeader bool, d []int, from int) {
	if withHeader {
		e.printf("%s\n", header)
	}
	for i := from; i < len(d); i++ {
		if d[i] != 0 {
			e.printf("%d\t%d\n", i, d[i])
		}
	}
}

func (e *errWriter) run(run api.RunV1) {
	e.meta("tool", run.Tool)
	e.meta("version", run.Version)
	e.meta("run_id", run.RunID)
	for _, in := range run.Inputs {
		e.meta("input", in)
	}
	e.meta("reads", run.Reads)
	e.meta("bases", run.Bases)
}
