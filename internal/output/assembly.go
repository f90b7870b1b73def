package output

import (
	"io"

	"readsanalyzer/core/overlap"
	"readsanalyzer/internal/jsonutil"
	"readsanalyzer/pkg/api"
)

// AssemblyResult is everything the assembly renderers need. Build it with
// NewAssemblyResult so the layout is walked once per run.
type AssemblyResult struct {
	Run      api.RunV1
	Graph    *overlap.Graph
	Header   bool
	Layout   bool   // list layout edges in text output
	ContigID string // FASTA record id

	Source   string
	Path     []overlap.Overlap
	Assembly string
	Err      error // why Assembly is empty
}

// NewAssemblyResult derives the source, layout path and assembly of g.
func NewAssemblyResult(run api.RunV1, g *overlap.Graph) AssemblyResult {
	r := AssemblyResult{Run: run, Graph: g, Header: true, ContigID: "contig_1"}
	r.Source, _ = g.SourceSequence()
	path, err := g.LayoutPath()
	if err != nil {
		_, r.Err = g.Assembly()
		return r
	}
	r.Path = path
	r.Assembly, r.Err = overlap.Assemble(path)
	return r
}

// Sequences is the number of distinct sequences placed on the layout path.
func (r AssemblyResult) Sequences() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) + 1
}

func (r AssemblyResult) distributions() (abund, succ []int) {
	abund, err := r.Graph.AbundanceDistribution()
	if err != nil {
		abund = []int{}
	}
	succ, err = r.Graph.OverlapDistribution()
	if err != nil {
		succ = []int{}
	}
	return abund, succ
}

// ToOverlapV1 converts edges to the wire schema.
func ToOverlapV1(path []overlap.Overlap) []api.OverlapV1 {
	out := make([]api.OverlapV1, 0, len(path))
	for _, o := range path {
		out = append(out, api.OverlapV1{Source: o.Source(), Dest: o.Dest(), Overlap: o.Length()})
	}
	return out
}

// ToAssemblyReport converts to the v1 wire schema.
func ToAssemblyReport(r AssemblyResult) api.AssemblyReportV1 {
	cfg := r.Graph.Config()
	abund, succ := r.distributions()
	rep := api.AssemblyReportV1{
		RunV1:                 r.Run,
		MinOverlap:            cfg.MinOverlap,
		SelfLoops:             cfg.KeepSelfLoops,
		SourcePolicy:          cfg.Source.String(),
		DistinctSequences:     r.Graph.Len(),
		Edges:                 r.Graph.EdgeCount(),
		AbundanceDistribution: abund,
		OverlapDistribution:   succ,
		Source:                r.Source,
		Layout:                ToOverlapV1(r.Path),
		Assembly:              r.Assembly,
		AssemblyLength:        len(r.Assembly),
	}
	if r.Err != nil {
		rep.AssemblyError = r.Err.Error()
	}
	return rep
}

// WriteAssemblyText writes a commented summary, both distributions, the
// layout edges when requested, and the assembly line.
func WriteAssemblyText(w io.Writer, r AssemblyResult) error {
	ew := &errWriter{w: w}
	cfg := r.Graph.Config()
	ew.run(r.Run)
	ew.meta("min_overlap", cfg.MinOverlap)
	ew.meta("self_loops", cfg.KeepSelfLoops)
	ew.meta("source_policy", cfg.Source)
	ew.meta("distinct_sequences", r.Graph.Len())
	ew.meta("edges", r.Graph.EdgeCount())
	if r.Source != "" {
		ew.meta("source", r.Source)
	}
	ew.meta("assembly_length", len(r.Assembly))

	abund, succ := r.distributions()
	ew.histogram(SeqAbundHeader, r.Header, abund, 1)
	ew.printf("\n")
	ew.histogram(SuccessorsHeader, r.Header, succ, 0)

	if r.Layout {
		ew.printf("\n")
		if r.Header {
			ew.printf("%s\n", LayoutHeader)
		}
		for _, o := range r.Path {
			ew.printf("%s\t%s\t%d\n", o.Source(), o.Dest(), o.Length())
		}
	}

	ew.printf("\n")
	if r.Err != nil {
		ew.meta("assembly_error", r.Err)
	} else {
		ew.printf("assembly\t%s\n", r.Assembly)
	}
	return ew.err
}

// WriteAssemblyJSON writes the report as indented JSON.
func WriteAssemblyJSON(w io.Writer, r AssemblyResult) error {
	return jsonutil.EncodePretty(w, ToAssemblyReport(r))
}

// WriteAssemblyFASTA writes the assembly as one record wrapped at 60
// columns. An empty assembly writes nothing.
func WriteAssemblyFASTA(w io.Writer, r AssemblyResult) error {
	if r.Assembly == "" {
		return nil
	}
	ew := &errWriter{w: w}
	ew.printf(">%s length=%d reads=%d\n", r.ContigID, len(r.Assembly), r.Sequences())
	for i := 0; i < len(r.Assembly); i += fastaLineWidth {
		ew.printf("%s\n", r.Assembly[i:min(i+fastaLineWidth, len(r.Assembly))])
	}
	return ew.err
}
