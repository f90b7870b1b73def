package assemblecli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readsanalyzer/core/overlap"
	"readsanalyzer/internal/cli"
	"readsanalyzer/internal/clibase"
	"readsanalyzer/internal/writers"
)

// Section is the config-file section read by rs-assemble.
const Section = "assemble"

type Options struct {
	clibase.Common

	MinOverlap int
	SelfLoops  bool
	Source     overlap.SourcePolicy
	Layout     bool
	DotFile    string
	ContigID   string
}

func NewFlagSet(name string) *pflag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "greedy overlap-layout assembly of sequencing reads", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nAssembly:")
		_, _ = fmt.Fprintf(out, "  -m, --min-overlap int       Minimum suffix/prefix overlap for an edge [%s]\n", def("min-overlap"))
		_, _ = fmt.Fprintf(out, "      --self-loops            Keep edges from a sequence to itself [%s]\n", def("self-loops"))
		_, _ = fmt.Fprintf(out, "      --source string         Layout start: no-predecessor | min-indegree [%s]\n", def("source"))
		_, _ = fmt.Fprintf(out, "      --layout                List layout edges in text output [%s]\n", def("layout"))
		_, _ = fmt.Fprintln(out, "      --dot file              Write the overlap graph in Graphviz DOT syntax")
		_, _ = fmt.Fprintf(out, "      --contig-id string      FASTA record id [%s]\n", def("contig-id"))
		_, _ = fmt.Fprintln(out, "  Output formats: text | json | fasta")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for rs-assemble.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "rs-assemble", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Assemble reads overlapping by at least 20 bases:")
		_, _ = fmt.Fprintln(w, "  rs-assemble -m 20 -o fasta reads.fa > contig.fa")
		_, _ = fmt.Fprintln(w, "\nInspect the overlap graph:")
		_, _ = fmt.Fprintln(w, "  rs-assemble -m 20 --layout --dot graph.dot reads.fa")
		_, _ = fmt.Fprintln(w, "  dot -Tsvg graph.dot > graph.svg")
	})
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	var c clibase.Common
	var source string
	noHeader := clibase.Register(fs, &c, "text")

	fs.IntVarP(&o.MinOverlap, "min-overlap", "m", 20, "minimum overlap length [20]")
	fs.BoolVar(&o.SelfLoops, "self-loops", false, "keep self-overlap edges [false]")
	fs.StringVar(&source, "source", overlap.SourceNoPredecessor.String(), "layout start policy")
	fs.BoolVar(&o.Layout, "layout", false, "list layout edges in text output [false]")
	fs.StringVar(&o.DotFile, "dot", "", "write Graphviz DOT to FILE")
	fs.StringVar(&o.ContigID, "contig-id", "contig_1", "FASTA record id")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if c.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if c.Help {
		return o, pflag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, Section, writers.Assembly.Formats()); err != nil {
		return o, err
	}
	if o.MinOverlap <= 0 {
		return o, errors.New("--min-overlap must be > 0")
	}
	p, err := overlap.ParseSourcePolicy(source)
	if err != nil {
		return o, err
	}
	o.Source = p
	if o.ContigID == "" {
		return o, errors.New("--contig-id must not be empty")
	}

	o.Common = c
	return o, nil
}
