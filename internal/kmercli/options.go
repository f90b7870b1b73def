package kmercli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readsanalyzer/internal/cli"
	"readsanalyzer/internal/clibase"
	"readsanalyzer/internal/writers"
)

// Section is the config-file section read by rs-kmers.
const Section = "kmers"

type Options struct {
	clibase.Common

	K         int
	Canonical bool
	Counts    bool
}

func NewFlagSet(name string) *pflag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, "k-mer abundance tables from sequencing reads", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nK-mers:")
		_, _ = fmt.Fprintf(out, "  -k, --kmer-size int         K-mer length [%s]\n", def("kmer-size"))
		_, _ = fmt.Fprintf(out, "      --canonical             Count a k-mer and its reverse complement together [%s]\n", def("canonical"))
		_, _ = fmt.Fprintf(out, "      --counts                Include every k-mer count in text/json output [%s]\n", def("counts"))
		_, _ = fmt.Fprintln(out, "  Output formats: text | tsv | json | jsonl")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for rs-kmers.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "rs-kmers", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Abundance distribution of 21-mers:")
		_, _ = fmt.Fprintln(w, "  rs-kmers -k 21 reads.fq.gz")
		_, _ = fmt.Fprintln(w, "\nEvery canonical 31-mer as JSON lines:")
		_, _ = fmt.Fprintln(w, "  rs-kmers -k 31 --canonical -o jsonl --out kmers.jsonl.zst reads_*.fq")
	})
}

func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	var c clibase.Common
	noHeader := clibase.Register(fs, &c, "text")

	fs.IntVarP(&o.K, "kmer-size", "k", 21, "k-mer length [21]")
	fs.BoolVar(&o.Canonical, "canonical", false, "count canonical k-mers [false]")
	fs.BoolVar(&o.Counts, "counts", false, "include every k-mer count [false]")

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

	if err := clibase.AfterParse(fs, &c, noHeader, Section, writers.Kmer.Formats()); err != nil {
		return o, err
	}
	if o.K <= 0 {
		return o, errors.New("--kmer-size must be > 0")
	}

	o.Common = c
	return o, nil
}
