// internal/kmerapp/app.go
package kmerapp

import (
	"context"
	"fmt"
	"io"

	"readsanalyzer/core/kmer"
	"readsanalyzer/internal/appcore"
	"readsanalyzer/internal/kmercli"
	"readsanalyzer/internal/output"
	"readsanalyzer/internal/writers"
)

// Name is the binary name.
const Name = "rs-kmers"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	fs := kmercli.NewFlagSet(Name)
	opts, err := kmercli.ParseArgs(fs, argv)
	if code, done := appcore.Parsed(Name, fs, err, opts.Version, kmercli.PrintExamples, stdout, stderr); done {
		return code
	}

	tab, err := kmer.New(kmer.Config{K: opts.K, Canonical: opts.Canonical})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return appcore.ExitUsage
	}

	return appcore.Run(parent, stdout, stderr, appcore.Job{
		Tool:      Name,
		Common:    opts.Common,
		Processor: tab,
		Report: func(w io.Writer, info appcore.RunInfo) (bool, error) {
			info.Metrics.SetDistinct(tab.Len())
			info.Log.Info("table built", "k", tab.K(), "canonical", tab.Canonical(),
				"total_kmers", tab.TotalKmers(), "distinct_kmers", tab.Len())
			res := output.KmerResult{Run: info.Run, Table: tab, Header: opts.Header, Counts: opts.Counts}
			return tab.Len() == 0, writers.Kmer.Write(opts.Output, w, res)
		},
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
