// internal/assembleapp/app.go
package assembleapp

import (
	"context"
	"fmt"
	"io"

	"readsanalyzer/core/overlap"
	"readsanalyzer/internal/appcore"
	"readsanalyzer/internal/assemblecli"
	"readsanalyzer/internal/output"
	"readsanalyzer/internal/writers"
)

// Name is the binary name.
const Name = "rs-assemble"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	fs := assemblecli.NewFlagSet(Name)
	opts, err := assemblecli.ParseArgs(fs, argv)
	if code, done := appcore.Parsed(Name, fs, err, opts.Version, assemblecli.PrintExamples, stdout, stderr); done {
		return code
	}

	g, err := overlap.New(overlap.Config{
		MinOverlap:    opts.MinOverlap,
		KeepSelfLoops: opts.SelfLoops,
		Source:        opts.Source,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return appcore.ExitUsage
	}

	return appcore.Run(parent, stdout, stderr, appcore.Job{
		Tool:      Name,
		Common:    opts.Common,
		Processor: g,
		Report: func(w io.Writer, info appcore.RunInfo) (bool, error) {
			info.Metrics.SetDistinct(g.Len())
			info.Metrics.SetEdges(g.EdgeCount())

			res := output.NewAssemblyResult(info.Run, g)
			res.Header = opts.Header
			res.Layout = opts.Layout
			res.ContigID = opts.ContigID
			info.Log.Info("graph built", "sequences", g.Len(), "edges", g.EdgeCount(),
				"source", res.Source, "layout_edges", len(res.Path), "assembly_length", len(res.Assembly))
			if res.Err != nil {
				info.Log.Debug("no assembly", "err", res.Err)
			}

			if err := writers.Assembly.Write(opts.Output, w, res); err != nil {
				return false, err
			}
			if opts.DotFile != "" {
				if err := writeDOT(opts.DotFile, w, res); err != nil {
					return false, fmt.Errorf("dot: %w", err)
				}
			}
			return res.Assembly == "", nil
		},
	})
}

// writeDOT writes the graph to path; "-" appends it to the report stream.
func writeDOT(path string, stdout io.Writer, res output.AssemblyResult) error {
	dst, err := writers.Create(path, stdout)
	if err != nil {
		return err
	}
	if err := output.WriteAssemblyDOT(dst, res); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
