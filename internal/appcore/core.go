// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"readsanalyzer/core/reads"
	"readsanalyzer/internal/clibase"
	"readsanalyzer/internal/cmdutil"
	"readsanalyzer/internal/logging"
	"readsanalyzer/internal/metrics"
	"readsanalyzer/internal/pipeline"
	"readsanalyzer/internal/progress"
	"readsanalyzer/internal/version"
	"readsanalyzer/internal/writers"
	"readsanalyzer/pkg/api"
)

// Exit codes shared by every tool.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// ReportFunc renders the processor result after ingest and reports whether
// the result is empty. It also sets the result gauges on run.Metrics.
type ReportFunc func(w io.Writer, run RunInfo) (empty bool, err error)

// RunInfo is what a report gets to know about the run.
type RunInfo struct {
	Run     api.RunV1
	Log     *slog.Logger
	Metrics *metrics.Recorder
}

// Job is one tool invocation.
type Job struct {
	Tool      string
	Common    clibase.Common
	Processor reads.Processor
	Report    ReportFunc
}

// Run ingests the job's inputs into its processor, writes the report and
// maps the outcome to an exit code.
func Run(parent context.Context, stdout, stderr io.Writer, job Job) int {
	c := job.Common
	lc := c.LoggingConfig()
	lc.Output = stderr
	log, err := logging.New(lc)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	runID := uuid.NewString()
	log = log.With("tool", job.Tool, "run_id", runID)
	log.Info("run started", "version", version.Version, "inputs", c.SeqFiles)

	rec := metrics.New(job.Tool)
	bar := progress.New(stderr, len(c.SeqFiles), c.Progress && !c.Quiet)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	start := time.Now()
	st, ierr := cmdutil.Ingest(ctx, log,
		pipeline.Config{
			Reads:      reads.Options{MinLength: c.MinLength, KeepCase: c.KeepCase},
			OnFileDone: func(string, int) { bar.FileDone() },
		},
		c.SeqFiles,
		rec.Instrument(job.Processor),
	)
	bar.Wait()
	elapsed := time.Since(start)
	rec.ObserveIngest(elapsed)

	if ierr != nil {
		switch {
		case errors.Is(ierr, context.Canceled):
			log.Warn("run cancelled", "reads", st.Reads)
			return ExitCancelled
		case errors.Is(ierr, reads.ErrInvalidConfig):
			log.Error("invalid configuration", "err", ierr)
			return ExitUsage
		}
		log.Error("ingest failed", "err", ierr)
		return ExitIO
	}
	log.Info("ingest finished", "files", st.Files, "reads", st.Reads, "bases", st.Bases,
		"skipped", st.Skipped, "elapsed", elapsed.Round(time.Millisecond))

	info := RunInfo{
		Run: api.RunV1{
			RunID: runID, Tool: job.Tool, Version: version.Version,
			Inputs: c.SeqFiles, Reads: st.Reads, Bases: st.Bases,
		},
		Log:     log,
		Metrics: rec,
	}
	empty, code := writeReport(c.OutFile, stdout, log, job.Report, info)
	if code != ExitOK {
		return code
	}

	if c.MetricsFile != "" {
		if err := rec.WriteTextfile(c.MetricsFile); err != nil {
			log.Error("writing metrics", "err", err)
			return ExitIO
		}
	}
	if empty {
		log.Warn("empty result", "exit_code", c.EmptyExitCode)
		return c.EmptyExitCode
	}
	return ExitOK
}

// writeReport opens the destination, renders through a buffered writer and
// closes it. A broken pipe counts as success.
func writeReport(path string, stdout io.Writer, log *slog.Logger, report ReportFunc, info RunInfo) (empty bool, code int) {
	dst, err := writers.Create(path, stdout)
	if err != nil {
		log.Error("opening output", "err", err)
		return false, ExitIO
	}
	outw := bufio.NewWriter(dst)
	empty, rerr := report(outw, info)
	ferr := outw.Flush()
	cerr := dst.Close()
	for _, e := range []error{rerr, ferr, cerr} {
		if writers.IsBrokenPipe(e) {
			return empty, ExitOK
		}
		if e != nil {
			log.Error("writing output", "err", e)
			return empty, ExitIO
		}
	}
	return empty, ExitOK
}
