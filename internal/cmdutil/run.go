package cmdutil

import (
	"context"
	"errors"
	"log/slog"

	"readsanalyzer/core/reads"
	"readsanalyzer/internal/pipeline"
)

// Stats summarizes one ingest.
type Stats struct {
	Files   int
	Reads   int
	Bases   int64
	Skipped int // reads the processor rejected as malformed
}

// Ingest runs the shared pipeline and feeds every read into p. Reads that p
// rejects with reads.ErrInvalidRead are logged and skipped; any other
// error stops the run.
func Ingest(ctx context.Context, log *slog.Logger, cfg pipeline.Config, files []string, p reads.Processor) (Stats, error) {
	var st Stats
	onDone := cfg.OnFileDone
	cfg.OnFileDone = func(path string, n int) {
		log.Debug("input finished", "file", path, "reads", n)
		if onDone != nil {
			onDone(path, n)
		}
	}
	err := pipeline.ForEachRead(ctx, cfg, files, func(file string, r reads.RawRead) error {
		if err := p.ProcessRead(r.Sequence); err != nil {
			if errors.Is(err, reads.ErrInvalidRead) {
				Warnf(log, "%s: skipping read %q: %v", file, r.Name, err)
				st.Skipped++
				return nil
			}
			return err
		}
		st.Reads++
		st.Bases += int64(r.Len())
		return nil
	})
	if err == nil {
		st.Files = len(files)
	}
	return st, err
}
