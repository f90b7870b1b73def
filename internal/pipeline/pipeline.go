package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"readsanalyzer/core/reads"
)

// Config controls the ingest pipeline.
type Config struct {
	Reads  reads.Options
	Buffer int // channel capacity between decoder and consumer (<=0 = 256)

	// OnFileDone, if set, is called from the decoder goroutine after every
	// read of path has been queued.
	OnFileDone func(path string, reads int)
}

type item struct {
	file string
	read reads.RawRead
}

// ForEachRead decodes files in order and calls visit for every read. It
// returns the first error from decoding or from visit; cancelling ctx
// stops both sides and returns ctx.Err().
func ForEachRead(ctx context.Context, cfg Config, files []string, visit func(file string, r reads.RawRead) error) error {
	buf := cfg.Buffer
	if buf <= 0 {
		buf = 256
	}
	g, gctx := errgroup.WithContext(ctx)
	ch := make(chan item, buf)

	g.Go(func() error {
		defer close(ch)
		for _, f := range files {
			n := 0
			err := reads.StreamPathCtx(gctx, f, cfg.Reads, func(r reads.RawRead) error {
				select {
				case ch <- item{file: f, read: r}:
					n++
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
			if cfg.OnFileDone != nil {
				cfg.OnFileDone(f, n)
			}
		}
		return nil
	})

	g.Go(func() error {
		for it := range ch {
			if err := visit(it.file, it.read); err != nil {
				return err
			}
		}
		return gctx.Err()
	})

	err := g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
