// Package progress draws a per-file ingest bar on stderr.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar counts finished input files. A nil *Bar is valid and does nothing,
// which is what New returns when progress is disabled.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar over files inputs writing to w, or returns nil when
// enabled is false.
func New(w io.Writer, files int, enabled bool) *Bar {
	if !enabled || files <= 0 {
		return nil
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(int64(files),
		mpb.PrependDecorators(
			decor.Name("processed files: ", decor.WC{W: len("processed files: "), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// FileDone advances the bar by one file.
func (b *Bar) FileDone() {
	if b == nil {
		return
	}
	b.bar.Increment()
}

// Wait stops the bar, aborting it if not every file finished, and waits
// for the final render.
func (b *Bar) Wait() {
	if b == nil {
		return
	}
	if !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
