package reads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"
)

// Options controls how records are turned into RawReads.
type Options struct {
	MinLength int  // drop reads shorter than this (0 keeps everything)
	KeepCase  bool // by default sequences are upper-cased
}

// StreamCtx decodes FASTA or FASTQ from r and calls emit once per read, in
// file order. It returns promptly when ctx is done and stops at the first
// emit error, which it returns unchanged.
func StreamCtx(ctx context.Context, r io.Reader, opt Options, emit func(RawRead) error) error {
	fr, err := fastx.NewReaderFromIO(nil, r, "")
	if err != nil {
		return fmt.Errorf("fastx: %w", err)
	}
	defer fr.Close()

	for n := 0; ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := fr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("record %d: %w", n+1, err)
		}
		rr := toRawRead(rec, opt.KeepCase)
		if rr.Len() < opt.MinLength {
			continue
		}
		if err := emit(rr); err != nil {
			return err
		}
	}
}

// StreamPathCtx is StreamCtx over a file path ("-" for stdin, gzip/zstd aware).
func StreamPathCtx(ctx context.Context, path string, opt Options, emit func(RawRead) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := StreamCtx(ctx, rc, opt, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadAll collects every read of r.
func ReadAll(ctx context.Context, r io.Reader, opt Options) ([]RawRead, error) {
	var out []RawRead
	err := StreamCtx(ctx, r, opt, func(rr RawRead) error {
		out = append(out, rr)
		return nil
	})
	return out, err
}

func toRawRead(rec *fastx.Record, keepCase bool) RawRead {
	seq := rec.Seq.Seq
	if !keepCase {
		seq = bytes.ToUpper(seq)
	}
	// Name holds the whole header line; ID is its first word.
	comment := bytes.TrimSpace(bytes.TrimPrefix(rec.Name, rec.ID))
	return RawRead{
		Name:     string(rec.ID),
		Comment:  string(comment),
		Sequence: string(seq),
		Quality:  string(rec.Seq.Qual),
	}
}
