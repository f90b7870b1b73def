package writers

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// stackCloser closes a compressor and then the file under it.
type stackCloser struct {
	io.Writer
	closers []io.Closer
}

func (s *stackCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Create opens the destination for a report. "" and "-" write to stdout
// (which is never closed); a .gz suffix compresses with gzip and .zst with
// zstd.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		zw := gzip.NewWriter(fh)
		return &stackCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &stackCloser{Writer: zw, closers: []io.Closer{zw, fh}}, nil
	}
	return fh, nil
}
