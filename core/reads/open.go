package reads

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type zstdCloser struct{ d *zstd.Decoder }

func (z zstdCloser) Close() error { z.d.Close(); return nil }

// openReader opens path for reading; "-" is stdin. gzip and zstd input is
// detected by magic number or by the .gz / .zst suffix.
func openReader(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}
	br := bufio.NewReaderSize(src, 64<<10)
	sig, _ := br.Peek(4)

	switch {
	case (len(sig) >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	case (len(sig) == 4 && sig[0] == 0x28 && sig[1] == 0xb5 && sig[2] == 0x2f && sig[3] == 0xfd) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zstdCloser{zr}, closer}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, nil
}
