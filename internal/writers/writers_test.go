package writers

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readsanalyzer/core/kmer"
	"readsanalyzer/core/reads"
	"readsanalyzer/internal/output"
	"readsanalyzer/pkg/api"
)

func TestUnknownFormatError(t *testing.T) {
	err := Kmer.Write("nope-format", io.Discard, output.KmerResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown k-mer format "nope-format"`)

	err = Assembly.Write("jsonl", io.Discard, output.AssemblyResult{})
	assert.ErrorContains(t, err, "unknown assembly format")
}

func TestRegisteredFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "text", "tsv"}, Kmer.Formats())
	assert.Equal(t, []string{"fasta", "json", "text"}, Assembly.Formats())
	assert.True(t, Assembly.Has("fasta"))
	assert.False(t, Kmer.Has("fasta"))
}

func TestWriteKmerJSONL(t *testing.T) {
	tab, err := kmer.New(kmer.Config{K: 3})
	require.NoError(t, err)
	_, err = reads.FeedSequences(tab, "ACGTA", "ACG")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, Kmer.Write(output.FormatJSONL, &b, output.KmerResult{Table: tab}))

	var got []api.KmerCountV1
	sc := bufio.NewScanner(&b)
	for sc.Scan() {
		var c api.KmerCountV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &c))
		got = append(got, c)
	}
	assert.Equal(t, []api.KmerCountV1{
		{Kmer: "ACG", Count: 2},
		{Kmer: "CGT", Count: 1},
		{Kmer: "GTA", Count: 1},
	}, got)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)))
	assert.False(t, IsBrokenPipe(io.EOF))
	assert.False(t, IsBrokenPipe(nil))
}

func TestCreateStdout(t *testing.T) {
	var b bytes.Buffer
	w, err := Create("-", &b)
	require.NoError(t, err)
	_, _ = io.WriteString(w, "x")
	require.NoError(t, w.Close())
	assert.Equal(t, "x", b.String())
}

func TestCreateCompressesBySuffix(t *testing.T) {
	const body = "assembly\tACGTAC\n"
	dir := t.TempDir()

	decoders := map[string]func(io.Reader) (io.Reader, error){
		"out.txt": func(r io.Reader) (io.Reader, error) { return r, nil },
		"out.gz":  func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) },
		"out.zst": func(r io.Reader) (io.Reader, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	}
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			w, err := Create(path, nil)
			require.NoError(t, err)
			_, err = io.WriteString(w, body)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			fh, err := os.Open(path)
			require.NoError(t, err)
			defer fh.Close()
			r, err := decode(fh)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, body, string(got))
		})
	}
}

func TestCreateBadPath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "out.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
