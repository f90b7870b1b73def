package kmercli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readsanalyzer/internal/clibase"
)

func parse(args ...string) (Options, error) { return ParseArgs(NewFlagSet("rs-kmers"), args) }

func TestDefaults(t *testing.T) {
	o, err := parse("reads.fa")
	require.NoError(t, err)
	assert.Equal(t, 21, o.K)
	assert.False(t, o.Canonical)
	assert.Equal(t, "text", o.Output)
	assert.Equal(t, []string{"reads.fa"}, o.SeqFiles)
}

func TestFlags(t *testing.T) {
	o, err := parse("-k", "5", "--canonical", "--counts", "-o", "jsonl", "-s", "a.fq")
	require.NoError(t, err)
	assert.Equal(t, 5, o.K)
	assert.True(t, o.Canonical)
	assert.True(t, o.Counts)
	assert.Equal(t, "jsonl", o.Output)
}

func TestRejects(t *testing.T) {
	_, err := parse("-k", "0", "a.fa")
	assert.ErrorContains(t, err, "--kmer-size")
	_, err = parse("-o", "fasta", "a.fa")
	assert.ErrorContains(t, err, "invalid --output")
	_, err = parse("--bogus", "a.fa")
	assert.Error(t, err)
}

func TestShortCircuits(t *testing.T) {
	_, err := parse("-h")
	assert.ErrorIs(t, err, pflag.ErrHelp)
	_, err = parse("--examples")
	assert.ErrorIs(t, err, clibase.ErrPrintedAndExitOK)
	o, err := parse("-v")
	require.NoError(t, err)
	assert.True(t, o.Version)
}

func TestConfigSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kmers:\n  kmer-size: 11\n  canonical: true\nassemble:\n  min-overlap: 5\n"), 0o644))
	o, err := parse("--config", path, "a.fa")
	require.NoError(t, err)
	assert.Equal(t, 11, o.K)
	assert.True(t, o.Canonical)
}
