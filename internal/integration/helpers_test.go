package integration

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"readsanalyzer/internal/assembleapp"
	"readsanalyzer/internal/kmerapp"
)

type result struct {
	code   int
	out    string
	errOut string
}

type app func(context.Context, []string, io.Writer, io.Writer) int

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func runCtx(ctx context.Context, run app, args ...string) result {
	var out, errBuf bytes.Buffer
	code := run(ctx, args, &out, &errBuf)
	return result{code: code, out: out.String(), errOut: errBuf.String()}
}

func kmers(args ...string) result { return runCtx(context.Background(), kmerapp.RunContext, args...) }

func assemble(args ...string) result {
	return runCtx(context.Background(), assembleapp.RunContext, args...)
}

// threeReads overlap pairwise by 3: ACGT -> CGTA -> GTAC spells ACGTAC.
const threeReadsFASTQ = "@r1\nACGT\n+\nIIII\n@r2\nCGTA\n+\nIIII\n@r3\nGTAC\n+\nIIII\n"
