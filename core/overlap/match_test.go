package overlap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveOverlapLength scans L from min(len(a), len(b)) down to 1 and returns
// the first L whose suffix of a equals the prefix of b.
func naiveOverlapLength(a, b string) int {
	n := min(len(a), len(b))
	for l := n; l > 0; l-- {
		if a[len(a)-l:] == b[:l] {
			return l
		}
	}
	return 0
}

func TestOverlapLength(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"ACGTAC", "TACGGT", 3},
		{"ACGT", "CGTA", 3},
		{"CGTA", "ACGT", 1},
		{"ACGT", "ACGT", 4},
		{"AAAA", "AAAAAA", 4},
		{"AAAAAA", "AA", 2},
		{"ACGT", "TTTT", 1},
		{"ACGT", "GGGG", 0},
		{"", "ACGT", 0},
		{"ACGT", "", 0},
		{"ABABAB", "ABABX", 4},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapLength(tt.a, tt.b))
			assert.Equal(t, tt.want, naiveOverlapLength(tt.a, tt.b))
		})
	}
}

func TestOverlapLengthMatchesNaiveScan(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randSeq := func() string {
		b := make([]byte, rng.Intn(13))
		for i := range b {
			b[i] = "AC"[rng.Intn(2)]
		}
		return string(b)
	}
	for i := 0; i < 5000; i++ {
		a, b := randSeq(), randSeq()
		if got, want := OverlapLength(a, b), naiveOverlapLength(a, b); got != want {
			t.Fatalf("OverlapLength(%q, %q) = %d, want %d", a, b, got, want)
		}
	}
}

func TestFailure(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 0, 1, 2}, failure("ACAGAC"))
	assert.Empty(t, failure(""))
}
