package overlap

// failure returns the KMP prefix function of p: f[i] is the length of the
// longest proper prefix of p[:i+1] that is also its suffix.
func failure(p string) []int {
	f := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = f[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		f[i] = k
	}
	return f
}

// suffixPrefix returns the largest L ≤ min(len(a), len(b)) such that the
// last L symbols of a equal the first L symbols of b, or 0. fb must be
// failure(b).
func suffixPrefix(a, b string, fb []int) int {
	if len(b) == 0 {
		return 0
	}
	k := 0
	for i := 0; i < len(a); i++ {
		c := a[i]
		for k > 0 && (k == len(b) || b[k] != c) {
			k = fb[k-1]
		}
		if k < len(b) && b[k] == c {
			k++
		}
	}
	return k
}

// OverlapLength returns the length of the longest suffix of a that is also
// a prefix of b.
func OverlapLength(a, b string) int {
	return suffixPrefix(a, b, failure(b))
}
