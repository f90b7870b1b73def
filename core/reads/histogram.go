package reads

// Histogram returns h where h[v] is the number of entries of values equal
// to v, for v in 0..max(values). It returns nil for no values. Values must
// be non-negative.
func Histogram(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	h := make([]int, max+1)
	for _, v := range values {
		h[v]++
	}
	return h
}
