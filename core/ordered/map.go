// Package ordered provides a map that remembers first-insertion order.
//
// Both read processors keep their state here so that every traversal
// (distinct keys, edge scans, tie-breaks) is reproducible regardless of
// Go's randomized map iteration.
package ordered

// Map is an insertion-ordered map. The zero value is not usable; call New.
type Map[K comparable, V any] struct {
	idx  map[K]int
	keys []K
	vals []V
}

// New returns an empty Map sized for about n entries.
func New[K comparable, V any](n int) *Map[K, V] {
	if n < 0 {
		n = 0
	}
	return &Map[K, V]{
		idx:  make(map[K]int, n),
		keys: make([]K, 0, n),
		vals: make([]V, 0, n),
	}
}

// Len reports the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.idx[k]
	return ok
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	i, ok := m.idx[k]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Set stores v under k. A new key is appended to the iteration order;
// an existing key keeps its position. It reports whether k was new.
func (m *Map[K, V]) Set(k K, v V) bool {
	if i, ok := m.idx[k]; ok {
		m.vals[i] = v
		return false
	}
	m.idx[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	return true
}

// Update replaces the value under k with fn(old, present) and returns it.
func (m *Map[K, V]) Update(k K, fn func(old V, present bool) V) V {
	i, ok := m.idx[k]
	if ok {
		m.vals[i] = fn(m.vals[i], true)
		return m.vals[i]
	}
	var zero V
	v := fn(zero, false)
	m.Set(k, v)
	return v
}

// Index returns the insertion rank of k, or -1.
func (m *Map[K, V]) Index(k K) int {
	if i, ok := m.idx[k]; ok {
		return i
	}
	return -1
}

// At returns the i-th entry in insertion order.
func (m *Map[K, V]) At(i int) (K, V) { return m.keys[i], m.vals[i] }

// Keys returns a copy of the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}

// Each calls fn for every entry in insertion order until fn returns false.
func (m *Map[K, V]) Each(fn func(k K, v V) bool) {
	for i := range m.keys {
		if !fn(m.keys[i], m.vals[i]) {
			return
		}
	}
}
