package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsFirstInsertionOrder(t *testing.T) {
	m := New[string, int](0)
	require.True(t, m.Set("b", 1))
	require.True(t, m.Set("a", 2))
	require.False(t, m.Set("b", 3))

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 0, m.Index("b"))
	assert.Equal(t, -1, m.Index("zz"))
}

func TestMapUpdate(t *testing.T) {
	m := New[string, int](4)
	inc := func(old int, _ bool) int { return old + 1 }
	m.Update("x", inc)
	m.Update("y", inc)
	assert.Equal(t, 2, m.Update("x", inc))

	var seen []string
	m.Each(func(k string, v int) bool {
		seen = append(seen, k)
		return true
	})
	assert.Equal(t, []string{"x", "y"}, seen)
	k, v := m.At(1)
	assert.Equal(t, "y", k)
	assert.Equal(t, 1, v)
}

func TestMapEachStops(t *testing.T) {
	m := New[int, int](0)
	for i := 0; i < 5; i++ {
		m.Set(i, i*i)
	}
	n := 0
	m.Each(func(int, int) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
	assert.Equal(t, 5, m.Len())
	assert.True(t, m.Has(4))
	assert.False(t, m.Has(5))
}

func TestMapKeysIsCopy(t *testing.T) {
	m := New[string, bool](0)
	m.Set("a", true)
	ks := m.Keys()
	ks[0] = "mutated"
	assert.Equal(t, []string{"a"}, m.Keys())
}
