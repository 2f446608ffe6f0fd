package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadBasic(t *testing.T) {
	const n = 10000
	keys := make([]int, n)
	vals := make([]int, n)
	for i := range keys {
		keys[i] = i
		vals[i] = i * 3
	}

	tree := Load(keys, vals)
	require.Equal(t, n, tree.Len())

	for i := 0; i < n; i++ {
		v, ok := tree.Get(i)
		require.True(t, ok)
		require.Equal(t, i*3, v)
	}

	count := 0
	it := tree.Iter()
	var last int
	first := true
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			require.Less(t, last, k)
		}
		last, first = k, false
		count++
	}
	require.Equal(t, n, count)
}

func TestLoadSingleElement(t *testing.T) {
	tree := Load([]int{7}, []string{"seven"})
	require.Equal(t, 1, tree.Len())
	v, ok := tree.Get(7)
	require.True(t, ok)
	require.Equal(t, "seven", v)
	// root stays a branch even when the whole tree is a single leaf
	require.NotNil(t, tree.root)
}

func TestLoadEmpty(t *testing.T) {
	tree := Load([]int{}, []int{})
	require.Equal(t, 0, tree.Len())
	require.True(t, tree.IsEmpty())
}

func TestLoadPanicsOnMismatchedLengths(t *testing.T) {
	require.Panics(t, func() {
		Load([]int{1, 2}, []int{1})
	})
}

func TestLoadMultiLevel(t *testing.T) {
	const n = 300000
	keys := make([]int, n)
	vals := make([]int, n)
	for i := range keys {
		keys[i] = i
		vals[i] = i
	}
	tree := Load(keys, vals)
	require.Equal(t, n, tree.Len())
	for _, k := range []int{0, 1, n / 2, n - 1} {
		v, ok := tree.Get(k)
		require.True(t, ok)
		require.Equal(t, k, v)
	}
}
