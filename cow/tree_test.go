package cow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeInsertGetReplace(t *testing.T) {
	tree := New[int, string]()

	_, had := tree.Insert(1, "one")
	require.False(t, had)

	old, had := tree.Insert(1, "ONE")
	require.True(t, had)
	require.Equal(t, "one", old)

	v, ok := tree.Get(1)
	require.True(t, ok)
	require.Equal(t, "ONE", v)

	require.Equal(t, 1, tree.Len())
}

func TestTreeManyInsertsAndRemoves(t *testing.T) {
	tree := New[int, int]()
	const n = 3000
	for i := 0; i < n; i++ {
		tree.Insert(i, i*2)
	}
	require.Equal(t, n, tree.Len())

	for i := 0; i < n; i++ {
		v, ok := tree.Get(i)
		require.True(t, ok)
		require.Equal(t, i*2, v)
	}

	for i := 0; i < n; i += 2 {
		v, ok := tree.Remove(i)
		require.True(t, ok)
		require.Equal(t, i*2, v)
	}
	require.Equal(t, n/2, tree.Len())

	for i := 1; i < n; i += 2 {
		v, ok := tree.Get(i)
		require.True(t, ok)
		require.Equal(t, i*2, v)
	}
}

// TestSnapshotIsolation is the central COW property: a snapshot taken
// before a batch of writes must keep reporting the pre-write state even
// as the live tree is mutated underneath it.
func TestSnapshotIsolation(t *testing.T) {
	tree := New[int, string]()
	for i := 0; i < 500; i++ {
		tree.Insert(i, "old")
	}

	snap := tree.Snapshot()
	require.Equal(t, 500, snap.Len())

	for i := 0; i < 500; i++ {
		tree.Insert(i, "new")
	}
	for i := 500; i < 1000; i++ {
		tree.Insert(i, "new")
	}
	for i := 0; i < 250; i++ {
		tree.Remove(i)
	}

	require.Equal(t, 750, tree.Len())

	// the snapshot is untouched by any of the above.
	require.Equal(t, 500, snap.Len())
	for i := 0; i < 500; i++ {
		v, ok := snap.Get(i)
		require.True(t, ok)
		require.Equal(t, "old", v)
	}
	_, ok := snap.Get(500)
	require.False(t, ok)

	for i := 0; i < 250; i++ {
		_, ok := tree.Get(i)
		require.False(t, ok)
	}
	for i := 250; i < 1000; i++ {
		v, ok := tree.Get(i)
		require.True(t, ok)
		require.Equal(t, "new", v)
	}

	snap.Release()
}

func TestTreeEmptyOperations(t *testing.T) {
	tree := New[int, int]()
	require.Equal(t, 0, tree.Len())
	_, ok := tree.Get(1)
	require.False(t, ok)
	_, ok = tree.Remove(1)
	require.False(t, ok)

	snap := tree.Snapshot()
	require.Equal(t, 0, snap.Len())
	_, ok = snap.Get(1)
	require.False(t, ok)
}

func TestRemoveToEmptyThenReinsert(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 50; i++ {
		tree.Insert(i, i)
	}
	for i := 0; i < 50; i++ {
		_, ok := tree.Remove(i)
		require.True(t, ok)
	}
	require.Equal(t, 0, tree.Len())

	tree.Insert(7, 70)
	v, ok := tree.Get(7)
	require.True(t, ok)
	require.Equal(t, 70, v)
}

func TestMultipleSnapshotsIndependentOfEachOther(t *testing.T) {
	tree := New[int, int]()
	tree.Insert(1, 1)
	s1 := tree.Snapshot()

	tree.Insert(2, 2)
	s2 := tree.Snapshot()

	tree.Insert(3, 3)

	require.Equal(t, 1, s1.Len())
	require.Equal(t, 2, s2.Len())
	require.Equal(t, 3, tree.Len())

	_, ok := s1.Get(2)
	require.False(t, ok)
	v, ok := s2.Get(2)
	require.True(t, ok)
	require.Equal(t, 2, v)

	s1.Release()
	s2.Release()
}
