package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafInsertGetRemove(t *testing.T) {
	var lf leaf[int, string]

	outcome, _ := lf.insert(5, "five")
	require.Equal(t, outcomeAdded, outcome)
	outcome, _ = lf.insert(1, "one")
	require.Equal(t, outcomeAdded, outcome)
	outcome, _ = lf.insert(3, "three")
	require.Equal(t, outcomeAdded, outcome)

	require.Equal(t, []int{1, 3, 5}, lf.keys[:lf.count])

	val, ok := lf.get(3)
	require.True(t, ok)
	require.Equal(t, "three", val)

	_, ok = lf.get(4)
	require.False(t, ok)

	outcome, old := lf.insert(3, "THREE")
	require.Equal(t, outcomeReplaced, outcome)
	require.Equal(t, "three", old)
	val, _ = lf.get(3)
	require.Equal(t, "THREE", val)

	k, v := lf.removeAt(1)
	require.Equal(t, 3, k)
	require.Equal(t, "THREE", v)
	require.Equal(t, []int{1, 5}, lf.keys[:lf.count])
}

func TestLeafFullReportsOutcomeFull(t *testing.T) {
	var lf leaf[int, int]
	for i := 0; i < leafCap; i++ {
		outcome, _ := lf.insert(i, i)
		require.Equal(t, outcomeAdded, outcome)
	}
	outcome, _ := lf.insert(-1, -1)
	require.Equal(t, outcomeFull, outcome)
	require.Equal(t, leafCap, lf.count)
}

func TestLeafInsertOverflowSplitsInHalf(t *testing.T) {
	var lf leaf[int, int]
	for i := 0; i < leafCap; i++ {
		lf.keys[i] = i * 2
		lf.vals[i] = i * 2
	}
	lf.count = leafCap

	right := lf.insertOverflow(leafCap, leafCap*2-1, leafCap*2-1)

	require.Equal(t, (leafCap+1)/2, lf.count)
	require.Equal(t, leafCap+1-lf.count, right.count)
	require.True(t, lf.highKey() < right.keys[0])

	// every original key is present in exactly one half, in order, plus
	// the newly inserted key.
	var got []int
	got = append(got, lf.keys[:lf.count]...)
	got = append(got, right.keys[:right.count]...)
	require.Len(t, got, leafCap+1)
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1], got[i])
	}
}

func TestLeafRemoveAtFrontAndBack(t *testing.T) {
	var lf leaf[int, int]
	for i := 0; i < 5; i++ {
		lf.insert(i, i*10)
	}
	k, v := lf.removeAt(0)
	require.Equal(t, 0, k)
	require.Equal(t, 0, v)

	k, v = lf.removeAt(lf.count - 1)
	require.Equal(t, 4, k)
	require.Equal(t, 40, v)

	require.Equal(t, []int{1, 2, 3}, lf.keys[:lf.count])
}

func TestLeafSplitStable(t *testing.T) {
	var lf leaf[int, int]
	for i := 0; i < 10; i++ {
		lf.insert(i, i)
	}
	right := lf.split()
	require.Equal(t, 5, lf.count)
	require.Equal(t, 5, right.count)
	require.Equal(t, []int{0, 1, 2, 3, 4}, lf.keys[:lf.count])
	require.Equal(t, []int{5, 6, 7, 8, 9}, right.keys[:right.count])
}
