package bptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leafChild(keys ...int) child[int, int] {
	lf := new(leaf[int, int])
	for _, k := range keys {
		lf.insert(k, k*10)
	}
	return childFromLeaf(lf)
}

func TestBranchFindAndChildAt(t *testing.T) {
	var br branch[int, int]
	br.insertChild(0, 5, leafChild(1, 3, 5))
	br.insertChild(1, 10, leafChild(7, 9, 10))

	i, found := br.find(5)
	require.True(t, found)
	require.Equal(t, 0, i)

	i, found = br.find(8)
	require.False(t, found)
	require.Equal(t, 1, i)

	i, found = br.find(11)
	require.False(t, found)
	require.Equal(t, 2, i)

	lf := br.childAt(0).leaf()
	require.Equal(t, []int{1, 3, 5}, lf.keys[:lf.count])
}

func TestBranchInsertChildPair(t *testing.T) {
	var br branch[int, int]
	br.insertChild(0, 5, leafChild(1, 5))
	br.insertChild(1, 20, leafChild(10, 20))

	br.insertChildPair(1, 8, leafChild(6, 8), 15, leafChild(12, 15))

	require.Equal(t, 4, br.count)
	require.Equal(t, []int{5, 8, 15, 20}, br.keys[:br.count])
}

func TestBranchRemoveChildAt(t *testing.T) {
	var br branch[int, int]
	br.insertChild(0, 5, leafChild(1, 5))
	br.insertChild(1, 10, leafChild(7, 10))
	br.insertChild(2, 15, leafChild(12, 15))

	removed := br.removeChildAt(1)
	require.Equal(t, 2, br.count)
	require.Equal(t, []int{5, 15}, br.keys[:br.count])
	require.Equal(t, 7, removed.leaf().keys[0])
}

func TestBranchInsertOverflowSplits(t *testing.T) {
	var br branch[int, int]
	for i := 0; i < branchCap; i++ {
		br.insertChild(i, i*2+1, leafChild(i*2, i*2+1))
	}

	right := br.insertOverflow(branchCap, branchCap*2+1, leafChild(branchCap*2, branchCap*2+1))

	require.Equal(t, (branchCap+1)/2, br.count)
	require.Equal(t, branchCap+1-br.count, right.count)
	require.True(t, br.highKey() < right.keys[0])
}

func TestBranchSplitPreservesHasBranches(t *testing.T) {
	var br branch[int, int]
	br.hasBranches = true
	for i := 0; i < 10; i++ {
		inner := new(branch[int, int])
		inner.hasBranches = false
		inner.insertChild(0, i, leafChild(i))
		br.insertChild(i, i, childFromBranch(inner))
	}
	right := br.split()
	require.True(t, right.hasBranches)
	require.Equal(t, 5, br.count)
	require.Equal(t, 5, right.count)
}
