package bptree

import "cmp"

// InsertRecursive implements the recursive root-first split insertion
// algorithm: an independent, recursively-structured insertion that does
// not touch the cursor machinery in mutate.go/cursor.go. Tree.Insert
// uses the cursor-driven algorithm; this one exists to cross-check it
// (see tree_test.go) and is otherwise equivalent.
func (t *Tree[K, V]) InsertRecursive(key K, val V) (old V, hadOld bool) {
	if t.root == nil || t.root.count == 0 {
		t.insertEmpty(key, val)
		t.size++
		return old, false
	}
	outcome, old := insertIntoBranch(t.root, key, val)
	if outcome == outcomeFull {
		newRoot := new(branch[K, V])
		newRoot.hasBranches = true
		newRoot.count = 1
		newRoot.keys[0] = t.root.highKey()
		newRoot.kids[0] = childFromBranch(t.root)
		t.root = newRoot
		outcome, old = insertIntoBranch(t.root, key, val)
	}
	if outcome == outcomeAdded {
		t.size++
	}
	return old, outcome == outcomeReplaced
}

// insertIntoBranch inserts (key, val) into the subtree rooted at br.
//
//   - If key exceeds every high key currently recorded in br, the right
//     spine is extended: br's rightmost entry is retargeted to key before
//     descending into it.
//   - The outcome of the recursive call into the chosen child is handled
//     here: Replaced propagates directly; Added requires refreshing br's
//     recorded key for that child, since the child's own high key may
//     have grown; Full means the child has no room left.
//   - On a Full child: if br itself has a free slot, the child is
//     removed, split, and both halves reinserted, and insertion is
//     retried on br (now with room) from scratch. If br is itself full,
//     Full is propagated to br's own caller unchanged.
func insertIntoBranch[K cmp.Ordered, V any](br *branch[K, V], key K, val V) (outcome insertOutcome, old V) {
	i, _ := br.find(key)
	if i == br.count {
		i = br.count - 1
		br.keys[i] = key
	}

	var childOutcome insertOutcome
	if br.hasBranches {
		childOutcome, old = insertIntoBranch(br.childAt(i).branch(), key, val)
	} else {
		childOutcome, old = br.childAt(i).leaf().insert(key, val)
	}

	switch childOutcome {
	case outcomeReplaced:
		return outcomeReplaced, old
	case outcomeAdded:
		if br.hasBranches {
			br.keys[i] = br.childAt(i).branch().highKey()
		} else {
			br.keys[i] = br.childAt(i).leaf().highKey()
		}
		return outcomeAdded, old
	}

	// childOutcome == outcomeFull.
	if br.count == branchCap {
		return outcomeFull, old
	}

	oldChild := br.removeChildAt(i)
	var leftKey, rightKey K
	var rightChild child[K, V]
	if br.hasBranches {
		splitBr := oldChild.branch().split()
		leftKey, rightKey = oldChild.branch().highKey(), splitBr.highKey()
		rightChild = childFromBranch(splitBr)
	} else {
		splitLf := oldChild.leaf().split()
		leftKey, rightKey = oldChild.leaf().highKey(), splitLf.highKey()
		rightChild = childFromLeaf(splitLf)
	}
	br.insertChildPair(i, leftKey, oldChild, rightKey, rightChild)
	return insertIntoBranch(br, key, val)
}
