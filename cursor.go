package bptree

import "cmp"

// frame records one step of a descent: the branch visited and the index
// of the child taken from it.
type frame[K cmp.Ordered, V any] struct {
	br    *branch[K, V]
	index int
}

// cursor is a "pathed pointer": a fixed-capacity stack of frames
// from the root down to (but not including) a leaf, plus the leaf and
// the slot within it. A zero-value cursor is null — it names no entry —
// and every constructor and stepping method returns a null cursor rather
// than a half-built one when there is nothing to point at.
//
// The frame stack never grows past maxHeight: each level multiplies
// reachable entries by up to branchCap, so maxHeight levels already
// address far more entries than an in-memory tree can hold.
type cursor[K cmp.Ordered, V any] struct {
	frames [maxHeight]frame[K, V]
	depth  int
	lf     *leaf[K, V]
	slot   int
}

func (c *cursor[K, V]) isNull() bool {
	return c.lf == nil
}

func (c *cursor[K, V]) clear() {
	*c = cursor[K, V]{}
}

// key reports the key at the cursor's current position. Calling this on
// a null cursor is a bug: there is no entry to name.
func (c *cursor[K, V]) key() K {
	return c.lf.keys[c.slot]
}

func (c *cursor[K, V]) value() V {
	return c.lf.vals[c.slot]
}

func (c *cursor[K, V]) valuePtr() *V {
	return &c.lf.vals[c.slot]
}

// descendLeftmost walks down the leftmost spine starting at ch, landing
// at slot 0 of the leftmost leaf. hasBranches describes ch itself (the
// kind of node the caller is handing in), not the node that produced it.
func (c *cursor[K, V]) descendLeftmost(ch child[K, V], hasBranches bool) {
	for hasBranches {
		br := ch.branch()
		c.frames[c.depth] = frame[K, V]{br, 0}
		c.depth++
		hasBranches = br.hasBranches
		ch = br.childAt(0)
	}
	c.lf = ch.leaf()
	c.slot = 0
}

// descendRightmost is the mirror image of descendLeftmost, landing at
// the last slot of the rightmost leaf.
func (c *cursor[K, V]) descendRightmost(ch child[K, V], hasBranches bool) {
	for hasBranches {
		br := ch.branch()
		idx := br.count - 1
		c.frames[c.depth] = frame[K, V]{br, idx}
		c.depth++
		hasBranches = br.hasBranches
		ch = br.childAt(idx)
	}
	lf := ch.leaf()
	c.lf = lf
	c.slot = lf.count - 1
}

// stepForward advances the cursor to the next entry in ascending key
// order. Returns false, and leaves the cursor null, when there is no
// successor.
func (c *cursor[K, V]) stepForward() bool {
	if c.lf == nil {
		return false
	}
	if c.slot+1 < c.lf.count {
		c.slot++
		return true
	}
	for c.depth > 0 {
		f := &c.frames[c.depth-1]
		if f.index+1 < f.br.count {
			f.index++
			next := f.br.childAt(f.index)
			c.descendLeftmost(next, f.br.hasBranches)
			return true
		}
		c.depth--
	}
	c.clear()
	return false
}

// stepBack is the mirror image of stepForward, moving to the previous
// entry in ascending key order.
func (c *cursor[K, V]) stepBack() bool {
	if c.lf == nil {
		return false
	}
	if c.slot > 0 {
		c.slot--
		return true
	}
	for c.depth > 0 {
		f := &c.frames[c.depth-1]
		if f.index > 0 {
			f.index--
			prev := f.br.childAt(f.index)
			c.descendRightmost(prev, f.br.hasBranches)
			return true
		}
		c.depth--
	}
	c.clear()
	return false
}

// buildForward descends from the root toward key, taking at every level
// the first child whose recorded high key is >= key. found reports
// whether the landing slot holds an exact match. ok is false only when
// key exceeds every key currently in the tree — the descent has nothing
// to land on and the cursor is the zero value; callers fall back to
// pushLast for that case. The out-of-range check only needs to happen
// once, at the root: a branch's recorded key upper-bounds its subtree,
// so once the root search lands on a valid child (i < br.count), every
// deeper level is guaranteed to land in bounds too. Whenever ok is true,
// the landing slot is always valid (the leaf's own high key is provably
// >= key), whether or not it is an exact match.
func (t *Tree[K, V]) buildForward(key K) (c cursor[K, V], found, ok bool) {
	br := t.root
	if br == nil || br.count == 0 {
		return c, false, false
	}
	for {
		i, _ := br.find(key)
		if c.depth == 0 && i == br.count {
			return c, false, false
		}
		c.frames[c.depth] = frame[K, V]{br, i}
		c.depth++
		ch := br.childAt(i)
		if !br.hasBranches {
			lf := ch.leaf()
			j, fnd := findKey(lf.keys[:lf.count], key)
			c.lf = lf
			c.slot = j
			return c, fnd, true
		}
		br = ch.branch()
	}
}

// cursorExactKey locates key: found reports an exact match, and the
// returned cursor otherwise names the slot where key would be inserted,
// or a null cursor when key exceeds every key in the tree.
func (t *Tree[K, V]) cursorExactKey(key K) (c cursor[K, V], found bool) {
	c, found, ok := t.buildForward(key)
	if !ok {
		return cursor[K, V]{}, false
	}
	return c, found
}

func (t *Tree[K, V]) cursorKeyOrHigher(key K) cursor[K, V] {
	c, _, ok := t.buildForward(key)
	if !ok {
		return cursor[K, V]{}
	}
	return c
}

func (t *Tree[K, V]) cursorHigherThanKey(key K) cursor[K, V] {
	c, found, ok := t.buildForward(key)
	if !ok {
		return cursor[K, V]{}
	}
	if found && !c.stepForward() {
		return cursor[K, V]{}
	}
	return c
}

func (t *Tree[K, V]) cursorKeyOrLower(key K) cursor[K, V] {
	c, found, ok := t.buildForward(key)
	if !ok {
		return t.cursorHighest()
	}
	if found {
		return c
	}
	if c.slot > 0 {
		c.slot--
		return c
	}
	if !c.stepBack() {
		return cursor[K, V]{}
	}
	return c
}

func (t *Tree[K, V]) cursorLowerThanKey(key K) cursor[K, V] {
	c, found, ok := t.buildForward(key)
	if !ok {
		return t.cursorHighest()
	}
	if !found && c.slot > 0 {
		c.slot--
		return c
	}
	if !c.stepBack() {
		return cursor[K, V]{}
	}
	return c
}

func (t *Tree[K, V]) cursorLowest() cursor[K, V] {
	var c cursor[K, V]
	if t.root == nil || t.root.count == 0 {
		return c
	}
	c.descendLeftmost(childFromBranch(t.root), true)
	return c
}

func (t *Tree[K, V]) cursorHighest() cursor[K, V] {
	var c cursor[K, V]
	if t.root == nil || t.root.count == 0 {
		return c
	}
	c.descendRightmost(childFromBranch(t.root), true)
	return c
}
