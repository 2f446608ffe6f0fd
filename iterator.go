package bptree

import "cmp"

// Bound names one side of a range: unbounded, or a key that is either
// included or excluded from the range.
type Bound[K cmp.Ordered] struct {
	present  bool
	excluded bool
	key      K
}

// Unbounded reports no constraint on this side of a range.
func Unbounded[K cmp.Ordered]() Bound[K] {
	return Bound[K]{}
}

// Included bounds a range at key, inclusive.
func Included[K cmp.Ordered](key K) Bound[K] {
	return Bound[K]{present: true, key: key}
}

// Excluded bounds a range at key, exclusive.
func Excluded[K cmp.Ordered](key K) Bound[K] {
	return Bound[K]{present: true, excluded: true, key: key}
}

func checkRange[K cmp.Ordered](lo, hi Bound[K]) {
	if lo.present && hi.present {
		if hi.key < lo.key || (lo.key == hi.key && (lo.excluded || hi.excluded)) {
			panic(ErrOutOfRange)
		}
	}
}

// Iter is a double-ended iterator over a contiguous key range: Next and
// NextBack consume from either end and meet in the middle. The zero
// value is a valid, already-exhausted iterator.
type Iter[K cmp.Ordered, V any] struct {
	front cursor[K, V]
	back  cursor[K, V]
	done  bool
}

func samePosition[K cmp.Ordered, V any](a, b cursor[K, V]) bool {
	return a.lf == b.lf && a.slot == b.slot
}

// Range returns an iterator over the entries with keys in [lo, hi] (or
// open on either side per Bound), panicking if the bounds are inverted
// or exclude the single key they both name.
func (t *Tree[K, V]) Range(lo, hi Bound[K]) Iter[K, V] {
	checkRange(lo, hi)

	var front cursor[K, V]
	switch {
	case !lo.present:
		front = t.cursorLowest()
	case lo.excluded:
		front = t.cursorHigherThanKey(lo.key)
	default:
		front = t.cursorKeyOrHigher(lo.key)
	}

	var back cursor[K, V]
	switch {
	case !hi.present:
		back = t.cursorHighest()
	case hi.excluded:
		back = t.cursorLowerThanKey(hi.key)
	default:
		back = t.cursorKeyOrLower(hi.key)
	}

	done := front.isNull() || back.isNull()
	if !done && back.key() < front.key() {
		done = true
	}
	return Iter[K, V]{front: front, back: back, done: done}
}

// RangeMut is Range; Go's pointer methods (NextMut/NextBackMut) already
// give mutable access regardless of how the iterator was constructed.
func (t *Tree[K, V]) RangeMut(lo, hi Bound[K]) Iter[K, V] {
	return t.Range(lo, hi)
}

// Iter returns an iterator over every entry in ascending key order.
func (t *Tree[K, V]) Iter() Iter[K, V] {
	return t.Range(Unbounded[K](), Unbounded[K]())
}

// IterMut is Iter; see RangeMut.
func (t *Tree[K, V]) IterMut() Iter[K, V] {
	return t.Iter()
}

// Next returns the next entry in ascending order.
func (it *Iter[K, V]) Next() (key K, val V, ok bool) {
	if it.done || it.front.isNull() {
		return key, val, false
	}
	key, val = it.front.key(), it.front.value()
	if samePosition(it.front, it.back) {
		it.done = true
		return key, val, true
	}
	it.front.stepForward()
	return key, val, true
}

// NextMut is Next, returning a pointer to the value for in-place
// mutation.
func (it *Iter[K, V]) NextMut() (key K, val *V, ok bool) {
	if it.done || it.front.isNull() {
		return key, nil, false
	}
	key, val = it.front.key(), it.front.valuePtr()
	if samePosition(it.front, it.back) {
		it.done = true
		return key, val, true
	}
	it.front.stepForward()
	return key, val, true
}

// NextBack returns the next entry in descending order (the other end of
// the range from Next).
func (it *Iter[K, V]) NextBack() (key K, val V, ok bool) {
	if it.done || it.front.isNull() {
		return key, val, false
	}
	key, val = it.back.key(), it.back.value()
	if samePosition(it.front, it.back) {
		it.done = true
		return key, val, true
	}
	it.back.stepBack()
	return key, val, true
}

// NextBackMut is NextBack, returning a pointer to the value.
func (it *Iter[K, V]) NextBackMut() (key K, val *V, ok bool) {
	if it.done || it.front.isNull() {
		return key, nil, false
	}
	key, val = it.back.key(), it.back.valuePtr()
	if samePosition(it.front, it.back) {
		it.done = true
		return key, val, true
	}
	it.back.stepBack()
	return key, val, true
}

// DrainIter is a consuming, owning iterator: each step removes the
// yielded entry from the tree. Go has no move semantics to express
// "consumes self" in the type system, so this is the idiomatic
// rendition of an owning iterator for this package.
type DrainIter[K cmp.Ordered, V any] struct {
	tree *Tree[K, V]
	lo   Bound[K]
	hi   Bound[K]
	done bool
}

// Drain returns an owning iterator that removes entries in [lo, hi] (per
// Bound) from the tree as they are yielded.
func (t *Tree[K, V]) Drain(lo, hi Bound[K]) *DrainIter[K, V] {
	checkRange(lo, hi)
	return &DrainIter[K, V]{tree: t, lo: lo, hi: hi}
}

// IntoIter drains the entire tree in ascending order.
func (t *Tree[K, V]) IntoIter() *DrainIter[K, V] {
	return t.Drain(Unbounded[K](), Unbounded[K]())
}

func (d *DrainIter[K, V]) inRange(key K) bool {
	if d.lo.present {
		if d.lo.excluded {
			if !(d.lo.key < key) {
				return false
			}
		} else if key < d.lo.key {
			return false
		}
	}
	if d.hi.present {
		if d.hi.excluded {
			if !(key < d.hi.key) {
				return false
			}
		} else if d.hi.key < key {
			return false
		}
	}
	return true
}

// frontCandidate locates the smallest remaining entry that could satisfy
// the lower bound, without regard for the upper bound — Next checks that
// separately via inRange, since an entry past hi must stop iteration
// rather than be skipped.
func (d *DrainIter[K, V]) frontCandidate() cursor[K, V] {
	switch {
	case !d.lo.present:
		return d.tree.cursorLowest()
	case d.lo.excluded:
		return d.tree.cursorHigherThanKey(d.lo.key)
	default:
		return d.tree.cursorKeyOrHigher(d.lo.key)
	}
}

// backCandidate is the symmetric counterpart for NextBack.
func (d *DrainIter[K, V]) backCandidate() cursor[K, V] {
	switch {
	case !d.hi.present:
		return d.tree.cursorHighest()
	case d.hi.excluded:
		return d.tree.cursorLowerThanKey(d.hi.key)
	default:
		return d.tree.cursorKeyOrLower(d.hi.key)
	}
}

// Next removes and returns the smallest remaining in-range entry. Unlike
// Iter, each step re-descends from the root (via frontCandidate) rather
// than stepping a retained cursor, since the preceding removal may have
// invalidated any cursor pointing past the removed slot.
func (d *DrainIter[K, V]) Next() (key K, val V, ok bool) {
	if d.done {
		return key, val, false
	}
	c := d.frontCandidate()
	if c.isNull() || !d.inRange(c.key()) {
		d.done = true
		return key, val, false
	}
	key, val = c.key(), c.value()
	d.tree.Remove(key)
	return key, val, true
}

// NextBack removes and returns the largest remaining in-range entry.
func (d *DrainIter[K, V]) NextBack() (key K, val V, ok bool) {
	if d.done {
		return key, val, false
	}
	c := d.backCandidate()
	if c.isNull() || !d.inRange(c.key()) {
		d.done = true
		return key, val, false
	}
	key, val = c.key(), c.value()
	d.tree.Remove(key)
	return key, val, true
}
