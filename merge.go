package bptree

import "cmp"

// mergeSource is a forward stream of sorted, distinct keys, satisfied by
// Iter[K,V] and DrainIter[K,V] (via their Next method).
type mergeSource[K cmp.Ordered, V any] interface {
	Next() (K, V, bool)
}

// Merge merges two sorted key streams into one, in ascending order. When
// both streams currently hold the same key, the over stream's entry
// wins — useful for layering a newer tree's entries over an older one's
// without physically combining them.
//
// Implemented as a valid/only/same/cover state machine, generalized from
// a Valid/Key/Val cursor pair with error propagation down to this
// package's simpler (key, val, ok) stream shape — an in-memory iterator
// cannot fail mid-stream, so there is no fault state to carry. Forward
// only: swap the over/base arguments to NewMerge to choose which side
// wins on a duplicate key, covering both directions without a reverse
// stepping mode.
type Merge[K cmp.Ordered, V any] struct {
	over, base mergeSource[K, V]

	overKey, baseKey     K
	overVal, baseVal     V
	overValid, baseValid bool

	valid bool
	only  bool // exactly one side still has entries
	same  bool // both sides currently agree on key
	cover bool // the current entry comes from over
}

// NewMerge builds a merge iterator positioned at the first entry of
// each stream.
func NewMerge[K cmp.Ordered, V any](over, base mergeSource[K, V]) *Merge[K, V] {
	m := &Merge[K, V]{over: over, base: base}
	m.overKey, m.overVal, m.overValid = over.Next()
	m.baseKey, m.baseVal, m.baseValid = base.Next()
	m.settle()
	return m
}

// settle reclassifies valid/only/same/cover from the buffered heads.
func (m *Merge[K, V]) settle() {
	switch {
	case m.overValid && m.baseValid:
		m.valid, m.only = true, false
		switch {
		case m.overKey < m.baseKey:
			m.same, m.cover = false, true
		case m.baseKey < m.overKey:
			m.same, m.cover = false, false
		default:
			m.same, m.cover = true, true
		}
	case m.overValid:
		m.valid, m.only, m.same, m.cover = true, true, false, true
	case m.baseValid:
		m.valid, m.only, m.same, m.cover = true, true, false, false
	default:
		m.valid, m.only, m.same = false, false, false
	}
}

// Valid reports whether the iterator points at an entry.
func (m *Merge[K, V]) Valid() bool {
	return m.valid
}

// Cover reports whether the current entry came from the over stream.
func (m *Merge[K, V]) Cover() bool {
	return m.cover
}

// Key returns the current entry's key. Callers must check Valid first.
func (m *Merge[K, V]) Key() K {
	if m.cover {
		return m.overKey
	}
	return m.baseKey
}

// Val returns the current entry's value. Callers must check Valid first.
func (m *Merge[K, V]) Val() V {
	if m.cover {
		return m.overVal
	}
	return m.baseVal
}

// Next advances to the next distinct key, returning false once both
// streams are exhausted.
func (m *Merge[K, V]) Next() bool {
	if !m.valid {
		return false
	}
	switch {
	case m.same:
		m.overKey, m.overVal, m.overValid = m.over.Next()
		m.baseKey, m.baseVal, m.baseValid = m.base.Next()
	case m.only:
		if m.cover {
			m.overKey, m.overVal, m.overValid = m.over.Next()
		} else {
			m.baseKey, m.baseVal, m.baseValid = m.base.Next()
		}
	case m.cover:
		m.overKey, m.overVal, m.overValid = m.over.Next()
	default:
		m.baseKey, m.baseVal, m.baseValid = m.base.Next()
	}
	m.settle()
	return m.valid
}
