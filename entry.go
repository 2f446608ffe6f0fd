package bptree

import "cmp"

// Entry is a view on the slot for a single key, amortizing the
// root-to-slot descent across a lookup/insert/remove sequence. Go has
// no sum types, so unlike the Vacant/Occupied pair this API is modeled
// on, Entry is a single type: Get/GetMut report absence via a bool, and
// Insert/Remove work correctly whichever state the slot was found in.
type Entry[K cmp.Ordered, V any] struct {
	tree  *Tree[K, V]
	key   K
	c     cursor[K, V]
	found bool
	ok    bool // false: key exceeds every key currently in the tree
}

// Entry returns the view for key.
func (t *Tree[K, V]) Entry(key K) Entry[K, V] {
	if t.root == nil || t.root.count == 0 {
		return Entry[K, V]{tree: t, key: key}
	}
	c, found, ok := t.buildForward(key)
	return Entry[K, V]{tree: t, key: key, c: c, found: found, ok: ok}
}

func (e Entry[K, V]) occupied() bool {
	return e.ok && e.found
}

// Key returns the key this entry was built for, whether or not it is
// currently occupied.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Get returns the entry's value, if occupied.
func (e Entry[K, V]) Get() (V, bool) {
	if !e.occupied() {
		var zero V
		return zero, false
	}
	return e.c.value(), true
}

// GetMut returns a pointer to the entry's value, if occupied.
func (e Entry[K, V]) GetMut() *V {
	if !e.occupied() {
		return nil
	}
	return e.c.valuePtr()
}

// IntoMut is an alias of GetMut, named to match the Vacant/Occupied
// view's into_mut.
func (e Entry[K, V]) IntoMut() *V {
	return e.GetMut()
}

// Insert sets the entry's value, inserting if the key was absent, and
// returns the value previously stored there, if any.
func (e Entry[K, V]) Insert(val V) (old V, hadOld bool) {
	t := e.tree
	if t.root == nil || t.root.count == 0 {
		t.insertEmpty(e.key, val)
		t.size++
		return old, false
	}
	var outcome insertOutcome
	if !e.ok {
		outcome, old = t.insertPushLast(e.key, val)
	} else {
		outcome, old = t.insertViaCursor(e.c, e.key, val)
	}
	if outcome == outcomeAdded {
		t.size++
	}
	return old, outcome == outcomeReplaced
}

// Remove deletes the entry's key, if occupied, returning its value.
func (e Entry[K, V]) Remove() (val V, ok bool) {
	if !e.occupied() {
		return val, false
	}
	_, val = e.c.lf.removeAt(e.c.slot)
	e.tree.cleanupAfterRemove(e.c)
	e.tree.trimRoot()
	e.tree.size--
	return val, true
}

// RemoveEntry deletes the entry's key, if occupied, returning both the
// key and its value.
func (e Entry[K, V]) RemoveEntry() (key K, val V, ok bool) {
	val, ok = e.Remove()
	return e.key, val, ok
}
