// Package cow provides a copy-on-write variant of bptree.Tree: nodes are
// shared and refcounted, writers clone only the path they mutate, and a
// Snapshot gives any goroutine a consistent, lock-free read view that
// survives concurrent writers.
//
// Internally this variant uses a simpler slice-based node (one type for
// both leaves and branches) rather than bptree's fixed-capacity arrays
// and unsafe child cells, since cloning a path calls for plain slice
// copies rather than in-place array splits.
package cow

import (
	"cmp"
	"sync/atomic"
)

const (
	leafCap   = 64
	branchCap = 64
)

// node is a leaf (isLeaf, keys/vals) or a branch (keys/kids, keys[i] the
// high key of kids[i]'s subtree), refcounted so it can be safely shared
// between an in-progress write and any outstanding Snapshot.
//
// refs is advisory, not a memory owner: Go's garbage collector reclaims
// a node once nothing reachable points to it regardless of this
// counter. refs exists only to tell cloneForWrite whether a node is
// exclusively owned (safe to mutate in place) or shared (must be cloned
// before it is changed).
type node[K cmp.Ordered, V any] struct {
	refs atomic.Int32

	isLeaf bool
	keys   []K
	vals   []V
	kids   []*node[K, V]
}

func (n *node[K, V]) highKey() K {
	return n.keys[len(n.keys)-1]
}

func (n *node[K, V]) retain() *node[K, V] {
	if n != nil {
		n.refs.Add(1)
	}
	return n
}

// release drops one reference to n. Once the count reaches zero it
// recurses into n's children (a branch holds one reference to each),
// so a long-lived Snapshot that is eventually released doesn't pin
// refs on nodes no live Tree or Snapshot still points at. This never
// frees memory itself — it only keeps refs an accurate advisory count
// for cloneForWrite — so a missed release is a lost optimization, not
// a leak or a correctness bug.
func (n *node[K, V]) release() {
	if n == nil {
		return
	}
	if n.refs.Add(-1) > 0 {
		return
	}
	if !n.isLeaf {
		for _, k := range n.kids {
			k.release()
		}
	}
}

// cloneForWrite consumes the single incoming reference to n (the one
// the caller holds, e.g. a parent's kids slot or the tree root) and
// returns the node that reference should now point to: n itself,
// mutated in place, if n was exclusively owned; otherwise a fresh copy,
// with n's own refcount given back down by one to reflect that this
// particular reference has been redirected away from it. Any other
// outstanding references to n (e.g. a concurrent Snapshot) are
// unaffected and keep seeing the unmodified n.
func cloneForWrite[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n.refs.Load() == 1 {
		return n
	}
	c := &node[K, V]{isLeaf: n.isLeaf}
	c.refs.Store(1)
	c.keys = append([]K(nil), n.keys...)
	if n.isLeaf {
		c.vals = append([]V(nil), n.vals...)
	} else {
		c.kids = append([]*node[K, V](nil), n.kids...)
		for _, k := range c.kids {
			k.retain()
		}
	}
	n.refs.Add(-1)
	return c
}

// findKey returns the index of the first key >= target, or (len(keys),
// false) when every key is smaller. Unexported duplicate of the
// identical routine in the root package: the two packages intentionally
// don't share an internal node representation, so they don't share this
// helper either.
func findKey[K cmp.Ordered](keys []K, key K) (int, bool) {
	low, high := 0, len(keys)
	for low < high {
		mid := low + (high-low)/2
		if keys[mid] < key {
			low = mid + 1
		} else {
			high = mid
		}
	}
	if low < len(keys) && keys[low] == key {
		return low, true
	}
	return low, false
}

func insertAt[T any](s []T, i int, x T) []T {
	s = append(s, x)
	copy(s[i+1:], s[i:len(s)-1])
	s[i] = x
	return s
}

func removeAt[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

func splitLeaf[K cmp.Ordered, V any](w *node[K, V]) (left, right *node[K, V]) {
	mid := len(w.keys) / 2
	right = &node[K, V]{isLeaf: true}
	right.refs.Store(1)
	right.keys = append([]K(nil), w.keys[mid:]...)
	right.vals = append([]V(nil), w.vals[mid:]...)
	w.keys = append([]K(nil), w.keys[:mid]...)
	w.vals = append([]V(nil), w.vals[:mid]...)
	return w, right
}

func splitBranch[K cmp.Ordered, V any](w *node[K, V]) (left, right *node[K, V]) {
	mid := len(w.keys) / 2
	right = &node[K, V]{isLeaf: false}
	right.refs.Store(1)
	right.keys = append([]K(nil), w.keys[mid:]...)
	right.kids = append([]*node[K, V](nil), w.kids[mid:]...)
	w.keys = append([]K(nil), w.keys[:mid]...)
	w.kids = append([]*node[K, V](nil), w.kids[:mid]...)
	return w, right
}

// insertNode inserts (key, val) into the subtree rooted at n, consuming
// n's single incoming reference and returning its replacement. sibling
// is non-nil when n overflowed and had to split, in which case the
// caller must insert a new slot for it immediately after n's own.
func insertNode[K cmp.Ordered, V any](n *node[K, V], key K, val V) (newNode, sibling *node[K, V], old V, added bool) {
	if n.isLeaf {
		i, found := findKey(n.keys, key)
		w := cloneForWrite(n)
		if found {
			old = w.vals[i]
			w.vals[i] = val
			return w, nil, old, false
		}
		w.keys = insertAt(w.keys, i, key)
		w.vals = insertAt(w.vals, i, val)
		if len(w.keys) <= leafCap {
			return w, nil, old, true
		}
		left, right := splitLeaf(w)
		return left, right, old, true
	}

	i, _ := findKey(n.keys, key)
	if i == len(n.keys) {
		i = len(n.keys) - 1 // extend the right spine
	}

	w := cloneForWrite(n)
	child := w.kids[i]
	newChild, childSibling, o, add := insertNode(child, key, val)
	old, added = o, add

	w.kids[i] = newChild
	w.keys[i] = newChild.highKey()

	if childSibling == nil {
		return w, nil, old, added
	}
	w.keys = insertAt(w.keys, i+1, childSibling.highKey())
	w.kids = insertAt(w.kids, i+1, childSibling)
	if len(w.keys) <= branchCap {
		return w, nil, old, added
	}
	left, right := splitBranch(w)
	return left, right, old, added
}

// removeNode removes key from the subtree rooted at n, consuming n's
// single incoming reference. newNode is nil when the subtree became
// empty; the caller must drop its slot for n entirely in that case,
// rather than install nil as a child.
func removeNode[K cmp.Ordered, V any](n *node[K, V], key K) (newNode *node[K, V], val V, found bool) {
	if n.isLeaf {
		i, ok := findKey(n.keys, key)
		if !ok {
			return n, val, false
		}
		w := cloneForWrite(n)
		val = w.vals[i]
		w.keys = removeAt(w.keys, i)
		w.vals = removeAt(w.vals, i)
		if len(w.keys) == 0 {
			return nil, val, true
		}
		return w, val, true
	}

	i, _ := findKey(n.keys, key)
	if i == len(n.keys) {
		return n, val, false
	}
	w := cloneForWrite(n)
	child := w.kids[i]
	newChild, v, ok := removeNode(child, key)
	val, found = v, ok
	if !found {
		return w, val, false
	}
	if newChild == nil {
		w.keys = removeAt(w.keys, i)
		w.kids = removeAt(w.kids, i)
	} else {
		w.kids[i] = newChild
		w.keys[i] = newChild.highKey()
	}
	if len(w.keys) == 0 {
		return nil, val, true
	}
	return w, val, true
}

func getNode[K cmp.Ordered, V any](n *node[K, V], key K) (V, bool) {
	for n != nil && !n.isLeaf {
		i, _ := findKey(n.keys, key)
		if i == len(n.keys) {
			var zero V
			return zero, false
		}
		n = n.kids[i]
	}
	if n == nil {
		var zero V
		return zero, false
	}
	i, found := findKey(n.keys, key)
	if !found {
		var zero V
		return zero, false
	}
	return n.vals[i], true
}
