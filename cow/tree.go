package cow

import (
	"cmp"
	"sync"
	"sync/atomic"
)

// Tree is a copy-on-write ordered map: writers are serialized by an
// internal lock, but Snapshot gives readers a lock-free, unaffected view
// of the tree as it stood when the snapshot was taken, even while
// writers continue to mutate it underneath.
//
// The zero value is an empty, ready-to-use tree.
type Tree[K cmp.Ordered, V any] struct {
	mu   sync.Mutex
	root atomic.Pointer[node[K, V]]
	size atomic.Int64
}

// New returns an empty Tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len reports the number of entries currently in the tree.
func (t *Tree[K, V]) Len() int {
	return int(t.size.Load())
}

// Get returns the value for key, if present, as of some point between
// the call's start and return — safe to call concurrently with writers.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return getNode(t.root.Load(), key)
}

// Insert adds key/val, or replaces the value of an existing key,
// returning the previous value if any.
func (t *Tree[K, V]) Insert(key K, val V) (old V, hadOld bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	root := t.root.Load()
	if root == nil {
		lf := &node[K, V]{isLeaf: true, keys: []K{key}, vals: []V{val}}
		lf.refs.Store(1)
		t.root.Store(lf)
		t.size.Add(1)
		return old, false
	}

	newRoot, sibling, o, added := insertNode(root, key, val)
	old = o
	if sibling != nil {
		top := &node[K, V]{isLeaf: false}
		top.refs.Store(1)
		top.keys = []K{newRoot.highKey(), sibling.highKey()}
		top.kids = []*node[K, V]{newRoot, sibling}
		newRoot = top
	}
	t.root.Store(newRoot)
	if added {
		t.size.Add(1)
	}
	return old, !added
}

// Remove deletes key, returning its value if it was present. No
// rebalancing is performed after a delete, matching the root package.
func (t *Tree[K, V]) Remove(key K) (val V, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	root := t.root.Load()
	if root == nil {
		return val, false
	}
	// removeNode clones shared nodes on its way down; checking presence
	// first keeps a miss from discarding such a clone after it has
	// already given back the original's reference.
	if _, present := getNode(root, key); !present {
		return val, false
	}
	newRoot, v, found := removeNode(root, key)
	if !found {
		return val, false
	}
	t.root.Store(newRoot) // nil is a valid "now empty" root
	t.size.Add(-1)
	return v, true
}

// Snapshot captures the current tree for lock-free reading from any
// goroutine, including while writers continue to mutate the live tree.
// The snapshot's view never changes once taken.
type Snapshot[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// Snapshot returns a consistent point-in-time view of the tree.
func (t *Tree[K, V]) Snapshot() Snapshot[K, V] {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.root.Load()
	r.retain()
	return Snapshot[K, V]{root: r, size: int(t.size.Load())}
}

// Get returns the value for key as of when the snapshot was taken.
func (s Snapshot[K, V]) Get(key K) (V, bool) {
	return getNode(s.root, key)
}

// Len reports the number of entries as of when the snapshot was taken.
func (s Snapshot[K, V]) Len() int {
	return s.size
}

// Release drops the snapshot's reference to its captured root. Calling it
// is an optimization, not a requirement: an unreleased snapshot just
// leaves refs on its root's spine over-counted, which only ever costs an
// unnecessary future clone, never incorrect sharing.
func (s Snapshot[K, V]) Release() {
	s.root.release()
}
