package bptree

import (
	"cmp"
	"unsafe"
)

// child is a type-erased, untagged owning pointer to either a leaf or a
// branch. It carries no runtime tag of its own — a parent branch's
// hasBranches flag says which of leaf()/branch() is the correct
// interpretation for every child in its kids array, since siblings always
// share a kind. A zero child only ever appears in the unused tail of a
// branch's kids array; dereferencing one through leaf()/branch() is a
// bug, not a recoverable condition, the same way dereferencing a null
// cursor is.
//
// Go has no manual destructors, so there's no "must not drop the cell
// directly" invariant to uphold here: the garbage collector reclaims a
// leaf or branch once nothing — including a stale slot past a node's
// count — points to it. clearFrom (array.go) exists precisely to uphold
// that: every removal and split nils out vacated slots instead of
// leaving them dangling past the logical length.
type child[K cmp.Ordered, V any] struct {
	p unsafe.Pointer
}

func childFromLeaf[K cmp.Ordered, V any](l *leaf[K, V]) child[K, V] {
	return child[K, V]{unsafe.Pointer(l)}
}

func childFromBranch[K cmp.Ordered, V any](b *branch[K, V]) child[K, V] {
	return child[K, V]{unsafe.Pointer(b)}
}

func (c child[K, V]) leaf() *leaf[K, V] {
	return (*leaf[K, V])(c.p)
}

func (c child[K, V]) branch() *branch[K, V] {
	return (*branch[K, V])(c.p)
}

func (c child[K, V]) isNil() bool {
	return c.p == nil
}
