//go:build debug

package bptree

import "cmp"

// assertAscending panics if keys is not strictly increasing.
// Only enabled with -tags debug.
func assertAscending[K cmp.Ordered](keys []K) {
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			panic(ErrUnsupported)
		}
	}
}
