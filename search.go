package bptree

import "cmp"

// findKey returns the index of the first key >= target ("Some(i)"), or
// (len(keys), false) when every key is smaller than target.
//
// Knuth-style binary search: narrow [low, high) to a single point, then
// check the landing slot once.
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

// findKeyLinear is a linear scan, semantically identical to findKey.
// Never called from the insert/get/remove hot paths; exists alongside
// findKey and findKeyBranchless as an alternate reference routine,
// cross-checked against them in search_test.go.
func findKeyLinear[K cmp.Ordered](keys []K, key K) (int, bool) {
	for i, k := range keys {
		if k == key {
			return i, true
		}
		if k > key {
			return i, false
		}
	}
	return len(keys), false
}

// findKeyBranchless is the classic length-halving lower_bound: unlike
// findKey, its loop computes the new half-length arithmetically rather
// than re-deriving [low, high) from two endpoints. Architectures (and
// compilers) that can turn the inner comparison into a conditional move
// rather than a branch benefit when keys is small and fully inline.
// Semantically identical to findKey.
func findKeyBranchless[K cmp.Ordered](keys []K, key K) (int, bool) {
	low := 0
	length := len(keys)
	for length > 0 {
		half := length / 2
		mid := low + half
		if keys[mid] < key {
			low = mid + 1
			length -= half + 1
		} else {
			length = half
		}
	}
	if low < len(keys) && keys[low] == key {
		return low, true
	}
	return low, false
}
