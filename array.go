package bptree

// Shared slab helpers used by both leaf and branch inline arrays. Each
// operates on a capacity-bound slice s (backed by a fixed-size array) with
// the caller tracking the logical length n separately: insert/remove
// shift the tail, and callers never rely on slots at index >= n holding
// a meaningful value across an API boundary.

// insertAt shifts s[i:n] right by one within s (len(s) > n) and writes x
// at i.
func insertAt[T any](s []T, n, i int, x T) {
	copy(s[i+1:n+1], s[i:n])
	s[i] = x
}

// insertPairAt shifts s[i:n] right by two and writes a, b at i, i+1.
func insertPairAt[T any](s []T, n, i int, a, b T) {
	copy(s[i+2:n+2], s[i:n])
	s[i] = a
	s[i+1] = b
}

// removeAt shifts s[i+1:n] left by one, returns the removed element, and
// zeroes the newly-vacated slot at n-1 so it cannot keep a dropped pointer
// reachable.
func removeAt[T any](s []T, n, i int) T {
	x := s[i]
	copy(s[i:n-1], s[i+1:n])
	var zero T
	s[n-1] = zero
	return x
}

// clearFrom zeroes s[n:] so an inline array's unused tail never holds a
// stale reference after a split or truncation.
func clearFrom[T any](s []T, n int) {
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
}
