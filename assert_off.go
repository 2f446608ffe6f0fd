//go:build !debug

package bptree

import "cmp"

// assertAscending is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertAscending[K cmp.Ordered]([]K) {}
