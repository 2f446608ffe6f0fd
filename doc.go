// Package bptree implements an in-memory ordered map keyed by a totally
// ordered key type, backed by a wide-fanout B+ tree.
//
// The tree trades a constant-factor increase in memory for better cache
// behavior on lookup, range scan, and bulk load than a classical balanced
// binary tree. Leaves hold (key, value) pairs; branches hold, for each
// child, the highest key reachable in that child's subtree (the "high key"
// convention) plus a type-erased pointer to the child.
//
// Example usage:
//
//	var tree bptree.Tree[int, string]
//	tree.Insert(1, "one")
//	val, found := tree.Get(1)
//
// Tree is not safe for concurrent use without external synchronization;
// see the cow subpackage for a copy-on-write variant that supports cheap
// snapshotting.
package bptree
