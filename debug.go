package bptree

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the tree's node structure as a human-readable string, for
// debugging and tests — never called from a hot path.
func (t *Tree[K, V]) Dump() string {
	root := treeprint.New()
	if t.root == nil || t.root.count == 0 {
		root.AddNode("(empty)")
		return root.String()
	}
	dumpBranch(root, t.root)
	return root.String()
}

func dumpBranch[K cmp.Ordered, V any](parent treeprint.Tree, br *branch[K, V]) {
	node := parent.AddBranch(fmt.Sprintf("branch[%d]", br.count))
	for i := 0; i < br.count; i++ {
		ch := br.childAt(i)
		if br.hasBranches {
			dumpBranch(node, ch.branch())
		} else {
			dumpLeaf(node, ch.leaf(), br.keys[i])
		}
	}
}

func dumpLeaf[K cmp.Ordered, V any](parent treeprint.Tree, lf *leaf[K, V], highKey K) {
	parent.AddNode(fmt.Sprintf("leaf[%d] high=%v keys=%v", lf.count, highKey, lf.keys[:lf.count]))
}
