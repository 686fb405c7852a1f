// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// BinaryTree is the contract shared by the unbalanced BST and the AVL tree.
type BinaryTree[K any] interface {
	Add(key K) error
	Search(key K) (*Node[K], error)
	Remove(key K) (bool, error)
	Traverse(method TraversalMethod, fn VisitFn[K]) error
	Clean() bool
	GetRoot() *Node[K]
	Len() int
	Height() int
	Check() error
}

var (
	_ BinaryTree[int] = (*BST[int])(nil)
	_ BinaryTree[int] = (*AVLTree[int])(nil)
)

// search descends from n without recursion.
func search[K any](cmp Comparator[K], n *Node[K], key K) *Node[K] {
	for n != nil {
		c := cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// clean detaches every node under root in post-order, reporting whether
// the walk completed.
func clean[K any](root *Node[K]) bool {
	err := Traverse(root, PostOrder, func(n *Node[K]) bool {
		n.detach()
		return false
	})
	return err == nil
}

func keyOf[K any](n *Node[K]) (K, bool) {
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}
