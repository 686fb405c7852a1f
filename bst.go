// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import "golang.org/x/exp/constraints"

// BST is an unbalanced binary search tree. All operations are iterative
// so a skewed tree cannot exhaust the goroutine stack.
//
// A BST is not safe for concurrent use; serialize mutations and
// traversals with an external lock.
type BST[K any] struct {
	root *Node[K]
	cmp  Comparator[K]
	size int
}

// NewBST returns an empty tree ordered by cmp.
func NewBST[K any](cmp Comparator[K]) *BST[K] {
	return &BST[K]{cmp: cmp}
}

// NewOrderedBST returns an empty tree ordered by Ascending.
func NewOrderedBST[K constraints.Ordered]() *BST[K] {
	return NewBST[K](Ascending[K])
}

// Add inserts key. Adding a key that is already present is a no-op.
func (t *BST[K]) Add(key K) error {
	if t.cmp == nil {
		return ErrNilComparator
	}
	if t.root == nil {
		t.root = newNode(key)
		t.size = 1
		t.assert()
		return nil
	}

	var c int
	p := t.root
	for {
		c = t.cmp(key, p.key)
		if c == 0 {
			return nil
		}
		next := p.right
		if c < 0 {
			next = p.left
		}
		if next == nil {
			break
		}
		p = next
	}

	n := newNode(key)
	if c < 0 {
		p.setLeft(n)
	} else {
		p.setRight(n)
	}
	t.size++
	fixHeights(p)
	t.assert()
	return nil
}

// Search returns the node holding key, or nil if there is none.
func (t *BST[K]) Search(key K) (*Node[K], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	if t.cmp == nil {
		return nil, ErrNilComparator
	}
	return search(t.cmp, t.root, key), nil
}

// Remove deletes key, reporting whether it was present. A node with two
// children takes the key of its in-order successor, and the successor
// node is unlinked in its place.
func (t *BST[K]) Remove(key K) (bool, error) {
	n, err := t.Search(key)
	if err != nil || n == nil {
		return false, err
	}

	if n.left != nil && n.right != nil {
		m := minimum(n.right)
		n.key = m.key
		n = m
	}

	// n now has at most one child
	child := n.left
	if child == nil {
		child = n.right
	}
	p := n.parent
	t.replace(n, child)
	n.detach()
	t.size--
	fixHeights(p)
	t.assert()
	return true, nil
}

// replace puts child where n hangs from its parent.
func (t *BST[K]) replace(n, child *Node[K]) {
	p := n.parent
	switch {
	case p == nil:
		t.root = child
		if child != nil {
			child.parent = nil
		}
	case p.left == n:
		p.setLeft(child)
	default:
		p.setRight(child)
	}
}

// fixHeights recomputes heights from n up to the root, stopping at the
// first node whose height does not change.
func fixHeights[K any](n *Node[K]) {
	for ; n != nil; n = n.parent {
		h := n.height
		n.updateHeight()
		if n.height == h {
			return
		}
	}
}

// Traverse walks the tree in the given order.
func (t *BST[K]) Traverse(method TraversalMethod, fn VisitFn[K]) error {
	return Traverse(t.root, method, fn)
}

// Clean detaches every node and leaves the tree empty. It returns false
// if the walk over the nodes did not complete.
func (t *BST[K]) Clean() bool {
	ok := clean(t.root)
	t.root = nil
	t.size = 0
	return ok
}

// GetRoot returns the root node, or nil for an empty tree.
func (t *BST[K]) GetRoot() *Node[K] {
	return t.root
}

// Len is used to return the number of keys in the tree
func (t *BST[K]) Len() int {
	return t.size
}

// Height returns the height of the root, 0 for an empty tree.
func (t *BST[K]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height
}

func (t *BST[K]) Minimum() (K, bool) {
	return keyOf(minimum(t.root))
}

func (t *BST[K]) Maximum() (K, bool) {
	return keyOf(maximum(t.root))
}

func (t *BST[K]) Iterator() *Iterator[K] {
	return newIterator(t.root, t.cmp)
}

func (t *BST[K]) ReverseIterator() *ReverseIterator[K] {
	return newReverseIterator(t.root, t.cmp)
}

// Check verifies ordering, parent links, heights and the key count.
func (t *BST[K]) Check() error {
	return check(t.root, t.cmp, t.size, false)
}

func (t *BST[K]) assert() {
	if debugChecks {
		if err := t.Check(); err != nil {
			panic(err)
		}
	}
}
