// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree that restores
// |height(left) - height(right)| <= 1 at every node after each insertion
// and removal. Unlike BST, it rejects duplicate keys with ErrDuplicateKey.
//
// An AVLTree is not safe for concurrent use.
type AVLTree[K any] struct {
	root *Node[K]
	cmp  Comparator[K]
	size int
}

// NewAVLTree returns an empty tree ordered by cmp.
func NewAVLTree[K any](cmp Comparator[K]) *AVLTree[K] {
	return &AVLTree[K]{cmp: cmp}
}

// NewOrderedAVLTree returns an empty tree ordered by Ascending.
func NewOrderedAVLTree[K constraints.Ordered]() *AVLTree[K] {
	return NewAVLTree[K](Ascending[K])
}

// Add inserts key and rebalances every ancestor of the new node, innermost
// first. If an equal key exists the tree is left untouched and the
// returned error wraps ErrDuplicateKey.
func (t *AVLTree[K]) Add(key K) error {
	if t.cmp == nil {
		return ErrNilComparator
	}
	root, err := t.insert(t.root, key)
	if err != nil {
		return err
	}
	t.setRoot(root)
	t.size++
	t.assert()
	return nil
}

// insert returns the new root of the subtree at n. Heights and rotations
// are only applied once the recursive call below has succeeded, so a
// duplicate unwinds without touching any node.
func (t *AVLTree[K]) insert(n *Node[K], key K) (*Node[K], error) {
	if n == nil {
		return newNode(key), nil
	}
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		l, err := t.insert(n.left, key)
		if err != nil {
			return n, err
		}
		n.setLeft(l)
	case c > 0:
		r, err := t.insert(n.right, key)
		if err != nil {
			return n, err
		}
		n.setRight(r)
	default:
		return n, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	return rebalance(n), nil
}

// Search returns the node holding key, or nil if there is none.
func (t *AVLTree[K]) Search(key K) (*Node[K], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	if t.cmp == nil {
		return nil, ErrNilComparator
	}
	return search(t.cmp, t.root, key), nil
}

// Remove deletes key, reporting whether it was present, and rebalances
// the path back to the root.
func (t *AVLTree[K]) Remove(key K) (bool, error) {
	if t.root == nil {
		return false, ErrEmptyTree
	}
	if t.cmp == nil {
		return false, ErrNilComparator
	}
	root, removed := t.delete(t.root, key)
	if !removed {
		return false, nil
	}
	t.setRoot(root)
	t.size--
	t.assert()
	return true, nil
}

func (t *AVLTree[K]) delete(n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return nil, false
	}
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		l, removed := t.delete(n.left, key)
		if !removed {
			return n, false
		}
		n.setLeft(l)
	case c > 0:
		r, removed := t.delete(n.right, key)
		if !removed {
			return n, false
		}
		n.setRight(r)
	default:
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}
			n.detach()
			return child, true
		}
		// take over the successor's key, then drop the successor
		m := minimum(n.right)
		n.key = m.key
		r, _ := t.delete(n.right, m.key)
		n.setRight(r)
	}
	return rebalance(n), true
}

func (t *AVLTree[K]) setRoot(n *Node[K]) {
	t.root = n
	if n != nil {
		n.parent = nil
	}
}

// Traverse walks the tree in the given order.
func (t *AVLTree[K]) Traverse(method TraversalMethod, fn VisitFn[K]) error {
	return Traverse(t.root, method, fn)
}

// Clean detaches every node and leaves the tree empty. It returns false
// if the walk over the nodes did not complete.
func (t *AVLTree[K]) Clean() bool {
	ok := clean(t.root)
	t.root = nil
	t.size = 0
	return ok
}

// GetRoot returns the root node, or nil for an empty tree. The root
// changes with rotations, so the reference is only good until the next
// mutation.
func (t *AVLTree[K]) GetRoot() *Node[K] {
	return t.root
}

// Len is used to return the number of keys in the tree
func (t *AVLTree[K]) Len() int {
	return t.size
}

// Height returns the height of the root, 0 for an empty tree.
func (t *AVLTree[K]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.height
}

func (t *AVLTree[K]) Minimum() (K, bool) {
	return keyOf(minimum(t.root))
}

func (t *AVLTree[K]) Maximum() (K, bool) {
	return keyOf(maximum(t.root))
}

func (t *AVLTree[K]) Iterator() *Iterator[K] {
	return newIterator(t.root, t.cmp)
}

func (t *AVLTree[K]) ReverseIterator() *ReverseIterator[K] {
	return newReverseIterator(t.root, t.cmp)
}

// Check verifies ordering, parent links, heights, the key count and the
// balance of every node.
func (t *AVLTree[K]) Check() error {
	return check(t.root, t.cmp, t.size, true)
}

func (t *AVLTree[K]) assert() {
	if debugChecks {
		if err := t.Check(); err != nil {
			panic(err)
		}
	}
}
