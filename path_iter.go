// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// PathIterator is used to iterate over the nodes visited by a search for
// key, from the root down to the node holding key or to the last node
// before the search fell off the tree.
type PathIterator[K any] struct {
	key  K
	cmp  Comparator[K]
	node *Node[K]
	done bool
}

func newPathIterator[K any](root *Node[K], cmp Comparator[K], key K) *PathIterator[K] {
	return &PathIterator[K]{key: key, cmp: cmp, node: root, done: cmp == nil}
}

// Next returns the next node on the path and whether its key equals the
// searched key. A nil node ends the path.
func (i *PathIterator[K]) Next() (*Node[K], bool) {
	if i.done || i.node == nil {
		return nil, false
	}
	n := i.node
	c := i.cmp(i.key, n.key)
	switch {
	case c < 0:
		i.node = n.left
	case c > 0:
		i.node = n.right
	default:
		i.done = true
		return n, true
	}
	return n, false
}

func (t *BST[K]) PathIterator(key K) *PathIterator[K] {
	return newPathIterator(t.root, t.cmp, key)
}

func (t *AVLTree[K]) PathIterator(key K) *PathIterator[K] {
	return newPathIterator(t.root, t.cmp, key)
}
