// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// Iterator is used to iterate over the keys of a tree in ascending
// comparator order. It is invalidated by any mutation of the tree.
type Iterator[K any] struct {
	root  *Node[K]
	cmp   Comparator[K]
	stack []*Node[K]
}

func newIterator[K any](root *Node[K], cmp Comparator[K]) *Iterator[K] {
	i := &Iterator[K]{root: root, cmp: cmp}
	i.pushLeft(root)
	return i
}

// pushLeft stacks n and its chain of left children.
func (i *Iterator[K]) pushLeft(n *Node[K]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.left
	}
}

// Next returns the next key and true, or false once the keys are exhausted.
func (i *Iterator[K]) Next() (K, bool) {
	var zero K
	if len(i.stack) == 0 {
		return zero, false
	}
	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(n.right)
	return n.key, true
}

// SeekLowerBound is used to seek the iterator to the smallest key that is
// greater or equal to the given key.
func (i *Iterator[K]) SeekLowerBound(key K) {
	i.stack = i.stack[:0]
	if i.cmp == nil {
		return
	}
	n := i.root
	for n != nil {
		if i.cmp(key, n.key) <= 0 {
			i.stack = append(i.stack, n)
			n = n.left
		} else {
			n = n.right
		}
	}
}
