// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// ReverseIterator is used to iterate over the keys of a tree
// in reverse in-order
type ReverseIterator[K any] struct {
	root  *Node[K]
	cmp   Comparator[K]
	stack []*Node[K]
}

func newReverseIterator[K any](root *Node[K], cmp Comparator[K]) *ReverseIterator[K] {
	ri := &ReverseIterator[K]{root: root, cmp: cmp}
	ri.pushRight(root)
	return ri
}

func (ri *ReverseIterator[K]) pushRight(n *Node[K]) {
	for n != nil {
		ri.stack = append(ri.stack, n)
		n = n.right
	}
}

// Previous returns the previous key in reverse order
func (ri *ReverseIterator[K]) Previous() (K, bool) {
	var zero K
	if len(ri.stack) == 0 {
		return zero, false
	}
	n := ri.stack[len(ri.stack)-1]
	ri.stack = ri.stack[:len(ri.stack)-1]
	ri.pushRight(n.left)
	return n.key, true
}

// SeekReverseLowerBound is used to seek the iterator to the largest key
// that is lower or equal to the given key.
func (ri *ReverseIterator[K]) SeekReverseLowerBound(key K) {
	ri.stack = ri.stack[:0]
	if ri.cmp == nil {
		return
	}
	n := ri.root
	for n != nil {
		if ri.cmp(key, n.key) >= 0 {
			ri.stack = append(ri.stack, n)
			n = n.right
		} else {
			n = n.left
		}
	}
}
