// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// Node holds one key of a tree. Links are owned by the tree; callers
// must not keep a node across a mutation of the tree it came from.
type Node[K any] struct {
	key    K
	height int
	left   *Node[K]
	right  *Node[K]
	parent *Node[K] // back-reference only
}

func newNode[K any](key K) *Node[K] {
	return &Node[K]{key: key}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the number of edges on the longest path from the node
// down to a leaf. A leaf has height 0.
func (n *Node[K]) Height() int {
	return n.height
}

func (n *Node[K]) Left() *Node[K] {
	return n.left
}

func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Parent returns the node above n, or nil for the root.
func (n *Node[K]) Parent() *Node[K] {
	return n.parent
}

func (n *Node[K]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// setLeft links c as the left child of n and points c back at n.
func (n *Node[K]) setLeft(c *Node[K]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *Node[K]) setRight(c *Node[K]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// height of a possibly absent subtree
func height[K any](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *Node[K]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balanceFactor is height(left) - height(right).
func (n *Node[K]) balanceFactor() int {
	return height(n.left) - height(n.right)
}

func minimum[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// detach clears every link and the key so nothing stays reachable
// through a discarded node.
func (n *Node[K]) detach() {
	var zero K
	n.left = nil
	n.right = nil
	n.parent = nil
	n.key = zero
	n.height = 0
}

// Depth returns the number of edges between n and the root.
func (n *Node[K]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}
