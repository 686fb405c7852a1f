// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

// rebalance recomputes the height of n and, if its balance factor left
// [-1, 1], rotates it. It returns the root of the subtree that replaces n;
// the caller relinks it.
func rebalance[K any](n *Node[K]) *Node[K] {
	n.updateHeight()

	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			// left-right
			n.setLeft(rotateLeft(n.left))
		}
		// left-left
		return rotateRight(n)
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			// right-left
			n.setRight(rotateRight(n.right))
		}
		// right-right
		return rotateLeft(n)
	}
	return n
}

// rotateLeft lifts x.right above x:
//
//	  x            y
//	 / \          / \
//	a   y   =>   x   c
//	   / \      / \
//	  b   c    a   b
func rotateLeft[K any](x *Node[K]) *Node[K] {
	y := x.right
	up := x.parent

	x.setRight(y.left)
	y.setLeft(x)
	y.parent = up

	x.updateHeight()
	y.updateHeight()
	return y
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[K any](x *Node[K]) *Node[K] {
	y := x.left
	up := x.parent

	x.setLeft(y.right)
	y.setRight(x)
	y.parent = up

	x.updateHeight()
	y.updateHeight()
	return y
}
