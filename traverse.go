// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import "fmt"

// TraversalMethod selects the order in which Traverse visits nodes.
type TraversalMethod int

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder TraversalMethod = iota
	// InOrder visits the left subtree, the node, then the right subtree.
	InOrder
	// PostOrder visits both subtrees before the node itself.
	PostOrder
)

func (m TraversalMethod) String() string {
	switch m {
	case PreOrder:
		return "PreOrder"
	case InOrder:
		return "InOrder"
	case PostOrder:
		return "PostOrder"
	}
	return fmt.Sprintf("TraversalMethod(%d)", int(m))
}

// VisitFn is called once per node during a traversal, returning if
// the traversal should be terminated.
type VisitFn[K any] func(n *Node[K]) bool

// Traverse walks the subtree under root in the given order. The walk
// keeps its own stack, so depth is not limited by the goroutine stack.
// A visitor may clear the links of the node it is handed: children are
// read before the visit in pre-order and in-order, and in post-order
// they have already been walked.
func Traverse[K any](root *Node[K], method TraversalMethod, fn VisitFn[K]) error {
	switch method {
	case PreOrder:
		preOrder(root, fn)
	case InOrder:
		inOrder(root, fn)
	case PostOrder:
		postOrder(root, fn)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownTraversal, method)
	}
	return nil
}

func preOrder[K any](root *Node[K], fn VisitFn[K]) {
	if root == nil {
		return
	}
	stack := []*Node[K]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		left, right := n.left, n.right
		if fn(n) {
			return
		}
		if right != nil {
			stack = append(stack, right)
		}
		if left != nil {
			stack = append(stack, left)
		}
	}
}

func inOrder[K any](root *Node[K], fn VisitFn[K]) {
	var stack []*Node[K]
	cur := root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		right := n.right
		if fn(n) {
			return
		}
		cur = right
	}
}

func postOrder[K any](root *Node[K], fn VisitFn[K]) {
	var stack []*Node[K]
	var last *Node[K]
	cur := root
	for cur != nil || len(stack) > 0 {
		if cur != nil {
			stack = append(stack, cur)
			cur = cur.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			cur = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		if fn(top) {
			return
		}
		last = top
	}
}
