// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect[K any](t *testing.T, tree BinaryTree[K], method TraversalMethod) []K {
	t.Helper()
	var out []K
	err := tree.Traverse(method, func(n *Node[K]) bool {
		out = append(out, n.Key())
		return false
	})
	require.NoError(t, err)
	return out
}

func addAll[K any](t *testing.T, tree BinaryTree[K], keys ...K) {
	t.Helper()
	for _, k := range keys {
		require.NoError(t, tree.Add(k))
	}
}

// shape records key, height and parent key of every node in pre-order.
type shape[K any] struct {
	key       K
	height    int
	hasParent bool
	parent    K
}

func shapeOf[K any](t *testing.T, tree BinaryTree[K]) []shape[K] {
	t.Helper()
	var out []shape[K]
	err := tree.Traverse(PreOrder, func(n *Node[K]) bool {
		s := shape[K]{key: n.Key(), height: n.Height()}
		if p := n.Parent(); p != nil {
			s.hasParent = true
			s.parent = p.Key()
		}
		out = append(out, s)
		return false
	})
	require.NoError(t, err)
	return out
}
