// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import "fmt"

// check walks the tree in order and reports the first structural
// violation, wrapped in ErrInvariant.
func check[K any](root *Node[K], cmp Comparator[K], size int, balanced bool) error {
	if root == nil {
		if size != 0 {
			return fmt.Errorf("%w: empty tree counts %d keys", ErrInvariant, size)
		}
		return nil
	}
	if cmp == nil {
		return ErrNilComparator
	}
	if root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrInvariant, root.key)
	}

	var (
		err   error
		prev  *Node[K]
		count int
	)
	walk := func(n *Node[K]) bool {
		count++
		if prev != nil && cmp(prev.key, n.key) >= 0 {
			err = fmt.Errorf("%w: key %v is not ordered after %v", ErrInvariant, n.key, prev.key)
			return true
		}
		prev = n

		if n.left != nil && n.left.parent != n {
			err = fmt.Errorf("%w: left child of %v does not point back at it", ErrInvariant, n.key)
			return true
		}
		if n.right != nil && n.right.parent != n {
			err = fmt.Errorf("%w: right child of %v does not point back at it", ErrInvariant, n.key)
			return true
		}
		if want := 1 + max(height(n.left), height(n.right)); n.height != want {
			err = fmt.Errorf("%w: node %v has height %d, want %d", ErrInvariant, n.key, n.height, want)
			return true
		}
		if bf := n.balanceFactor(); balanced && (bf < -1 || bf > 1) {
			err = fmt.Errorf("%w: node %v has balance factor %d", ErrInvariant, n.key, bf)
			return true
		}
		return false
	}
	if terr := Traverse(root, InOrder, walk); terr != nil {
		return terr
	}
	if err != nil {
		return err
	}
	if count != size {
		return fmt.Errorf("%w: walked %d keys, tree counts %d", ErrInvariant, count, size)
	}
	return nil
}
