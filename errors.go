// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import "errors"

var (
	// ErrEmptyTree is returned by lookups and removals on a tree with no keys.
	ErrEmptyTree = errors.New("avl: tree is empty")

	// ErrDuplicateKey is returned by AVLTree.Add when an equal key is
	// already stored. The tree is left unmodified.
	ErrDuplicateKey = errors.New("avl: duplicate key")

	// ErrNilComparator is returned by the first operation that needs to
	// order keys on a tree constructed without a comparator.
	ErrNilComparator = errors.New("avl: comparator is nil")

	// ErrUnknownTraversal is returned by Traverse for an unsupported method.
	ErrUnknownTraversal = errors.New("avl: unknown traversal method")

	// ErrInvariant wraps every structural violation reported by Check.
	ErrInvariant = errors.New("avl: invariant violated")
)
