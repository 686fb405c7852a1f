// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package avl provides two binary search trees over keys ordered by a
// caller supplied Comparator: BST, which never rebalances, and AVLTree,
// which rotates after every insertion and removal so that the two
// subtree heights of any node differ by at most one.
//
// Both trees share Node and Traverse. Neither is safe for concurrent
// mutation. Build with -tags avldebug to run Check after every mutation.
package avl
