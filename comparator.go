// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import "golang.org/x/exp/constraints"

// Comparator orders two keys. A negative result places a in the left
// subtree relative to b, a positive result places it in the right one and
// zero reports equal keys. It must be a strict total order.
type Comparator[K any] func(a, b K) int

// Ascending orders keys by their natural ordering, smallest first.
func Ascending[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Descending orders keys by their natural ordering, largest first.
func Descending[K constraints.Ordered](a, b K) int {
	return Ascending(b, a)
}
