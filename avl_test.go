// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package avl

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"
	"testing/quick"

	"github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/require"
)

func TestAVLTree_RoundTrip(t *testing.T) {
	t.Parallel()

	a := NewOrderedAVLTree[int]()
	addAll[int](t, a, 43, 18, 22, 9, 21)

	require.Equal(t, []int{9, 18, 21, 22, 43}, collect[int](t, a, InOrder))
	require.LessOrEqual(t, a.Height()+1, 3)
	require.Equal(t, 22, a.GetRoot().Key())
	require.Equal(t, 5, a.Len())
	require.NoError(t, a.Check())
}

func TestAVLTree_Rotations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		keys []int
	}{
		{"right-right", []int{1, 2, 3}},
		{"left-left", []int{3, 2, 1}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := NewOrderedAVLTree[int]()
			addAll[int](t, a, tc.keys...)

			root := a.GetRoot()
			require.Equal(t, 2, root.Key())
			require.Equal(t, 1, root.Height())
			require.Nil(t, root.Parent())
			require.Equal(t, 1, root.Left().Key())
			require.Equal(t, 3, root.Right().Key())
			require.Same(t, root, root.Left().Parent())
			require.Same(t, root, root.Right().Parent())
			require.Zero(t, root.Left().Height())
			require.Zero(t, root.Right().Height())
			require.NoError(t, a.Check())
		})
	}
}

func TestAVLTree_RotationBelowRoot(t *testing.T) {
	t.Parallel()

	// 20 and 30 hang under 10, so the rotation happens one level down and
	// the new subtree root must be relinked to its parent
	a := NewOrderedAVLTree[int]()
	addAll[int](t, a, 10, 5, 20, 30, 40)

	require.Equal(t, []int{10, 5, 30, 20, 40}, collect[int](t, a, PreOrder))
	n, err := a.Search(30)
	require.NoError(t, err)
	require.Equal(t, 10, n.Parent().Key())
	require.NoError(t, a.Check())
}

func TestAVLTree_Duplicate(t *testing.T) {
	t.Parallel()

	a := NewOrderedAVLTree[int]()
	addAll[int](t, a, 43, 18, 22, 9, 21)
	before := shapeOf[int](t, a)

	err := a.Add(21)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateKey))
	require.Equal(t, before, shapeOf[int](t, a))
	require.Equal(t, 5, a.Len())
	require.NoError(t, a.Check())

	err = a.Add(22)
	require.True(t, errors.Is(err, ErrDuplicateKey))
	require.Equal(t, before, shapeOf[int](t, a))
}

func TestAVLTree_EmptyTree(t *testing.T) {
	t.Parallel()

	a := NewOrderedAVLTree[int]()
	_, err := a.Search(1)
	require.True(t, errors.Is(err, ErrEmptyTree))

	ok, err := a.Remove(1)
	require.False(t, ok)
	require.True(t, errors.Is(err, ErrEmptyTree))

	require.Nil(t, a.GetRoot())
	require.NoError(t, a.Check())

	addAll[int](t, a, 7)
	require.Zero(t, a.GetRoot().Height())
}

func TestAVLTree_NilComparator(t *testing.T) {
	t.Parallel()

	a := NewAVLTree[string](nil)
	require.True(t, errors.Is(a.Add("a"), ErrNilComparator))
	require.Nil(t, a.GetRoot())
}

func TestAVLTree_Descending(t *testing.T) {
	t.Parallel()

	a := NewAVLTree[int](Descending[int])
	addAll[int](t, a, 43, 18, 22, 9, 21)
	require.Equal(t, []int{43, 22, 21, 18, 9}, collect[int](t, a, InOrder))
	require.NoError(t, a.Check())
}

func TestAVLTree_Remove(t *testing.T) {
	t.Parallel()

	a := NewOrderedAVLTree[int]()
	addAll[int](t, a, 43, 18, 22, 9, 21)

	// two children: 18 takes 21 as its key
	ok, err := a.Remove(18)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{9, 21, 22, 43}, collect[int](t, a, InOrder))
	require.NoError(t, a.Check())

	// removing 43 unbalances 22 and rotates right at the root
	ok, err = a.Remove(43)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 21, a.GetRoot().Key())
	require.Equal(t, []int{21, 9, 22}, collect[int](t, a, PreOrder))
	require.NoError(t, a.Check())

	ok, err = a.Remove(100)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 3, a.Len())

	for _, k := range []int{21, 9, 22} {
		ok, err = a.Remove(k)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, a.Check())
	}
	require.Nil(t, a.GetRoot())
}

func TestAVLTree_Clean(t *testing.T) {
	t.Parallel()

	a := NewOrderedAVLTree[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, a.Add(i))
	}

	var nodes []*Node[int]
	require.NoError(t, a.Traverse(InOrder, func(n *Node[int]) bool {
		nodes = append(nodes, n)
		return false
	}))
	require.Len(t, nodes, 100)

	require.True(t, a.Clean())
	require.Nil(t, a.GetRoot())
	require.Equal(t, 0, a.Len())
	for _, n := range nodes {
		require.Nil(t, n.Left())
		require.Nil(t, n.Right())
		require.Nil(t, n.Parent())
	}
}

// avlHeightBound is the maximum number of levels of an AVL tree with n keys.
func avlHeightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}

func TestAVLTree_RandomInsertions(t *testing.T) {
	t.Parallel()

	const n = 2000
	a := NewOrderedAVLTree[int]()
	for i, k := range rand.Perm(n) {
		require.NoError(t, a.Add(k))
		require.NoError(t, a.Check())
		require.LessOrEqual(t, float64(a.Height()+1), avlHeightBound(i+1))
	}

	keys := collect[int](t, a, InOrder)
	require.Len(t, keys, n)
	require.True(t, sort.IntsAreSorted(keys))
}

func TestAVLTree_SequentialInsertionsStayBalanced(t *testing.T) {
	t.Parallel()

	a := NewOrderedAVLTree[int]()
	for i := 0; i < 1<<12; i++ {
		require.NoError(t, a.Add(i))
	}
	require.NoError(t, a.Check())
	require.LessOrEqual(t, float64(a.Height()+1), avlHeightBound(a.Len()))
}

func TestAVLTree_RandomRemovals(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(42))
	a := NewOrderedAVLTree[int]()
	present := map[int]bool{}

	for i := 0; i < 5000; i++ {
		k := rnd.Intn(500)
		if rnd.Intn(2) == 0 && a.Len() > 0 {
			ok, err := a.Remove(k)
			require.NoError(t, err)
			require.Equal(t, present[k], ok)
			delete(present, k)
		} else {
			err := a.Add(k)
			if present[k] {
				require.True(t, errors.Is(err, ErrDuplicateKey))
			} else {
				require.NoError(t, err)
			}
			present[k] = true
		}
		require.NoError(t, a.Check())
		require.Equal(t, len(present), a.Len())
	}
}

func TestAVLTree_QuickUUIDKeys(t *testing.T) {
	t.Parallel()

	// Each call inserts a batch of random keys into a fresh tree and checks
	// the invariants after every insertion.
	property := func(count uint8) bool {
		a := NewOrderedAVLTree[string]()
		var keys []string
		for i := 0; i < int(count); i++ {
			k, err := uuid.GenerateUUID()
			if err != nil {
				return false
			}
			keys = append(keys, k)
			if a.Add(k) != nil || a.Check() != nil {
				return false
			}
			if float64(a.Height()+1) > avlHeightBound(a.Len()) {
				return false
			}
		}
		sort.Strings(keys)
		var got []string
		it := a.Iterator()
		for k, ok := it.Next(); ok; k, ok = it.Next() {
			got = append(got, k)
		}
		if len(got) != len(keys) {
			return false
		}
		for i := range got {
			if got[i] != keys[i] {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(property, nil))
}

func BenchmarkInsertAVL(b *testing.B) {
	a := NewOrderedAVLTree[string]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		_ = a.Add(uuid1)
	}
}

func BenchmarkSearchAVL(b *testing.B) {
	a := NewOrderedAVLTree[string]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		_ = a.Add(uuid1)
		_, _ = a.Search(uuid1)
	}
}

func BenchmarkRemoveAVL(b *testing.B) {
	a := NewOrderedAVLTree[string]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		uuid1, _ := uuid.GenerateUUID()
		_ = a.Add(uuid1)
		_, _ = a.Remove(uuid1)
	}
}
