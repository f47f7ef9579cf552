// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type upsertTestCase struct {
	Name          string
	Keys          []int
	ExpectedShape string
	ExpectedOrder []int
}

func TestUpsertShapes(t *testing.T) {
	testCases := []upsertTestCase{
		{
			Name:          "ascending triggers single left rotation",
			Keys:          []int{10, 20, 30},
			ExpectedShape: "20:EH(10:EH 30:EH)",
			ExpectedOrder: []int{10, 20, 30},
		},
		{
			Name:          "descending triggers single right rotation",
			Keys:          []int{30, 20, 10},
			ExpectedShape: "20:EH(10:EH 30:EH)",
			ExpectedOrder: []int{10, 20, 30},
		},
		{
			Name:          "right-left double rotation",
			Keys:          []int{30, 10, 20},
			ExpectedShape: "20:EH(10:EH 30:EH)",
			ExpectedOrder: []int{10, 20, 30},
		},
		{
			Name:          "left-right double rotation",
			Keys:          []int{10, 30, 20},
			ExpectedShape: "20:EH(10:EH 30:EH)",
			ExpectedOrder: []int{10, 20, 30},
		},
		{
			Name:          "one through seven ascending is complete",
			Keys:          []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedShape: "4:EH(2:EH(1:EH 3:EH) 6:EH(5:EH 7:EH))",
			ExpectedOrder: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			Name:          "growth absorbed by left-heavy ancestor",
			Keys:          []int{20, 10, 30, 5, 25},
			ExpectedShape: "20:EH(10:LH(5:EH .) 30:LH(25:EH .))",
			ExpectedOrder: []int{5, 10, 20, 25, 30},
		},
		{
			Name:          "single insert",
			Keys:          []int{42},
			ExpectedShape: "42:EH",
			ExpectedOrder: []int{42},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := buildTree(tc.Keys...)
			require.Equal(t, tc.ExpectedShape, shape(tree.Root()))
			require.Equal(t, tc.ExpectedOrder, slices.Collect(tree.Keys()))
			require.NoError(t, tree.Validate())
		})
	}
}

func TestOneToSevenHeight(t *testing.T) {
	tree := buildTree(1, 2, 3, 4, 5, 6, 7)
	require.Equal(t, 4, tree.Root().Key())
	require.Equal(t, 3, tree.Height())
	require.Equal(t, 3, tree.Root().height())
}

func TestUpsertOverwritesValue(t *testing.T) {
	tree := New[string]()
	require.False(t, tree.Upsert(5, "a"))
	require.True(t, tree.Upsert(5, "b"))

	v, err := tree.Lookup(5)
	require.NoError(t, err)
	require.Equal(t, "b", v)
	require.Equal(t, 1, tree.Len())
	require.Equal(t, 1, countNodes(tree.Root()))
}

func TestUpsertExistingKeyKeepsShape(t *testing.T) {
	tree := buildTree(50, 20, 80, 10, 30, 70, 90, 25)
	before := shape(tree.Root())

	for _, k := range []int{50, 25, 90, 10} {
		require.True(t, tree.Upsert(k, "changed"))
		require.Equal(t, before, shape(tree.Root()))
	}
	require.Equal(t, 8, tree.Len())

	v, ok := tree.Get(25)
	require.True(t, ok)
	require.Equal(t, "changed", v)
}

func TestRepeatedIdenticalUpsertIsIdempotent(t *testing.T) {
	once := buildTree(8, 3, 12, 1, 6)
	twice := buildTree(8, 3, 12, 1, 6)
	twice.Upsert(6, "6")
	twice.Upsert(6, "6")

	require.Equal(t, shape(once.Root()), shape(twice.Root()))
	require.Equal(t, once.Len(), twice.Len())
}

func TestLookupEmptyTree(t *testing.T) {
	var tree Tree[string]
	for _, k := range []int{0, -1, 7} {
		_, err := tree.Lookup(k)
		require.ErrorIs(t, err, ErrKeyNotFound)
		require.False(t, tree.Contains(k))
	}
	require.Equal(t, 0, tree.Height())
	require.Equal(t, 0, tree.Len())
	require.Nil(t, tree.Root())
	require.NoError(t, tree.Validate())
}

func TestZeroValueTreeIsUsable(t *testing.T) {
	var tree Tree[int]
	tree.Upsert(3, 30)
	tree.Upsert(1, 10)
	tree.Upsert(2, 20)

	v, err := tree.Lookup(2)
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.Equal(t, "2:EH(1:EH 3:EH)", shape(tree.Root()))
}

func TestLookupMissingKeyMessage(t *testing.T) {
	tree := buildTree(1, 2, 3)
	_, err := tree.Lookup(9)
	require.True(t, errors.Is(err, ErrKeyNotFound))
	require.EqualError(t, err, "9: key not found")
}

func TestMinMax(t *testing.T) {
	tree := New[string]()
	_, _, ok := tree.Min()
	require.False(t, ok)
	_, _, ok = tree.Max()
	require.False(t, ok)

	tree = buildTree(40, -3, 17, 99, 0)
	k, v, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, -3, k)
	require.Equal(t, "-3", v)

	k, v, ok = tree.Max()
	require.True(t, ok)
	require.Equal(t, 99, k)
	require.Equal(t, "99", v)
}

// Every prefix of a shuffled insertion sequence must satisfy the invariants,
// stay within the AVL height bound and answer lookups with the latest value.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed*7919))
			tree := New[int]()
			latest := map[int]int{}

			for step := 0; step < 400; step++ {
				k := rng.IntN(300) - 150
				tree.Upsert(k, step)
				latest[k] = step

				require.NoError(t, tree.Validate(), "step %d key %d", step, k)
				require.LessOrEqual(t, tree.Height(), MaxHeight(tree.Len()))
				require.Equal(t, tree.Root().height(), tree.Height())
			}

			require.Equal(t, len(latest), tree.Len())
			for k, want := range latest {
				got, err := tree.Lookup(k)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
			for k := -200; k < -150; k++ {
				_, err := tree.Lookup(k)
				require.ErrorIs(t, err, ErrKeyNotFound)
			}

			keys := slices.Collect(tree.Keys())
			require.True(t, slices.IsSorted(keys))
			require.Len(t, slices.Compact(slices.Clone(keys)), len(keys))
		})
	}
}

func TestSortedInsertionsStayLogarithmic(t *testing.T) {
	for _, n := range []int{1, 2, 15, 100, 1000, 4095} {
		asc := New[struct{}]()
		desc := New[struct{}]()
		for i := 0; i < n; i++ {
			asc.Upsert(i, struct{}{})
			desc.Upsert(n-i, struct{}{})
		}
		require.NoError(t, asc.Validate())
		require.NoError(t, desc.Validate())
		require.LessOrEqual(t, asc.Height(), MaxHeight(n), "n=%d", n)
		require.LessOrEqual(t, desc.Height(), MaxHeight(n), "n=%d", n)
	}
}

func TestMaxHeight(t *testing.T) {
	// n is the fewest nodes an AVL tree of height h can hold.
	cases := map[int]int{0: 0, 1: 1, 2: 2, 4: 3, 7: 4, 12: 5, 20: 6, 33: 7}
	for n, h := range cases {
		require.Equal(t, h, MaxHeight(n), "n=%d", n)
	}
}
