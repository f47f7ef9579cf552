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
	"fmt"
	"iter"
	"math"
)

// Tree is an ordered map from int keys to values of type V.
// The zero value is an empty tree ready to use.
type Tree[V any] struct {
	root *Node[V]
	size int
}

func New[V any]() *Tree[V] {
	return &Tree[V]{root: nil}
}

// Upsert stores value under key. It reports whether an existing entry was
// overwritten; in that case the shape of the tree is unchanged.
func (tree *Tree[V]) Upsert(key int, value V) (replaced bool) {
	tree.root, _, replaced = tree.insertRecursive(tree.root, key, value)
	if !replaced {
		tree.size++
	}
	return replaced
}

// insertRecursive returns the new root of the subtree, whether that subtree
// became taller, and whether key was already present.
func (tree *Tree[V]) insertRecursive(node *Node[V], key int, value V) (*Node[V], bool, bool) {
	if node == nil {
		return newNode(key, value), true, false
	}

	var grew, replaced bool
	switch {
	case key < node.key:
		node.left, grew, replaced = tree.insertRecursive(node.left, key, value)
		if grew {
			node, grew = growLeft(node)
		}
	case key > node.key:
		node.right, grew, replaced = tree.insertRecursive(node.right, key, value)
		if grew {
			node, grew = growRight(node)
		}
	default:
		node.value = value
		return node, false, true
	}

	return node, grew, replaced
}

// Lookup returns the value stored under key, or an error wrapping
// ErrKeyNotFound.
func (tree *Tree[V]) Lookup(key int) (V, error) {
	if node := tree.find(key); node != nil {
		return node.value, nil
	}
	var zero V
	return zero, fmt.Errorf("%d: %w", key, ErrKeyNotFound)
}

// Get is the comma-ok form of Lookup.
func (tree *Tree[V]) Get(key int) (V, bool) {
	if node := tree.find(key); node != nil {
		return node.value, true
	}
	var zero V
	return zero, false
}

func (tree *Tree[V]) Contains(key int) bool {
	return tree.find(key) != nil
}

func (tree *Tree[V]) find(key int) *Node[V] {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Len returns the number of entries.
func (tree *Tree[V]) Len() int {
	return tree.size
}

// Height returns the number of levels in the tree (0 when empty). It follows
// the cached balance factors down the taller side, so it runs in O(log n).
func (tree *Tree[V]) Height() int {
	h := 0
	for node := tree.root; node != nil; h++ {
		if node.bf == RightHeavy {
			node = node.right
		} else {
			node = node.left
		}
	}
	return h
}

// Root exposes the root node for read-only walks; nil for an empty tree.
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}

// Min returns the smallest key and its value.
func (tree *Tree[V]) Min() (key int, value V, ok bool) {
	node := tree.root
	if node == nil {
		return 0, value, false
	}
	for node.left != nil {
		node = node.left
	}
	return node.key, node.value, true
}

// Max returns the largest key and its value.
func (tree *Tree[V]) Max() (key int, value V, ok bool) {
	node := tree.root
	if node == nil {
		return 0, value, false
	}
	for node.right != nil {
		node = node.right
	}
	return node.key, node.value, true
}

// All yields every entry in ascending key order. The sequence can be ranged
// over any number of times; it must not be used while the tree is modified.
func (tree *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		walk(tree.root, yield)
	}
}

// Keys yields every key in ascending order.
func (tree *Tree[V]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		walk(tree.root, func(k int, _ V) bool { return yield(k) })
	}
}

// Range yields the entries with lo <= key < hi in ascending order.
func (tree *Tree[V]) Range(lo, hi int) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		rangeSearch(tree.root, lo, hi, yield)
	}
}

func walk[V any](node *Node[V], yield func(int, V) bool) bool {
	if node == nil {
		return true
	}
	return walk(node.left, yield) && yield(node.key, node.value) && walk(node.right, yield)
}

// rangeSearch only descends into subtrees that can hold keys in [lo, hi).
func rangeSearch[V any](node *Node[V], lo, hi int, yield func(int, V) bool) bool {
	if node == nil {
		return true
	}

	if node.key > lo {
		if !rangeSearch(node.left, lo, hi, yield) {
			return false
		}
	}

	if node.key >= lo && node.key < hi {
		if !yield(node.key, node.value) {
			return false
		}
	}

	if node.key < hi-1 {
		return rangeSearch(node.right, lo, hi, yield)
	}
	return true
}

// MaxHeight is the largest height an AVL tree holding n entries can have.
func MaxHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 0.3277))
}
