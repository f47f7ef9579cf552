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
	"strings"
)

// mk builds a node by hand for white-box tests.
func mk(key int, bf BalanceFactor, left, right *Node[string]) *Node[string] {
	return &Node[string]{key: key, value: fmt.Sprint(key), bf: bf, left: left, right: right}
}

func leaf(key int) *Node[string] {
	return mk(key, Balanced, nil, nil)
}

// shape renders a subtree as "key:bf(left right)", with "." for a missing child.
func shape[V any](node *Node[V]) string {
	if node == nil {
		return "."
	}
	if node.left == nil && node.right == nil {
		return fmt.Sprintf("%d:%s", node.key, node.bf)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%s(%s %s)", node.key, node.bf, shape(node.left), shape(node.right))
	return sb.String()
}

func countNodes[V any](node *Node[V]) int {
	if node == nil {
		return 0
	}
	return countNodes(node.left) + countNodes(node.right) + 1
}

func treeOf(root *Node[string]) *Tree[string] {
	return &Tree[string]{root: root, size: countNodes(root)}
}

func buildTree(keys ...int) *Tree[string] {
	tree := New[string]()
	for _, k := range keys {
		tree.Upsert(k, fmt.Sprint(k))
	}
	return tree
}
