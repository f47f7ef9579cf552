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

// Node is a single entry of the tree. Nodes are owned by their Tree and are
// exposed read-only so callers can walk the shape.
type Node[V any] struct {
	key   int
	value V
	bf    BalanceFactor
	left  *Node[V]
	right *Node[V]
}

func newNode[V any](key int, value V) *Node[V] {
	return &Node[V]{key: key, value: value, bf: Balanced}
}

func (n *Node[V]) Key() int               { return n.key }
func (n *Node[V]) Value() V               { return n.value }
func (n *Node[V]) Balance() BalanceFactor { return n.bf }
func (n *Node[V]) Left() *Node[V]         { return n.left }
func (n *Node[V]) Right() *Node[V]        { return n.right }

// height counts levels, so a nil subtree is 0 and a leaf is 1.
func (n *Node[V]) height() int {
	if n == nil {
		return 0
	}
	return max(n.left.height(), n.right.height()) + 1
}
