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

// rotateLeft lifts the right child of node into its place and returns it.
// Balance factors are left for the caller to fix.
func rotateLeft[V any](node *Node[V]) *Node[V] {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	return pivot
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[V any](node *Node[V]) *Node[V] {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	return pivot
}

// growRight is applied to node after its right subtree became one level
// taller. It returns the (possibly new) subtree root and whether the subtree
// rooted there grew as a whole.
func growRight[V any](node *Node[V]) (*Node[V], bool) {
	switch node.bf {
	case LeftHeavy:
		node.bf = Balanced
		return node, false
	case Balanced:
		node.bf = RightHeavy
		return node, true
	default:
		return balanceRight(node), false
	}
}

func growLeft[V any](node *Node[V]) (*Node[V], bool) {
	switch node.bf {
	case RightHeavy:
		node.bf = Balanced
		return node, false
	case Balanced:
		node.bf = LeftHeavy
		return node, true
	default:
		return balanceLeft(node), false
	}
}

// balanceRight restores the height invariant at a right-heavy node whose
// right subtree has just grown.
//
//	  A                 C                   B
//	 / \               / \                /   \
//	T1  C     ->      A   T3     or      A     C
//	   / \           / \                / \   / \
//	  B   T3        T1  B             T1 T2a T2b T3
func balanceRight[V any](node *Node[V]) *Node[V] {
	child := node.right
	if child.bf == RightHeavy {
		node.bf = Balanced
		child.bf = Balanced
		return rotateLeft(node)
	}

	grand := child.left
	switch grand.bf {
	case Balanced:
		node.bf = Balanced
		child.bf = Balanced
	case LeftHeavy:
		node.bf = Balanced
		child.bf = RightHeavy
	case RightHeavy:
		node.bf = LeftHeavy
		child.bf = Balanced
	}
	grand.bf = Balanced

	node.right = rotateRight(child)
	return rotateLeft(node)
}

// balanceLeft is the mirror of balanceRight.
func balanceLeft[V any](node *Node[V]) *Node[V] {
	child := node.left
	if child.bf == LeftHeavy {
		node.bf = Balanced
		child.bf = Balanced
		return rotateRight(node)
	}

	grand := child.right
	switch grand.bf {
	case Balanced:
		node.bf = Balanced
		child.bf = Balanced
	case RightHeavy:
		node.bf = Balanced
		child.bf = LeftHeavy
	case LeftHeavy:
		node.bf = RightHeavy
		child.bf = Balanced
	}
	grand.bf = Balanced

	node.left = rotateLeft(child)
	return rotateRight(node)
}
