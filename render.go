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

package main

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/cybrota/avlmap/avl"
)

// missingChild marks the empty slot of a node that has exactly one child.
const missingChild = "·"

// renderTree draws the shape of the tree, left child first.
func renderTree[V any](tree *avl.Tree[V], display DisplayConfig) string {
	root := tree.Root()
	if root == nil {
		return "(empty)\n"
	}

	out := treeprint.NewWithRoot(nodeLabel(root, display))
	addChildren(out, root, display)
	return out.String()
}

func addChildren[V any](branch treeprint.Tree, node *avl.Node[V], display DisplayConfig) {
	if node.Left() == nil && node.Right() == nil {
		return
	}

	for _, child := range []*avl.Node[V]{node.Left(), node.Right()} {
		switch {
		case child == nil:
			branch.AddNode(missingChild)
		case child.Left() == nil && child.Right() == nil:
			branch.AddNode(nodeLabel(child, display))
		default:
			addChildren(branch.AddBranch(nodeLabel(child, display)), child, display)
		}
	}
}

func nodeLabel[V any](node *avl.Node[V], display DisplayConfig) string {
	var sb strings.Builder

	key := fmt.Sprint(node.Key())
	if display.Color {
		key = GetColorScheme().Key.Render(key)
	}
	sb.WriteString(key)

	if display.ShowValues {
		value := fmt.Sprintf("=%v", node.Value())
		if display.Color {
			value = GetColorScheme().Value.Render(value)
		}
		sb.WriteString(value)
	}

	if display.ShowBalance {
		tag := "[" + node.Balance().String() + "]"
		if display.Color {
			tag = StyleBalance(node.Balance()).Render(tag)
		}
		sb.WriteString(" ")
		sb.WriteString(tag)
	}

	return sb.String()
}
