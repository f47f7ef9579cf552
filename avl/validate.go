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

import "fmt"

// Validate checks the ordering, height and balance-factor invariants of the
// whole tree and that Len matches the number of nodes. It returns the first
// violation found, wrapping one of the Err*Violation / Err*Mismatch errors.
func (tree *Tree[V]) Validate() error {
	count := 0
	if _, err := validateNode(tree.root, nil, nil, &count); err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("%w: Len() = %d, nodes = %d", ErrCountMismatch, tree.size, count)
	}
	return nil
}

// validateNode returns the height of the subtree. lo and hi, when set, are
// exclusive bounds inherited from the ancestors.
func validateNode[V any](node *Node[V], lo, hi *int, count *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	*count++

	if (lo != nil && node.key <= *lo) || (hi != nil && node.key >= *hi) {
		return 0, fmt.Errorf("%w at key %d", ErrOrderViolation, node.key)
	}

	lh, err := validateNode(node.left, lo, &node.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := validateNode(node.right, &node.key, hi, count)
	if err != nil {
		return 0, err
	}

	want, ok := classify(lh - rh)
	if !ok {
		return 0, fmt.Errorf("%w at key %d: left %d, right %d", ErrBalanceViolation, node.key, lh, rh)
	}
	if node.bf != want {
		return 0, fmt.Errorf("%w at key %d: cached %s, actual %s", ErrBalanceFactorMismatch, node.key, node.bf, want)
	}

	return max(lh, rh) + 1, nil
}
