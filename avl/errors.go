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

import "errors"

var (
	// ErrKeyNotFound is returned by Lookup when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrOrderViolation means a key is out of binary-search-tree order.
	ErrOrderViolation = errors.New("avl: keys out of order")
	// ErrBalanceViolation means two sibling subtrees differ in height by more than one.
	ErrBalanceViolation = errors.New("avl: subtree heights differ by more than one")
	// ErrBalanceFactorMismatch means a cached balance factor disagrees with the real heights.
	ErrBalanceFactorMismatch = errors.New("avl: balance factor does not match subtree heights")
	// ErrCountMismatch means the entry count disagrees with the number of nodes.
	ErrCountMismatch = errors.New("avl: entry count does not match node count")
)
