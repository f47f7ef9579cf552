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

// Package avl implements an ordered map from integer keys to values, kept
// balanced as an AVL tree.
//
// Every node caches a balance factor (LeftHeavy, Balanced or RightHeavy)
// instead of its height. Upsert descends to the insertion point and, on the
// way back, uses a "grew" signal from each subtree to update the cached
// factors and to rotate where a subtree would become two levels deeper than
// its sibling. The height of a tree with n entries therefore never exceeds
// about 1.44·log2(n+2).
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must guard each operation with a single lock.
package avl
