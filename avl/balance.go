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

// BalanceFactor records which subtree of a node is taller.
type BalanceFactor int8

const (
	LeftHeavy  BalanceFactor = 1
	Balanced   BalanceFactor = 0
	RightHeavy BalanceFactor = -1
)

func (bf BalanceFactor) String() string {
	switch bf {
	case LeftHeavy:
		return "LH"
	case Balanced:
		return "EH"
	case RightHeavy:
		return "RH"
	default:
		return "??"
	}
}

// classify maps a height difference (left minus right) onto a BalanceFactor.
// The second result is false when the difference is outside {-1, 0, 1}.
func classify(diff int) (BalanceFactor, bool) {
	switch diff {
	case 1:
		return LeftHeavy, true
	case 0:
		return Balanced, true
	case -1:
		return RightHeavy, true
	}
	return Balanced, false
}
