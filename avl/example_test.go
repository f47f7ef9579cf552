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

package avl_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cybrota/avlmap/avl"
)

func Example() {
	tree := avl.New[string]()
	for _, k := range []int{30, 10, 20} {
		tree.Upsert(k, fmt.Sprintf("v%d", k))
	}

	root := tree.Root()
	fmt.Println(root.Key(), root.Left().Key(), root.Right().Key(), root.Balance())

	if _, err := tree.Lookup(99); errors.Is(err, avl.ErrKeyNotFound) {
		fmt.Println(err)
	}
	// Output:
	// 20 10 30 EH
	// 99: key not found
}

func ExampleTree_Upsert() {
	tree := avl.New[string]()
	fmt.Println(tree.Upsert(5, "a"))
	fmt.Println(tree.Upsert(5, "b"))

	v, _ := tree.Lookup(5)
	fmt.Println(v, tree.Len())
	// Output:
	// false
	// true
	// b 1
}

func ExampleTree_All() {
	tree := avl.New[int]()
	for i := 7; i >= 1; i-- {
		tree.Upsert(i, i*i)
	}
	var pairs []string
	for k, v := range tree.All() {
		pairs = append(pairs, fmt.Sprintf("%d=%d", k, v))
	}
	fmt.Println(strings.Join(pairs, " "))
	fmt.Println("height:", tree.Height())
	// Output:
	// 1=1 2=4 3=9 4=16 5=25 6=36 7=49
	// height: 3
}
