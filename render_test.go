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
	"strings"
	"testing"

	"github.com/cybrota/avlmap/avl"
)

func buildStringTree(keys ...int) *avl.Tree[string] {
	tree := avl.New[string]()
	for _, k := range keys {
		tree.Upsert(k, strings.Repeat("v", k%3+1))
	}
	return tree
}

func TestRenderTree(t *testing.T) {
	testCases := []struct {
		Name     string
		Tree     *avl.Tree[string]
		Display  DisplayConfig
		Expected string
	}{
		{
			Name:     "empty",
			Tree:     buildStringTree(),
			Display:  DisplayConfig{ShowBalance: true},
			Expected: "(empty)\n",
		},
		{
			Name:     "single node",
			Tree:     buildStringTree(7),
			Display:  DisplayConfig{ShowBalance: true},
			Expected: "7 [EH]\n",
		},
		{
			Name:     "rotated root",
			Tree:     buildStringTree(10, 20, 30),
			Display:  DisplayConfig{ShowBalance: true},
			Expected: "20 [EH]\n├── 10 [EH]\n└── 30 [EH]\n",
		},
		{
			Name:     "keys only",
			Tree:     buildStringTree(10, 20, 30),
			Display:  DisplayConfig{},
			Expected: "20\n├── 10\n└── 30\n",
		},
		{
			Name:     "values",
			Tree:     buildStringTree(1, 2),
			Display:  DisplayConfig{ShowValues: true},
			Expected: "1=vv\n├── ·\n└── 2=vvv\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := renderTree(tc.Tree, tc.Display); got != tc.Expected {
				t.Errorf("expected:\n%q\ngot:\n%q", tc.Expected, got)
			}
		})
	}
}

func TestRenderTreeNested(t *testing.T) {
	got := renderTree(buildStringTree(1, 2, 3, 4, 5, 6, 7), DisplayConfig{ShowBalance: true})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "4 [EH]" {
		t.Errorf("expected root line %q, got %q", "4 [EH]", lines[0])
	}
	// left subtree is drawn before the right one
	if strings.Index(got, "2 [EH]") > strings.Index(got, "6 [EH]") {
		t.Errorf("expected left subtree first:\n%s", got)
	}
}

func TestNodeLabelShowsImbalance(t *testing.T) {
	tree := buildStringTree(2, 1)
	got := nodeLabel(tree.Root(), DisplayConfig{ShowBalance: true})
	if got != "2 [LH]" {
		t.Errorf("expected %q, got %q", "2 [LH]", got)
	}
}
