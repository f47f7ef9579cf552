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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

var version = "dev"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlmap %s**

An ordered map from integer keys to values, kept balanced as an AVL tree.
Drive it from the command line, from a script, or interactively, and watch the rotations happen.

Built with Go %s

# 1. Commands
* **build K[=V] ...** upsert keys from the arguments and print the tree
* **run FILE** run a script file, use - for standard input
* **repl** interactive prompt; a full-screen view of the tree on a terminal, a line prompt for piped input
* **stress** upsert thousands of keys and validate the tree after each one
* **settings** show or create ~/.avlmap.yaml

# 2. Script language
* upsert KEY VALUE (aliases: set, put)
* get KEY (alias: lookup)
* has KEY
* len, height, list
* range LO HI (LO inclusive, HI exclusive)
* print (alias: tree)
* check
* quit (or Esc in the full-screen prompt)

Lines starting with # are comments. Values may be quoted: upsert 5 "hello world"

# 3. Balance factors
* **EH** both subtrees have the same height
* **LH** the left subtree is one level taller
* **RH** the right subtree is one level taller

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
