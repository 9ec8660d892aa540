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

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **ordset %s**

Load values into a self-balancing ordered set (an AVL tree), query it, export its shape and browse it.
Every insert and remove keeps the tree within about 1.44 log2(n) levels.

Built with Go %s

# 1. Commands
* **sort** [file]: distinct values in ascending order
* **export** [file]: the tree as a digraph, one parent->child link per line (--copy puts it on the clipboard)
* **stats** [file]: count, height, min, max, duplicates and an invariant check
* **query** [file] --value v: membership through a bloom filter in front of the tree
* **print** [file]: sideways drawing of the tree
* **history**: distinct commands from your bash or zsh history (--since YYYY-MM-DD)
* **browse** [file]: interactive browser, type insert, remove, find, clear or check
* **view** [file]: expandable tree view
* **watch** file: reload and report on every write
* **settings**: show or create ~/.ordset.yaml

# 2. Input
* One value per line, blank lines are skipped
* A file of "-" reads standard input
* --numeric orders values as integers instead of text

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
