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

// print.go
// The sideways printer is adapted from https://github.com/bitmark-inc/bitmarkd
// avl/print.go, Copyright (c) 2014-2019 Bitmark Inc. (ISC license)

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes a sideways ASCII picture of the tree to w, higher values
// on top, and returns the number of levels printed.
func (tree *Tree[V]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", rootBranch)
}

func printTree[V any](w io.Writer, p *node[V], prefix string, br branch) int {
	if p == nil {
		return 0
	}
	rd := 0
	ld := 0
	if p.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d\n", p.value, p.height)
	if p.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
