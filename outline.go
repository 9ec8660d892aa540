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
	"cmp"
	"fmt"
)

// outlineNode is a display copy of one tree node, rebuilt from the edge
// export so the viewers never touch the tree's internals.
type outlineNode struct {
	Label    string
	Side     string // "L" or "R", empty for the root
	Height   int
	Children []*outlineNode
}

// Outline returns the shape of the tree, or nil when it is empty.
func (ix *Index[V]) Outline() *outlineNode {
	if ix.tree.IsEmpty() {
		return nil
	}
	edges := ix.tree.Edges()
	if len(edges) == 0 {
		only, _ := ix.tree.Min()
		return &outlineNode{Label: fmt.Sprint(only)}
	}

	nodes := make(map[V]*outlineNode, ix.tree.Count())
	get := func(v V) *outlineNode {
		n, ok := nodes[v]
		if !ok {
			n = &outlineNode{Label: fmt.Sprint(v)}
			nodes[v] = n
		}
		return n
	}

	// pre-order: the first parent is the root and left links come first
	root := get(edges[0].Parent)
	for _, e := range edges {
		parent := get(e.Parent)
		child := get(e.Child)
		if cmp.Less(e.Child, e.Parent) {
			child.Side = "L"
		} else {
			child.Side = "R"
		}
		parent.Children = append(parent.Children, child)
	}
	root.fillHeights()
	return root
}

func (n *outlineNode) fillHeights() int {
	n.Height = 0
	for _, c := range n.Children {
		n.Height = max(n.Height, 1+c.fillHeights())
	}
	return n.Height
}

// Title is the text shown for a node in the viewers.
func (n *outlineNode) Title() string {
	if n.Side == "" {
		return fmt.Sprintf("%s  (h=%d)", n.Label, n.Height)
	}
	return fmt.Sprintf("%s: %s  (h=%d)", n.Side, n.Label, n.Height)
}
