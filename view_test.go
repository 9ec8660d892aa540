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
	"testing"

	"github.com/gizak/termui/v3/widgets"
)

func TestOutlineToTreeNodes(t *testing.T) {
	ix := NewIntIndex(testFilter)
	for _, v := range []int64{4, 2, 6, 1, 3, 5, 7} {
		ix.Add(v)
	}

	nodes := outlineToTreeNodes(ix.Outline(), 1)
	if len(nodes) != 1 {
		t.Fatalf("expected a single root, got %d", len(nodes))
	}
	root := nodes[0]
	if root.Value.String() != "4  (h=2)" {
		t.Errorf("unexpected root label %q", root.Value.String())
	}
	if !root.Expanded {
		t.Error("root must be expanded")
	}
	if len(root.Nodes) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Nodes))
	}
	for _, child := range root.Nodes {
		if child.Expanded {
			t.Errorf("%s is below the expand depth", child.Value)
		}
	}
	if root.Nodes[0].Value.String() != "L: 2  (h=1)" || root.Nodes[1].Value.String() != "R: 6  (h=1)" {
		t.Errorf("unexpected children %s, %s", root.Nodes[0].Value, root.Nodes[1].Value)
	}
}

func TestOutlineToTreeNodesEmpty(t *testing.T) {
	nodes := outlineToTreeNodes(nil, 3)
	if len(nodes) != 1 || nodes[0].Value.String() != "(empty)" {
		t.Errorf("unexpected placeholder %+v", nodes)
	}
}

func TestSetFocus(t *testing.T) {
	tree := widgets.NewTree()
	list := widgets.NewList()
	setFocus(true, tree, list)
	if tree.BorderStyle != styleBorder(true) || list.BorderStyle != styleBorder(false) {
		t.Error("tree should hold the focus border")
	}
	setFocus(false, tree, list)
	if list.BorderStyle != styleBorder(true) {
		t.Error("list should hold the focus border")
	}
}

func TestOutlineText(t *testing.T) {
	ix := NewStringIndex(testFilter)
	ix.Add("b")
	ix.Add("a")
	expected := "b  (h=1)\n  L: a  (h=0)\n"
	if got := outlineText(ix.Outline()); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
	if got := outlineText(nil); got != "(empty)\n" {
		t.Errorf("unexpected empty outline %q", got)
	}
}
