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

import (
	"bufio"
	"fmt"
	"io"
)

// Edge is a link from a node to one of its children.
type Edge[V any] struct {
	Parent V
	Child  V
}

func (e Edge[V]) String() string {
	return fmt.Sprintf("%v->%v", e.Parent, e.Child)
}

// Edges lists every parent to child link in pre-order: the links of a node
// (left first) come before those of its left subtree, which come before
// those of its right subtree.
func (tree *Tree[V]) Edges() []Edge[V] {
	edges := make([]Edge[V], 0, max(tree.count-1, 0))
	return appendEdges(edges, tree.root)
}

func appendEdges[V any](edges []Edge[V], p *node[V]) []Edge[V] {
	if p == nil {
		return edges
	}
	if p.left != nil {
		edges = append(edges, Edge[V]{Parent: p.value, Child: p.left.value})
	}
	if p.right != nil {
		edges = append(edges, Edge[V]{Parent: p.value, Child: p.right.value})
	}
	edges = appendEdges(edges, p.left)
	return appendEdges(edges, p.right)
}

// Export writes the structure of the tree as a graphviz digraph with one
// "parent->child" edge per line.
func (tree *Tree[V]) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	for _, e := range tree.Edges() {
		fmt.Fprintln(bw, e)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
