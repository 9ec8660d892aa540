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
	"cmp"
)

// Tree is an ordered set of unique values.
type Tree[V any] struct {
	root    *node[V]
	count   int
	compare func(a, b V) int
}

// New returns an empty tree ordered by the natural order of V.
func New[V cmp.Ordered]() *Tree[V] {
	return NewFunc[V](cmp.Compare[V])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b, and must describe a total order.
func NewFunc[V any](compare func(a, b V) int) *Tree[V] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[V]{compare: compare}
}

// IsEmpty reports whether the tree holds no values.
func (tree *Tree[V]) IsEmpty() bool {
	return tree.root == nil
}

// Count is the number of values in the tree.
func (tree *Tree[V]) Count() int {
	return tree.count
}

// Height of the tree: -1 when empty, 0 for a single value.
func (tree *Tree[V]) Height() int {
	return height(tree.root)
}

// MakeEmpty drops every value.
func (tree *Tree[V]) MakeEmpty() {
	tree.root = nil
	tree.count = 0
}
