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
	"iter"
)

// Iterator yields the values of a tree in ascending order.
//
// It borrows the nodes of the tree, so it must not be used once the tree
// has been modified.
type Iterator[V any] struct {
	stack []*node[V] // ancestors whose value has not been yielded yet
}

// Iter returns an iterator positioned before the lowest value.
func (tree *Tree[V]) Iter() *Iterator[V] {
	it := &Iterator[V]{
		stack: make([]*node[V], 0, height(tree.root)+1),
	}
	it.pushLeft(tree.root)
	return it
}

// Next returns the next value in ascending order. Once the values are
// exhausted it returns false on every call.
func (it *Iterator[V]) Next() (V, bool) {
	if len(it.stack) == 0 {
		var zero V
		return zero, false
	}
	top := len(it.stack) - 1
	p := it.stack[top]
	it.stack[top] = nil
	it.stack = it.stack[:top]

	it.pushLeft(p.right)
	return p.value, true
}

// push the leftmost spine of a sub-tree
func (it *Iterator[V]) pushLeft(p *node[V]) {
	for p != nil {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// All returns the values in ascending order for use with range.
func (tree *Tree[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := tree.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Values returns the values in ascending order.
func (tree *Tree[V]) Values() []V {
	values := make([]V, 0, tree.count)
	for v := range tree.All() {
		values = append(values, v)
	}
	return values
}
