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

// Contains reports whether value is in the tree.
func (tree *Tree[V]) Contains(value V) bool {
	return tree.search(value) != nil
}

func (tree *Tree[V]) search(value V) *node[V] {
	p := tree.root
	for p != nil {
		switch c := tree.compare(value, p.value); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Min returns the lowest value, or ErrEmpty.
func (tree *Tree[V]) Min() (V, error) {
	if tree.root == nil {
		var zero V
		return zero, ErrEmpty
	}
	return findMin(tree.root).value, nil
}

// Max returns the highest value, or ErrEmpty.
func (tree *Tree[V]) Max() (V, error) {
	if tree.root == nil {
		var zero V
		return zero, ErrEmpty
	}
	return findMax(tree.root).value, nil
}

// internal: lowest node in a non-empty sub-tree
func findMin[V any](p *node[V]) *node[V] {
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a non-empty sub-tree
func findMax[V any](p *node[V]) *node[V] {
	for p.right != nil {
		p = p.right
	}
	return p
}
