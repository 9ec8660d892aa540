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
	"fmt"
)

// Remove deletes value from the tree. It returns an error wrapping
// ErrNotFound, and leaves the tree unchanged, if the value is absent.
func (tree *Tree[V]) Remove(value V) error {
	root, removed := tree.remove(value, tree.root)
	if !removed {
		return fmt.Errorf("remove %v: %w", value, ErrNotFound)
	}
	tree.root = root
	tree.count--
	return nil
}

// internal delete routine
func (tree *Tree[V]) remove(value V, p *node[V]) (*node[V], bool) {
	if p == nil { // value not in tree
		return nil, false
	}

	removed := false
	switch c := tree.compare(value, p.value); {
	case c < 0:
		p.left, removed = tree.remove(value, p.left)
	case c > 0:
		p.right, removed = tree.remove(value, p.right)
	default:
		removed = true
		if p.left != nil && p.right != nil {
			// two children: take over the in-order successor's value, then
			// delete the successor, which has no left child
			p.value = findMin(p.right).value
			p.right, _ = tree.remove(p.value, p.right)
		} else if p.left != nil {
			p = p.left
		} else {
			p = p.right
		}
	}

	if !removed {
		return p, false
	}
	return rebalance(p), true
}
