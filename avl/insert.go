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

// Insert adds value to the tree and reports whether it was added.
//
// A value equal to one already in the tree is ignored: the tree is left
// unchanged and Insert returns false.
func (tree *Tree[V]) Insert(value V) bool {
	added := false
	tree.root, added = tree.insert(value, tree.root)
	if added {
		tree.count++
	}
	return added
}

// internal routine for insert
func (tree *Tree[V]) insert(value V, p *node[V]) (*node[V], bool) {
	if p == nil {
		return newLeaf(value), true
	}

	added := false
	switch c := tree.compare(value, p.value); {
	case c < 0:
		p.left, added = tree.insert(value, p.left)
	case c > 0:
		p.right, added = tree.insert(value, p.right)
	default:
		// duplicate: nothing changed below, nothing to rebalance
		return p, false
	}
	return rebalance(p), added
}
