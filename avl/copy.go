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

// Clone returns a deep copy of the tree. The copy has the same shape and
// shares no nodes with the original.
func (tree *Tree[V]) Clone() *Tree[V] {
	return &Tree[V]{
		root:    clone(tree.root),
		count:   tree.count,
		compare: tree.compare,
	}
}

func clone[V any](p *node[V]) *node[V] {
	if p == nil {
		return nil
	}
	return &node[V]{
		value:  p.value,
		left:   clone(p.left),
		right:  clone(p.right),
		height: p.height,
	}
}
