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

type node[V any] struct {
	value  V
	left   *node[V]
	right  *node[V]
	height int // -1 for an empty subtree, 0 for a leaf
}

func newLeaf[V any](value V) *node[V] {
	return &node[V]{value: value, height: 0}
}

// height of a possibly empty subtree, read from the cache
func height[V any](n *node[V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func updateHeight[V any](n *node[V]) {
	n.height = 1 + max(height(n.left), height(n.right))
}
