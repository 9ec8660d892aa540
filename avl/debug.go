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

//go:build avldebug

package avl

// compiled in by the avldebug build tag
const debug = true

// assertBalanced panics if a freshly rebalanced subtree root is broken.
func assertBalanced[V any](p *node[V]) {
	if p.left != nil {
		if err := checkNode(p.left); err != nil {
			panic(err)
		}
	}
	if p.right != nil {
		if err := checkNode(p.right); err != nil {
			panic(err)
		}
	}
	if err := checkNode(p); err != nil {
		panic(err)
	}
}
