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
	"errors"
	"fmt"
)

// Check walks the whole tree and verifies ordering, balance, the cached
// heights and the value count. It returns an *InvariantError for the first
// broken node.
func (tree *Tree[V]) Check() error {
	n, err := tree.check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return &InvariantError{
			Value:  nil,
			Reason: fmt.Sprintf("count is %d but tree holds %d values", tree.count, n),
		}
	}
	return nil
}

// internal: consistency checker, lo and hi bound the values allowed in p
func (tree *Tree[V]) check(p *node[V], lo *V, hi *V) (int, error) {
	if p == nil {
		return 0, nil
	}
	if lo != nil && tree.compare(p.value, *lo) <= 0 {
		return 0, &InvariantError{Value: p.value, Reason: fmt.Sprintf("not above %v", *lo)}
	}
	if hi != nil && tree.compare(p.value, *hi) >= 0 {
		return 0, &InvariantError{Value: p.value, Reason: fmt.Sprintf("not below %v", *hi)}
	}
	if err := checkNode(p); err != nil {
		return 0, err
	}

	nl, err := tree.check(p.left, lo, &p.value)
	if err != nil {
		return 0, err
	}
	nr, err := tree.check(p.right, &p.value, hi)
	if err != nil {
		return 0, err
	}
	return 1 + nl + nr, nil
}

// local balance and height of a single node, children assumed correct
func checkNode[V any](p *node[V]) error {
	hl := height(p.left)
	hr := height(p.right)
	if p.height != 1+max(hl, hr) {
		return &InvariantError{
			Value:  p.value,
			Reason: fmt.Sprintf("cached height %d, children %d and %d", p.height, hl, hr),
		}
	}
	if hl-hr > allowedImbalance || hr-hl > allowedImbalance {
		return &InvariantError{
			Value:  p.value,
			Reason: fmt.Sprintf("unbalanced, left height %d right height %d", hl, hr),
		}
	}
	return nil
}

// IsInvariantError reports whether err came from a failed consistency check.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
