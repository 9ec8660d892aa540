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

var (
	// ErrEmpty is returned by Min and Max on an empty tree.
	ErrEmpty = errors.New("avl: tree is empty")

	// ErrNotFound is returned by Remove when the value is not in the tree.
	ErrNotFound = errors.New("avl: value not found")
)

// InvariantError describes a node that breaks the ordering, balance or
// height bookkeeping of the tree. A correct tree never produces one.
type InvariantError struct {
	Value  any
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("avl: invariant violated at %v: %s", e.Value, e.Reason)
}
