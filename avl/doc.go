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

// Package avl implements an ordered set of unique values kept in an AVL
// tree, so lookup, insertion and removal stay O(log n).
//
// Every node caches the height of its subtree (an empty subtree has height
// -1 and a leaf has height 0). Insert and Remove recurse from the root and
// rebalance each node on the way back up, so after any mutation the heights
// of the two subtrees of every node differ by at most one.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard every call with a sync.Mutex / sync.RWMutex. An
// Iterator must not be used after the tree it came from has been modified.
package avl
