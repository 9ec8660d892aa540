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

// allowed height difference between the two subtrees of a node
const allowedImbalance = 1

// rotateLeftChild brings the left child up to fix a left-left imbalance and
// returns the new subtree root.
func rotateLeftChild[V any](n *node[V]) *node[V] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)
	return pivot
}

// rotateRightChild brings the right child up to fix a right-right
// imbalance and returns the new subtree root.
func rotateRightChild[V any](n *node[V]) *node[V] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)
	return pivot
}

// left-right case: the left subtree leans to its right
func doubleLeftChild[V any](n *node[V]) *node[V] {
	n.left = rotateRightChild(n.left)
	return rotateLeftChild(n)
}

// right-left case: the right subtree leans to its left
func doubleRightChild[V any](n *node[V]) *node[V] {
	n.right = rotateLeftChild(n.right)
	return rotateRightChild(n)
}

// rebalance restores the height balance of n after one of its subtrees
// changed height by at most one, and returns the subtree root to store in
// the parent.
func rebalance[V any](n *node[V]) *node[V] {
	if n == nil {
		return nil
	}

	if height(n.left)-height(n.right) > allowedImbalance {
		if height(n.left.left) >= height(n.left.right) {
			log.Tracef("rotate left child up at %v", n.value)
			n = rotateLeftChild(n)
		} else {
			log.Tracef("double rotate left child at %v", n.value)
			n = doubleLeftChild(n)
		}
	} else if height(n.right)-height(n.left) > allowedImbalance {
		if height(n.right.right) >= height(n.right.left) {
			log.Tracef("rotate right child up at %v", n.value)
			n = rotateRightChild(n)
		} else {
			log.Tracef("double rotate right child at %v", n.value)
			n = doubleRightChild(n)
		}
	}

	updateHeight(n)
	if debug {
		assertBalanced(n)
	}
	return n
}
