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

package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/willf/bloom"

	"github.com/cybrota/ordset/avl"
)

// store is the string facing view of an Index used by the commands, so
// they work the same whether values are ordered as text or as integers.
type store interface {
	AddString(s string) (bool, error)
	RemoveString(s string) error
	HasString(s string) (bool, error)
	Lines() []string
	Bounds() (lo string, hi string, err error)
	Export(w io.Writer) error
	Print(w io.Writer) int
	Outline() *outlineNode
	Check() error
	Count() int
	Height() int
	Reset()
	Revision() uint64
	Stats() IndexStats
}

// IndexStats counts how membership queries were answered.
type IndexStats struct {
	Lookups       int // Has calls
	FilterRejects int // answered by the bloom filter alone
	TreeLookups   int // needed a descent of the tree
	FalsePositive int // bloom said maybe, tree said no
}

// Index is an ordered set with a bloom filter in front of the membership
// test, so most misses never descend the tree.
type Index[V cmp.Ordered] struct {
	tree     *avl.Tree[V]
	filter   *bloom.BloomFilter
	parse    func(string) (V, error)
	revision uint64
	stats    IndexStats
}

func newIndex[V cmp.Ordered](config FilterConfig, parse func(string) (V, error)) *Index[V] {
	return &Index[V]{
		tree:   avl.New[V](),
		filter: bloom.New(config.BloomBits, config.BloomHashes),
		parse:  parse,
	}
}

// NewStringIndex orders values as text.
func NewStringIndex(config FilterConfig) *Index[string] {
	return newIndex(config, func(s string) (string, error) {
		return s, nil
	})
}

// NewIntIndex orders values as signed 64 bit integers.
func NewIntIndex(config FilterConfig) *Index[int64] {
	return newIndex(config, parseInt64)
}

func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return n, nil
}

// key used for the bloom filter, the canonical printed form of a value
func filterKey[V cmp.Ordered](v V) string {
	return fmt.Sprint(v)
}

// Tree gives direct access to the underlying set.
func (ix *Index[V]) Tree() *avl.Tree[V] {
	return ix.tree
}

// Add inserts v and reports whether it was new.
func (ix *Index[V]) Add(v V) bool {
	if !ix.tree.Insert(v) {
		return false
	}
	ix.filter.AddString(filterKey(v))
	ix.revision++
	return true
}

// Has reports whether v is in the set.
func (ix *Index[V]) Has(v V) bool {
	ix.stats.Lookups++
	if !ix.filter.TestString(filterKey(v)) {
		ix.stats.FilterRejects++
		return false
	}
	ix.stats.TreeLookups++
	found := ix.tree.Contains(v)
	if !found {
		ix.stats.FalsePositive++
	}
	return found
}

// Delete removes v. The bloom filter cannot forget v, so later lookups of
// v fall through to the tree.
func (ix *Index[V]) Delete(v V) error {
	if err := ix.tree.Remove(v); err != nil {
		return err
	}
	ix.revision++
	return nil
}

// Reset drops every value and clears the filter.
func (ix *Index[V]) Reset() {
	ix.tree.MakeEmpty()
	ix.filter.ClearAll()
	ix.stats = IndexStats{}
	ix.revision++
}

func (ix *Index[V]) Revision() uint64  { return ix.revision }
func (ix *Index[V]) Stats() IndexStats { return ix.stats }
func (ix *Index[V]) Count() int        { return ix.tree.Count() }
func (ix *Index[V]) Height() int       { return ix.tree.Height() }
func (ix *Index[V]) Check() error      { return ix.tree.Check() }

func (ix *Index[V]) Export(w io.Writer) error {
	return ix.tree.Export(w)
}

func (ix *Index[V]) Print(w io.Writer) int {
	return ix.tree.Print(w)
}

func (ix *Index[V]) AddString(s string) (bool, error) {
	v, err := ix.parse(s)
	if err != nil {
		return false, err
	}
	return ix.Add(v), nil
}

func (ix *Index[V]) RemoveString(s string) error {
	v, err := ix.parse(s)
	if err != nil {
		return err
	}
	return ix.Delete(v)
}

func (ix *Index[V]) HasString(s string) (bool, error) {
	v, err := ix.parse(s)
	if err != nil {
		return false, err
	}
	return ix.Has(v), nil
}

// Lines returns the values in ascending order, printed.
func (ix *Index[V]) Lines() []string {
	lines := make([]string, 0, ix.tree.Count())
	for v := range ix.tree.All() {
		lines = append(lines, fmt.Sprint(v))
	}
	return lines
}

// Bounds returns the printed lowest and highest values.
func (ix *Index[V]) Bounds() (string, string, error) {
	lo, err := ix.tree.Min()
	if err != nil {
		return "", "", err
	}
	hi, err := ix.tree.Max()
	if err != nil {
		return "", "", err
	}
	return fmt.Sprint(lo), fmt.Sprint(hi), nil
}
