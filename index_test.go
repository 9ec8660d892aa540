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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/ordset/avl"
)

var testFilter = FilterConfig{BloomBits: 4096, BloomHashes: 3}

func TestIndexAddAndHas(t *testing.T) {
	ix := NewStringIndex(testFilter)
	for _, s := range []string{"kiwi", "apple", "mango"} {
		assert.True(t, ix.Add(s))
	}
	assert.False(t, ix.Add("kiwi"))
	assert.Equal(t, 3, ix.Count())

	assert.True(t, ix.Has("apple"))
	assert.False(t, ix.Has("banana"))

	stats := ix.Stats()
	assert.Equal(t, 2, stats.Lookups)
	assert.Equal(t, stats.Lookups, stats.FilterRejects+stats.TreeLookups)
}

func TestIndexMissesUsuallySkipTree(t *testing.T) {
	ix := NewIntIndex(FilterConfig{BloomBits: 1 << 16, BloomHashes: 4})
	for i := int64(0); i < 100; i++ {
		ix.Add(i)
	}
	for i := int64(1000); i < 1100; i++ {
		assert.False(t, ix.Has(i))
	}
	stats := ix.Stats()
	assert.Equal(t, 100, stats.Lookups)
	// 100 keys in 64k bits: false positives are rare
	assert.Greater(t, stats.FilterRejects, 90)
	assert.Equal(t, stats.TreeLookups, stats.FalsePositive)
}

func TestIndexDeleteFallsThroughToTree(t *testing.T) {
	ix := NewStringIndex(testFilter)
	ix.Add("a")
	ix.Add("b")
	rev := ix.Revision()

	require.NoError(t, ix.Delete("a"))
	assert.Greater(t, ix.Revision(), rev)
	assert.False(t, ix.Has("a"))
	assert.Equal(t, 1, ix.Stats().FalsePositive)

	err := ix.Delete("zzz")
	assert.True(t, errors.Is(err, avl.ErrNotFound))
}

func TestIndexReset(t *testing.T) {
	ix := NewIntIndex(testFilter)
	ix.Add(5)
	ix.Has(5)
	ix.Reset()
	assert.Equal(t, 0, ix.Count())
	assert.False(t, ix.Has(5))
	assert.Equal(t, 1, ix.Stats().FilterRejects)
}

func TestIntIndexStrings(t *testing.T) {
	ix := NewIntIndex(testFilter)
	for _, s := range []string{"10", " 2", "-3", "007"} {
		added, err := ix.AddString(s)
		require.NoError(t, err)
		assert.True(t, added, s)
	}
	added, err := ix.AddString("7")
	require.NoError(t, err)
	assert.False(t, added, "7 and 007 are the same integer")

	_, err = ix.AddString("seven")
	assert.Error(t, err)

	assert.Equal(t, []string{"-3", "2", "7", "10"}, ix.Lines())
	lo, hi, err := ix.Bounds()
	require.NoError(t, err)
	assert.Equal(t, "-3", lo)
	assert.Equal(t, "10", hi)

	found, err := ix.HasString("10")
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, ix.RemoveString("10"))
	assert.Error(t, ix.RemoveString("10"))
}

func TestIndexBoundsEmpty(t *testing.T) {
	_, _, err := NewStringIndex(testFilter).Bounds()
	assert.ErrorIs(t, err, avl.ErrEmpty)
}

func TestIndexExport(t *testing.T) {
	ix := NewIntIndex(testFilter)
	for _, v := range []int64{7, 8, 9, 10} {
		ix.Add(v)
	}
	var buf bytes.Buffer
	require.NoError(t, ix.Export(&buf))
	assert.Equal(t, "digraph {\n8->7\n8->9\n9->10\n}\n", buf.String())
}

func TestOutline(t *testing.T) {
	ix := NewIntIndex(testFilter)
	assert.Nil(t, ix.Outline())

	ix.Add(7)
	single := ix.Outline()
	require.NotNil(t, single)
	assert.Equal(t, "7", single.Label)
	assert.Empty(t, single.Children)

	for _, v := range []int64{8, 9, 10} {
		ix.Add(v)
	}
	root := ix.Outline()
	require.NotNil(t, root)
	assert.Equal(t, "8", root.Label)
	assert.Equal(t, 2, root.Height)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "L", root.Children[0].Side)
	assert.Equal(t, "7", root.Children[0].Label)
	assert.Equal(t, "R", root.Children[1].Side)
	assert.Equal(t, "9", root.Children[1].Label)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "R: 10  (h=0)", root.Children[1].Children[0].Title())
	assert.Equal(t, "8  (h=2)", root.Title())
}
