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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightBound(t *testing.T) {
	// the smallest AVL tree of height h has F(h+3)-1 nodes
	cases := map[int]int{0: -1, 1: 0, 2: 1, 4: 2, 7: 3, 12: 4, 20: 5, 2583: 15, 4096: 15, 4180: 16}
	for n, expected := range cases {
		assert.Equal(t, expected, heightBound(n), "n=%d", n)
	}
}

func TestStatsMarkdown(t *testing.T) {
	s := NewIntIndex(testFilter)
	empty := statsMarkdown(s, nil)
	assert.Contains(t, empty, "| values | 0 |")
	assert.Contains(t, empty, "| min | - |")

	for _, v := range []int64{7, 8, 9, 10} {
		s.Add(v)
	}
	s.Has(3)
	md := statsMarkdown(s, &LoadStats{Lines: 5, Added: 4, Duplicates: 1})
	assert.Contains(t, md, "| height | 2 (bound 2) |")
	assert.Contains(t, md, "| min | `7` |")
	assert.Contains(t, md, "| max | `10` |")
	assert.Contains(t, md, "| check | ok |")
	assert.Contains(t, md, "5 lines, 4 added, 1 duplicates")
	assert.Contains(t, md, "1 lookups")
}

func TestStatsText(t *testing.T) {
	s := NewStringIndex(testFilter)
	s.Add("b")
	s.Add("a")
	text := statsText(s, nil)
	assert.Contains(t, text, "values:     2\n")
	assert.Contains(t, text, "min:        a\n")
	assert.Contains(t, text, "max:        b\n")
	assert.True(t, strings.HasSuffix(text, "check:      ok\n"))
}

func TestPrintStringEmpty(t *testing.T) {
	assert.Equal(t, "(empty)\n", printString(NewStringIndex(testFilter)))
}
