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
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cybrota/ordset/avl"
)

func exportString(s store) string {
	var b strings.Builder
	if err := s.Export(&b); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	return b.String()
}

func printString(s store) string {
	if s.Count() == 0 {
		return "(empty)\n"
	}
	var b strings.Builder
	s.Print(&b)
	return b.String()
}

// heightBound is the largest height an AVL tree of n nodes can reach,
// about 1.44 log2(n+2).
func heightBound(n int) int {
	if n == 0 {
		return -1
	}
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 1.3277))
}

// statsMarkdown describes a store as a markdown document.
func statsMarkdown(s store, load *LoadStats) string {
	var b strings.Builder
	b.WriteString("# Ordered set\n\n")
	b.WriteString("| property | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| values | %d |\n", s.Count())
	fmt.Fprintf(&b, "| height | %d (bound %d) |\n", s.Height(), heightBound(s.Count()))

	lo, hi, err := s.Bounds()
	switch {
	case errors.Is(err, avl.ErrEmpty):
		b.WriteString("| min | - |\n| max | - |\n")
	case err != nil:
		fmt.Fprintf(&b, "| bounds | %v |\n", err)
	default:
		fmt.Fprintf(&b, "| min | `%s` |\n| max | `%s` |\n", lo, hi)
	}

	if err := s.Check(); err != nil {
		fmt.Fprintf(&b, "| check | **failed**: %v |\n", err)
	} else {
		b.WriteString("| check | ok |\n")
	}

	if load != nil {
		fmt.Fprintf(&b, "\n## Load\n\n%d lines, %d added, %d duplicates, %d blank\n",
			load.Lines, load.Added, load.Duplicates, load.Skipped)
	}

	stats := s.Stats()
	if stats.Lookups > 0 {
		fmt.Fprintf(&b, "\n## Lookups\n\n%d lookups, %d rejected by the bloom filter, %d tree descents, %d false positives\n",
			stats.Lookups, stats.FilterRejects, stats.TreeLookups, stats.FalsePositive)
	}
	return b.String()
}

// statsText is the plain text summary printed by the stats and watch commands.
func statsText(s store, load *LoadStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "values:     %d\n", s.Count())
	fmt.Fprintf(&b, "height:     %d\n", s.Height())
	if lo, hi, err := s.Bounds(); err == nil {
		fmt.Fprintf(&b, "min:        %s\n", lo)
		fmt.Fprintf(&b, "max:        %s\n", hi)
	}
	if load != nil {
		fmt.Fprintf(&b, "lines:      %d\n", load.Lines)
		fmt.Fprintf(&b, "duplicates: %d\n", load.Duplicates)
		fmt.Fprintf(&b, "blank:      %d\n", load.Skipped)
	}
	if err := s.Check(); err != nil {
		fmt.Fprintf(&b, "check:      %v\n", err)
	} else {
		b.WriteString("check:      ok\n")
	}
	return b.String()
}
