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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/ordset/avl"
)

// LoadOptions control how input lines become values.
type LoadOptions struct {
	TrimSpace    bool
	ShowProgress bool
}

func loadOptions(config *Config) LoadOptions {
	return LoadOptions{
		TrimSpace:    config.Values.TrimSpace,
		ShowProgress: config.Loader.ShowProgress,
	}
}

// LoadStats summarises one load.
type LoadStats struct {
	Lines      int // lines read
	Added      int // distinct values inserted
	Duplicates int // values already present
	Skipped    int // blank lines
}

// scanValues feeds every non blank line of r to add, which reports whether
// the value was new. An error from add stops the scan and is returned
// with the line number.
func scanValues(r io.Reader, opts LoadOptions, add func(line string) (bool, error)) (LoadStats, error) {
	var stats LoadStats

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Loading values..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		defer bar.Finish()
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if opts.TrimSpace {
			line = strings.TrimSpace(line)
		}
		if line == "" {
			stats.Skipped++
			continue
		}

		added, err := add(line)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
		if added {
			stats.Added++
		} else {
			stats.Duplicates++
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}

	ordsLog.Debugf("loaded %d values from %d lines (%d duplicates, %d blank)",
		stats.Added, stats.Lines, stats.Duplicates, stats.Skipped)
	return stats, nil
}

// LoadStrings reads one value per line into a text ordered set.
func LoadStrings(r io.Reader, opts LoadOptions) (*avl.Tree[string], LoadStats, error) {
	tree := avl.New[string]()
	stats, err := scanValues(r, opts, func(line string) (bool, error) {
		return tree.Insert(line), nil
	})
	if err != nil {
		return nil, stats, err
	}
	return tree, stats, nil
}

// LoadInts reads one integer per line. A line that is not an integer is
// an error naming its line number.
func LoadInts(r io.Reader, opts LoadOptions) (*avl.Tree[int64], LoadStats, error) {
	tree := avl.New[int64]()
	stats, err := scanValues(r, opts, func(line string) (bool, error) {
		v, err := parseInt64(line)
		if err != nil {
			return false, err
		}
		return tree.Insert(v), nil
	})
	if err != nil {
		return nil, stats, err
	}
	return tree, stats, nil
}

// newStore returns an empty index of the kind the configuration asks for.
func newStore(config *Config) store {
	if config.Values.Numeric {
		return NewIntIndex(config.Filter)
	}
	return NewStringIndex(config.Filter)
}

// loadStore reads r into a fresh index.
func loadStore(r io.Reader, config *Config) (store, LoadStats, error) {
	s := newStore(config)
	stats, err := scanValues(r, loadOptions(config), s.AddString)
	if err != nil {
		return nil, stats, err
	}
	return s, stats, nil
}

// openInput opens path for reading, "-" or "" meaning standard input.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s does not exist", path)
		}
		return nil, err
	}
	return f, nil
}

// loadFile loads the values of path into a fresh index.
func loadFile(path string, config *Config) (store, LoadStats, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	defer in.Close()

	s, stats, err := loadStore(in, config)
	if err != nil {
		if path != "" && path != "-" {
			return nil, stats, fmt.Errorf("%s: %w", path, err)
		}
		return nil, stats, err
	}
	return s, stats, nil
}
