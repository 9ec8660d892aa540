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
	"fmt"
	"strings"
	"time"
)

// Dates on the command line are written with spreadsheet style
// placeholders (YYYY-MM-DD hh:mm) and translated to Go layouts.
var layoutPlaceholders = []struct{ find, subst string }{
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"YYYY", "2006"},
	{"DD", "02"},
}

var sinceFormats = []string{"YYYY-MM-DD hh:mm:ss", "YYYY-MM-DD hh:mm", "YYYY-MM-DD", "DD MMM YYYY"}

func translateLayout(format string) string {
	for _, ph := range layoutPlaceholders {
		format = strings.ReplaceAll(format, ph.find, ph.subst)
	}
	return format
}

// parseSince reads a --since value in local time. An empty value means no
// lower bound.
func parseSince(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, format := range sinceFormats {
		if t, err := time.ParseInLocation(translateLayout(format), value, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q, expected one of: %s", value, strings.Join(sinceFormats, ", "))
}
