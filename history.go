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
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cybrota/ordset/avl"
)

// HistoryEntry holds the optional timestamp and the command
type HistoryEntry struct {
	Command   string
	Timestamp *time.Time
}

func newHistoryScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}

// parseZshHistory reads the zsh extended history format,
// ": 1673291850:0;ls -la". Lines without the prefix are plain commands.
func parseZshHistory(r io.Reader) ([]HistoryEntry, error) {
	var history []HistoryEntry
	scanner := newHistoryScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ") {
			history = append(history, HistoryEntry{Command: line})
			continue
		}

		// "", " 1673291850", "0;ls -la"
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}
		epoch, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			history = append(history, HistoryEntry{Command: line})
			continue
		}
		t := time.Unix(epoch, 0)

		// duration before the semicolon
		_, command, ok := strings.Cut(parts[2], ";")
		if !ok {
			continue
		}
		history = append(history, HistoryEntry{Timestamp: &t, Command: command})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// parseBashHistory reads a bash history file. With HISTTIMEFORMAT set,
// bash writes a "#<epoch>" line before each command.
func parseBashHistory(r io.Reader) ([]HistoryEntry, error) {
	var history []HistoryEntry
	var lastTimestamp *time.Time

	scanner := newHistoryScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if epochStr, ok := strings.CutPrefix(line, "#"); ok {
			epoch, err := strconv.ParseInt(strings.TrimSpace(epochStr), 10, 64)
			if err == nil {
				t := time.Unix(epoch, 0)
				lastTimestamp = &t
			} else {
				lastTimestamp = nil
			}
			continue
		}
		history = append(history, HistoryEntry{Timestamp: lastTimestamp, Command: line})
		lastTimestamp = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// detectCurrentShell returns the base name of $SHELL, "bash" when unset.
func detectCurrentShell() string {
	currentShellPath, ok := os.LookupEnv("SHELL")
	if !ok || currentShellPath == "" {
		return "bash"
	}
	return filepath.Base(currentShellPath)
}

// readShellHistory reads the history file of the given shell from the
// home directory.
func readShellHistory(shell string) ([]HistoryEntry, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	var (
		name  string
		parse func(io.Reader) ([]HistoryEntry, error)
		hint  string
	)
	switch shell {
	case "zsh":
		name, parse, hint = ".zsh_history", parseZshHistory, "Run some commands in zsh to create it"
	case "bash":
		name, parse, hint = ".bash_history", parseBashHistory, "Run 'history -w' to create it"
	default:
		return nil, fmt.Errorf("unsupported shell %q, only bash and zsh histories can be read", shell)
	}

	path := filepath.Join(homeDir, name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s history file not found at %s. %s, then try again", shell, path, hint)
		}
		return nil, err
	}
	defer file.Close()

	history, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ordsLog.Debugf("read %d %s history entries from %s", len(history), shell, path)
	return history, nil
}

// readHistoryIntoSet inserts every distinct non empty command into tree and
// returns how many were new. When since is set, entries older than it or
// without a timestamp are left out.
func readHistoryIntoSet(history []HistoryEntry, since *time.Time, tree *avl.Tree[string]) int {
	added := 0
	for _, entry := range history {
		command := strings.TrimSpace(entry.Command)
		if command == "" {
			continue
		}
		if since != nil && (entry.Timestamp == nil || entry.Timestamp.Before(*since)) {
			continue
		}
		if tree.Insert(command) {
			added++
		}
	}
	return added
}
