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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/cybrota/ordset/avl"
)

// logWriter sends log lines to standard error, unless a full screen UI
// owns the terminal, and to the log rotator once one is running.
type logWriter struct{}

var logToConsole = true

func (logWriter) Write(p []byte) (n int, err error) {
	if logToConsole {
		os.Stderr.Write(p)
	}
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// A single backend is shared by every subsystem logger.
var (
	backendLog = btclog.NewBackend(logWriter{})

	// logRotator is nil until initLogRotator succeeds; close it on exit.
	logRotator *rotator.Rotator

	ordsLog = backendLog.Logger("ORDS")
	avltLog = backendLog.Logger("AVLT")
)

func init() {
	avl.UseLogger(avltLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"ORDS": ordsLog,
	"AVLT": avltLog,
}

// initLogRotator starts writing logs to logFile, rolling it over into the
// same directory once it grows past 10 MiB.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

func closeLogRotator() {
	if logRotator != nil {
		logRotator.Close()
		logRotator = nil
	}
}

// setLogLevels sets every subsystem logger to the named level.
func setLogLevels(logLevel string) error {
	level, ok := btclog.LevelFromString(strings.ToLower(logLevel))
	if !ok {
		return fmt.Errorf("invalid log level %q, supported: %s", logLevel, strings.Join(supportedLevels(), ", "))
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}

func supportedLevels() []string {
	levels := []string{"trace", "debug", "info", "warn", "error", "critical", "off"}
	sort.Strings(levels)
	return levels
}
