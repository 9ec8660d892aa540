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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// watchChannels carry file events from the watcher to the reload loop.
// Both are buffered with capacity one; extra events are dropped while
// one is pending.
type watchChannels struct {
	change chan struct{}
	remove chan struct{}
}

func newWatchChannels() watchChannels {
	return watchChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

type fileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	channels watchChannels
	done     chan struct{}
}

func newFileWatcher(targetFile string, channels watchChannels) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if err != nil {
		return nil, fmt.Errorf("parse file %s: %w", targetFile, err)
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file %s does not exist", filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	return &fileWatcher{
		watcher:  watcher,
		filePath: filePath,
		channels: channels,
		done:     make(chan struct{}),
	}, nil
}

// Start begins delivering events for the file. A removal is reported once
// and ends the watch.
func (w *fileWatcher) Start() error {
	if err := w.watcher.Add(w.filePath); err != nil {
		return fmt.Errorf("watch %s: %w", w.filePath, err)
	}

	go func() {
		for {
			select {
			case <-w.done:
				return
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				ordsLog.Errorf("watch %s: %v", w.filePath, err)
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				ordsLog.Debugf("file event: %v", event)

				if watcherEventFileRemove(event) {
					ordsLog.Warnf("file %s removed, stop", w.filePath)
					w.sendEvent(w.channels.remove, "remove")
					return
				}
				if filepath.Base(event.Name) != filepath.Base(w.filePath) {
					ordsLog.Debugf("event for %s does not match %s, discard", event.Name, w.filePath)
					continue
				}
				if watcherEventFileChange(event) {
					w.sendEvent(w.channels.change, "change")
				}
			}
		}
	}()
	return nil
}

func (w *fileWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		ordsLog.Tracef("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

// liveSet is the current contents of a watched file. Every reload builds
// a fresh store and swaps it in, so readers never see a half loaded set.
type liveSet struct {
	mu     sync.RWMutex
	store  store
	stats  LoadStats
	path   string
	config *Config
}

func newLiveSet(path string, config *Config) (*liveSet, error) {
	l := &liveSet{path: path, config: config}
	if err := l.reload(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *liveSet) reload() error {
	s, stats, err := loadFile(l.path, l.config)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.store = s
	l.stats = stats
	l.mu.Unlock()
	return nil
}

func (l *liveSet) current() (store, LoadStats) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store, l.stats
}

// report writes the summary of the current set, and its export when asked.
func (l *liveSet) report(out io.Writer, export bool) {
	s, stats := l.current()
	fmt.Fprintf(out, "%s== %s ==%s\n", Info, l.path, Reset)
	io.WriteString(out, statsText(s, &stats))
	if export {
		s.Export(out)
	}
}

var errWatchedFileRemoved = errors.New("watched file removed")

// watchSession is a loaded file with a running watcher.
type watchSession struct {
	path     string
	live     *liveSet
	watcher  *fileWatcher
	channels watchChannels
}

// startWatch loads path and starts watching it.
func startWatch(path string, config *Config) (*watchSession, error) {
	live, err := newLiveSet(path, config)
	if err != nil {
		return nil, err
	}

	channels := newWatchChannels()
	watcher, err := newFileWatcher(path, channels)
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(); err != nil {
		watcher.Close()
		return nil, err
	}
	ordsLog.Infof("watching %s", path)
	return &watchSession{path: path, live: live, watcher: watcher, channels: channels}, nil
}

// run reports on the set after every write until ctx ends or the file
// goes away. A reload that fails keeps the previous set. The watcher is
// closed on return.
func (w *watchSession) run(ctx context.Context, out io.Writer, export bool) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.channels.remove:
			return fmt.Errorf("%w: %s", errWatchedFileRemoved, w.path)
		case <-w.channels.change:
			if err := w.live.reload(); err != nil {
				ordsLog.Errorf("reload %s: %v", w.path, err)
				fmt.Fprintf(out, "%sreload failed:%s %v\n", Error, Reset, err)
				continue
			}
			w.live.report(out, export)
		}
	}
}

// runWatch reloads path on every write until ctx ends or the file goes
// away.
func runWatch(ctx context.Context, path string, config *Config, out io.Writer, export bool) error {
	session, err := startWatch(path, config)
	if err != nil {
		return err
	}
	session.live.report(out, export)
	return session.run(ctx, out, export)
}
