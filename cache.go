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
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired renders every 5 minutes
const renderCacheCleanup = 5 * time.Minute

// renderCache memoizes rendered views of a store. Keys carry the store
// revision, so a mutation makes every older render unreachable and it
// expires on its own.
type renderCache struct {
	c   *cache.Cache
	ttl time.Duration
}

func newRenderCache(minutes int) *renderCache {
	ttl := time.Duration(minutes) * time.Minute
	return &renderCache{c: cache.New(ttl, renderCacheCleanup), ttl: ttl}
}

func renderKey(kind string, revision uint64) string {
	return fmt.Sprintf("%s#%d", kind, revision)
}

// get returns the cached render of kind for the store's current revision,
// building and caching it on a miss.
func (rc *renderCache) get(kind string, s store, build func() string) string {
	key := renderKey(kind, s.Revision())
	if val, ok := rc.c.Get(key); ok {
		return val.(string)
	}
	text := build()
	rc.c.Set(key, text, rc.ttl)
	return text
}

// reset drops every render, needed when the store itself is replaced.
func (rc *renderCache) reset() {
	rc.c.Flush()
}

func (rc *renderCache) len() int {
	return rc.c.ItemCount()
}
