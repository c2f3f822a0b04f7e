// Copyright 2026 The Tabrdf Authors. All rights reserved.
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

// Package lru provides a bounded least-recently-used string cache.
package lru

import (
	"container/list"
	"sync"
)

// Cache maps string keys to string values, evicting the least recently used
// entry once it holds Size entries. It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	size    int
}

type entry struct {
	key, value string
}

// New creates a cache holding at most size entries.
func New(size int) *Cache {
	if size < 1 {
		size = 1
	}
	return &Cache{
		size:    size,
		order:   list.New(),
		entries: make(map[string]*list.Element, size),
	}
}

// Get returns the value stored for key and marks it as recently used.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.order.MoveToFront(e)
		return e.Value.(entry).value, true
	}
	return "", false
}

// Put stores value for key, replacing any previous value.
func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.Value = entry{key: key, value: value}
		c.order.MoveToFront(e)
		return
	}
	if len(c.entries) >= c.size {
		last := c.order.Remove(c.order.Back()).(entry)
		delete(c.entries, last.key)
	}
	c.entries[key] = c.order.PushFront(entry{key: key, value: value})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
