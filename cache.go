package main

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds the memoization cache to the most recent
// 1000 distinct passwords
const defaultCacheSize = 1000

// ResultCache memoizes strength results keyed by the exact password
// string, evicting least-recently-used entries once full. Entries hold
// raw passwords in cleartext; that retention is inherited from the
// system this reimplements, and callers embedding the checker in a
// long-lived service should be aware of it.
type ResultCache struct {
	entries *lru.Cache[string, StrengthResult]
}

// NewResultCache creates a cache bounded to size entries.
// A size of zero or less falls back to the default bound.
func NewResultCache(size int) (*ResultCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	entries, err := lru.New[string, StrengthResult](size)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	return &ResultCache{entries: entries}, nil
}

// Get retrieves a cached result, marking the entry recently used
func (c *ResultCache) Get(password string) (StrengthResult, bool) {
	return c.entries.Get(password)
}

// Put stores a result for a password
func (c *ResultCache) Put(password string, result StrengthResult) {
	c.entries.Add(password, result)
}

// Clear empties the cache (e.g., on config reload)
func (c *ResultCache) Clear() {
	c.entries.Purge()
}

// Size returns the number of entries in the cache
func (c *ResultCache) Size() int {
	return c.entries.Len()
}
