// Package cache implements an age-bounded LRU of parse results.
package cache

import (
	"time"

	"github.com/segmentio/agecache"
)

// Entry represents a cached parse result.
//
// Exactly one of value or err is set, errors
// are cached so that repeated malformed input
// does not get parsed again.
type Entry struct {
	Value interface{}
	Err   error
}

// Config configures the cache.
type Config struct {
	// Capacity is the maximum number of entries.
	//
	// If <= 0, defaults to 1000.
	Capacity int

	// MaxAge is the maximum age of an entry.
	//
	// If <= 0, entries do not expire.
	MaxAge time.Duration
}

// Cache implements an LRU cache keyed by raw text.
//
// The cache is safe to use from multiple goroutines.
type Cache struct {
	lru *agecache.Cache
}

// New returns a new cache.
func New(c Config) *Cache {
	if c.Capacity <= 0 {
		c.Capacity = 1000
	}

	var conf = agecache.Config{
		Capacity: c.Capacity,
	}

	if c.MaxAge > 0 {
		conf.MaxAge = c.MaxAge
		conf.ExpirationType = agecache.PassiveExpration
	}

	return &Cache{lru: agecache.New(conf)}
}

// Get returns the entry of key.
func (c *Cache) Get(key string) (Entry, bool) {
	if v, ok := c.lru.Get(key); ok {
		return v.(Entry), true
	}
	return Entry{}, false
}

// Set sets key to e.
func (c *Cache) Set(key string, e Entry) {
	c.lru.Set(key, e)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
