// Package selectors compiles and caches CSS selectors.
//
// Compiled selectors are cached in a `sync.Map` keyed by their
// source text, the package level functions use a shared cache.
package selectors

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Cache is a global cache of selectors.
var cache = NewCache()

// Compile compiles the given selector.
//
// It uses a global pre-initialized cache
// of selectors.
func Compile(selector string) (cascadia.Selector, error) {
	return cache.Compile(selector)
}

// Cache implementation.
type Cache struct {
	m sync.Map
}

// NewCache returns a new cache.
func NewCache() *Cache {
	return &Cache{}
}

// Compile compiles the given selector.
//
// The method returns an error if the selector is invalid
// subsequent calls return the cached selector.
func (c *Cache) Compile(selector string) (cascadia.Selector, error) {
	if s, ok := c.m.Load(selector); ok {
		return s.(cascadia.Selector), nil
	}

	v, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}

	c.m.Store(selector, v)
	return v, nil
}

// Attrs returns the values of attr of all nodes under root
// that match sel, in document order.
//
// Nodes that match but have no such attribute are skipped.
func Attrs(root *html.Node, sel cascadia.Selector, attr string) []string {
	var nodes = sel.MatchAll(root)
	var ret = make([]string, 0, len(nodes))

	for _, n := range nodes {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == attr {
				ret = append(ret, a.Val)
				break
			}
		}
	}

	return ret
}
