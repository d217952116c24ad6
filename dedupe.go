package urlkit

import (
	"context"
	"sync"

	"github.com/willf/bloom"
)

// Deduper represents a URL de-duplicator.
//
// URLs are compared by their canonical form, so two
// URLs that were written differently but parse to the
// same components are considered equal as long as their
// params are in the same order.
type Deduper interface {
	// Dedupe de-duplicates the given URLs.
	//
	// The method returns a new slice of URLs
	// that were not seen yet, it must be
	// thread-safe.
	Dedupe(ctx context.Context, urls []*URL) ([]*URL, error)
}

// Dedupe implements an in-memory deduper.
type deduper struct {
	m *sync.Map
}

// DedupeMap returns a new deduper backed by sync.Map.
func DedupeMap() Deduper {
	return &deduper{new(sync.Map)}
}

// Dedupe implementation.
func (d *deduper) Dedupe(ctx context.Context, urls []*URL) ([]*URL, error) {
	var ret = make([]*URL, 0, len(urls))

	for _, u := range urls {
		if _, exists := d.m.LoadOrStore(u.String(), nil); !exists {
			ret = append(ret, u)
		}
	}

	return ret, nil
}

// Dedupebf implements a bloom filter deduper.
type dedupebf struct {
	filter *bloom.BloomFilter
	mtx    sync.Mutex
}

// DedupeBF returns a new deduper backed by bloom filter.
//
// The filter has m bits and uses k hash functions, it
// may report false positives and drop URLs that were
// never seen.
func DedupeBF(m, k uint) Deduper {
	return &dedupebf{
		filter: bloom.New(m, k),
	}
}

// Dedupe implementation.
func (d *dedupebf) Dedupe(ctx context.Context, urls []*URL) ([]*URL, error) {
	var ret = make([]*URL, 0, len(urls))

	d.mtx.Lock()
	defer d.mtx.Unlock()

	for _, u := range urls {
		if !d.filter.TestAndAdd([]byte(u.String())) {
			ret = append(ret, u)
		}
	}

	return ret, nil
}
