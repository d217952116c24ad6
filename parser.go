package urlkit

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/apex/log"
	"github.com/yields/urlkit/internal/cache"
	"golang.org/x/sync/errgroup"
)

// ParserConfig configures the parser.
type ParserConfig struct {
	// CacheSize is the maximum number of cached parse results.
	//
	// If <= 0, defaults to 1000.
	CacheSize int

	// MaxAge is the maximum age of a cached parse result.
	//
	// If <= 0, results never expire and are only
	// evicted when the cache is full.
	MaxAge time.Duration

	// Concurrency is the number of goroutines ParseAll uses.
	//
	// If <= 0, it defaults to runtime.GOMAXPROCS.
	Concurrency int

	// Logger is the logger to use.
	//
	// If nil, apex's default logger is used.
	Logger log.Interface
}

// Parser implements a caching URL parser.
//
// Results, including errors, are cached by raw URL. A cache
// hit returns a clone of the cached URL so that callers can
// freely mutate it.
//
// The parser is safe to use from multiple goroutines.
type Parser struct {
	cache       *cache.Cache
	concurrency int
	log         log.Interface
}

// NewParser returns a new parser.
func NewParser(c ParserConfig) *Parser {
	if c.Concurrency <= 0 {
		c.Concurrency = runtime.GOMAXPROCS(-1)
	}

	if c.Logger == nil {
		c.Logger = log.Log
	}

	return &Parser{
		cache: cache.New(cache.Config{
			Capacity: c.CacheSize,
			MaxAge:   c.MaxAge,
		}),
		concurrency: c.Concurrency,
		log:         c.Logger,
	}
}

// Parse parses the given raw URL.
//
// The method behaves like Parse.
func (p *Parser) Parse(rawurl string) (*URL, error) {
	if e, ok := p.cache.Get(rawurl); ok {
		p.log.WithField("url", rawurl).Debug("cache hit")
		return clone(e)
	}

	u, err := Parse(rawurl)
	if err != nil {
		cause, _ := CauseOf(err)
		p.log.WithFields(log.Fields{
			"url":   rawurl,
			"cause": cause.String(),
		}).Debug("malformed url")
		p.cache.Set(rawurl, cache.Entry{Err: err})
		return nil, err
	}

	p.cache.Set(rawurl, cache.Entry{Value: u.Clone()})
	return u, nil
}

// ParseAll parses all given raw URLs.
//
// URLs are parsed concurrently, the returned slice preserves
// the order of rawurls. The method returns the first error
// encountered, or the context's error if it is canceled.
func (p *Parser) ParseAll(ctx context.Context, rawurls ...string) ([]*URL, error) {
	var ret = make([]*URL, len(rawurls))
	var jobs = make(chan int)
	var eg, subctx = errgroup.WithContext(ctx)

	for i := 0; i < p.concurrency; i++ {
		eg.Go(func() error {
			for j := range jobs {
				u, err := p.Parse(rawurls[j])
				if err != nil {
					return err
				}
				ret[j] = u
			}
			return nil
		})
	}

	eg.Go(func() error {
		defer close(jobs)
		for j := range rawurls {
			select {
			case jobs <- j:
			case <-subctx.Done():
				return subctx.Err()
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("urlkit: parse all - %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ret, nil
}

// Clone returns a clone of the cached entry.
func clone(e cache.Entry) (*URL, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Value.(*URL).Clone(), nil
}
