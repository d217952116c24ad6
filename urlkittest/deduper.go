package urlkittest

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yields/urlkit"
	"golang.org/x/sync/errgroup"
)

// Deduper tests a Deduper implementation.
//
// `new(t)` must return a new empty deduper ready for use.
func Deduper(t *testing.T, new func(testing.TB) urlkit.Deduper) {
	t.Run("dedupe", func(t *testing.T) {
		var ctx = context.Background()
		var assert = require.New(t)
		var d = new(t)
		var a = Parse(t, "proto://a")
		var b = Parse(t, "proto://b")
		var c = Parse(t, "proto://c")

		ret, err := d.Dedupe(ctx, []*urlkit.URL{a, b})
		assert.NoError(err)
		assert.Equal([]*urlkit.URL{a, b}, ret)

		ret, err = d.Dedupe(ctx, []*urlkit.URL{a, b, c})
		assert.NoError(err)
		assert.Equal([]*urlkit.URL{c}, ret)
	})

	t.Run("dedupe canonical", func(t *testing.T) {
		var ctx = context.Background()
		var assert = require.New(t)
		var d = new(t)
		var a = Parse(t, "proto://h%6Fst/p%61th")
		var b = Parse(t, "proto://host/path")

		ret, err := d.Dedupe(ctx, []*urlkit.URL{a, b})
		assert.NoError(err)
		assert.Equal([]*urlkit.URL{a}, ret)
	})

	t.Run("dedupe concurrent", func(t *testing.T) {
		var ctx = context.Background()
		var assert = require.New(t)
		var d = new(t)
		var urls = make([]*urlkit.URL, 100)
		var seen []string
		var mtx sync.Mutex

		for j := range urls {
			urls[j] = urlkit.New("proto", "host"+strconv.Itoa(j))
		}

		eg, subctx := errgroup.WithContext(ctx)

		for j := 0; j < 4; j++ {
			eg.Go(func() error {
				ret, err := d.Dedupe(subctx, urls)
				if err != nil {
					return err
				}
				mtx.Lock()
				for _, u := range ret {
					seen = append(seen, u.String())
				}
				mtx.Unlock()
				return nil
			})
		}

		err := eg.Wait()
		assert.NoError(err)

		sort.Strings(seen)
		assert.Equal(len(urls), len(seen))
		for j := 1; j < len(seen); j++ {
			assert.NotEqual(seen[j-1], seen[j])
		}
	})
}
