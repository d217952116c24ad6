package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Run("get set", func(t *testing.T) {
		var assert = require.New(t)
		var c = New(Config{})

		_, ok := c.Get("a")
		assert.False(ok)

		c.Set("a", Entry{Value: 1})
		e, ok := c.Get("a")
		assert.True(ok)
		assert.Equal(1, e.Value)
		assert.NoError(e.Err)
	})

	t.Run("errors", func(t *testing.T) {
		var assert = require.New(t)
		var c = New(Config{})
		var err = errors.New("boom")

		c.Set("a", Entry{Err: err})
		e, ok := c.Get("a")
		assert.True(ok)
		assert.Nil(e.Value)
		assert.Equal(err, e.Err)
	})

	t.Run("capacity", func(t *testing.T) {
		var assert = require.New(t)
		var c = New(Config{Capacity: 2})

		c.Set("a", Entry{Value: 1})
		c.Set("b", Entry{Value: 2})
		c.Set("c", Entry{Value: 3})

		assert.Equal(2, c.Len())
		_, ok := c.Get("a")
		assert.False(ok)
	})

	t.Run("max age", func(t *testing.T) {
		var assert = require.New(t)
		var c = New(Config{MaxAge: time.Millisecond})

		c.Set("a", Entry{Value: 1})
		time.Sleep(5 * time.Millisecond)

		_, ok := c.Get("a")
		assert.False(ok)
	})
}
