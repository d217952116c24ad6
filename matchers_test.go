package urlkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchers(t *testing.T) {
	t.Run("pattern", func(t *testing.T) {
		var cases = []struct {
			rawurl  string
			pattern string
			match   bool
		}{
			{"imap://user@mail.example.com/INBOX", `imap://*@mail.example.com*`, true},
			{"imap://mail.example.com/INBOX", `imap://*@mail.example.com*`, false},
			{"pop3://host:110", `pop3://host:11?`, true},
			{"pop3://host:1100", `pop3://host:11?`, false},
			{"proto://ho%20st", `proto://ho%20st`, true},
		}

		for _, c := range cases {
			t.Run(c.rawurl, func(t *testing.T) {
				var assert = require.New(t)
				var match = MatchPattern(c.pattern)
				var u = MustParse(c.rawurl)

				assert.Equal(c.match, match.Match(u))
			})
		}
	})

	t.Run("protocol", func(t *testing.T) {
		var assert = require.New(t)
		var match = MatchProtocol("imap")

		assert.True(match.Match(MustParse("imap://host")))
		assert.False(match.Match(MustParse("IMAP://host")))
		assert.False(match.Match(MustParse("imaps://host")))
	})

	t.Run("host", func(t *testing.T) {
		var cases = []struct {
			rawurl  string
			pattern string
			match   bool
		}{
			{"imap://foo.example.com", `example.com`, false},
			{"imap://example.com", `example.com`, true},
			{"imap://user@example.com:143", `example.com`, true},
			{"imap://ex%61mple.com", `example.com`, true},
		}

		for _, c := range cases {
			t.Run(c.rawurl, func(t *testing.T) {
				var assert = require.New(t)
				var match = MatchHost(c.pattern)

				assert.Equal(c.match, match.Match(MustParse(c.rawurl)))
			})
		}
	})

	t.Run("filter", func(t *testing.T) {
		var assert = require.New(t)
		var a = MustParse("imap://a")
		var b = MustParse("pop3://b")
		var c = MustParse("imap://c")

		ret := Filter([]*URL{a, b, c}, MatchProtocol("imap"))
		assert.Equal([]*URL{a, c}, ret)

		ret = Filter(nil, MatchProtocol("imap"))
		assert.Equal(0, len(ret))
	})

	t.Run("func", func(t *testing.T) {
		var assert = require.New(t)
		var match = MatcherFunc(func(u *URL) bool {
			return u.HasPort()
		})

		assert.True(match.Match(MustParse("proto://host:1")))
		assert.False(match.Match(MustParse("proto://host")))
	})
}
