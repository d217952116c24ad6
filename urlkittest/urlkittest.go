// Package urlkittest implements URL test helpers.
//
// Usage:
//
//   func TestMailbox(t *testing.T) {
//     var assert = require.New(t)
//     var u = urlkittest.Parse(t, "imap://user@mail.example.com:143/INBOX")
//
//     assert.Equal("INBOX", mailbox(u))
//     urlkittest.RoundTrip(t, u)
//   }
//
package urlkittest

import (
	"testing"

	"github.com/yields/urlkit"
)

// Parse parses the raw URL.
//
// If the URL cannot be parsed successfully
// the method calls `t.Fatalf` with the error.
func Parse(t testing.TB, rawurl string) *urlkit.URL {
	t.Helper()

	u, err := urlkit.Parse(rawurl)
	if err != nil {
		t.Fatalf("urlkittest: %s", err)
	}

	return u
}

// RoundTrip asserts that u survives serialization.
//
// The canonical form of u is parsed again and the result
// must have the same components as u.
func RoundTrip(t testing.TB, u *urlkit.URL) {
	t.Helper()

	v, err := urlkit.Parse(u.String())
	if err != nil {
		t.Fatalf("urlkittest: round trip %q - %s", u, err)
	}

	if !u.Equal(v) {
		t.Fatalf("urlkittest: round trip %q - got %q", u, v)
	}
}

// Malformed asserts that rawurl fails to parse with cause c.
func Malformed(t testing.TB, rawurl string, c urlkit.Cause) {
	t.Helper()

	u, err := urlkit.Parse(rawurl)
	if err == nil {
		t.Fatalf("urlkittest: expected %q to be malformed, got %q", rawurl, u)
	}

	if got, ok := urlkit.CauseOf(err); !ok || got != c {
		t.Fatalf("urlkittest: %q - expected cause %q, got %s", rawurl, c, err)
	}
}
