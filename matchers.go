package urlkit

import (
	"github.com/tidwall/match"
)

// Matcher represents a URL matcher.
type Matcher interface {
	// Match returns true if the URL matches.
	Match(u *URL) bool
}

// MatcherFunc implements a Matcher.
type MatcherFunc func(*URL) bool

// Match implementation.
func (mf MatcherFunc) Match(u *URL) bool {
	return mf(u)
}

// MatchPattern returns a new glob matcher.
//
// The matcher returns true for all URLs whose canonical
// form matches the pattern, `*` matches any sequence of
// characters and `?` matches a single character.
//
//   urlkit.MatchPattern("imap://*@mail.example.com*")
//
func MatchPattern(pattern string) MatcherFunc {
	return func(u *URL) bool {
		return match.Match(u.String(), pattern)
	}
}

// MatchProtocol returns a new protocol matcher.
//
// The raw protocol is compared as-is.
func MatchProtocol(protocol string) MatcherFunc {
	return func(u *URL) bool {
		return u.protocol == protocol
	}
}

// MatchHost returns a new host matcher.
//
// The matcher compares the decoded host.
func MatchHost(host string) MatcherFunc {
	return func(u *URL) bool {
		return u.host == host
	}
}

// Filter returns all URLs that match m.
func Filter(urls []*URL, m Matcher) []*URL {
	var ret = make([]*URL, 0, len(urls))

	for _, u := range urls {
		if m.Match(u) {
			ret = append(ret, u)
		}
	}

	return ret
}
