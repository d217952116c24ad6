// Package pct implements percent-encoding over raw bytes.
//
// Unlike net/url the codec is not tied to a URL component, every byte
// outside of a small safe set is escaped as `%XX` and decoding is total
// over the whole 0-255 range.
package pct

import (
	"strconv"
	"strings"
)

// Upperhex is used to emit escapes.
const upperhex = "0123456789ABCDEF"

// Specials are printable characters that are always escaped.
//
// The first group is reserved by the URL grammar, the second
// is considered unsafe in URLs.
const specials = "$&+,/:;=?@" + "<>#%{}[]|\\^\"~`"

// EscapeError reports an invalid escape sequence.
type EscapeError string

// Error implementation.
func (e EscapeError) Error() string {
	return "pct: invalid escape " + strconv.Quote(string(e))
}

// ShouldEscape returns true if c must be escaped.
func shouldEscape(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return true
	}
	return strings.IndexByte(specials, c) != -1
}

// Escape appends the encoded form of b to dst.
func Escape(dst, b []byte) []byte {
	for _, c := range b {
		if shouldEscape(c) {
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// EscapeString appends the encoded form of s to dst.
func EscapeString(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		if c := s[i]; shouldEscape(c) {
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&15])
		} else {
			dst = append(dst, c)
		}
	}
	return dst
}

// EscapePath appends the encoded form of path to dst.
//
// Slashes are kept as-is, every segment in between
// is escaped with EscapeString.
func EscapePath(dst []byte, path string) []byte {
	for {
		j := strings.IndexByte(path, '/')
		if j == -1 {
			return EscapeString(dst, path)
		}
		dst = EscapeString(dst, path[:j])
		dst = append(dst, '/')
		path = path[j+1:]
	}
}

// Encode encodes the given bytes.
func Encode(b []byte) string {
	return string(Escape(make([]byte, 0, len(b)), b))
}

// Decode decodes the given string.
//
// Invalid escape sequences, a `%` that is not followed
// by two hex digits, are copied as-is.
func Decode(s string) []byte {
	b, _ := unescape(s, false)
	return b
}

// DecodeStrict decodes the given string.
//
// The method returns an EscapeError when the string
// contains an invalid escape sequence.
func DecodeStrict(s string) ([]byte, error) {
	return unescape(s, true)
}

// Unescape decodes s.
func unescape(s string, strict bool) ([]byte, error) {
	var ret = make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			ret = append(ret, s[i])
			continue
		}

		if i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			ret = append(ret, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}

		if strict {
			end := i + 3
			if end > len(s) {
				end = len(s)
			}
			return nil, EscapeError(s[i:end])
		}

		ret = append(ret, '%')
	}

	return ret, nil
}

// Ishex returns true if c is a hex digit.
func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// Unhex returns the value of the hex digit c.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
