package urlkit

import (
	"github.com/yields/urlkit/internal/pct"
)

// EscapeError reports an invalid escape sequence.
//
// It is returned by DecodeStrict.
type EscapeError = pct.EscapeError

// Encode percent-encodes the given bytes.
//
// ASCII letters, digits and the unreserved marks `-._!*'()`
// are copied as-is, every other byte is written as `%` followed
// by two uppercase hex digits.
func Encode(b []byte) string {
	return pct.Encode(b)
}

// EncodeString percent-encodes the given string.
func EncodeString(s string) string {
	return string(pct.EscapeString(make([]byte, 0, len(s)), s))
}

// Decode decodes a percent-encoded string.
//
// A `%` that is not followed by two hex digits is
// copied as-is, the method never fails.
func Decode(s string) []byte {
	return pct.Decode(s)
}

// DecodeString decodes a percent-encoded string into a string.
func DecodeString(s string) string {
	return string(pct.Decode(s))
}

// DecodeStrict decodes a percent-encoded string.
//
// Unlike Decode, the method returns an EscapeError
// if the string contains an invalid escape.
func DecodeStrict(s string) ([]byte, error) {
	return pct.DecodeStrict(s)
}
