package urlkit

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by all malformed URL errors.
//
//   if errors.Is(err, urlkit.ErrMalformed) {
//     ...
//   }
//
var ErrMalformed = errors.New("urlkit: malformed url")

// Cause enumerates the reasons a URL is malformed.
type Cause int

// All causes.
const (
	MissingSeparator Cause = iota + 1
	MissingProtocol
	MissingHost
	InvalidPort
)

// String implementation.
func (c Cause) String() string {
	switch c {
	case MissingSeparator:
		return "missing protocol separator"
	case MissingProtocol:
		return "missing protocol"
	case MissingHost:
		return "missing host"
	case InvalidPort:
		return "invalid port"
	default:
		return fmt.Sprintf("urlkit.Cause(%d)", c)
	}
}

// MalformedError represents a malformed URL error.
//
// It is returned from Parse whenever the raw URL
// violates the grammar, no partial URL is returned
// alongside it.
type MalformedError struct {
	URL   string
	Cause Cause
}

// Error implementation.
func (err *MalformedError) Error() string {
	return fmt.Sprintf("urlkit: parse %q - %s", err.URL, err.Cause)
}

// Is implementation.
func (err *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// Malformed returns a new malformed error.
func malformed(rawurl string, c Cause) error {
	return &MalformedError{
		URL:   rawurl,
		Cause: c,
	}
}

// CauseOf returns the cause of a malformed URL error.
//
// The method returns false if err does not wrap
// a *MalformedError.
func CauseOf(err error) (Cause, bool) {
	var m *MalformedError
	if errors.As(err, &m) {
		return m.Cause, true
	}
	return 0, false
}
