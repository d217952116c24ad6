// Package urlkit implements a generic URL parser and serializer.
//
// URLs have the form:
//
//   protocol://[username[:password]@]host[:port][/path][?key[=value]&...]
//
// The protocol is kept exactly as written, all other components
// are percent-decoded when parsed and percent-encoded when the
// URL is serialized.
package urlkit

import (
	"strconv"

	"github.com/yields/urlkit/internal/pct"
)

// UnspecifiedPort is the port of URLs that have no port.
const UnspecifiedPort = -1

// URL represents a parsed URL.
//
// Components have the following encoding:
//
//  - Protocol is raw, it is never decoded nor encoded.
//  - Username, password, path and params are stored decoded.
//  - Host is stored decoded, it is encoded on serialization
//    only when it was parsed.
//
// A URL is constructed by Parse or built with New and FromComponents,
// built URLs are never validated. Its components can be changed at any
// time, String always reflects the current state.
type URL struct {
	protocol string
	username string
	password string
	host     string
	port     int
	path     string
	params   *Params

	// Encodehost is set when host was decoded.
	encodehost bool
}

// Components configures a built URL.
type Components struct {
	// Protocol is the raw protocol.
	Protocol string

	// Host is the host, it is serialized as given.
	Host string

	// Port is the port.
	//
	// If <= 0, UnspecifiedPort is used. An explicit
	// zero port can be set with SetPort(0).
	Port int

	// Path is the decoded path.
	Path string

	// Username is the decoded username.
	Username string

	// Password is the decoded password.
	//
	// It is ignored on serialization when username is empty.
	Password string
}

// New returns a new URL with protocol and host.
func New(protocol, host string) *URL {
	return FromComponents(Components{
		Protocol: protocol,
		Host:     host,
	})
}

// FromComponents returns a new URL from the given components.
func FromComponents(c Components) *URL {
	if c.Port <= 0 {
		c.Port = UnspecifiedPort
	}

	return &URL{
		protocol: c.Protocol,
		username: c.Username,
		password: c.Password,
		host:     c.Host,
		port:     c.Port,
		path:     c.Path,
		params:   &Params{},
	}
}

// Protocol returns the raw protocol.
func (u *URL) Protocol() string { return u.protocol }

// Username returns the decoded username.
func (u *URL) Username() string { return u.username }

// Password returns the decoded password.
func (u *URL) Password() string { return u.password }

// Host returns the decoded host.
func (u *URL) Host() string { return u.host }

// Port returns the port or UnspecifiedPort.
func (u *URL) Port() int { return u.port }

// HasPort returns true if the port is specified.
func (u *URL) HasPort() bool { return u.port != UnspecifiedPort }

// Path returns the decoded path.
func (u *URL) Path() string { return u.path }

// Params returns the query params.
//
// The returned params are owned by the URL, any change
// is reflected when the URL is serialized.
func (u *URL) Params() *Params {
	if u.params == nil {
		u.params = &Params{}
	}
	return u.params
}

// SetProtocol sets the raw protocol.
func (u *URL) SetProtocol(protocol string) { u.protocol = protocol }

// SetUsername sets the decoded username.
func (u *URL) SetUsername(username string) { u.username = username }

// SetPassword sets the decoded password.
func (u *URL) SetPassword(password string) { u.password = password }

// SetHost sets the host.
//
// Like hosts given to New, the host is serialized as given.
func (u *URL) SetHost(host string) {
	u.host = host
	u.encodehost = false
}

// SetPort sets the port.
//
// Use UnspecifiedPort to remove the port.
func (u *URL) SetPort(port int) { u.port = port }

// SetPath sets the decoded path.
func (u *URL) SetPath(path string) { u.path = path }

// String returns the canonical form of the URL.
//
// The canonical form is a valid input to Parse that yields
// the same decoded components, it is not necessarily
// identical to the parsed text.
func (u *URL) String() string {
	return string(u.append(make([]byte, 0, 64)))
}

// Append appends the canonical form to dst.
func (u *URL) append(dst []byte) []byte {
	dst = append(dst, u.protocol...)
	dst = append(dst, "://"...)

	if u.username != "" {
		dst = pct.EscapeString(dst, u.username)
		if u.password != "" {
			dst = append(dst, ':')
			dst = pct.EscapeString(dst, u.password)
		}
		dst = append(dst, '@')
	}

	if u.encodehost {
		dst = pct.EscapeString(dst, u.host)
	} else {
		dst = append(dst, u.host...)
	}

	if u.port != UnspecifiedPort {
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, int64(u.port), 10)
	}

	switch {
	case u.path != "":
		if u.path[0] != '/' {
			dst = append(dst, '/')
		}
		dst = pct.EscapePath(dst, u.path)
	case u.params.Len() > 0:
		dst = append(dst, '/')
	}

	if u.params.Len() > 0 {
		dst = append(dst, '?')
		dst = u.params.append(dst)
	}

	return dst
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	var ret = *u
	ret.params = u.params.Clone()
	return &ret
}

// Equal returns true if both URLs have the same components.
//
// Params are compared regardless of their order.
func (u *URL) Equal(other *URL) bool {
	return u.protocol == other.protocol &&
		u.username == other.username &&
		u.password == other.password &&
		u.host == other.host &&
		u.port == other.port &&
		u.path == other.path &&
		u.params.Equal(other.params)
}

// MarshalText implementation.
func (u *URL) MarshalText() ([]byte, error) {
	return u.append(nil), nil
}

// UnmarshalText implementation.
//
// On error the URL is left untouched.
func (u *URL) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *v
	return nil
}
