package urlkit

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator separates the protocol from the authority.
const separator = "://"

// Parse parses the given raw URL.
//
// The method returns a *MalformedError when the raw URL does
// not match the grammar:
//
//   url       = protocol "://" authority [ path ] [ "?" query ]
//   authority = [ username [ ":" password ] "@" ] host [ ":" port ]
//   path      = "/" *( any except "?" )
//   query     = param *( "&" param )
//   param     = key [ "=" value ]
//
// The protocol is kept raw, all other components are decoded.
// A param without `=` uses its key as the value, a path
// of exactly `/` is stored as an empty path.
func Parse(rawurl string) (*URL, error) {
	var u = &URL{
		port:       UnspecifiedPort,
		params:     &Params{},
		encodehost: true,
	}

	// Protocol.
	j := strings.Index(rawurl, separator)
	if j == -1 {
		return nil, malformed(rawurl, MissingSeparator)
	}
	if j == 0 {
		return nil, malformed(rawurl, MissingProtocol)
	}
	u.protocol = rawurl[:j]
	rest := rawurl[j+len(separator):]

	// Authority.
	var authority = rest
	if j := strings.IndexAny(rest, "/?"); j != -1 {
		authority, rest = rest[:j], rest[j:]
	} else {
		rest = ""
	}

	if authority == "" {
		return nil, malformed(rawurl, MissingHost)
	}

	if j := strings.LastIndexByte(authority, '@'); j != -1 {
		userinfo := authority[:j]
		authority = authority[j+1:]

		if k := strings.IndexByte(userinfo, ':'); k != -1 {
			u.username = DecodeString(userinfo[:k])
			u.password = DecodeString(userinfo[k+1:])
		} else {
			u.username = DecodeString(userinfo)
		}
	}

	if j := strings.LastIndexByte(authority, ':'); j != -1 {
		port, ok := parsePort(authority[j+1:])
		if !ok {
			return nil, malformed(rawurl, InvalidPort)
		}
		u.port = port
		authority = authority[:j]
	}

	if authority == "" {
		return nil, malformed(rawurl, MissingHost)
	}
	u.host = DecodeString(authority)

	// Path.
	var path = rest
	var query string
	if j := strings.IndexByte(rest, '?'); j != -1 {
		path, query = rest[:j], rest[j+1:]
	}

	if path != "/" {
		u.path = DecodeString(path)
	}

	// Query.
	parseQuery(u.params, query)

	return u, nil
}

// MustParse parses the raw URL or panics.
//
// It simplifies initialization of global variables
// and tests.
func MustParse(rawurl string) *URL {
	u, err := Parse(rawurl)
	if err != nil {
		panic(fmt.Sprintf("urlkit: must parse - %s", err))
	}
	return u
}

// ParsePort parses a port made of ASCII digits only.
func parsePort(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	for j := 0; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}

	return int(n), true
}

// ParseQuery parses query into params.
func parseQuery(params *Params, query string) {
	for query != "" {
		var param = query

		if j := strings.IndexByte(query, '&'); j != -1 {
			param, query = query[:j], query[j+1:]
		} else {
			query = ""
		}

		if param == "" {
			continue
		}

		if j := strings.IndexByte(param, '='); j != -1 {
			params.Set(DecodeString(param[:j]), DecodeString(param[j+1:]))
		} else {
			key := DecodeString(param)
			params.Set(key, key)
		}
	}
}
