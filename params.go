package urlkit

import (
	"strconv"

	"github.com/yields/urlkit/internal/pct"
)

// Params represents an ordered set of query parameters.
//
// Keys are unique, setting an existing key replaces its
// value and keeps its position. Keys and values are stored
// decoded.
//
// The zero value is ready for use. A nil *Params reads
// as an empty set. Params is not safe to mutate from
// multiple goroutines.
type Params struct {
	keys []string
	m    map[string]string
}

// Len returns the number of params.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Get returns the value of key.
//
// The method returns an empty string if the key is not set.
func (p *Params) Get(key string) string {
	v, _ := p.Lookup(key)
	return v
}

// Lookup returns the value of key and whether it is set.
func (p *Params) Lookup(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.m[key]
	return v, ok
}

// Has returns true if key is set.
func (p *Params) Has(key string) bool {
	_, ok := p.Lookup(key)
	return ok
}

// Set sets key to value.
func (p *Params) Set(key, value string) {
	if p.m == nil {
		p.m = make(map[string]string)
	}

	if _, ok := p.m[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.m[key] = value
}

// Del removes key.
func (p *Params) Del(key string) {
	if !p.Has(key) {
		return
	}

	delete(p.m, key)

	for j, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:j], p.keys[j+1:]...)
			break
		}
	}
}

// Keys returns all keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return []string{}
	}

	var ret = make([]string, len(p.keys))
	copy(ret, p.keys)
	return ret
}

// Range calls fn for each param in insertion order.
//
// If fn returns false, the iteration stops.
func (p *Params) Range(fn func(key, value string) bool) {
	if p == nil {
		return
	}

	for _, k := range p.keys {
		if !fn(k, p.m[k]) {
			return
		}
	}
}

// Int returns the value of key as an int.
//
// The method returns an error if the key is not set
// or the value is not a valid integer.
func (p *Params) Int(key string) (int, error) {
	v, ok := p.Lookup(key)
	if !ok {
		return 0, &ParamError{Key: key}
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ParamError{Key: key, Err: err}
	}

	return n, nil
}

// Bool returns the value of key as a bool.
//
// The accepted values are the ones of strconv.ParseBool.
func (p *Params) Bool(key string) (bool, error) {
	v, ok := p.Lookup(key)
	if !ok {
		return false, &ParamError{Key: key}
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &ParamError{Key: key, Err: err}
	}

	return b, nil
}

// SetInt sets key to the decimal form of n.
func (p *Params) SetInt(key string, n int) {
	p.Set(key, strconv.Itoa(n))
}

// SetBool sets key to "true" or "false".
func (p *Params) SetBool(key string, b bool) {
	p.Set(key, strconv.FormatBool(b))
}

// Equal returns true if both sets hold the same
// params regardless of their order.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}

	if p.Len() == 0 {
		return true
	}

	for k, v := range p.m {
		if w, ok := other.m[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// Clone returns a copy of the params.
func (p *Params) Clone() *Params {
	if p == nil {
		return &Params{}
	}

	var ret = &Params{
		keys: p.Keys(),
		m:    make(map[string]string, len(p.m)),
	}

	for k, v := range p.m {
		ret.m[k] = v
	}

	return ret
}

// Encode returns the encoded query, without the leading `?`.
//
// A param whose value equals its key is written as a bare key,
// unless the key is empty, which is written as `=`.
func (p *Params) Encode() string {
	return string(p.append(nil))
}

// Append appends the encoded query to dst.
func (p *Params) append(dst []byte) []byte {
	if p == nil {
		return dst
	}

	for j, k := range p.keys {
		if j > 0 {
			dst = append(dst, '&')
		}

		dst = pct.EscapeString(dst, k)

		if v := p.m[k]; v != k || k == "" {
			dst = append(dst, '=')
			dst = pct.EscapeString(dst, v)
		}
	}
	return dst
}

// ParamError represents a typed param lookup error.
type ParamError struct {
	Key string
	Err error
}

// Error implementation.
func (err *ParamError) Error() string {
	if err.Err == nil {
		return "urlkit: param " + strconv.Quote(err.Key) + " is not set"
	}
	return "urlkit: param " + strconv.Quote(err.Key) + " - " + err.Err.Error()
}

// Unwrap implementation.
func (err *ParamError) Unwrap() error {
	return err.Err
}
