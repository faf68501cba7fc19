package request

import (
	"fmt"
	"maps"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/adamwoolhether/webapi/errs"
)

// Request is a fully specified outbound call. It is immutable: every
// accessor returns a copy, and changes go through [Request.ToBuilder].
type Request struct {
	host    string
	port    int
	scheme  string
	path    string
	query   map[string]any
	body    any
	headers map[string]string
}

// Host returns the target host, without brackets for IPv6 literals.
func (r *Request) Host() string { return r.host }

// Port returns the target port, or 0 when unset.
func (r *Request) Port() int { return r.port }

// Scheme returns "http", "https" or "" when unset.
func (r *Request) Scheme() string { return r.scheme }

// Path returns the path, or "" when unset.
func (r *Request) Path() string { return r.path }

// QueryParameters returns a copy of the query parameters, or nil.
func (r *Request) QueryParameters() map[string]any {
	return maps.Clone(r.query)
}

// BodyParameters returns the body exactly as it was set: a map[string]any
// for an object body, a []any for an array body, or nil.
func (r *Request) BodyParameters() any {
	return cloneBody(r.body)
}

// Headers returns a copy of the headers, or nil.
func (r *Request) Headers() map[string]string {
	return maps.Clone(r.headers)
}

// Header returns the value of the named header, matched case-insensitively.
func (r *Request) Header(name string) string {
	if v, ok := r.headers[name]; ok {
		return v
	}
	for k, v := range r.headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// ToBuilder returns a Builder preloaded with a copy of the request, so
// parameters and headers can be added with the builder's merge semantics.
func (r *Request) ToBuilder() *Builder {
	return &Builder{
		host:    r.host,
		port:    r.port,
		scheme:  r.scheme,
		path:    r.path,
		query:   maps.Clone(r.query),
		body:    cloneBody(r.body),
		headers: maps.Clone(r.headers),
	}
}

// URI renders scheme://host:port/path. It never includes the query string.
func (r *Request) URI() (string, error) {
	var missing []string
	if r.host == "" {
		missing = append(missing, "host")
	}
	if r.port == 0 {
		missing = append(missing, "port")
	}
	if r.scheme == "" {
		missing = append(missing, "scheme")
	}
	if len(missing) > 0 {
		return "", errs.NewConfiguration("missing "+strings.Join(missing, ", "), nil)
	}

	return r.scheme + "://" + net.JoinHostPort(r.host, strconv.Itoa(r.port)) + r.path, nil
}

// URL renders the URI followed by the query string.
func (r *Request) URL() (string, error) {
	uri, err := r.URI()
	if err != nil {
		return "", err
	}

	return uri + r.QueryParameterString(), nil
}

// QueryParameterString renders the query parameters as "?k1=v1&k2=v2",
// keys sorted. Values are not URL-encoded; encoding belongs to the
// transport. Parameters with a nil value are omitted, and an empty string
// is returned when nothing is left to render.
func (r *Request) QueryParameterString() string {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(r.query)) {
		v := r.query[k]
		if v == nil {
			continue
		}

		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fmt.Sprint(v))
	}

	return b.String()
}
