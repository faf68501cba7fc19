package request

import (
	"maps"

	"github.com/adamwoolhether/webapi/errs"
)

const (
	// AccountsHost serves the authorization endpoints.
	AccountsHost = "accounts.spotify.com"
	// APIHost serves the Web API endpoints.
	APIHost = "api.spotify.com"

	DefaultPort   = 443
	DefaultScheme = "https"
)

// Builder accumulates the configuration of a [Request]. It is not safe
// for concurrent use; build one per call.
type Builder struct {
	host    string
	port    int
	scheme  string
	path    string
	query   map[string]any
	body    any
	headers map[string]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Authentication returns a Builder targeting the accounts service.
func Authentication() *Builder {
	return NewBuilder().
		WithHost(AccountsHost).
		WithPort(DefaultPort).
		WithScheme(DefaultScheme)
}

// WebAPI returns a Builder targeting the Web API.
func WebAPI() *Builder {
	return NewBuilder().
		WithHost(APIHost).
		WithPort(DefaultPort).
		WithScheme(DefaultScheme)
}

// WithHost sets the target host name or IP address.
func (b *Builder) WithHost(host string) *Builder {
	b.host = host
	return b
}

// WithPort sets the target port.
func (b *Builder) WithPort(port int) *Builder {
	b.port = port
	return b
}

// WithScheme sets the scheme, "http" or "https".
func (b *Builder) WithScheme(scheme string) *Builder {
	b.scheme = scheme
	return b
}

// WithPath sets the path, including its leading slash.
func (b *Builder) WithPath(path string) *Builder {
	b.path = path
	return b
}

// WithQueryParameters merges every given map into the accumulated query
// parameters. Later keys overwrite earlier ones. A nil value is kept but
// omitted when the query string is rendered.
func (b *Builder) WithQueryParameters(params ...map[string]any) *Builder {
	for _, p := range params {
		if b.query == nil {
			b.query = make(map[string]any, len(p))
		}
		maps.Copy(b.query, p)
	}
	return b
}

// WithQueryParameter sets a single query parameter.
func (b *Builder) WithQueryParameter(key string, value any) *Builder {
	return b.WithQueryParameters(map[string]any{key: value})
}

// WithBodyParameters merges every given map into an object body. An array
// body set by [Builder.WithBodyValues] is replaced.
func (b *Builder) WithBodyParameters(params ...map[string]any) *Builder {
	obj, ok := b.body.(map[string]any)
	if !ok {
		obj = make(map[string]any)
	}

	for _, p := range params {
		maps.Copy(obj, p)
	}

	b.body = obj
	return b
}

// WithBodyParameter sets a single key of an object body.
func (b *Builder) WithBodyParameter(key string, value any) *Builder {
	return b.WithBodyParameters(map[string]any{key: value})
}

// WithBodyValues sets an array body, replacing whatever body was set. A
// nil slice clears the body.
func (b *Builder) WithBodyValues(values []any) *Builder {
	if values == nil {
		b.body = nil
		return b
	}
	b.body = append([]any{}, values...)
	return b
}

// WithHeaders merges every given map into the accumulated headers.
func (b *Builder) WithHeaders(headers ...map[string]string) *Builder {
	for _, h := range headers {
		if b.headers == nil {
			b.headers = make(map[string]string, len(h))
		}
		maps.Copy(b.headers, h)
	}
	return b
}

// WithHeader sets a single header.
func (b *Builder) WithHeader(key, value string) *Builder {
	return b.WithHeaders(map[string]string{key: value})
}

// WithAccessToken sets a bearer Authorization header. An empty token is
// ignored so callers can pass whatever token they currently hold.
func (b *Builder) WithAccessToken(token string) *Builder {
	if token == "" {
		return b
	}
	return b.WithHeader("Authorization", "Bearer "+token)
}

// Build validates the configured values and returns an immutable Request.
// Host, port and scheme may still be missing; [Request.URI] reports that.
func (b *Builder) Build() (*Request, error) {
	if b == nil {
		return nil, errs.NewConfiguration("no builder was provided", nil)
	}

	if err := check(b); err != nil {
		return nil, err
	}

	return &Request{
		host:    b.host,
		port:    b.port,
		scheme:  b.scheme,
		path:    b.path,
		query:   maps.Clone(b.query),
		body:    cloneBody(b.body),
		headers: maps.Clone(b.headers),
	}, nil
}

// cloneBody copies the top level of an object or array body so the
// built Request doesn't alias the builder.
func cloneBody(body any) any {
	switch v := body.(type) {
	case map[string]any:
		return maps.Clone(v)
	case []any:
		return append([]any{}, v...)
	default:
		return body
	}
}
