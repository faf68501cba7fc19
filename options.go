package webapi

import (
	"github.com/adamwoolhether/webapi/client"
)

// Option is a functional option for configuring an [API] via [New].
type Option func(*options) error
type options struct {
	creds      Credentials
	clientOpts []client.Option
	api        *origin
	accounts   *origin
}

// WithCredentials sets the initial credentials.
func WithCredentials(creds Credentials) Option {
	return func(o *options) error {
		o.creds = creds
		return nil
	}
}

// WithClientOptions passes opts to [client.Build]. It may be given more
// than once; options accumulate in order.
func WithClientOptions(opts ...client.Option) Option {
	return func(o *options) error {
		o.clientOpts = append(o.clientOpts, opts...)
		return nil
	}
}

// WithAPIURL sends Web API requests to the scheme, host and port of raw
// instead of the public service.
func WithAPIURL(raw string) Option {
	return func(o *options) error {
		orig, err := parseOrigin(raw)
		if err != nil {
			return err
		}
		o.api = orig
		return nil
	}
}

// WithAccountsURL sends accounts requests to the scheme, host and port
// of raw instead of the public service.
func WithAccountsURL(raw string) Option {
	return func(o *options) error {
		orig, err := parseOrigin(raw)
		if err != nil {
			return err
		}
		o.accounts = orig
		return nil
	}
}
