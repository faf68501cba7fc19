// Package webapi is a client for the Spotify Web API and its accounts
// service.
//
// An [API] holds the caller's credentials and a [client.Client]. Each
// endpoint method builds a [request.Request], sends it and returns the
// normalized [client.Response] or a classified [errs.Error].
package webapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/adamwoolhether/webapi/client"
	"github.com/adamwoolhether/webapi/config"
	"github.com/adamwoolhether/webapi/errs"
	"github.com/adamwoolhether/webapi/request"
)

// API is the endpoint facade. It is safe for concurrent use.
type API struct {
	client   *client.Client
	creds    credentialStore
	api      *origin
	accounts *origin
}

// origin overrides the scheme, host and port of a preset builder.
type origin struct {
	scheme string
	host   string
	port   int
}

// New creates an API.
func New(optFns ...Option) (*API, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying api option: %w", err)
		}
	}

	c, err := client.Build(opts.clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}

	a := API{
		client:   c,
		api:      opts.api,
		accounts: opts.accounts,
	}
	a.creds.set(opts.creds)

	return &a, nil
}

// NewFromConfig creates an API from the YAML file at path. Options are
// applied after the file's settings and may override them.
func NewFromConfig(path string, optFns ...Option) (*API, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithCredentials(Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURI:  cfg.RedirectURI,
			AccessToken:  cfg.AccessToken,
			RefreshToken: cfg.RefreshToken,
		}),
		WithClientOptions(cfg.ClientOptions()...),
	}

	return New(append(base, optFns...)...)
}

// Client returns the dispatcher used by the API, for sending requests
// to endpoints the API has no method for.
func (a *API) Client() *client.Client {
	return a.client
}

// webAPI returns a builder for the Web API carrying the current access
// token.
func (a *API) webAPI() *request.Builder {
	b := request.WebAPI().WithAccessToken(a.creds.get().AccessToken)
	return a.api.apply(b)
}

// authentication returns a builder for the accounts service.
func (a *API) authentication() *request.Builder {
	return a.accounts.apply(request.Authentication())
}

func (o *origin) apply(b *request.Builder) *request.Builder {
	if o == nil {
		return b
	}
	return b.WithScheme(o.scheme).WithHost(o.host).WithPort(o.port)
}

func parseOrigin(raw string) (*origin, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}

	if u.Scheme == "" || u.Hostname() == "" {
		return nil, errs.NewConfiguration(fmt.Sprintf("url %q needs a scheme and host", raw), nil)
	}

	o := origin{
		scheme: strings.ToLower(u.Scheme),
		host:   u.Hostname(),
		port:   request.DefaultPort,
	}

	switch p := u.Port(); {
	case p != "":
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parsing port: %w", err)
		}
		o.port = port
	case o.scheme == "http":
		o.port = 80
	}

	return &o, nil
}
