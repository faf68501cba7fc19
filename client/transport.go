package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/adamwoolhether/webapi/errs"
	"github.com/adamwoolhether/webapi/request"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// transportOpts is what the transport needs to know about a request.
type transportOpts struct {
	uri     string
	query   url.Values
	headers map[string]string
	body    []byte

	// contentType is set when the body encoding had to be picked here
	// because the request declared none.
	contentType string
}

// deriveOptions maps req onto transport options. The query string stays
// out of uri; it is encoded by httpRequest. A declared JSON content type
// serializes the body as JSON. Otherwise an object body is form encoded
// and an array body, which has no form representation, is sent as JSON.
func deriveOptions(req *request.Request) (transportOpts, error) {
	uri, err := req.URI()
	if err != nil {
		return transportOpts{}, err
	}

	opts := transportOpts{
		uri:     uri,
		headers: req.Headers(),
	}

	if params := req.QueryParameters(); len(params) > 0 {
		opts.query = make(url.Values, len(params))
		for k, v := range params {
			if v == nil {
				continue
			}
			opts.query.Set(k, fmt.Sprint(v))
		}
	}

	body := req.BodyParameters()
	if body == nil {
		return opts, nil
	}

	declared := req.Header("Content-Type")

	form, isObject := body.(map[string]any)
	switch {
	case isJSON(declared) || (!isObject && declared == ""):
		b, err := json.Marshal(body)
		if err != nil {
			return transportOpts{}, fmt.Errorf("encoding request body: %w", err)
		}
		opts.body = b
		if declared == "" {
			opts.contentType = contentTypeJSON
		}

	case isObject:
		values := make(url.Values, len(form))
		for k, v := range form {
			if v == nil {
				continue
			}
			values.Set(k, fmt.Sprint(v))
		}
		opts.body = []byte(values.Encode())
		if declared == "" {
			opts.contentType = contentTypeForm
		}

	default:
		return transportOpts{}, errs.NewConfiguration(fmt.Sprintf("cannot encode a %T body as %s", body, declared), nil)
	}

	return opts, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}

	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(contentType), contentTypeJSON)
	}

	return mt == contentTypeJSON
}

// httpRequest instantiates the *http.Request for the derived options.
func (o transportOpts) httpRequest(ctx context.Context, method string) (*http.Request, error) {
	target := o.uri
	if len(o.query) > 0 {
		target += "?" + o.query.Encode()
	}

	var payload io.Reader
	if o.body != nil {
		payload = bytes.NewReader(o.body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	if o.contentType != "" {
		req.Header.Set("Content-Type", o.contentType)
	}

	return req, nil
}
