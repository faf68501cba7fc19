package client

import "errors"

// ErrEmptyBody is returned by [Response.Decode] when the reply had no body.
var ErrEmptyBody = errors.New("empty response body")
