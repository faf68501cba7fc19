package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

const (
	// maxErrBodySize caps the amount of body read from a failed response.
	// Error payloads are small JSON documents; anything larger is not one.
	maxErrBodySize = 64 << 10 // 64KB

	// maxBodySize caps the amount of body read from a successful response.
	maxBodySize = 32 << 20 // 32MB
)

// Response is the envelope returned for a 2xx reply.
type Response struct {
	// Body is the decoded JSON payload, the raw text for non-JSON
	// payloads, or nil when the reply had no body.
	Body       any
	RawBody    []byte
	Headers    http.Header
	StatusCode int
}

func newResponse(body []byte, headers http.Header, statusCode int) *Response {
	resp := Response{
		RawBody:    body,
		Headers:    headers,
		StatusCode: statusCode,
	}

	switch {
	case len(body) == 0:
	case gjson.ValidBytes(body):
		if err := json.Unmarshal(body, &resp.Body); err != nil {
			resp.Body = string(body)
		}
	default:
		resp.Body = string(body)
	}

	return &resp
}

// Decode unmarshals the JSON payload into dest, which must be a pointer.
func (r *Response) Decode(dest any) error {
	if len(r.RawBody) == 0 {
		return fmt.Errorf("decoding body: %w", ErrEmptyBody)
	}

	if err := json.Unmarshal(r.RawBody, dest); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	return nil
}

// Get returns the value at path in the JSON payload using gjson path
// syntax, e.g. "items.0.name".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.RawBody, path)
}
