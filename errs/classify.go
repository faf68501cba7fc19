package errs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Classify selects the error variant matching the shape of a failed
// response body. The checks run in a fixed order since a player body
// also has the regular shape:
//
//  1. {"error": {"message": ..., "reason": "..."}}  -> KindPlayer
//  2. {"error": {"message": ..., "status": ...}}    -> KindRegular
//  3. {"error": "...", "error_description": "..."}  -> KindAuthentication
//  4. anything else                                 -> KindAPI
func Classify(body []byte, headers http.Header, statusCode int) *Error {
	e := New(body, headers, statusCode, "")

	if !gjson.ValidBytes(body) {
		return e
	}

	field := gjson.GetBytes(body, "error")

	switch {
	case field.IsObject() && field.Get("reason").String() != "":
		e.Kind = KindPlayer
		e.Message = details(apiPreamble, field.Get("message").String(), field.Get("reason").String())

	case field.IsObject():
		e.Kind = KindRegular
		e.Message = details(apiPreamble, field.Get("message").String())

	case field.Type == gjson.String && field.String() != "":
		e.Kind = KindAuthentication
		e.Message = details(authPreamble, field.String(), gjson.GetBytes(body, "error_description").String())
	}

	return e
}

// details appends a "Details:" line holding main verbatim, each non-empty
// optional segment, and a closing period.
func details(preamble, main string, optional ...string) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\nDetails: ")
	b.WriteString(main)
	for _, o := range optional {
		if o != "" {
			b.WriteByte(' ')
			b.WriteString(o)
		}
	}
	b.WriteByte('.')

	return b.String()
}

func genericMessage(body []byte, statusCode int) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Sprintf("Request failed with status code %d.", statusCode)
	}

	return details(apiPreamble, fmt.Sprintf("unexpected response with status code %d", statusCode))
}

// parseBody returns the decoded JSON payload, or the body as a string
// when it isn't JSON.
func parseBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}

	if gjson.ValidBytes(body) {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			return v
		}
	}

	return string(body)
}
