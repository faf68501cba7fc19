// Package errs defines the error taxonomy returned by the webapi packages.
//
// Every failure surfaces as an [*Error]. Callers can match a specific
// variant with [errors.Is] against the package sentinels, or match any
// variant with [errors.As]:
//
//	var apiErr *errs.Error
//	if errors.As(err, &apiErr) {
//		fmt.Println(apiErr.Name(), apiErr.StatusCode)
//	}
//
//	if errors.Is(err, errs.ErrPlayer) { ... }
package errs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Kind tags the variant of an [Error].
type Kind int

const (
	// KindAPI is the fallback for failures whose body has no recognized shape.
	KindAPI Kind = iota + 1
	// KindRegular is a body shaped {"error": {"message": ..., "status": ...}}.
	KindRegular
	// KindAuthentication is a body shaped {"error": "...", "error_description": "..."}.
	KindAuthentication
	// KindPlayer is a regular body that also carries error.reason.
	KindPlayer
	// KindTimeout means no response arrived before the deadline.
	KindTimeout
	// KindConfiguration is raised before any I/O when a request is unusable.
	KindConfiguration
)

var kindNames = map[Kind]string{
	KindAPI:            "WebapiError",
	KindRegular:        "WebapiRegularError",
	KindAuthentication: "WebapiAuthenticationError",
	KindPlayer:         "WebapiPlayerError",
	KindTimeout:        "TimeoutError",
	KindConfiguration:  "ConfigurationError",
}

// String returns the variant name.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UnknownError"
}

var (
	// ErrAPI matches every variant produced from a received response.
	ErrAPI            = errors.New("webapi error")
	ErrRegular        = errors.New("webapi regular error")
	ErrAuthentication = errors.New("webapi authentication error")
	ErrPlayer         = errors.New("webapi player error")
	ErrTimeout        = errors.New("timeout error")
	ErrConfiguration  = errors.New("configuration error")
)

var kindSentinels = map[Kind]error{
	KindAPI:            ErrAPI,
	KindRegular:        ErrRegular,
	KindAuthentication: ErrAuthentication,
	KindPlayer:         ErrPlayer,
	KindTimeout:        ErrTimeout,
	KindConfiguration:  ErrConfiguration,
}

const (
	apiPreamble     = "An error occurred while communicating with the API."
	authPreamble    = "An authentication error occurred while communicating with the API."
	timeoutPreamble = "A timeout occurred while communicating with the API."
	configPreamble  = "The request is not configured correctly."
)

// Error is the single error type of the taxonomy. Body, RawBody, Headers
// and StatusCode are only populated for variants built from a response.
type Error struct {
	Kind       Kind        `json:"-"`
	Message    string      `json:"message"`
	Body       any         `json:"body,omitempty"`
	RawBody    []byte      `json:"-"`
	Headers    http.Header `json:"headers,omitempty"`
	StatusCode int         `json:"statusCode,omitempty"`
	Fields     FieldErrors `json:"fields,omitempty"`
	Err        error       `json:"-"`
}

// New constructs a generic API error. An empty message is replaced by a
// generic one built from the status code.
func New(body []byte, headers http.Header, statusCode int, message string) *Error {
	if message == "" {
		message = genericMessage(body, statusCode)
	}

	return &Error{
		Kind:       KindAPI,
		Message:    message,
		Body:       parseBody(body),
		RawBody:    body,
		Headers:    headers,
		StatusCode: statusCode,
	}
}

// NewTimeout constructs a timeout error for the given deadline.
// err is the transport error that reported the timeout, if any.
func NewTimeout(timeout time.Duration, err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: details(timeoutPreamble, "timeout of "+strconv.FormatInt(timeout.Milliseconds(), 10)+"ms exceeded"),
		Err:     err,
	}
}

// NewConfiguration constructs a configuration error. The fields, if any,
// are listed in the message.
func NewConfiguration(reason string, fields FieldErrors) *Error {
	msg := configPreamble
	switch {
	case len(fields) > 0:
		msg = details(configPreamble, fields.Error())
	case reason != "":
		msg = details(configPreamble, reason)
	}

	return &Error{
		Kind:    KindConfiguration,
		Message: msg,
		Fields:  fields,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Name returns the variant tag, e.g. "WebapiPlayerError".
func (e *Error) Name() string {
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of this error's variant.
// Every response-derived variant also matches [ErrAPI].
func (e *Error) Is(target error) bool {
	if target == kindSentinels[e.Kind] {
		return true
	}

	if target == ErrAPI {
		switch e.Kind {
		case KindRegular, KindAuthentication, KindPlayer:
			return true
		}
	}

	return false
}

// RetryAfter returns the delay requested by the Retry-After header,
// which the API sends alongside 429 Too Many Requests.
func (e *Error) RetryAfter() (time.Duration, bool) {
	if e.Headers == nil {
		return 0, false
	}

	v := e.Headers.Get("Retry-After")
	if v == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}

	if at, err := http.ParseTime(v); err == nil {
		return max(time.Until(at), 0), true
	}

	return 0, false
}

// /////////////////////////////////////////////////////////////////////////////////////////////

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// Error implements the error interface, returning a human-readable
// summary of all field errors.
func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = f.Field + ": " + f.Err
	}
	return strings.Join(parts, "; ")
}

// Fields returns the fields that failed validation
func (fe FieldErrors) Fields() map[string]string {
	m := make(map[string]string)
	for _, fld := range fe {
		m[fld.Field] = fld.Err
	}
	return m
}

// IsConfiguration checks if err is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// GetFieldErrors returns the field errors carried by a configuration error.
func GetFieldErrors(err error) FieldErrors {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	return e.Fields
}
