package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/adamwoolhether/webapi/errs"
)

func TestNew(t *testing.T) {
	err := errs.New([]byte(`{"a":1}`), nil, http.StatusTeapot, "custom message.")

	if err.Kind != errs.KindAPI {
		t.Fatalf("Kind = %v, want %v", err.Kind, errs.KindAPI)
	}
	if err.Message != "custom message." {
		t.Fatalf("Message = %q, want %q", err.Message, "custom message.")
	}
	if err.StatusCode != http.StatusTeapot {
		t.Fatalf("StatusCode = %d, want %d", err.StatusCode, http.StatusTeapot)
	}
}

func TestNewTimeout(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := errs.NewTimeout(1500*time.Millisecond, cause)

	exp := "A timeout occurred while communicating with the API.\nDetails: timeout of 1500ms exceeded."
	if err.Error() != exp {
		t.Fatalf("Error() = %q, want %q", err.Error(), exp)
	}
	if err.Name() != "TimeoutError" {
		t.Fatalf("Name() = %q, want %q", err.Name(), "TimeoutError")
	}
	if !errors.Is(err, errs.ErrTimeout) {
		t.Fatal("timeout error should match ErrTimeout")
	}
	if errors.Is(err, errs.ErrAPI) {
		t.Fatal("timeout error should not match ErrAPI")
	}
	if !errors.Is(err, cause) {
		t.Fatal("timeout error should unwrap to its cause")
	}
	if err.StatusCode != 0 || err.Body != nil || err.Headers != nil {
		t.Fatal("timeout error should not carry response fields")
	}
}

func TestNewConfiguration(t *testing.T) {
	testCases := []struct {
		name   string
		reason string
		fields errs.FieldErrors
		exp    string
	}{
		{
			name:   "reason only",
			reason: "missing host, port or scheme",
			exp:    "The request is not configured correctly.\nDetails: missing host, port or scheme.",
		},
		{
			name: "fields take precedence",
			fields: errs.FieldErrors{
				{Field: "scheme", Err: "scheme must be one of [http https]"},
				{Field: "port", Err: "port must be 65,535 or less"},
			},
			exp: "The request is not configured correctly.\nDetails: scheme: scheme must be one of [http https]; port: port must be 65,535 or less.",
		},
		{
			name: "no detail",
			exp:  "The request is not configured correctly.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := errs.NewConfiguration(tc.reason, tc.fields)

			if err.Error() != tc.exp {
				t.Errorf("Error() = %q, want %q", err.Error(), tc.exp)
			}
			if !errs.IsConfiguration(err) {
				t.Error("IsConfiguration = false, want true")
			}
			if len(errs.GetFieldErrors(err)) != len(tc.fields) {
				t.Errorf("GetFieldErrors len = %d, want %d", len(errs.GetFieldErrors(err)), len(tc.fields))
			}
		})
	}
}

func TestError_As(t *testing.T) {
	wrapped := fmt.Errorf("get album: %w", errs.Classify([]byte(`{"error":{"message":"Not found","status":404}}`), nil, http.StatusNotFound))

	var apiErr *errs.Error
	if !errors.As(wrapped, &apiErr) {
		t.Fatal("errors.As should find *errs.Error")
	}
	if apiErr.Kind != errs.KindRegular {
		t.Fatalf("Kind = %v, want %v", apiErr.Kind, errs.KindRegular)
	}
	if errors.Is(wrapped, errs.ErrAuthentication) {
		t.Fatal("regular error should not match ErrAuthentication")
	}
}

func TestError_MessagesEndWithPeriod(t *testing.T) {
	bodies := []string{
		`{"error":{"message":"Not found","status":404}}`,
		`{"error":"invalid_client"}`,
		`{"error":{"message":"Restricted","reason":"UNKNOWN"}}`,
		`garbage`,
		``,
	}

	for _, b := range bodies {
		msg := errs.Classify([]byte(b), nil, http.StatusBadRequest).Error()
		if !strings.HasSuffix(msg, ".") {
			t.Errorf("message %q should end with a period", msg)
		}
	}
}

func TestError_RetryAfter(t *testing.T) {
	testCases := []struct {
		name    string
		headers http.Header
		exp     time.Duration
		expOK   bool
	}{
		{
			name:    "seconds",
			headers: http.Header{"Retry-After": {"7"}},
			exp:     7 * time.Second,
			expOK:   true,
		},
		{
			name:    "missing",
			headers: http.Header{},
		},
		{
			name:    "nil headers",
			headers: nil,
		},
		{
			name:    "garbage",
			headers: http.Header{"Retry-After": {"soon"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := errs.New(nil, tc.headers, http.StatusTooManyRequests, "")

			got, ok := err.RetryAfter()
			if ok != tc.expOK {
				t.Fatalf("ok = %v, want %v", ok, tc.expOK)
			}
			if got != tc.exp {
				t.Fatalf("RetryAfter = %v, want %v", got, tc.exp)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := errs.Kind(99).String(); got != "UnknownError" {
		t.Fatalf("String() = %q, want %q", got, "UnknownError")
	}
}
