package validate_test

import (
	"testing"

	"github.com/adamwoolhether/webapi/errs"
	"github.com/adamwoolhether/webapi/internal/validate"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Port   int    `yaml:"port" validate:"max=10"`
	Hidden string `json:"-" validate:"omitempty,email"`
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name      string
		val       sample
		expFields map[string]string
	}{
		{
			name: "valid",
			val:  sample{Name: "webapi", Port: 1},
		},
		{
			name: "required uses custom message",
			val:  sample{Port: 1},
			expFields: map[string]string{
				"name": "name is required",
			},
		},
		{
			name: "yaml tag names the field",
			val:  sample{Name: "webapi", Port: 11},
			expFields: map[string]string{
				"port": "port must be 10 or less",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Check(tc.val)

			if tc.expFields == nil {
				if err != nil {
					t.Fatalf("exp nil err, got: %v", err)
				}
				return
			}

			if !errs.IsConfiguration(err) {
				t.Fatalf("expected configuration error, got: %v", err)
			}

			got := errs.GetFieldErrors(err).Fields()
			for field, msg := range tc.expFields {
				if got[field] != msg {
					t.Errorf("field %q = %q, want %q", field, got[field], msg)
				}
			}
		})
	}
}
