package errs_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adamwoolhether/webapi/errs"
)

func ExampleClassify() {
	body := []byte(`{"error":{"message":"Not allowed to shuffle","reason":"Not premium"}}`)

	err := errs.Classify(body, nil, http.StatusForbidden)

	fmt.Println(err.Name())
	fmt.Println(err.Error())
	fmt.Println(errors.Is(err, errs.ErrPlayer))
	// Output:
	// WebapiPlayerError
	// An error occurred while communicating with the API.
	// Details: Not allowed to shuffle Not premium.
	// true
}
