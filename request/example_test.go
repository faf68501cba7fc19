package request_test

import (
	"fmt"

	"github.com/adamwoolhether/webapi/request"
)

func ExampleBuilder() {
	req, err := request.NewBuilder().
		WithHost("such.api.wow").
		WithPort(1337).
		WithScheme("https").
		WithPath("/v1/users/meriosweg").
		WithQueryParameters(map[string]any{"one": 1, "two": nil, "three": "world"}).
		Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	uri, _ := req.URI()
	fmt.Println(uri)
	fmt.Println(req.QueryParameterString())
	// Output:
	// https://such.api.wow:1337/v1/users/meriosweg
	// ?one=1&three=world
}

func ExampleWebAPI() {
	req, err := request.WebAPI().
		WithAccessToken("token").
		WithPath("/v1/me").
		Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	u, _ := req.URL()
	fmt.Println(u)
	fmt.Println(req.Header("Authorization"))
	// Output:
	// https://api.spotify.com:443/v1/me
	// Bearer token
}
