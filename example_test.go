package webapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/adamwoolhether/webapi"
	"github.com/adamwoolhether/webapi/client"
	"github.com/adamwoolhether/webapi/errs"
	"github.com/adamwoolhether/webapi/proxy"
)

func ExampleAPI_GetAlbum() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"4aawyAB9vmqN3uQ7FjRGTy","name":"Global Warming","market":%q}`, r.URL.Query().Get("market"))
	}))
	defer ts.Close()

	api, err := webapi.New(
		webapi.WithAPIURL(ts.URL),
		webapi.WithCredentials(webapi.Credentials{AccessToken: "token"}),
		webapi.WithClientOptions(client.WithProxyEnv(proxy.Env{})),
	)
	if err != nil {
		fmt.Println("new error:", err)
		return
	}

	resp, err := api.GetAlbum(context.Background(), "4aawyAB9vmqN3uQ7FjRGTy", map[string]any{"market": "SE"})
	if err != nil {
		fmt.Println("get album error:", err)
		return
	}

	fmt.Println(resp.Get("name").String(), resp.Get("market").String())
	// Output: Global Warming SE
}

func ExampleAPI_Pause_error() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"status":401,"message":"No token provided"}}`)
	}))
	defer ts.Close()

	api, err := webapi.New(
		webapi.WithAPIURL(ts.URL),
		webapi.WithClientOptions(client.WithProxyEnv(proxy.Env{})),
	)
	if err != nil {
		fmt.Println("new error:", err)
		return
	}

	_, err = api.Pause(context.Background())

	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.Name(), apiErr.StatusCode)
	}
	// Output: WebapiRegularError 401
}
