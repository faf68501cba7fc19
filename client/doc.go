// Package client dispatches requests built with the
// [github.com/adamwoolhether/webapi/request] package and normalizes the
// outcome.
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Sending Requests
//
// Build a request, then send it with the verb of the endpoint:
//
//	req, err := request.WebAPI().WithPath("/v1/me").WithAccessToken(token).Build()
//	resp, err := c.Get(ctx, req)
//
// A 2xx reply yields a [Response]. Anything else yields a single error
// from the [github.com/adamwoolhether/webapi/errs] taxonomy, or the
// wrapped transport error for network failures.
//
// # Asynchronous Sends
//
// [Client.Go] returns a [Future] whose outcome can be awaited or handed
// to a callback:
//
//	c.Go(ctx, http.MethodGet, req).Then(func(resp *client.Response, err error) {
//		...
//	})
//
// # Proxies
//
// The default transport routes requests through the proxy picked by
// [github.com/adamwoolhether/webapi/proxy.Resolve], reading HTTP_PROXY,
// HTTPS_PROXY and NO_PROXY once at [Build]. Use [WithProxyEnv] to inject
// the configuration instead.
package client
