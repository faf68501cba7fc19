// Package throttle provides an [http.RoundTripper] that rate-limits
// calls to the Web API using a token-bucket algorithm from
// [golang.org/x/time/rate].
//
// The API answers bursts with 429 Too Many Requests; limiting on the
// client side keeps a busy caller under the quota instead.
//
// # Usage
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		throttle.Config{RPS: 10, Burst: 5},
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// Most callers use [github.com/adamwoolhether/webapi/client.WithThrottle]
// instead. When the bucket is empty, outbound requests block until a
// token becomes available or the request context ends.
package throttle
