// Package request models one outbound call against the Web API.
//
// A [Builder] accumulates the host, port, scheme, path, query parameters,
// body and headers; [Builder.Build] copies them into an immutable
// [Request]:
//
//	req, err := request.WebAPI().
//		WithAccessToken(token).
//		WithPath("/v1/albums/" + id).
//		WithQueryParameters(map[string]any{"market": "SE"}).
//		Build()
//
// Builders returned by [Authentication] and [WebAPI] are preloaded with
// the accounts service and Web API hosts respectively.
package request
