package webapi

import (
	"context"

	"github.com/adamwoolhether/webapi/client"
)

// Callback receives the outcome of an asynchronous call. Exactly one of
// err and resp is non-nil.
type Callback func(err error, resp *client.Response)

// Async runs call in a new goroutine. When cb is non-nil it is invoked
// once with the outcome. The returned Future yields the same outcome.
//
//	fut := api.Async(ctx, api.GetMe, nil)
//	resp, err := fut.Wait()
func (a *API) Async(ctx context.Context, call func(context.Context) (*client.Response, error), cb Callback) *client.Future {
	fut := client.NewFuture(func() (*client.Response, error) {
		return call(ctx)
	})

	if cb != nil {
		Notify(fut, cb)
	}

	return fut
}

// Notify invokes cb once fut completes.
func Notify(fut *client.Future, cb Callback) {
	fut.Then(func(resp *client.Response, err error) {
		cb(err, resp)
	})
}
