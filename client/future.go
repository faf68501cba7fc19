package client

import (
	"context"

	"github.com/adamwoolhether/webapi/request"
)

// Future is the pending result of a single send.
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

// NewFuture runs fn in a new goroutine and returns a Future holding its
// outcome.
func NewFuture(fn func() (*Response, error)) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.resp, f.err = fn()
	}()

	return f
}

// Go sends req in a new goroutine and returns immediately. The outcome is
// the same one [Client.Send] would have returned.
func (c *Client) Go(ctx context.Context, method string, req *request.Request) *Future {
	return NewFuture(func() (*Response, error) {
		return c.Send(ctx, method, req)
	})
}

// Done returns a channel that is closed once the outcome is known.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the outcome is known and returns it.
func (f *Future) Wait() (*Response, error) {
	<-f.done
	return f.resp, f.err
}

// Then calls fn exactly once with the outcome, from a new goroutine.
func (f *Future) Then(fn func(*Response, error)) {
	go func() {
		fn(f.Wait())
	}()
}
