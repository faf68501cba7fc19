package client_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adamwoolhether/webapi/client"
	"github.com/adamwoolhether/webapi/errs"
)

func TestFuture_Then(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"status":404,"message":"Not found"}}`))
	}))
	defer ts.Close()

	c, err := build(t)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	var calls int32
	done := make(chan error, 1)

	fut := c.Go(t.Context(), http.MethodGet, mustBuild(t, builderFor(t, ts.URL).WithPath("/v1/albums/x")))
	fut.Then(func(resp *client.Response, err error) {
		atomic.AddInt32(&calls, 1)
		if resp != nil {
			t.Errorf("expected nil response, got %+v", resp)
		}
		done <- err
	})

	select {
	case err := <-done:
		if !errors.Is(err, errs.ErrRegular) {
			t.Fatalf("expected regular error, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not invoked")
	}

	select {
	case <-fut.Done():
	default:
		t.Fatal("Done should be closed once the callback ran")
	}

	// Waiting again returns the same outcome without another send.
	if _, err := fut.Wait(); !errors.Is(err, errs.ErrRegular) {
		t.Fatalf("expected regular error on Wait, got: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("callback calls = %d, want 1", got)
	}
}
