package throttle

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// NewRoundTripper returns an http.RoundTripper that holds each outbound
// request until the token bucket described by cfg admits it. logFn lazily
// resolves the logger at request time, making option ordering irrelevant;
// a nil-returning logFn disables the wait logs.
func NewRoundTripper(cfg Config, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if next == nil {
		next = http.DefaultTransport
	}

	l := &limiter{
		bucket: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		cfg:    cfg,
		next:   next,
		logFn:  logFn,
	}

	return l, nil
}

func (l *limiter) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	var logger *slog.Logger
	if l.logFn != nil {
		logger = l.logFn()
	}

	// A reservation that is immediately usable needs no wait and no log.
	if l.bucket.Allow() {
		return l.next.RoundTrip(r)
	}

	if logger != nil {
		logger.Debug("throttle tokens exhausted", "rate", l.cfg.RPS, "burst", l.cfg.Burst, "host", r.URL.Host, "path", r.URL.Path)
	}

	start := time.Now()
	if err := l.bucket.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if logger != nil {
		logger.Debug("throttle wait complete", "waited", time.Since(start).String(), "path", r.URL.Path)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return l.next.RoundTrip(r)
}
