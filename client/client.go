package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/webapi/client/throttle"
	"github.com/adamwoolhether/webapi/errs"
	"github.com/adamwoolhether/webapi/proxy"
	"github.com/adamwoolhether/webapi/request"
)

// Client dispatches [request.Request] values over HTTP and classifies
// the outcome. It is safe for concurrent use.
type Client struct {
	c      *http.Client
	logger *slog.Logger
	tracer trace.Tracer

	// proxyEnv is nil when the caller supplied their own transport, in
	// which case proxy selection is theirs.
	proxyEnv *proxy.Env
}

// Build creates a Client. Without options, requests go through a clone of
// [http.DefaultTransport] whose proxy is picked by [proxy.Resolve] using
// the process environment.
func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		c:      &http.Client{},
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer("webapi"),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		env := proxy.FromEnvironment()
		if opts.proxyEnv != nil {
			env = *opts.proxyEnv
		}
		client.proxyEnv = &env

		base := http.DefaultTransport.(*http.Transport).Clone()
		base.Proxy = proxy.Func(env)
		transport = base
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(*opts.throttle, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// Get sends req with the GET method.
func (c *Client) Get(ctx context.Context, req *request.Request) (*Response, error) {
	return c.Send(ctx, http.MethodGet, req)
}

// Post sends req with the POST method.
func (c *Client) Post(ctx context.Context, req *request.Request) (*Response, error) {
	return c.Send(ctx, http.MethodPost, req)
}

// Put sends req with the PUT method.
func (c *Client) Put(ctx context.Context, req *request.Request) (*Response, error) {
	return c.Send(ctx, http.MethodPut, req)
}

// Delete sends req with the DELETE method.
func (c *Client) Delete(ctx context.Context, req *request.Request) (*Response, error) {
	return c.Send(ctx, http.MethodDelete, req)
}

// Send performs exactly one HTTP exchange for req and returns either the
// response envelope of a 2xx reply or a single error:
//
//   - *errs.Error of KindConfiguration when req or method is unusable;
//   - *errs.Error classified by [errs.Classify] for any non-2xx reply;
//   - *errs.Error of KindTimeout when the deadline passes first;
//   - the wrapped transport error otherwise.
//
// No retries are performed.
func (c *Client) Send(ctx context.Context, method string, req *request.Request) (*Response, error) {
	if !supportedMethod(method) {
		return nil, errs.NewConfiguration(fmt.Sprintf("unsupported method %q", method), nil)
	}
	if req == nil {
		return nil, errs.NewConfiguration("no request was provided", nil)
	}

	opts, err := deriveOptions(req)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "webapi.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", opts.uri),
		),
	)
	defer span.End()

	log := c.logger.With("trace_id", traceID(span), "method", method, "uri", opts.uri)

	httpReq, err := opts.httpRequest(ctx, method)
	if err != nil {
		return nil, err
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	if c.proxyEnv != nil {
		if p := proxy.Resolve(opts.uri, *c.proxyEnv); p != "" {
			log.Debug("routing through proxy", "proxy", p)
		}
	}

	start := time.Now()
	resp, err := c.c.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if isTimeout(err) {
			return nil, errs.NewTimeout(c.timeout(ctx, start), err)
		}

		return nil, fmt.Errorf("exec http do: %w", err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			log.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			log.Error("failed to close response body", "error", err)
		}
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	limit := int64(maxBodySize)
	if !success {
		limit = maxErrBodySize
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if isTimeout(err) {
			return nil, errs.NewTimeout(c.timeout(ctx, start), err)
		}

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	log.Debug("request complete", "status", resp.StatusCode, "elapsed", time.Since(start).String())

	if !success {
		apiErr := errs.Classify(body, resp.Header, resp.StatusCode)
		span.SetStatus(codes.Error, apiErr.Name())

		return nil, apiErr
	}

	return newResponse(body, resp.Header, resp.StatusCode), nil
}

// timeout reports the deadline that expired: the shorter of the client
// timeout and the time left on the context at start, or the time
// actually waited when neither is set.
func (c *Client) timeout(ctx context.Context, start time.Time) time.Duration {
	limit := c.c.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := deadline.Sub(start); limit <= 0 || left < limit {
			limit = left
		}
	}

	if limit > 0 {
		return limit
	}

	return time.Since(start)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func supportedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// traceID returns the span's trace id, or a fresh uuid when tracing is
// disabled, so log lines of one send can always be correlated.
func traceID(span trace.Span) string {
	if sc := span.SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return uuid.New().String()
}
