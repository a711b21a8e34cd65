package twitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// authorizer produces the Authorization header value for a built request.
type authorizer interface {
	AuthorizationHeader(req *Request) (string, error)
}

// client is the request plumbing shared by the authenticator variants.
// It is immutable after construction.
type client struct {
	transport Transport
	logger    *slog.Logger
	userAgent string
	metrics   func(RequestOutcome)
	throttle  *Throttle
}

func newClient(cfg Config) client {
	cfg.defaults()
	return client{
		transport: cfg.Transport,
		logger:    cfg.Logger,
		userAgent: cfg.UserAgent,
		metrics:   cfg.MetricsHook,
		throttle:  cfg.Throttle,
	}
}

var defaultClient = sync.OnceValue(func() client { return newClient(Config{}) })

// resolve returns c, or the default client when c is the zero value of an
// authenticator built without its constructor.
func (c *client) resolve() *client {
	if c.transport != nil {
		return c
	}
	d := defaultClient()
	return &d
}

// dispatch builds, authorizes and sends one request. The returned Request is
// nil when the call failed before reaching the transport.
func (c *client) dispatch(ctx context.Context, method, rawURL string, content RequestContent, auth authorizer) (*Request, *Response, error) {
	c = c.resolve()
	req, err := buildRequest(method, rawURL, content)
	if err != nil {
		return nil, nil, err
	}
	header, err := auth.AuthorizationHeader(req)
	if err != nil {
		return nil, nil, fmt.Errorf("authorize %s %s: %w", req.Method, req.URL.Path, err)
	}
	req.Header.Set("Authorization", header)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("twitter request",
		slog.String("method", req.Method),
		slog.String("host", req.URL.Host),
		slog.String("path", req.URL.Path),
		slog.Bool("chunked", req.Chunked()))

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return req, nil, &HTTPError{Kind: KindNetwork, Err: fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)}
	}
	return req, resp, nil
}

// request dispatches and interprets one call, then reports its outcome.
func (c *client) request(ctx context.Context, method, rawURL string, content RequestContent, auth authorizer) (*TwitterResponse[Unit], error) {
	c = c.resolve()
	start := time.Now()
	req, resp, err := c.dispatch(ctx, method, rawURL, content, auth)
	if req == nil {
		return nil, err
	}
	out, err := interpretResponse(resp, err)
	c.observe(req, resp, out, err, time.Since(start))
	return out, err
}

// RequestOutcome describes one completed call for metrics hooks.
type RequestOutcome struct {
	Method     string
	Host       string
	Path       string
	StatusCode int // 0 when no response was received
	RateLimit  *RateLimitStatus
	Err        error
	Duration   time.Duration
}

// Endpoint returns the "METHOD path" key of the call.
func (o RequestOutcome) Endpoint() string {
	return endpointKey(o.Method, o.Path)
}

func (c *client) observe(req *Request, resp *Response, out *TwitterResponse[Unit], err error, d time.Duration) {
	o := RequestOutcome{
		Method:   req.Method,
		Host:     req.URL.Host,
		Path:     req.URL.Path,
		Err:      err,
		Duration: d,
	}
	if resp != nil {
		o.StatusCode = resp.StatusCode
	}

	var errResp *ErrorResponse
	switch {
	case out != nil:
		o.RateLimit = out.RateLimit
	case errors.As(err, &errResp):
		o.RateLimit = errResp.RateLimit
		c.logger.Warn("twitter error response",
			slog.String("endpoint", o.Endpoint()),
			slog.Int("status", errResp.Status),
			slog.Int("class", int(errResp.Class())),
			slog.String("body", truncate(errResp.RawResponse, 200)))
	default:
		c.logger.Warn("twitter request failed",
			slog.String("endpoint", o.Endpoint()),
			slog.Any("error", err))
	}

	if c.throttle != nil && o.RateLimit != nil {
		c.throttle.Observe(o.Endpoint(), *o.RateLimit)
	}
	if c.metrics != nil {
		c.metrics(o)
	}
}
