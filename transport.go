package twitter

import (
	"context"
	"io"
	"net/http"
)

// Transport sends a built Request and returns the raw response. The caller
// owns Response.Body and must close it.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Response is a raw HTTP response as returned by a Transport.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Doer is the subset of http.Client used by HTTPTransport, so callers can
// supply their own round-tripping (tracing, fixtures in tests).
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPTransport sends requests with net/http.
type HTTPTransport struct {
	Client Doer
}

// NewHTTPTransport wraps d, falling back to http.DefaultClient when d is nil.
func NewHTTPTransport(d Doer) *HTTPTransport {
	if d == nil {
		d = http.DefaultClient
	}
	return &HTTPTransport{Client: d}
}

// Send implements Transport. A body with a known length is sent with a
// Content-Length header; an unknown length is sent chunked.
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil && req.ContentLength != 0 {
		body = req.Body
	}

	hr, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, err
	}
	hr.Header = req.Header.Clone()
	if body != nil {
		hr.ContentLength = req.ContentLength
	}

	resp, err := t.Client.Do(hr)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}
