package twitter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	stealth "github.com/anatolykoptev/go-stealth"
)

// StealthTransport sends requests through a go-stealth browser client, which
// presents a browser TLS fingerprint and can route through a proxy.
// Responses are buffered by the underlying client.
type StealthTransport struct {
	client *stealth.BrowserClient
}

// NewStealthTransport creates a transport. proxy may be empty. extra options
// are applied after the defaults.
func NewStealthTransport(proxy string, extra ...stealth.ClientOption) (*StealthTransport, error) {
	opts := []stealth.ClientOption{
		stealth.WithHeaderOrder(restHeaderOrder),
	}
	if proxy != "" {
		opts = append(opts, stealth.WithProxy(proxy))
	}
	opts = append(opts, extra...)
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}
	return &StealthTransport{client: bc}, nil
}

// Send implements Transport. Bodies of known length are read up front so the
// client sends them with a fixed length; unknown lengths are streamed.
// Cancelling ctx abandons the call, though the underlying request runs to
// completion in the background.
func (t *StealthTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil && req.ContentLength != 0 {
		body = req.Body
		if req.ContentLength > 0 {
			buf := make([]byte, req.ContentLength)
			if _, err := io.ReadFull(req.Body, buf); err != nil {
				return nil, fmt.Errorf("read request body: %w", err)
			}
			body = bytes.NewReader(buf)
		}
	}

	respBody, respHdrs, status, err := t.client.DoWithHeaderOrderCtx(ctx,
		req.Method, req.URL.String(), lowerHeaders(req.Header), body, restHeaderOrder)
	if err != nil {
		return nil, err
	}

	h := make(http.Header, len(respHdrs))
	for k, v := range respHdrs {
		h.Set(k, v)
	}
	return &Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(bytes.NewReader(respBody)),
	}, nil
}
