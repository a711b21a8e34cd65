package twitter

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const formContentType = "application/x-www-form-urlencoded"

// Request is a fully built outgoing request, ready for authorization and
// dispatch.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header

	// Body is nil for requests without a body.
	Body io.Reader

	// ContentLength is the exact size of Body, or UnknownLength when the body
	// must be sent chunked.
	ContentLength int64

	// Form holds the parameters encoded into a form body. They take part in
	// the OAuth signature.
	Form []Pair
}

// Chunked reports whether the body is sent without a declared length.
func (r *Request) Chunked() bool {
	return r.Body != nil && r.ContentLength < 0
}

// hasBody reports whether parameters for method travel in the body.
func hasBody(method string) bool {
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		return false
	}
	return true
}

// buildRequest turns a logical call into a Request. Parameters go into the
// query string for GET, DELETE and HEAD and into a form body otherwise.
// A File parameter on a query-only method is a programming error and panics.
func buildRequest(method, rawURL string, content RequestContent) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &HTTPError{Kind: KindInvalidURL, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &HTTPError{Kind: KindInvalidURL, Err: fmt.Errorf("url %q is not absolute", rawURL)}
	}

	method = strings.ToUpper(method)
	req := &Request{
		Method: method,
		URL:    u,
		Header: make(http.Header),
	}
	if content == nil {
		content = KeyValuePairs(nil)
	}

	switch c := content.(type) {
	case KeyValuePairs:
		if !hasBody(method) {
			if c.hasFile() {
				panic("twitter: " + method + " request must not carry a File parameter")
			}
			pairs := append(queryPairs(u.RawQuery), c.textPairs()...)
			u.RawQuery = createQuery(pairs)
			return req, nil
		}
		if c.hasFile() {
			return nil, &HTTPError{Kind: KindUnimplemented, Err: ErrMultipartNotImplemented}
		}
		form := c.textPairs()
		body := createQuery(form)
		req.Header.Set("Content-Type", formContentType)
		req.Body = strings.NewReader(body)
		req.ContentLength = int64(len(body))
		req.Form = form

	case StreamContent:
		if !hasBody(method) || c.Content == nil {
			return req, nil
		}
		if c.ContentType != "" {
			req.Header.Set("Content-Type", c.ContentType)
		}
		req.Body = c.Content
		req.ContentLength = c.ContentLength
		if req.ContentLength < 0 {
			req.ContentLength = UnknownLength
		}

	default:
		panic(fmt.Sprintf("twitter: unsupported request content %T", content))
	}
	return req, nil
}

// queryPairs splits a raw query into decoded pairs, preserving order.
// Segments that fail to decode are kept verbatim.
func queryPairs(raw string) []Pair {
	var pairs []Pair
	for _, seg := range strings.Split(raw, "&") {
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		if dk, err := url.QueryUnescape(k); err == nil {
			k = dk
		}
		if dv, err := url.QueryUnescape(v); err == nil {
			v = dv
		}
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs
}
