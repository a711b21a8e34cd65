package twitter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMultipartNotImplemented is returned when a body-bearing request carries
// a file parameter. Multipart encoding is not supported.
var ErrMultipartNotImplemented = errors.New("multipart/form-data encoding is not implemented")

// ErrorKind classifies an HTTPError.
type ErrorKind int

const (
	KindNetwork       ErrorKind = iota // connection, DNS, TLS or body read failure
	KindInvalidURL                     // the request URL could not be parsed
	KindUnimplemented                  // the request needs an encoding this package does not provide
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindInvalidURL:
		return "invalid url"
	case KindUnimplemented:
		return "unimplemented"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// HTTPError is a failure that happened before a response could be
// interpreted: the request was never sent, or its body could not be read.
type HTTPError struct {
	Kind ErrorKind
	Err  error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("twitter: %s: %v", e.Kind, e.Err)
}

func (e *HTTPError) Unwrap() error { return e.Err }

func networkError(err error) error {
	var he *HTTPError
	if errors.As(err, &he) {
		return err
	}
	return &HTTPError{Kind: KindNetwork, Err: err}
}

// ErrorResponse is a non-2xx response from Twitter.
type ErrorResponse struct {
	// Status is the HTTP status code.
	Status int

	// Errors is nil when the body did not hold a recognizable error payload.
	Errors []ErrorCode

	// RawResponse is the response body exactly as received.
	RawResponse string

	RateLimit *RateLimitStatus
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("twitter: HTTP %d: %s", e.Status, truncate(e.RawResponse, 200))
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, c := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s (code %d)", c.Message, c.Code))
	}
	return fmt.Sprintf("twitter: HTTP %d: %s", e.Status, strings.Join(msgs, "; "))
}

// HasCode reports whether the payload contains the given Twitter error code.
func (e *ErrorResponse) HasCode(code int) bool {
	for _, c := range e.Errors {
		if c.Code == code {
			return true
		}
	}
	return false
}

// ErrorClass categorizes Twitter API error codes for targeted handling.
type ErrorClass int

const (
	ClassNone          ErrorClass = iota
	ClassRateLimited              // 88 — rate limit exceeded
	ClassSuspended                // 64 — account suspended
	ClassLocked                   // 326 — account locked
	ClassCSRF                     // 353 — csrf token mismatch
	ClassAuthExpired              // 32, 89 — could not authenticate / invalid token
	ClassBlocked                  // 161 — blocked from performing action
	ClassNotAuthorized            // 179, 219 — not authorized
	ClassInternal                 // 131 — Twitter internal error
)

// Class returns the class of the first known error code in the payload.
func (e *ErrorResponse) Class() ErrorClass {
	for _, c := range e.Errors {
		switch c.Code {
		case 88:
			return ClassRateLimited
		case 64:
			return ClassSuspended
		case 326:
			return ClassLocked
		case 353:
			return ClassCSRF
		case 32, 89:
			return ClassAuthExpired
		case 161:
			return ClassBlocked
		case 179, 219:
			return ClassNotAuthorized
		case 131:
			return ClassInternal
		}
	}
	return ClassNone
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
