package twitter

import "time"

// Unit is the payload of a response whose body has not been decoded yet.
type Unit = struct{}

// TwitterResponse is the success envelope returned for every 2xx response.
type TwitterResponse[T any] struct {
	// Object is the decoded body. For RequestTwitter it is always Unit.
	Object T

	// RawResponse is the response body exactly as received.
	RawResponse string

	// RateLimit is nil unless all three X-Rate-Limit-* headers were valid.
	RateLimit *RateLimitStatus
}

// RateLimitStatus holds the quota counters Twitter reports per endpoint.
type RateLimitStatus struct {
	Limit     int
	Remaining int
	Reset     int64 // unix seconds
}

// ResetAt returns Reset as a time.
func (r RateLimitStatus) ResetAt() time.Time {
	return time.Unix(r.Reset, 0)
}

// Exhausted reports whether no calls remain in the current window.
func (r RateLimitStatus) Exhausted() bool {
	return r.Remaining <= 0
}

// ErrorCode is a single entry of a Twitter error payload.
type ErrorCode struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
