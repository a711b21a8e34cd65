package twitter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Decoder parses a response body into v.
type Decoder interface {
	Decode(data []byte, v any) error
}

// JSONDecoder decodes with encoding/json.
type JSONDecoder struct{}

func (JSONDecoder) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ParseJSON decodes text into a new T.
func ParseJSON[T any](text string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(text), &v)
	return v, err
}

// ParseResponse decodes the raw body of resp into T. A nil dec means
// JSONDecoder.
func ParseResponse[T any](resp *TwitterResponse[Unit], dec Decoder) (*TwitterResponse[T], error) {
	if dec == nil {
		dec = JSONDecoder{}
	}
	var obj T
	if err := dec.Decode([]byte(resp.RawResponse), &obj); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &TwitterResponse[T]{
		Object:      obj,
		RawResponse: resp.RawResponse,
		RateLimit:   resp.RateLimit,
	}, nil
}

// interpretResponse turns the result of a send into the success envelope or
// an error. Non-2xx responses always yield *ErrorResponse, even when the body
// is not a valid error payload.
func interpretResponse(resp *Response, err error) (*TwitterResponse[Unit], error) {
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	rl := parseRateLimit(resp.Header)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &HTTPError{Kind: KindNetwork, Err: fmt.Errorf("read response body: %w", err)}
	}
	body := string(raw)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &TwitterResponse[Unit]{RawResponse: body, RateLimit: rl}, nil
	}
	return nil, &ErrorResponse{
		Status:      resp.StatusCode,
		Errors:      parseErrorPayload(raw),
		RawResponse: body,
		RateLimit:   rl,
	}
}

// parseRateLimit returns nil unless all three X-Rate-Limit-* headers parse.
func parseRateLimit(h http.Header) *RateLimitStatus {
	limit, err := strconv.Atoi(h.Get("X-Rate-Limit-Limit"))
	if err != nil {
		return nil
	}
	remaining, err := strconv.Atoi(h.Get("X-Rate-Limit-Remaining"))
	if err != nil {
		return nil
	}
	reset, err := strconv.ParseInt(h.Get("X-Rate-Limit-Reset"), 10, 64)
	if err != nil {
		return nil
	}
	return &RateLimitStatus{Limit: limit, Remaining: remaining, Reset: reset}
}

// errorPayload matches both shapes Twitter uses: {"errors":[...]} and
// {"error":[...]} or {"error":"message"}.
type errorPayload struct {
	Errors []ErrorCode      `json:"errors"`
	Error  *json.RawMessage `json:"error"`
}

// parseErrorPayload returns nil when the body is not a recognizable error
// payload.
func parseErrorPayload(body []byte) []ErrorCode {
	var p errorPayload
	if json.Unmarshal(body, &p) != nil {
		return nil
	}
	if p.Errors != nil {
		return p.Errors
	}
	if p.Error == nil {
		return nil
	}

	var list []ErrorCode
	if json.Unmarshal(*p.Error, &list) == nil {
		return list
	}
	var msg string
	if json.Unmarshal(*p.Error, &msg) == nil && msg != "" {
		return []ErrorCode{{Message: msg}}
	}
	return nil
}
