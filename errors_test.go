package twitter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestErrorResponseClass(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected ErrorClass
	}{
		{"no errors", `{"data":{"user":{}}}`, ClassNone},
		{"empty errors", `{"errors":[]}`, ClassNone},
		{"rate limited 88", `{"errors":[{"code":88}]}`, ClassRateLimited},
		{"suspended 64", `{"errors":[{"code":64}]}`, ClassSuspended},
		{"locked 326", `{"errors":[{"code":326}]}`, ClassLocked},
		{"csrf 353", `{"errors":[{"code":353}]}`, ClassCSRF},
		{"auth expired 32", `{"errors":[{"code":32}]}`, ClassAuthExpired},
		{"invalid token 89", `{"errors":[{"code":89}]}`, ClassAuthExpired},
		{"blocked 161", `{"errors":[{"code":161}]}`, ClassBlocked},
		{"not authorized 179", `{"errors":[{"code":179}]}`, ClassNotAuthorized},
		{"not authorized 219", `{"errors":[{"code":219}]}`, ClassNotAuthorized},
		{"internal 131", `{"errors":[{"code":131}]}`, ClassInternal},
		{"unknown then known", `{"errors":[{"code":999},{"code":88}]}`, ClassRateLimited},
		{"unknown code", `{"errors":[{"code":999}]}`, ClassNone},
		{"invalid json", `{invalid`, ClassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &ErrorResponse{Status: 403, Errors: parseErrorPayload([]byte(tt.body)), RawResponse: tt.body}
			if got := e.Class(); got != tt.expected {
				t.Fatalf("Class(%s) = %d, want %d", tt.body, got, tt.expected)
			}
		})
	}
}

func TestErrorResponseError(t *testing.T) {
	e := &ErrorResponse{Status: 401, Errors: []ErrorCode{{Code: 32, Message: "Could not authenticate you."}}}
	require.Equal(t, "twitter: HTTP 401: Could not authenticate you. (code 32)", e.Error())
	require.True(t, e.HasCode(32))
	require.False(t, e.HasCode(88))

	bare := &ErrorResponse{Status: 502, RawResponse: "Bad Gateway"}
	require.Equal(t, "twitter: HTTP 502: Bad Gateway", bare.Error())
}

func TestHTTPErrorUnwrap(t *testing.T) {
	cause := errors.New("no such host")
	err := error(&HTTPError{Kind: KindNetwork, Err: cause})
	require.ErrorIs(t, err, cause)
	require.Equal(t, "twitter: network: no such host", err.Error())
	require.Equal(t, "invalid url", KindInvalidURL.String())
}

func TestRateLimitStatusResetAt(t *testing.T) {
	rl := RateLimitStatus{Limit: 15, Remaining: 0, Reset: 1609459200}
	require.True(t, rl.ResetAt().Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, rl.Exhausted())
}
