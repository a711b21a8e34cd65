package twitter

import "context"

// Authenticator signs and sends requests to Twitter. Implementations hold
// only immutable credentials and are safe for concurrent use.
type Authenticator interface {
	// AuthorizationHeader returns the Authorization header value for req.
	// It performs no I/O.
	AuthorizationHeader(req *Request) (string, error)

	// SendRequest builds, authorizes and sends a request and returns the raw
	// response, which the caller must close. Failures are *HTTPError, or a
	// signing error from the authenticator.
	SendRequest(ctx context.Context, method, url string, content RequestContent) (*Response, error)

	// RequestTwitter sends a request and interprets the response. Errors are
	// *HTTPError or *ErrorResponse.
	RequestTwitter(ctx context.Context, method, url string, content RequestContent) (*TwitterResponse[Unit], error)
}

var (
	_ Authenticator = (*ApplicationOnlyAuthenticator)(nil)
	_ Authenticator = (*OAuthAuthenticator)(nil)
)
