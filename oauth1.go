package twitter

import "context"

// OAuthAuthenticator authenticates in user context with OAuth 1.0a. Every
// request is signed afresh with a new nonce and timestamp. A literal with
// only the credentials set uses the default Config.
type OAuthAuthenticator struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string

	signer Signer
	client
}

// NewOAuthAuthenticator creates a user-context authenticator.
func NewOAuthAuthenticator(consumerKey, consumerSecret, accessToken, accessTokenSecret string, cfg Config) *OAuthAuthenticator {
	cfg.defaults()
	return &OAuthAuthenticator{
		ConsumerKey:       consumerKey,
		ConsumerSecret:    consumerSecret,
		AccessToken:       accessToken,
		AccessTokenSecret: accessTokenSecret,
		signer:            cfg.Signer,
		client:            newClient(cfg),
	}
}

// AuthorizationHeader implements Authenticator. The signature covers the
// query string and any form body; stream bodies are not signed.
func (a *OAuthAuthenticator) AuthorizationHeader(req *Request) (string, error) {
	signer := a.signer
	if signer == nil {
		signer = OAuth1Signer{}
	}
	params := queryPairs(req.URL.RawQuery)
	params = append(params, req.Form...)
	return signer.Sign(SigningRequest{
		Method:         req.Method,
		URL:            req.URL,
		Params:         params,
		ConsumerKey:    a.ConsumerKey,
		ConsumerSecret: a.ConsumerSecret,
		Token:          a.AccessToken,
		TokenSecret:    a.AccessTokenSecret,
	})
}

// SendRequest implements Authenticator.
func (a *OAuthAuthenticator) SendRequest(ctx context.Context, method, url string, content RequestContent) (*Response, error) {
	_, resp, err := a.dispatch(ctx, method, url, content, a)
	return resp, err
}

// RequestTwitter implements Authenticator.
func (a *OAuthAuthenticator) RequestTwitter(ctx context.Context, method, url string, content RequestContent) (*TwitterResponse[Unit], error) {
	return a.request(ctx, method, url, content, a)
}
