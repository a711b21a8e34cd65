package twitter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ApplicationOnlyAuthenticator authenticates with a static app-only bearer
// token. A literal with only AccessToken set uses the default Config.
type ApplicationOnlyAuthenticator struct {
	AccessToken string

	client
}

// NewApplicationOnlyAuthenticator creates an authenticator for accessToken.
func NewApplicationOnlyAuthenticator(accessToken string, cfg Config) *ApplicationOnlyAuthenticator {
	return &ApplicationOnlyAuthenticator{
		AccessToken: accessToken,
		client:      newClient(cfg),
	}
}

// ObtainBearerToken exchanges consumer credentials for an app-only bearer
// token using the client credentials grant, and returns an authenticator
// holding it.
func ObtainBearerToken(ctx context.Context, consumerKey, consumerSecret string, cfg Config) (*ApplicationOnlyAuthenticator, error) {
	cfg.defaults()

	cc := clientcredentials.Config{
		ClientID:     consumerKey,
		ClientSecret: consumerSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)

	tok, err := cc.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtain bearer token: %w", err)
	}
	if tok.TokenType != "" && !strings.EqualFold(tok.TokenType, "bearer") {
		return nil, fmt.Errorf("obtain bearer token: unexpected token type %q", tok.TokenType)
	}
	cfg.Logger.Debug("bearer token obtained", slog.String("token_url", cfg.TokenURL))
	return NewApplicationOnlyAuthenticator(tok.AccessToken, cfg), nil
}

// AuthorizationHeader implements Authenticator.
func (a *ApplicationOnlyAuthenticator) AuthorizationHeader(*Request) (string, error) {
	return "Bearer " + a.AccessToken, nil
}

// SendRequest implements Authenticator.
func (a *ApplicationOnlyAuthenticator) SendRequest(ctx context.Context, method, url string, content RequestContent) (*Response, error) {
	_, resp, err := a.dispatch(ctx, method, url, content, a)
	return resp, err
}

// RequestTwitter implements Authenticator.
func (a *ApplicationOnlyAuthenticator) RequestTwitter(ctx context.Context, method, url string, content RequestContent) (*TwitterResponse[Unit], error) {
	return a.request(ctx, method, url, content, a)
}
