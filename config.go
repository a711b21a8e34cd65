package twitter

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds the collaborators shared by both authenticator variants.
// The zero value is usable.
type Config struct {
	// Transport sends requests. Default: HTTPTransport over HTTPClient.
	Transport Transport

	// HTTPClient is used by the default transport and for bearer token
	// requests. Default: an http.Client with DefaultTimeout.
	HTTPClient *http.Client

	// Logger receives request diagnostics. Default: slog.Default().
	Logger *slog.Logger

	// UserAgent is sent with every request.
	UserAgent string

	// MetricsHook is called once per RequestTwitter call with its outcome.
	MetricsHook func(RequestOutcome)

	// Throttle, if set, records rate-limit exhaustion per endpoint.
	Throttle *Throttle

	// Signer computes OAuth 1.0a authorization headers. Default: OAuth1Signer.
	Signer Signer

	// TokenURL is the app-only bearer token endpoint. Default: BearerTokenURL.
	TokenURL string
}

// DefaultTimeout bounds a whole request when the default HTTP client is used.
const DefaultTimeout = 30 * time.Second

// defaults fills in zero-value config fields.
func (cfg *Config) defaults() {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.Transport == nil {
		cfg.Transport = NewHTTPTransport(cfg.HTTPClient)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Signer == nil {
		cfg.Signer = OAuth1Signer{}
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = BearerTokenURL
	}
}
