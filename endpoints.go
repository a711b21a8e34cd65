package twitter

import "strings"

const (
	// APIBase is the root of the v1.1 REST API.
	APIBase = "https://api.twitter.com/1.1"

	// UploadBase is the root of the media upload API.
	UploadBase = "https://upload.twitter.com/1.1"

	// BearerTokenURL issues app-only bearer tokens.
	BearerTokenURL = "https://api.twitter.com/oauth2/token"
)

// EndpointURL returns the v1.1 URL for a resource path such as
// "statuses/update". The ".json" suffix is added when missing.
func EndpointURL(path string) string {
	path = strings.TrimPrefix(path, "/")
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	return APIBase + "/" + path
}

// endpointKey identifies an endpoint for rate-limit bookkeeping and metrics.
func endpointKey(method, path string) string {
	return method + " " + path
}
