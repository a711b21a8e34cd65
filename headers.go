package twitter

import "strings"

// defaultUserAgent is sent when Config.UserAgent is empty.
const defaultUserAgent = "go-twitter-rest/1.0"

// restHeaderOrder is the header order used by StealthTransport for TLS
// fingerprint consistency.
var restHeaderOrder = []string{
	"authorization",
	"content-type",
	"content-length",
	"user-agent",
	"accept",
	"accept-language",
	"accept-encoding",
}

// lowerHeaders flattens h into the lower-case single-value map the stealth
// client expects. Repeated values are joined with ", ".
func lowerHeaders(h map[string][]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) == 0 {
			continue
		}
		out[strings.ToLower(k)] = strings.Join(vs, ", ")
	}
	return out
}
