package twitter

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gomodule/oauth1/oauth"
	"github.com/google/uuid"
)

// SigningRequest is everything an OAuth 1.0a signature is computed over.
type SigningRequest struct {
	Method string
	URL    *url.URL

	// Params are the decoded query and form parameters of the request.
	Params []Pair

	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

// Signer produces an OAuth 1.0a Authorization header value.
type Signer interface {
	Sign(r SigningRequest) (string, error)
}

// OAuth1Signer signs with github.com/gomodule/oauth1. It is the default
// Signer.
type OAuth1Signer struct{}

// Sign implements Signer.
func (OAuth1Signer) Sign(r SigningRequest) (string, error) {
	c := oauth.Client{
		Credentials:     oauth.Credentials{Token: r.ConsumerKey, Secret: r.ConsumerSecret},
		SignatureMethod: oauth.HMACSHA1,
	}
	var token *oauth.Credentials
	if r.Token != "" {
		token = &oauth.Credentials{Token: r.Token, Secret: r.TokenSecret}
	}

	// Params already hold the decoded query, so the URL is signed without it.
	u := *r.URL
	u.RawQuery = ""
	form := make(url.Values, len(r.Params))
	for _, p := range r.Params {
		form.Add(p.Key, p.Value)
	}

	h := make(http.Header)
	if err := c.SetAuthorizationHeader(h, token, strings.ToUpper(r.Method), &u, form); err != nil {
		return "", fmt.Errorf("oauth1 sign: %w", err)
	}
	return h.Get("Authorization"), nil
}

// HMACSigner signs with HMAC-SHA1 from an injectable clock and nonce source.
// Now and Nonce default to the wall clock and a random UUID; set them to
// reproduce a known signature.
type HMACSigner struct {
	Now   func() time.Time
	Nonce func() string
}

// Sign implements Signer.
func (s HMACSigner) Sign(r SigningRequest) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	nonce := newNonce
	if s.Nonce != nil {
		nonce = s.Nonce
	}

	oauth := []Pair{
		{Key: "oauth_consumer_key", Value: r.ConsumerKey},
		{Key: "oauth_nonce", Value: nonce()},
		{Key: "oauth_signature_method", Value: "HMAC-SHA1"},
		{Key: "oauth_timestamp", Value: strconv.FormatInt(now().Unix(), 10)},
	}
	if r.Token != "" {
		oauth = append(oauth, Pair{Key: "oauth_token", Value: r.Token})
	}
	oauth = append(oauth, Pair{Key: "oauth_version", Value: "1.0"})

	all := make([]Pair, 0, len(r.Params)+len(oauth))
	all = append(all, r.Params...)
	all = append(all, oauth...)
	base := signatureBase(r.Method, r.URL, all)

	key := percentEncode(r.ConsumerSecret) + "&" + percentEncode(r.TokenSecret)
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	oauth = append(oauth, Pair{Key: "oauth_signature", Value: sig})
	sort.Slice(oauth, func(i, j int) bool { return oauth[i].Key < oauth[j].Key })

	var b strings.Builder
	b.WriteString("OAuth ")
	for i, p := range oauth {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(percentEncode(p.Key))
		b.WriteString(`="`)
		b.WriteString(percentEncode(p.Value))
		b.WriteByte('"')
	}
	return b.String(), nil
}

func newNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// signatureBase builds the OAuth 1.0a signature base string (RFC 5849 3.4.1).
func signatureBase(method string, u *url.URL, params []Pair) string {
	encoded := make([]Pair, len(params))
	for i, p := range params {
		encoded[i] = Pair{Key: percentEncode(p.Key), Value: percentEncode(p.Value)}
	}
	sort.Slice(encoded, func(i, j int) bool {
		if encoded[i].Key != encoded[j].Key {
			return encoded[i].Key < encoded[j].Key
		}
		return encoded[i].Value < encoded[j].Value
	})

	var ps strings.Builder
	for i, p := range encoded {
		if i > 0 {
			ps.WriteByte('&')
		}
		ps.WriteString(p.Key)
		ps.WriteByte('=')
		ps.WriteString(p.Value)
	}

	return strings.ToUpper(method) + "&" + percentEncode(baseStringURI(u)) + "&" + percentEncode(ps.String())
}

// baseStringURI is the request URL without query or fragment, with a
// lower-case scheme and host and without the default port.
func baseStringURI(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && !(scheme == "http" && port == "80") && !(scheme == "https" && port == "443") {
		host += ":" + port
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path
}
