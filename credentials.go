package twitter

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credentials holds the secrets needed by either authenticator variant.
type Credentials struct {
	ConsumerKey       string `yaml:"consumer_key"`
	ConsumerSecret    string `yaml:"consumer_secret"`
	AccessToken       string `yaml:"access_token"`
	AccessTokenSecret string `yaml:"access_token_secret"`
	BearerToken       string `yaml:"bearer_token"`
}

// credentialEnv maps environment variables onto Credentials fields.
var credentialEnv = []struct {
	name  string
	field func(*Credentials) *string
}{
	{"TWITTER_CONSUMER_KEY", func(c *Credentials) *string { return &c.ConsumerKey }},
	{"TWITTER_CONSUMER_SECRET", func(c *Credentials) *string { return &c.ConsumerSecret }},
	{"TWITTER_ACCESS_TOKEN", func(c *Credentials) *string { return &c.AccessToken }},
	{"TWITTER_ACCESS_TOKEN_SECRET", func(c *Credentials) *string { return &c.AccessTokenSecret }},
	{"TWITTER_BEARER_TOKEN", func(c *Credentials) *string { return &c.BearerToken }},
}

// LoadCredentials reads a YAML credentials file. Non-empty TWITTER_*
// environment variables override values from the file. An empty path reads
// the environment only.
func LoadCredentials(path string) (*Credentials, error) {
	var c Credentials
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read credentials %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse credentials %s: %w", path, err)
		}
	}
	for _, e := range credentialEnv {
		if v := os.Getenv(e.name); v != "" {
			*e.field(&c) = v
		}
	}
	return &c, nil
}

// Authenticator returns a user-context authenticator when an access token
// pair is present, otherwise an app-only one.
func (c *Credentials) Authenticator(cfg Config) (Authenticator, error) {
	switch {
	case c.AccessToken != "" && c.AccessTokenSecret != "":
		if c.ConsumerKey == "" || c.ConsumerSecret == "" {
			return nil, errors.New("credentials: access token set without consumer key and secret")
		}
		return NewOAuthAuthenticator(c.ConsumerKey, c.ConsumerSecret, c.AccessToken, c.AccessTokenSecret, cfg), nil
	case c.BearerToken != "":
		return NewApplicationOnlyAuthenticator(c.BearerToken, cfg), nil
	}
	return nil, errors.New("credentials: neither access token pair nor bearer token set")
}
