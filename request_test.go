package twitter

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRequestQueryMethods(t *testing.T) {
	for _, method := range []string{"GET", "DELETE", "HEAD"} {
		t.Run(method, func(t *testing.T) {
			req, err := buildRequest(method, "https://api.twitter.com/1.1/statuses/show.json?id=20&trim_user=true",
				Params("include_entities", "true", "q", "a b&c"))
			require.NoError(t, err)
			require.Nil(t, req.Body)
			require.Empty(t, req.Header.Get("Content-Type"))
			require.Equal(t, "id=20&trim_user=true&include_entities=true&q=a%20b%26c", req.URL.RawQuery)
		})
	}
}

func TestBuildRequestQueryPlusInExistingQuery(t *testing.T) {
	req, err := buildRequest("GET", "https://api.twitter.com/1.1/search/tweets.json?q=a+b", nil)
	require.NoError(t, err)
	require.Equal(t, "q=a%20b", req.URL.RawQuery)
}

func TestBuildRequestLowercaseMethod(t *testing.T) {
	req, err := buildRequest("get", "https://api.twitter.com/1.1/x.json", Params("a", "1"))
	require.NoError(t, err)
	require.Equal(t, "GET", req.Method)
	require.Equal(t, "a=1", req.URL.RawQuery)
}

func TestBuildRequestFormBody(t *testing.T) {
	for _, method := range []string{"POST", "PUT"} {
		t.Run(method, func(t *testing.T) {
			req, err := buildRequest(method, "https://api.twitter.com/1.1/statuses/update.json?include_entities=true",
				Params("status", "Hello Ladies + Gentlemen!", "lat", "37.7"))
			require.NoError(t, err)
			require.Equal(t, formContentType, req.Header.Get("Content-Type"))
			require.Equal(t, "include_entities=true", req.URL.RawQuery)

			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.Equal(t, "status=Hello%20Ladies%20%2B%20Gentlemen%21&lat=37.7", string(body))
			require.Equal(t, int64(len(body)), req.ContentLength)
			require.False(t, req.Chunked())
			require.Equal(t, []Pair{{"status", "Hello Ladies + Gentlemen!"}, {"lat", "37.7"}}, req.Form)
		})
	}
}

func TestBuildRequestFileOnQueryMethodPanics(t *testing.T) {
	content := Params("a", "1").AddFile("media", strings.NewReader("data"))
	for _, method := range []string{"GET", "DELETE", "HEAD"} {
		t.Run(method, func(t *testing.T) {
			require.Panics(t, func() {
				_, _ = buildRequest(method, "https://upload.twitter.com/1.1/media/upload.json", content)
			})
		})
	}
}

func TestBuildRequestMultipartNotImplemented(t *testing.T) {
	content := Params("a", "1").AddFile("media", strings.NewReader("data"))
	_, err := buildRequest("POST", "https://upload.twitter.com/1.1/media/upload.json", content)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMultipartNotImplemented))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, KindUnimplemented, he.Kind)
}

func TestBuildRequestStream(t *testing.T) {
	t.Run("known length is fixed", func(t *testing.T) {
		req, err := buildRequest("POST", "https://upload.twitter.com/1.1/media/upload.json",
			NewStream("image/png", strings.NewReader("png-bytes"), 9))
		require.NoError(t, err)
		require.Equal(t, "image/png", req.Header.Get("Content-Type"))
		require.Equal(t, int64(9), req.ContentLength)
		require.False(t, req.Chunked())
	})

	t.Run("unknown length is chunked", func(t *testing.T) {
		req, err := buildRequest("POST", "https://upload.twitter.com/1.1/media/upload.json",
			NewStream("application/octet-stream", strings.NewReader("stream"), UnknownLength))
		require.NoError(t, err)
		require.Equal(t, UnknownLength, req.ContentLength)
		require.True(t, req.Chunked())
	})

	t.Run("ignored on query methods", func(t *testing.T) {
		req, err := buildRequest("GET", "https://api.twitter.com/1.1/x.json?a=1",
			NewStream("text/plain", strings.NewReader("x"), 1))
		require.NoError(t, err)
		require.Nil(t, req.Body)
		require.Equal(t, "a=1", req.URL.RawQuery)
	})
}

func TestBuildRequestInvalidURL(t *testing.T) {
	for _, raw := range []string{"://bad", "relative/path", "http://[::1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := buildRequest("GET", raw, nil)
			var he *HTTPError
			require.ErrorAs(t, err, &he)
			require.Equal(t, KindInvalidURL, he.Kind)
		})
	}
}

func TestParams(t *testing.T) {
	p := Params("a", "1", "b", "2")
	require.Equal(t, KeyValuePairs{{Name: "a", Value: Text("1")}, {Name: "b", Value: Text("2")}}, p)
	require.Panics(t, func() { Params("a") })
}

func TestParamsFromStruct(t *testing.T) {
	opts := struct {
		ScreenName string `url:"screen_name"`
		Count      int    `url:"count,omitempty"`
		TrimUser   bool   `url:"trim_user"`
		Cursor     string `url:"cursor,omitempty"`
	}{ScreenName: "twitterapi", Count: 20, TrimUser: true}

	p, err := ParamsFromStruct(opts)
	require.NoError(t, err)
	require.Equal(t, []Pair{{"count", "20"}, {"screen_name", "twitterapi"}, {"trim_user", "true"}}, p.textPairs())
}
