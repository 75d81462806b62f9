package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcherSendsBrowserHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	body, err := NewHTTPFetcher(server.Client()).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", body)
}

func TestHTTPFetcherNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(nil).Fetch(context.Background(), server.URL+"/jobs/")

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, server.URL+"/jobs/", fetchErr.URL)
	assert.Equal(t, "HTTP 404: Not Found", fetchErr.Error())
}

func TestHTTPFetcherNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPFetcher(nil).Fetch(context.Background(), url)

	assert.Error(t, err)
}

func TestRateLimitedFetcherSpacesRequests(t *testing.T) {
	inner := &timedFetcher{}
	f := NewRateLimitedFetcher(inner, 20)

	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), "http://careers.test/job/x/")
		require.NoError(t, err)
	}

	require.Len(t, inner.starts, 3)
	assert.GreaterOrEqual(t, inner.starts[2].Sub(inner.starts[0]), 90*time.Millisecond)
}

func TestRateLimitedFetcherHonoursCancel(t *testing.T) {
	inner := &timedFetcher{}
	f := NewRateLimitedFetcher(inner, 0.001)
	_, err := f.Fetch(context.Background(), "http://careers.test/job/x/")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Fetch(ctx, "http://careers.test/job/x/")

	assert.Error(t, err)
	assert.Len(t, inner.starts, 1)
}
