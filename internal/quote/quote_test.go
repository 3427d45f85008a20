package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areuok/areuok/internal/config"
)

func fetcherFor(url string) *Fetcher {
	return New(config.QuoteConfig{URL: url, Timeout: 5 * time.Second})
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hitokoto":"Stay hungry.","from":"speech","from_who":"Steve Jobs"}`))
	}))
	defer srv.Close()

	q, err := fetcherFor(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Stay hungry.", q.Text)
	assert.Equal(t, "Steve Jobs", q.Author)
}

func TestFetch_AuthorFallsBackToSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hitokoto":"text","from":"some book","from_who":""}`))
	}))
	defer srv.Close()

	q, err := fetcherFor(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "some book", q.Author)
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fetcherFor(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFallback(t *testing.T) {
	q := Fallback()
	assert.NotEmpty(t, q.Text)
	assert.NotEmpty(t, q.Author)
}
