package pipeline

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-word-fetch/pkg/words"
)

func TestFetchURLWords(t *testing.T) {
	gotUA := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA <- r.Header.Get("User-Agent")
		io.WriteString(w, "alpha beta\ngamma")
	}))
	defer ts.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	actual, err := FetchURLWords(context.Background(), Options{
		URL:           ts.URL,
		ClientTimeout: time.Second,
		UserAgent:     "pipeline-test/1.0",
		Logger:        logrus.NewEntry(logger),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, actual)
	assert.Equal(t, "pipeline-test/1.0", <-gotUA)
}

func TestFetchURLWords_HTMLFormat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, "<html><body><h1>Title</h1><p>body text</p></body></html>")
	}))
	defer ts.Close()

	actual, err := FetchURLWords(context.Background(), Options{URL: ts.URL, Format: words.FormatHTML})
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "body", "text"}, actual)
}

func TestFetchURLWords_OverallTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	start := time.Now()
	_, err := FetchURLWords(context.Background(), Options{
		URL:            ts.URL,
		ClientTimeout:  10 * time.Second,
		OverallTimeout: 50 * time.Millisecond,
	})

	var retrievalErr *words.RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchURLWords_InvalidFormat(t *testing.T) {
	_, err := FetchURLWords(context.Background(), Options{URL: "https://example.com", Format: "pdf"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "WordFetcherの初期化エラー"))
}
