package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-word-fetch/internal/pipeline"
	"github.com/shouni/go-word-fetch/pkg/words"
)

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"https kept", "https://example.com/a.txt", "https://example.com/a.txt", false},
		{"http kept", "http://example.com/a.txt", "http://example.com/a.txt", false},
		{"missing scheme", "example.com/a.txt", "https://example.com/a.txt", false},
		{"unsupported scheme", "ftp://example.com/a.txt", "", true},
		{"unparsable", "http://[::1", "", true},
		{"surrounding whitespace trimmed", "  example.com/a.txt\n", "https://example.com/a.txt", false},
		{"whitespace only", " \t ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := ensureScheme(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestResolveURL(t *testing.T) {
	u, err := resolveURL([]string{"example.com/arg.txt"}, "https://example.com/flag.txt")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/arg.txt", u)

	u, err = resolveURL(nil, "https://example.com/flag.txt")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/flag.txt", u)

	u, err = resolveURL(nil, "")
	require.NoError(t, err)
	assert.Equal(t, words.DefaultURL, u)

	_, err = resolveURL([]string{"   "}, "")
	assert.ErrorIs(t, err, errEmptyURL)
}

func newStoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/story.txt" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "It was the best of times\nit was the worst of times\n")
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestRunWords(t *testing.T) {
	ts := newStoryServer(t)

	t.Run("prints one word per line", func(t *testing.T) {
		var out bytes.Buffer
		err := runWords(context.Background(), &out, pipeline.Options{URL: ts.URL + "/story.txt", ClientTimeout: time.Second}, false)
		require.NoError(t, err)
		assert.Equal(t, "It\nwas\nthe\nbest\nof\ntimes\nit\nwas\nthe\nworst\nof\ntimes\n", out.String())
	})

	t.Run("count only", func(t *testing.T) {
		var out bytes.Buffer
		err := runWords(context.Background(), &out, pipeline.Options{URL: ts.URL + "/story.txt"}, true)
		require.NoError(t, err)
		assert.Equal(t, "12\n", out.String())
	})

	t.Run("retrieval error is returned", func(t *testing.T) {
		var out bytes.Buffer
		err := runWords(context.Background(), &out, pipeline.Options{URL: ts.URL + "/missing.txt"}, false)

		var retrievalErr *words.RetrievalError
		require.ErrorAs(t, err, &retrievalErr)
		assert.Equal(t, http.StatusNotFound, retrievalErr.StatusCode)
		assert.Empty(t, out.String())
	})
}
