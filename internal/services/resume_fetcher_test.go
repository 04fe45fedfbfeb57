package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub/matching-service/internal/config"
)

func newTestFetcher(t *testing.T, maxBytes int64) ResumeFetcher {
	t.Helper()
	return NewResumeFetcher(config.FetcherConfig{
		Timeout:       5 * time.Second,
		MaxBytes:      maxBytes,
		CacheDir:      t.TempDir(),
		MinTextLength: 100,
	})
}

func TestResumeFetcher_NotFoundIsAnError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	fetcher := newTestFetcher(t, 1024)

	_, err := fetcher.FetchText(context.Background(), server.URL+"/gone.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestResumeFetcher_RejectsOversizedDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 2048)))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, 1024)

	_, err := fetcher.FetchText(context.Background(), server.URL+"/huge.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestResumeFetcher_RejectsNonPDFContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not a PDF</html>"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, 1024)

	_, err := fetcher.FetchText(context.Background(), server.URL+"/cv.pdf")
	assert.Error(t, err)
}

func TestResumeFetcher_CachesDownloadedDocuments(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("not a pdf, but cached anyway"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, 1024)
	url := server.URL + "/cv.pdf"

	// Both calls fail at PDF extraction, but the second must be served from
	// the on-disk cache.
	_, _ = fetcher.FetchText(context.Background(), url)
	_, _ = fetcher.FetchText(context.Background(), url)

	assert.Equal(t, 1, hits)
}

func TestCleanText(t *testing.T) {
	input := "  John Doe  \n\n\n  Senior Engineer \n\n\nGo, SQL\n"
	assert.Equal(t, "John Doe\nSenior Engineer\nGo, SQL", CleanText(input))

	assert.Equal(t, "", CleanText("   \n \n  "))
}
