package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"talenthub/matching-service/internal/config"
)

// ResumeFetcher retrieves a resume document by URL and extracts plain text
// from it. This is the only I/O hop in the deterministic scoring path.
type ResumeFetcher interface {
	FetchText(ctx context.Context, resumeURL string) (string, error)
}

type resumeFetcher struct {
	client        *http.Client
	cacheDir      string
	maxBytes      int64
	minTextLength int
}

func NewResumeFetcher(cfg config.FetcherConfig) ResumeFetcher {
	return &resumeFetcher{
		client:        &http.Client{Timeout: cfg.Timeout},
		cacheDir:      cfg.CacheDir,
		maxBytes:      cfg.MaxBytes,
		minTextLength: cfg.MinTextLength,
	}
}

// FetchText implements ResumeFetcher. Fetched documents are cached on disk
// keyed by URL hash so repeated scoring of the same applicant does not re-hit
// the binary store.
func (f *resumeFetcher) FetchText(ctx context.Context, resumeURL string) (string, error) {
	data, err := f.readCached(resumeURL)
	if err != nil {
		data, err = f.download(ctx, resumeURL)
		if err != nil {
			return "", err
		}
		f.writeCache(resumeURL, data)
	}

	text, err := extractPDFText(data)
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if len(text) < f.minTextLength {
		// Implausibly short output usually means a scanned or image-only
		// document. Not fatal: callers score on a best-effort basis.
		log.Printf("⚠️  Resume text implausibly short (%d chars) for %s\n", len(text), resumeURL)
	}

	return text, nil
}

func (f *resumeFetcher) download(ctx context.Context, resumeURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resumeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid resume URL: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("resume fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read resume body: %w", err)
	}

	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("resume exceeds maximum size of %d bytes", f.maxBytes)
	}

	return data, nil
}

func (f *resumeFetcher) cachePath(resumeURL string) string {
	sum := sha256.Sum256([]byte(resumeURL))
	return filepath.Join(f.cacheDir, hex.EncodeToString(sum[:])+".pdf")
}

func (f *resumeFetcher) readCached(resumeURL string) ([]byte, error) {
	if f.cacheDir == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(f.cachePath(resumeURL))
}

func (f *resumeFetcher) writeCache(resumeURL string, data []byte) {
	if f.cacheDir == "" {
		return
	}

	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		log.Printf("⚠️  Failed to create resume cache dir: %v\n", err)
		return
	}

	if err := os.WriteFile(f.cachePath(resumeURL), data, 0o644); err != nil {
		log.Printf("⚠️  Failed to cache resume: %v\n", err)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

// CleanText trims whitespace and collapses blank lines.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
