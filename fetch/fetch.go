// Package fetch downloads web pages and extracts their main article.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultUserAgent    = "Mozilla/5.0 (compatible; readmetrics/1.0)"
	defaultMaxBodyBytes = 10 << 20
)

// Fetcher extracts the title and readable text of web articles.
type Fetcher struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodyBytes caps the size of a response body. A larger page is a
// ParseFailure wrapping ErrBodyTooLarge rather than a truncated parse.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient:   &http.Client{Timeout: defaultTimeout},
		userAgent:    defaultUserAgent,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NormalizeURL trims rawURL and re-encodes it so that spaces and non-ASCII
// characters in the path are percent-escaped.
func NormalizeURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL %q: unsupported scheme", rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return u, nil
}

// Fetch downloads rawURL and extracts its article. Every error is a
// *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, string, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return "", "", &FetchError{Kind: Other, URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", "", &FetchError{Kind: Other, URL: rawURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", "", &FetchError{Kind: Other, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", "", &FetchError{Kind: NotFound, URL: rawURL, StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", "", &FetchError{
			Kind:       Other,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var body io.Reader = resp.Body
	if f.maxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBodyBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		// Timing out while reading the body is a transport failure.
		return "", "", &FetchError{Kind: Other, URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}
	if f.maxBodyBytes > 0 && int64(len(data)) > f.maxBodyBytes {
		return "", "", &FetchError{
			Kind: ParseFailure,
			URL:  rawURL,
			Err:  fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, f.maxBodyBytes),
		}
	}

	article, err := readability.FromReader(bytes.NewReader(data), u)
	if err != nil {
		return "", "", &FetchError{Kind: ParseFailure, URL: rawURL, Err: err}
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", "", &FetchError{Kind: ParseFailure, URL: rawURL, Err: errors.New("no text content")}
	}
	return strings.TrimSpace(article.Title), text, nil
}
