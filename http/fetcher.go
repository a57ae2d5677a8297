// Package http provides plain HTTP implementations of lauds.Fetcher and
// lauds.PageSource. The breviary serves the current day's pages without
// JavaScript, but the date can only be chosen through a browser session;
// see rod.Source for that.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/fwojciec/lauds"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent is sent with every request. The site rejects some
// non-browser agents.
const DefaultUserAgent = "Mozilla/5.0"

// DefaultMaxPageSize bounds the bytes read from one response.
const DefaultMaxPageSize = 4 << 20

// Ensure Fetcher implements lauds.Fetcher at compile time.
var _ lauds.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over HTTP and returns them as UTF-8. Cookies set
// by the site are kept for the life of the Fetcher.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxPageSize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxPageSize sets the largest accepted response body.
func WithMaxPageSize(n int64) Option {
	return func(f *Fetcher) {
		f.maxPageSize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxPageSize: DefaultMaxPageSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	// cookiejar.New(nil) cannot fail.
	jar, _ := cookiejar.New(nil)
	f.client = &http.Client{
		Timeout: f.timeout,
		Jar:     jar,
	}

	return f
}

// Fetch returns the page at url decoded to UTF-8 using the charset declared
// by the response or the document. A 404 is ENOTFOUND.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", lauds.Errorf(lauds.ENOTFOUND, "page not found: %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxPageSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > f.maxPageSize {
		return "", lauds.Errorf(lauds.EINVALID, "page exceeds %d bytes: %s", f.maxPageSize, url)
	}

	r, err := charset.NewReader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", url, err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", url, err)
	}
	return string(decoded), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
