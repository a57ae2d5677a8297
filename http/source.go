package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/lauds"
)

// Page paths relative to the site root.
const (
	MorningPrayerPath = "breviario.php?s=lodi"
	ReadingsPath      = "letture.php?s=letture"
)

// DefaultMinPageSize is the size below which a response is taken for an
// error or consent page rather than content.
const DefaultMinPageSize = 5000

// Ensure Source implements lauds.PageSource at compile time.
var _ lauds.PageSource = (*Source)(nil)

// Source fetches the Morning Prayer and readings pages with plain GET
// requests. The site serves whatever date the session last selected, which
// for a fresh client is today, so the requested date is not honored.
type Source struct {
	fetcher     lauds.Fetcher
	baseURL     string
	minPageSize int
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithBaseURL sets the site root. Defaults to lauds.DefaultBaseURL.
func WithBaseURL(u string) SourceOption {
	return func(s *Source) {
		s.baseURL = u
	}
}

// WithMinPageSize sets the smallest accepted page. Defaults to
// DefaultMinPageSize.
func WithMinPageSize(n int) SourceOption {
	return func(s *Source) {
		s.minPageSize = n
	}
}

// NewSource creates a Source that fetches through fetcher.
func NewSource(fetcher lauds.Fetcher, opts ...SourceOption) *Source {
	s := &Source{
		fetcher:     fetcher,
		baseURL:     lauds.DefaultBaseURL,
		minPageSize: DefaultMinPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !strings.HasSuffix(s.baseURL, "/") {
		s.baseURL += "/"
	}
	return s
}

// FetchPages returns the pages currently served by the site. A missing
// Morning Prayer page is an error; a missing readings page leaves
// Pages.Readings empty.
func (s *Source) FetchPages(ctx context.Context, date time.Time) (*lauds.Pages, error) {
	morning, err := s.fetchPage(ctx, MorningPrayerPath)
	if err != nil {
		return nil, fmt.Errorf("morning prayer: %w", err)
	}

	pages := &lauds.Pages{MorningPrayer: morning}
	if readings, err := s.fetchPage(ctx, ReadingsPath); err == nil {
		pages.Readings = readings
	}
	return pages, nil
}

func (s *Source) fetchPage(ctx context.Context, path string) (string, error) {
	html, err := s.fetcher.Fetch(ctx, s.baseURL+path)
	if err != nil {
		return "", err
	}
	if len(html) < s.minPageSize {
		return "", lauds.Errorf(lauds.EINVALID, "page %s too small: %d bytes", path, len(html))
	}
	return html, nil
}

// Close closes the underlying fetcher.
func (s *Source) Close() error {
	return s.fetcher.Close()
}
