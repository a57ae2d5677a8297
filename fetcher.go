package lauds

import (
	"context"
	"time"
)

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// PageSource acquires the breviary pages for a date.
// Implementations may drive a browser to select the date on the site.
type PageSource interface {
	// FetchPages returns the Morning Prayer and readings pages for date.
	FetchPages(ctx context.Context, date time.Time) (*Pages, error)

	// Close releases resources held by the source.
	Close() error
}

// SnapshotStore keeps raw pages so that records can be re-extracted
// without fetching again.
type SnapshotStore interface {
	// SaveSnapshot stores the pages for a date, replacing earlier ones.
	SaveSnapshot(ctx context.Context, date time.Time, pages *Pages) error

	// LoadSnapshot returns the stored pages for a date.
	// Returns ENOTFOUND if no snapshot exists.
	LoadSnapshot(ctx context.Context, date time.Time) (*Pages, error)
}

// RateLimiter spaces out requests to the source site.
type RateLimiter interface {
	Wait(ctx context.Context) error
}
