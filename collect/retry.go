package collect

import (
	"context"
	"time"

	"github.com/fwojciec/lauds"
)

// FetchFunc is the signature for a page acquisition function.
type FetchFunc func(ctx context.Context, date time.Time) (*lauds.Pages, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchPagesWithRetry acquires the pages for a date with exponential backoff.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
// The logger function, if provided, is called for each retry attempt.
func FetchPagesWithRetry(ctx context.Context, date time.Time, fetch FetchFunc, logger LogFunc) (*lauds.Pages, error) {
	return FetchPagesWithRetryDelays(ctx, date, fetch, logger, DefaultRetryDelays())
}

// FetchPagesWithRetryDelays is like FetchPagesWithRetry but allows
// configurable delays.
func FetchPagesWithRetryDelays(ctx context.Context, date time.Time, fetch FetchFunc, logger LogFunc, delays []time.Duration) (*lauds.Pages, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		pages, err := fetch(ctx, date)
		if err == nil {
			return pages, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", date.Format(lauds.DateLayout), attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
