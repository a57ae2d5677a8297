package mock

import (
	"context"
	"time"

	"github.com/fwojciec/lauds"
)

var _ lauds.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of lauds.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ lauds.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of lauds.PageSource.
type PageSource struct {
	FetchPagesFn func(ctx context.Context, date time.Time) (*lauds.Pages, error)
	CloseFn      func() error
}

func (s *PageSource) FetchPages(ctx context.Context, date time.Time) (*lauds.Pages, error) {
	return s.FetchPagesFn(ctx, date)
}

func (s *PageSource) Close() error {
	return s.CloseFn()
}

var _ lauds.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of lauds.SnapshotStore.
type SnapshotStore struct {
	SaveSnapshotFn func(ctx context.Context, date time.Time, pages *lauds.Pages) error
	LoadSnapshotFn func(ctx context.Context, date time.Time) (*lauds.Pages, error)
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, date time.Time, pages *lauds.Pages) error {
	return s.SaveSnapshotFn(ctx, date, pages)
}

func (s *SnapshotStore) LoadSnapshot(ctx context.Context, date time.Time) (*lauds.Pages, error) {
	return s.LoadSnapshotFn(ctx, date)
}

var _ lauds.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of lauds.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.WaitFn(ctx)
}
