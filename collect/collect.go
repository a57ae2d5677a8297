// Package collect orchestrates record collection over a set of dates.
// It coordinates page acquisition, snapshotting, extraction, and storage,
// bounding concurrency and spacing out requests to the source site.
package collect

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lauds"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of dates fetched at once when the
// Collector does not set one. The site serves one browser session poorly,
// so this stays low.
const DefaultConcurrency = 2

// Collector fetches, extracts, and stores the records for a set of dates.
// Snapshots and RateLimiter are optional.
type Collector struct {
	Source      lauds.PageSource
	Extractor   lauds.Extractor
	Records     lauds.RecordService
	Snapshots   lauds.SnapshotStore
	RateLimiter lauds.RateLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a collection run.
type Result struct {
	// Saved counts records created or replaced.
	Saved int
	// Unchanged counts records whose content matched the stored record.
	Unchanged int
	// Failed counts dates whose pages could not be acquired or stored.
	Failed int
	// Fallbacks counts the sections replaced by placeholders across all
	// saved records.
	Fallbacks int
	// Bytes is the combined size of the acquired pages.
	Bytes int
}

// ProgressEvent reports progress during a collection run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Date      time.Time
	Failures  int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting collection progress.
type ProgressFunc func(event ProgressEvent)

// loadFunc acquires the pages for one date.
type loadFunc func(ctx context.Context, date time.Time) (*lauds.Pages, error)

// dateResult holds the outcome of processing a single date.
type dateResult struct {
	date   time.Time
	record *lauds.Record
	bytes  int
	err    error
}

// Collect fetches the pages for every date, keeps a snapshot of them,
// extracts a record, and stores it. A date that fails does not abort the
// others. The progress callback, if provided, receives events as
// collection proceeds.
func (c *Collector) Collect(ctx context.Context, dates []time.Time, progress ProgressFunc) (*Result, error) {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	return c.run(ctx, dates, progress, func(ctx context.Context, date time.Time) (*lauds.Pages, error) {
		if c.RateLimiter != nil {
			if err := c.RateLimiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		pages, err := FetchPagesWithRetryDelays(ctx, date, c.Source.FetchPages, nil, delays)
		if err != nil {
			return nil, err
		}
		if c.Snapshots != nil {
			if err := c.Snapshots.SaveSnapshot(ctx, date, pages); err != nil {
				return nil, fmt.Errorf("save snapshot: %w", err)
			}
		}
		return pages, nil
	})
}

// Reextract rebuilds the records for dates from stored snapshots without
// contacting the source site. Dates without a snapshot count as failed.
func (c *Collector) Reextract(ctx context.Context, dates []time.Time, progress ProgressFunc) (*Result, error) {
	if c.Snapshots == nil {
		return nil, lauds.Errorf(lauds.EINVALID, "snapshot store required")
	}
	return c.run(ctx, dates, progress, c.Snapshots.LoadSnapshot)
}

func (c *Collector) run(ctx context.Context, dates []time.Time, progress ProgressFunc, load loadFunc) (*Result, error) {
	result := &Result{}
	if len(dates) == 0 {
		return result, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan dateResult, len(dates))

	var completed atomic.Int64
	total := len(dates)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, date := range dates {
			g.Go(func() error {
				resultCh <- c.processDate(gctx, date, load)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Records are stored from this goroutine only.
	for r := range resultCh {
		if r.err == nil {
			var unchanged bool
			unchanged, r.err = c.store(ctx, r.record)
			if unchanged {
				result.Unchanged++
			}
			if r.err == nil && !unchanged {
				result.Saved++
				result.Fallbacks += len(r.record.Failures)
			}
		}
		n := int(completed.Add(1))

		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: n,
					Total:     total,
					Date:      r.date,
					Error:     r.err,
				})
			}
			continue
		}

		result.Bytes += r.bytes
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: n,
				Total:     total,
				Date:      r.date,
				Failures:  len(r.record.Failures),
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// processDate acquires and extracts the record for a single date.
func (c *Collector) processDate(ctx context.Context, date time.Time, load loadFunc) dateResult {
	result := dateResult{date: date}

	pages, err := load(ctx, date)
	if err != nil {
		result.err = err
		return result
	}

	record := c.Extractor.Extract(date, pages)
	hash, err := ContentHash(record)
	if err != nil {
		result.err = err
		return result
	}
	record.ContentHash = hash

	result.record = record
	result.bytes = pages.Size()
	return result
}

// store saves record unless the stored record for its date has the same
// content hash.
func (c *Collector) store(ctx context.Context, record *lauds.Record) (unchanged bool, err error) {
	existing, err := c.Records.FindRecordByDate(ctx, record.Date)
	if err != nil && lauds.ErrorCode(err) != lauds.ENOTFOUND {
		return false, err
	}
	if existing != nil && existing.ContentHash == record.ContentHash {
		return true, nil
	}
	return false, c.Records.CreateRecord(ctx, record)
}

// ContentHash computes an xxhash of the extracted content of a record.
// Storage fields (ID, ContentHash, CreatedAt) do not contribute.
func ContentHash(r *lauds.Record) (string, error) {
	b, err := r.MarshalContent()
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b)), nil
}
