package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lauds"
)

// Ensure LoggingRecordService implements lauds.RecordService.
var _ lauds.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging of writes.
// Reads are delegated silently.
type LoggingRecordService struct {
	next   lauds.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next lauds.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the stored record.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, record *lauds.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store record",
			"date", record.Date.Format(lauds.DateLayout),
			"hash", record.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

// FindRecordByDate delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByDate(ctx context.Context, date time.Time) (*lauds.Record, error) {
	return s.next.FindRecordByDate(ctx, date)
}

// FindRecords delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter lauds.RecordFilter) ([]*lauds.Record, error) {
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service and logs the removal.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, date time.Time) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete record",
			"date", date.Format(lauds.DateLayout),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, date)
}

// CountFailures delegates to the wrapped service.
func (s *LoggingRecordService) CountFailures(ctx context.Context, filter lauds.RecordFilter) (map[string]int, error) {
	return s.next.CountFailures(ctx, filter)
}
