package mock

import (
	"context"
	"time"

	"github.com/fwojciec/lauds"
)

var _ lauds.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of lauds.RecordService.
type RecordService struct {
	CreateRecordFn     func(ctx context.Context, record *lauds.Record) error
	FindRecordByDateFn func(ctx context.Context, date time.Time) (*lauds.Record, error)
	FindRecordsFn      func(ctx context.Context, filter lauds.RecordFilter) ([]*lauds.Record, error)
	DeleteRecordFn     func(ctx context.Context, date time.Time) error
	CountFailuresFn    func(ctx context.Context, filter lauds.RecordFilter) (map[string]int, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, record *lauds.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByDate(ctx context.Context, date time.Time) (*lauds.Record, error) {
	return s.FindRecordByDateFn(ctx, date)
}

func (s *RecordService) FindRecords(ctx context.Context, filter lauds.RecordFilter) ([]*lauds.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, date time.Time) error {
	return s.DeleteRecordFn(ctx, date)
}

func (s *RecordService) CountFailures(ctx context.Context, filter lauds.RecordFilter) (map[string]int, error) {
	return s.CountFailuresFn(ctx, filter)
}
