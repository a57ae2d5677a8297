package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lauds"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lauds.RecordService = (*RecordService)(nil)

// RecordService implements lauds.RecordService using SQLite.
// The record content is kept as JSON; failures are mirrored into their own
// table so that they can be counted without decoding records.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent returns the xxhash of content as 16 hex digits, matching
// collect.ContentHash.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// CreateRecord stores a record. A record already stored for the same date
// is replaced and keeps its ID.
func (s *RecordService) CreateRecord(ctx context.Context, record *lauds.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	content, err := record.MarshalContent()
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	createdAt := time.Now().UTC()
	hash := hashContent(content)

	err = tx.QueryRowContext(ctx, `
		INSERT INTO records (id, date, content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			created_at = excluded.created_at
		RETURNING id
	`, id, record.Date.Format(lauds.DateLayout), string(content), hash, formatTimestamp(createdAt)).Scan(&id)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM failures WHERE record_id = ?", id); err != nil {
		return err
	}
	for _, f := range record.Failures {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO failures (record_id, section, code, message)
			VALUES (?, ?, ?, ?)
		`, id, f.Section, f.Code, f.Message); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	record.ID = id
	record.ContentHash = hash
	record.CreatedAt = createdAt
	return nil
}

// FindRecordByDate retrieves the record for a date.
func (s *RecordService) FindRecordByDate(ctx context.Context, date time.Time) (*lauds.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, content, content_hash, created_at
		FROM records
		WHERE date = ?
	`, date.Format(lauds.DateLayout))

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lauds.Errorf(lauds.ENOTFOUND, "record for %s not found", date.Format(lauds.DateLayout))
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindRecords retrieves records matching the filter, newest date first.
func (s *RecordService) FindRecords(ctx context.Context, filter lauds.RecordFilter) ([]*lauds.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, content, content_hash, created_at FROM records WHERE 1=1")
	appendDateRange(&query, &args, "date", filter)
	query.WriteString(" ORDER BY date DESC")
	appendLimit(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*lauds.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes the record for a date and its failures.
func (s *RecordService) DeleteRecord(ctx context.Context, date time.Time) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE date = ?", date.Format(lauds.DateLayout))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return lauds.Errorf(lauds.ENOTFOUND, "record for %s not found", date.Format(lauds.DateLayout))
	}

	return nil
}

// CountFailures returns, per section, the number of records matching the
// filter whose section fell back to its placeholder.
func (s *RecordService) CountFailures(ctx context.Context, filter lauds.RecordFilter) (map[string]int, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT f.section, COUNT(DISTINCT f.record_id)
		FROM failures f
		JOIN records r ON r.id = f.record_id
		WHERE 1=1`)
	appendDateRange(&query, &args, "r.date", filter)
	query.WriteString(" GROUP BY f.section")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var section string
		var n int
		if err := rows.Scan(&section, &n); err != nil {
			return nil, err
		}
		counts[section] = n
	}

	return counts, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*lauds.Record, error) {
	var id, content, hash, createdAt string
	if err := row.Scan(&id, &content, &hash, &createdAt); err != nil {
		return nil, err
	}

	var record lauds.Record
	if err := json.Unmarshal([]byte(content), &record); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", id, err)
	}

	var err error
	record.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	record.ID = id
	record.ContentHash = hash
	return &record, nil
}
