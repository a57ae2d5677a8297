package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/lauds"
)

// formatTimestamp renders t the way timestamps are stored.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTimestamp reads a stored timestamp back, naming column on failure.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return t, nil
}

// appendDateRange appends the inclusive date bounds of filter on column.
// Dates are stored as YYYY-MM-DD, so they compare correctly as text.
func appendDateRange(query *strings.Builder, args *[]any, column string, filter lauds.RecordFilter) {
	if filter.From != nil {
		fmt.Fprintf(query, " AND %s >= ?", column)
		*args = append(*args, filter.From.Format(lauds.DateLayout))
	}
	if filter.To != nil {
		fmt.Fprintf(query, " AND %s <= ?", column)
		*args = append(*args, filter.To.Format(lauds.DateLayout))
	}
}

// appendLimit appends LIMIT and OFFSET for positive values. SQLite only
// accepts OFFSET after a LIMIT, and LIMIT -1 means unbounded.
func appendLimit(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
