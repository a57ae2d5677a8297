package collect

import (
	"fmt"
	"time"

	"github.com/fwojciec/lauds"
)

// MaxDates limits the number of dates in one range.
const MaxDates = 366

// Dates returns every date from from to to inclusive, truncated to days.
func Dates(from, to time.Time) ([]time.Time, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, lauds.Errorf(lauds.EINVALID, "range end %s is before start %s",
			to.Format(lauds.DateLayout), from.Format(lauds.DateLayout))
	}

	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if len(dates) == MaxDates {
			return nil, lauds.Errorf(lauds.EINVALID, "range exceeds %d days", MaxDates)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
