package lauds

import "time"

// Pages holds the raw HTML of the two pages a record is extracted from.
type Pages struct {
	// MorningPrayer is the Morning Prayer (Lauds) page.
	MorningPrayer string

	// Readings is the Mass readings page. It may be empty.
	Readings string
}

// Size returns the combined size of both pages in bytes.
func (p *Pages) Size() int {
	if p == nil {
		return 0
	}
	return len(p.MorningPrayer) + len(p.Readings)
}

// Extractor turns breviary pages into a Record.
//
// Extract never fails: every section that cannot be located is replaced by
// its placeholder and reported in Record.Failures. It performs no I/O and is
// safe to call concurrently on independent pages.
type Extractor interface {
	Extract(date time.Time, pages *Pages) *Record
}
