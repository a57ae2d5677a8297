package mock

import (
	"time"

	"github.com/fwojciec/lauds"
)

var _ lauds.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lauds.Extractor.
type Extractor struct {
	ExtractFn func(date time.Time, pages *lauds.Pages) *lauds.Record
}

func (e *Extractor) Extract(date time.Time, pages *lauds.Pages) *lauds.Record {
	return e.ExtractFn(date, pages)
}
