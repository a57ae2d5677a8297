package mock

import (
	"io"

	"github.com/fwojciec/lauds"
)

var _ lauds.Converter = (*Converter)(nil)

// Converter is a mock implementation of lauds.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ lauds.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of lauds.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, record *lauds.Record) error
}

func (e *Exporter) Export(w io.Writer, record *lauds.Record) error {
	return e.ExportFn(w, record)
}
