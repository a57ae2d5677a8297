package lauds

import "io"

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as a located section window,
	// into Markdown.
	Convert(html string) (string, error)
}

// Exporter writes a record in a presentation-oriented format.
type Exporter interface {
	Export(w io.Writer, record *Record) error
}
