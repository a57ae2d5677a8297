// Package fs provides file-based storage for records and raw pages.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/lauds"
)

// RecordPath returns the file name of the record for its date.
// Example: 2025-11-11 → 2025-11-11.json
func RecordPath(r *lauds.Record) string {
	return r.Date.Format(lauds.DateLayout) + ".json"
}

// FormatRecord formats a record as indented JSON followed by a newline.
func FormatRecord(r *lauds.Record) ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Ensure Writer implements lauds.RecordWriter at compile time.
var _ lauds.RecordWriter = (*Writer)(nil)

// Writer writes records as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes a record to disk, replacing any earlier file for the
// same date.
func (w *Writer) WriteRecord(ctx context.Context, record *lauds.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content, err := FormatRecord(record)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(w.baseDir, RecordPath(record)), content)
}

// writeFileAtomic writes content next to path and renames it into place.
func writeFileAtomic(path string, content []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
