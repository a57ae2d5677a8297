package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/fs"
)

// Export formats.
const (
	FormatJSON       = "json"
	FormatOpenLyrics = "openlyrics"
	FormatMarkdown   = "markdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var records []*lauds.Record
	for _, arg := range c.Dates {
		date, err := lauds.ParseDate(arg)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
			return err
		}
		record, err := deps.Records.FindRecordByDate(deps.Ctx, date)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
			return err
		}
		records = append(records, record)
	}

	if c.Out == "" {
		for _, r := range records {
			if err := c.export(deps, deps.Stdout, r); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %v\n", err)
				return err
			}
		}
		return nil
	}

	if c.Format == FormatJSON {
		w := fs.NewWriter(c.Out)
		for _, r := range records {
			if err := w.WriteRecord(deps.Ctx, r); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %v\n", err)
				return err
			}
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d record(s) to %s\n", len(records), c.Out)
		return nil
	}

	if err := os.MkdirAll(c.Out, 0755); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	for _, r := range records {
		var buf bytes.Buffer
		if err := c.export(deps, &buf, r); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		path := filepath.Join(c.Out, r.Date.Format(lauds.DateLayout)+extension(c.Format))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d record(s) to %s\n", len(records), c.Out)
	return nil
}

func (c *ExportCmd) export(deps *Dependencies, w io.Writer, r *lauds.Record) error {
	switch c.Format {
	case FormatOpenLyrics:
		return deps.Exporter.Export(w, r)
	case FormatMarkdown:
		_, err := io.WriteString(w, lauds.FormatRecord(r))
		return err
	case FormatJSON, "":
		b, err := fs.FormatRecord(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return lauds.Errorf(lauds.EINVALID, "unknown format %q", c.Format)
}

func extension(format string) string {
	switch format {
	case FormatOpenLyrics:
		return ".xml"
	case FormatMarkdown:
		return ".md"
	}
	return ".json"
}
