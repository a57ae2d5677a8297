package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	date := today(deps.now())
	if c.Date != "" {
		d, err := lauds.ParseDate(c.Date)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
			return err
		}
		date = d
	}

	pages := &lauds.Pages{}
	var err error
	if pages.MorningPrayer, err = fs.ReadPage(c.MorningPrayer); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if c.Readings != "" {
		if pages.Readings, err = fs.ReadPage(c.Readings); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
	}

	record := deps.Extractor.Extract(date, pages)
	return printRecord(deps, record, c.JSON)
}

// printRecord writes record to stdout as JSON or as a Markdown preview.
func printRecord(deps *Dependencies, record *lauds.Record, asJSON bool) error {
	if asJSON {
		b, err := fs.FormatRecord(record)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		_, err = deps.Stdout.Write(b)
		return err
	}

	fmt.Fprintln(deps.Stdout, lauds.FormatRecord(record))
	if !record.CreatedAt.IsZero() {
		fmt.Fprintf(deps.Stdout, "\nStored %s\n", record.CreatedAt.Local().Format(time.DateTime))
	}
	return nil
}
