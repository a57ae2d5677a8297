package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/collect"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    lauds.Config
	Records   lauds.RecordService
	Collector *collect.Collector
	Extractor lauds.Extractor
	Converter lauds.Converter
	Exporter  lauds.Exporter

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Fetch     FetchCmd     `cmd:"" help:"Fetch, extract and store Morning Prayer for dates"`
	Reextract ReextractCmd `cmd:"" help:"Rebuild stored records from saved pages"`
	Extract   ExtractCmd   `cmd:"" help:"Extract a record from saved pages without storing it"`
	Show      ShowCmd      `cmd:"" help:"Show the stored record for a date"`
	List      ListCmd      `cmd:"" help:"List stored records"`
	Delete    DeleteCmd    `cmd:"" help:"Delete the stored record for a date"`
	Export    ExportCmd    `cmd:"" help:"Export stored records for presentation"`
	Inspect   InspectCmd   `cmd:"" help:"Show the markup window of a section as Markdown"`
	Config    ConfigCmd    `cmd:"" help:"Print the effective configuration"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Dates       []string `arg:"" optional:"" help:"Dates to fetch (YYYY-MM-DD), today if omitted"`
	From        string   `help:"First date of a range"`
	To          string   `help:"Last date of a range, --from if omitted"`
	Concurrency int      `short:"c" help:"Concurrent fetch limit"`
	HTTP        bool     `name:"http" help:"Use plain HTTP requests instead of a browser (today only)"`
}

// ReextractCmd is the "reextract" subcommand.
type ReextractCmd struct {
	Dates []string `arg:"" optional:"" help:"Dates to rebuild (YYYY-MM-DD), every stored record if omitted"`
	From  string   `help:"First date of a range"`
	To    string   `help:"Last date of a range, --from if omitted"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	MorningPrayer string `arg:"" name:"morning" help:"Morning Prayer page (.html or .html.xz)"`
	Readings      string `arg:"" optional:"" name:"readings" help:"Mass readings page (.html or .html.xz)"`
	Date          string `help:"Date of the pages (YYYY-MM-DD), today if omitted"`
	JSON          bool   `name:"json" help:"Print the record as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Date string `arg:"" help:"Record date (YYYY-MM-DD)"`
	JSON bool   `name:"json" help:"Print the record as JSON"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	From  string `help:"Earliest date listed"`
	To    string `help:"Latest date listed"`
	Limit int    `short:"n" help:"Maximum number of records"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Date  string `arg:"" help:"Record date (YYYY-MM-DD)"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dates  []string `arg:"" help:"Record dates (YYYY-MM-DD)"`
	Format string   `short:"f" default:"json" enum:"json,openlyrics,markdown" help:"Output format (json, openlyrics, markdown)"`
	Out    string   `short:"o" help:"Directory to write one file per record into, stdout if omitted"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File    string `arg:"" help:"Morning Prayer page (.html or .html.xz)"`
	Section string `short:"s" required:"" enum:"short_reading,responsory,intercessions,concluding_prayer" help:"Section to show (short_reading, responsory, intercessions, concluding_prayer)"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct{}

// resolveDates returns the dates named on the command line: explicit dates,
// or an inclusive --from/--to range. Neither yields nil.
func resolveDates(args []string, from, to string) ([]time.Time, error) {
	if from == "" && to != "" {
		return nil, lauds.Errorf(lauds.EINVALID, "--to requires --from")
	}
	if from != "" {
		if len(args) > 0 {
			return nil, lauds.Errorf(lauds.EINVALID, "give either dates or --from/--to, not both")
		}
		start, err := lauds.ParseDate(from)
		if err != nil {
			return nil, err
		}
		end := start
		if to != "" {
			if end, err = lauds.ParseDate(to); err != nil {
				return nil, err
			}
		}
		return collect.Dates(start, end)
	}

	var dates []time.Time
	for _, arg := range args {
		d, err := lauds.ParseDate(arg)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// today returns the current calendar date as a UTC midnight.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
