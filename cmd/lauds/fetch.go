package main

import (
	"fmt"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/collect"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	dates, err := resolveDates(c.Dates, c.From, c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}
	if len(dates) == 0 {
		dates = append(dates, today(deps.now()))
	}

	if deps.Collector == nil {
		return lauds.Errorf(lauds.EINTERNAL, "collector not configured")
	}
	if c.Concurrency > 0 {
		deps.Collector.Concurrency = c.Concurrency
	}

	fmt.Fprintf(deps.Stdout, "Fetching %d date(s)\n", len(dates))

	result, err := deps.Collector.Collect(deps.Ctx, dates, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching: %v\n", err)
		return err
	}

	printResult(deps, result)
	return nil
}

// Run executes the reextract command.
func (c *ReextractCmd) Run(deps *Dependencies) error {
	dates, err := resolveDates(c.Dates, c.From, c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	if len(dates) == 0 {
		records, err := deps.Records.FindRecords(deps.Ctx, lauds.RecordFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
			return err
		}
		for _, r := range records {
			dates = append(dates, r.Date)
		}
	}
	if len(dates) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'lauds fetch' to create some.")
		return nil
	}

	if deps.Collector == nil {
		return lauds.Errorf(lauds.EINTERNAL, "collector not configured")
	}

	result, err := deps.Collector.Reextract(deps.Ctx, dates, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	printResult(deps, result)
	return nil
}

func progressPrinter(deps *Dependencies) collect.ProgressFunc {
	return func(event collect.ProgressEvent) {
		date := event.Date.Format(lauds.DateLayout)
		switch event.Type {
		case collect.ProgressCompleted:
			if event.Failures > 0 {
				fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%d fallbacks)\n", event.Completed, event.Total, date, event.Failures)
				return
			}
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, date)
		case collect.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", date, event.Error)
		}
	}
}

func printResult(deps *Dependencies, result *collect.Result) {
	fmt.Fprintf(deps.Stdout, "Saved %d, unchanged %d, failed %d (%s, %d fallbacks)\n",
		result.Saved, result.Unchanged, result.Failed, collect.FormatBytes(result.Bytes), result.Fallbacks)
}
