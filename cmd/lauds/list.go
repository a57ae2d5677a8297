package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/lauds"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := lauds.RecordFilter{Limit: c.Limit}
	if c.From != "" {
		from, err := lauds.ParseDate(c.From)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
			return err
		}
		filter.From = &from
	}
	if c.To != "" {
		to, err := lauds.ParseDate(c.To)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
			return err
		}
		filter.To = &to
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'lauds fetch' to create some.")
		return nil
	}

	for _, r := range records {
		status := "ok"
		if n := len(r.Failures); n > 0 {
			status = fmt.Sprintf("%d fallbacks", n)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.Date.Format(lauds.DateLayout), r.ID, status)
	}

	// The limit applies to the listing, not to the failure summary.
	filter.Limit = 0
	counts, err := deps.Records.CountFailures(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}
	if len(counts) == 0 {
		return nil
	}

	sections := make([]string, 0, len(counts))
	for section := range counts {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	fmt.Fprintln(deps.Stdout, "\nFallbacks by section:")
	for _, section := range sections {
		fmt.Fprintf(deps.Stdout, "  %-20s %d\n", section, counts[section])
	}
	return nil
}
