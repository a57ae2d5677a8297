package main

import (
	"fmt"

	"github.com/fwojciec/lauds"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	date, err := lauds.ParseDate(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	record, err := deps.Records.FindRecordByDate(deps.Ctx, date)
	if lauds.ErrorCode(err) == lauds.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: no record for %s. Use 'lauds fetch %s' to create it.\n", c.Date, c.Date)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	return printRecord(deps, record, c.JSON)
}
