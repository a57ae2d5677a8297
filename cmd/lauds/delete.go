package main

import (
	"fmt"

	"github.com/fwojciec/lauds"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return lauds.Errorf(lauds.EINVALID, "use --force to confirm deletion")
	}

	date, err := lauds.ParseDate(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	err = deps.Records.DeleteRecord(deps.Ctx, date)
	if lauds.ErrorCode(err) == lauds.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: no record for %s. Use 'lauds list' to see stored records.\n", c.Date)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record for %s\n", c.Date)
	return nil
}
