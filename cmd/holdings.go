package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ymlai/tracker/renderer"
)

// holdingsCmd displays the open positions with unrealized P&L.
type holdingsCmd struct {
	by string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display open positions and unrealized P&L" }
func (*holdingsCmd) Usage() string {
	return `trk holdings [-by <field>]

  Derives the open positions from the transaction log and displays them with
  their weighted-average cost, market value at the manual price, and
  unrealized P&L. Fields: ticker, name, shares, cost, avgcost, price, value,
  unrealized, roi.

`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "", "Sort field, defaults to ticker")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, cfg, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	md, err := renderer.HoldingsMarkdown(ledger.Book(cfg), c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
