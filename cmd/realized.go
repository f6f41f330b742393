package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ymlai/tracker/renderer"
)

// realizedCmd displays the cumulative realized gains per ticker.
type realizedCmd struct {
	by string
}

func (*realizedCmd) Name() string     { return "realized" }
func (*realizedCmd) Synopsis() string { return "display realized P&L per ticker" }
func (*realizedCmd) Usage() string {
	return `trk realized [-by <field>]

  Displays the cumulative realized gains of every ticker that had at least
  one effective sell, across its full history. Fields: ticker, name,
  realized, cost, revenue, trades, roi.

`
}

func (c *realizedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "", "Sort field, defaults to ticker")
}

func (c *realizedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, cfg, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	md, err := renderer.RealizedMarkdown(ledger.Book(cfg), c.by)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
