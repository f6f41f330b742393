package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ymlai/tracker/renderer"
)

// logCmd displays the chronological transaction log.
type logCmd struct {
	ticker string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the transaction log" }
func (*logCmd) Usage() string {
	return `trk log [-t <ticker>]

  Displays the transaction log in chronological order, with the stored fee,
  tax, and settlement amount of each trade and the id used by 'trk delete'.

`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Restrict to one ticker")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ticker := ""
	if c.ticker != "" {
		ticker = normalizeTicker(c.ticker)
	}
	printMarkdown(renderer.TransactionsMarkdown(ledger, ticker))
	return subcommands.ExitSuccess
}
