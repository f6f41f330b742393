package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd rewrites the state file in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the state file in canonical form" }
func (*fmtCmd) Usage() string {
	return `trk fmt

  Reads the state file, sorts transactions chronologically, backfills any
  missing settings with the default rates, and writes the file back in a
  canonical, diffable JSON form.

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, cfg, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveState(ledger, cfg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(os.Stderr, "formatted %q (%d transactions)\n", *stateFile, ledger.Len())
	return subcommands.ExitSuccess
}
