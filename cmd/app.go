// Package cmd implements the CLI application to track trades and holdings.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/ymlai/tracker"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var stateFile = flag.String("f", "tracker.json", "Path to the tracker state file (JSON)")

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&tradeCmd{side: tracker.Buy}, "transactions")
	c.Register(&tradeCmd{side: tracker.Sell}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&purgeCmd{}, "transactions")

	c.Register(&priceCmd{}, "prices")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&realizedCmd{}, "reports")
	c.Register(&logCmd{}, "reports")

	c.Register(&fmtCmd{}, "state")
}

// normalizeTicker applies the same case normalization as the ledger.
func normalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// loadState loads the tracker state from the app state file.
func loadState() (*tracker.Ledger, tracker.Config, error) {
	return tracker.LoadState(*stateFile)
}

// saveState writes the tracker state back to the app state file.
func saveState(ledger *tracker.Ledger, cfg tracker.Config) subcommands.ExitStatus {
	if err := tracker.SaveState(*stateFile, ledger, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving state file %q: %v\n", *stateFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
