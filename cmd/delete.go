package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// deleteCmd removes a single transaction by id.
type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete one transaction by id" }
func (*deleteCmd) Usage() string {
	return `trk delete -id <uuid>

  Deletes the transaction with the given id. Ids are listed by 'trk log'.

`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing id %q: %v\n", c.id, err)
		return subcommands.ExitUsageError
	}

	ledger, cfg, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !ledger.DeleteByID(id) {
		fmt.Fprintf(os.Stderr, "No transaction with id %s\n", id)
		return subcommands.ExitFailure
	}
	if status := saveState(ledger, cfg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("deleted transaction %s\n", id)
	return subcommands.ExitSuccess
}

// purgeCmd removes all of a ticker's transactions and its manual price.
type purgeCmd struct {
	ticker string
}

func (*purgeCmd) Name() string     { return "purge" }
func (*purgeCmd) Synopsis() string { return "delete all transactions of a ticker" }
func (*purgeCmd) Usage() string {
	return `trk purge -t <ticker>

  Deletes every transaction of the ticker, along with its manual price entry.

`
}

func (c *purgeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Instrument ticker")
}

func (c *purgeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "missing -t ticker")
		return subcommands.ExitUsageError
	}
	ticker := normalizeTicker(c.ticker)

	ledger, cfg, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed := ledger.DeleteTicker(ticker)
	if removed == 0 {
		fmt.Fprintf(os.Stderr, "No transactions for %s\n", ticker)
		return subcommands.ExitFailure
	}
	if status := saveState(ledger, cfg); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("deleted %d transactions for %s\n", removed, ticker)
	return subcommands.ExitSuccess
}
