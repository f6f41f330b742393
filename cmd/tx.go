package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/ymlai/tracker"
)

// tradeCmd records a buy or a sell; the side is fixed at registration time.
type tradeCmd struct {
	side tracker.Side

	date   string
	ticker string
	name   string
	market string
	price  string
	shares string
	fund   bool
}

func (c *tradeCmd) Name() string { return string(c.side) }
func (c *tradeCmd) Synopsis() string {
	if c.side == tracker.Buy {
		return "record a buy trade"
	}
	return "record a sell trade"
}
func (c *tradeCmd) Usage() string {
	return fmt.Sprintf(`trk %s -t <ticker> -p <price> -q <shares> [-m <market>] [-d <date>] [-n <name>] [-fund]

  Records a %s trade. The fee, tax, and settlement amount are computed from
  the configured rates and stored with the transaction.

`, c.side, c.side)
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trade date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.ticker, "t", "", "Instrument ticker")
	f.StringVar(&c.name, "n", "", "Display name, defaults to the ticker")
	f.StringVar(&c.market, "m", string(tracker.Domestic), "Market: DOMESTIC (tw) or FOREIGN (us)")
	f.StringVar(&c.price, "p", "", "Unit trade price")
	f.StringVar(&c.shares, "q", "", "Trade quantity")
	f.BoolVar(&c.fund, "fund", false, "Instrument is fund-like (ETF), lower domestic sell tax")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var day tracker.Date
	if c.date != "" {
		var err error
		if day, err = tracker.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	market, err := tracker.ParseMarket(c.market)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}
	shares, err := decimal.NewFromString(c.shares)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing shares %q: %v\n", c.shares, err)
		return subcommands.ExitUsageError
	}

	ledger, cfg, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// A ticker keeps the market of its first trade; a trade on the other
	// market would be dropped by the accounting replay, so reject it here.
	ticker := normalizeTicker(c.ticker)
	if existing, ok := tickerMarket(ledger, ticker); ok && existing != market {
		fmt.Fprintf(os.Stderr, "%s already trades on %s, cannot record a trade on %s\n", ticker, existing, market)
		return subcommands.ExitUsageError
	}

	tx, err := tracker.NewTransaction(day, ticker, c.name, c.side, market,
		tracker.M(price, market.Currency()), tracker.Q(shares), c.fund, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid trade: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger.Append(tx)
	if status := saveState(ledger, cfg); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("recorded %s (fee %s, tax %s, settlement %s)\n", tx, tx.Fee, tx.Tax, tx.Settlement)
	return subcommands.ExitSuccess
}
