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

// priceCmd sets the manual current price of a ticker, either from a value
// given on the command line or fetched from the quote provider.
type priceCmd struct {
	ticker string
	price  string
	fetch  bool
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "set the current price of a ticker" }
func (*priceCmd) Usage() string {
	return `trk price -t <ticker> [-p <value> | -fetch]

  Sets the manual current price used to value the ticker's open position.
  With -fetch the latest traded price is fetched instead of taken from -p.
  Without -p or -fetch, prints the current entry.

`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Instrument ticker")
	f.StringVar(&c.price, "p", "", "Current price to set")
	f.BoolVar(&c.fetch, "fetch", false, "Fetch the latest traded price")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	switch {
	case c.fetch:
		market, ok := tickerMarket(ledger, ticker)
		if !ok {
			fmt.Fprintf(os.Stderr, "No transactions for %s, cannot tell its market\n", ticker)
			return subcommands.ExitFailure
		}
		latest, err := tracker.FetchQuote(tracker.NewQuoteClient(), market, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching quote for %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		ledger.SetPrice(ticker, decimal.NewFromFloat(latest))
		fmt.Printf("%s price set to %v (fetched)\n", ticker, latest)
	case c.price != "":
		price, err := decimal.NewFromString(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
			return subcommands.ExitUsageError
		}
		if !price.IsPositive() {
			fmt.Fprintf(os.Stderr, "Price must be positive, got %s\n", price)
			return subcommands.ExitUsageError
		}
		ledger.SetPrice(ticker, price)
		fmt.Printf("%s price set to %s\n", ticker, price)
	default:
		if p, ok := ledger.Price(ticker); ok {
			fmt.Printf("%s price is %s\n", ticker, p)
		} else {
			fmt.Printf("%s has no manual price\n", ticker)
		}
		return subcommands.ExitSuccess
	}

	return saveState(ledger, cfg)
}

// tickerMarket resolves the market a ticker trades on from its transactions.
func tickerMarket(ledger *tracker.Ledger, ticker string) (tracker.Market, bool) {
	for _, tx := range ledger.Transactions(tracker.ByTicker(ticker)) {
		return tx.Market, true
	}
	return "", false
}
