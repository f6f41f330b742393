// Package renderer builds markdown reports from derived tracker state.
// Rendering is a pure view concern: it never mutates the ledger and carries
// no accounting logic of its own.
package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ymlai/tracker"
)

// markets fixes the section order of every per-market report.
var markets = []tracker.Market{tracker.Domestic, tracker.Foreign}

// HoldingsMarkdown renders the open positions as a markdown report, one
// section per market, ordered by the given display field ("" for ticker).
func HoldingsMarkdown(book *tracker.Book, by string) (string, error) {
	compare, err := tracker.HoldingCompare(by)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprint(&b, "# Holdings\n\n")

	empty := true
	for _, market := range markets {
		var rows []tracker.Holding
		for h := range book.Holdings() {
			if h.Market == market {
				rows = append(rows, h)
			}
		}
		if len(rows) == 0 {
			continue
		}
		empty = false
		slices.SortFunc(rows, compare)

		fmt.Fprintf(&b, "## %s (%s)\n\n", market, market.Currency())
		fmt.Fprintln(&b, "| Ticker | Name | Shares | Avg Cost | Price | Market Value | Unrealized | ROI |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")
		for _, h := range rows {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
				h.Ticker, h.Name, h.Shares, h.AvgCost, h.Price,
				h.MarketValue, h.Unrealized.SignedString(), h.ROI.SignedString())
		}
		fmt.Fprintf(&b, "| **Total** | | | | | **%s** | **%s** | |\n\n",
			book.TotalMarketValue(market),
			book.TotalUnrealized(market).SignedString())
	}

	if empty {
		fmt.Fprint(&b, "No open positions.\n")
	}
	return b.String(), nil
}
