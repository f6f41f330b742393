package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ymlai/tracker"
)

// RealizedMarkdown renders the realized-gain records as a markdown report,
// one section per market, ordered by the given display field ("" for ticker).
func RealizedMarkdown(book *tracker.Book, by string) (string, error) {
	compare, err := tracker.RealizedCompare(by)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprint(&b, "# Realized Gains\n\n")

	empty := true
	for _, market := range markets {
		var rows []tracker.RealizedItem
		for r := range book.RealizedItems() {
			if r.Market == market {
				rows = append(rows, r)
			}
		}
		if len(rows) == 0 {
			continue
		}
		empty = false
		slices.SortFunc(rows, compare)

		fmt.Fprintf(&b, "## %s (%s)\n\n", market, market.Currency())
		fmt.Fprintln(&b, "| Ticker | Name | Trades | Cost Retired | Revenue | Realized | ROI |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
		for _, r := range rows {
			fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s | %s |\n",
				r.Ticker, r.Name, r.Trades, r.CostRetired, r.Revenue,
				r.Realized.SignedString(), r.ROI.SignedString())
		}
		fmt.Fprintf(&b, "| **Total** | | | | | **%s** | |\n\n",
			book.TotalRealized(market).SignedString())
	}

	if empty {
		fmt.Fprint(&b, "No realized gains yet.\n")
	}
	return b.String(), nil
}
