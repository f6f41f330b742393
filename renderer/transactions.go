package renderer

import (
	"fmt"
	"strings"

	"github.com/ymlai/tracker"
)

// TransactionsMarkdown renders the transaction log as a markdown table in
// chronological order, optionally restricted to one ticker. The transaction
// ids appear in full so a row can be handed to the delete command.
func TransactionsMarkdown(ledger *tracker.Ledger, ticker string) string {
	var filters []func(tracker.Transaction) bool
	title := "# Transactions"
	if ticker != "" {
		filters = append(filters, tracker.ByTicker(ticker))
		title = fmt.Sprintf("# Transactions for %s", ticker)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintln(&b, "| Date | Side | Ticker | Shares | Price | Fee | Tax | Settlement | ID |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|---:|:---|")

	count := 0
	for _, tx := range ledger.Transactions(filters...) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Side, tx.Ticker, tx.Shares, tx.Price,
			tx.Fee, tx.Tax, tx.Settlement, tx.ID)
		count++
	}
	if count == 0 {
		return title + "\n\nNo transactions.\n"
	}
	return b.String()
}
