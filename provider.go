package tracker

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Quote fetching is a convenience on top of the manual price overrides: a
// fetched value is stored through Ledger.SetPrice like any user-entered
// price, and the accounting engine never depends on it.

// quoteEndpoint is the chart endpoint serving the last traded price.
const quoteEndpoint = "https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d"

// quoteSymbol maps a ledger ticker to the provider's symbol. Domestic
// tickers are listed with a ".TW" suffix.
func quoteSymbol(market Market, ticker string) string {
	if market == Domestic {
		return ticker + ".TW"
	}
	return ticker
}

// FetchQuote fetches the latest traded price for a ticker, in the market's
// currency. Use NewQuoteClient for a client with daily response caching.
func FetchQuote(client *http.Client, market Market, ticker string) (float64, error) {
	symbol := quoteSymbol(market, ticker)
	addr := fmt.Sprintf(quoteEndpoint, url.PathEscape(symbol))

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing quote for %q: %q not a float: %v", symbol, path, jval)
	}
	return val, nil
}

// NewQuoteClient returns the http client to use for quote fetching, with
// responses cached on disk for the day.
func NewQuoteClient() *http.Client { return daily() }
