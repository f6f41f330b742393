package tracker

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is the flat log of all transactions plus the manual mark prices.
//
// In a Ledger transactions are always in chronological order; transactions on
// the same day keep their insertion order. Every mutation bumps an internal
// version counter, which the derived Book uses as its cache key.
type Ledger struct {
	transactions []Transaction
	prices       map[string]decimal.Decimal // manual current price per ticker
	version      uint64
	book         *Book  // last derived book, valid while its version matches
	bookCfg      Config // rates the cached book was derived with
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		prices:       make(map[string]decimal.Decimal),
	}
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
	l.version++
}

// DeleteByID removes the transaction with the given id. It reports whether a
// transaction was found.
func (l *Ledger) DeleteByID(id uuid.UUID) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			l.version++
			return true
		}
	}
	return false
}

// DeleteTicker removes every transaction of a ticker, along with the ticker's
// manual price entry, and returns the number of transactions removed.
func (l *Ledger) DeleteTicker(ticker string) int {
	kept := l.transactions[:0]
	removed := 0
	for _, tx := range l.transactions {
		if tx.Ticker == ticker {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	l.transactions = kept
	_, hadPrice := l.prices[ticker]
	delete(l.prices, ticker)
	if removed > 0 || hadPrice {
		l.version++
	}
	return removed
}

// SetPrice records a manual current price for a ticker.
func (l *Ledger) SetPrice(ticker string, price decimal.Decimal) {
	l.prices[ticker] = price
	l.version++
}

// Price returns the manual current price of a ticker, if any.
func (l *Ledger) Price(ticker string) (decimal.Decimal, bool) {
	p, ok := l.prices[ticker]
	return p, ok
}

// Version returns the mutation counter. Any derived result is valid exactly
// as long as the version it was derived from.
func (l *Ledger) Version() uint64 { return l.version }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Book returns the holdings and realized gains derived from the current log.
// The result is cached and re-derived only after a mutation or a change of
// the rates.
func (l *Ledger) Book(cfg Config) *Book {
	if l.book == nil || l.book.version != l.version || !l.bookCfg.Equal(cfg) {
		l.book = Derive(l, cfg)
		l.bookCfg = cfg
	}
	return l.book
}

// Transactions returns an iterator that yields each transaction in its
// chronological order. With no filter every transaction is yielded; with
// filters, a transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date when the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date when the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// AllTickers iterates over all tickers that appear in the ledger, sorted.
func (l *Ledger) AllTickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.Ticker] = struct{}{}
		}
		tickers := slices.Collect(maps.Keys(visited))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// ByTicker returns a predicate that filters transactions by ticker.
func ByTicker(ticker string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Ticker == ticker }
}

// BySide returns a predicate that filters transactions by trade side.
func BySide(side Side) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Side == side }
}

// ByMarket returns a predicate that filters transactions by market.
func ByMarket(market Market) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Market == market }
}
