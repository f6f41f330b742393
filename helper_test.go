package tracker

import (
	"time"

	"github.com/google/uuid"
)

// TWD is a helper for tests to create domestic money from const
func TWD(v float64) Money { return M(v, "TWD") }

// USD is a helper for tests to create foreign money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for tests to build a 2025 date from month and day.
func day(m time.Month, d int) Date { return NewDate(2025, m, d) }

// trade builds a transaction with an explicit settlement amount, the way the
// replay sees it: the engine trusts the stored settlement and never
// recomputes it, so tests can pick round numbers.
func trade(on Date, ticker string, side Side, market Market, shares, settlement float64) Transaction {
	cur := market.Currency()
	return Transaction{
		ID:         uuid.New(),
		Date:       on,
		Ticker:     ticker,
		Name:       ticker,
		Side:       side,
		Market:     market,
		Shares:     Q(shares),
		Settlement: M(settlement, cur),
		Price:      M(0, cur),
		Fee:        M(0, cur),
		Tax:        M(0, cur),
	}
}

func buyTx(on Date, ticker string, shares, settlement float64) Transaction {
	return trade(on, ticker, Buy, Domestic, shares, settlement)
}

func sellTx(on Date, ticker string, shares, settlement float64) Transaction {
	return trade(on, ticker, Sell, Domestic, shares, settlement)
}
