package tracker

import (
	"iter"
	"maps"
	"slices"
)

// positionAcc is the per-ticker open-position accumulator of the replay.
type positionAcc struct {
	name     string
	market   Market
	fundLike bool
	shares   Quantity
	cost     Money
}

// realizedAcc is the per-ticker realized-gain accumulator of the replay.
type realizedAcc struct {
	name        string
	market      Market
	fundLike    bool
	realized    Money
	costRetired Money
	revenue     Money
	trades      int
}

// Book holds the full derived state of a ledger: the open positions and the
// realized-gain records, both keyed by ticker. A Book is a pure recomputation
// of the log; it is discarded and rebuilt after any mutation.
type Book struct {
	version  uint64
	holdings map[string]Holding
	realized map[string]RealizedItem
}

// Derive replays the full transaction log in chronological order and returns
// the derived Book. It never mutates the ledger, and re-running it over the
// same log is deterministic.
//
// The replay trusts each transaction's stored settlement amount: a buy adds
// its settlement (cost including fee) to the ticker's cost pool, a sell
// retires cost at the position's current weighted-average cost. A sell
// against a zero or unknown position is silently dropped, so incomplete or
// out-of-order histories replay without error and without negative
// inventory. The fee/tax calculator is used only afterwards, to estimate the
// liquidation cost baked into each holding's market value.
func Derive(l *Ledger, cfg Config) *Book {
	positions := make(map[string]*positionAcc)
	realized := make(map[string]*realizedAcc)

	for _, tx := range l.transactions {
		pos, ok := positions[tx.Ticker]
		if !ok {
			pos = &positionAcc{
				name:     tx.Name,
				market:   tx.Market,
				fundLike: tx.FundLike,
				cost:     M(0, tx.Market.Currency()),
			}
			positions[tx.Ticker] = pos
		}

		// A ticker is pinned to the market of its first transaction. A trade
		// on the other market would mix currencies in the cost pool, so it is
		// dropped like any other inconsistent replay input.
		if tx.Market != pos.market {
			continue
		}

		switch tx.Side {
		case Buy:
			// The settlement already includes the buy-side fee: the fee is
			// capitalized into cost, not expensed.
			pos.cost = pos.cost.Add(tx.Settlement)
			pos.shares = pos.shares.Add(tx.Shares)
		case Sell:
			if !pos.shares.IsPositive() {
				// Sell against a closed or unknown position: dropped.
				continue
			}
			avgCost := pos.cost.Div(pos.shares)
			costRetired := avgCost.Mul(tx.Shares)

			rlz, ok := realized[tx.Ticker]
			if !ok {
				cur := tx.Market.Currency()
				rlz = &realizedAcc{
					name:        pos.name,
					market:      tx.Market,
					fundLike:    pos.fundLike,
					realized:    M(0, cur),
					costRetired: M(0, cur),
					revenue:     M(0, cur),
				}
				realized[tx.Ticker] = rlz
			}
			rlz.realized = rlz.realized.Add(tx.Settlement.Sub(costRetired))
			rlz.costRetired = rlz.costRetired.Add(costRetired)
			rlz.revenue = rlz.revenue.Add(tx.Settlement)
			rlz.trades++

			pos.cost = pos.cost.Sub(costRetired)
			pos.shares = pos.shares.Sub(tx.Shares)
		}

		// Closure clamp: a position within epsilon of zero shares is flat,
		// and its cost pool is zeroed to eliminate floating residue. An
		// oversell lands here too, since the negative remainder is clamped.
		if pos.shares.IsNearZero() || pos.shares.IsNegative() {
			pos.shares = Q(0)
			pos.cost = M(0, pos.cost.Currency())
		}
	}

	book := &Book{
		version:  l.version,
		holdings: make(map[string]Holding, len(positions)),
		realized: make(map[string]RealizedItem, len(realized)),
	}

	for ticker, pos := range positions {
		if !pos.shares.IsPositive() {
			continue
		}
		cur := pos.market.Currency()
		price := M(0, cur)
		if p, ok := l.prices[ticker]; ok {
			price = M(p, cur)
		}
		// Market value nets out the estimated cost of liquidating the whole
		// position at the current price.
		_, _, proceeds := ComputeTrade(Sell, pos.market, price, pos.shares, pos.fundLike, cfg)
		unrealized := proceeds.Sub(pos.cost)

		book.holdings[ticker] = Holding{
			Ticker:      ticker,
			Name:        pos.name,
			Market:      pos.market,
			FundLike:    pos.fundLike,
			Shares:      pos.shares,
			CostBasis:   pos.cost,
			AvgCost:     pos.cost.Div(pos.shares),
			Price:       price,
			MarketValue: proceeds,
			Unrealized:  unrealized,
			ROI:         roi(unrealized, pos.cost),
		}
	}

	for ticker, rlz := range realized {
		if rlz.trades == 0 {
			continue
		}
		book.realized[ticker] = RealizedItem{
			Ticker:      ticker,
			Name:        rlz.name,
			Market:      rlz.market,
			FundLike:    rlz.fundLike,
			Realized:    rlz.realized,
			CostRetired: rlz.costRetired,
			Revenue:     rlz.revenue,
			Trades:      rlz.trades,
			ROI:         roi(rlz.realized, rlz.costRetired),
		}
	}
	return book
}

// Holding returns the open position of a ticker, if any.
func (b *Book) Holding(ticker string) (Holding, bool) {
	h, ok := b.holdings[ticker]
	return h, ok
}

// Realized returns the realized-gain record of a ticker, if any.
func (b *Book) Realized(ticker string) (RealizedItem, bool) {
	r, ok := b.realized[ticker]
	return r, ok
}

// Holdings iterates over the open positions, sorted by ticker.
func (b *Book) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		tickers := slices.Collect(maps.Keys(b.holdings))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(b.holdings[ticker]) {
				return
			}
		}
	}
}

// RealizedItems iterates over the realized-gain records, sorted by ticker.
func (b *Book) RealizedItems() iter.Seq[RealizedItem] {
	return func(yield func(RealizedItem) bool) {
		tickers := slices.Collect(maps.Keys(b.realized))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(b.realized[ticker]) {
				return
			}
		}
	}
}

// TotalMarketValue sums the market value of open positions on one market.
// Totals never cross markets: there is no currency conversion in this model.
func (b *Book) TotalMarketValue(market Market) Money {
	total := M(0, market.Currency())
	for h := range b.Holdings() {
		if h.Market == market {
			total = total.Add(h.MarketValue)
		}
	}
	return total
}

// TotalUnrealized sums the unrealized P&L of open positions on one market.
func (b *Book) TotalUnrealized(market Market) Money {
	total := M(0, market.Currency())
	for h := range b.Holdings() {
		if h.Market == market {
			total = total.Add(h.Unrealized)
		}
	}
	return total
}

// TotalCostBasis sums the cost basis of open positions on one market.
func (b *Book) TotalCostBasis(market Market) Money {
	total := M(0, market.Currency())
	for h := range b.Holdings() {
		if h.Market == market {
			total = total.Add(h.CostBasis)
		}
	}
	return total
}

// TotalRealized sums the realized P&L on one market.
func (b *Book) TotalRealized(market Market) Money {
	total := M(0, market.Currency())
	for r := range b.RealizedItems() {
		if r.Market == market {
			total = total.Add(r.Realized)
		}
	}
	return total
}
