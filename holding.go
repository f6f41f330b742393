package tracker

import "fmt"

// Holding is an open position, recomputed wholesale from the log on every
// derivation. It exists only while the open share count is positive.
type Holding struct {
	Ticker    string
	Name      string
	Market    Market
	FundLike  bool
	Shares    Quantity
	CostBasis Money    // running cost pool, buy settlements in, retired cost out
	AvgCost   Money    // CostBasis / Shares
	Price     Money    // manually supplied current price, zero when absent
	// MarketValue is Price x Shares net of the estimated fee and tax of
	// liquidating the whole position at Price.
	MarketValue Money
	Unrealized  Money
	ROI         Percent
}

// RealizedItem is the cumulative realized-gain record of a ticker. It
// accumulates across the ticker's full history and survives the position
// closing or reopening.
type RealizedItem struct {
	Ticker      string
	Name        string
	Market      Market
	FundLike    bool
	Realized    Money   // sum over sells of settlement minus retired cost
	CostRetired Money
	Revenue     Money   // sum of sell settlements
	Trades      int     // sells that actually retired cost
	ROI         Percent
}

// Percent is a gain over a cost base, as a percentage, for the ROI columns.
type Percent float64

// Equal compares two percentages at display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString is like String with an explicit sign; 0 renders as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// roi returns gain over base as a percentage, 0 when the base is zero.
func roi(gain, base Money) Percent {
	if base.IsZero() {
		return 0
	}
	ratio, _ := gain.Amount().Div(base.Amount()).Float64()
	return Percent(ratio * 100)
}
