package tracker

import (
	"fmt"
	"strings"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "buy", "b":
		return Buy, nil
	case "sell", "s":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// Market identifies the fee/tax regime a trade settles under.
type Market string

const (
	// Domestic trades settle in TWD; fees and taxes are floored to whole TWD.
	Domestic Market = "DOMESTIC"
	// Foreign trades settle in USD; amounts keep their fractional part.
	Foreign Market = "FOREIGN"
)

// ParseMarket parses a string into a Market.
func ParseMarket(s string) (Market, error) {
	switch strings.ToUpper(s) {
	case "DOMESTIC", "TW":
		return Domestic, nil
	case "FOREIGN", "US":
		return Foreign, nil
	default:
		return "", fmt.Errorf("unknown market: %q", s)
	}
}

// Currency returns the settlement currency of the market.
func (m Market) Currency() string {
	if m == Foreign {
		return "USD"
	}
	return "TWD"
}

// Fractional reports whether the market's currency keeps subunits. The
// domestic currency has none in this model, so fee and tax amounts are
// floored to the integer unit.
func (m Market) Fractional() bool { return m == Foreign }

func (m Market) String() string { return string(m) }
