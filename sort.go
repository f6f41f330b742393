package tracker

import (
	"cmp"
	"fmt"
	"strings"
)

// Display ordering is a view concern: the comparators below are meant for
// slices.SortFunc in renderers and never affect the accounting replay.

// HoldingCompare returns a comparator ordering holdings by the named display
// field. Monetary and P&L fields sort descending so the largest positions
// come first; text fields sort ascending.
func HoldingCompare(field string) (func(a, b Holding) int, error) {
	switch field {
	case "", "ticker":
		return func(a, b Holding) int { return strings.Compare(a.Ticker, b.Ticker) }, nil
	case "name":
		return func(a, b Holding) int { return strings.Compare(a.Name, b.Name) }, nil
	case "shares":
		return func(a, b Holding) int { return b.Shares.Cmp(a.Shares) }, nil
	case "cost":
		return func(a, b Holding) int { return b.CostBasis.Cmp(a.CostBasis) }, nil
	case "avgcost":
		return func(a, b Holding) int { return b.AvgCost.Cmp(a.AvgCost) }, nil
	case "price":
		return func(a, b Holding) int { return b.Price.Cmp(a.Price) }, nil
	case "value":
		return func(a, b Holding) int { return b.MarketValue.Cmp(a.MarketValue) }, nil
	case "unrealized":
		return func(a, b Holding) int { return b.Unrealized.Cmp(a.Unrealized) }, nil
	case "roi":
		return func(a, b Holding) int { return cmp.Compare(float64(b.ROI), float64(a.ROI)) }, nil
	default:
		return nil, fmt.Errorf("unknown holding sort field: %q", field)
	}
}

// RealizedCompare returns a comparator ordering realized-gain records by the
// named display field.
func RealizedCompare(field string) (func(a, b RealizedItem) int, error) {
	switch field {
	case "", "ticker":
		return func(a, b RealizedItem) int { return strings.Compare(a.Ticker, b.Ticker) }, nil
	case "name":
		return func(a, b RealizedItem) int { return strings.Compare(a.Name, b.Name) }, nil
	case "realized":
		return func(a, b RealizedItem) int { return b.Realized.Cmp(a.Realized) }, nil
	case "cost":
		return func(a, b RealizedItem) int { return b.CostRetired.Cmp(a.CostRetired) }, nil
	case "revenue":
		return func(a, b RealizedItem) int { return b.Revenue.Cmp(a.Revenue) }, nil
	case "trades":
		return func(a, b RealizedItem) int { return cmp.Compare(b.Trades, a.Trades) }, nil
	case "roi":
		return func(a, b RealizedItem) int { return cmp.Compare(float64(b.ROI), float64(a.ROI)) }, nil
	default:
		return nil, fmt.Errorf("unknown realized sort field: %q", field)
	}
}
