package tracker

import "github.com/shopspring/decimal"

// MarketConfig holds the fee and tax rates of one market's regime.
//
// On the domestic market the sell-side tax rate depends on the instrument:
// TaxRate applies to plain stock, FundTaxRate to fund-like instruments
// (ETFs). On the foreign market TaxRate is the flat sale levy and FundTaxRate
// is ignored.
type MarketConfig struct {
	FeeRate     decimal.Decimal `json:"feeRate"`
	FeeDiscount decimal.Decimal `json:"feeDiscount"`
	MinFee      decimal.Decimal `json:"minFee"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	FundTaxRate decimal.Decimal `json:"fundTaxRate"`
}

// Config holds all fee/tax options, one regime per market.
type Config struct {
	Domestic MarketConfig `json:"domestic"`
	Foreign  MarketConfig `json:"foreign"`
}

// DefaultConfig returns the documented reference rates: the domestic
// exchange's 0.1425% brokerage fee (with a typical 40% broker rebate and the
// 20 TWD floor) and 0.3%/0.1% stock/ETF securities transaction tax, and a
// 0.1% foreign brokerage fee with the SEC sale levy.
func DefaultConfig() Config {
	return Config{
		Domestic: MarketConfig{
			FeeRate:     decimal.NewFromFloat(0.001425),
			FeeDiscount: decimal.NewFromFloat(0.6),
			MinFee:      decimal.NewFromInt(20),
			TaxRate:     decimal.NewFromFloat(0.003),
			FundTaxRate: decimal.NewFromFloat(0.001),
		},
		Foreign: MarketConfig{
			FeeRate:     decimal.NewFromFloat(0.001),
			FeeDiscount: decimal.NewFromInt(1),
			MinFee:      decimal.Zero,
			TaxRate:     decimal.NewFromFloat(0.0000278),
			FundTaxRate: decimal.NewFromFloat(0.0000278),
		},
	}
}

// Equal reports whether two configs carry the same rates.
func (c Config) Equal(o Config) bool {
	return c.Domestic.equal(o.Domestic) && c.Foreign.equal(o.Foreign)
}

func (mc MarketConfig) equal(o MarketConfig) bool {
	return mc.FeeRate.Equal(o.FeeRate) &&
		mc.FeeDiscount.Equal(o.FeeDiscount) &&
		mc.MinFee.Equal(o.MinFee) &&
		mc.TaxRate.Equal(o.TaxRate) &&
		mc.FundTaxRate.Equal(o.FundTaxRate)
}

// market returns the regime options for a market.
func (c Config) market(m Market) MarketConfig {
	if m == Foreign {
		return c.Foreign
	}
	return c.Domestic
}

// withDefaults returns a copy of c where every unset field is backfilled
// from DefaultConfig. State files written by older versions may miss whole
// sections; loading them must not silently zero the rates.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	c.Domestic = c.Domestic.withDefaults(def.Domestic)
	c.Foreign = c.Foreign.withDefaults(def.Foreign)
	return c
}

func (mc MarketConfig) withDefaults(def MarketConfig) MarketConfig {
	if mc.FeeRate.IsZero() {
		mc.FeeRate = def.FeeRate
	}
	if mc.FeeDiscount.IsZero() {
		mc.FeeDiscount = def.FeeDiscount
	}
	if mc.MinFee.IsZero() {
		mc.MinFee = def.MinFee
	}
	if mc.TaxRate.IsZero() {
		mc.TaxRate = def.TaxRate
	}
	if mc.FundTaxRate.IsZero() {
		mc.FundTaxRate = def.FundTaxRate
	}
	return mc
}

// ComputeTrade computes the brokerage fee, the transaction tax, and the net
// settlement amount of a trade. It is a pure function: rates come from cfg,
// and the caller is responsible for rejecting non-positive price or shares
// before calling.
//
// The settlement amount is the trade's net cash effect: cost including fee
// for a buy, proceeds net of fee and tax for a sell.
func ComputeTrade(side Side, market Market, price Money, shares Quantity, fundLike bool, cfg Config) (fee, tax, settlement Money) {
	mc := cfg.market(market)
	gross := price.Mul(shares)

	fee = gross.MulRate(mc.FeeRate).MulRate(mc.FeeDiscount)
	if !market.Fractional() {
		fee = fee.Floor()
	}
	minFee := M(mc.MinFee, market.Currency())
	if fee.LessThan(minFee) {
		fee = minFee
	}

	tax = M(0, market.Currency())
	if side == Sell {
		rate := mc.TaxRate
		if fundLike && !market.Fractional() {
			rate = mc.FundTaxRate
		}
		tax = gross.MulRate(rate)
		if !market.Fractional() {
			tax = tax.Floor()
		}
	}

	if side == Buy {
		settlement = gross.Add(fee)
	} else {
		settlement = gross.Sub(fee).Sub(tax)
	}
	return fee, tax, settlement
}
