package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single buy or sell trade, immutable once created. The fee,
// tax, and settlement amount are computed at creation time and stored; the
// accounting replay trusts the stored settlement as ground truth and never
// recomputes it.
type Transaction struct {
	ID         uuid.UUID
	Date       Date
	Ticker     string
	Name       string
	Side       Side
	Market     Market
	Price      Money
	Shares     Quantity
	FundLike   bool
	Fee        Money
	Tax        Money
	Settlement Money
}

// NewTransaction validates the raw trade fields, computes the fee, tax, and
// settlement amount under the market's regime, and returns a fully populated
// Transaction ready for log insertion.
//
// This is the input boundary of the engine: a malformed trade (empty ticker,
// non-positive price or shares) is rejected here and never reaches the log.
func NewTransaction(day Date, ticker, name string, side Side, market Market, price Money, shares Quantity, fundLike bool, cfg Config) (Transaction, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Transaction{}, errors.New("ticker is missing")
	}
	if side != Buy && side != Sell {
		return Transaction{}, fmt.Errorf("unknown trade side: %q", side)
	}
	if market != Domestic && market != Foreign {
		return Transaction{}, fmt.Errorf("unknown market: %q", market)
	}
	if !price.IsPositive() {
		return Transaction{}, fmt.Errorf("trade price must be positive, got %s", price.Amount())
	}
	if !shares.IsPositive() {
		return Transaction{}, fmt.Errorf("trade shares must be positive, got %s", shares)
	}
	if day.IsZero() {
		day = Today()
	}
	if name = strings.TrimSpace(name); name == "" {
		name = ticker
	}

	// quick fix: adopt the market currency when the price carries none.
	if price.Currency() == "" {
		price = M(price.Amount(), market.Currency())
	} else if price.Currency() != market.Currency() {
		return Transaction{}, fmt.Errorf("price currency %s does not match market currency %s", price.Currency(), market.Currency())
	}

	fee, tax, settlement := ComputeTrade(side, market, price, shares, fundLike, cfg)
	return Transaction{
		ID:         uuid.New(),
		Date:       day,
		Ticker:     ticker,
		Name:       name,
		Side:       side,
		Market:     market,
		Price:      price,
		Shares:     shares,
		FundLike:   fundLike,
		Fee:        fee,
		Tax:        tax,
		Settlement: settlement,
	}, nil
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Ticker == o.Ticker &&
		t.Name == o.Name &&
		t.Side == o.Side &&
		t.Market == o.Market &&
		t.Price.Equal(o.Price) &&
		t.Shares.Equal(o.Shares) &&
		t.FundLike == o.FundLike &&
		t.Fee.Equal(o.Fee) &&
		t.Tax.Equal(o.Tax) &&
		t.Settlement.Equal(o.Settlement)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s x %s", t.Date, t.Side, t.Ticker, t.Shares, t.Price)
}

// txWire is the persisted shape of a transaction. Monetary values are stored
// as plain numbers; the currency is implied by the market.
type txWire struct {
	ID         uuid.UUID       `json:"id"`
	Date       Date            `json:"date"`
	Ticker     string          `json:"ticker"`
	Name       string          `json:"name,omitempty"`
	Side       Side            `json:"side"`
	Market     Market          `json:"market"`
	Price      decimal.Decimal `json:"price"`
	Shares     Quantity        `json:"shares"`
	FundLike   bool            `json:"isFundLike,omitempty"`
	Fee        decimal.Decimal `json:"fee"`
	Tax        decimal.Decimal `json:"tax"`
	Settlement decimal.Decimal `json:"settlementAmount"`
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(txWire{
		ID:         t.ID,
		Date:       t.Date,
		Ticker:     t.Ticker,
		Name:       t.Name,
		Side:       t.Side,
		Market:     t.Market,
		Price:      t.Price.Amount(),
		Shares:     t.Shares,
		FundLike:   t.FundLike,
		Fee:        t.Fee.Amount(),
		Tax:        t.Tax.Amount(),
		Settlement: t.Settlement.Amount(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It rebuilds the Money fields with the currency implied by the market.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w txWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	cur := w.Market.Currency()
	*t = Transaction{
		ID:         w.ID,
		Date:       w.Date,
		Ticker:     strings.ToUpper(w.Ticker),
		Name:       w.Name,
		Side:       w.Side,
		Market:     w.Market,
		Price:      M(w.Price, cur),
		Shares:     w.Shares,
		FundLike:   w.FundLike,
		Fee:        M(w.Fee, cur),
		Tax:        M(w.Tax, cur),
		Settlement: M(w.Settlement, cur),
	}
	if t.Name == "" {
		t.Name = t.Ticker
	}
	return nil
}
