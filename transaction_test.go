package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	cfg := DefaultConfig()

	tx, err := NewTransaction(day(time.January, 10), "2330", "TSMC", Buy, Domestic, TWD(1000), Q(100), false, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, tx.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "2330", tx.Ticker)
	assert.Equal(t, "TSMC", tx.Name)
	assert.True(t, tx.Fee.Equal(TWD(85)))
	assert.True(t, tx.Tax.IsZero())
	assert.True(t, tx.Settlement.Equal(TWD(100085)))
}

func TestNewTransaction_Normalization(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("ticker uppercased and trimmed", func(t *testing.T) {
		tx, err := NewTransaction(day(time.January, 10), " voo ", "", Buy, Foreign, USD(400), Q(1), false, cfg)
		require.NoError(t, err)
		assert.Equal(t, "VOO", tx.Ticker)
		assert.Equal(t, "VOO", tx.Name, "empty name falls back to the ticker")
	})

	t.Run("zero date defaults to today", func(t *testing.T) {
		tx, err := NewTransaction(Date{}, "2330", "", Buy, Domestic, TWD(1000), Q(10), false, cfg)
		require.NoError(t, err)
		assert.Equal(t, Today(), tx.Date)
	})

	t.Run("currencyless price adopts the market currency", func(t *testing.T) {
		tx, err := NewTransaction(day(time.January, 10), "2330", "", Buy, Domestic, M(1000, ""), Q(10), false, cfg)
		require.NoError(t, err)
		assert.Equal(t, "TWD", tx.Price.Currency())
	})
}

func TestNewTransaction_Rejects(t *testing.T) {
	cfg := DefaultConfig()
	on := day(time.January, 10)

	cases := []struct {
		name   string
		ticker string
		side   Side
		market Market
		price  Money
		shares Quantity
	}{
		{"empty ticker", "  ", Buy, Domestic, TWD(1000), Q(10)},
		{"unknown side", "2330", Side("short"), Domestic, TWD(1000), Q(10)},
		{"unknown market", "2330", Buy, Market("OTC"), TWD(1000), Q(10)},
		{"zero price", "2330", Buy, Domestic, TWD(0), Q(10)},
		{"negative price", "2330", Buy, Domestic, TWD(-5), Q(10)},
		{"zero shares", "2330", Buy, Domestic, TWD(1000), Q(0)},
		{"currency mismatch", "2330", Buy, Domestic, USD(1000), Q(10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction(on, tc.ticker, "", tc.side, tc.market, tc.price, tc.shares, false, cfg)
			assert.Error(t, err)
		})
	}
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	tx, err := NewTransaction(day(time.January, 10), "VOO", "Vanguard S&P 500", Sell, Foreign, USD(376.3), Q(4), false, cfg)
	require.NoError(t, err)

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	// Money is stored as a plain number, the currency is implied by the market.
	assert.Contains(t, string(data), `"price":376.3`)
	assert.Contains(t, string(data), `"market":"FOREIGN"`)
	assert.Contains(t, string(data), `"settlementAmount"`)

	var back Transaction
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, tx.Equal(back))
	assert.Equal(t, "USD", back.Settlement.Currency())
}

func TestTransaction_UnmarshalLegacyFields(t *testing.T) {
	// A hand-written entry with a lowercase ticker and no name still loads.
	raw := `{"id":"08c5cbef-982a-4306-bd2f-07c0f4d2f1b8","date":"2025-01-10","ticker":"2330","side":"buy","market":"DOMESTIC","price":1000,"shares":10,"fee":20,"tax":0,"settlementAmount":10020}`

	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(raw), &tx))
	assert.Equal(t, "2330", tx.Ticker)
	assert.Equal(t, "2330", tx.Name, "missing name falls back to the ticker")
	assert.Equal(t, "TWD", tx.Price.Currency())
	assert.True(t, tx.Settlement.Equal(TWD(10020)))
}
