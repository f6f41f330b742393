package tracker

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RoundTrip(t *testing.T) {
	l := NewLedger()
	tx1, err := NewTransaction(day(time.January, 10), "2330", "TSMC", Buy, Domestic, TWD(1000), Q(100), false, DefaultConfig())
	require.NoError(t, err)
	tx2, err := NewTransaction(day(time.February, 3), "VOO", "", Buy, Foreign, USD(400), Q(2.5), false, DefaultConfig())
	require.NoError(t, err)
	l.Append(tx1, tx2)
	l.SetPrice("2330", dec("1085"))

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Domestic.FeeDiscount = dec("0.28")
	require.NoError(t, EncodeState(&buf, l, cfg))

	back, backCfg, err := DecodeState(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, back.Len())

	var got []Transaction
	for _, tx := range back.Transactions() {
		got = append(got, tx)
	}
	assert.True(t, tx1.Equal(got[0]))
	assert.True(t, tx2.Equal(got[1]))

	p, ok := back.Price("2330")
	require.True(t, ok)
	assert.True(t, p.Equal(dec("1085")))
	assert.True(t, backCfg.Domestic.FeeDiscount.Equal(dec("0.28")))
}

func TestDecodeState_EmptyDocument(t *testing.T) {
	// A bare {} is a valid state: empty log, default settings.
	l, cfg, err := DecodeState(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.True(t, cfg.Domestic.FeeRate.Equal(dec("0.001425")))
	assert.True(t, cfg.Foreign.TaxRate.Equal(dec("0.0000278")))
}

func TestDecodeState_PartialSettings(t *testing.T) {
	// Settings written by an older version may miss rate fields entirely;
	// the unset ones are backfilled from the defaults.
	doc := `{"transactions":[],"settings":{"domestic":{"feeDiscount":0.5}}}`
	_, cfg, err := DecodeState(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, cfg.Domestic.FeeDiscount.Equal(dec("0.5")))
	assert.True(t, cfg.Domestic.FeeRate.Equal(dec("0.001425")), "unset rate backfilled")
	assert.True(t, cfg.Domestic.MinFee.Equal(dec("20")))
	assert.True(t, cfg.Foreign.FeeRate.Equal(dec("0.001")))
}

func TestDecodeState_NormalizesPriceTickers(t *testing.T) {
	doc := `{"manualPrices":{"voo":376.3}}`
	l, _, err := DecodeState(strings.NewReader(doc))
	require.NoError(t, err)
	p, ok := l.Price("VOO")
	require.True(t, ok)
	assert.True(t, p.Equal(dec("376.3")))
}

func TestDecodeState_SortsTransactions(t *testing.T) {
	// The log on disk may be hand-edited out of order; loading restores
	// chronological order.
	doc := `{"transactions":[
		{"id":"08c5cbef-982a-4306-bd2f-07c0f4d2f1b8","date":"2025-03-01","ticker":"2330","side":"sell","market":"DOMESTIC","price":1100,"shares":10,"fee":20,"tax":33,"settlementAmount":10947},
		{"id":"25cf4421-5acf-41d0-a9f8-19b452f90bbf","date":"2025-01-10","ticker":"2330","side":"buy","market":"DOMESTIC","price":1000,"shares":10,"fee":20,"tax":0,"settlementAmount":10020}
	]}`
	l, _, err := DecodeState(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, day(time.January, 10), l.OldestTransactionDate())
	assert.Equal(t, day(time.March, 1), l.NewestTransactionDate())
}

func TestEncodeState_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeState(&buf, &Ledger{}, DefaultConfig()))
	assert.Contains(t, buf.String(), `"transactions": []`, "an empty log is persisted as [], not null")
}

func TestEncodeState_DecimalsAsNumbers(t *testing.T) {
	l := NewLedger()
	tx, err := NewTransaction(day(time.January, 10), "2330", "", Buy, Domestic, TWD(1000), Q(10), false, DefaultConfig())
	require.NoError(t, err)
	l.Append(tx)

	var buf bytes.Buffer
	require.NoError(t, EncodeState(&buf, l, DefaultConfig()))
	assert.Contains(t, buf.String(), `"price": 1000`)
	assert.NotContains(t, buf.String(), `"price": "1000"`)
}

func TestLoadState_MissingFile(t *testing.T) {
	l, cfg, err := LoadState(t.TempDir() + "/nope.json")
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.True(t, cfg.Domestic.MinFee.Equal(dec("20")))
}

func TestSaveThenLoadState(t *testing.T) {
	path := t.TempDir() + "/tracker.json"
	l := NewLedger()
	tx, err := NewTransaction(day(time.January, 10), "2330", "", Buy, Domestic, TWD(1000), Q(10), false, DefaultConfig())
	require.NoError(t, err)
	l.Append(tx)

	require.NoError(t, SaveState(path, l, DefaultConfig()))
	back, _, err := LoadState(path)
	require.NoError(t, err)
	require.Equal(t, 1, back.Len())
	for _, got := range back.Transactions() {
		assert.True(t, tx.Equal(got))
	}
}
