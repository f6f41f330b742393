package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// stateFile is the persisted shape of the whole tracker state. Every field is
// optional on read: older or partial files merge against defaults.
type stateFile struct {
	Transactions []Transaction              `json:"transactions"`
	Settings     *Config                    `json:"settings,omitempty"`
	ManualPrices map[string]decimal.Decimal `json:"manualPrices,omitempty"`
}

// DecodeState decodes the full tracker state from a JSON document: the
// transaction log, the fee/tax settings, and the manual prices. Missing
// fields fall back to defaults, and unset rate fields are backfilled, so a
// state file written by an older version still loads.
func DecodeState(r io.Reader) (*Ledger, Config, error) {
	var sf stateFile
	if err := json.NewDecoder(r).Decode(&sf); err != nil {
		return nil, Config{}, fmt.Errorf("could not decode state: %w", err)
	}

	cfg := DefaultConfig()
	if sf.Settings != nil {
		cfg = sf.Settings.withDefaults()
	}

	ledger := NewLedger()
	ledger.Append(sf.Transactions...)
	for ticker, price := range sf.ManualPrices {
		ledger.prices[strings.ToUpper(ticker)] = price
	}
	return ledger, cfg, nil
}

// EncodeState writes the full tracker state as an indented JSON document,
// transactions in chronological order for a stable, diffable output.
func EncodeState(w io.Writer, ledger *Ledger, cfg Config) error {
	txs := ledger.transactions
	if txs == nil {
		txs = []Transaction{} // persist an empty log as [], not null
	}
	sf := stateFile{
		Transactions: txs,
		Settings:     &cfg,
		ManualPrices: ledger.prices,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sf); err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	return nil
}

// LoadState reads the tracker state from a file. A missing file is not an
// error: it yields an empty ledger and default settings.
func LoadState(path string) (*Ledger, Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("state file %q does not exist, starting empty", path)
		return NewLedger(), DefaultConfig(), nil
	}
	if err != nil {
		return nil, Config{}, fmt.Errorf("could not open state file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeState(f)
}

// SaveState writes the tracker state to a file.
func SaveState(path string, ledger *Ledger, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create state file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeState(f, ledger, cfg)
}
