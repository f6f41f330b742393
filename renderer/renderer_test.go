package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ymlai/tracker"
)

func testLedger(t *testing.T) *tracker.Ledger {
	t.Helper()
	cfg := tracker.DefaultConfig()
	l := tracker.NewLedger()

	mk := func(on tracker.Date, ticker string, side tracker.Side, market tracker.Market, price, shares float64) {
		t.Helper()
		tx, err := tracker.NewTransaction(on, ticker, "", side, market, tracker.M(price, market.Currency()), tracker.Q(shares), false, cfg)
		if err != nil {
			t.Fatal(err)
		}
		l.Append(tx)
	}

	mk(tracker.NewDate(2025, time.January, 10), "2330", tracker.Buy, tracker.Domestic, 1000, 100)
	mk(tracker.NewDate(2025, time.February, 3), "2330", tracker.Sell, tracker.Domestic, 1100, 40)
	mk(tracker.NewDate(2025, time.January, 20), "VOO", tracker.Buy, tracker.Foreign, 400, 2.5)
	l.SetPrice("2330", decimal.NewFromInt(1085))
	return l
}

// headings parses markdown and collects its heading texts by level.
func headings(t *testing.T, md string) map[int][]string {
	t.Helper()
	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	out := make(map[int][]string)
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			out[h.Level] = append(out[h.Level], b.String())
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestHoldingsMarkdown(t *testing.T) {
	l := testLedger(t)
	md, err := HoldingsMarkdown(l.Book(tracker.DefaultConfig()), "")
	if err != nil {
		t.Fatal(err)
	}

	hs := headings(t, md)
	if got := hs[1]; len(got) != 1 || got[0] != "Holdings" {
		t.Errorf("h1 = %v", got)
	}
	if got := hs[2]; len(got) != 2 || got[0] != "DOMESTIC (TWD)" || got[1] != "FOREIGN (USD)" {
		t.Errorf("h2 = %v, want one section per market in fixed order", got)
	}

	for _, want := range []string{"| 2330 |", "| VOO |", "| **Total** |"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	l := tracker.NewLedger()
	md, err := HoldingsMarkdown(l.Book(tracker.DefaultConfig()), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "No open positions.") {
		t.Errorf("got:\n%s", md)
	}
}

func TestHoldingsMarkdown_UnknownSortField(t *testing.T) {
	l := tracker.NewLedger()
	if _, err := HoldingsMarkdown(l.Book(tracker.DefaultConfig()), "volume"); err == nil {
		t.Error("want error for an unknown sort field")
	}
}

func TestRealizedMarkdown(t *testing.T) {
	l := testLedger(t)
	md, err := RealizedMarkdown(l.Book(tracker.DefaultConfig()), "")
	if err != nil {
		t.Fatal(err)
	}

	hs := headings(t, md)
	if got := hs[1]; len(got) != 1 || got[0] != "Realized Gains" {
		t.Errorf("h1 = %v", got)
	}
	// Only the domestic ticker has sells.
	if got := hs[2]; len(got) != 1 || got[0] != "DOMESTIC (TWD)" {
		t.Errorf("h2 = %v", got)
	}
	if !strings.Contains(md, "| 2330 |") {
		t.Errorf("missing realized row in:\n%s", md)
	}
}

func TestRealizedMarkdown_Empty(t *testing.T) {
	l := tracker.NewLedger()
	md, err := RealizedMarkdown(l.Book(tracker.DefaultConfig()), "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(md, "No realized gains yet.") {
		t.Errorf("got:\n%s", md)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	l := testLedger(t)

	md := TransactionsMarkdown(l, "")
	if !strings.Contains(md, "# Transactions") {
		t.Errorf("missing title in:\n%s", md)
	}
	for _, want := range []string{"2025-01-10", "2025-02-03", "| VOO |"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}

	md = TransactionsMarkdown(l, "VOO")
	if strings.Contains(md, "| 2330 |") {
		t.Errorf("ticker filter leaked other rows:\n%s", md)
	}
	if !strings.Contains(md, "# Transactions for VOO") {
		t.Errorf("missing filtered title in:\n%s", md)
	}

	md = TransactionsMarkdown(tracker.NewLedger(), "")
	if !strings.Contains(md, "No transactions.") {
		t.Errorf("got:\n%s", md)
	}
}
