package scalable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Report summarizes a finished export for terminal display.
type Report struct {
	Filename string
	Rows     int
	Trades   int
	Cash     int
	Other    int
	// MissingDetails counts the security trades whose detail fetch failed:
	// their fee, tax and valuation columns are empty in the CSV.
	MissingDetails int

	gross map[string]decimal.Decimal // summed Amount per currency
}

func newReport(filename string, records []Record, missing int) *Report {
	r := &Report{
		Filename:       filename,
		Rows:           len(records),
		MissingDetails: missing,
		gross:          make(map[string]decimal.Decimal),
	}
	for _, rec := range records {
		switch rec.Type {
		case SecurityTransaction:
			r.Trades++
		case CashTransaction:
			r.Cash++
		default:
			r.Other++
		}
		if rec.Amount.Valid && rec.Currency != "" {
			r.gross[rec.Currency] = r.gross[rec.Currency].Add(rec.Amount.Decimal)
		}
	}
	return r
}

// displayAmount renders an amount in the currency's own display convention.
func displayAmount(d decimal.Decimal, code string) string {
	// calling the constructor is the way to get a never-nil currency.
	cur := money.New(0, code).Currency()
	return money.New(d.Shift(int32(cur.Fraction)).IntPart(), code).Display()
}

// Markdown renders the report as a small markdown document suitable for
// terminal display.
func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Export complete\n\n")
	fmt.Fprintf(&b, "Wrote **%d** transactions to `%s`.\n\n", r.Rows, r.Filename)
	fmt.Fprintf(&b, "- Security trades: %d\n", r.Trades)
	if r.MissingDetails > 0 {
		fmt.Fprintf(&b, "- Trades without details (empty fee/tax columns): %d\n", r.MissingDetails)
	}
	fmt.Fprintf(&b, "- Cash transactions: %d\n", r.Cash)
	if r.Other > 0 {
		fmt.Fprintf(&b, "- Other transactions: %d\n", r.Other)
	}

	if len(r.gross) > 0 {
		fmt.Fprintf(&b, "\nNet movement per currency:\n\n")
		codes := make([]string, 0, len(r.gross))
		for code := range r.gross {
			codes = append(codes, code)
		}
		slices.Sort(codes)
		for _, code := range codes {
			fmt.Fprintf(&b, "- %s\n", displayAmount(r.gross[code], code))
		}
	}
	return b.String()
}
