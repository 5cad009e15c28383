package scalable

import (
	"fmt"
	"strings"
)

// this file renders enriched records into the Portfolio Performance CSV
// import format.

// Render turns the enriched records into the full CSV text (header included)
// for the requested locale. Records keep their input order.
//
// It fails only on an unsupported locale; with the fixed command set this is
// a programming error, not a runtime condition.
func Render(records []Record, loc Locale) (string, error) {
	if !loc.Supported() {
		return "", fmt.Errorf("unsupported export locale %q", loc)
	}

	var b strings.Builder
	b.WriteString(loc.Header())
	b.WriteString("\n")
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(row(r, loc), loc.Delimiter()))
	}
	return b.String(), nil
}

// row maps one record onto the column set
//
//	date, time, type, security name, isin, value, shares, currency,
//	fees, taxes, gross amount, note
//
// applying the per-variant remapping before formatting.
func row(r Record, loc Locale) []string {
	display := string(r.Type)
	name := r.Description
	isin := r.ISIN
	note := r.ID

	switch r.Type {
	case SecurityTransaction:
		display = loc.SideLabel(r.Side)

	case CashTransaction:
		display = loc.CashLabel(r.CashTransactionType)
		if r.CashTransactionType == Distribution {
			// dividends reference their security through relatedIsin.
			isin = r.RelatedISIN
		} else {
			// other cash movements carry their meaning in the free-text
			// description; keep it in the note next to the id so nothing
			// is lost, and leave the security name column empty.
			note = r.ID + " " + r.Description
			name = ""
		}
	}

	var fees, taxes, valuation string
	if r.Details != nil {
		fees = loc.FormatNumber(nullDecimal(r.Details.Fees))
		taxes = loc.FormatNumber(r.Details.Taxes)
		valuation = loc.FormatNumber(r.Details.MarketValuation)
	}

	return []string{
		loc.FormatDate(r.LastEventDateTime),
		loc.FormatTime(r.LastEventDateTime),
		display,
		name,
		isin,
		loc.FormatNumber(r.Amount),
		loc.FormatNumber(r.Quantity),
		r.Currency,
		fees,
		taxes,
		valuation,
		note,
	}
}
