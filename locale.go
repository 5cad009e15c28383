package scalable

import (
	"fmt"
	"strings"
	"time"
	// the export runs on machines that may not ship a tz database.
	_ "time/tzdata"

	"github.com/shopspring/decimal"
)

// Locale selects one of the two CSV flavors understood by Portfolio
// Performance: German (semicolon delimited, decimal comma) or US English
// (comma delimited, decimal point).
type Locale string

const (
	GermanDE  Locale = "de-DE"
	EnglishUS Locale = "en-US"
)

// Timestamps are booked in the broker's local market time regardless of the
// requested CSV locale.
var berlin = mustLoadLocation("Europe/Berlin")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("cannot load time zone %q: %v", name, err))
	}
	return loc
}

// Supported reports whether l is one of the two exportable locales.
func (l Locale) Supported() bool { return l == GermanDE || l == EnglishUS }

// Delimiter returns the CSV field delimiter for the locale.
func (l Locale) Delimiter() string {
	if l == GermanDE {
		return ";"
	}
	return ","
}

// Header returns the fixed CSV header line for the locale.
func (l Locale) Header() string {
	if l == GermanDE {
		return "Datum;Uhrzeit;Typ;Wertpapiername;ISIN;Wert;Stück;Buchungswährung;Gebühren;Steuern;Bruttobetrag;Notiz"
	}
	return "Date,Time,Type,Security Name,ISIN,Value,Shares,Transaction Currency,Fees,Taxes,Gross Amount,Note"
}

var sideLabels = map[Locale]map[Side]string{
	GermanDE:  {Buy: "Kauf", Sell: "Verkauf"},
	EnglishUS: {Buy: "Buy", Sell: "Sell"},
}

var cashLabels = map[Locale]map[CashTransactionType]string{
	GermanDE: {
		Deposit:      "Einlage",
		Withdrawal:   "Entnahme",
		TaxReturn:    "Steuerrückerstattung",
		Distribution: "Dividende",
		Interest:     "Zinsen",
	},
	EnglishUS: {
		Deposit:      "Deposit",
		Withdrawal:   "Removal",
		TaxReturn:    "Tax Refund",
		Distribution: "Dividend",
		Interest:     "Interest",
	},
}

// SideLabel returns the localized label of a trade direction, or the raw
// value when the broker introduces one we do not know.
func (l Locale) SideLabel(s Side) string {
	if label, ok := sideLabels[l][s]; ok {
		return label
	}
	return string(s)
}

// CashLabel returns the localized label of a cash transaction type, or the
// raw value when unknown.
func (l Locale) CashLabel(t CashTransactionType) string {
	if label, ok := cashLabels[l][t]; ok {
		return label
	}
	return string(t)
}

// FormatDate renders the booking date of a UTC instant, in Berlin time.
func (l Locale) FormatDate(t time.Time) string {
	layout := "01/02/2006"
	if l == GermanDE {
		layout = "02.01.2006"
	}
	return t.In(berlin).Format(layout)
}

// FormatTime renders the booking time of a UTC instant, in Berlin time.
func (l Locale) FormatTime(t time.Time) string {
	return t.In(berlin).Format("15:04:05")
}

// FormatNumber renders a decimal rounded to exactly two places, with the
// locale's decimal separator. An absent value renders as the empty field.
//
// Rounding is half away from zero on the exact decimal value, so the
// aggregation 2.005+1.00 renders "3.01" and never a binary-float artifact.
func (l Locale) FormatNumber(n decimal.NullDecimal) string {
	if !n.Valid {
		return ""
	}
	s := n.Decimal.StringFixed(2)
	if l == GermanDE {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}
