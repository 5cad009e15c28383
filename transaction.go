package scalable

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates the broker's transaction summary variants.
type TransactionType string

const (
	SecurityTransaction         TransactionType = "SECURITY_TRANSACTION"
	CashTransaction             TransactionType = "CASH_TRANSACTION"
	NonTradeSecurityTransaction TransactionType = "NON_TRADE_SECURITY_TRANSACTION"
)

// Side is the direction of a security trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// CashTransactionType qualifies a CASH_TRANSACTION summary.
type CashTransactionType string

const (
	Deposit      CashTransactionType = "DEPOSIT"
	Withdrawal   CashTransactionType = "WITHDRAWAL"
	TaxReturn    CashTransactionType = "TAX_RETURN"
	Distribution CashTransactionType = "DISTRIBUTION"
	Interest     CashTransactionType = "INTEREST"
)

// Status is the settlement status reported by the broker.
type Status string

// Settled is the only status retained by the export, everything else
// (pending, cancelled, expired) is dropped at fetch time.
const Settled Status = "SETTLED"

// Summary is one transaction as returned by the paginated summaries query.
//
// The broker returns a union of three variants sharing the common fields; the
// variant fields are flattened here and only meaningful for the matching Type.
// Numeric fields use decimal.NullDecimal so that a value absent from the
// payload stays absent instead of becoming 0.
type Summary struct {
	ID                string          `json:"id"`
	Currency          string          `json:"currency"`
	Type              TransactionType `json:"type"`
	Status            Status          `json:"status"`
	IsCancellation    bool            `json:"isCancellation"`
	LastEventDateTime time.Time       `json:"lastEventDateTime"`
	Description       string          `json:"description"`

	// BrokerSecurityTransactionSummary
	Side     Side                `json:"side,omitempty"`
	Quantity decimal.NullDecimal `json:"quantity"`
	Amount   decimal.NullDecimal `json:"amount"`
	ISIN     string              `json:"isin,omitempty"`

	// BrokerCashTransactionSummary
	CashTransactionType CashTransactionType `json:"cashTransactionType,omitempty"`
	RelatedISIN         string              `json:"relatedIsin,omitempty"`

	// BrokerNonTradeSecurityTransactionSummary
	NonTradeSecurityTransactionType string `json:"nonTradeSecurityTransactionType,omitempty"`
}

// Detail is the per-transaction enrichment fetched for security trades.
type Detail struct {
	// Fees is the sum of the transaction, venue and crypto spread fees,
	// each counted as zero when the broker omits it.
	Fees decimal.Decimal
	// Taxes and MarketValuation pass through as reported. Absent stays
	// absent and renders as an empty CSV field.
	Taxes           decimal.NullDecimal
	MarketValuation decimal.NullDecimal
}

// nullDecimal wraps a decimal that is known to be present.
func nullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// Record pairs a settled summary with its optional detail enrichment.
// Details stays nil when the transaction is not a security trade or when the
// detail fetch failed.
type Record struct {
	Summary
	Details *Detail
}
