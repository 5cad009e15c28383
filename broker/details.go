package broker

import (
	"github.com/etnz/scalable"
	"github.com/shopspring/decimal"
)

// TransactionDetails fetches the financial details of one security trade.
//
// A non-success status or a missing payload is an error for this transaction
// only: the caller logs it and keeps the row unenriched.
func (c *Client) TransactionDetails(personID, portfolioID, transactionID string) (*scalable.Detail, error) {
	op := operation{
		OperationName: "getTransactionDetails",
		Variables: map[string]any{
			"personId":      personID,
			"transactionId": transactionID,
			"portfolioId":   portfolioID,
		},
		Query: queryTransactionDetails,
	}

	jobj, err := c.post(portfolioID, op)
	if err != nil {
		return nil, err
	}

	var payload struct {
		TradeTransactionAmounts *struct {
			MarketValuation decimal.NullDecimal `json:"marketValuation"`
			TaxAmount       decimal.NullDecimal `json:"taxAmount"`
			TransactionFee  decimal.NullDecimal `json:"transactionFee"`
			VenueFee        decimal.NullDecimal `json:"venueFee"`
			CryptoSpreadFee decimal.NullDecimal `json:"cryptoSpreadFee"`
		} `json:"tradeTransactionAmounts"`
	}
	if err := dig(jobj, "$[0].data.account.brokerPortfolio.transactionDetails", &payload); err != nil {
		return nil, err
	}

	detail := &scalable.Detail{}
	if a := payload.TradeTransactionAmounts; a != nil {
		detail.Fees = sumFees(a.TransactionFee, a.VenueFee, a.CryptoSpreadFee)
		detail.Taxes = a.TaxAmount
		detail.MarketValuation = a.MarketValuation
	}
	return detail, nil
}

// sumFees adds the optional sub-fees, counting an absent fee as zero. The
// arithmetic stays decimal to keep the later 2-place rounding exact.
func sumFees(fees ...decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fees {
		if f.Valid {
			total = total.Add(f.Decimal)
		}
	}
	return total
}
