package broker

import (
	"log"

	"github.com/etnz/scalable"
)

// pageSize matches what the web app requests per page.
const pageSize = 50

// Transactions drains the paginated summaries query and returns every
// settled transaction, in server order.
//
// No server-side filtering is requested; the settled filter is applied per
// page before accumulation. The loop continues while the server returns at
// least one transaction and a non-null cursor; an empty page terminates it
// regardless of the cursor sent along. A failed page stops pagination and
// the transactions accumulated so far are used.
func (c *Client) Transactions(personID, portfolioID string) ([]scalable.Summary, error) {
	var settled []scalable.Summary
	var cursor *string

	for {
		op := operation{
			OperationName: "moreTransactions",
			Variables: map[string]any{
				"personId":    personID,
				"portfolioId": portfolioID,
				"input": map[string]any{
					"pageSize":   pageSize,
					"type":       []string{},
					"status":     []string{},
					"searchTerm": "",
					"cursor":     cursor,
				},
			},
			Query: queryMoreTransactions,
		}

		jobj, err := c.post(portfolioID, op)
		if err != nil {
			log.Printf("error while fetching transactions: %v", err)
			return settled, nil
		}

		var page struct {
			Cursor       *string            `json:"cursor"`
			Transactions []scalable.Summary `json:"transactions"`
		}
		if err := dig(jobj, "$[0].data.account.brokerPortfolio.moreTransactions", &page); err != nil {
			log.Printf("error while fetching transactions: %v", err)
			return settled, nil
		}

		if len(page.Transactions) == 0 {
			return settled, nil
		}
		for _, t := range page.Transactions {
			if t.Status == scalable.Settled {
				settled = append(settled, t)
			}
		}
		if page.Cursor == nil {
			return settled, nil
		}
		cursor = page.Cursor
	}
}
