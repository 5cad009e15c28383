package scalable

import (
	"fmt"
	"log"
	"time"
)

// IdentityProvider resolves the two session-scoped identifiers addressing
// the broker API. Implementations may read them from a stored session, a
// captured page state, or explicit user input; the pipeline only requires
// that both come back non-empty.
type IdentityProvider interface {
	Identity() (personID, portfolioID string, err error)
}

// SummarySource fetches all settled transaction summaries for an account.
type SummarySource interface {
	Transactions(personID, portfolioID string) ([]Summary, error)
}

// DetailSource fetches the financial detail of one security trade.
type DetailSource interface {
	TransactionDetails(personID, portfolioID, transactionID string) (*Detail, error)
}

// Progress receives the advancement of the detail enrichment phase.
// Start is called before the first fetch and Stop unconditionally when the
// phase ends, success or failure.
type Progress interface {
	Start(total int)
	Update(done, total int)
	Stop()
}

// Saver is the file-save boundary receiving the finished CSV.
type Saver interface {
	Save(filename string, content []byte) error
}

// noProgress is the default sink.
type noProgress struct{}

func (noProgress) Start(int)       {}
func (noProgress) Update(int, int) {}
func (noProgress) Stop()           {}

// Exporter runs the full export pipeline: resolve identifiers, fetch the
// settled summaries, enrich security trades with details one request at a
// time, render the locale CSV and hand it to the save boundary.
type Exporter struct {
	Identity  IdentityProvider
	Summaries SummarySource
	Details   DetailSource
	Progress  Progress // optional
	Saver     Saver

	// Now stamps the export filename, defaults to time.Now.
	Now func() time.Time
}

// Export runs the pipeline for one locale and returns a report of what was
// written.
//
// Identifier resolution failures are fatal and happen before any network
// call. Summary page failures and individual detail failures have already
// been degraded to partial data by the sources; anything else aborts the
// export. The progress sink is stopped on every path out of the enrichment
// loop.
func (e *Exporter) Export(loc Locale) (*Report, error) {
	personID, portfolioID, err := e.Identity.Identity()
	if err != nil {
		return nil, fmt.Errorf("cannot resolve session identifiers: %w", err)
	}
	log.Printf("exporting transactions for person %s portfolio %s", personID, portfolioID)

	summaries, err := e.Summaries.Transactions(personID, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch transactions: %w", err)
	}

	records := make([]Record, len(summaries))
	var trades []int // indices of security trades, in fetch order
	for i, s := range summaries {
		records[i] = Record{Summary: s}
		if s.Type == SecurityTransaction {
			trades = append(trades, i)
		}
	}

	failures := e.enrich(records, trades, personID, portfolioID)

	content, err := Render(records, loc)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	filename := fmt.Sprintf("scalable_transactions_export_%s.csv",
		now().UTC().Format("2006-01-02T15:04:05"))
	if err := e.Saver.Save(filename, []byte(content)); err != nil {
		return nil, fmt.Errorf("cannot save export: %w", err)
	}

	log.Printf("transactions exported: %d", len(records))
	return newReport(filename, records, failures), nil
}

// enrich runs the sequential detail loop: one in-flight request at a time,
// strictly in fetch order, progress reported after each fetch. A failed
// detail is logged and leaves the record unenriched.
func (e *Exporter) enrich(records []Record, trades []int, personID, portfolioID string) (failures int) {
	progress := e.Progress
	if progress == nil {
		progress = noProgress{}
	}

	total := len(trades)
	log.Printf("loading details for %d transactions", total)
	progress.Start(total)
	defer progress.Stop()

	for done, i := range trades {
		d, err := e.Details.TransactionDetails(personID, portfolioID, records[i].ID)
		if err != nil {
			failures++
			log.Printf("no details for transaction %s: %v", records[i].ID, err)
		} else {
			records[i].Details = d
		}
		progress.Update(done+1, total)
	}
	return failures
}
