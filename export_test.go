package scalable

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeIdentity struct {
	person, portfolio string
	err               error
}

func (f fakeIdentity) Identity() (string, string, error) {
	return f.person, f.portfolio, f.err
}

type fakeSummaries struct {
	summaries []Summary
	called    bool
}

func (f *fakeSummaries) Transactions(personID, portfolioID string) ([]Summary, error) {
	f.called = true
	return f.summaries, nil
}

type fakeDetails struct {
	calls   []string
	details map[string]*Detail
	errs    map[string]error
}

func (f *fakeDetails) TransactionDetails(personID, portfolioID, transactionID string) (*Detail, error) {
	f.calls = append(f.calls, transactionID)
	if err := f.errs[transactionID]; err != nil {
		return nil, err
	}
	return f.details[transactionID], nil
}

type recordingProgress struct {
	started, stopped bool
	updates          [][2]int
}

func (p *recordingProgress) Start(total int)      { p.started = true }
func (p *recordingProgress) Update(done, tot int) { p.updates = append(p.updates, [2]int{done, tot}) }
func (p *recordingProgress) Stop()                { p.stopped = true }

type memSaver struct {
	filename string
	content  string
}

func (s *memSaver) Save(filename string, content []byte) error {
	s.filename = filename
	s.content = string(content)
	return nil
}

func trade(id string) Summary {
	return Summary{
		ID:                id,
		Currency:          "EUR",
		Type:              SecurityTransaction,
		Status:            Settled,
		LastEventDateTime: bookingTime,
		Side:              Buy,
		Quantity:          num("1"),
		Amount:            num("100.00"),
		ISIN:              "US1",
	}
}

func TestExportEnrichmentOrderAndProgress(t *testing.T) {
	cash := Summary{
		ID: "c-1", Currency: "EUR", Type: CashTransaction, Status: Settled,
		LastEventDateTime: bookingTime, CashTransactionType: Deposit, Amount: num("50"),
	}
	details := &fakeDetails{details: map[string]*Detail{
		"t-1": {Fees: decimal.RequireFromString("1.00")},
		"t-2": {Fees: decimal.RequireFromString("2.00")},
		"t-3": {Fees: decimal.RequireFromString("3.00")},
	}}
	progress := &recordingProgress{}
	saver := &memSaver{}

	e := &Exporter{
		Identity:  fakeIdentity{person: "p", portfolio: "pf"},
		Summaries: &fakeSummaries{summaries: []Summary{trade("t-1"), cash, trade("t-2"), trade("t-3")}},
		Details:   details,
		Progress:  progress,
		Saver:     saver,
		Now:       func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) },
	}

	report, err := e.Export(EnglishUS)
	if err != nil {
		t.Fatalf("Export() unexpected error = %v", err)
	}

	// details fetched strictly in fetch order, cash transactions skipped.
	wantCalls := []string{"t-1", "t-2", "t-3"}
	if len(details.calls) != len(wantCalls) {
		t.Fatalf("detail calls = %v, want %v", details.calls, wantCalls)
	}
	for i, id := range wantCalls {
		if details.calls[i] != id {
			t.Errorf("detail call %d = %q, want %q", i, details.calls[i], id)
		}
	}

	if !progress.started || !progress.stopped {
		t.Errorf("progress started=%v stopped=%v, want both true", progress.started, progress.stopped)
	}
	wantUpdates := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if len(progress.updates) < len(wantUpdates) {
		t.Fatalf("progress updates = %v, want at least %v", progress.updates, wantUpdates)
	}
	got := progress.updates[len(progress.updates)-3:]
	for i, want := range wantUpdates {
		if got[i] != want {
			t.Errorf("progress update %d = %v, want %v", i, got[i], want)
		}
	}

	if want := "scalable_transactions_export_2024-01-15T10:00:00.csv"; saver.filename != want {
		t.Errorf("filename = %q, want %q", saver.filename, want)
	}
	if lines := strings.Split(saver.content, "\n"); len(lines) != 5 {
		t.Errorf("exported %d lines, want header plus 4 rows", len(lines))
	}
	if report.Rows != 4 || report.Trades != 3 || report.Cash != 1 {
		t.Errorf("report = %+v, want 4 rows, 3 trades, 1 cash", report)
	}
}

func TestExportMissingIdentifiersIsFatal(t *testing.T) {
	summaries := &fakeSummaries{}
	e := &Exporter{
		Identity:  fakeIdentity{err: errors.New("could not find personId")},
		Summaries: summaries,
		Details:   &fakeDetails{},
		Saver:     &memSaver{},
	}

	if _, err := e.Export(GermanDE); err == nil {
		t.Fatal("Export() expected an error when identifiers are missing")
	}
	if summaries.called {
		t.Error("no network call may happen when identifiers are missing")
	}
}

func TestExportDetailFailureDegrades(t *testing.T) {
	details := &fakeDetails{
		details: map[string]*Detail{"t-2": {Fees: decimal.RequireFromString("0.99")}},
		errs:    map[string]error{"t-1": errors.New("getTransactionDetails returned 502 Bad Gateway")},
	}
	progress := &recordingProgress{}
	saver := &memSaver{}

	e := &Exporter{
		Identity:  fakeIdentity{person: "p", portfolio: "pf"},
		Summaries: &fakeSummaries{summaries: []Summary{trade("t-1"), trade("t-2")}},
		Details:   details,
		Progress:  progress,
		Saver:     saver,
	}

	report, err := e.Export(EnglishUS)
	if err != nil {
		t.Fatalf("Export() unexpected error = %v", err)
	}
	if report.MissingDetails != 1 {
		t.Errorf("MissingDetails = %d, want 1", report.MissingDetails)
	}
	if !progress.stopped {
		t.Error("progress must be stopped after the enrichment phase")
	}

	lines := strings.Split(saver.content, "\n")
	// t-1 row keeps empty fee columns, t-2 row carries its fee.
	if !strings.Contains(lines[1], ",,,,t-1") {
		t.Errorf("unenriched row = %q, want empty fees/taxes/valuation", lines[1])
	}
	if !strings.Contains(lines[2], "0.99") {
		t.Errorf("enriched row = %q, want fee 0.99", lines[2])
	}
}

func TestReportMarkdown(t *testing.T) {
	records := []Record{
		{Summary: trade("t-1")},
		{Summary: Summary{ID: "c-1", Currency: "EUR", Type: CashTransaction, Status: Settled,
			LastEventDateTime: bookingTime, CashTransactionType: Deposit, Amount: num("500")}},
	}
	md := newReport("out.csv", records, 1).Markdown()

	for _, want := range []string{
		"Wrote **2** transactions to `out.csv`",
		"Security trades: 1",
		"Cash transactions: 1",
		"Trades without details (empty fee/tax columns): 1",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, md)
		}
	}
	// 100 + 500 EUR net movement, in the currency's own display convention.
	if !strings.Contains(md, "600") {
		t.Errorf("Markdown() missing the per-currency total in:\n%s", md)
	}
}
