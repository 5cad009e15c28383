// Package scalable exports a Scalable Capital brokerage account's settled
// transaction history into a CSV file importable by Portfolio Performance.
//
// The export runs against an already authenticated browser session captured
// with `scx login`. The core of the package is a two-phase acquisition
// pipeline:
//   - Summary fetch: the broker's paginated transactions query is drained
//     page by page, keeping only settled transactions.
//   - Detail enrichment: each security trade is enriched, one request at a
//     time, with its fees, taxes and market valuation.
//
// The merged records are then projected onto the Portfolio Performance
// column set for one of two locales (German or US English), with exact
// decimal rounding and Berlin-local timestamps.
//
// The remote calls live in the broker subpackage; this package owns the
// domain model, the locale formatting, the CSV rendering and the pipeline
// orchestration behind the `scx` command-line tool.
package scalable
