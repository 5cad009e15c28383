package cmd

import (
	"context"
	"flag"

	"github.com/etnz/scalable"
	"github.com/google/subcommands"
)

type exportDECmd struct{}

func (*exportDECmd) Name() string { return "export-de" }
func (*exportDECmd) Synopsis() string {
	return "export transactions as a German Portfolio Performance CSV"
}
func (*exportDECmd) Usage() string {
	return `scx export-de [-o <dir>]

  Exports all settled transactions of the captured session as a
  semicolon-delimited CSV with German column headers and labels, ready to be
  imported into Portfolio Performance.
`
}

func (*exportDECmd) SetFlags(f *flag.FlagSet) {}

func (c *exportDECmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runExport(scalable.GermanDE)
}
