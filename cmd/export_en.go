package cmd

import (
	"context"
	"flag"

	"github.com/etnz/scalable"
	"github.com/google/subcommands"
)

type exportENCmd struct{}

func (*exportENCmd) Name() string { return "export-en" }
func (*exportENCmd) Synopsis() string {
	return "export transactions as an English Portfolio Performance CSV"
}
func (*exportENCmd) Usage() string {
	return `scx export-en [-o <dir>]

  Exports all settled transactions of the captured session as a
  comma-delimited CSV with English column headers and labels, ready to be
  imported into Portfolio Performance.
`
}

func (*exportENCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportENCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runExport(scalable.EnglishUS)
}
