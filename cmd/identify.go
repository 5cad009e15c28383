package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/scalable/broker"
	"github.com/google/subcommands"
)

type identifyCmd struct{}

func (*identifyCmd) Name() string { return "identify" }
func (*identifyCmd) Synopsis() string {
	return "resolve and print the session identifiers without any network call"
}
func (*identifyCmd) Usage() string {
	return `scx identify

  Resolves the person and portfolio ids from the stored session and prints
  them. Useful to check a fresh 'scx login' before exporting.
`
}

func (*identifyCmd) SetFlags(f *flag.FlagSet) {}

func (c *identifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	configureLogging()

	session, err := broker.LoadSession(sessionPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	personID, portfolioID, err := session.Identity()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("personId:   ", personID)
	fmt.Println("portfolioId:", portfolioID)
	return subcommands.ExitSuccess
}
