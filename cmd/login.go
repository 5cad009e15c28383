package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/scalable/broker"
	"github.com/google/subcommands"
)

type headerFlags []string

func (h *headerFlags) String() string {
	return strings.Join(*h, ", ")
}

func (h *headerFlags) Set(value string) error {
	*h = append(*h, value)
	return nil
}

type loginCmd struct {
	headers     headerFlags
	page        string
	state       string
	personID    string
	portfolioID string
	// Deprecated flags for curl compatibility
	curl string
	body string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "stores the browser session captured from the portal" }
func (*loginCmd) Usage() string {
	return `scx login -H <header1> -H <header2> ... [-page <url>] [-state <file>]

Stores the authenticated browser session for use by the export commands.
This command is designed to be user-friendly by accepting a pasted 'curl'
command structure: open the transactions page, copy a request to
broker/api/data as curl, and paste its headers here.

The transactions page address carries the portfolio id; a saved page-state
snapshot (see 'scx topic login') carries the person id. Both can also be
given explicitly with -person-id and -portfolio-id.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.headers, "H", "Header for the request (can be specified multiple times)")
	f.StringVar(&c.page, "page", "", "Address of the transactions page (source of the portfolio id)")
	f.StringVar(&c.state, "state", "", "Path to a captured page-state JSON snapshot (source of the person id)")
	f.StringVar(&c.personID, "person-id", "", "Explicit person id, skips the page-state search")
	f.StringVar(&c.portfolioID, "portfolio-id", "", "Explicit portfolio id, skips the page address lookup")
	// Deprecated flags for curl compatibility
	f.StringVar(&c.curl, "curl", "", "ignored, for curl compatibility")
	f.StringVar(&c.body, "b", "", "ignored, for curl compatibility")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.headers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -H flag is required.")
		return subcommands.ExitUsageError
	}

	session := &broker.Session{
		Headers:     broker.ParseHeaders(c.headers),
		Page:        c.page,
		StatePath:   c.state,
		PersonID:    c.personID,
		PortfolioID: c.portfolioID,
	}
	if err := session.Save(sessionPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Session successfully stored.")
	return subcommands.ExitSuccess
}
