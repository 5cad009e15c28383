package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/scalable"
	"github.com/etnz/scalable/broker"
	"github.com/google/subcommands"
)

// runExport wires the pipeline from the stored session and runs it for one
// locale; both export commands end up here.
func runExport(loc scalable.Locale) subcommands.ExitStatus {
	configureLogging()

	session, err := broker.LoadSession(sessionPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client := broker.NewClient(session)
	client.Endpoint = endpoint()

	exporter := &scalable.Exporter{
		Identity:  session,
		Summaries: client,
		Details:   client,
		Progress:  &progressBar{w: os.Stderr},
		Saver:     dirSaver{dir: *outputFlag},
	}

	report, err := exporter.Export(loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(report.Markdown())
	return subcommands.ExitSuccess
}
