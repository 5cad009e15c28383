// Package cmd implements the scx CLI that exports Scalable Capital
// transactions to Portfolio Performance CSV files.
package cmd

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/scalable/broker"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&identifyCmd{}, "session")

	c.Register(&exportDECmd{}, "export")
	c.Register(&exportENCmd{}, "export")

	c.Register(&topicCmd{}, "documentation")
}

// Environment variables mirrored by the global flags.
const (
	EnvSessionFile = "SCX_SESSION_FILE"
	EnvAPI         = "SCX_API"
)

// as a CLI application it is short lived, global flags are fine.

var sessionFlag = flag.String("session-file", "", "Path to the captured session file.\n If missing it will read the environment variable "+EnvSessionFile+", then default to a file in the system temp directory.")
var apiFlag = flag.String("api", "", "Broker API endpoint override.\n If missing it will read the environment variable "+EnvAPI+". Mostly useful for testing.")
var outputFlag = flag.String("o", ".", "Directory where the export file is written.")
var Verbose = flag.Bool("v", false, "Log every API request and skipped unit of work.")

// configureLogging silences the diagnostic log unless -v is given; failed
// pages and details degrade the export silently by default.
func configureLogging() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// sessionPath resolves the session file location from flag, environment or
// the temp-directory default.
func sessionPath() string {
	if *sessionFlag == "" {
		*sessionFlag = os.Getenv(EnvSessionFile)
	}
	if *sessionFlag == "" {
		return broker.DefaultSessionPath()
	}
	return *sessionFlag
}

// endpoint resolves the API endpoint from flag, environment or the live
// portal default.
func endpoint() string {
	if *apiFlag == "" {
		*apiFlag = os.Getenv(EnvAPI)
	}
	if *apiFlag == "" {
		return broker.DefaultEndpoint
	}
	return *apiFlag
}

// dirSaver writes the finished export into the output directory.
type dirSaver struct {
	dir string
}

func (s dirSaver) Save(filename string, content []byte) error {
	return os.WriteFile(filepath.Join(s.dir, filename), content, 0644)
}
