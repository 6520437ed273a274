// FILE: davipeterlini/mongo/cmd/mongoconf/main.go
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// Overridden by ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "mongoconf",
	})

	if err := newRootCommand(logger, version, commit, date).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
