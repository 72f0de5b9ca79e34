package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/rootpack/rootpack/internal"
	"github.com/rootpack/rootpack/internal/cli"
)

// The entry point for the rootpack CLI.
//
// Initializes logging and executes the root command. If any error occurs
// during execution, it exits with a non-zero code.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Execute.
func logger() *slog.Logger {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           logLevel(),
		ReportTimestamp: false,
		Prefix:          internal.Name,
	})
	return slog.New(handler)
}

// Returns the log level derived from build-time linker flags.
func logLevel() log.Level {
	if internal.IsDebug() {
		return log.DebugLevel
	}
	if internal.IsQuiet() {
		return log.WarnLevel
	}
	return log.InfoLevel
}
