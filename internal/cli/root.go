package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/rootpack/rootpack/internal"
)

// Represents the root command for the rootpack CLI.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Pack    PackCmd    `cmd:"" help:"Pack an input list into a root filesystem archive."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Packs the minimal root filesystem needed to run a program.\n\n"+
			"Reads a list of observed file references, follows every symlink chain,\n"+
			"prunes redundant folders, and writes the result as a tar archive."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	level := log.InfoLevel
	if RootCmd.Debug || internal.IsDebug() {
		level = log.DebugLevel
	} else if RootCmd.Quiet || internal.IsQuiet() {
		level = log.WarnLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(handler))
}
