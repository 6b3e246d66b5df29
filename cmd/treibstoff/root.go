package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conestack/treibstoff/internal/buildinfo"
	"github.com/conestack/treibstoff/internal/config"
)

// newRootCommand creates a fresh command tree so tests do not share state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treibstoff",
		Short: "Publish the treibstoff front-end assets",
		Long: `treibstoff ships the treibstoff JavaScript bundle and stylesheet and
declares them as resources for a host web application.

Examples:
   treibstoff serve            # Serve the static view, manifest and metrics
   treibstoff assets           # List declared resources
   treibstoff version --json   # Show package metadata`,
		SilenceUsage: true,
	}

	cmd.Version = buildinfo.Version
	cmd.SetVersionTemplate("treibstoff {{.Version}}\n")

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newAssetsCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// setupLogger installs the default slog logger: text in development, JSON
// everywhere else.
func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
