package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// Start runs the eoatracker command line until it finishes or the process
// is interrupted.
func Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app := &cli.Command{
		Name:        "eoatracker",
		Usage:       "eoatracker [command] [flags]",
		Description: "Tracks transactions between externally owned accounts across EVM chains and reports their activity.",
		Commands: []*cli.Command{
			watchCommand(),
			reportCommand(),
		},
	}

	return app.Run(ctx, os.Args)
}
