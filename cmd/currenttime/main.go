// Package main provides the entry point for the currenttime CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/noodlebox/currenttime/internal/cli"
)

// Set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	stop()
	if err != nil {
		// Cobra has already printed the error.
		os.Exit(cli.ExitCodeForError(err))
	}
}
