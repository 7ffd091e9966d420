// Package cli provides the command-line interface for currenttime.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noodlebox/currenttime/internal/config"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates and returns the root command for the currenttime CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	a := &app{flags: flags, v: config.New()}

	cmd := &cobra.Command{
		Use:   "currenttime",
		Short: "Render the current time through symbol templates",
		Long: `currenttime keeps a snapshot of the wall clock, refreshed at the start of
every second, and renders it through templates such as "%h:%m:%s %a".

Symbols:
  %h  12-hour hour          %H  24-hour hour
  %g  12-hour, zero-padded  %G  24-hour, zero-padded
  %m  minutes               %s  seconds
  %a  am/pm                 %A  AM/PM

Unknown symbols are left as they are.`,
		Version:           formatVersion(info),
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		// SilenceUsage prevents printing usage on error
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	addRenderCommand(cmd, a)
	addGetCommand(cmd, a)
	addSymbolsCommand(cmd, a)
	addTickCommand(cmd, a)
	addWatchCommand(cmd, a)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
