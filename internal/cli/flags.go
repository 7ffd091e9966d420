package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/config"
	"github.com/noodlebox/currenttime/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// ConfigFile names the config file to read instead of the default one.
	ConfigFile string
	// Output specifies the output format (text, json or yaml).
	Output string
	// Format is the template rendered when a command is given none.
	Format string
	// Timezone names the location times are shown in.
	Timezone string
	// Color enables styled text output.
	Color bool
	// LogFile receives a rotating copy of the log.
	LogFile string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// flagKeys maps the flags that can also be configured to their config keys.
var flagKeys = map[string]string{
	"output":   "output",
	"format":   "format",
	"tz":       "timezone",
	"color":    "color",
	"log-file": "log_file",
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/currenttime/config.yaml)")
	pf.StringVarP(&flags.Output, "output", "o", config.OutputText, "output format (text|json|yaml)")
	pf.StringVarP(&flags.Format, "format", "f", currenttime.DefaultTemplate, "template used when none is given")
	pf.StringVar(&flags.Timezone, "tz", "Local", "IANA timezone times are shown in")
	pf.BoolVar(&flags.Color, "color", false, "style text output")
	pf.StringVar(&flags.LogFile, "log-file", "", "also write logs to this file")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds the configurable global flags to Viper, so a flag
// given on the command line overrides the environment and the config file.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, rootFlags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Errors caused by bad flag or config values map to ExitInvalidInput.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errors.ErrInvalidOutputFormat),
		errors.Is(err, errors.ErrInvalidInstant),
		errors.Is(err, errors.ErrInvalidTimezone),
		errors.Is(err, errors.ErrInvalidSymbol),
		errors.Is(err, errors.ErrSymbolCycle),
		errors.Is(err, errors.ErrInvalidCount):
		return ExitInvalidInput
	default:
		return ExitError
	}
}
