package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/config"
	"github.com/noodlebox/currenttime/internal/errors"
	"github.com/noodlebox/currenttime/internal/logging"
	"github.com/noodlebox/currenttime/snapshot"
)

// app carries the state shared by every subcommand. It is filled in by
// setup before a subcommand runs.
type app struct {
	flags *GlobalFlags
	v     *viper.Viper

	cfg      *config.Config
	logger   zerolog.Logger
	closeLog func() error
}

// setup binds flags, loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := BindGlobalFlags(a.v, cmd); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	// Log to the console while the config, and with it the log file, is
	// not known yet.
	logger, _, _ := logging.New(logging.Options{
		Verbose: a.flags.Verbose,
		Quiet:   a.flags.Quiet,
		Console: cmd.ErrOrStderr(),
	})
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(ctx, a.v, a.flags.ConfigFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closeLog, err := logging.New(logging.Options{
		Verbose: a.flags.Verbose,
		Quiet:   a.flags.Quiet,
		File:    cfg.LogFile,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		logger.Warn().Err(err).Str("file", cfg.LogFile).Msg("log file disabled")
	}
	a.logger = logger
	a.closeLog = closeLog
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func (a *app) teardown() {
	if a.closeLog == nil {
		return
	}
	if err := a.closeLog(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close log file")
	}
}

// newEngine builds an Engine on c with the configured aliases registered.
// Each alias renders its template against the snapshot being rendered.
func (a *app) newEngine(c currenttime.Clock) (*currenttime.Engine, error) {
	aliases, err := a.cfg.Aliases()
	if err != nil {
		return nil, err
	}

	fns := make(map[string]currenttime.SymbolFunc, len(aliases))
	for sym, tmpl := range aliases {
		tmpl := tmpl
		fns[sym] = func(e *currenttime.Engine, s snapshot.Snapshot) string {
			return e.Render(tmpl, s)
		}
	}

	return currenttime.New(
		currenttime.WithClock(c),
		currenttime.WithLogger(a.logger.With().Str("component", "engine").Logger()),
		currenttime.WithSymbols(fns),
	), nil
}
