package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/errors"
	"github.com/noodlebox/currenttime/realtime"
	"github.com/noodlebox/currenttime/snapshot"
	"github.com/noodlebox/currenttime/steppedtime"
)

// tickOptions holds the flags of the tick command.
type tickOptions struct {
	count int
	at    string
}

func addTickCommand(root *cobra.Command, a *app) {
	var opts tickOptions

	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Print the rendered format at the start of every second",
		Long: `Start the once-per-second schedule and print the configured format after
every update, until --count updates have been printed or the command is
interrupted.

With --at the schedule runs on a simulated clock starting at that instant,
which advances straight to each next second. --count is then required.`,
		Example: `  currenttime tick --count 3
  currenttime tick --at 23:59:58 --count 3 -f '%G:%m:%s'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.count < 0 {
				return errors.Wrapf(errors.ErrInvalidCount, "--count must not be negative, got %d", opts.count)
			}
			if opts.at != "" {
				return a.tickStepped(cmd, opts)
			}
			return a.tickRealtime(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "stop after this many updates (0 runs until interrupted)")
	addAtFlag(cmd, &opts.at)
	root.AddCommand(cmd)
}

// tickPrinter writes one update in the configured output format.
type tickPrinter struct {
	w      io.Writer
	output string
	st     styler
}

func (a *app) newTickPrinter(w io.Writer) tickPrinter {
	return tickPrinter{w: w, output: a.cfg.Output, st: newStyler(a.cfg.Color)}
}

func (p tickPrinter) print(view snapshotView) error {
	return writeValue(p.w, p.output, view, func(w io.Writer) error {
		return p.st.println(w, view.Rendered)
	})
}

// tickStepped runs the schedule on a stepped clock, advancing it to each
// pending update until enough updates have been printed.
func (a *app) tickStepped(cmd *cobra.Command, opts tickOptions) error {
	if opts.count == 0 {
		return errors.Wrap(errors.ErrInvalidCount, "--count is required with --at")
	}
	start, err := ParseInstant(opts.at, a.cfg.Location)
	if err != nil {
		return err
	}

	clk := steppedtime.NewClock(start)
	e, err := a.newEngine(currenttime.Adapt[*steppedtime.Timer](clk))
	if err != nil {
		return err
	}

	p := a.newTickPrinter(cmd.OutOrStdout())
	var printed int
	var printErr error
	s := e.Init(currenttime.Config{
		OnUpdate: func(e *currenttime.Engine, s snapshot.Snapshot, _ time.Time) {
			if printErr != nil || printed >= opts.count {
				return
			}
			printErr = p.print(newSnapshotView(s, e.Render(a.cfg.Format, s)))
			printed++
			if printed == opts.count {
				e.Schedule().Stop()
			}
		},
	})
	defer s.Stop()

	for printErr == nil && printed < opts.count && clk.Advance() {
	}
	return printErr
}

// tickRealtime runs the schedule on the wall clock. Updates arrive on timer
// goroutines and are handed to a single printer.
func (a *app) tickRealtime(cmd *cobra.Command, opts tickOptions) error {
	e, err := a.newEngine(currenttime.Adapt[*realtime.Timer](realtime.InLocation(a.cfg.Location)))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	views := make(chan snapshotView)
	e.OnUpdate(func(e *currenttime.Engine, s snapshot.Snapshot, _ time.Time) {
		select {
		case views <- newSnapshotView(s, e.Render(a.cfg.Format, s)):
		case <-ctx.Done():
		}
	})

	g.Go(func() error {
		p := a.newTickPrinter(cmd.OutOrStdout())
		for printed := 0; opts.count == 0 || printed < opts.count; printed++ {
			select {
			case v := <-views:
				if err := p.print(v); err != nil {
					return err
				}
			case <-ctx.Done():
				return nil
			}
		}
		cancel()
		return nil
	})

	g.Go(func() error {
		s := e.Init(currenttime.Config{})
		<-ctx.Done()
		s.Stop()
		a.logger.Debug().Msg("tick interrupted")
		return nil
	})

	return g.Wait()
}
