package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/noodlebox/currenttime/snapshot"
)

func addGetCommand(root *cobra.Command, a *app) {
	var at string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the snapshot of the current time",
		Long: `Show the hours, minutes and seconds of the current time, or of --at, with
their tens and ones digits, the meridian, the 12-hour hour and the
configured format rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, _, err := a.fixedEngine(at)
			if err != nil {
				return err
			}
			s := e.Get()
			view := newSnapshotView(s, e.Render(a.cfg.Format, s))
			return writeValue(cmd.OutOrStdout(), a.cfg.Output, view, func(w io.Writer) error {
				return writeSnapshotText(w, view)
			})
		},
	}
	addAtFlag(cmd, &at)
	root.AddCommand(cmd)
}

func writeSnapshotText(w io.Writer, v snapshotView) error {
	field := func(name string, p snapshot.DigitPair) {
		fmt.Fprintf(w, "%-9s %2d  tens %d  ones %d\n", name+":", p.Raw, p.Tens, p.Ones)
	}
	field("hours", v.Hours)
	field("minutes", v.Minutes)
	field("seconds", v.Seconds)
	field("12-hour", v.TwelveHour)
	fmt.Fprintf(w, "%-9s %s\n", "meridian:", v.Meridian)
	_, err := fmt.Fprintf(w, "%-9s %s\n", "rendered:", v.Rendered)
	return err
}
