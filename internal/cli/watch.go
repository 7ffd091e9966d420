package cli

import (
	"github.com/spf13/cobra"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/tui"
	"github.com/noodlebox/currenttime/realtime"
)

func addWatchCommand(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live full-screen clock",
		Long:  `Show the configured format full-screen, updated every second. Press q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(currenttime.Adapt[*realtime.Timer](realtime.InLocation(a.cfg.Location)))
			if err != nil {
				return err
			}
			return tui.RunWatch(cmd.Context(), e, tui.WatchConfig{
				Format: a.cfg.Format,
				Color:  a.cfg.Color,
			})
		},
	}
	root.AddCommand(cmd)
}
