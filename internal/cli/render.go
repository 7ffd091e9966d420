package cli

import (
	"io"

	"github.com/spf13/cobra"
)

type renderedTemplate struct {
	Template string `json:"template" yaml:"template"`
	Rendered string `json:"rendered" yaml:"rendered"`
}

func addRenderCommand(root *cobra.Command, a *app) {
	var at string

	cmd := &cobra.Command{
		Use:   "render [template...]",
		Short: "Render templates against the current time",
		Long: `Render each template against the current time, or against --at.
Without arguments the configured format is rendered.`,
		Example: `  currenttime render
  currenttime render '%G:%m' '%h %A'
  currenttime render --at 13:21:46 '%h:%m:%s %a'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, _, err := a.fixedEngine(at)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{a.cfg.Format}
			}

			results := make([]renderedTemplate, 0, len(args))
			for _, tmpl := range args {
				results = append(results, renderedTemplate{Template: tmpl, Rendered: e.MkString(tmpl)})
			}

			st := newStyler(a.cfg.Color)
			return writeValue(cmd.OutOrStdout(), a.cfg.Output, results, func(w io.Writer) error {
				for _, r := range results {
					if err := st.println(w, r.Rendered); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addAtFlag(cmd, &at)
	root.AddCommand(cmd)
}
