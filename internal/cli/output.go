package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/noodlebox/currenttime/internal/config"
	"github.com/noodlebox/currenttime/snapshot"
)

// snapshotView is the structured form of a rendered snapshot.
type snapshotView struct {
	snapshot.Snapshot `yaml:",inline"`

	TwelveHour snapshot.DigitPair `json:"twelve_hour" yaml:"twelve_hour"`
	Rendered   string             `json:"rendered" yaml:"rendered"`
}

func newSnapshotView(s snapshot.Snapshot, rendered string) snapshotView {
	return snapshotView{
		Snapshot:   s,
		TwelveHour: s.TwelveHour().Hours,
		Rendered:   rendered,
	}
}

// writeValue writes v as JSON or YAML according to format, or calls text
// for text output.
func writeValue(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// styler renders text output, bold and colored when enabled.
type styler struct {
	style lipgloss.Style
}

func newStyler(color bool) styler {
	if !color {
		return styler{style: lipgloss.NewStyle()}
	}
	return styler{style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))}
}

func (s styler) println(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, s.style.Render(line))
	return err
}
