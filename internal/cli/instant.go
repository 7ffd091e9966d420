package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/errors"
	"github.com/noodlebox/currenttime/realtime"
	"github.com/noodlebox/currenttime/steppedtime"
)

// instantLayouts are the accepted --at layouts, tried in order. Layouts
// without an offset are read in the configured location.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.TimeOnly,
}

// ParseInstant parses value using the first matching layout in
// instantLayouts. The result is expressed in loc.
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(instantLayouts[0], value); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range instantLayouts[1:] {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(errors.ErrInvalidInstant, "%q matches none of %v", value, instantLayouts)
}

func addAtFlag(cmd *cobra.Command, at *string) {
	cmd.Flags().StringVar(at, "at", "", "use this instant instead of now (RFC 3339, \"2006-01-02 15:04:05\" or \"15:04:05\")")
}

// instant returns the instant named by at, or now in the configured
// location when at is empty.
func (a *app) instant(at string) (time.Time, error) {
	if at == "" {
		return realtime.InLocation(a.cfg.Location).Now(), nil
	}
	return ParseInstant(at, a.cfg.Location)
}

// fixedEngine returns an Engine whose snapshot is the instant named by at.
func (a *app) fixedEngine(at string) (*currenttime.Engine, time.Time, error) {
	t, err := a.instant(at)
	if err != nil {
		return nil, time.Time{}, err
	}
	e, err := a.newEngine(currenttime.Adapt[*steppedtime.Timer](steppedtime.NewClock(t)))
	if err != nil {
		return nil, time.Time{}, err
	}
	e.Update(t)
	return e, t, nil
}
