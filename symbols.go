package currenttime

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/noodlebox/currenttime/snapshot"
)

// SymbolDef describes one of the default symbols.
type SymbolDef struct {
	Symbol      string
	Description string
	Func        SymbolFunc
}

// DefaultSymbols returns the symbols every new Engine starts with, in
// registration order.
func DefaultSymbols() []SymbolDef {
	return []SymbolDef{
		{"h", "12-hour hour", twelveHour},
		{"H", "24-hour hour", func(_ *Engine, s snapshot.Snapshot) string {
			return s.Hours.String()
		}},
		{"g", "12-hour hour, zero-padded", func(_ *Engine, s snapshot.Snapshot) string {
			return snapshot.ZeroPad(snapshot.TwelveHour(s.Hours.Raw))
		}},
		{"G", "24-hour hour, zero-padded", func(_ *Engine, s snapshot.Snapshot) string {
			return s.Hours.Padded()
		}},
		{"m", "minutes, zero-padded", func(_ *Engine, s snapshot.Snapshot) string {
			return s.Minutes.Padded()
		}},
		{"s", "seconds, zero-padded", func(_ *Engine, s snapshot.Snapshot) string {
			return s.Seconds.Padded()
		}},
		{"a", "meridian", func(_ *Engine, s snapshot.Snapshot) string {
			return string(s.Meridian)
		}},
		{"A", "meridian, uppercase", func(_ *Engine, s snapshot.Snapshot) string {
			// Casers keep state, so one per call.
			return cases.Upper(language.Und).String(string(s.Meridian))
		}},
	}
}

func twelveHour(_ *Engine, s snapshot.Snapshot) string {
	return strconv.Itoa(snapshot.TwelveHour(s.Hours.Raw))
}
