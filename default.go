package currenttime

import (
	"sync/atomic"
	"time"

	"github.com/noodlebox/currenttime/snapshot"
)

// Wrap package-level functions around Engine methods

var std atomic.Pointer[Engine]

func init() {
	std.Store(New())
}

// Default returns the default Engine.
func Default() *Engine { return std.Load() }

// SetDefault makes e the default Engine and returns the one it replaces, so
// that a caller can put it back later. A nil e leaves the default alone.
func SetDefault(e *Engine) (prev *Engine) {
	if e == nil {
		return std.Load()
	}
	return std.Swap(e)
}

// Init starts the default Engine's schedule. See [Engine.Init].
func Init(cfg Config) *Schedule { return Default().Init(cfg) }

// Update refreshes the default Engine from t.
func Update(t time.Time) { Default().Update(t) }

// OnUpdate sets the default Engine's update callback. A nil fn is ignored.
func OnUpdate(fn UpdateFunc) { Default().OnUpdate(fn) }

// Get returns the default Engine's current snapshot.
func Get() snapshot.Snapshot { return Default().Get() }

// Hours returns the hours of the default Engine's snapshot.
func Hours() snapshot.DigitPair { return Default().Hours() }

// Minutes returns the minutes of the default Engine's snapshot.
func Minutes() snapshot.DigitPair { return Default().Minutes() }

// Seconds returns the seconds of the default Engine's snapshot.
func Seconds() snapshot.DigitPair { return Default().Seconds() }

// Meridian returns the meridian of the default Engine's snapshot.
func Meridian() snapshot.Meridian { return Default().Meridian() }

// MkString renders tmpl against the default Engine's snapshot.
func MkString(tmpl string) string { return Default().MkString(tmpl) }

// String renders the default Engine's snapshot with [DefaultTemplate].
func String() string { return Default().String() }

// AddSymbol registers a symbol on the default Engine.
func AddSymbol(sym string, fn SymbolFunc) bool { return Default().AddSymbol(sym, fn) }

// AddSymbols registers symbols on the default Engine.
func AddSymbols(fns map[string]SymbolFunc) []string { return Default().AddSymbols(fns) }
