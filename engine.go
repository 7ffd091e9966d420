package currenttime

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/noodlebox/currenttime/realtime"
	"github.com/noodlebox/currenttime/snapshot"
	"github.com/noodlebox/currenttime/symbol"
)

// DefaultTemplate is rendered whenever no usable template is given.
const DefaultTemplate = "%h:%m:%s %a"

// SymbolFunc renders one template symbol. It receives the Engine doing the
// rendering and the snapshot being rendered.
type SymbolFunc = symbol.Func[*Engine]

// UpdateFunc is notified after every update with the Engine, the new
// snapshot, and the instant it was built from.
type UpdateFunc func(e *Engine, s snapshot.Snapshot, t time.Time)

func noop(*Engine, snapshot.Snapshot, time.Time) {}

// Engine owns a current snapshot, a symbol registry and, once started, the
// schedule that keeps the snapshot fresh. The zero value is not usable;
// create one with [New]. An Engine is safe for concurrent use. No lock is
// held while symbol or update functions run, so they may call back into the
// Engine.
type Engine struct {
	clock   Clock
	log     zerolog.Logger
	symbols *symbol.Registry[*Engine]

	current  snapshot.Snapshot
	onUpdate UpdateFunc
	schedule *Schedule

	mu sync.RWMutex
}

// Option configures an Engine built by [New].
type Option func(*Engine)

// WithClock sets the time source. The default is the local wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithLogger sets the logger used for scheduling diagnostics. The default
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithSymbols registers extra symbols on top of the defaults, replacing any
// default bound to the same character.
func WithSymbols(fns map[string]SymbolFunc) Option {
	return func(e *Engine) {
		e.symbols.AddAll(fns)
	}
}

// New returns an Engine with the default symbols registered and a snapshot
// of midnight. It does not start updating until [Engine.Init] is called.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:    Adapt[*realtime.Timer](realtime.NewClock()),
		log:      zerolog.Nop(),
		symbols:  symbol.NewRegistry[*Engine](),
		current:  snapshot.New(0, 0, 0),
		onUpdate: noop,
	}
	for _, def := range DefaultSymbols() {
		e.symbols.Add(def.Symbol, def.Func)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Update replaces the current snapshot with the decomposition of t and then
// notifies the update callback. It does not touch the schedule.
func (e *Engine) Update(t time.Time) {
	s := snapshot.Decompose(t)

	e.mu.Lock()
	e.current = s
	fn := e.onUpdate
	e.mu.Unlock()

	fn(e, s, t)
}

// OnUpdate installs fn as the update callback, replacing the previous one.
// A nil fn is ignored.
func (e *Engine) OnUpdate(fn UpdateFunc) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	e.onUpdate = fn
	e.mu.Unlock()
}

// Get returns the current snapshot.
func (e *Engine) Get() snapshot.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// Hours returns the hours of the current snapshot.
func (e *Engine) Hours() snapshot.DigitPair { return e.Get().Hours }

// Minutes returns the minutes of the current snapshot.
func (e *Engine) Minutes() snapshot.DigitPair { return e.Get().Minutes }

// Seconds returns the seconds of the current snapshot.
func (e *Engine) Seconds() snapshot.DigitPair { return e.Get().Seconds }

// Meridian returns the meridian of the current snapshot's hour.
func (e *Engine) Meridian() snapshot.Meridian {
	return snapshot.MeridianOf(e.Get().Hours.Raw)
}

// MkString renders tmpl against the current snapshot. An empty or
// malformed (non UTF-8) tmpl renders [DefaultTemplate] instead.
func (e *Engine) MkString(tmpl string) string {
	return e.Render(tmpl, e.Get())
}

// Render renders tmpl against s, with the same fallback as MkString.
func (e *Engine) Render(tmpl string, s snapshot.Snapshot) string {
	if tmpl == "" || !utf8.ValidString(tmpl) {
		tmpl = DefaultTemplate
	}
	return e.symbols.Render(e, tmpl, s)
}

// String renders the current snapshot with [DefaultTemplate].
func (e *Engine) String() string {
	return e.MkString(DefaultTemplate)
}

// AddSymbol binds fn to sym. It reports false, and changes nothing, unless
// sym is exactly one character and fn is non-nil. Binding an already
// registered symbol replaces its function.
func (e *Engine) AddSymbol(sym string, fn SymbolFunc) bool {
	return e.symbols.Add(sym, fn)
}

// AddSymbols binds every entry of fns as AddSymbol would and returns the
// symbols that were accepted, sorted.
func (e *Engine) AddSymbols(fns map[string]SymbolFunc) []string {
	return e.symbols.AddAll(fns)
}

// Symbols returns the registered symbols in registration order.
func (e *Engine) Symbols() []string {
	return e.symbols.Symbols()
}
