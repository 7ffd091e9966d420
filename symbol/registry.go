package symbol

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/noodlebox/currenttime/snapshot"
)

// Func renders one symbol for a snapshot.
type Func[C any] func(ctx C, s snapshot.Snapshot) string

// Registry maps single-character symbols to rendering functions. Symbols
// can be added or rebound at any time but never removed. The zero value is
// not usable; create one with [NewRegistry]. A Registry is safe for
// concurrent use.
type Registry[C any] struct {
	fns     map[string]Func[C]
	order   []string // insertion order, used to build matcher
	matcher *regexp.Regexp

	mu sync.RWMutex
}

// NewRegistry returns an empty Registry.
func NewRegistry[C any]() *Registry[C] {
	return &Registry[C]{
		fns: make(map[string]Func[C]),
	}
}

// Valid reports whether sym can be registered: it must be exactly one
// character.
func Valid(sym string) bool {
	return utf8.ValidString(sym) && utf8.RuneCountInString(sym) == 1
}

// Add binds fn to sym. It returns false, changing nothing, if sym is not a
// single character or fn is nil. Rebinding a registered symbol replaces its
// function.
func (r *Registry[C]) Add(sym string, fn Func[C]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	ok, grew := r.add(sym, fn)
	if grew {
		r.rebuild()
	}
	return ok
}

// AddAll registers every entry of fns, in sorted order, and returns the
// accepted symbols. The matcher is rebuilt once, after all entries.
func (r *Registry[C]) AddAll(fns map[string]Func[C]) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	syms := make([]string, 0, len(fns))
	for sym := range fns {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	added := make([]string, 0, len(fns))
	dirty := false
	for _, sym := range syms {
		ok, grew := r.add(sym, fns[sym])
		if ok {
			added = append(added, sym)
		}
		dirty = dirty || grew
	}
	if dirty {
		r.rebuild()
	}
	return added
}

// add reports whether fn was accepted, and whether sym is new to the
// registry. Callers must hold a write lock.
func (r *Registry[C]) add(sym string, fn Func[C]) (ok, grew bool) {
	if !Valid(sym) || fn == nil {
		return false, false
	}
	if _, exists := r.fns[sym]; !exists {
		r.order = append(r.order, sym)
		grew = true
	}
	r.fns[sym] = fn
	return true, grew
}

// The matcher only depends on membership, so rebinding a symbol never
// requires a rebuild. Callers must hold a write lock.
func (r *Registry[C]) rebuild() {
	r.matcher = compile(r.order)
}

// compile builds a pattern matching "%" followed by exactly one of syms.
func compile(syms []string) *regexp.Regexp {
	if len(syms) == 0 {
		return nil
	}
	alts := make([]string, len(syms))
	for i, sym := range syms {
		alts[i] = regexp.QuoteMeta(sym)
	}
	return regexp.MustCompile("%(" + strings.Join(alts, "|") + ")")
}

// Lookup returns the function bound to sym.
func (r *Registry[C]) Lookup(sym string) (Func[C], bool) {
	r.mu.RLock()
	fn, ok := r.fns[sym]
	r.mu.RUnlock()
	return fn, ok
}

// Symbols returns the registered symbols in the order they were first added.
func (r *Registry[C]) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered symbols.
func (r *Registry[C]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Render expands every registered placeholder in tmpl against s. No lock is
// held while rendering functions run, so they may use r or ctx freely.
func (r *Registry[C]) Render(ctx C, tmpl string, s snapshot.Snapshot) string {
	r.mu.RLock()
	matcher := r.matcher
	r.mu.RUnlock()

	if matcher == nil {
		return tmpl
	}
	return matcher.ReplaceAllStringFunc(tmpl, func(match string) string {
		fn, ok := r.Lookup(match[1:])
		if !ok {
			return match
		}
		return fn(ctx, s)
	})
}
