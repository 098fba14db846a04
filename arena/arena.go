// Package arena models the two allocation lifetimes the rest of this
// module cares about: a process-wide arena holding the builtin catalog
// (populated once, never freed) and a per-compilation arena holding one
// compilation's AST, symbols, and constants (discarded as a unit when
// compilation ends).
//
// Go's garbage collector reclaims memory on its own, so Arena does not do
// manual bump-allocation or freeing. What it preserves from the source
// model is the *lifetime grouping* and, more importantly, the "active
// arena" handle's scoped acquire/restore discipline: code that should
// attribute its allocations to a particular arena (the builtin loader, a
// compilation session) installs that arena for the duration of a call and
// restores whatever was active before, rather than relying on a single
// always-current global.
package arena

// Arena names a group of allocations that share a lifetime. The zero
// value is not usable; construct one with New.
type Arena struct {
	name  string
	count int
}

// New creates an empty, named arena.
func New(name string) *Arena {
	return &Arena{name: name}
}

func (a *Arena) String() string { return a.name }

// Track records that one more value has been allocated under this arena.
// It exists for diagnostics and tests that assert on arena population; it
// does not retain the value itself and has no effect on the Go garbage
// collector's decisions.
func (a *Arena) Track() { a.count++ }

// Len reports how many values have been Tracked against this arena.
func (a *Arena) Len() int { return a.count }

// Handle is the active-arena indirection: a single mutable cell naming
// which Arena newly constructed values should be attributed to. A Handle
// is per-compilation state — each concurrent compilation must own its own
// Handle, since the scoped Acquire/restore protocol is not safe to share
// across goroutines (§5 of the source model requires exactly this: the
// type registry and builtin catalog are shared read-only state, but the
// active-arena handle is not).
type Handle struct {
	current *Arena
}

// NewHandle creates a Handle whose initial active arena is initial —
// ordinarily the process-wide builtin arena, until a compilation acquires
// its own.
func NewHandle(initial *Arena) *Handle {
	return &Handle{current: initial}
}

// Current returns the arena fresh allocations are currently attributed to.
func (h *Handle) Current() *Arena { return h.current }

// Acquire installs a as the active arena and returns a function that
// restores whatever was active beforehand. Callers are expected to defer
// the returned function immediately:
//
//	restore := handle.Acquire(compilationArena)
//	defer restore()
func (h *Handle) Acquire(a *Arena) (restore func()) {
	prev := h.current
	h.current = a
	return func() { h.current = prev }
}
