// Package symtab implements the symbol and symbol-table model shared by
// every pass: the builtin loader populates the process-wide table, the
// parser populates per-scope tables as it
// builds the AST, and the propagator/validator/simplifier passes all read
// and mutate the Symbol fields in place.
package symtab

import (
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/source"
	"github.com/kasl-lang/kasl/types"
)

// Kind distinguishes what a name denotes.
type Kind int

const (
	Variable Kind = iota
	Function
	Event
	Label
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Event:
		return "event"
	case Label:
		return "label"
	default:
		return "?"
	}
}

// SubKind further narrows where a symbol lives.
type SubKind int

const (
	Local SubKind = iota
	Global
	Builtin
	Parameter
)

func (k SubKind) String() string {
	switch k {
	case Local:
		return "local"
	case Global:
		return "global"
	case Builtin:
		return "builtin"
	case Parameter:
		return "parameter"
	default:
		return "?"
	}
}

// Param is one entry of a function or event's signature.
type Param struct {
	Name string
	Type *types.Type
}

// Signature describes a function or event's calling shape.
type Signature struct {
	Params []Param
	Return *types.Type
}

// Decl is the minimal surface a symbol's declaring node must expose. Any
// AST node type satisfies it, since every node carries a source span —
// this lets Symbol hold a weak back-reference to its declaration without
// symtab importing the ast package (ast imports symtab for Symbol, so the
// reverse import would cycle).
type Decl interface {
	Span() source.Span
}

// Symbol is one named entity: a variable, function, event, or label.
type Symbol struct {
	Name      string
	Type      *types.Type
	Kind      Kind
	SubKind   SubKind
	Signature *Signature

	// Constant is the symbol's folded value, set by the propagator pass.
	// Nil means "no known constant value".
	Constant constant.Value

	// Decl is the node that declared this symbol (nil for synthesized
	// symbols such as builtins loaded straight from the manifest).
	Decl Decl

	// References counts lvalue reads of this symbol, including the
	// declaration itself — an unreferenced local therefore reads 1, not 0.
	References int

	// Assignments counts writes to this symbol, excluding its initializer.
	Assignments int

	// ConstantPrecluded marks a symbol whose value is known to be
	// statically indeterminable (as opposed to merely not yet computed).
	ConstantPrecluded bool
}

// NewSymbol constructs a Symbol with References already at 1, matching the
// "declaration counts as the first reference" convention.
func NewSymbol(name string, typ *types.Type, kind Kind, sub SubKind) *Symbol {
	return &Symbol{
		Name:       name,
		Type:       typ,
		Kind:       kind,
		SubKind:    sub,
		References: 1,
	}
}

// Reference records one more lvalue read of sym.
func (s *Symbol) Reference() { s.References++ }

// Assign records one more write to sym.
func (s *Symbol) Assign() { s.Assignments++ }

// Unreferenced reports whether sym was never read beyond its own
// declaration — the condition the simplifier's pruning passes look for.
func (s *Symbol) Unreferenced() bool { return s.References == 1 }

type tableKey struct {
	name string
	kind Kind
}

// Table is one lexical scope's symbol table: a script's root table, or a
// nested table owned by a function, state, event, or compound statement.
type Table struct {
	// Outer is the lexically enclosing table, or nil for a script's root
	// table (whose enclosing scope is the builtin catalog, consulted
	// separately — see Resolve).
	Outer *Table

	// Owner is the AST node this table is attached to, for diagnostics;
	// may be nil (e.g. the process-wide builtin table has no owning node).
	Owner Decl

	store map[tableKey]*Symbol
	order []*Symbol
}

// New creates a table nested inside outer (nil for a script's root table).
func New(outer *Table) *Table {
	return &Table{Outer: outer, store: make(map[tableKey]*Symbol)}
}

// Define inserts sym into the table, keyed by (name, kind). It overwrites
// any existing entry under the same key, matching the language's rule
// that redeclaration in the same scope replaces rather than conflicts —
// duplicate-declaration diagnostics, if any, are the parser's concern.
func (t *Table) Define(sym *Symbol) *Symbol {
	k := tableKey{sym.Name, sym.Kind}
	if old, exists := t.store[k]; !exists {
		t.order = append(t.order, sym)
	} else {
		for i, s := range t.order {
			if s == old {
				t.order[i] = sym
				break
			}
		}
	}
	t.store[k] = sym
	return sym
}

// Lookup searches only this table (not its Outer chain) for (name, kind).
func (t *Table) Lookup(name string, kind Kind) (*Symbol, bool) {
	sym, ok := t.store[tableKey{name, kind}]
	return sym, ok
}

// Remove erases sym's entry from this table, if present. It is a no-op if
// the symbol isn't directly owned by this table, since callers that don't
// know which scope owns a symbol should use RemoveFromChain instead.
func (t *Table) Remove(sym *Symbol) {
	k := tableKey{sym.Name, sym.Kind}
	if existing, ok := t.store[k]; ok && existing == sym {
		delete(t.store, k)
		for i, s := range t.order {
			if s == sym {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
}

// RemoveFromChain walks t and its Outer chain to find and erase whichever
// table owns sym — the simplifier's declaration-pruning rule needs this
// because it only has the symbol in hand, not the scope that defined it.
func RemoveFromChain(t *Table, sym *Symbol) bool {
	for cur := t; cur != nil; cur = cur.Outer {
		if existing, ok := cur.Lookup(sym.Name, sym.Kind); ok && existing == sym {
			cur.Remove(sym)
			return true
		}
	}
	return false
}

// Resolve implements a script's lookup_symbol: the builtin catalog is
// consulted first (names can't be shadowed), then the lexical chain
// starting at scope is walked outward.
func Resolve(builtins *Table, scope *Table, name string, kind Kind) (*Symbol, bool) {
	if builtins != nil {
		if sym, ok := builtins.Lookup(name, kind); ok {
			return sym, true
		}
	}
	for t := scope; t != nil; t = t.Outer {
		if sym, ok := t.Lookup(name, kind); ok {
			return sym, true
		}
	}
	return nil, false
}

// Symbols returns the table's own entries in definition order, for
// deterministic iteration (diagnostics, dumps).
func (t *Table) Symbols() []*Symbol {
	out := make([]*Symbol, len(t.order))
	copy(out, t.order)
	return out
}
