// Package constant implements the tagged runtime values that back the
// language's constant-folding machinery: literal integers, floats, strings,
// vectors, quaternions, and lists, plus the operator and cast semantics
// used to evaluate them at compile time.
//
// Every Value knows its own Type, can report whether it is finite, can be
// deep-copied, and can be combined with another Value through Operation or
// coerced through Cast. A nil result from either method means "not
// statically foldable" (Operation) or "not a legal/foldable conversion"
// (Cast) — the caller (the propagator, or the validator) decides what that
// means for diagnostics.
package constant

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kasl-lang/kasl/types"
)

// Value is a constant of one of the language's primitive types.
type Value interface {
	// Type returns the value's canonical Type.
	Type() *types.Type

	// IsFinite reports whether the value (or, for vector/quaternion, every
	// component) is a finite number. Integers and strings are always finite.
	IsFinite() bool

	// Copy returns an independent deep copy of the value.
	Copy() Value

	// Operation evaluates a unary (rhs == nil) or binary operator against
	// this value, returning nil if the combination can't be folded.
	Operation(op string, rhs Value) Value

	// Cast coerces the value to target, returning nil if the conversion is
	// illegal or can't be folded at compile time.
	Cast(target *types.Type) Value

	// Inspect renders the value the way it would appear in source.
	Inspect() string
}

// Integer is a 32-bit signed integer constant.
type Integer struct{ V int32 }

func (i *Integer) Type() *types.Type { return types.Get(types.Integer) }
func (i *Integer) IsFinite() bool    { return true }
func (i *Integer) Copy() Value       { c := *i; return &c }
func (i *Integer) Inspect() string   { return strconv.FormatInt(int64(i.V), 10) }

// Float is a 32-bit (single-precision) floating point constant.
type Float struct{ V float32 }

func (f *Float) Type() *types.Type { return types.Get(types.Float) }
func (f *Float) IsFinite() bool    { return !math.IsInf(float64(f.V), 0) && !math.IsNaN(float64(f.V)) }
func (f *Float) Copy() Value       { c := *f; return &c }
func (f *Float) Inspect() string   { return strconv.FormatFloat(float64(f.V), 'g', -1, 32) }

// String is a string or key constant; IsKey distinguishes the two for
// Cast/Type purposes (they share a representation — the language has no
// key literal syntax).
type String struct {
	V     string
	IsKey bool
}

func (s *String) Type() *types.Type {
	if s.IsKey {
		return types.Get(types.Key)
	}
	return types.Get(types.String)
}
func (s *String) IsFinite() bool  { return true }
func (s *String) Copy() Value     { c := *s; return &c }
func (s *String) Inspect() string { return `"` + s.V + `"` }

// Vector is a 3-component float vector constant.
type Vector struct{ X, Y, Z float32 }

func (v *Vector) Type() *types.Type { return types.Get(types.Vector) }
func (v *Vector) IsFinite() bool    { return finite(v.X) && finite(v.Y) && finite(v.Z) }
func (v *Vector) Copy() Value       { c := *v; return &c }
func (v *Vector) Inspect() string {
	return fmt.Sprintf("<%s, %s, %s>", numStr(v.X), numStr(v.Y), numStr(v.Z))
}

// Quaternion is a 4-component float quaternion ("rotation") constant.
type Quaternion struct{ X, Y, Z, S float32 }

func (q *Quaternion) Type() *types.Type { return types.Get(types.Quaternion) }
func (q *Quaternion) IsFinite() bool {
	return finite(q.X) && finite(q.Y) && finite(q.Z) && finite(q.S)
}
func (q *Quaternion) Copy() Value { c := *q; return &c }
func (q *Quaternion) Inspect() string {
	return fmt.Sprintf("<%s, %s, %s, %s>", numStr(q.X), numStr(q.Y), numStr(q.Z), numStr(q.S))
}

// List is a heterogeneous sequence of constants.
type List struct{ Elements []Value }

func (l *List) Type() *types.Type { return types.Get(types.List) }
func (l *List) IsFinite() bool {
	for _, e := range l.Elements {
		if !e.IsFinite() {
			return false
		}
	}
	return true
}
func (l *List) Copy() Value {
	elems := make([]Value, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.Copy()
	}
	return &List{Elements: elems}
}
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func finite(f float32) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}

func numStr(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
