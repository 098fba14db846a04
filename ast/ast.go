// Package ast implements the typed abstract syntax tree every later pass
// walks: a tagged sum type over node kinds (one concrete Go struct per
// kind, dispatched by type switch rather than by virtual call), each
// decorated with a source span and the slots the propagator, validator,
// simplifier, and bytecode compiler fill in as they run.
//
// The source model describes parent/next-sibling/first-child pointers
// threaded through a single node struct; here each concrete type carries
// its own named child fields (or slices, for variable-arity nodes) plus a
// Parent back-pointer, and Children() reconstructs left-to-right sibling
// order on demand for the visitor framework. This is the re-architecture
// the design notes call for: a tagged sum type with pattern-matched
// dispatch in place of class-hierarchy virtual dispatch.
package ast

import (
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/source"
	"github.com/kasl-lang/kasl/symtab"
	"github.com/kasl-lang/kasl/types"
)

// Node is the common interface every AST node satisfies.
type Node interface {
	// Span reports the node's source range.
	Span() source.Span
	SetSpan(source.Span)

	// Parent returns the node's owning node, or nil for the script root.
	Parent() Node
	SetParent(Node)

	// Children returns the node's direct children in left-to-right sibling
	// order. A leaf node returns nil.
	Children() []Node

	// ResolvedType is the type this node resolves to, or nil if not yet
	// (or never) resolved. Set by the parser for most nodes; the
	// propagator and validator only read it.
	ResolvedType() *types.Type
	SetResolvedType(*types.Type)

	// ConstantValue is the node's folded compile-time value, or nil.
	ConstantValue() constant.Value
	SetConstantValue(constant.Value)

	// ConstantPrecluded marks a node whose value is known to be
	// statically indeterminable for a structural reason (as opposed to
	// merely not being constant).
	ConstantPrecluded() bool
	SetConstantPrecluded(bool)

	// IsStatic reports whether this node is a builtin constant reference,
	// exempting it from the propagator's before_descend reset.
	IsStatic() bool
	SetStatic(bool)
}

// Expression marks the subset of Node used in expression position. It
// adds no methods of its own — it exists so that fields like
// BinaryExpression.Left can be typed more narrowly than Node while still
// satisfying Node itself.
type Expression interface {
	Node
	exprNode()
}

// Statement marks the subset of Node used in statement position.
type Statement interface {
	Node
	stmtNode()
}

// Base is embedded in every concrete node type and implements the parts
// of Node that don't depend on node-specific fields.
type Base struct {
	span     source.Span
	parent   Node
	typ      *types.Type
	constVal constant.Value
	precl    bool
	static   bool
}

func (b *Base) Span() source.Span           { return b.span }
func (b *Base) SetSpan(s source.Span)       { b.span = s }
func (b *Base) Parent() Node                { return b.parent }
func (b *Base) SetParent(p Node)            { b.parent = p }
func (b *Base) ResolvedType() *types.Type   { return b.typ }
func (b *Base) SetResolvedType(t *types.Type) { b.typ = t }
func (b *Base) ConstantValue() constant.Value { return b.constVal }
func (b *Base) SetConstantValue(v constant.Value) { b.constVal = v }
func (b *Base) ConstantPrecluded() bool     { return b.precl }
func (b *Base) SetConstantPrecluded(p bool) { b.precl = p }
func (b *Base) IsStatic() bool              { return b.static }
func (b *Base) SetStatic(s bool)            { b.static = s }

// Root walks Parent pointers up to the unique Script node at the top of
// the tree.
func Root(n Node) *Script {
	for n != nil {
		if s, ok := n.(*Script); ok {
			return s
		}
		n = n.Parent()
	}
	return nil
}

// attach sets child's Parent to parent. Call sites pass a concrete
// pointer typed as Node; attach itself never needs to test that pointer
// for nilness because every caller already guards with an `if field !=
// nil` on the concrete field before reaching here.
func attach(parent Node, child Node) {
	child.SetParent(parent)
}

// symbolOwner is implemented by node kinds that own a nested symbol
// table (script, function, event, state, compound statement).
type symbolOwner interface {
	Node
	Scope() *symtab.Table
}
