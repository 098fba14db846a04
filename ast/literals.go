package ast

import (
	"github.com/kasl-lang/kasl/symtab"
	"github.com/kasl-lang/kasl/types"
)

// IntegerLiteral is a raw integer literal as written in source (decimal or
// 0x-prefixed hex), before any folding runs.
type IntegerLiteral struct {
	Base
	Value int32
}

func (n *IntegerLiteral) Children() []Node { return nil }
func (*IntegerLiteral) exprNode()          {}

// FloatLiteral is a raw floating-point literal.
type FloatLiteral struct {
	Base
	Value float32
}

func (n *FloatLiteral) Children() []Node { return nil }
func (*FloatLiteral) exprNode()          {}

// StringLiteral is a raw string literal; IsKey is set when the literal
// appears where a key is expected (the language has no distinct key
// syntax — strings and keys share one literal form).
type StringLiteral struct {
	Base
	Value string
	IsKey bool
}

func (n *StringLiteral) Children() []Node { return nil }
func (*StringLiteral) exprNode()          {}

// Identifier is a bare name reference, resolved by the parser to
// the Symbol it names.
type Identifier struct {
	Base
	Name   string
	Symbol *symtab.Symbol
}

func (n *Identifier) Children() []Node { return nil }
func (*Identifier) exprNode()          {}

// TypeNode names a type as written in source (a declaration's type, a
// parameter's type, a typecast's target type).
type TypeNode struct {
	Base
	Name     string
	Resolved *types.Type
}

func (n *TypeNode) Children() []Node { return nil }
