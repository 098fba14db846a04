package ast

import "github.com/kasl-lang/kasl/symtab"

// UnaryExpression is a prefix operator (-, !, ~) applied to one operand.
type UnaryExpression struct {
	Base
	Op      string
	Operand Expression
}

func (n *UnaryExpression) Children() []Node {
	if n.Operand == nil {
		return nil
	}
	return []Node{n.Operand}
}
func (*UnaryExpression) exprNode() {}

// NewUnaryExpression attaches operand's Parent before returning the node.
func NewUnaryExpression(op string, operand Expression) *UnaryExpression {
	n := &UnaryExpression{Op: op, Operand: operand}
	if operand != nil {
		attach(n, operand)
	}
	return n
}

// BinaryExpression is a two-operand operator application, including
// assignment ("=", "+=", ...).
type BinaryExpression struct {
	Base
	Op          string
	Left, Right Expression
}

func (n *BinaryExpression) Children() []Node {
	out := make([]Node, 0, 2)
	if n.Left != nil {
		out = append(out, n.Left)
	}
	if n.Right != nil {
		out = append(out, n.Right)
	}
	return out
}
func (*BinaryExpression) exprNode() {}

func NewBinaryExpression(op string, left, right Expression) *BinaryExpression {
	n := &BinaryExpression{Op: op, Left: left, Right: right}
	if left != nil {
		attach(n, left)
	}
	if right != nil {
		attach(n, right)
	}
	return n
}

// ParenthesisExpression wraps a parenthesized sub-expression; kept as its
// own node (rather than discarded during parsing) because the propagator
// treats it specially — an empty-op/parenthesis node passes its child's
// constant straight through.
type ParenthesisExpression struct {
	Base
	Inner Expression
}

func (n *ParenthesisExpression) Children() []Node {
	if n.Inner == nil {
		return nil
	}
	return []Node{n.Inner}
}
func (*ParenthesisExpression) exprNode() {}

// TypecastExpression is an explicit `(type) expr` conversion.
type TypecastExpression struct {
	Base
	Target  *TypeNode
	Operand Expression
}

func (n *TypecastExpression) Children() []Node {
	out := make([]Node, 0, 2)
	if n.Target != nil {
		out = append(out, n.Target)
	}
	if n.Operand != nil {
		out = append(out, n.Operand)
	}
	return out
}
func (*TypecastExpression) exprNode() {}

// LValueExpression names a storage location: a bare identifier, or an
// identifier plus a single-character vector/quaternion member accessor
// (x, y, z, s).
type LValueExpression struct {
	Base
	Name   *Identifier
	Member string // "" for a bare identifier
	Symbol *symtab.Symbol
}

func (n *LValueExpression) Children() []Node {
	if n.Name == nil {
		return nil
	}
	return []Node{n.Name}
}
func (*LValueExpression) exprNode() {}

// FunctionExpression is a call expression: name(args...).
type FunctionExpression struct {
	Base
	Name   string
	Args   []Expression
	Symbol *symtab.Symbol
}

func (n *FunctionExpression) Children() []Node {
	out := make([]Node, len(n.Args))
	for i, a := range n.Args {
		out[i] = a
	}
	return out
}
func (*FunctionExpression) exprNode() {}

// VectorExpression constructs a vector from three component expressions.
type VectorExpression struct {
	Base
	X, Y, Z Expression
}

func (n *VectorExpression) Children() []Node {
	return []Node{n.X, n.Y, n.Z}
}
func (*VectorExpression) exprNode() {}

// QuaternionExpression constructs a quaternion from four component
// expressions.
type QuaternionExpression struct {
	Base
	X, Y, Z, S Expression
}

func (n *QuaternionExpression) Children() []Node {
	return []Node{n.X, n.Y, n.Z, n.S}
}
func (*QuaternionExpression) exprNode() {}

// ListExpression constructs a list from its element expressions.
type ListExpression struct {
	Base
	Elements []Expression
}

func (n *ListExpression) Children() []Node {
	out := make([]Node, len(n.Elements))
	for i, e := range n.Elements {
		out[i] = e
	}
	return out
}
func (*ListExpression) exprNode() {}
