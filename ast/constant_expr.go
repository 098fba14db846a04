package ast

import "github.com/kasl-lang/kasl/constant"

// ConstantExpression wraps a folded constant.Value. It is produced by the
// simplifier pass (expression folding, lvalue folding) rather than by the
// parser, and the propagator leaves it alone on a second pass — visiting
// a ConstantExpression never descends further.
type ConstantExpression struct {
	Base
	Value constant.Value
}

func (n *ConstantExpression) Children() []Node { return nil }
func (*ConstantExpression) exprNode()          {}

// NewConstantExpression builds a ConstantExpression already carrying its
// own folded value in ConstantValue, matching what the propagator would
// have set had it visited a literal of this value directly.
func NewConstantExpression(value constant.Value) *ConstantExpression {
	n := &ConstantExpression{Value: value}
	n.SetConstantValue(value)
	if value != nil {
		n.SetResolvedType(value.Type())
	}
	return n
}
