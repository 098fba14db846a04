// Package propagator implements the constant-value propagation pass: a
// bottom-up walk that computes ConstantValue and ConstantPrecluded for
// every expression and symbol, with a script-level override that folds
// global variables before anything else so later globals and function
// bodies can reference earlier ones.
package propagator

import (
	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/types"
)

// Propagate runs the constant-value propagator over script.
func Propagate(script *ast.Script) {
	v := &propagatingVisitor{}
	v.run(script)
}

type propagatingVisitor struct {
	ast.BaseVisitor
	visited map[ast.Node]bool
}

// run implements the script-node override: the leading run of
// global-variable storage is folded first (each may reference the ones
// before it), then everything else — later global functions, states,
// events — is walked in source order. Forward references to globals
// declared after the point of use are therefore never folded, matching
// the ordering guarantee in the source model.
func (v *propagatingVisitor) run(script *ast.Script) {
	leading, rest := script.LeadingGlobalVariables()
	for _, gs := range leading {
		ast.Walk(v, gs)
	}
	for _, item := range script.Items[rest:] {
		ast.Walk(v, item)
	}
}

// BeforeDescend implements the propagator's preamble: nodes not marked
// static get their constant slate wiped before being recomputed (a
// ConstantExpression is itself the record of an already-folded value and
// is left alone), and a node whose resolved type is error is marked
// precluded and has its subtree skipped entirely to avoid cascading
// diagnostics from an already-broken type.
func (v *propagatingVisitor) BeforeDescend(n ast.Node) bool {
	if v.visited[n] {
		return false
	}
	if v.visited == nil {
		v.visited = map[ast.Node]bool{}
	}
	v.visited[n] = true
	if _, isConstExpr := n.(*ast.ConstantExpression); !n.IsStatic() && !isConstExpr {
		n.SetConstantValue(nil)
		n.SetConstantPrecluded(false)
	}
	if t := n.ResolvedType(); t != nil && t.Kind() == types.Error {
		n.SetConstantPrecluded(true)
		return false
	}
	// Children are propagated here, before n's own Visit method runs, so
	// every handler computes from operands that are already done; Walk's
	// own descent afterwards finds them visited and skips them.
	for _, c := range n.Children() {
		ast.Walk(v, c)
	}
	return true
}

func (v *propagatingVisitor) VisitIntegerLiteral(n *ast.IntegerLiteral) bool {
	n.SetConstantValue(&constant.Integer{V: n.Value})
	return true
}

func (v *propagatingVisitor) VisitFloatLiteral(n *ast.FloatLiteral) bool {
	n.SetConstantValue(&constant.Float{V: n.Value})
	return true
}

func (v *propagatingVisitor) VisitStringLiteral(n *ast.StringLiteral) bool {
	n.SetConstantValue(&constant.String{V: n.Value, IsKey: n.IsKey})
	return true
}

func (v *propagatingVisitor) VisitDeclaration(n *ast.Declaration) bool {
	if n.Init != nil && n.Symbol != nil {
		n.Symbol.Constant = n.Init.ConstantValue()
		n.Symbol.ConstantPrecluded = n.Init.ConstantPrecluded()
	}
	return true
}

func (v *propagatingVisitor) VisitGlobalVariable(n *ast.GlobalVariable) bool {
	if n.Symbol != nil {
		if n.Init != nil {
			n.Symbol.Constant = n.Init.ConstantValue()
			n.Symbol.ConstantPrecluded = n.Init.ConstantPrecluded()
		} else {
			n.Symbol.Constant = nil
		}
	}
	return true
}

func (v *propagatingVisitor) VisitParenthesisExpression(n *ast.ParenthesisExpression) bool {
	if n.Inner != nil {
		n.SetConstantValue(n.Inner.ConstantValue())
		n.SetConstantPrecluded(n.Inner.ConstantPrecluded())
	}
	return true
}

// VisitBinaryExpression implements the generic "expression" rule:
// assignment passes the right operand's constant through unchanged
// (assignment to a variable isn't itself foldable into a different value
// than what was assigned); any other operator requires the left operand
// to be constant, and — if a right operand is present — requires it to
// be constant too, then computes the result via Value.Operation.
func (v *propagatingVisitor) VisitBinaryExpression(n *ast.BinaryExpression) bool {
	if isErrorType(n.Left) || isErrorType(n.Right) {
		n.SetConstantPrecluded(true)
		return true
	}
	if n.Op == "=" {
		if n.Right != nil {
			n.SetConstantValue(n.Right.ConstantValue())
			n.SetConstantPrecluded(n.Right.ConstantPrecluded())
		}
		return true
	}
	left := n.Left.ConstantValue()
	if left == nil {
		if n.Left != nil && n.Left.ConstantPrecluded() {
			n.SetConstantPrecluded(true)
		}
		return true
	}
	var right constant.Value
	if n.Right != nil {
		right = n.Right.ConstantValue()
		if right == nil {
			if n.Right.ConstantPrecluded() {
				n.SetConstantPrecluded(true)
			}
			return true
		}
	}
	n.SetConstantValue(left.Operation(n.Op, right))
	return true
}

func (v *propagatingVisitor) VisitUnaryExpression(n *ast.UnaryExpression) bool {
	if isErrorType(n.Operand) {
		n.SetConstantPrecluded(true)
		return true
	}
	if n.Operand == nil {
		return true
	}
	operand := n.Operand.ConstantValue()
	if operand == nil {
		if n.Operand.ConstantPrecluded() {
			n.SetConstantPrecluded(true)
		}
		return true
	}
	n.SetConstantValue(operand.Operation(n.Op, nil))
	return true
}

// VisitLValueExpression requires a resolved symbol; with none, the value
// is unknowable for a structural reason rather than merely "not
// constant". When the symbol has never been reassigned past its
// initializer, its constant is usable; a single-character member accessor
// on a vector/quaternion further narrows that to the named float
// component.
func (v *propagatingVisitor) VisitLValueExpression(n *ast.LValueExpression) bool {
	sym := n.Symbol
	if sym == nil && n.Name != nil {
		sym = n.Name.Symbol
	}
	if sym == nil {
		n.SetConstantPrecluded(true)
		return true
	}
	if sym.Assignments != 0 {
		return true
	}
	val := sym.Constant
	if val == nil {
		return true
	}
	if n.Member == "" {
		n.SetConstantValue(val.Copy())
		return true
	}
	n.SetConstantValue(memberComponent(val, n.Member))
	return true
}

func memberComponent(val constant.Value, member string) constant.Value {
	switch v := val.(type) {
	case *constant.Vector:
		switch member {
		case "x":
			return &constant.Float{V: v.X}
		case "y":
			return &constant.Float{V: v.Y}
		case "z":
			return &constant.Float{V: v.Z}
		}
	case *constant.Quaternion:
		switch member {
		case "x":
			return &constant.Float{V: v.X}
		case "y":
			return &constant.Float{V: v.Y}
		case "z":
			return &constant.Float{V: v.Z}
		case "s":
			return &constant.Float{V: v.S}
		}
	}
	return nil
}

// VisitVectorExpression requires exactly three numeric, constant
// children; integer components are coerced to float. Any structural
// violation yields no constant, and a non-constant child's preclusion
// bubbles up so callers can distinguish "not computed yet" from
// "structurally impossible".
func (v *propagatingVisitor) VisitVectorExpression(n *ast.VectorExpression) bool {
	comps, ok := numericTriple(n.X, n.Y, n.Z)
	if !ok {
		propagatePreclusion(n, n.X, n.Y, n.Z)
		return true
	}
	n.SetConstantValue(&constant.Vector{X: comps[0], Y: comps[1], Z: comps[2]})
	return true
}

func (v *propagatingVisitor) VisitQuaternionExpression(n *ast.QuaternionExpression) bool {
	comps, ok := numericTriple(n.X, n.Y, n.Z, n.S)
	if !ok {
		propagatePreclusion(n, n.X, n.Y, n.Z, n.S)
		return true
	}
	n.SetConstantValue(&constant.Quaternion{X: comps[0], Y: comps[1], Z: comps[2], S: comps[3]})
	return true
}

// VisitListExpression requires every element to be constant; the result
// deep-copies each element's value into a fresh List.
func (v *propagatingVisitor) VisitListExpression(n *ast.ListExpression) bool {
	elems := make([]constant.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		val := e.ConstantValue()
		if val == nil {
			if e.ConstantPrecluded() {
				n.SetConstantPrecluded(true)
			}
			return true
		}
		elems = append(elems, val.Copy())
	}
	n.SetConstantValue(&constant.List{Elements: elems})
	return true
}

// VisitTypecastExpression passes through unchanged when source and target
// types already match, otherwise dispatches to the operand value's own
// Cast method — a nil result means the conversion isn't statically
// foldable (or is illegal; that's the validator's concern, not this
// pass's).
func (v *propagatingVisitor) VisitTypecastExpression(n *ast.TypecastExpression) bool {
	if n.Operand == nil || n.Target == nil {
		return true
	}
	val := n.Operand.ConstantValue()
	if val == nil {
		if n.Operand.ConstantPrecluded() {
			n.SetConstantPrecluded(true)
		}
		return true
	}
	target := n.Target.Resolved
	if target == nil {
		return true
	}
	if val.Type() == target {
		n.SetConstantValue(val)
		return true
	}
	n.SetConstantValue(val.Cast(target))
	return true
}

func numericTriple(exprs ...ast.Expression) ([4]float32, bool) {
	var out [4]float32
	for i, e := range exprs {
		if e == nil {
			return out, false
		}
		val := e.ConstantValue()
		if val == nil {
			return out, false
		}
		switch c := val.(type) {
		case *constant.Integer:
			out[i] = float32(c.V)
		case *constant.Float:
			out[i] = c.V
		default:
			return out, false
		}
	}
	return out, true
}

func propagatePreclusion(n ast.Node, exprs ...ast.Expression) {
	for _, e := range exprs {
		if e != nil && e.ConstantValue() == nil && e.ConstantPrecluded() {
			n.SetConstantPrecluded(true)
			return
		}
	}
}

func isErrorType(n ast.Node) bool {
	if n == nil {
		return false
	}
	t := n.ResolvedType()
	return t != nil && t.Kind() == types.Error
}
