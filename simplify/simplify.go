// Package simplify implements the tree-simplification pass: folding
// expressions and lvalue references into ConstantExpression nodes, and
// pruning declarations and global storage that turned out to be
// unreferenced — all driven by the ConstantValue/ConstantPrecluded and
// reference/assignment bookkeeping the propagator pass already computed.
package simplify

import (
	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/symtab"
)

// Options configures which simplifications run, matching the source
// model's flag set.
type Options struct {
	FoldConstants        bool
	PruneUnusedLocals    bool
	PruneUnusedGlobals   bool
	PruneUnusedFunctions bool
	MayCreateNewStrs     bool
}

// Simplifier runs the configured simplifications over a script, tallying
// how many nodes were folded or pruned in FoldedTotal.
type Simplifier struct {
	Options
	FoldedTotal int
}

// New constructs a Simplifier with the given options.
func New(opts Options) *Simplifier {
	return &Simplifier{Options: opts}
}

// Run applies one pass of simplification to script. Running it a second
// time over an already-simplified tree must not increase FoldedTotal
// (idempotence is part of the contract — see the package tests).
func (s *Simplifier) Run(script *ast.Script) {
	v := &simplifyingVisitor{s: s}
	ast.Walk(v, script)
}

type simplifyingVisitor struct {
	ast.BaseVisitor
	s *Simplifier
}

// VisitDeclaration implements local pruning: a declaration whose symbol
// was never referenced beyond its own declaration and never assigned is
// removed, provided its initializer (if any) is foldable to a pure
// constant — an initializer with a side effect (a call, an assignment)
// must never be silently dropped even if the local itself goes unused.
func (v *simplifyingVisitor) VisitDeclaration(n *ast.Declaration) bool {
	if v.s.PruneUnusedLocals && n.Symbol != nil && n.Symbol.Unreferenced() && n.Symbol.Assignments == 0 {
		if n.Init == nil || (n.Init.ConstantValue() != nil && !hasAssignment(n.Init)) {
			parent := n.Parent()
			if parent != nil && ast.PruneChild(parent, n) {
				if n.Symbol != nil {
					symtab.RemoveFromChain(scopeOf(parent), n.Symbol)
				}
				v.s.FoldedTotal++
				return false
			}
		}
	}
	if v.s.FoldConstants && n.Init != nil {
		n.Init = v.foldExpression(n.Init)
	}
	return true
}

// hasAssignment reports whether n's subtree contains a plain assignment,
// the one side effect an expression can carry while still having a
// constant value (calls never get one).
func hasAssignment(n ast.Node) bool {
	if b, ok := n.(*ast.BinaryExpression); ok && b.Op == "=" {
		return true
	}
	for _, c := range n.Children() {
		if c != nil && hasAssignment(c) {
			return true
		}
	}
	return false
}

// VisitGlobalStorage implements global pruning: a storage slot wrapping a
// variable or function whose symbol has exactly one reference (the
// declaration itself) is removed from the script entirely, subject to its
// own prune flag.
func (v *simplifyingVisitor) VisitGlobalStorage(n *ast.GlobalStorage) bool {
	var sym *symtab.Symbol
	pruneEnabled := false
	switch {
	case n.Variable != nil:
		sym = n.Variable.Symbol
		pruneEnabled = v.s.PruneUnusedGlobals
	case n.Function != nil:
		sym = n.Function.Symbol
		pruneEnabled = v.s.PruneUnusedFunctions
	}
	if pruneEnabled && sym != nil && sym.Unreferenced() {
		parent := n.Parent()
		if parent != nil && ast.PruneChild(parent, n) {
			if root := ast.Root(n); root != nil && root.Scope_ != nil {
				symtab.RemoveFromChain(root.Scope_, sym)
			}
			v.s.FoldedTotal++
			return false
		}
	}
	if n.Variable != nil && v.s.FoldConstants && n.Variable.Init != nil {
		n.Variable.Init = v.foldExpression(n.Variable.Init)
	}
	return true
}

func (v *simplifyingVisitor) VisitExpressionStatement(n *ast.ExpressionStatement) bool {
	if v.s.FoldConstants && n.Expr != nil {
		n.Expr = v.foldExpression(n.Expr)
	}
	return true
}

func (v *simplifyingVisitor) VisitReturnStatement(n *ast.ReturnStatement) bool {
	if v.s.FoldConstants && n.Value != nil {
		n.Value = v.foldExpression(n.Value)
	}
	return true
}

// foldExpression implements both expression folding and lvalue folding:
//
//   - An expression carrying a finite, non-list constant that is not
//     already a ConstantExpression is replaced by one, unless the result
//     is a string and MayCreateNewStrs is false (the runtime's pooled
//     string table must not gain new entries in patch mode).
//   - An lvalue naming a non-builtin symbol with a finite constant folds
//     the same way; a builtin reference is left alone, since builtins
//     compile to a named token at zero cost and gain nothing from folding.
func (v *simplifyingVisitor) foldExpression(e ast.Expression) ast.Expression {
	if _, already := e.(*ast.ConstantExpression); already {
		return e
	}
	if lv, ok := e.(*ast.LValueExpression); ok {
		if lv.Symbol == nil || lv.Symbol.SubKind == symtab.Builtin {
			return e
		}
		val := lv.ConstantValue()
		if val == nil || !val.IsFinite() {
			return e
		}
		return v.fold(e, val)
	}

	val := e.ConstantValue()
	if val == nil || !val.IsFinite() {
		return e
	}
	if _, isList := val.(*constant.List); isList {
		return e
	}
	return v.fold(e, val)
}

func (v *simplifyingVisitor) fold(original ast.Expression, val constant.Value) ast.Expression {
	if _, isString := val.(*constant.String); isString && !v.s.MayCreateNewStrs {
		return original
	}
	folded := ast.NewConstantExpression(val.Copy())
	folded.SetSpan(original.Span())
	folded.SetResolvedType(original.ResolvedType())
	if parent := original.Parent(); parent != nil {
		ast.ReplaceChild(parent, original, folded)
	}
	v.s.FoldedTotal++
	return folded
}

// scopeOf finds the nearest enclosing symbol table by walking up from n,
// used by declaration pruning to know which table to erase the symbol
// from when the declaration's own Scope isn't directly reachable.
func scopeOf(n ast.Node) *symtab.Table {
	for cur := n; cur != nil; cur = cur.Parent() {
		switch t := cur.(type) {
		case *ast.CompoundStatement:
			if t.Scope_ != nil {
				return t.Scope_
			}
		case *ast.GlobalFunction:
			if t.Scope_ != nil {
				return t.Scope_
			}
		case *ast.EventHandler:
			if t.Scope_ != nil {
				return t.Scope_
			}
		case *ast.Script:
			if t.Scope_ != nil {
				return t.Scope_
			}
		}
	}
	return nil
}
