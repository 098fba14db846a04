// Package globalvalidator implements the global-expression validation
// pass: it checks that every global variable's initializer, and every
// identifier reference reachable from inside a list literal, obeys the
// language's "simple assignable" grammar — the restricted subset of
// expressions legal at global scope, where no function call or runtime
// state exists yet to evaluate anything richer.
package globalvalidator

import (
	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/diagnostics"
	"github.com/kasl-lang/kasl/symtab"
)

// Validate walks script and logs E_GLOBAL_INITIALIZER_NOT_CONSTANT for
// every global variable whose initializer is non-constant and not already
// precluded by an earlier error (a precluded subtree has already been
// diagnosed upstream; re-reporting it here would just be noise).
func Validate(script *ast.Script, log *diagnostics.Log) {
	v := &validatingVisitor{log: log}
	ast.Walk(v, script)
}

type validatingVisitor struct {
	ast.BaseVisitor
	log *diagnostics.Log
}

func (v *validatingVisitor) VisitGlobalVariable(n *ast.GlobalVariable) bool {
	if n.Init == nil {
		return true
	}
	if n.Init.ConstantPrecluded() {
		return true
	}
	if n.Init.ConstantValue() == nil {
		v.log.Errorf(diagnostics.CodeGlobalInitializerNotConstant, n.Span(),
			"initializer for global %q is not a constant expression", n.Name)
		return true
	}
	// A constant-folded initializer can still use forms the global-scope
	// grammar forbids outright (a vector member access, for one), so
	// SimpleAssignable also runs over initializers that did fold,
	// matching the original validator's rvalue visit.
	if !SimpleAssignable(n.Init, false) {
		v.log.Errorf(diagnostics.CodeGlobalInitializerNotConstant, n.Span(),
			"initializer for global %q is not a constant expression", n.Name)
	}
	return true
}

// SimpleAssignable reports whether expr is legal in global initializer
// (or nested list-element) position: a constant literal; a
// vector/quaternion/list expression whose elements are themselves simple
// assignables; a reference to a builtin integer or float constant
// optionally negated by unary minus (but never TRUE or FALSE, which are
// lexer tokens, not symbol references); or a reference to a prior global
// variable that itself has a non-empty initializer chain. Member accesses
// and function calls are never permitted.
func SimpleAssignable(expr ast.Expression, insideList bool) bool {
	switch e := expr.(type) {
	case *ast.ConstantExpression, *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral:
		return true
	case *ast.VectorExpression:
		return SimpleAssignable(e.X, insideList) && SimpleAssignable(e.Y, insideList) && SimpleAssignable(e.Z, insideList)
	case *ast.QuaternionExpression:
		return SimpleAssignable(e.X, insideList) && SimpleAssignable(e.Y, insideList) &&
			SimpleAssignable(e.Z, insideList) && SimpleAssignable(e.S, insideList)
	case *ast.ListExpression:
		for _, elem := range e.Elements {
			if !SimpleAssignable(elem, true) {
				return false
			}
		}
		return true
	case *ast.UnaryExpression:
		if e.Op != "-" {
			return false
		}
		lv, ok := e.Operand.(*ast.LValueExpression)
		if !ok {
			return false
		}
		return builtinNumericConstantReference(lv)
	case *ast.LValueExpression:
		if e.Member != "" {
			return false
		}
		if e.Symbol == nil {
			return false
		}
		if e.Symbol.SubKind == symtab.Builtin {
			return e.Symbol.Name != "TRUE" && e.Symbol.Name != "FALSE" &&
				e.Symbol.Type != nil && e.Symbol.Type.IsNumeric()
		}
		if insideList {
			return reachesInitializer(e.Symbol)
		}
		return e.Symbol.SubKind == symtab.Global && reachesInitializer(e.Symbol)
	default:
		return false
	}
}

func builtinNumericConstantReference(lv *ast.LValueExpression) bool {
	if lv.Member != "" || lv.Symbol == nil {
		return false
	}
	if lv.Symbol.SubKind != symtab.Builtin {
		return false
	}
	if lv.Symbol.Name == "TRUE" || lv.Symbol.Name == "FALSE" {
		return false
	}
	return lv.Symbol.Type != nil && lv.Symbol.Type.IsNumeric()
}

// reachesInitializer walks a symbol's declaring-node chain looking for a
// non-empty initializer, short-circuiting at builtins (which are always
// considered to have one — they're defined by the runtime, not by source
// that could lack an initializer).
func reachesInitializer(sym *symtab.Symbol) bool {
	if sym.SubKind == symtab.Builtin {
		return true
	}
	switch decl := sym.Decl.(type) {
	case *ast.GlobalVariable:
		return initReaches(sym, decl.Init)
	case *ast.Declaration:
		return initReaches(sym, decl.Init)
	default:
		return false
	}
}

// initReaches reports whether init is non-empty, following an initializer
// that is a bare reference to another symbol on to that symbol's own
// declaration.
func initReaches(owner *symtab.Symbol, init ast.Expression) bool {
	if lv, ok := init.(*ast.LValueExpression); ok && lv.Member == "" && lv.Symbol != nil && lv.Symbol != owner {
		return reachesInitializer(lv.Symbol)
	}
	return init != nil
}
