package globalvalidator

import (
	"testing"

	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/diagnostics"
	"github.com/kasl-lang/kasl/symtab"
	"github.com/kasl-lang/kasl/types"
)

func TestIllegalSimpleAssignableFunctionCall(t *testing.T) {
	call := &ast.FunctionExpression{Name: "someFunc"}
	gv := &ast.GlobalVariable{Name: "X", Init: call}
	call.SetParent(gv)
	gs := &ast.GlobalStorage{Variable: gv}
	gv.SetParent(gs)
	script := &ast.Script{Items: []ast.Node{gs}}
	gs.SetParent(script)

	var log diagnostics.Log
	Validate(script, &log)

	entries := log.Entries()
	if len(entries) != 1 || entries[0].Code != diagnostics.CodeGlobalInitializerNotConstant {
		t.Fatalf("Entries() = %v, want one CodeGlobalInitializerNotConstant", entries)
	}
}

func TestConstantFoldedMemberAccessIsStillRejected(t *testing.T) {
	// A member access that the propagator has folded to a constant float
	// is still illegal at global scope: Validate must not stop at the
	// constant-ness check alone.
	vSym := symtab.NewSymbol("V", types.Get(types.Vector), symtab.Variable, symtab.Global)
	ident := &ast.Identifier{Name: "V", Symbol: vSym}
	lv := &ast.LValueExpression{Name: ident, Member: "y", Symbol: vSym}
	lv.SetConstantValue(&constant.Float{V: 2})
	gv := &ast.GlobalVariable{Name: "F", Init: lv}
	lv.SetParent(gv)
	gs := &ast.GlobalStorage{Variable: gv}
	gv.SetParent(gs)
	script := &ast.Script{Items: []ast.Node{gs}}
	gs.SetParent(script)

	var log diagnostics.Log
	Validate(script, &log)

	entries := log.Entries()
	if len(entries) != 1 || entries[0].Code != diagnostics.CodeGlobalInitializerNotConstant {
		t.Fatalf("Entries() = %v, want one CodeGlobalInitializerNotConstant", entries)
	}
}

func TestConstantInitializerProducesNoError(t *testing.T) {
	lit := &ast.IntegerLiteral{Value: 5}
	lit.SetConstantValue(&constant.Integer{V: 5}) // as the propagator would have set it
	gv := &ast.GlobalVariable{Name: "N", Init: lit}
	lit.SetParent(gv)
	gs := &ast.GlobalStorage{Variable: gv}
	gv.SetParent(gs)
	script := &ast.Script{Items: []ast.Node{gs}}
	gs.SetParent(script)

	var log diagnostics.Log
	Validate(script, &log)

	if len(log.Entries()) != 0 {
		t.Errorf("Entries() = %v, want none", log.Entries())
	}
}

func TestPrecludedInitializerIsNotDoubleReported(t *testing.T) {
	lit := &ast.IntegerLiteral{Value: 0}
	lit.SetConstantPrecluded(true)
	gv := &ast.GlobalVariable{Name: "N", Init: lit}
	lit.SetParent(gv)
	gs := &ast.GlobalStorage{Variable: gv}
	gv.SetParent(gs)
	script := &ast.Script{Items: []ast.Node{gs}}
	gs.SetParent(script)

	var log diagnostics.Log
	Validate(script, &log)

	if len(log.Entries()) != 0 {
		t.Errorf("Entries() = %v, want none (already precluded upstream)", log.Entries())
	}
}

func TestSimpleAssignableRejectsMemberAccess(t *testing.T) {
	ident := &ast.Identifier{Name: "V"}
	lv := &ast.LValueExpression{Name: ident, Member: "x", Symbol: symtab.NewSymbol("V", types.Get(types.Vector), symtab.Variable, symtab.Global)}
	if SimpleAssignable(lv, false) {
		t.Errorf("SimpleAssignable allowed a member access")
	}
}

func TestSimpleAssignableAllowsNegatedBuiltinNumericConstant(t *testing.T) {
	sym := symtab.NewSymbol("PI", types.Get(types.Float), symtab.Variable, symtab.Builtin)
	ident := &ast.Identifier{Name: "PI", Symbol: sym}
	lv := &ast.LValueExpression{Name: ident, Symbol: sym}
	neg := ast.NewUnaryExpression("-", lv)

	if !SimpleAssignable(neg, false) {
		t.Errorf("SimpleAssignable rejected -PI, a negated builtin numeric constant")
	}
}

func TestSimpleAssignableRejectsNegatedTrueFalse(t *testing.T) {
	sym := symtab.NewSymbol("TRUE", types.Get(types.Integer), symtab.Variable, symtab.Builtin)
	ident := &ast.Identifier{Name: "TRUE", Symbol: sym}
	lv := &ast.LValueExpression{Name: ident, Symbol: sym}
	neg := ast.NewUnaryExpression("-", lv)

	if SimpleAssignable(neg, false) {
		t.Errorf("SimpleAssignable allowed negating TRUE")
	}
}

func TestSimpleAssignableListRequiresTransitiveInitializer(t *testing.T) {
	declaredSym := symtab.NewSymbol("A", types.Get(types.Integer), symtab.Variable, symtab.Global)
	declGV := &ast.GlobalVariable{Name: "A", Symbol: declaredSym, Init: &ast.IntegerLiteral{Value: 1}}
	declaredSym.Decl = declGV

	ident := &ast.Identifier{Name: "A", Symbol: declaredSym}
	lv := &ast.LValueExpression{Name: ident, Symbol: declaredSym}
	list := &ast.ListExpression{Elements: []ast.Expression{lv}}

	if !SimpleAssignable(list, false) {
		t.Errorf("SimpleAssignable rejected a list referencing a global with an initializer")
	}

	uninitSym := symtab.NewSymbol("B", types.Get(types.Integer), symtab.Variable, symtab.Global)
	uninitGV := &ast.GlobalVariable{Name: "B", Symbol: uninitSym}
	uninitSym.Decl = uninitGV
	ident2 := &ast.Identifier{Name: "B", Symbol: uninitSym}
	lv2 := &ast.LValueExpression{Name: ident2, Symbol: uninitSym}
	list2 := &ast.ListExpression{Elements: []ast.Expression{lv2}}

	if SimpleAssignable(list2, false) {
		t.Errorf("SimpleAssignable accepted a list referencing a global with no initializer")
	}
}
