package simplify

import (
	"testing"

	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/symtab"
	"github.com/kasl-lang/kasl/types"
)

func intLit(v int32) *ast.IntegerLiteral {
	lit := &ast.IntegerLiteral{Value: v}
	lit.SetConstantValue(&constant.Integer{V: v})
	return lit
}

func TestFoldConstantsReplacesExpressionWithConstantExpression(t *testing.T) {
	lit := intLit(14)
	stmt := &ast.ExpressionStatement{Expr: lit}
	lit.SetParent(stmt)
	comp := &ast.CompoundStatement{Statements: []ast.Statement{stmt}, Scope_: symtab.New(nil)}
	stmt.SetParent(comp)

	s := New(Options{FoldConstants: true})
	s.Run(&ast.Script{Items: []ast.Node{comp}})

	folded, ok := stmt.Expr.(*ast.ConstantExpression)
	if !ok {
		t.Fatalf("Expr = %#v, want *ConstantExpression", stmt.Expr)
	}
	got, ok := folded.Value.(*constant.Integer)
	if !ok || got.V != 14 {
		t.Errorf("Value = %#v, want Integer(14)", folded.Value)
	}
	if s.FoldedTotal != 1 {
		t.Errorf("FoldedTotal = %d, want 1", s.FoldedTotal)
	}
}

func TestFoldIsIdempotent(t *testing.T) {
	lit := intLit(14)
	stmt := &ast.ExpressionStatement{Expr: lit}
	lit.SetParent(stmt)
	comp := &ast.CompoundStatement{Statements: []ast.Statement{stmt}, Scope_: symtab.New(nil)}
	stmt.SetParent(comp)

	s := New(Options{FoldConstants: true})
	s.Run(&ast.Script{Items: []ast.Node{comp}})
	firstTotal := s.FoldedTotal
	s.Run(&ast.Script{Items: []ast.Node{comp}})

	if s.FoldedTotal != firstTotal {
		t.Errorf("FoldedTotal after second run = %d, want unchanged %d", s.FoldedTotal, firstTotal)
	}
}

func TestFoldSkipsStringWhenMayCreateNewStrsIsFalse(t *testing.T) {
	lit := &ast.StringLiteral{Value: "hi"}
	lit.SetConstantValue(&constant.String{V: "hi"})
	stmt := &ast.ExpressionStatement{Expr: lit}
	lit.SetParent(stmt)

	s := New(Options{FoldConstants: true, MayCreateNewStrs: false})
	s.Run(&ast.Script{Items: []ast.Node{stmt}})

	if _, folded := stmt.Expr.(*ast.ConstantExpression); folded {
		t.Errorf("Expr should remain unfolded without MayCreateNewStrs")
	}
}

func TestFoldAllowsStringWhenMayCreateNewStrsIsTrue(t *testing.T) {
	lit := &ast.StringLiteral{Value: "hi"}
	lit.SetConstantValue(&constant.String{V: "hi"})
	stmt := &ast.ExpressionStatement{Expr: lit}
	lit.SetParent(stmt)

	s := New(Options{FoldConstants: true, MayCreateNewStrs: true})
	s.Run(&ast.Script{Items: []ast.Node{stmt}})

	if _, folded := stmt.Expr.(*ast.ConstantExpression); !folded {
		t.Errorf("Expr should fold once MayCreateNewStrs is set")
	}
}

func TestFoldReplacesConstantLvalueButLeavesBuiltinAlone(t *testing.T) {
	sym := symtab.NewSymbol("N", types.Get(types.Integer), symtab.Variable, symtab.Global)
	sym.Constant = &constant.Integer{V: 3}
	lv := &ast.LValueExpression{Name: &ast.Identifier{Name: "N", Symbol: sym}, Symbol: sym}
	lv.SetConstantValue(&constant.Integer{V: 3})
	stmt := &ast.ExpressionStatement{Expr: lv}
	lv.SetParent(stmt)

	s := New(Options{FoldConstants: true})
	s.Run(&ast.Script{Items: []ast.Node{stmt}})

	if _, ok := stmt.Expr.(*ast.ConstantExpression); !ok {
		t.Errorf("non-builtin constant lvalue should fold")
	}

	bsym := symtab.NewSymbol("PI", types.Get(types.Float), symtab.Variable, symtab.Builtin)
	bsym.Constant = &constant.Float{V: 3.14159}
	blv := &ast.LValueExpression{Name: &ast.Identifier{Name: "PI", Symbol: bsym}, Symbol: bsym}
	blv.SetConstantValue(&constant.Float{V: 3.14159})
	bstmt := &ast.ExpressionStatement{Expr: blv}
	blv.SetParent(bstmt)

	s2 := New(Options{FoldConstants: true})
	s2.Run(&ast.Script{Items: []ast.Node{bstmt}})

	if _, ok := bstmt.Expr.(*ast.ConstantExpression); ok {
		t.Errorf("builtin lvalue reference should not be folded")
	}
}

func TestPruneUnusedLocalRemovesDeclaration(t *testing.T) {
	sym := symtab.NewSymbol("tmp", types.Get(types.Integer), symtab.Variable, symtab.Local)
	decl := &ast.Declaration{Name: "tmp", Symbol: sym, Init: intLit(1)}
	decl.Init.SetParent(decl)
	scope := symtab.New(nil)
	scope.Define(sym)
	comp := &ast.CompoundStatement{Statements: []ast.Statement{decl}, Scope_: scope}
	decl.SetParent(comp)

	s := New(Options{PruneUnusedLocals: true})
	s.Run(&ast.Script{Items: []ast.Node{comp}})

	if len(comp.Statements) != 0 {
		t.Fatalf("Statements = %v, want empty after pruning unused local", comp.Statements)
	}
	if _, ok := scope.Lookup("tmp", symtab.Variable); ok {
		t.Errorf("symbol %q should have been removed from scope", "tmp")
	}
}

func TestPruneLeavesReferencedLocalAlone(t *testing.T) {
	sym := symtab.NewSymbol("used", types.Get(types.Integer), symtab.Variable, symtab.Local)
	sym.Reference()
	decl := &ast.Declaration{Name: "used", Symbol: sym, Init: intLit(1)}
	decl.Init.SetParent(decl)
	scope := symtab.New(nil)
	scope.Define(sym)
	comp := &ast.CompoundStatement{Statements: []ast.Statement{decl}, Scope_: scope}
	decl.SetParent(comp)

	s := New(Options{PruneUnusedLocals: true})
	s.Run(&ast.Script{Items: []ast.Node{comp}})

	if len(comp.Statements) != 1 {
		t.Errorf("Statements = %v, want the referenced declaration kept", comp.Statements)
	}
}

func TestPruneUnusedGlobalRemovesStorage(t *testing.T) {
	sym := symtab.NewSymbol("G", types.Get(types.Integer), symtab.Variable, symtab.Global)
	gv := &ast.GlobalVariable{Name: "G", Symbol: sym, Init: intLit(1)}
	gv.Init.SetParent(gv)
	gs := &ast.GlobalStorage{Variable: gv}
	gv.SetParent(gs)
	scope := symtab.New(nil)
	scope.Define(sym)
	script := &ast.Script{Items: []ast.Node{gs}, Scope_: scope}
	gs.SetParent(script)

	s := New(Options{PruneUnusedGlobals: true})
	s.Run(script)

	if len(script.Items) != 0 {
		t.Fatalf("Items = %v, want empty after pruning unused global", script.Items)
	}
}
