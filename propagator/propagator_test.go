package propagator

import (
	"testing"

	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/symtab"
	"github.com/kasl-lang/kasl/types"
)

func globalVar(name string, typ *types.Type, init ast.Expression) (*ast.GlobalStorage, *ast.GlobalVariable) {
	sym := symtab.NewSymbol(name, typ, symtab.Variable, symtab.Global)
	gv := &ast.GlobalVariable{TypeNode: &ast.TypeNode{Name: typ.String(), Resolved: typ}, Name: name, Symbol: sym, Init: init}
	if init != nil {
		init.SetParent(gv)
	}
	gs := &ast.GlobalStorage{Variable: gv}
	gv.SetParent(gs)
	return gs, gv
}

func intLit(v int32) *ast.IntegerLiteral { return &ast.IntegerLiteral{Value: v} }

func TestConstantFolding2Plus3Times4(t *testing.T) {
	// 2 + 3 * 4, shaped by precedence as the parser would have built it:
	// BinaryExpression("+", 2, BinaryExpression("*", 3, 4))
	mul := ast.NewBinaryExpression("*", intLit(3), intLit(4))
	add := ast.NewBinaryExpression("+", intLit(2), mul)
	gs, gv := globalVar("N", types.Get(types.Integer), add)
	script := &ast.Script{Items: []ast.Node{gs}}
	gs.SetParent(script)

	Propagate(script)

	got, ok := gv.Symbol.Constant.(*constant.Integer)
	if !ok || got.V != 14 {
		t.Fatalf("N.Constant = %#v, want Integer(14)", gv.Symbol.Constant)
	}
}

func TestGlobalReferenceOrderingForward(t *testing.T) {
	// integer A = 5; integer B = A;
	aGS, aVar := globalVar("A", types.Get(types.Integer), intLit(5))

	aIdent := &ast.Identifier{Name: "A", Symbol: aVar.Symbol}
	aRef := &ast.LValueExpression{Name: aIdent}
	aIdent.SetParent(aRef)
	bGS, bVar := globalVar("B", types.Get(types.Integer), aRef)

	script := &ast.Script{Items: []ast.Node{aGS, bGS}}
	aGS.SetParent(script)
	bGS.SetParent(script)

	Propagate(script)

	got, ok := bVar.Symbol.Constant.(*constant.Integer)
	if !ok || got.V != 5 {
		t.Fatalf("B.Constant = %#v, want Integer(5)", bVar.Symbol.Constant)
	}
}

func TestGlobalReferenceOrderingBackwardDoesNotFold(t *testing.T) {
	// integer B = A; integer A = 5;  (reversed source order)
	aSym := symtab.NewSymbol("A", types.Get(types.Integer), symtab.Variable, symtab.Global)
	aIdent := &ast.Identifier{Name: "A", Symbol: aSym}
	aRef := &ast.LValueExpression{Name: aIdent}
	aIdent.SetParent(aRef)

	bGS, bVar := globalVar("B", types.Get(types.Integer), aRef)
	aGS, _ := globalVar("A", types.Get(types.Integer), intLit(5))
	// reuse aSym instead of the one globalVar freshly made, so the
	// reference resolves to the correct (not-yet-folded) symbol
	aGS.Variable.Symbol = aSym

	script := &ast.Script{Items: []ast.Node{bGS, aGS}}
	bGS.SetParent(script)
	aGS.SetParent(script)

	Propagate(script)

	if bVar.Symbol.Constant != nil {
		t.Errorf("B.Constant = %#v, want nil (A not yet folded when B was visited)", bVar.Symbol.Constant)
	}
}

func TestVectorMemberFold(t *testing.T) {
	// vector V = <1.0, 2.0, 3.0>; float F = V.y;
	vecExpr := &ast.VectorExpression{
		X: &ast.FloatLiteral{Value: 1.0},
		Y: &ast.FloatLiteral{Value: 2.0},
		Z: &ast.FloatLiteral{Value: 3.0},
	}
	vGS, vVar := globalVar("V", types.Get(types.Vector), vecExpr)

	vIdent := &ast.Identifier{Name: "V", Symbol: vVar.Symbol}
	memberRef := &ast.LValueExpression{Name: vIdent, Member: "y"}
	vIdent.SetParent(memberRef)
	fGS, fVar := globalVar("F", types.Get(types.Float), memberRef)

	script := &ast.Script{Items: []ast.Node{vGS, fGS}}
	vGS.SetParent(script)
	fGS.SetParent(script)

	Propagate(script)

	got, ok := fVar.Symbol.Constant.(*constant.Float)
	if !ok || got.V != 2.0 {
		t.Fatalf("F.Constant = %#v, want Float(2.0)", fVar.Symbol.Constant)
	}
}

func TestAssignedLvalueIsNotConstant(t *testing.T) {
	sym := symtab.NewSymbol("x", types.Get(types.Integer), symtab.Variable, symtab.Local)
	sym.Constant = &constant.Integer{V: 1}
	sym.Assignments = 1 // reassigned since its initializer

	ident := &ast.Identifier{Name: "x", Symbol: sym}
	ref := &ast.LValueExpression{Name: ident}
	ident.SetParent(ref)

	ast.Walk(&propagatingVisitor{}, ref)

	if ref.ConstantValue() != nil {
		t.Errorf("ConstantValue = %#v, want nil for a reassigned symbol", ref.ConstantValue())
	}
}

func TestListRequiresAllElementsConstant(t *testing.T) {
	nonConst := &ast.LValueExpression{Name: &ast.Identifier{Name: "unresolved"}}
	list := &ast.ListExpression{Elements: []ast.Expression{intLit(1), nonConst}}

	ast.Walk(&propagatingVisitor{}, list)

	if list.ConstantValue() != nil {
		t.Errorf("ConstantValue = %#v, want nil (one element unresolved)", list.ConstantValue())
	}
	if !list.ConstantPrecluded() {
		t.Errorf("ConstantPrecluded should propagate from the unresolved element")
	}
}

func TestTypecastFoldsThroughCast(t *testing.T) {
	cast := &ast.TypecastExpression{
		Target:  &ast.TypeNode{Name: "float", Resolved: types.Get(types.Float)},
		Operand: intLit(5),
	}
	ast.Walk(&propagatingVisitor{}, cast)

	got, ok := cast.ConstantValue().(*constant.Float)
	if !ok || got.V != 5.0 {
		t.Fatalf("ConstantValue = %#v, want Float(5.0)", cast.ConstantValue())
	}
}
