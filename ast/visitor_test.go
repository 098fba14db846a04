package ast

import "testing"

// countingVisitor records which node kinds it visits, in visit order, and
// optionally prunes one target node.
type countingVisitor struct {
	BaseVisitor
	order []string
	prune Node
}

func (v *countingVisitor) BeforeDescend(n Node) bool {
	v.order = append(v.order, "before")
	return true
}

func (v *countingVisitor) VisitIntegerLiteral(n *IntegerLiteral) bool {
	v.order = append(v.order, "int")
	return Node(n) != v.prune
}

func (v *countingVisitor) VisitBinaryExpression(n *BinaryExpression) bool {
	v.order = append(v.order, "binary")
	return true
}

func TestWalkVisitsPreOrderLeftToRight(t *testing.T) {
	left := &IntegerLiteral{Value: 1}
	right := &IntegerLiteral{Value: 2}
	bin := NewBinaryExpression("+", left, right)

	v := &countingVisitor{}
	Walk(v, bin)

	want := []string{"before", "binary", "before", "int", "before", "int"}
	if len(v.order) != len(want) {
		t.Fatalf("order = %v, want %v", v.order, want)
	}
	for i := range want {
		if v.order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, v.order[i], want[i])
		}
	}
}

func TestWalkSkipsSubtreeWhenBeforeDescendVetoes(t *testing.T) {
	left := &IntegerLiteral{Value: 1}
	right := &IntegerLiteral{Value: 2}
	bin := NewBinaryExpression("+", left, right)

	v := &vetoingVisitor{veto: Node(left)}
	Walk(v, bin)

	if v.visitedInt {
		t.Errorf("VisitIntegerLiteral ran on a node whose BeforeDescend vetoed it")
	}
}

type vetoingVisitor struct {
	BaseVisitor
	veto       Node
	visitedInt bool
}

func (v *vetoingVisitor) BeforeDescend(n Node) bool { return n != v.veto }
func (v *vetoingVisitor) VisitIntegerLiteral(n *IntegerLiteral) bool {
	if Node(n) == v.veto {
		v.visitedInt = true
	}
	return true
}

func TestVisitReturningFalseStopsDescent(t *testing.T) {
	left := &IntegerLiteral{Value: 1}
	right := &IntegerLiteral{Value: 2}
	bin := NewBinaryExpression("+", left, right)

	v := &pruningBinaryVisitor{}
	Walk(v, bin)
	if v.visitedOperand {
		t.Errorf("Walk descended into operands of a node whose Visit method returned false")
	}
}

type pruningBinaryVisitor struct {
	BaseVisitor
	visitedOperand bool
}

func (v *pruningBinaryVisitor) VisitBinaryExpression(*BinaryExpression) bool { return false }
func (v *pruningBinaryVisitor) VisitIntegerLiteral(*IntegerLiteral) bool {
	v.visitedOperand = true
	return true
}

func TestReplaceChildSplicesAndReparents(t *testing.T) {
	left := &IntegerLiteral{Value: 1}
	right := &IntegerLiteral{Value: 2}
	bin := NewBinaryExpression("+", left, right)

	folded := NewConstantExpression(nil)
	if !ReplaceChild(bin, left, folded) {
		t.Fatalf("ReplaceChild reported failure")
	}
	if bin.Left != Expression(folded) {
		t.Errorf("bin.Left = %#v, want the replacement", bin.Left)
	}
	if folded.Parent() != Node(bin) {
		t.Errorf("replacement's Parent was not set to bin")
	}
}

func TestPruneChildRemovesStatementFromCompound(t *testing.T) {
	stmt := &ExpressionStatement{Expr: &IntegerLiteral{Value: 1}}
	block := &CompoundStatement{Statements: []Statement{stmt}}

	if !PruneChild(block, stmt) {
		t.Fatalf("PruneChild reported failure")
	}
	if len(block.Statements) != 0 {
		t.Errorf("block.Statements = %v, want empty", block.Statements)
	}
}

func TestRootWalksToScript(t *testing.T) {
	lit := &IntegerLiteral{Value: 1}
	gv := &GlobalVariable{Init: lit}
	attach(gv, lit)
	gs := &GlobalStorage{Variable: gv}
	attach(gs, gv)
	script := &Script{Items: []Node{gs}}
	attach(script, gs)

	if Root(lit) != script {
		t.Errorf("Root(lit) did not find the script root")
	}
}
