package ast

// Visitor exposes one operation per node kind, each reporting whether the
// driver should descend into that node's children. Walk sends each node to
// its most specific method; callers that only care about a handful of
// kinds can embed BaseVisitor and override just those methods.
//
// Every method's default behavior (as implemented by BaseVisitor) is to
// return true: descend. A visitor that wants to prune a subtree returns
// false from the specific method, or vetoes from BeforeDescend.
type Visitor interface {
	BeforeDescend(n Node) bool

	VisitScript(n *Script) bool
	VisitGlobalStorage(n *GlobalStorage) bool
	VisitGlobalVariable(n *GlobalVariable) bool
	VisitGlobalFunction(n *GlobalFunction) bool
	VisitEventHandler(n *EventHandler) bool
	VisitState(n *State) bool
	VisitParam(n *Param) bool
	VisitCompoundStatement(n *CompoundStatement) bool
	VisitDeclaration(n *Declaration) bool
	VisitJumpStatement(n *JumpStatement) bool
	VisitLabel(n *Label) bool
	VisitExpressionStatement(n *ExpressionStatement) bool
	VisitReturnStatement(n *ReturnStatement) bool
	VisitIfStatement(n *IfStatement) bool
	VisitForStatement(n *ForStatement) bool
	VisitDoStatement(n *DoStatement) bool
	VisitWhileStatement(n *WhileStatement) bool
	VisitUnaryExpression(n *UnaryExpression) bool
	VisitBinaryExpression(n *BinaryExpression) bool
	VisitParenthesisExpression(n *ParenthesisExpression) bool
	VisitTypecastExpression(n *TypecastExpression) bool
	VisitLValueExpression(n *LValueExpression) bool
	VisitFunctionExpression(n *FunctionExpression) bool
	VisitVectorExpression(n *VectorExpression) bool
	VisitQuaternionExpression(n *QuaternionExpression) bool
	VisitListExpression(n *ListExpression) bool
	VisitConstantExpression(n *ConstantExpression) bool
	VisitIntegerLiteral(n *IntegerLiteral) bool
	VisitFloatLiteral(n *FloatLiteral) bool
	VisitStringLiteral(n *StringLiteral) bool
	VisitIdentifier(n *Identifier) bool
	VisitTypeNode(n *TypeNode) bool
}

// BaseVisitor implements every Visitor method as "return true, keep
// descending", and BeforeDescend as an unconditional pass. Embed it in a
// concrete visitor and override only the methods that pass needs.
type BaseVisitor struct{}

func (BaseVisitor) BeforeDescend(Node) bool { return true }

func (BaseVisitor) VisitScript(*Script) bool                               { return true }
func (BaseVisitor) VisitGlobalStorage(*GlobalStorage) bool                 { return true }
func (BaseVisitor) VisitGlobalVariable(*GlobalVariable) bool               { return true }
func (BaseVisitor) VisitGlobalFunction(*GlobalFunction) bool               { return true }
func (BaseVisitor) VisitEventHandler(*EventHandler) bool                  { return true }
func (BaseVisitor) VisitState(*State) bool                                { return true }
func (BaseVisitor) VisitParam(*Param) bool                                { return true }
func (BaseVisitor) VisitCompoundStatement(*CompoundStatement) bool        { return true }
func (BaseVisitor) VisitDeclaration(*Declaration) bool                    { return true }
func (BaseVisitor) VisitJumpStatement(*JumpStatement) bool                { return true }
func (BaseVisitor) VisitLabel(*Label) bool                                { return true }
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement) bool    { return true }
func (BaseVisitor) VisitReturnStatement(*ReturnStatement) bool            { return true }
func (BaseVisitor) VisitIfStatement(*IfStatement) bool                    { return true }
func (BaseVisitor) VisitForStatement(*ForStatement) bool                  { return true }
func (BaseVisitor) VisitDoStatement(*DoStatement) bool                    { return true }
func (BaseVisitor) VisitWhileStatement(*WhileStatement) bool              { return true }
func (BaseVisitor) VisitUnaryExpression(*UnaryExpression) bool            { return true }
func (BaseVisitor) VisitBinaryExpression(*BinaryExpression) bool          { return true }
func (BaseVisitor) VisitParenthesisExpression(*ParenthesisExpression) bool { return true }
func (BaseVisitor) VisitTypecastExpression(*TypecastExpression) bool      { return true }
func (BaseVisitor) VisitLValueExpression(*LValueExpression) bool          { return true }
func (BaseVisitor) VisitFunctionExpression(*FunctionExpression) bool      { return true }
func (BaseVisitor) VisitVectorExpression(*VectorExpression) bool          { return true }
func (BaseVisitor) VisitQuaternionExpression(*QuaternionExpression) bool  { return true }
func (BaseVisitor) VisitListExpression(*ListExpression) bool              { return true }
func (BaseVisitor) VisitConstantExpression(*ConstantExpression) bool      { return true }
func (BaseVisitor) VisitIntegerLiteral(*IntegerLiteral) bool              { return true }
func (BaseVisitor) VisitFloatLiteral(*FloatLiteral) bool                  { return true }
func (BaseVisitor) VisitStringLiteral(*StringLiteral) bool                { return true }
func (BaseVisitor) VisitIdentifier(*Identifier) bool                      { return true }
func (BaseVisitor) VisitTypeNode(*TypeNode) bool                          { return true }

// dispatch sends n to its most specific Visitor method and reports the
// descend flag it returned.
func dispatch(v Visitor, n Node) bool {
	switch t := n.(type) {
	case *Script:
		return v.VisitScript(t)
	case *GlobalStorage:
		return v.VisitGlobalStorage(t)
	case *GlobalVariable:
		return v.VisitGlobalVariable(t)
	case *GlobalFunction:
		return v.VisitGlobalFunction(t)
	case *EventHandler:
		return v.VisitEventHandler(t)
	case *State:
		return v.VisitState(t)
	case *Param:
		return v.VisitParam(t)
	case *CompoundStatement:
		return v.VisitCompoundStatement(t)
	case *Declaration:
		return v.VisitDeclaration(t)
	case *JumpStatement:
		return v.VisitJumpStatement(t)
	case *Label:
		return v.VisitLabel(t)
	case *ExpressionStatement:
		return v.VisitExpressionStatement(t)
	case *ReturnStatement:
		return v.VisitReturnStatement(t)
	case *IfStatement:
		return v.VisitIfStatement(t)
	case *ForStatement:
		return v.VisitForStatement(t)
	case *DoStatement:
		return v.VisitDoStatement(t)
	case *WhileStatement:
		return v.VisitWhileStatement(t)
	case *UnaryExpression:
		return v.VisitUnaryExpression(t)
	case *BinaryExpression:
		return v.VisitBinaryExpression(t)
	case *ParenthesisExpression:
		return v.VisitParenthesisExpression(t)
	case *TypecastExpression:
		return v.VisitTypecastExpression(t)
	case *LValueExpression:
		return v.VisitLValueExpression(t)
	case *FunctionExpression:
		return v.VisitFunctionExpression(t)
	case *VectorExpression:
		return v.VisitVectorExpression(t)
	case *QuaternionExpression:
		return v.VisitQuaternionExpression(t)
	case *ListExpression:
		return v.VisitListExpression(t)
	case *ConstantExpression:
		return v.VisitConstantExpression(t)
	case *IntegerLiteral:
		return v.VisitIntegerLiteral(t)
	case *FloatLiteral:
		return v.VisitFloatLiteral(t)
	case *StringLiteral:
		return v.VisitStringLiteral(t)
	case *Identifier:
		return v.VisitIdentifier(t)
	case *TypeNode:
		return v.VisitTypeNode(t)
	default:
		return true
	}
}

// Walk drives a pre-order, single-pass traversal of n and its
// descendants: BeforeDescend runs first and may veto the whole subtree;
// otherwise n is dispatched to its specific Visit method, and if that
// method also returned true, every child is walked left to right in
// sibling order.
func Walk(v Visitor, n Node) {
	if n == nil || !v.BeforeDescend(n) {
		return
	}
	if !dispatch(v, n) {
		return
	}
	for _, child := range n.Children() {
		Walk(v, child)
	}
}

// ReplaceChild splices replacement into old's position among parent's
// children, re-parenting replacement. It is the only sanctioned way for a
// visitor to mutate the tree's shape mid-walk — Walk itself never
// observes the substitution because it already captured old's sibling
// list before descending, so callers that replace a node they are
// currently visiting must return false (no further descent) to avoid
// walking into the node being replaced.
func ReplaceChild(parent Node, old, replacement Node) bool {
	switch p := parent.(type) {
	case *Script:
		for i, item := range p.Items {
			if item == old {
				p.Items[i] = replacement
				attach(p, replacement)
				return true
			}
		}
	case *GlobalStorage:
		if p.Variable != nil && Node(p.Variable) == old {
			gv, ok := replacement.(*GlobalVariable)
			if !ok {
				return false
			}
			p.Variable = gv
			attach(p, replacement)
			return true
		}
		if p.Function != nil && Node(p.Function) == old {
			gf, ok := replacement.(*GlobalFunction)
			if !ok {
				return false
			}
			p.Function = gf
			attach(p, replacement)
			return true
		}
	case *CompoundStatement:
		for i, s := range p.Statements {
			if Node(s) == old {
				stmt, ok := replacement.(Statement)
				if !ok {
					return false
				}
				p.Statements[i] = stmt
				attach(p, replacement)
				return true
			}
		}
	case *Declaration:
		if Node(p.Init) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Init = expr
			attach(p, replacement)
			return true
		}
	case *GlobalVariable:
		if Node(p.Init) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Init = expr
			attach(p, replacement)
			return true
		}
	case *ExpressionStatement:
		if Node(p.Expr) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Expr = expr
			attach(p, replacement)
			return true
		}
	case *ReturnStatement:
		if Node(p.Value) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Value = expr
			attach(p, replacement)
			return true
		}
	case *UnaryExpression:
		if Node(p.Operand) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Operand = expr
			attach(p, replacement)
			return true
		}
	case *BinaryExpression:
		if Node(p.Left) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Left = expr
			attach(p, replacement)
			return true
		}
		if Node(p.Right) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Right = expr
			attach(p, replacement)
			return true
		}
	case *ParenthesisExpression:
		if Node(p.Inner) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Inner = expr
			attach(p, replacement)
			return true
		}
	case *TypecastExpression:
		if Node(p.Operand) == old {
			expr, ok := replacement.(Expression)
			if !ok {
				return false
			}
			p.Operand = expr
			attach(p, replacement)
			return true
		}
	case *FunctionExpression:
		for i, a := range p.Args {
			if Node(a) == old {
				expr, ok := replacement.(Expression)
				if !ok {
					return false
				}
				p.Args[i] = expr
				attach(p, replacement)
				return true
			}
		}
	case *VectorExpression:
		switch {
		case Node(p.X) == old:
			p.X = replacement.(Expression)
		case Node(p.Y) == old:
			p.Y = replacement.(Expression)
		case Node(p.Z) == old:
			p.Z = replacement.(Expression)
		default:
			return false
		}
		attach(p, replacement)
		return true
	case *QuaternionExpression:
		switch {
		case Node(p.X) == old:
			p.X = replacement.(Expression)
		case Node(p.Y) == old:
			p.Y = replacement.(Expression)
		case Node(p.Z) == old:
			p.Z = replacement.(Expression)
		case Node(p.S) == old:
			p.S = replacement.(Expression)
		default:
			return false
		}
		attach(p, replacement)
		return true
	case *ListExpression:
		for i, e := range p.Elements {
			if Node(e) == old {
				expr, ok := replacement.(Expression)
				if !ok {
					return false
				}
				p.Elements[i] = expr
				attach(p, replacement)
				return true
			}
		}
	}
	return false
}

// PruneChild removes old from parent's child list entirely (used by the
// simplifier's declaration/global pruning rules) rather than replacing it
// with something else.
func PruneChild(parent Node, old Node) bool {
	switch p := parent.(type) {
	case *Script:
		for i, item := range p.Items {
			if item == old {
				p.Items = append(p.Items[:i], p.Items[i+1:]...)
				return true
			}
		}
	case *CompoundStatement:
		for i, s := range p.Statements {
			if Node(s) == old {
				p.Statements = append(p.Statements[:i], p.Statements[i+1:]...)
				return true
			}
		}
	}
	return false
}
