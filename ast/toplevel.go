package ast

import "github.com/kasl-lang/kasl/symtab"

// Param is one entry of a function or event handler's parameter list.
type Param struct {
	Base
	Name     string
	TypeNode *TypeNode
	Symbol   *symtab.Symbol
}

func (n *Param) Children() []Node {
	if n.TypeNode == nil {
		return nil
	}
	return []Node{n.TypeNode}
}

// GlobalVariable is a top-level variable declaration.
type GlobalVariable struct {
	Base
	TypeNode *TypeNode
	Name     string
	Symbol   *symtab.Symbol
	Init     Expression
}

func (n *GlobalVariable) Children() []Node {
	out := make([]Node, 0, 2)
	if n.TypeNode != nil {
		out = append(out, n.TypeNode)
	}
	if n.Init != nil {
		out = append(out, n.Init)
	}
	return out
}

// GlobalFunction is a top-level function definition. ReturnType is nil for
// a void function.
type GlobalFunction struct {
	Base
	ReturnType *TypeNode
	Name       string
	Symbol     *symtab.Symbol
	Params     []*Param
	Body       *CompoundStatement
	Scope_     *symtab.Table
}

func (n *GlobalFunction) Children() []Node {
	out := make([]Node, 0, len(n.Params)+2)
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	for _, p := range n.Params {
		out = append(out, p)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}
func (n *GlobalFunction) Scope() *symtab.Table { return n.Scope_ }

// GlobalStorage is a discriminated pair: a top-level script item holding
// exactly one of a GlobalVariable or a GlobalFunction. Modeled as a
// wrapper (rather than an untagged union) so the propagator's
// globals-before-bodies split can identify "global_storage containing a
// global_variable" without a type switch on the payload.
type GlobalStorage struct {
	Base
	Variable *GlobalVariable
	Function *GlobalFunction
}

func (n *GlobalStorage) Children() []Node {
	if n.Variable != nil {
		return []Node{n.Variable}
	}
	if n.Function != nil {
		return []Node{n.Function}
	}
	return nil
}

// IsVariable reports whether this storage slot holds a variable (as
// opposed to a function).
func (n *GlobalStorage) IsVariable() bool { return n.Variable != nil }

// EventHandler is one event implementation inside a State.
type EventHandler struct {
	Base
	Name   string
	Symbol *symtab.Symbol
	Params []*Param
	Body   *CompoundStatement
	Scope_ *symtab.Table
}

func (n *EventHandler) Children() []Node {
	out := make([]Node, 0, len(n.Params)+1)
	for _, p := range n.Params {
		out = append(out, p)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}
func (n *EventHandler) Scope() *symtab.Table { return n.Scope_ }

// State is a named collection of event handlers — the script language is
// a hierarchical state machine, and every script has at least the
// implicit "default" state.
type State struct {
	Base
	Name      string
	IsDefault bool
	Handlers  []*EventHandler
	Scope_    *symtab.Table
}

func (n *State) Children() []Node {
	out := make([]Node, len(n.Handlers))
	for i, h := range n.Handlers {
		out[i] = h
	}
	return out
}
func (n *State) Scope() *symtab.Table { return n.Scope_ }

// Script is the root of the tree: a sequence of GlobalStorage items
// followed by one or more States, plus the root symbol table builtin
// lookups fall through to.
type Script struct {
	Base
	Items  []Node // *GlobalStorage or *State, in source order
	Scope_ *symtab.Table
}

func (n *Script) Children() []Node {
	out := make([]Node, len(n.Items))
	copy(out, n.Items)
	return out
}
func (n *Script) Scope() *symtab.Table { return n.Scope_ }

// LeadingGlobalVariables returns the leading run of n.Items that are
// GlobalStorage wrapping a GlobalVariable, and the index of the first
// item that isn't — the split the constant propagator's script-level
// override depends on (globals are folded before anything else is
// visited, since later globals and all function bodies may reference
// them).
func (n *Script) LeadingGlobalVariables() ([]*GlobalStorage, int) {
	var leading []*GlobalStorage
	i := 0
	for ; i < len(n.Items); i++ {
		gs, ok := n.Items[i].(*GlobalStorage)
		if !ok || !gs.IsVariable() {
			break
		}
		leading = append(leading, gs)
	}
	return leading, i
}
