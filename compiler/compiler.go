// Package compiler walks the final (propagated, validated, simplified)
// AST and emits bytecode: one self-contained instruction stream per
// function body or event handler, with forward jumps patched once the
// body has been fully walked.
//
// # Forward-branch patching
//
// Labels can be referenced by a jump before they're reached during the
// walk, so the compiler defers resolution: it records every jump's
// operand position in pendingJumps and every label's byte offset in
// labelPositions as it encounters them, then — once the function body is
// done — rewrites each pending jump's 4-byte operand in place with the
// signed offset from just past the operand to the label.
//
// # Scoping
//
// Unlike a general-purpose VM compiler, this one never needs nested
// compilation scopes for closures — function bodies here are flat,
// non-nesting units — so a single Function accumulates one instruction
// buffer per call to compileFunction.
package compiler

import (
	"math"

	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/code"
	"github.com/kasl-lang/kasl/constant"
	"github.com/kasl-lang/kasl/types"
)

func floatBits(v float32) uint32 { return math.Float32bits(v) }

// Function holds one compiled function or event-handler body.
type Function struct {
	Name         string
	Instructions code.Instructions
}

// Program is the output of compiling an entire script: one Function per
// global function and per state event handler.
type Program struct {
	Functions []Function
}

// Compiler accumulates Functions as it walks a script.
type Compiler struct {
	program Program
}

// New returns an empty Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile walks script and returns the compiled Program. An expression
// with no statically known constant value (a call, an unfolded lvalue
// read) has no defined push encoding under this core's opcode contract —
// there is no runtime calling convention to target, since the VM itself
// is out of scope — so it compiles to push_null, keeping the instruction
// stream balanced without claiming a semantics the core doesn't define.
func Compile(script *ast.Script) *Program {
	c := New()
	for _, item := range script.Items {
		switch n := item.(type) {
		case *ast.GlobalStorage:
			if n.Function != nil {
				c.program.Functions = append(c.program.Functions, c.compileFunction(n.Function.Name, n.Function.Body))
			}
		case *ast.State:
			for _, h := range n.Handlers {
				name := n.Name + "." + h.Name
				c.program.Functions = append(c.program.Functions, c.compileFunction(name, h.Body))
			}
		}
	}
	return &c.program
}

// fn is the per-function compilation state: the instruction buffer being
// built plus the two jump-patching maps.
type fn struct {
	ins            code.Instructions
	labelPositions map[string]int
	pendingJumps   map[string][]int // label name -> operand start offsets awaiting a target
}

func (c *Compiler) compileFunction(name string, body *ast.CompoundStatement) Function {
	f := &fn{labelPositions: map[string]int{}, pendingJumps: map[string][]int{}}
	if body != nil {
		for _, stmt := range body.Statements {
			f.compileStatement(stmt)
		}
	}
	if !endsInReturn(f.ins) {
		f.ins = append(f.ins, code.Make(code.OpReturn)...)
	}
	f.patchJumps()
	return Function{Name: name, Instructions: f.ins}
}

func endsInReturn(ins code.Instructions) bool {
	return len(ins) > 0 && ins[len(ins)-1] == byte(code.OpReturn)
}

// patchJumps back-patches every pending jump against the label positions
// collected during the walk. A jump to a label never reached in this
// function body (malformed input — the parser is assumed to reject this)
// is left as the zero placeholder.
func (f *fn) patchJumps() {
	for label, operandStarts := range f.pendingJumps {
		target, ok := f.labelPositions[label]
		if !ok {
			continue
		}
		for _, operandStart := range operandStarts {
			offset := int32(target - (operandStart + 4))
			patched := code.MakeJump(offset)
			copy(f.ins[operandStart-1:operandStart+4], patched)
		}
	}
}

func (f *fn) emit(b []byte) int {
	pos := len(f.ins)
	f.ins = append(f.ins, b...)
	return pos
}

func (f *fn) compileStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.CompoundStatement:
		for _, inner := range s.Statements {
			f.compileStatement(inner)
		}
	case *ast.Declaration:
		if s.Init != nil {
			f.compileExpression(s.Init)
			f.emit(code.Make(popOpcodeFor(s.Init)))
		}
	case *ast.ExpressionStatement:
		if s.Expr != nil {
			f.compileExpression(s.Expr)
			f.emit(code.Make(popOpcodeFor(s.Expr)))
		}
	case *ast.ReturnStatement:
		if s.Value != nil {
			f.compileExpression(s.Value)
		}
		f.emit(code.Make(code.OpReturn))
	case *ast.JumpStatement:
		pos := f.emit(code.MakeJump(0))
		operandStart := pos + 1
		f.pendingJumps[s.TargetLabel] = append(f.pendingJumps[s.TargetLabel], operandStart)
	case *ast.Label:
		f.labelPositions[s.Name] = len(f.ins)
	case *ast.IfStatement:
		// No conditional-branch opcode is in the defined instruction set
		// (only explicit source jump/label use `jump`), so both arms are
		// compiled in sequence for opcode coverage rather than emitting a
		// runnable conditional; a real VM target would need a
		// jump-if-false opcode this core deliberately doesn't define.
		if s.Then != nil {
			f.compileStatement(s.Then)
		}
		if s.Else != nil {
			f.compileStatement(s.Else)
		}
	case *ast.ForStatement:
		if s.Body != nil {
			f.compileStatement(s.Body)
		}
	case *ast.WhileStatement:
		if s.Body != nil {
			f.compileStatement(s.Body)
		}
	case *ast.DoStatement:
		if s.Body != nil {
			f.compileStatement(s.Body)
		}
	}
}

// compileExpression emits a push for expr's value. Only constant
// expressions (the propagator/simplifier's output) have a well-defined
// push encoding under this core's opcode contract; anything else pushes
// a null placeholder so the instruction stream stays balanced with its
// matching pop.
func (f *fn) compileExpression(expr ast.Expression) {
	if ce, ok := expr.(*ast.ConstantExpression); ok {
		f.pushConstant(ce.Value)
		return
	}
	if val := expr.ConstantValue(); val != nil {
		f.pushConstant(val)
		return
	}
	f.emit(code.Make(code.OpPushNull))
}

func (f *fn) pushConstant(val constant.Value) {
	switch v := val.(type) {
	case *constant.Integer:
		f.emit(code.Make(code.OpPushInteger, int(v.V)))
	case *constant.Float:
		f.emit(code.Make(code.OpPushFloat, int(floatBits(v.V))))
	case *constant.String:
		op := code.OpPushString
		if v.IsKey {
			op = code.OpPushKey
		}
		f.emit(code.MakePushString(op, v.V))
	case *constant.Vector:
		f.emit(code.Make(code.OpPushVector, int(floatBits(v.X)), int(floatBits(v.Y)), int(floatBits(v.Z))))
	case *constant.Quaternion:
		f.emit(code.Make(code.OpPushQuaternion, int(floatBits(v.X)), int(floatBits(v.Y)), int(floatBits(v.Z)), int(floatBits(v.S))))
	case *constant.List:
		for _, elem := range v.Elements {
			f.pushConstant(elem)
		}
		f.emit(code.Make(code.OpPushList, len(v.Elements)))
	default:
		f.emit(code.Make(code.OpPushNull))
	}
}

func popOpcodeFor(expr ast.Expression) code.Opcode {
	t := expr.ResolvedType()
	if t == nil {
		return code.OpPopNull
	}
	switch t.Kind() {
	case types.Integer:
		return code.OpPopInteger
	case types.Float:
		return code.OpPopFloat
	case types.String:
		return code.OpPopString
	case types.Key:
		return code.OpPopKey
	case types.Vector:
		return code.OpPopVector
	case types.Quaternion:
		return code.OpPopQuaternion
	case types.List:
		return code.OpPopList
	default:
		return code.OpPopNull
	}
}
