// Package parser implements a recursive-descent, precedence-climbing
// parser for the scripting language's surface syntax. It builds the
// typed ast tree the rest of the core operates on, and resolves every
// identifier reference against a lexically scoped symtab.Table as it
// goes — there is no separate resolver pass.
package parser

import (
	"strconv"

	"github.com/kasl-lang/kasl/ast"
	"github.com/kasl-lang/kasl/builtins"
	"github.com/kasl-lang/kasl/diagnostics"
	"github.com/kasl-lang/kasl/lexer"
	"github.com/kasl-lang/kasl/source"
	"github.com/kasl-lang/kasl/strlit"
	"github.com/kasl-lang/kasl/symtab"
	"github.com/kasl-lang/kasl/token"
	"github.com/kasl-lang/kasl/types"
)

// Precedence levels for the expression parser, lowest first.
const (
	_ int = iota
	precLowest
	precAssign     // = += -= *= /= %=
	precLogicalOr  // ||
	precLogicalAnd // &&
	precBitOr      // |
	precBitXor     // ^
	precBitAnd     // &
	precEquals     // == !=
	precRelational // < > <= >=
	precShift      // << >>
	precSum        // + -
	precProduct    // * / %
	precUnary      // -x !x ~x
	precCall       // f(...)
	precMember     // x.y
)

var precedences = map[token.Type]int{
	token.Assign:     precAssign,
	token.PlusEq:     precAssign,
	token.MinusEq:    precAssign,
	token.StarEq:     precAssign,
	token.SlashEq:    precAssign,
	token.PercentEq:  precAssign,
	token.OrOr:       precLogicalOr,
	token.AndAnd:     precLogicalAnd,
	token.Pipe:       precBitOr,
	token.Caret:      precBitXor,
	token.Amp:        precBitAnd,
	token.Eq:         precEquals,
	token.NotEq:      precEquals,
	token.Lt:         precRelational,
	token.Gt:         precRelational,
	token.Lte:        precRelational,
	token.Gte:        precRelational,
	token.ShiftLeft:  precShift,
	token.ShiftRight: precShift,
	token.Plus:       precSum,
	token.Minus:      precSum,
	token.Asterisk:   precProduct,
	token.Slash:      precProduct,
	token.Percent:    precProduct,
	token.Lparen: precCall,
}

// Parser holds the state of one parse: the token stream, the current
// lexical scope for symbol resolution, and the diagnostics log errors
// are reported to.
type Parser struct {
	l        *lexer.Lexer
	catalog  *builtins.Catalog
	log      *diagnostics.Log
	file     string
	cur      token.Token
	peek     token.Token
	scope    *symtab.Table
	builtins *symtab.Table
}

// New creates a Parser over src, resolving builtin references against
// catalog (use builtins.LoadDefault() if the caller has no manifest
// override) and reporting syntax and resolution errors to log.
func New(file, src string, catalog *builtins.Catalog, log *diagnostics.Log) *Parser {
	p := &Parser{l: lexer.New(src), catalog: catalog, log: log, file: file, builtins: catalog.Table}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) pos() source.Position {
	return source.Position{File: p.file, Line: p.cur.Line, Column: p.cur.Column}
}

func (p *Parser) span(start source.Position) source.Span {
	return source.Span{Start: start, End: p.pos()}
}

func (p *Parser) errorf(format string, args ...any) {
	p.log.Errorf(diagnostics.CodeSyntaxError, source.Span{Start: p.pos(), End: p.pos()}, format, args...)
}

func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type == t {
		p.advance()
		return true
	}
	p.errorf("expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
	return false
}

// ParseScript parses an entire source unit.
func (p *Parser) ParseScript() *ast.Script {
	start := p.pos()
	script := &ast.Script{Scope_: symtab.New(nil)}
	p.scope = script.Scope_

	for p.cur.Type != token.EOF {
		item := p.parseTopLevel()
		if item == nil {
			p.advance()
			continue
		}
		item.SetParent(script)
		script.Items = append(script.Items, item)
	}
	script.SetSpan(p.span(start))
	return script
}

func (p *Parser) parseTopLevel() ast.Node {
	if p.cur.Type == token.Default || p.cur.Type == token.State {
		return p.parseState()
	}
	return p.parseGlobalStorage()
}

func (p *Parser) parseState() *ast.State {
	start := p.pos()
	isDefault := p.cur.Type == token.Default
	name := "default"
	if isDefault {
		p.advance()
	} else {
		p.advance() // "state"
		name = p.cur.Literal
		p.expect(token.Ident)
	}
	state := &ast.State{Name: name, IsDefault: isDefault, Scope_: symtab.New(p.scope)}
	outer := p.scope
	p.scope = state.Scope_

	p.expect(token.Lbrace)
	for p.cur.Type != token.Rbrace && p.cur.Type != token.EOF {
		h := p.parseEventHandler()
		if h != nil {
			h.SetParent(state)
			state.Handlers = append(state.Handlers, h)
		}
	}
	p.expect(token.Rbrace)

	p.scope = outer
	state.SetSpan(p.span(start))
	return state
}

func (p *Parser) parseEventHandler() *ast.EventHandler {
	start := p.pos()
	name := p.cur.Literal
	if !p.expect(token.Ident) {
		return nil
	}
	h := &ast.EventHandler{Name: name, Scope_: symtab.New(p.scope)}
	outer := p.scope
	p.scope = h.Scope_

	p.expect(token.Lparen)
	h.Params = p.parseParams()
	p.expect(token.Rparen)
	h.Body = p.parseCompoundStatement()

	p.scope = outer
	h.SetSpan(p.span(start))
	return h
}

// parseGlobalStorage parses either `type? name "(" params ")" body` (a
// function, return type optional meaning void) or `type name ("=" expr)?
// ";"` (a variable).
func (p *Parser) parseGlobalStorage() *ast.GlobalStorage {
	start := p.pos()
	var typeNode *ast.TypeNode
	if token.IsTypeKeyword(p.cur.Type) {
		typeNode = p.parseTypeNode()
	}
	if p.cur.Type != token.Ident {
		p.errorf("expected a global declaration, got %s (%q)", p.cur.Type, p.cur.Literal)
		return nil
	}
	name := p.cur.Literal
	p.advance()

	gs := &ast.GlobalStorage{}
	if p.cur.Type == token.Lparen {
		fn := &ast.GlobalFunction{ReturnType: typeNode, Name: name, Scope_: symtab.New(p.scope)}
		fn.Symbol = symtab.NewSymbol(name, returnTypeOf(typeNode), symtab.Function, symtab.Global)
		fn.Symbol.Decl = fn
		p.scope.Define(fn.Symbol)

		outer := p.scope
		p.scope = fn.Scope_
		p.advance() // "("
		fn.Params = p.parseParams()
		p.expect(token.Rparen)
		fn.Body = p.parseCompoundStatement()
		p.scope = outer

		fn.SetSpan(p.span(start))
		gs.Function = fn
		fn.SetParent(gs)
		return gs
	}

	gv := &ast.GlobalVariable{TypeNode: typeNode, Name: name}
	gv.Symbol = symtab.NewSymbol(name, resolvedTypeOf(typeNode), symtab.Variable, symtab.Global)
	gv.Symbol.Decl = gv
	p.scope.Define(gv.Symbol)

	if p.cur.Type == token.Assign {
		p.advance()
		gv.Init = p.parseExpression(precLowest)
		if gv.Init != nil {
			gv.Init.SetParent(gv)
		}
	}
	p.expect(token.Semicolon)
	gv.SetSpan(p.span(start))
	gs.Variable = gv
	gv.SetParent(gs)
	return gs
}

func resolvedTypeOf(t *ast.TypeNode) *types.Type {
	if t == nil {
		return nil
	}
	return t.Resolved
}

func returnTypeOf(t *ast.TypeNode) *types.Type {
	if t == nil {
		return types.Get(types.Null)
	}
	return t.Resolved
}

func (p *Parser) parseTypeNode() *ast.TypeNode {
	start := p.pos()
	name := p.cur.Literal
	resolved := types.ByName(name)
	p.advance()
	tn := &ast.TypeNode{Name: name, Resolved: resolved}
	tn.SetSpan(p.span(start))
	return tn
}

func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	if p.cur.Type == token.Rparen {
		return nil
	}
	for {
		start := p.pos()
		if !token.IsTypeKeyword(p.cur.Type) {
			p.errorf("expected a parameter type, got %s (%q)", p.cur.Type, p.cur.Literal)
			return params
		}
		tn := p.parseTypeNode()
		name := p.cur.Literal
		p.expect(token.Ident)
		param := &ast.Param{Name: name, TypeNode: tn}
		param.Symbol = symtab.NewSymbol(name, tn.Resolved, symtab.Variable, symtab.Parameter)
		param.Symbol.Decl = param
		p.scope.Define(param.Symbol)
		param.SetSpan(p.span(start))
		params = append(params, param)
		if p.cur.Type != token.Comma {
			break
		}
		p.advance()
	}
	return params
}

func (p *Parser) parseCompoundStatement() *ast.CompoundStatement {
	start := p.pos()
	comp := &ast.CompoundStatement{Scope_: symtab.New(p.scope)}
	outer := p.scope
	p.scope = comp.Scope_

	p.expect(token.Lbrace)
	for p.cur.Type != token.Rbrace && p.cur.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			stmt.SetParent(comp)
			comp.Statements = append(comp.Statements, stmt)
		} else {
			p.advance()
		}
	}
	p.expect(token.Rbrace)

	p.scope = outer
	comp.SetSpan(p.span(start))
	return comp
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.Lbrace:
		return p.parseCompoundStatement()
	case token.If:
		return p.parseIfStatement()
	case token.For:
		return p.parseForStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Do:
		return p.parseDoStatement()
	case token.Jump:
		return p.parseJumpStatement()
	case token.At:
		return p.parseLabel()
	case token.Return:
		return p.parseReturnStatement()
	default:
		if token.IsTypeKeyword(p.cur.Type) {
			return p.parseDeclaration()
		}
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseDeclaration() *ast.Declaration {
	start := p.pos()
	tn := p.parseTypeNode()
	name := p.cur.Literal
	p.expect(token.Ident)

	decl := &ast.Declaration{TypeNode: tn, Name: name}
	decl.Symbol = symtab.NewSymbol(name, tn.Resolved, symtab.Variable, symtab.Local)
	decl.Symbol.Decl = decl
	p.scope.Define(decl.Symbol)

	if p.cur.Type == token.Assign {
		p.advance()
		decl.Init = p.parseExpression(precLowest)
		if decl.Init != nil {
			decl.Init.SetParent(decl)
		}
	}
	p.expect(token.Semicolon)
	decl.SetSpan(p.span(start))
	return decl
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	start := p.pos()
	p.advance() // "if"
	p.expect(token.Lparen)
	cond := p.parseExpression(precLowest)
	p.expect(token.Rparen)
	then := p.parseStatement()
	ifs := &ast.IfStatement{Cond: cond, Then: then}
	if cond != nil {
		cond.SetParent(ifs)
	}
	if then != nil {
		then.SetParent(ifs)
	}
	if p.cur.Type == token.Else {
		p.advance()
		els := p.parseStatement()
		ifs.Else = els
		if els != nil {
			els.SetParent(ifs)
		}
	}
	ifs.SetSpan(p.span(start))
	return ifs
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	start := p.pos()
	p.advance() // "for"
	p.expect(token.Lparen)
	fs := &ast.ForStatement{}
	fs.Init = p.parseExpressionList(token.Semicolon)
	p.expect(token.Semicolon)
	if p.cur.Type != token.Semicolon {
		fs.Cond = p.parseExpression(precLowest)
		if fs.Cond != nil {
			fs.Cond.SetParent(fs)
		}
	}
	p.expect(token.Semicolon)
	fs.Step = p.parseExpressionList(token.Rparen)
	p.expect(token.Rparen)
	fs.Body = p.parseStatement()
	for _, e := range fs.Init {
		e.SetParent(fs)
	}
	for _, e := range fs.Step {
		e.SetParent(fs)
	}
	if fs.Body != nil {
		fs.Body.SetParent(fs)
	}
	fs.SetSpan(p.span(start))
	return fs
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var out []ast.Expression
	if p.cur.Type == end {
		return nil
	}
	for {
		e := p.parseExpression(precLowest)
		if e != nil {
			out = append(out, e)
		}
		if p.cur.Type != token.Comma {
			break
		}
		p.advance()
	}
	return out
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	start := p.pos()
	p.advance() // "while"
	p.expect(token.Lparen)
	cond := p.parseExpression(precLowest)
	p.expect(token.Rparen)
	body := p.parseStatement()
	ws := &ast.WhileStatement{Cond: cond, Body: body}
	if cond != nil {
		cond.SetParent(ws)
	}
	if body != nil {
		body.SetParent(ws)
	}
	ws.SetSpan(p.span(start))
	return ws
}

func (p *Parser) parseDoStatement() *ast.DoStatement {
	start := p.pos()
	p.advance() // "do"
	body := p.parseStatement()
	p.expect(token.While)
	p.expect(token.Lparen)
	cond := p.parseExpression(precLowest)
	p.expect(token.Rparen)
	p.expect(token.Semicolon)
	ds := &ast.DoStatement{Body: body, Cond: cond}
	if body != nil {
		body.SetParent(ds)
	}
	if cond != nil {
		cond.SetParent(ds)
	}
	ds.SetSpan(p.span(start))
	return ds
}

func (p *Parser) parseJumpStatement() *ast.JumpStatement {
	start := p.pos()
	p.advance() // "jump"
	name := p.cur.Literal
	p.expect(token.Ident)
	p.expect(token.Semicolon)
	js := &ast.JumpStatement{TargetLabel: name}
	js.SetSpan(p.span(start))
	return js
}

func (p *Parser) parseLabel() *ast.Label {
	start := p.pos()
	p.advance() // "@"
	name := p.cur.Literal
	p.expect(token.Ident)
	p.expect(token.Semicolon)
	l := &ast.Label{Name: name}
	l.SetSpan(p.span(start))
	return l
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	start := p.pos()
	p.advance() // "return"
	rs := &ast.ReturnStatement{}
	if p.cur.Type != token.Semicolon {
		rs.Value = p.parseExpression(precLowest)
		if rs.Value != nil {
			rs.Value.SetParent(rs)
		}
	}
	p.expect(token.Semicolon)
	rs.SetSpan(p.span(start))
	return rs
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	start := p.pos()
	expr := p.parseExpression(precLowest)
	p.expect(token.Semicolon)
	es := &ast.ExpressionStatement{Expr: expr}
	if expr != nil {
		expr.SetParent(es)
	}
	es.SetSpan(p.span(start))
	return es
}

// parseExpression implements precedence-climbing: parse a prefix/primary
// term, then keep absorbing infix operators whose precedence exceeds
// minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	for p.cur.Type != token.Semicolon && minPrec < precedenceOf(p.cur.Type) {
		left = p.parseInfix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func precedenceOf(t token.Type) int {
	if prec, ok := precedences[t]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) parsePrefix() ast.Expression {
	start := p.pos()
	switch p.cur.Type {
	case token.Minus, token.Bang, token.Tilde, token.PlusPlus, token.MinusMinus:
		op := p.cur.Literal
		p.advance()
		operand := p.parseExpression(precUnary)
		u := ast.NewUnaryExpression(op, operand)
		u.SetSpan(p.span(start))
		return u
	case token.Lparen:
		p.advance()
		if token.IsTypeKeyword(p.cur.Type) {
			return p.parseTypecast(start)
		}
		inner := p.parseExpression(precLowest)
		p.expect(token.Rparen)
		pe := &ast.ParenthesisExpression{Inner: inner}
		if inner != nil {
			inner.SetParent(pe)
		}
		pe.SetSpan(p.span(start))
		return pe
	case token.Int:
		return p.parseIntegerLiteral(start)
	case token.Float:
		return p.parseFloatLiteral(start)
	case token.String:
		return p.parseStringLiteral(start)
	case token.TrueKw:
		return p.parseBuiltinRef(start, "TRUE")
	case token.FalseKw:
		return p.parseBuiltinRef(start, "FALSE")
	case token.Lt:
		return p.parseVectorOrQuaternion(start)
	case token.Lbracket:
		return p.parseListLiteral(start)
	case token.Ident:
		return p.parseIdentifierExpression(start)
	default:
		p.errorf("unexpected token %s (%q) in expression", p.cur.Type, p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseTypecast(start source.Position) ast.Expression {
	tn := p.parseTypeNode()
	p.expect(token.Rparen)
	operand := p.parseExpression(precUnary)
	tc := &ast.TypecastExpression{Target: tn, Operand: operand}
	if operand != nil {
		operand.SetParent(tc)
	}
	tc.SetSpan(p.span(start))
	return tc
}

func (p *Parser) parseIntegerLiteral(start source.Position) ast.Expression {
	lit := p.cur.Literal
	p.advance()
	var v int64
	var err error
	if len(lit) > 1 && (lit[1] == 'x' || lit[1] == 'X') {
		v, err = strconv.ParseInt(lit[2:], 16, 64)
	} else {
		v, err = strconv.ParseInt(lit, 10, 64)
	}
	if err != nil {
		p.errorf("malformed integer literal %q", lit)
	}
	n := &ast.IntegerLiteral{Value: int32(v)}
	n.SetSpan(p.span(start))
	n.SetResolvedType(types.Get(types.Integer))
	return n
}

func (p *Parser) parseFloatLiteral(start source.Position) ast.Expression {
	lit := p.cur.Literal
	p.advance()
	if len(lit) > 0 && (lit[len(lit)-1] == 'f' || lit[len(lit)-1] == 'F') {
		lit = lit[:len(lit)-1]
	}
	v, err := strconv.ParseFloat(lit, 32)
	if err != nil {
		p.errorf("malformed float literal %q", lit)
	}
	n := &ast.FloatLiteral{Value: float32(v)}
	n.SetSpan(p.span(start))
	n.SetResolvedType(types.Get(types.Float))
	return n
}

func (p *Parser) parseStringLiteral(start source.Position) ast.Expression {
	raw := p.cur.Literal
	lPrefixed := p.cur.LPrefixed
	p.advance()
	n := &ast.StringLiteral{Value: strlit.Parse(raw, lPrefixed)}
	n.SetSpan(p.span(start))
	n.SetResolvedType(types.Get(types.String))
	return n
}

// parseBuiltinRef handles TRUE/FALSE, which lex as dedicated keyword
// tokens rather than identifiers, but still resolve to the corresponding
// builtin symbol so later passes see one uniform lvalue shape.
func (p *Parser) parseBuiltinRef(start source.Position, name string) ast.Expression {
	p.advance()
	ident := &ast.Identifier{Name: name}
	sym, _ := p.catalog.Lookup(name, symtab.Variable)
	ident.Symbol = sym
	lv := &ast.LValueExpression{Name: ident, Symbol: sym}
	ident.SetParent(lv)
	if sym != nil {
		lv.SetResolvedType(sym.Type)
	}
	lv.SetSpan(p.span(start))
	return lv
}

// parseVectorOrQuaternion parses `<e1, e2, e3>` as a vector and
// `<e1, e2, e3, e4>` as a quaternion — the language overloads `<`/`>`
// between comparison and the vector/quaternion literal brackets, resolved
// here by always treating a `<` in prefix (term-starting) position as a
// literal opener, the position a comparison operator can never occupy.
func (p *Parser) parseVectorOrQuaternion(start source.Position) ast.Expression {
	p.advance() // "<"
	var components []ast.Expression
	for p.cur.Type != token.Gt && p.cur.Type != token.EOF {
		// Components are parsed above relational precedence so the
		// closing `>` is never taken as a comparison operator.
		if e := p.parseExpression(precRelational); e != nil {
			components = append(components, e)
		}
		if p.cur.Type != token.Comma {
			break
		}
		p.advance()
	}
	p.expect(token.Gt)
	switch len(components) {
	case 3:
		v := &ast.VectorExpression{X: components[0], Y: components[1], Z: components[2]}
		for _, c := range components {
			c.SetParent(v)
		}
		v.SetSpan(p.span(start))
		v.SetResolvedType(types.Get(types.Vector))
		return v
	case 4:
		q := &ast.QuaternionExpression{X: components[0], Y: components[1], Z: components[2], S: components[3]}
		for _, c := range components {
			c.SetParent(q)
		}
		q.SetSpan(p.span(start))
		q.SetResolvedType(types.Get(types.Quaternion))
		return q
	default:
		p.errorf("vector/quaternion literal needs 3 or 4 components, got %d", len(components))
		return nil
	}
}

func (p *Parser) parseListLiteral(start source.Position) ast.Expression {
	p.advance() // "["
	elements := p.parseExpressionList(token.Rbracket)
	p.expect(token.Rbracket)
	le := &ast.ListExpression{Elements: elements}
	for _, e := range elements {
		e.SetParent(le)
	}
	le.SetSpan(p.span(start))
	le.SetResolvedType(types.Get(types.List))
	return le
}

func (p *Parser) parseIdentifierExpression(start source.Position) ast.Expression {
	name := p.cur.Literal
	p.advance()

	if p.cur.Type == token.Lparen {
		sym, ok := symtab.Resolve(p.builtins, p.scope, name, symtab.Function)
		if !ok {
			p.errorf("undefined function %q", name)
		} else {
			sym.Reference()
		}
		return p.parseCallWithSymbol(start, name, sym)
	}

	sym, ok := symtab.Resolve(p.builtins, p.scope, name, symtab.Variable)
	if !ok {
		p.errorf("undefined symbol %q", name)
	} else {
		sym.Reference()
	}

	ident := &ast.Identifier{Name: name, Symbol: sym}
	lv := &ast.LValueExpression{Name: ident, Symbol: sym}
	ident.SetParent(lv)
	if p.cur.Type == token.Dot {
		p.advance()
		lv.Member = p.cur.Literal
		p.expect(token.Ident)
	}
	if sym != nil {
		lv.SetResolvedType(sym.Type)
	}
	lv.SetSpan(p.span(start))
	return lv
}

func (p *Parser) parseCallWithSymbol(start source.Position, name string, sym *symtab.Symbol) ast.Expression {
	p.advance() // "("
	fe := &ast.FunctionExpression{Name: name, Symbol: sym}
	fe.Args = p.parseExpressionList(token.Rparen)
	p.expect(token.Rparen)
	for _, a := range fe.Args {
		a.SetParent(fe)
	}
	if sym != nil && sym.Signature != nil && sym.Signature.Return != nil {
		fe.SetResolvedType(sym.Signature.Return)
	}
	fe.SetSpan(p.span(start))
	return fe
}

// parseInfix handles every infix operator except member access: `.x` is
// only ever legal directly after an identifier lvalue, and is consumed
// eagerly in parseIdentifierExpression rather than through this generic
// precedence loop.
func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	start := left.Span().Start
	opType := p.cur.Type
	op := p.cur.Literal
	prec := precedenceOf(p.cur.Type)
	if isAssignOp(opType) {
		// Assignment is right-associative: the right side is parsed one
		// level lower so a following `=` nests inside it.
		prec--
	}
	p.advance()
	right := p.parseExpression(prec)
	if isAssignOp(opType) {
		if lv, ok := left.(*ast.LValueExpression); ok && lv.Symbol != nil {
			lv.Symbol.Assign()
		}
	}
	b := ast.NewBinaryExpression(op, left, right)
	b.SetSpan(p.span(start))
	return b
}

// isAssignOp reports whether t is one of the assignment operators, the
// ones that record a write against their left-hand symbol rather than
// just reading it.
func isAssignOp(t token.Type) bool {
	switch t {
	case token.Assign, token.PlusEq, token.MinusEq, token.StarEq, token.SlashEq, token.PercentEq:
		return true
	default:
		return false
	}
}
