package syntax

import (
	"fmt"
	"io"
)

// Maximum expression nesting depth. Deeper input is rejected with a
// syntax error so adversarial sources cannot exhaust the stack during
// parsing or the later unparse traversal.
const maxNestDepth = 1000

// SyntaxError represents a syntax error. The first error encountered is
// fatal: the parser stops and Parse returns it with no partial tree.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on Mini source code.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok  Token
	lit  string
	kind LitKind
	pos  Pos

	// Error handling: first error wins, then the token stream is forced
	// to EOF so every parsing loop unwinds.
	err *SyntaxError

	// Expression nesting depth
	depth int
}

// NewParser creates a new Parser for the given source.
// Lexical errors surface through the same fatal SyntaxError path as
// grammar errors.
func NewParser(filename string, src io.Reader) *Parser {
	p := &Parser{}
	p.scanner = NewScanner(filename, src, func(line, col uint32, msg string) {
		p.syntaxErrorAt(NewPos(filename, line, col), msg)
	})
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.kind = p.scanner.LitKind()
	p.pos = p.scanner.Pos()
	if p.err != nil {
		p.tok = _EOF
	}
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports a fatal syntax error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError(fmt.Sprintf("expected %s, found %s", tok, p.tokDesc()))
	}
}

// tokDesc describes the current token for error messages.
func (p *Parser) tokDesc() string {
	switch p.tok {
	case _EOF:
		return "end of file"
	case _Name:
		return fmt.Sprintf("identifier %q", p.lit)
	case _Literal:
		return fmt.Sprintf("literal %q", p.lit)
	}
	return p.tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

// syntaxErrorAt records the first syntax error and aborts parsing by
// forcing the token stream to EOF. Later errors are ignored.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{Pos: pos, Msg: msg}
	p.tok = _EOF
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete Mini program. On a syntax error it returns a
// nil tree and a *SyntaxError; it never returns a partial tree alongside
// an error.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos

	for p.tok != _EOF {
		if d := p.decl(); d != nil {
			prog.Decls = append(prog.Decls, d)
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	if p.tok != _Name {
		p.syntaxError(fmt.Sprintf("expected identifier, found %s", p.tokDesc()))
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
	n := &Name{Value: p.lit}
	n.pos = p.pos
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Declarations

// decl parses a top-level declaration: variable, function, or record.
func (p *Parser) decl() Decl {
	switch p.tok {
	case _Int, _Bool, _Void:
		pos := p.pos
		return p.declRest(pos, p.primType())

	case _Struct:
		// "struct id {" starts a record declaration; "struct id id"
		// uses the record name as a type.
		pos := p.pos
		p.next()
		name := p.name()
		if p.tok == _Lbrace {
			return p.structDeclRest(pos, name)
		}
		st := &StructType{Name: name}
		st.pos = pos
		return p.declRest(pos, st)

	default:
		p.syntaxError(fmt.Sprintf("expected declaration, found %s", p.tokDesc()))
		return nil
	}
}

// declRest parses the remainder of a variable or function declaration
// after its type has been consumed.
func (p *Parser) declRest(pos Pos, typ TypeExpr) Decl {
	name := p.name()

	if p.tok == _Lparen {
		return p.fnDeclRest(pos, typ, name)
	}

	d := &VarDecl{Type: typ, Name: name}
	d.pos = pos
	p.want(_Semi)
	return d
}

// fnDeclRest parses formals and body of a function declaration.
func (p *Parser) fnDeclRest(pos Pos, result TypeExpr, name *Name) Decl {
	d := &FnDecl{Result: result, Name: name}
	d.pos = pos
	d.Params = p.formals()
	d.Body = p.block()
	return d
}

// formals parses ( ) or ( formalDecl , formalDecl ... )
func (p *Parser) formals() []*FormalDecl {
	p.want(_Lparen)

	var params []*FormalDecl
	if p.tok != _Rparen && p.tok != _EOF {
		for {
			f := &FormalDecl{}
			f.pos = p.pos
			f.Type = p.typeExpr()
			f.Name = p.name()
			params = append(params, f)

			if !p.got(_Comma) {
				break
			}
		}
	}

	p.want(_Rparen)
	return params
}

// structDeclRest parses the field list of a record declaration after
// "struct id" has been consumed.
func (p *Parser) structDeclRest(pos Pos, name *Name) Decl {
	d := &StructDecl{Name: name}
	d.pos = pos

	p.want(_Lbrace)
	for p.tok != _Rbrace && p.tok != _EOF {
		if vd := p.varDecl(); vd != nil {
			d.Fields = append(d.Fields, vd)
		}
	}
	p.want(_Rbrace)
	p.want(_Semi)

	return d
}

// varDecl parses a variable declaration: type id ;
// Used for record fields and block-local declarations.
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos
	d.Type = p.typeExpr()
	d.Name = p.name()
	p.want(_Semi)
	return d
}

// ----------------------------------------------------------------------------
// Types

// typeExpr parses a type: int, bool, void, or struct id.
func (p *Parser) typeExpr() TypeExpr {
	switch p.tok {
	case _Int, _Bool, _Void:
		return p.primType()

	case _Struct:
		st := &StructType{}
		st.pos = p.pos
		p.next()
		st.Name = p.name()
		return st

	default:
		p.syntaxError(fmt.Sprintf("expected type, found %s", p.tokDesc()))
		t := &PrimType{Kind: VoidType}
		t.pos = p.pos
		return t
	}
}

// primType parses int, bool, or void.
func (p *Parser) primType() TypeExpr {
	t := &PrimType{}
	t.pos = p.pos
	switch p.tok {
	case _Int:
		t.Kind = IntType
	case _Bool:
		t.Kind = BoolType
	case _Void:
		t.Kind = VoidType
	}
	p.next()
	return t
}

// ----------------------------------------------------------------------------
// Blocks and statements

// block parses { varDecls... stmts... }
// Declarations must precede statements; a declaration keyword after the
// first statement is a syntax error.
func (p *Parser) block() *Block {
	b := &Block{}
	b.pos = p.pos

	p.want(_Lbrace)

	for p.tok == _Int || p.tok == _Bool || p.tok == _Void || p.tok == _Struct {
		if d := p.varDecl(); d != nil {
			b.Decls = append(b.Decls, d)
		}
	}

	for p.tok != _Rbrace && p.tok != _EOF {
		if s := p.stmt(); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}

	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Cin:
		return p.readStmt()

	case _Cout:
		return p.writeStmt()

	case _If:
		return p.ifStmt()

	case _While:
		s := &WhileStmt{}
		s.pos = p.pos
		p.next()
		s.Cond = p.parenExpr()
		s.Body = p.block()
		return s

	case _Repeat:
		s := &RepeatStmt{}
		s.pos = p.pos
		p.next()
		s.Cond = p.parenExpr()
		s.Body = p.block()
		return s

	case _Return:
		return p.returnStmt()

	case _Name:
		return p.simpleStmt()

	default:
		p.syntaxError(fmt.Sprintf("expected statement, found %s", p.tokDesc()))
		return nil
	}
}

// readStmt parses: cin >> loc ;
func (p *Parser) readStmt() Stmt {
	s := &ReadStmt{}
	s.pos = p.pos
	p.want(_Cin)
	p.want(_Read)
	s.X = p.loc()
	p.want(_Semi)
	return s
}

// writeStmt parses: cout << exp ;
func (p *Parser) writeStmt() Stmt {
	s := &WriteStmt{}
	s.pos = p.pos
	p.want(_Cout)
	p.want(_Write)
	s.X = p.expr()
	p.want(_Semi)
	return s
}

// ifStmt parses: if ( cond ) block [ else block ]
// An else clause always attaches to the nearest preceding unmatched if,
// which falls out of the recursive descent for free.
func (p *Parser) ifStmt() Stmt {
	pos := p.pos
	p.want(_If)
	cond := p.parenExpr()
	then := p.block()

	if p.got(_Else) {
		s := &IfElseStmt{Cond: cond, Then: then}
		s.pos = pos
		s.Else = p.block()
		return s
	}

	s := &IfStmt{Cond: cond, Body: then}
	s.pos = pos
	return s
}

// returnStmt parses: return [ exp ] ;
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.pos
	p.want(_Return)

	if p.tok != _Semi && p.tok != _EOF {
		s.Result = p.expr()
	}

	p.want(_Semi)
	return s
}

// simpleStmt parses the statements that start with an identifier:
// assignment, increment, decrement, and call.
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	x := p.loc()

	switch p.tok {
	case _Assign:
		a := &AssignExpr{LHS: x}
		a.pos = pos
		p.next()
		a.RHS = p.expr()
		s := &AssignStmt{A: a}
		s.pos = pos
		p.want(_Semi)
		return s

	case _Inc:
		s := &PostIncStmt{X: x}
		s.pos = pos
		p.next()
		p.want(_Semi)
		return s

	case _Dec:
		s := &PostDecStmt{X: x}
		s.pos = pos
		p.next()
		p.want(_Semi)
		return s

	case _Lparen:
		// A call statement requires a bare function name; a dot-access
		// chain cannot be called.
		fun, ok := x.(*Name)
		if !ok {
			p.syntaxError("cannot call a field access")
			return nil
		}
		s := &CallStmt{Call: p.callRest(fun)}
		s.pos = pos
		p.want(_Semi)
		return s

	default:
		p.syntaxError(fmt.Sprintf("expected statement, found %s", p.tokDesc()))
		return nil
	}
}

// parenExpr parses ( exp )
func (p *Parser) parenExpr() Expr {
	p.want(_Lparen)
	x := p.expr()
	p.want(_Rparen)
	return x
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression. Assignment binds loosest of all and is
// right-associative: a = b = c is a = (b = c).
func (p *Parser) expr() Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestDepth {
		p.syntaxError("expression too deeply nested")
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}

	x := p.binaryExpr(0)

	if p.tok == _Assign {
		if !isLoc(x) {
			p.syntaxErrorAt(x.Pos(), "left side of assignment must be a location")
			return x
		}
		a := &AssignExpr{LHS: x}
		a.pos = x.Pos()
		p.next()
		a.RHS = p.expr()
		return a
	}

	return x
}

// isLoc reports whether x is a location expression (identifier or
// dot-access chain).
func isLoc(x Expr) bool {
	switch x.(type) {
	case *Name, *DotAccess:
		return true
	}
	return false
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements precedence climbing; all binary operators are
// left-associative.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a unary expression. Unary - and ! bind tighter than
// any binary operator.
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Not, _Sub:
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > maxNestDepth {
			p.syntaxError("expression too deeply nested")
			n := &Name{Value: "_"}
			n.pos = p.pos
			return n
		}
		op := &Operation{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.unaryExpr()
		return op

	default:
		return p.operand()
	}
}

// operand parses an atomic expression: literal, location, call, or
// parenthesized expression. Parentheses reset precedence completely and
// leave no trace in the tree.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		n := &Name{Value: p.lit}
		n.pos = p.pos
		p.next()
		if p.tok == _Lparen {
			return p.callRest(n)
		}
		return p.locRest(n)

	case _Literal:
		lit := &BasicLit{Value: p.lit, Kind: p.kind}
		lit.pos = p.pos
		p.next()
		return lit

	case _True, _False:
		lit := &BasicLit{Value: p.lit, Kind: BoolLit}
		lit.pos = p.pos
		p.next()
		return lit

	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	default:
		p.syntaxError(fmt.Sprintf("expected expression, found %s", p.tokDesc()))
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
}

// loc parses a location: an identifier or a left-associative dot-access
// chain, so a.b.c is (a.b).c.
func (p *Parser) loc() Expr {
	return p.locRest(p.name())
}

// locRest parses the dot-access chain following an already-consumed name.
func (p *Parser) locRest(n *Name) Expr {
	x := Expr(n)
	for p.got(_Dot) {
		d := &DotAccess{X: x}
		d.pos = x.Pos()
		d.Sel = p.name()
		x = d
	}
	return x
}

// callRest parses the argument list of a call after the function name
// has been consumed: ( [ exp , exp ... ] )
func (p *Parser) callRest(fun *Name) *CallExpr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen && p.tok != _EOF {
		call.Args = append(call.Args, p.expr())
		for p.got(_Comma) {
			call.Args = append(call.Args, p.expr())
		}
	}
	p.want(_Rparen)

	return call
}
