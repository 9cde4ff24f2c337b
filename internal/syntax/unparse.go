package syntax

import (
	"fmt"
	"io"
	"strings"
)

// tabWidth is the number of columns added per block nesting level.
const tabWidth = 4

// Fprint unparses node to w as Mini source text.
//
// Output is minimally surprising rather than minimally parenthesized:
// every binary operation wraps itself in parentheses, and the right
// operand of == gets one extra forced layer. Re-parsing the output yields
// a tree with identical evaluation order and operator grouping.
//
// Fprint never fails on a malformed tree: missing parts of a partially
// constructed node render as "<missing ...>" placeholders. The returned
// error is the first write error, if any.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.node(node, 0)
	return p.err
}

// String unparses node to a string.
func String(node Node) string {
	var sb strings.Builder
	Fprint(&sb, node)
	return sb.String()
}

type printer struct {
	w   io.Writer
	err error // first write error
}

func (p *printer) print(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

// space writes indent spaces. indent is a column count, already
// multiplied by tabWidth.
func (p *printer) space(indent int) {
	p.print(strings.Repeat(" ", indent))
}

// node dispatches on the node category.
func (p *printer) node(node Node, indent int) {
	switch n := node.(type) {
	case nil:
		// nothing to print
	case *Program:
		for _, d := range n.Decls {
			p.decl(d, indent)
		}
	case Decl:
		p.decl(n, indent)
	case Stmt:
		p.stmt(n, indent)
	case Expr:
		p.expr(n, false)
	case TypeExpr:
		p.typ(n)
	case *Block:
		p.print("{\n")
		p.blockBody(n, indent+tabWidth)
		p.space(indent)
		p.print("}\n")
	}
}

// ----------------------------------------------------------------------------
// Declarations

func (p *printer) decl(d Decl, indent int) {
	switch d := d.(type) {
	case *VarDecl:
		p.space(indent)
		p.typ(d.Type)
		p.print(" ")
		p.expr(d.Name, false)
		p.print(";\n")

	case *FnDecl:
		p.fnDecl(d, indent)

	case *FormalDecl:
		p.typ(d.Type)
		p.print(" ")
		p.expr(d.Name, false)

	case *StructDecl:
		p.space(indent)
		p.print("struct ")
		p.expr(d.Name, false)
		p.print(" {\n")
		for _, f := range d.Fields {
			p.decl(f, indent+tabWidth)
		}
		p.space(indent)
		p.print("};\n")
	}
}

// fnDecl renders a function declaration. Missing parts of a partially
// constructed declaration degrade to placeholders instead of failing.
func (p *printer) fnDecl(d *FnDecl, indent int) {
	p.space(indent)

	if d.Result == nil {
		p.print("<missing type>")
	} else {
		p.typ(d.Result)
	}
	p.print(" ")

	if d.Name == nil {
		p.print("<missing name>")
	} else {
		p.expr(d.Name, false)
	}

	p.print("(")
	for i, f := range d.Params {
		if i > 0 {
			p.print(", ")
		}
		p.decl(f, 0)
	}
	p.print(") ")

	if d.Body == nil {
		p.print("<missing body>\n")
		return
	}
	p.print("{\n")
	p.blockBody(d.Body, indent+tabWidth)
	p.space(indent)
	p.print("}\n")
}

// ----------------------------------------------------------------------------
// Types

func (p *printer) typ(t TypeExpr) {
	switch t := t.(type) {
	case nil:
		p.print("<missing type>")
	case *PrimType:
		p.print(t.Kind.String())
	case *StructType:
		p.print("struct ")
		p.expr(t.Name, false)
	}
}

// ----------------------------------------------------------------------------
// Statements

// blockBody renders the declarations and statements of a block at the
// given indent. Declarations come first; the grammar guarantees the two
// sequences never interleave.
func (p *printer) blockBody(b *Block, indent int) {
	if b == nil {
		return
	}
	for _, d := range b.Decls {
		p.decl(d, indent)
	}
	for _, s := range b.Stmts {
		p.stmt(s, indent)
	}
}

func (p *printer) stmt(s Stmt, indent int) {
	switch s := s.(type) {
	case *AssignStmt:
		p.space(indent)
		if s.A == nil {
			p.print("<missing exp>")
		} else {
			p.expr(s.A, false)
		}
		p.print(";\n")

	case *PostIncStmt:
		p.space(indent)
		p.exprOrMissing(s.X)
		p.print("++;\n")

	case *PostDecStmt:
		p.space(indent)
		p.exprOrMissing(s.X)
		p.print("--;\n")

	case *ReadStmt:
		p.space(indent)
		p.print("cin >> ")
		p.exprOrMissing(s.X)
		p.print(";\n")

	case *WriteStmt:
		p.space(indent)
		p.print("cout << ")
		p.exprOrMissing(s.X)
		p.print(";\n")

	case *IfStmt:
		p.space(indent)
		p.print("if (")
		p.exprOrMissing(s.Cond)
		p.print(") {\n")
		p.blockBody(s.Body, indent+tabWidth)
		p.space(indent)
		p.print("}\n")

	case *IfElseStmt:
		p.space(indent)
		p.print("if (")
		p.exprOrMissing(s.Cond)
		p.print(") {\n")
		p.blockBody(s.Then, indent+tabWidth)
		p.space(indent)
		p.print("} else {\n")
		p.blockBody(s.Else, indent+tabWidth)
		p.space(indent)
		p.print("}\n")

	case *WhileStmt:
		p.space(indent)
		p.print("while (")
		p.exprOrMissing(s.Cond)
		p.print(") {\n")
		p.blockBody(s.Body, indent+tabWidth)
		p.space(indent)
		p.print("}\n")

	case *RepeatStmt:
		p.space(indent)
		p.print("repeat (")
		p.exprOrMissing(s.Cond)
		p.print(") {\n")
		p.blockBody(s.Body, indent+tabWidth)
		p.space(indent)
		p.print("}\n")

	case *CallStmt:
		p.space(indent)
		if s.Call == nil {
			p.print("<missing exp>")
		} else {
			p.expr(s.Call, false)
		}
		p.print(";\n")

	case *ReturnStmt:
		p.space(indent)
		p.print("return")
		if s.Result != nil {
			p.print(" ")
			p.expr(s.Result, false)
		}
		p.print(";\n")
	}
}

func (p *printer) exprOrMissing(x Expr) {
	if x == nil {
		p.print("<missing exp>")
		return
	}
	p.expr(x, false)
}

// ----------------------------------------------------------------------------
// Expressions

// expr renders an expression. parens is the explicit "enclose yourself"
// context an ancestor may demand; it replaces the print-time flag the
// tree would otherwise have to carry.
//
// Binary operations always wrap their own rendering in parentheses, and
// == forces one extra layer around its right operand. Operations also
// force parentheses around assignment operands, which bind looser than
// any operator. Everything else parenthesizes itself only when parens
// is set.
func (p *printer) expr(x Expr, parens bool) {
	if x == nil {
		p.print("<missing exp>")
		return
	}
	if parens {
		p.print("(")
	}

	switch x := x.(type) {
	case *Name:
		p.print(x.Value)

	case *BasicLit:
		if x.Kind == StringLit {
			p.print(quote(x.Value))
		} else {
			p.print(x.Value)
		}

	case *DotAccess:
		p.expr(x.X, false)
		p.print(".")
		p.expr(x.Sel, false)

	case *AssignExpr:
		p.expr(x.LHS, false)
		p.print(" = ")
		p.expr(x.RHS, false)

	case *CallExpr:
		p.expr(x.Fun, false)
		p.print("(")
		for i, a := range x.Args {
			if i > 0 {
				p.print(", ")
			}
			p.expr(a, false)
		}
		p.print(")")

	case *Operation:
		if x.Y == nil {
			p.print(x.Op.String())
			// -(-x) must not print as --x, which would rescan as the
			// decrement token.
			needParens := isAssignExpr(x.X)
			if inner, ok := x.X.(*Operation); ok {
				needParens = inner.Y == nil && inner.Op == _Sub && x.Op == _Sub
			}
			p.expr(x.X, needParens)
		} else {
			p.print("(")
			p.expr(x.X, isAssignExpr(x.X))
			p.printf(" %s ", x.Op)
			p.expr(x.Y, x.Op == _Eql || isAssignExpr(x.Y))
			p.print(")")
		}
	}

	if parens {
		p.print(")")
	}
}

// isAssignExpr reports whether x is an assignment expression. An
// assignment used as an operand binds looser than the surrounding
// operation, so it must keep its parentheses or the reparse folds the
// rest of the expression into its right side.
func isAssignExpr(x Expr) bool {
	_, ok := x.(*AssignExpr)
	return ok
}

// quote renders a string literal with the scanner's escape set.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
