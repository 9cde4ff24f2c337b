package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fdump writes an indented textual dump of the AST to w.
// It shows node kinds and positions and is meant for debugging the
// parser, not for regenerating source text; use Fprint for that.
func Fdump(w io.Writer, node Node) {
	d := &dumper{w: w}
	d.dump(node)
}

type dumper struct {
	w      io.Writer
	indent int
}

func (d *dumper) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "%s%s", strings.Repeat("  ", d.indent), fmt.Sprintf(format, args...))
}

func (d *dumper) dump(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		d.printf("Program %s\n", n.pos)
		d.indent++
		for _, dec := range n.Decls {
			d.dump(dec)
		}
		d.indent--

	case *VarDecl:
		d.printf("VarDecl %s\n", n.pos)
		d.indent++
		d.printf("Type: %s\n", typeString(n.Type))
		if n.Name != nil {
			d.printf("Name: %s\n", n.Name.Value)
		}
		d.indent--

	case *FnDecl:
		d.printf("FnDecl %s\n", n.pos)
		d.indent++
		d.printf("Result: %s\n", typeString(n.Result))
		if n.Name != nil {
			d.printf("Name: %s\n", n.Name.Value)
		}
		if len(n.Params) > 0 {
			d.printf("Params:\n")
			d.indent++
			for _, f := range n.Params {
				d.printf("%s %s\n", typeString(f.Type), f.Name.Value)
			}
			d.indent--
		}
		if n.Body != nil {
			d.printf("Body:\n")
			d.indent++
			d.dump(n.Body)
			d.indent--
		}
		d.indent--

	case *FormalDecl:
		d.printf("FormalDecl %s %s %s\n", n.pos, typeString(n.Type), n.Name.Value)

	case *StructDecl:
		d.printf("StructDecl %s\n", n.pos)
		d.indent++
		d.printf("Name: %s\n", n.Name.Value)
		for _, f := range n.Fields {
			d.dump(f)
		}
		d.indent--

	case *Block:
		d.printf("Block %s\n", n.pos)
		d.indent++
		for _, dec := range n.Decls {
			d.dump(dec)
		}
		for _, s := range n.Stmts {
			d.dump(s)
		}
		d.indent--

	case *AssignStmt:
		d.printf("AssignStmt %s\n", n.pos)
		d.indent++
		d.dump(n.A)
		d.indent--

	case *PostIncStmt:
		d.printf("PostIncStmt %s\n", n.pos)
		d.indent++
		d.dump(n.X)
		d.indent--

	case *PostDecStmt:
		d.printf("PostDecStmt %s\n", n.pos)
		d.indent++
		d.dump(n.X)
		d.indent--

	case *ReadStmt:
		d.printf("ReadStmt %s\n", n.pos)
		d.indent++
		d.dump(n.X)
		d.indent--

	case *WriteStmt:
		d.printf("WriteStmt %s\n", n.pos)
		d.indent++
		d.dump(n.X)
		d.indent--

	case *IfStmt:
		d.printf("IfStmt %s\n", n.pos)
		d.indent++
		d.printf("Cond:\n")
		d.indent++
		d.dump(n.Cond)
		d.indent--
		d.printf("Body:\n")
		d.indent++
		d.dump(n.Body)
		d.indent--
		d.indent--

	case *IfElseStmt:
		d.printf("IfElseStmt %s\n", n.pos)
		d.indent++
		d.printf("Cond:\n")
		d.indent++
		d.dump(n.Cond)
		d.indent--
		d.printf("Then:\n")
		d.indent++
		d.dump(n.Then)
		d.indent--
		d.printf("Else:\n")
		d.indent++
		d.dump(n.Else)
		d.indent--
		d.indent--

	case *WhileStmt:
		d.printf("WhileStmt %s\n", n.pos)
		d.indent++
		d.printf("Cond:\n")
		d.indent++
		d.dump(n.Cond)
		d.indent--
		d.printf("Body:\n")
		d.indent++
		d.dump(n.Body)
		d.indent--
		d.indent--

	case *RepeatStmt:
		d.printf("RepeatStmt %s\n", n.pos)
		d.indent++
		d.printf("Cond:\n")
		d.indent++
		d.dump(n.Cond)
		d.indent--
		d.printf("Body:\n")
		d.indent++
		d.dump(n.Body)
		d.indent--
		d.indent--

	case *CallStmt:
		d.printf("CallStmt %s\n", n.pos)
		d.indent++
		d.dump(n.Call)
		d.indent--

	case *ReturnStmt:
		d.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			d.indent++
			d.dump(n.Result)
			d.indent--
		}

	case *Name:
		d.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		d.printf("BasicLit %s %s %q\n", n.pos, n.Kind, n.Value)

	case *DotAccess:
		d.printf("DotAccess %s\n", n.pos)
		d.indent++
		d.printf("X:\n")
		d.indent++
		d.dump(n.X)
		d.indent--
		d.printf("Sel: %s\n", n.Sel.Value)
		d.indent--

	case *AssignExpr:
		d.printf("AssignExpr %s\n", n.pos)
		d.indent++
		d.printf("LHS:\n")
		d.indent++
		d.dump(n.LHS)
		d.indent--
		d.printf("RHS:\n")
		d.indent++
		d.dump(n.RHS)
		d.indent--
		d.indent--

	case *CallExpr:
		d.printf("CallExpr %s\n", n.pos)
		d.indent++
		d.printf("Fun: %s\n", n.Fun.Value)
		if len(n.Args) > 0 {
			d.printf("Args:\n")
			d.indent++
			for _, a := range n.Args {
				d.dump(a)
			}
			d.indent--
		}
		d.indent--

	case *Operation:
		if n.Y == nil {
			d.printf("UnaryOp %s %s\n", n.pos, n.Op)
			d.indent++
			d.dump(n.X)
			d.indent--
		} else {
			d.printf("BinaryOp %s %s\n", n.pos, n.Op)
			d.indent++
			d.printf("X:\n")
			d.indent++
			d.dump(n.X)
			d.indent--
			d.printf("Y:\n")
			d.indent++
			d.dump(n.Y)
			d.indent--
			d.indent--
		}

	case *PrimType:
		d.printf("PrimType %s %s\n", n.pos, n.Kind)

	case *StructType:
		d.printf("StructType %s %s\n", n.pos, n.Name.Value)

	default:
		d.printf("<%T>\n", node)
	}
}

// typeString returns a compact string representation of a type.
func typeString(t TypeExpr) string {
	switch t := t.(type) {
	case nil:
		return "<nil>"
	case *PrimType:
		return t.Kind.String()
	case *StructType:
		if t.Name == nil {
			return "struct <nil>"
		}
		return "struct " + t.Name.Value
	default:
		return fmt.Sprintf("<%T>", t)
	}
}
