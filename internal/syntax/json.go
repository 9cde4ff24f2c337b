package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":  "Program",
			"pos":   n.pos.String(),
			"decls": declsJSON(n.Decls),
		}

	case *VarDecl:
		return map[string]interface{}{
			"type":    "VarDecl",
			"pos":     n.pos.String(),
			"vartype": toJSON(n.Type),
			"name":    nameJSON(n.Name),
		}

	case *FnDecl:
		m := map[string]interface{}{
			"type": "FnDecl",
			"pos":  n.pos.String(),
			"name": nameJSON(n.Name),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		params := make([]interface{}, len(n.Params))
		for i, f := range n.Params {
			params[i] = toJSON(f)
		}
		m["params"] = params
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}
		return m

	case *FormalDecl:
		return map[string]interface{}{
			"type":      "FormalDecl",
			"pos":       n.pos.String(),
			"paramtype": toJSON(n.Type),
			"name":      nameJSON(n.Name),
		}

	case *StructDecl:
		fields := make([]interface{}, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = toJSON(f)
		}
		return map[string]interface{}{
			"type":   "StructDecl",
			"pos":    n.pos.String(),
			"name":   nameJSON(n.Name),
			"fields": fields,
		}

	case *PrimType:
		return map[string]interface{}{
			"type": "PrimType",
			"pos":  n.pos.String(),
			"kind": n.Kind.String(),
		}

	case *StructType:
		return map[string]interface{}{
			"type": "StructType",
			"pos":  n.pos.String(),
			"name": nameJSON(n.Name),
		}

	case *Block:
		return map[string]interface{}{
			"type":  "Block",
			"pos":   n.pos.String(),
			"decls": declsJSON(n.Decls),
			"stmts": stmtsJSON(n.Stmts),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":   "AssignStmt",
			"pos":    n.pos.String(),
			"assign": toJSON(n.A),
		}

	case *PostIncStmt:
		return map[string]interface{}{
			"type": "PostIncStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *PostDecStmt:
		return map[string]interface{}{
			"type": "PostDecStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *ReadStmt:
		return map[string]interface{}{
			"type": "ReadStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *WriteStmt:
		return map[string]interface{}{
			"type": "WriteStmt",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}

	case *IfStmt:
		return map[string]interface{}{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *IfElseStmt:
		return map[string]interface{}{
			"type": "IfElseStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
			"else": toJSON(n.Else),
		}

	case *WhileStmt:
		return map[string]interface{}{
			"type": "WhileStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *RepeatStmt:
		return map[string]interface{}{
			"type": "RepeatStmt",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"body": toJSON(n.Body),
		}

	case *CallStmt:
		return map[string]interface{}{
			"type": "CallStmt",
			"pos":  n.pos.String(),
			"call": toJSON(n.Call),
		}

	case *ReturnStmt:
		m := map[string]interface{}{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		return map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *DotAccess:
		return map[string]interface{}{
			"type": "DotAccess",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
			"sel":  nameJSON(n.Sel),
		}

	case *AssignExpr:
		return map[string]interface{}{
			"type": "AssignExpr",
			"pos":  n.pos.String(),
			"lhs":  toJSON(n.LHS),
			"rhs":  toJSON(n.RHS),
		}

	case *CallExpr:
		args := make([]interface{}, len(n.Args))
		for i, a := range n.Args {
			args[i] = toJSON(a)
		}
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  nameJSON(n.Fun),
			"args": args,
		}

	case *Operation:
		m := map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}
		if n.Y != nil {
			m["y"] = toJSON(n.Y)
		}
		return m

	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

// nameJSON returns the identifier string of n, or nil.
func nameJSON(n *Name) interface{} {
	if n == nil {
		return nil
	}
	return n.Value
}

func declsJSON(decls []Decl) []interface{} {
	out := make([]interface{}, len(decls))
	for i, d := range decls {
		out[i] = toJSON(d)
	}
	return out
}

func stmtsJSON(stmts []Stmt) []interface{} {
	out := make([]interface{}, len(stmts))
	for i, s := range stmts {
		out[i] = toJSON(s)
	}
	return out
}
