package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first, left-to-right order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *VarDecl:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *FnDecl:
		if n.Result != nil {
			Walk(n.Result, v)
		}
		if n.Name != nil {
			Walk(n.Name, v)
		}
		for _, f := range n.Params {
			Walk(f, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *FormalDecl:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *StructDecl:
		Walk(n.Name, v)
		for _, f := range n.Fields {
			Walk(f, v)
		}

	case *StructType:
		Walk(n.Name, v)

	case *Block:
		for _, d := range n.Decls {
			Walk(d, v)
		}
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *AssignStmt:
		Walk(n.A, v)

	case *PostIncStmt:
		Walk(n.X, v)

	case *PostDecStmt:
		Walk(n.X, v)

	case *ReadStmt:
		if n.X != nil {
			Walk(n.X, v)
		}

	case *WriteStmt:
		if n.X != nil {
			Walk(n.X, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *IfElseStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *RepeatStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *CallStmt:
		Walk(n.Call, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *DotAccess:
		Walk(n.X, v)
		Walk(n.Sel, v)

	case *AssignExpr:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	// Leaf nodes: Name, BasicLit, PrimType
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
