package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 4 main classes of nodes: Declarations, Statements, Expressions,
// and Type expressions. All nodes implement the Node interface; each class
// further implements its own marker interface so the type system rules out
// wrong-shaped children (a statement can never appear in a declaration
// list, and so on).

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// TypeExpr is the interface for all type descriptor nodes.
type TypeExpr interface {
	Node
	aType()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// typeExpr is embedded in all type descriptor nodes.
type typeExpr struct{ node }

func (*typeExpr) aType() {}

// ----------------------------------------------------------------------------
// Program and Declarations

// Program is the root of a Mini AST: a sequence of top-level declarations.
type Program struct {
	node
	Decls []Decl // top-level declarations, in source order
}

// VarDecl represents a variable declaration: Type Name ;
// A variable of record type is declared as: struct Id Name ;
type VarDecl struct {
	decl
	Type TypeExpr // declared type
	Name *Name    // variable name
}

// FnDecl represents a function declaration:
// Result Name(Params) { Body }
// All fields may be nil on a partially constructed tree; the unparser
// renders placeholders for missing parts instead of failing.
type FnDecl struct {
	decl
	Result TypeExpr      // return type
	Name   *Name         // function name
	Params []*FormalDecl // formal parameter list (nil and empty both mean "()")
	Body   *Block        // function body
}

// FormalDecl represents a formal parameter: Type Name
type FormalDecl struct {
	decl
	Type TypeExpr // parameter type
	Name *Name    // parameter name
}

// StructDecl represents a record type declaration:
// struct Name { Fields... };
type StructDecl struct {
	decl
	Name   *Name      // record type name
	Fields []*VarDecl // field declarations, in source order
}

// ----------------------------------------------------------------------------
// Type expressions

// TypeKind identifies a primitive type.
type TypeKind uint8

const (
	IntType  TypeKind = iota // int
	BoolType                 // bool
	VoidType                 // void
)

// typeKindNames maps primitive type kinds to their keyword spelling.
var typeKindNames = [...]string{
	IntType:  "int",
	BoolType: "bool",
	VoidType: "void",
}

// String returns the keyword spelling of the type kind.
func (k TypeKind) String() string {
	if k <= VoidType {
		return typeKindNames[k]
	}
	return "type(?)"
}

// PrimType represents a primitive type: int, bool, or void.
type PrimType struct {
	typeExpr
	Kind TypeKind
}

// StructType represents a named record type: struct Name
type StructType struct {
	typeExpr
	Name *Name // record type name
}

// ----------------------------------------------------------------------------
// Blocks

// Block represents a braced body: { varDecls... stmts... }
// Declarations always precede statements; the grammar does not allow
// interleaving. Both sequences may be empty.
type Block struct {
	node
	Decls  []Decl // local variable declarations, in source order
	Stmts  []Stmt // statements, in execution order
	Rbrace Pos    // position of closing brace
}

// ----------------------------------------------------------------------------
// Statements

// AssignStmt represents an assignment statement: loc = exp ;
type AssignStmt struct {
	stmt
	A *AssignExpr // the assignment expression
}

// PostIncStmt represents: loc ++ ;
type PostIncStmt struct {
	stmt
	X Expr // incremented location
}

// PostDecStmt represents: loc -- ;
type PostDecStmt struct {
	stmt
	X Expr // decremented location
}

// ReadStmt represents: cin >> loc ;
type ReadStmt struct {
	stmt
	X Expr // target location (nil only on malformed trees)
}

// WriteStmt represents: cout << exp ;
type WriteStmt struct {
	stmt
	X Expr // written expression (nil only on malformed trees)
}

// IfStmt represents an if statement without an else branch:
// if ( Cond ) { Body }
type IfStmt struct {
	stmt
	Cond Expr   // condition
	Body *Block // then branch
}

// IfElseStmt represents an if statement with an else branch:
// if ( Cond ) { Then } else { Else }
type IfElseStmt struct {
	stmt
	Cond Expr   // condition
	Then *Block // then branch
	Else *Block // else branch
}

// WhileStmt represents: while ( Cond ) { Body }
type WhileStmt struct {
	stmt
	Cond Expr   // condition
	Body *Block // loop body
}

// RepeatStmt represents: repeat ( Cond ) { Body }
type RepeatStmt struct {
	stmt
	Cond Expr   // repetition count expression
	Body *Block // loop body
}

// CallStmt represents a function call used as a statement: Fun(Args) ;
type CallStmt struct {
	stmt
	Call *CallExpr // the call expression
}

// ReturnStmt represents: return [Result] ;
type ReturnStmt struct {
	stmt
	Result Expr // return value (nil for a valueless return)
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents a literal value (int, string, or bool).
// The value of a string literal is the decoded content without quotes;
// the value of a bool literal is "true" or "false".
type BasicLit struct {
	expr
	Value string  // literal text
	Kind  LitKind // IntLit, StringLit, BoolLit
}

// DotAccess represents a record field access: X.Sel
// Chains are left-associative: a.b.c is (a.b).c.
type DotAccess struct {
	expr
	X   Expr  // location expression (Name or DotAccess)
	Sel *Name // field name
}

// AssignExpr represents an assignment used as an expression: LHS = RHS
// The left-hand side is always a location (Name or DotAccess).
type AssignExpr struct {
	expr
	LHS Expr // assigned location
	RHS Expr // assigned value
}

// CallExpr represents a function call: Fun(Args...)
// An empty-parens call and a call with an explicit empty argument list
// are both represented by an empty Args.
type CallExpr struct {
	expr
	Fun  *Name  // called function name
	Args []Expr // argument list, in source order
}

// Operation represents a unary or binary operation.
// For unary operations (- and !), Y is nil.
// For binary operations, both X and Y are set and Op is one of
// + - * / && || == != < > <= >=.
type Operation struct {
	expr
	Op Token // operator token
	X  Expr  // left operand (or only operand for unary)
	Y  Expr  // right operand (nil for unary)
}
