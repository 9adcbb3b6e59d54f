package rlox

// An Expr is a node of an expression tree. The implementations form a
// closed set, and consumers traverse them by exhaustive type switch.
// Expressions are immutable once parsed; each node is owned by its parent
// and shared by none, which CheckTree verifies.
type Expr interface {
	expr()
}

// A LiteralExpr is a literal value written in source.
type LiteralExpr struct {
	Value Value
}

// A GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Expr Expr
}

// A UnaryExpr applies a prefix operator to an operand.
type UnaryExpr struct {
	Op    Token
	Right Expr
}

// A BinaryExpr applies an infix operator to two operands. Comma sequencing
// parses to a BinaryExpr as well.
type BinaryExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

// A LogicalExpr is a short-circuiting and or or. It is distinct from
// BinaryExpr because its right operand is conditionally evaluated.
type LogicalExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

// A TernaryExpr is a conditional expression. Op is the question mark,
// kept for error reporting. Only the chosen branch is evaluated.
type TernaryExpr struct {
	Op   Token
	Cond Expr
	Then Expr
	Else Expr
}

// A VariableExpr is a reference to a variable by name.
type VariableExpr struct {
	Name Token
}

// An AssignExpr rebinds a variable and yields the assigned value.
type AssignExpr struct {
	Name  Token
	Value Expr
}

// A CallExpr invokes a callable value. Paren is the closing parenthesis,
// kept for error reporting. Calls chain, so a CallExpr may be another
// CallExpr's callee.
type CallExpr struct {
	Callee Expr
	Paren  Token
	Args   []Expr
}

func (*LiteralExpr) expr()  {}
func (*GroupingExpr) expr() {}
func (*UnaryExpr) expr()    {}
func (*BinaryExpr) expr()   {}
func (*LogicalExpr) expr()  {}
func (*TernaryExpr) expr()  {}
func (*VariableExpr) expr() {}
func (*AssignExpr) expr()   {}
func (*CallExpr) expr()     {}

// A Stmt is a node of a statement tree. Like Expr, the implementations form
// a closed set traversed by exhaustive type switch.
type Stmt interface {
	stmt()
}

// A PrintStmt evaluates an expression and writes its display form.
type PrintStmt struct {
	Expr Expr
}

// An ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	Expr Expr
}

// A VarStmt declares a variable in the current scope. A nil Init declares
// it uninitialized, which is not the same as initializing it to nil.
type VarStmt struct {
	Name Token
	Init Expr
}

// A BlockStmt executes statements in order in a new scope.
type BlockStmt struct {
	Stmts []Stmt
}

// An IfStmt chooses between two branches by a condition's truthiness. Else
// may be nil.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// A WhileStmt executes a body while a condition holds. for loops desugar to
// WhileStmt at parse time and have no node of their own.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// A BreakStmt exits the nearest enclosing loop. Keyword is kept for error
// reporting.
type BreakStmt struct {
	Keyword Token
}

// A FunctionStmt declares a function and binds it in the current scope. The
// function closes over the scope chain active at its declaration.
type FunctionStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

// A ReturnStmt exits the enclosing function with a value. A nil Value
// returns nil.
type ReturnStmt struct {
	Keyword Token
	Value   Expr
}

func (*PrintStmt) stmt()    {}
func (*ExprStmt) stmt()     {}
func (*VarStmt) stmt()      {}
func (*BlockStmt) stmt()    {}
func (*IfStmt) stmt()       {}
func (*WhileStmt) stmt()    {}
func (*BreakStmt) stmt()    {}
func (*FunctionStmt) stmt() {}
func (*ReturnStmt) stmt()   {}
