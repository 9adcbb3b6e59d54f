package rlox

import "testing"

// TestSprintExpr tests the rendering of hand-built expression trees,
// independent of what the parser produces.
func TestSprintExpr(t *testing.T) {
	one := func() Expr { return &LiteralExpr{Value: Number(1)} }
	two := func() Expr { return &LiteralExpr{Value: Number(2)} }
	x := func() Token { return Token{Kind: Identifier, Lexeme: "x"} }
	cases := map[string]struct {
		e    Expr
		want string
	}{
		"Number":   {one(), "1"},
		"Nil":      {&LiteralExpr{Value: Nil{}}, "nil"},
		"String":   {&LiteralExpr{Value: String("hi")}, `"hi"`},
		"Quoting":  {&LiteralExpr{Value: String(`say "hi"`)}, `"say \"hi\""`},
		"Variable": {&VariableExpr{Name: x()}, "x"},
		"Group":    {&GroupingExpr{Expr: one()}, "(group 1)"},
		"Unary":    {&UnaryExpr{Op: Token{Kind: Minus, Lexeme: "-"}, Right: one()}, "(- 1)"},
		"Binary":   {&BinaryExpr{Left: one(), Op: Token{Kind: Plus, Lexeme: "+"}, Right: two()}, "(+ 1 2)"},
		"Logical":  {&LogicalExpr{Left: one(), Op: Token{Kind: Or, Lexeme: "or"}, Right: two()}, "(or 1 2)"},
		"Ternary":  {&TernaryExpr{Op: Token{Kind: Question, Lexeme: "?"}, Cond: &VariableExpr{Name: x()}, Then: one(), Else: two()}, "(? x 1 2)"},
		"Assign":   {&AssignExpr{Name: x(), Value: one()}, "(= x 1)"},
		"Call":     {&CallExpr{Callee: &VariableExpr{Name: x()}, Args: []Expr{one(), two()}}, "(call x 1 2)"},
		"CallNone": {&CallExpr{Callee: &VariableExpr{Name: x()}}, "(call x)"},
		"Nested": {
			e: &BinaryExpr{
				Left:  &UnaryExpr{Op: Token{Kind: Minus, Lexeme: "-"}, Right: one()},
				Op:    Token{Kind: Star, Lexeme: "*"},
				Right: &GroupingExpr{Expr: two()},
			},
			want: "(* (- 1) (group 2))",
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if have := SprintExpr(c.e); have != c.want {
				t.Errorf("wrong rendering: want %s, have %s", c.want, have)
			}
		})
	}
}

// TestSprintStmt tests the rendering of hand-built statements.
func TestSprintStmt(t *testing.T) {
	one := func() Expr { return &LiteralExpr{Value: Number(1)} }
	x := func() Token { return Token{Kind: Identifier, Lexeme: "x"} }
	cases := map[string]struct {
		s    Stmt
		want string
	}{
		"Print":      {&PrintStmt{Expr: one()}, "(print 1)"},
		"Expr":       {&ExprStmt{Expr: one()}, "(expr 1)"},
		"Var":        {&VarStmt{Name: x(), Init: one()}, "(var x 1)"},
		"VarNoInit":  {&VarStmt{Name: x()}, "(var x)"},
		"Block":      {&BlockStmt{Stmts: []Stmt{&PrintStmt{Expr: one()}}}, "(block (print 1))"},
		"EmptyBlock": {&BlockStmt{}, "(block)"},
		"If":         {&IfStmt{Cond: one(), Then: &BreakStmt{}}, "(if 1 (break))"},
		"IfElse":     {&IfStmt{Cond: one(), Then: &BreakStmt{}, Else: &PrintStmt{Expr: one()}}, "(if 1 (break) (print 1))"},
		"While":      {&WhileStmt{Cond: one(), Body: &BreakStmt{}}, "(while 1 (break))"},
		"Return":     {&ReturnStmt{Value: one()}, "(return 1)"},
		"BareReturn": {&ReturnStmt{}, "(return)"},
		"Fun": {
			s: &FunctionStmt{
				Name:   Token{Kind: Identifier, Lexeme: "f"},
				Params: []Token{{Kind: Identifier, Lexeme: "a"}, {Kind: Identifier, Lexeme: "b"}},
				Body:   []Stmt{&ReturnStmt{Value: one()}},
			},
			want: "(fun f (a b) (return 1))",
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if have := SprintStmt(c.s); have != c.want {
				t.Errorf("wrong rendering: want %s, have %s", c.want, have)
			}
		})
	}
}

// TestSprint tests that programs render one statement per line.
func TestSprint(t *testing.T) {
	stmts := []Stmt{
		&VarStmt{Name: Token{Kind: Identifier, Lexeme: "x"}, Init: &LiteralExpr{Value: Number(1)}},
		&PrintStmt{Expr: &VariableExpr{Name: Token{Kind: Identifier, Lexeme: "x"}}},
	}
	want := "(var x 1)\n(print x)"
	if have := Sprint(stmts); have != want {
		t.Errorf("wrong rendering: want %q, have %q", want, have)
	}
	if have := Sprint(nil); have != "" {
		t.Errorf("empty program rendered as %q", have)
	}
}
