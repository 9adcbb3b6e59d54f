package rlox

import "fmt"

// Check validates statement contexts before evaluation: break must appear
// inside a loop body and return inside a function body. Every violation in
// the program is reported to rep.
func Check(stmts []Stmt, rep *Reporter) {
	c := &checker{rep: rep}
	for _, s := range stmts {
		c.stmt(s, context{})
	}
}

type checker struct {
	rep *Reporter
}

// context records which constructs enclose the statement being checked. It
// is passed by value so entering a construct never affects its siblings.
type context struct {
	inLoop     bool
	inFunction bool
}

func (c *checker) stmt(s Stmt, ctx context) {
	switch s := s.(type) {
	case *PrintStmt, *ExprStmt, *VarStmt:
		// Expressions contain no statements.
	case *BlockStmt:
		for _, t := range s.Stmts {
			c.stmt(t, ctx)
		}
	case *IfStmt:
		c.stmt(s.Then, ctx)
		if s.Else != nil {
			c.stmt(s.Else, ctx)
		}
	case *WhileStmt:
		ctx.inLoop = true
		c.stmt(s.Body, ctx)
	case *FunctionStmt:
		// A function body is a fresh context. A loop around the
		// declaration cannot be broken from inside the function.
		ctx.inLoop = false
		ctx.inFunction = true
		for _, t := range s.Body {
			c.stmt(t, ctx)
		}
	case *BreakStmt:
		if !ctx.inLoop {
			c.rep.Error(s.Keyword.Line, "Break found outside of loop body.")
		}
	case *ReturnStmt:
		if !ctx.inFunction {
			c.rep.Error(s.Keyword.Line, "Return found outside of function body.")
		}
	default:
		panic(fmt.Sprintf("rlox: unknown statement %T", s))
	}
}
