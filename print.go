package rlox

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders a program in parenthesized prefix form, one line per
// top-level statement. It is a read-only consumer of the tree, useful for
// debugging parser output.
func Sprint(stmts []Stmt) string {
	var sb strings.Builder
	for i, s := range stmts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(SprintStmt(s))
	}
	return sb.String()
}

// SprintStmt renders one statement in parenthesized prefix form.
func SprintStmt(s Stmt) string {
	switch s := s.(type) {
	case *PrintStmt:
		return "(print " + SprintExpr(s.Expr) + ")"
	case *ExprStmt:
		return "(expr " + SprintExpr(s.Expr) + ")"
	case *VarStmt:
		if s.Init == nil {
			return "(var " + s.Name.Lexeme + ")"
		}
		return "(var " + s.Name.Lexeme + " " + SprintExpr(s.Init) + ")"
	case *BlockStmt:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, t := range s.Stmts {
			sb.WriteByte(' ')
			sb.WriteString(SprintStmt(t))
		}
		sb.WriteByte(')')
		return sb.String()
	case *IfStmt:
		if s.Else == nil {
			return "(if " + SprintExpr(s.Cond) + " " + SprintStmt(s.Then) + ")"
		}
		return "(if " + SprintExpr(s.Cond) + " " + SprintStmt(s.Then) + " " + SprintStmt(s.Else) + ")"
	case *WhileStmt:
		return "(while " + SprintExpr(s.Cond) + " " + SprintStmt(s.Body) + ")"
	case *BreakStmt:
		return "(break)"
	case *FunctionStmt:
		var sb strings.Builder
		sb.WriteString("(fun ")
		sb.WriteString(s.Name.Lexeme)
		sb.WriteString(" (")
		for i, p := range s.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.Lexeme)
		}
		sb.WriteByte(')')
		for _, t := range s.Body {
			sb.WriteByte(' ')
			sb.WriteString(SprintStmt(t))
		}
		sb.WriteByte(')')
		return sb.String()
	case *ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return "(return " + SprintExpr(s.Value) + ")"
	}
	panic(fmt.Sprintf("rlox: unknown statement %T", s))
}

// SprintExpr renders one expression in parenthesized prefix form, with the
// operator first: 2 + 2 renders as (+ 2 2). String literals render quoted
// to keep them apart from identifiers.
func SprintExpr(e Expr) string {
	switch e := e.(type) {
	case *LiteralExpr:
		if s, ok := e.Value.(String); ok {
			return strconv.Quote(string(s))
		}
		return Display(e.Value)
	case *GroupingExpr:
		return parenthesize("group", e.Expr)
	case *UnaryExpr:
		return parenthesize(e.Op.Lexeme, e.Right)
	case *BinaryExpr:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		return parenthesize(e.Op.Lexeme, e.Left, e.Right)
	case *TernaryExpr:
		return parenthesize("?", e.Cond, e.Then, e.Else)
	case *VariableExpr:
		return e.Name.Lexeme
	case *AssignExpr:
		return "(= " + e.Name.Lexeme + " " + SprintExpr(e.Value) + ")"
	case *CallExpr:
		return parenthesize("call", append([]Expr{e.Callee}, e.Args...)...)
	}
	panic(fmt.Sprintf("rlox: unknown expression %T", e))
}

func parenthesize(name string, parts ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, p := range parts {
		sb.WriteByte(' ')
		sb.WriteString(SprintExpr(p))
	}
	sb.WriteByte(')')
	return sb.String()
}
