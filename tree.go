package rlox

import (
	"fmt"

	"github.com/zephyrtronium/contains"
)

// Walk visits every node of a statement list in depth-first order, parents
// before children. Each node passed to visit is an Expr or a Stmt. If visit
// returns false, Walk does not descend into that node's children.
func Walk(stmts []Stmt, visit func(node interface{}) bool) {
	for _, s := range stmts {
		walkStmt(s, visit)
	}
}

func walkStmt(s Stmt, visit func(node interface{}) bool) {
	if !visit(s) {
		return
	}
	switch s := s.(type) {
	case *PrintStmt:
		walkExpr(s.Expr, visit)
	case *ExprStmt:
		walkExpr(s.Expr, visit)
	case *VarStmt:
		if s.Init != nil {
			walkExpr(s.Init, visit)
		}
	case *BlockStmt:
		for _, t := range s.Stmts {
			walkStmt(t, visit)
		}
	case *IfStmt:
		walkExpr(s.Cond, visit)
		walkStmt(s.Then, visit)
		if s.Else != nil {
			walkStmt(s.Else, visit)
		}
	case *WhileStmt:
		walkExpr(s.Cond, visit)
		walkStmt(s.Body, visit)
	case *BreakStmt:
		// no children
	case *FunctionStmt:
		for _, t := range s.Body {
			walkStmt(t, visit)
		}
	case *ReturnStmt:
		if s.Value != nil {
			walkExpr(s.Value, visit)
		}
	default:
		panic(fmt.Sprintf("rlox: unknown statement %T", s))
	}
}

func walkExpr(e Expr, visit func(node interface{}) bool) {
	if !visit(e) {
		return
	}
	switch e := e.(type) {
	case *LiteralExpr, *VariableExpr:
		// no children
	case *GroupingExpr:
		walkExpr(e.Expr, visit)
	case *UnaryExpr:
		walkExpr(e.Right, visit)
	case *BinaryExpr:
		walkExpr(e.Left, visit)
		walkExpr(e.Right, visit)
	case *LogicalExpr:
		walkExpr(e.Left, visit)
		walkExpr(e.Right, visit)
	case *TernaryExpr:
		walkExpr(e.Cond, visit)
		walkExpr(e.Then, visit)
		walkExpr(e.Else, visit)
	case *AssignExpr:
		walkExpr(e.Value, visit)
	case *CallExpr:
		walkExpr(e.Callee, visit)
		for _, a := range e.Args {
			walkExpr(a, visit)
		}
	default:
		panic(fmt.Sprintf("rlox: unknown expression %T", e))
	}
}

// CheckTree verifies that a statement list forms a proper tree, with no
// node reachable along two paths. The parser always produces proper trees;
// programs that construct or rewrite syntax by hand can use this to verify
// theirs before evaluating them.
func CheckTree(stmts []Stmt) error {
	seen := contains.Set{}
	var dup interface{}
	Walk(stmts, func(node interface{}) bool {
		if dup != nil {
			return false
		}
		if !seen.Add(nodeID(node)) {
			dup = node
			return false
		}
		return true
	})
	if dup != nil {
		return fmt.Errorf("%T node appears more than once", dup)
	}
	return nil
}
