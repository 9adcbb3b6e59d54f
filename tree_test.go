package rlox

import (
	"fmt"
	"testing"
)

// TestWalkOrder tests that Walk visits parents before children, left to
// right.
func TestWalkOrder(t *testing.T) {
	stmts, rep, diags := parse(t, "print 1 + x;")
	if rep.HadError() {
		t.Fatalf("failed to parse:\n%s", diags)
	}
	var order []string
	Walk(stmts, func(node interface{}) bool {
		order = append(order, fmt.Sprintf("%T", node))
		return true
	})
	want := []string{"*rlox.PrintStmt", "*rlox.BinaryExpr", "*rlox.LiteralExpr", "*rlox.VariableExpr"}
	if len(order) != len(want) {
		t.Fatalf("wrong number of nodes visited: want %v, have %v", want, order)
	}
	for i, name := range order {
		if name != want[i] {
			t.Errorf("wrong node %d: want %v, have %v", i, want[i], name)
		}
	}
}

// TestWalkPrune tests that returning false stops descent into a node's
// children without stopping the walk.
func TestWalkPrune(t *testing.T) {
	stmts, rep, diags := parse(t, "print 1 + 2; print 3;")
	if rep.HadError() {
		t.Fatalf("failed to parse:\n%s", diags)
	}
	var order []string
	Walk(stmts, func(node interface{}) bool {
		order = append(order, fmt.Sprintf("%T", node))
		_, prune := node.(*BinaryExpr)
		return !prune
	})
	want := []string{"*rlox.PrintStmt", "*rlox.BinaryExpr", "*rlox.PrintStmt", "*rlox.LiteralExpr"}
	if len(order) != len(want) {
		t.Fatalf("wrong number of nodes visited: want %v, have %v", want, order)
	}
	for i, name := range order {
		if name != want[i] {
			t.Errorf("wrong node %d: want %v, have %v", i, want[i], name)
		}
	}
}

// TestCheckTree tests that parsed programs are proper trees and that trees
// with shared nodes are detected.
func TestCheckTree(t *testing.T) {
	sources := map[string]string{
		"Expressions": "1 + 2 * 3 == 4 ? a : !b;",
		"Declaration": "var x = 1, 2;",
		"Control":     "for (var i = 0; i < 3; i = i + 1) { if (i == 1) break; print i; }",
		"Functions":   "fun f(a) { return a; } print f(1);",
	}
	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			stmts, rep, diags := parse(t, source)
			if rep.HadError() {
				t.Fatalf("failed to parse:\n%s", diags)
			}
			if err := CheckTree(stmts); err != nil {
				t.Errorf("%q parsed to an improper tree: %v", source, err)
			}
		})
	}

	shared := &LiteralExpr{Value: Number(1)}
	improper := map[string][]Stmt{
		"SharedAcrossStmts": {&PrintStmt{Expr: shared}, &PrintStmt{Expr: shared}},
		"SharedOperands": {&ExprStmt{Expr: &BinaryExpr{
			Left:  shared,
			Op:    Token{Kind: Plus, Lexeme: "+"},
			Right: shared,
		}}},
	}
	for name, stmts := range improper {
		t.Run(name, func(t *testing.T) {
			if err := CheckTree(stmts); err == nil {
				t.Error("shared node not detected")
			}
		})
	}
}
