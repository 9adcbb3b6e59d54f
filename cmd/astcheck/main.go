// Command astcheck reports type switches over Expr or Stmt that do not
// cover every node type, which otherwise surface as panics at run time
// after a new node type is added.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var path string
	flag.StringVar(&path, "pkg", "github.com/2over12/rlox", "import path for the package defining Expr and Stmt")
	flag.Parse()

	fset := token.NewFileSet()
	config := packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedImports,
		Fset: fset,
	}
	pkgs, err := packages.Load(&config, append([]string{path}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}
	if len(pkgs) == 0 {
		fail("no packages matched", path)
	}
	node := pkgs[0].Types
	exprType, exprs := nodeTypes(node, "Expr")
	stmtType, stmts := nodeTypes(node, "Stmt")

	bad := 0
	for _, pkg := range pkgs {
		info := pkg.TypesInfo
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				sw, ok := n.(*ast.TypeSwitchStmt)
				if !ok {
					return true
				}
				tag := switchTag(info, sw)
				if tag == nil {
					return true
				}
				var nodes map[string]types.Type
				var kind string
				switch {
				case types.Identical(tag, exprType):
					nodes, kind = exprs, "Expr"
				case types.Identical(tag, stmtType):
					nodes, kind = stmts, "Stmt"
				default:
					return true
				}
				missing := uncovered(info, sw, nodes)
				if len(missing) > 0 {
					fmt.Printf("%s: switch over %s misses %s\n", fset.Position(sw.Pos()), kind, strings.Join(missing, ", "))
					bad++
				}
				return true
			})
		}
	}
	if bad > 0 {
		os.Exit(1)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// nodeTypes returns the named interface type called name and the types in
// pkg implementing it, keyed by their printed names.
func nodeTypes(pkg *types.Package, name string) (types.Type, map[string]types.Type) {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		fail(pkg.Name(), "has no definition of", name)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		fail(pkg.Name(), "has incorrect definition of", name+":", obj)
	}
	iface, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		fail(pkg.Name(), "defines", name, "as a non-interface type")
	}
	m := map[string]types.Type{}
	scope := pkg.Scope()
	for _, nm := range scope.Names() {
		t, ok := scope.Lookup(nm).(*types.TypeName)
		if !ok || t == tn {
			continue
		}
		if types.Implements(t.Type(), iface) {
			m[nm] = t.Type()
		} else if p := types.NewPointer(t.Type()); types.Implements(p, iface) {
			m["*"+nm] = p
		}
	}
	return tn.Type(), m
}

// switchTag returns the type of the expression a type switch switches on,
// or nil if the statement has an unexpected shape.
func switchTag(info *types.Info, sw *ast.TypeSwitchStmt) types.Type {
	var assert *ast.TypeAssertExpr
	switch s := sw.Assign.(type) {
	case *ast.ExprStmt:
		assert, _ = s.X.(*ast.TypeAssertExpr)
	case *ast.AssignStmt:
		assert, _ = s.Rhs[0].(*ast.TypeAssertExpr)
	}
	if assert == nil {
		return nil
	}
	return info.TypeOf(assert.X)
}

// uncovered returns the sorted names of types in nodes that no case of the
// switch mentions.
func uncovered(info *types.Info, sw *ast.TypeSwitchStmt, nodes map[string]types.Type) []string {
	covered := make(map[string]bool, len(nodes))
	for _, clause := range sw.Body.List {
		cc := clause.(*ast.CaseClause)
		for _, e := range cc.List {
			ct := info.TypeOf(e)
			for name, t := range nodes {
				if types.Identical(ct, t) {
					covered[name] = true
				}
			}
		}
	}
	var missing []string
	for name := range nodes {
		if !covered[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
