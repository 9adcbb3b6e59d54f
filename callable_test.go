package rlox

import (
	"testing"
)

// TestBuiltins tests that every builtin is defined in a new interpreter's
// globals under its own name.
func TestBuiltins(t *testing.T) {
	in, _, _ := testInterp()
	want := map[string]int{"clock": 0, "date": 1}
	fns := builtins()
	if len(fns) != len(want) {
		t.Errorf("wrong number of builtins: want %d, have %d", len(want), len(fns))
	}
	for _, fn := range fns {
		arity, ok := want[fn.Name()]
		if !ok {
			t.Errorf("unexpected builtin %s", fn.Name())
			continue
		}
		if fn.Arity() != arity {
			t.Errorf("wrong arity for %s: want %d, have %d", fn.Name(), arity, fn.Arity())
		}
		v, defined, initialized := in.globals.Get(fn.Name())
		if !defined || !initialized {
			t.Errorf("builtin %s not defined in globals", fn.Name())
			continue
		}
		if _, ok := v.(Callable); !ok {
			t.Errorf("builtin %s bound to non-callable %#v", fn.Name(), v)
		}
	}
}

// TestClock tests that clock returns nonnegative, nondecreasing seconds.
func TestClock(t *testing.T) {
	in, _, _ := testInterp()
	v, _, _ := in.globals.Get("clock")
	fn := v.(Callable)
	a, err := fn.Call(in, nil)
	if err != nil {
		t.Fatalf("clock failed: %v", err)
	}
	b, err := fn.Call(in, nil)
	if err != nil {
		t.Fatalf("clock failed: %v", err)
	}
	x, ok := a.(Number)
	if !ok {
		t.Fatalf("clock returned non-number %#v", a)
	}
	y := b.(Number)
	if x < 0 {
		t.Errorf("clock went negative: %v", x)
	}
	if y < x {
		t.Errorf("clock went backward: %v then %v", x, y)
	}
}

// TestDate tests the date builtin's formatting and its argument check.
func TestDate(t *testing.T) {
	in, _, _ := testInterp()
	v, _, _ := in.globals.Get("date")
	fn := v.(Callable)
	r, err := fn.Call(in, []Value{String("%Y")})
	if err != nil {
		t.Fatalf("date failed: %v", err)
	}
	s, ok := r.(String)
	if !ok {
		t.Fatalf("date returned non-string %#v", r)
	}
	if len(s) != 4 {
		t.Errorf("wrong year from date: %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Errorf("year contains non-digit: %q", s)
			break
		}
	}
	if _, err := fn.Call(in, []Value{Number(1)}); err == nil {
		t.Error("date accepted a number format")
	} else if err.Error() != "Expected String" {
		t.Errorf("wrong error from date: want %q, have %q", "Expected String", err.Error())
	}
}

// TestFunctionCall tests calling a declared function directly: parameter
// binding, the explicit return value, and the implicit nil.
func TestFunctionCall(t *testing.T) {
	in, _, _ := testInterp()
	stmts, rep, diags := parse(t, "fun id(a) { return a; }\nfun effect() { print 1; }")
	if rep.HadError() {
		t.Fatalf("failed to parse:\n%s", diags)
	}
	id := &Function{decl: stmts[0].(*FunctionStmt), closure: in.globals}
	if id.Name() != "id" {
		t.Errorf("wrong name: want %q, have %q", "id", id.Name())
	}
	if id.Arity() != 1 {
		t.Errorf("wrong arity: want 1, have %d", id.Arity())
	}
	v, err := id.Call(in, []Value{String("through")})
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if v != String("through") {
		t.Errorf("wrong result: want %q, have %v", "through", v)
	}

	effect := &Function{decl: stmts[1].(*FunctionStmt), closure: in.globals}
	if effect.Arity() != 0 {
		t.Errorf("wrong arity: want 0, have %d", effect.Arity())
	}
	v, err = effect.Call(in, nil)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if v != (Nil{}) {
		t.Errorf("wrong implicit result: want nil, have %#v", v)
	}
}

// TestFunctionScope tests that parameters bind in a scope descending from
// the closure, not from the caller.
func TestFunctionScope(t *testing.T) {
	in, out, _ := testInterp()
	source := `var a = "global";
fun show() { print a; }
{
	var a = "local";
	show();
}`
	if err := in.Run(source); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if want := "global\n"; out.String() != want {
		t.Errorf("wrong output: want %q, have %q", want, out.String())
	}
}
