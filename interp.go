package rlox

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrStatic indicates that a program did not run because scanning, parsing,
// or checking reported errors. The diagnostics themselves have already gone
// to the interpreter's error output.
var ErrStatic = errors.New("static errors reported")

// Interp is an interpreter. Its zero value is not meaningful; use New.
//
// An Interp retains its global environment between calls to Run, so a
// driver can feed it one line at a time and definitions persist.
type Interp struct {
	// globals is the outermost environment, holding builtins and
	// top-level definitions.
	globals *Env
	// env is the environment of the statement currently executing.
	env *Env
	// out receives print output.
	out io.Writer
	// errOut receives diagnostics and runtime errors.
	errOut io.Writer
	// start is the interpreter's creation time, the epoch for clock.
	start time.Time
}

// An Option configures an interpreter.
type Option func(*Interp)

// WithOutput sets the writer that receives print output. The default is
// standard output.
func WithOutput(w io.Writer) Option {
	return func(in *Interp) { in.out = w }
}

// WithErrorOutput sets the writer that receives diagnostics and runtime
// errors. The default is standard error.
func WithErrorOutput(w io.Writer) Option {
	return func(in *Interp) { in.errOut = w }
}

// New creates an interpreter with the builtin functions defined in its
// global environment.
func New(opts ...Option) *Interp {
	globals := NewEnv(nil)
	in := &Interp{
		globals: globals,
		env:     globals,
		out:     os.Stdout,
		errOut:  os.Stderr,
		start:   time.Now(),
	}
	for _, fn := range builtins() {
		globals.Define(fn.name, fn)
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run scans, parses, checks, and executes a program. If any stage before
// execution reports errors, every diagnostic goes to the error output, no
// statement executes, and Run returns ErrStatic. If execution raises a
// runtime error, it goes to the error output and Run returns it.
// Definitions made by the program persist in the interpreter's global
// environment.
func (in *Interp) Run(source string) error {
	rep := NewReporter(in.errOut)
	tokens := Scan(source, rep)
	stmts := Parse(tokens, rep)
	Check(stmts, rep)
	if rep.HadError() {
		return ErrStatic
	}
	for _, s := range stmts {
		_, stop, err := in.exec(s)
		if err != nil {
			fmt.Fprintln(in.errOut, err)
			return err
		}
		if stop != NoStop {
			// The checker rejects break and return at the top level.
			panic(fmt.Sprintf("rlox: %v control flow escaped the program", stop))
		}
	}
	return nil
}

// exec executes one statement. The returned Value is meaningful only when
// the Stop is ReturnStop, where it is the value being returned.
func (in *Interp) exec(s Stmt) (Value, Stop, error) {
	switch s := s.(type) {
	case *PrintStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return nil, NoStop, err
		}
		fmt.Fprintln(in.out, Display(v))
		return nil, NoStop, nil
	case *ExprStmt:
		_, err := in.eval(s.Expr)
		return nil, NoStop, err
	case *VarStmt:
		var v Value
		if s.Init != nil {
			var err error
			if v, err = in.eval(s.Init); err != nil {
				return nil, NoStop, err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil, NoStop, nil
	case *BlockStmt:
		return in.execBlock(s.Stmts, NewEnv(in.env))
	case *IfStmt:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return nil, NoStop, err
		}
		if Truthy(cond) {
			return in.exec(s.Then)
		}
		if s.Else != nil {
			return in.exec(s.Else)
		}
		return nil, NoStop, nil
	case *WhileStmt:
		return in.execWhile(s)
	case *BreakStmt:
		return nil, BreakStop, nil
	case *FunctionStmt:
		in.env.Define(s.Name.Lexeme, &Function{decl: s, closure: in.env})
		return nil, NoStop, nil
	case *ReturnStmt:
		v := Value(Nil{})
		if s.Value != nil {
			var err error
			if v, err = in.eval(s.Value); err != nil {
				return nil, NoStop, err
			}
		}
		return v, ReturnStop, nil
	default:
		panic(fmt.Sprintf("rlox: unknown statement %T", s))
	}
}

// execWhile executes a while loop. Break stops the loop and is absorbed;
// return propagates out of it.
func (in *Interp) execWhile(s *WhileStmt) (Value, Stop, error) {
	for {
		cond, err := in.eval(s.Cond)
		if err != nil {
			return nil, NoStop, err
		}
		if !Truthy(cond) {
			return nil, NoStop, nil
		}
		v, stop, err := in.exec(s.Body)
		if err != nil {
			return nil, NoStop, err
		}
		switch stop {
		case NoStop:
			// continue looping
		case BreakStop:
			return nil, NoStop, nil
		case ReturnStop:
			return v, ReturnStop, nil
		default:
			panic(fmt.Sprintf("rlox: invalid Stop: %v", stop))
		}
	}
}

// execBlock executes statements in the given environment, restoring the
// previous environment when it finishes.
func (in *Interp) execBlock(stmts []Stmt, env *Env) (Value, Stop, error) {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()
	for _, s := range stmts {
		v, stop, err := in.exec(s)
		if err != nil || stop != NoStop {
			return v, stop, err
		}
	}
	return nil, NoStop, nil
}

// eval evaluates one expression.
func (in *Interp) eval(e Expr) (Value, error) {
	switch e := e.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *GroupingExpr:
		return in.eval(e.Expr)
	case *UnaryExpr:
		return in.evalUnary(e)
	case *BinaryExpr:
		return in.evalBinary(e)
	case *LogicalExpr:
		return in.evalLogical(e)
	case *TernaryExpr:
		cond, err := in.eval(e.Cond)
		if err != nil {
			return nil, err
		}
		if Truthy(cond) {
			return in.eval(e.Then)
		}
		return in.eval(e.Else)
	case *VariableExpr:
		return in.lookup(e.Name)
	case *AssignExpr:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if !in.env.Assign(e.Name.Lexeme, v) {
			return nil, runtimeError(e.Name, "Undefined variable")
		}
		return v, nil
	case *CallExpr:
		return in.evalCall(e)
	default:
		panic(fmt.Sprintf("rlox: unknown expression %T", e))
	}
}

// lookup resolves a variable reference. Referencing a name that is not
// defined, or one declared without an initializer and not yet assigned, is
// a runtime error.
func (in *Interp) lookup(name Token) (Value, error) {
	v, defined, initialized := in.env.Get(name.Lexeme)
	if !defined {
		return nil, runtimeError(name, "Undefined variable")
	}
	if !initialized {
		return nil, runtimeError(name, "Uninitialized variable")
	}
	return v, nil
}

func (in *Interp) evalUnary(e *UnaryExpr) (Value, error) {
	v, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case Minus:
		n, err := asNumber(v, e.Op)
		if err != nil {
			return nil, err
		}
		return Number(-n), nil
	case Bang:
		return Boolean(!Truthy(v)), nil
	default:
		panic(fmt.Sprintf("rlox: invalid unary operator %v", e.Op.Kind))
	}
}

// evalBinary evaluates a binary expression. Both operands evaluate, left
// first, before the operator applies.
func (in *Interp) evalBinary(e *BinaryExpr) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case Comma:
		return right, nil
	case EqualEqual:
		return Boolean(valuesEqual(left, right)), nil
	case BangEqual:
		return Boolean(!valuesEqual(left, right)), nil
	case Plus:
		if l, ok := left.(Number); ok {
			if r, ok := right.(Number); ok {
				return l + r, nil
			}
		}
		return String(Display(left) + Display(right)), nil
	}
	l, err := asNumber(left, e.Op)
	if err != nil {
		return nil, err
	}
	r, err := asNumber(right, e.Op)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case Minus:
		return Number(l - r), nil
	case Slash:
		if r == 0 {
			return nil, runtimeError(e.Op, "Division by zero")
		}
		return Number(l / r), nil
	case Star:
		return Number(l * r), nil
	case Greater:
		return Boolean(l > r), nil
	case GreaterEqual:
		return Boolean(l >= r), nil
	case Less:
		return Boolean(l < r), nil
	case LessEqual:
		return Boolean(l <= r), nil
	default:
		panic(fmt.Sprintf("rlox: invalid binary operator %v", e.Op.Kind))
	}
}

// evalLogical evaluates and or or, short-circuiting. The result is an
// operand value, not a Boolean made from it.
func (in *Interp) evalLogical(e *LogicalExpr) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == Or {
		if Truthy(left) {
			return left, nil
		}
	} else {
		if !Truthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

// evalCall evaluates the callee and requires it to be callable before any
// argument evaluates, then evaluates the arguments left to right and
// invokes it.
func (in *Interp) evalCall(e *CallExpr) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeError(e.Paren, "Can only call functions")
	}
	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if len(args) != fn.Arity() {
		return nil, runtimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d", fn.Arity(), len(args)))
	}
	v, err := fn.Call(in, args)
	if err != nil {
		var rerr *RuntimeError
		if !errors.As(err, &rerr) {
			// A builtin failed with a plain error. Attribute it to the
			// call site.
			return nil, runtimeError(e.Paren, err.Error())
		}
		return nil, err
	}
	return v, nil
}

// asNumber returns v as a float64, or a runtime error against op if v is
// not a Number.
func asNumber(v Value, op Token) (float64, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, runtimeError(op, "Expected number")
	}
	return float64(n), nil
}
