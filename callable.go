package rlox

import (
	"errors"
	"fmt"
	"time"

	"gitlab.com/variadico/lctime"
)

// A Callable is a value that can appear as the callee of a call expression.
type Callable interface {
	Value

	// Arity returns the number of arguments the callable requires.
	Arity() int
	// Call invokes the callable. Arguments are already evaluated and
	// already checked against Arity.
	Call(in *Interp, args []Value) (Value, error)
}

// Function is a function declared in the program. It closes over the
// environment where its declaration executed.
type Function struct {
	decl    *FunctionStmt
	closure *Env
}

func (f *Function) value() {}

// Name returns the name the function was declared with.
func (f *Function) Name() string {
	return f.decl.Name.Lexeme
}

// Arity returns the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.decl.Params)
}

// Call executes the function body in a new environment descending from the
// function's closure, with parameters bound to args. A function without a
// return statement yields nil.
func (f *Function) Call(in *Interp, args []Value) (Value, error) {
	env := NewEnv(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	v, stop, err := in.execBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}
	switch stop {
	case NoStop:
		return Nil{}, nil
	case ReturnStop:
		return v, nil
	default:
		panic(fmt.Sprintf("rlox: %v control flow escaped a function call", stop))
	}
}

// Builtin is a function implemented by the interpreter host.
type Builtin struct {
	name  string
	arity int
	fn    func(in *Interp, args []Value) (Value, error)
}

func (b *Builtin) value() {}

// Name returns the name the builtin is defined under.
func (b *Builtin) Name() string {
	return b.name
}

// Arity returns the number of arguments the builtin requires.
func (b *Builtin) Arity() int {
	return b.arity
}

// Call invokes the builtin's host implementation.
func (b *Builtin) Call(in *Interp, args []Value) (Value, error) {
	return b.fn(in, args)
}

// builtins returns the functions defined in the global environment of every
// interpreter.
func builtins() []*Builtin {
	return []*Builtin{
		{
			// clock returns the seconds elapsed since the interpreter
			// started, with nanosecond precision.
			name:  "clock",
			arity: 0,
			fn: func(in *Interp, args []Value) (Value, error) {
				return Number(time.Since(in.start).Seconds()), nil
			},
		},
		{
			// date formats the current time per a strftime format string
			// in the POSIX locale.
			name:  "date",
			arity: 1,
			fn: func(in *Interp, args []Value) (Value, error) {
				format, ok := args[0].(String)
				if !ok {
					return nil, errors.New("Expected String")
				}
				return String(lctime.Strftime(string(format), time.Now())), nil
			},
		},
	}
}
