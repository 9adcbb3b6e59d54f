package rlox

import (
	"fmt"
	"strconv"
)

// A Value is a runtime value: a number, string, boolean, nil, or callable.
// Values are immutable; assignment rebinds variables rather than modifying
// values.
type Value interface {
	value()
}

// Number is a numeric value. All rlox numbers are float64.
type Number float64

// String is a string value.
type String string

// Boolean is a boolean value.
type Boolean bool

// Nil is the nil value.
type Nil struct{}

func (Number) value()  {}
func (String) value()  {}
func (Boolean) value() {}
func (Nil) value()     {}

// Truthy reports whether a value is true in a conditional context. Nil and
// false are falsy; every other value, including 0 and the empty string, is
// truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// valuesEqual reports whether two values are equal. Values of different
// kinds are never equal; there is no coercion. Callables are equal only to
// themselves.
func valuesEqual(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		return a == b
	}
}

// Display returns the display form of a value, as written by print and used
// by string concatenation. Numbers render in their shortest decimal form, so
// Number(7) displays as "7" and Number(0.5) as "0.5".
func Display(v Value) string {
	switch v := v.(type) {
	case Number:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case String:
		return string(v)
	case Boolean:
		return strconv.FormatBool(bool(v))
	case Nil:
		return "nil"
	case *Function:
		return "<fn " + v.Name() + ">"
	case *Builtin:
		return "<native " + v.Name() + ">"
	}
	panic(fmt.Sprintf("rlox: unknown value type %T", v))
}
