// Package testutils provides utilities for testing rlox programs in Go.
package testutils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/2over12/rlox"
)

// A SourceTestCase is a test case containing rlox source code and a
// predicate to check the result of running it.
type SourceTestCase struct {
	// Source is the rlox source code to execute.
	Source string
	// Pass is a predicate taking the print output and the error from
	// executing Source. If Pass returns false, then the test fails.
	Pass func(output string, err error) bool
}

// TestFunc returns a test function for the test case. Each case runs in a
// fresh interpreter, so definitions do not leak between cases.
func (c SourceTestCase) TestFunc() func(*testing.T) {
	return func(t *testing.T) {
		var out, errs bytes.Buffer
		in := rlox.New(rlox.WithOutput(&out), rlox.WithErrorOutput(&errs))
		err := in.Run(c.Source)
		if !c.Pass(out.String(), err) {
			t.Errorf("%q produced wrong result; output %q, diagnostics %q, error %v", c.Source, out.String(), errs.String(), err)
		}
	}
}

// PassPrints returns a Pass function for a SourceTestCase that returns true
// iff the program succeeds and prints exactly the given lines, in order.
func PassPrints(lines ...string) func(string, error) bool {
	want := strings.Join(lines, "\n") + "\n"
	return func(output string, err error) bool {
		return err == nil && output == want
	}
}

// PassOutput returns a Pass function for a SourceTestCase that returns true
// iff the program succeeds and its print output is exactly want.
func PassOutput(want string) func(string, error) bool {
	return func(output string, err error) bool {
		return err == nil && output == want
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns
// true iff the program runs without error, regardless of output.
func PassSuccess() func(string, error) bool {
	return func(output string, err error) bool {
		return err == nil
	}
}

// PassStatic returns a Pass function for a SourceTestCase that returns true
// iff the program is rejected before execution, printing nothing.
func PassStatic() func(string, error) bool {
	return func(output string, err error) bool {
		return err == rlox.ErrStatic && output == ""
	}
}

// PassRuntime returns a Pass function for a SourceTestCase that returns
// true iff execution fails with a runtime error whose message contains
// want.
func PassRuntime(want string) func(string, error) bool {
	return func(output string, err error) bool {
		if err == nil || err == rlox.ErrStatic {
			return false
		}
		return strings.Contains(err.Error(), want)
	}
}
