package rlox

import (
	"fmt"
	"io"
)

// A Reporter is the shared diagnostic sink for the lexer, parser, and
// context checker. Each diagnostic is written to its output as it arrives,
// and the Reporter remembers that something was reported so that execution
// can be suppressed.
type Reporter struct {
	out      io.Writer
	hadError bool
}

// NewReporter creates a Reporter writing diagnostics to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Error reports a diagnostic with no location hint beyond the line.
func (rep *Reporter) Error(line int, msg string) {
	rep.Report(line, "", msg)
}

// ErrorAt reports a diagnostic against a token, deriving the location hint
// from it: "at end" for Eof, otherwise the token's lexeme.
func (rep *Reporter) ErrorAt(tok Token, msg string) {
	if tok.Kind == Eof {
		rep.Report(tok.Line, "at end", msg)
	} else {
		rep.Report(tok.Line, tok.Lexeme, msg)
	}
}

// Report reports a diagnostic. where is the location hint, which may be
// empty.
func (rep *Reporter) Report(line int, where, msg string) {
	fmt.Fprintf(rep.out, "[line %d] Error %s: %s\n", line, where, msg)
	rep.hadError = true
}

// HadError reports whether any diagnostic has been reported.
func (rep *Reporter) HadError() bool {
	return rep.hadError
}

// A RuntimeError is a failure produced by evaluating a program. It carries
// the token evaluation failed at so the report can name the offending
// lexeme and line.
type RuntimeError struct {
	Tok Token
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Error: %s, at: '%s' on line %d", e.Msg, e.Tok.Lexeme, e.Tok.Line)
}

// runtimeError creates a RuntimeError at a token.
func runtimeError(tok Token, msg string) error {
	return &RuntimeError{Tok: tok, Msg: msg}
}
