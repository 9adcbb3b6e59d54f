package rlox

import "fmt"

// A Token is a single lexical element: its kind, the exact source text it
// was scanned from, and the line it appeared on.
type Token struct {
	Kind   TokenKind
	Lexeme string
	// Value is the value a Literal token carries. It is nil for every other
	// kind.
	Value Value
	Line  int
	// Err is the reason a Bad token could not be scanned. It is nil for
	// every other kind.
	Err error
}

// TokenKind classifies a token.
type TokenKind int

// Token kinds.
const (
	// Bad marks a token the lexer could not scan. The scan driver reports
	// Bad tokens as diagnostics and drops them from the token sequence.
	Bad TokenKind = iota

	// Single-character tokens.
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Question
	Colon

	// One- or two-character operators.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Identifier is a name that is not a reserved word.
	Identifier
	// Literal is a number, string, boolean, or nil literal. The token
	// carries its value directly.
	Literal

	// Keywords.
	And
	Break
	Class
	Else
	For
	Fun
	If
	Or
	Print
	Return
	Super
	This
	Var
	While

	// Eof marks the end of the token sequence. Scan always emits exactly
	// one, last.
	Eof
)

var kindNames = [...]string{
	"Bad",
	"LeftParen", "RightParen", "LeftBrace", "RightBrace",
	"Comma", "Dot", "Minus", "Plus", "Semicolon", "Slash", "Star",
	"Question", "Colon",
	"Bang", "BangEqual", "Equal", "EqualEqual",
	"Greater", "GreaterEqual", "Less", "LessEqual",
	"Identifier", "Literal",
	"And", "Break", "Class", "Else", "For", "Fun", "If", "Or",
	"Print", "Return", "Super", "This", "Var", "While",
	"Eof",
}

func (k TokenKind) String() string {
	if k < Bad || k > Eof {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return kindNames[k]
}

// keywords is the fixed table of reserved words, constructed once and
// read-only thereafter. true, false, and nil lex as Literal tokens carrying
// their values; the lexer copies the table entry's kind and value into the
// token it emits.
var keywords = map[string]Token{
	"and":    {Kind: And},
	"break":  {Kind: Break},
	"class":  {Kind: Class},
	"else":   {Kind: Else},
	"false":  {Kind: Literal, Value: Boolean(false)},
	"for":    {Kind: For},
	"fun":    {Kind: Fun},
	"if":     {Kind: If},
	"nil":    {Kind: Literal, Value: Nil{}},
	"or":     {Kind: Or},
	"print":  {Kind: Print},
	"return": {Kind: Return},
	"super":  {Kind: Super},
	"this":   {Kind: This},
	"true":   {Kind: Literal, Value: Boolean(true)},
	"var":    {Kind: Var},
	"while":  {Kind: While},
}

// punct maps single-character tokens to their kinds.
var punct = map[rune]TokenKind{
	'(': LeftParen,
	')': RightParen,
	'{': LeftBrace,
	'}': RightBrace,
	',': Comma,
	'.': Dot,
	'-': Minus,
	'+': Plus,
	';': Semicolon,
	'*': Star,
	'?': Question,
	':': Colon,
}

// operatorPairs maps the characters that begin one- or two-character
// operators to the kinds for the bare character and for the character
// followed by an equals sign.
var operatorPairs = map[rune][2]TokenKind{
	'!': {Bang, BangEqual},
	'=': {Equal, EqualEqual},
	'<': {Less, LessEqual},
	'>': {Greater, GreaterEqual},
}
