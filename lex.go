package rlox

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// lexFn is a lexer state function. Each lexFn scans a token, sends it on the
// supplied channel, and returns the next lexFn to use along with the current
// line.
type lexFn func(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int)

// lex converts a source into a stream of tokens. The stream always ends with
// an Eof token, after which the channel is closed.
func lex(src *bufio.Reader, tokens chan<- Token) {
	state, line := lexFn(eatSpace), 1
	for state != nil {
		state, line = state(src, tokens, line)
	}
	tokens <- Token{Kind: Eof, Line: line}
	close(tokens)
}

// Scan converts source text into a token sequence, reporting lexical errors
// to rep and dropping them from the result. The result always ends with an
// Eof token.
func Scan(source string, rep *Reporter) []Token {
	tokens := make(chan Token)
	go lex(bufio.NewReader(strings.NewReader(source)), tokens)
	var ts []Token
	for tok := range tokens {
		if tok.Kind == Bad {
			rep.Error(tok.Line, tok.Err.Error())
			continue
		}
		ts = append(ts, tok)
	}
	return ts
}

// accept appends the next run of characters in src which satisfy the
// predicate to b. Returns b after appending, the first rune which did not
// satisfy the predicate, and any error that occurred. If there was no such
// error, the last rune is unread.
func accept(src *bufio.Reader, predicate func(rune) bool, b []byte) ([]byte, rune, error) {
	r, _, err := src.ReadRune()
	for {
		if err != nil {
			return b, r, err
		}
		if !predicate(r) {
			break
		}
		b = append(b, string(r)...)
		r, _, err = src.ReadRune()
	}
	src.UnreadRune()
	return b, r, nil
}

// lexsend is a shortcut for sending a token with error checking. It returns
// eatSpace as the default lexing function.
func lexsend(err error, tokens chan<- Token, good Token) lexFn {
	if err != nil && err != io.EOF {
		good.Kind = Bad
		good.Err = err
	}
	tokens <- good
	if err != nil {
		return nil
	}
	return eatSpace
}

// eatSpace consumes space and decides the next lexFn to use, scanning
// single-character tokens itself. Unexpected characters are reported and
// skipped, and scanning continues.
func eatSpace(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	_, r, err := accept(src, func(r rune) bool { return strings.ContainsRune(" \r\t", r) }, nil)
	if err != nil {
		return nil, line
	}
	switch {
	case r == '\n':
		src.ReadRune()
		return eatSpace, line + 1
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', r == '_':
		return lexIdent, line
	case '0' <= r && r <= '9':
		return lexNumber, line
	case r == '"':
		return lexString, line
	case r == '/':
		return lexSlash, line
	case r == '!', r == '=', r == '<', r == '>':
		return lexOperator, line
	}
	if kind, ok := punct[r]; ok {
		src.ReadRune()
		return lexsend(nil, tokens, Token{Kind: kind, Lexeme: string(r), Line: line}), line
	}
	src.ReadRune()
	tokens <- Token{
		Kind:   Bad,
		Lexeme: string(r),
		Err:    errors.New("Unexpected character."),
		Line:   line,
	}
	return eatSpace, line
}

// lexIdent lexes an identifier or keyword, which consists of a-z, A-Z, 0-9,
// and _. Reserved words take their kinds from the keyword table; true,
// false, and nil become Literal tokens carrying their values.
func lexIdent(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	b, _, err := accept(src, func(r rune) bool {
		return 'a' <= r && r <= 'z' ||
			'A' <= r && r <= 'Z' ||
			'0' <= r && r <= '9' ||
			r == '_'
	}, nil)
	tok := Token{Kind: Identifier, Lexeme: string(b), Line: line}
	if kw, ok := keywords[tok.Lexeme]; ok {
		tok.Kind = kw.Kind
		tok.Value = kw.Value
	}
	return lexsend(err, tokens, tok), line
}

// lexOperator lexes an operator that may be followed by an equals sign to
// form a two-character operator.
func lexOperator(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	r, _, _ := src.ReadRune()
	kinds := operatorPairs[r]
	peek, err := src.Peek(1)
	if err == nil && peek[0] == '=' {
		src.ReadRune()
		return lexsend(nil, tokens, Token{Kind: kinds[1], Lexeme: string(r) + "=", Line: line}), line
	}
	return lexsend(err, tokens, Token{Kind: kinds[0], Lexeme: string(r), Line: line}), line
}

// lexSlash lexes a slash, which may instead begin a line or block comment.
func lexSlash(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	src.ReadRune()
	peek, err := src.Peek(1)
	if err == nil {
		switch peek[0] {
		case '/':
			return lexLineComment, line
		case '*':
			src.ReadRune()
			return lexBlockComment(src, tokens, line)
		}
	}
	return lexsend(err, tokens, Token{Kind: Slash, Lexeme: "/", Line: line}), line
}

// lexLineComment consumes a // comment. Comments produce no tokens. The
// terminating newline is left for eatSpace to count.
func lexLineComment(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	_, _, err := accept(src, func(r rune) bool { return r != '\n' }, nil)
	if err != nil {
		return nil, line
	}
	return eatSpace, line
}

// lexBlockComment consumes a /* */ comment, which may nest. An unclosed
// comment is reported at the line where input ended; the remaining input is
// already exhausted, so scanning ends.
func lexBlockComment(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	var pr rune
	depth := 1
	nline := line
	pred := func(r rune) bool {
		if pr == '*' && r == '/' {
			depth--
			if depth <= 0 {
				return false
			}
			r = 0 // delimiters do not overlap
		} else if pr == '/' && r == '*' {
			depth++
			r = 0
		} else if r == '\n' {
			nline++
		}
		pr = r
		return true
	}
	_, _, err := accept(src, pred, nil)
	if err != nil {
		tokens <- Token{Kind: Bad, Err: errors.New("Unclosed block comment."), Line: nline}
		return nil, nline
	}
	src.ReadRune() // Re-read the / that accept unreads.
	return eatSpace, nline
}

// lexNumber lexes a number: a run of digits with an optional fraction. A
// trailing dot is not part of the number, so "1." lexes as a number and a
// dot.
func lexNumber(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	b, r, err := accept(src, func(r rune) bool { return '0' <= r && r <= '9' }, nil)
	if err == nil && r == '.' {
		peek, _ := src.Peek(2)
		if len(peek) > 1 && '0' <= peek[1] && peek[1] <= '9' {
			src.ReadRune()
			b = append(b, '.')
			b, _, err = accept(src, func(r rune) bool { return '0' <= r && r <= '9' }, b)
		}
	}
	lexeme := string(b)
	// A digit run can fail to parse only by exceeding float64 range, in
	// which case f is already saturated to +Inf.
	f, _ := strconv.ParseFloat(lexeme, 64)
	return lexsend(err, tokens, Token{Kind: Literal, Lexeme: lexeme, Value: Number(f), Line: line}), line
}

// lexString lexes a string literal, which may span lines and has no escape
// sequences. The token's line is the line of the closing quote. A string
// unterminated at end of input is reported and its partial text discarded.
func lexString(src *bufio.Reader, tokens chan<- Token, line int) (lexFn, int) {
	b := make([]byte, 1, 2)
	src.Read(b)
	nline := line
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			tokens <- Token{Kind: Bad, Lexeme: string(b), Err: errors.New("Unterminated string."), Line: nline}
			return nil, nline
		}
		if r == '\n' {
			nline++
		}
		b = append(b, string(r)...)
		if r == '"' {
			lexeme := string(b)
			tok := Token{Kind: Literal, Lexeme: lexeme, Value: String(lexeme[1 : len(lexeme)-1]), Line: nline}
			return lexsend(nil, tokens, tok), nline
		}
	}
}
