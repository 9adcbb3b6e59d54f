package rlox

import "errors"

// Parse converts a token sequence into a statement list, reporting syntax
// errors to rep. After an error the parser synchronizes at the next
// statement boundary and continues, so one pass reports every independent
// error it can find. The returned statements are meaningful only if rep
// accumulated no errors, but they always form a proper tree.
func Parse(tokens []Token, rep *Reporter) []Stmt {
	p := &parser{tokens: tokens, rep: rep}
	var stmts []Stmt
	for !p.atEnd() {
		s, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, s)
	}
	return stmts
}

// parser holds parsing state: the token sequence, a cursor into it, and the
// diagnostic sink.
type parser struct {
	tokens []Token
	pos    int
	rep    *Reporter
}

// errParse unwinds a reported syntax error to a synchronization point. The
// diagnostic itself has already gone to the Reporter.
var errParse = errors.New("parse error")

// error reports a syntax error against a token and returns errParse.
func (p *parser) error(tok Token, msg string) error {
	p.rep.ErrorAt(tok, msg)
	return errParse
}

// peek returns the token under the cursor without consuming it. The Eof
// token is always present, so peek is always valid.
func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// previous returns the most recently consumed token.
func (p *parser) previous() Token {
	return p.tokens[p.pos-1]
}

// atEnd reports whether the cursor has reached the Eof token.
func (p *parser) atEnd() bool {
	return p.peek().Kind == Eof
}

// advance consumes and returns the token under the cursor. The cursor never
// moves past Eof.
func (p *parser) advance() Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// check reports whether the next token has the given kind.
func (p *parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

// match consumes the next token if its kind is one of kinds.
func (p *parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume consumes the next token, which must have the given kind, or
// reports a syntax error.
func (p *parser) consume(kind TokenKind, msg string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.error(p.peek(), msg)
}

// synchronize discards tokens until a statement boundary: just past a
// semicolon, or just before a keyword that begins a statement.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == Semicolon {
			return
		}
		switch p.peek().Kind {
		case Class, Fun, Var, For, If, While, Print, Return:
			return
		}
		p.advance()
	}
}

func (p *parser) declaration() (Stmt, error) {
	switch {
	case p.match(Var):
		return p.varDeclaration()
	case p.match(Fun):
		return p.function()
	default:
		return p.statement()
	}
}

// varDeclaration parses a var statement after its keyword. A declaration
// with no initializer leaves the variable uninitialized.
func (p *parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(Identifier, "Expected variable name.")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(Equal) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expected ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Init: init}, nil
}

// function parses a fun declaration after its keyword.
func (p *parser) function() (Stmt, error) {
	name, err := p.consume(Identifier, "Expected function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LeftParen, "Expected '(' after function name."); err != nil {
		return nil, err
	}
	var params []Token
	if !p.check(RightParen) {
		for {
			if len(params) >= 8 {
				// Advisory, like the cap at call sites.
				p.rep.ErrorAt(p.peek(), "Cannot have more than 8 parameters.")
			}
			param, err := p.consume(Identifier, "Expected parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(Comma) {
				break
			}
		}
	}
	if _, err := p.consume(RightParen, "Expected ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(LeftBrace, "Expected '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.blockStmts()
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *parser) statement() (Stmt, error) {
	switch {
	case p.match(Print):
		return p.printStatement()
	case p.match(LeftBrace):
		stmts, err := p.blockStmts()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Stmts: stmts}, nil
	case p.match(If):
		return p.ifStatement()
	case p.match(While):
		return p.whileStatement()
	case p.match(For):
		return p.forStatement()
	case p.match(Break):
		return p.breakStatement()
	case p.match(Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

// blockStmts parses declarations up to and including a closing brace.
func (p *parser) blockStmts() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(RightBrace) && !p.atEnd() {
		s, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.consume(RightBrace, "Expected '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Semicolon, "Expected ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: value}, nil
}

func (p *parser) expressionStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Semicolon, "Expected ';' after expression."); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: value}, nil
}

func (p *parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expected '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "Expected ')' after condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var els Stmt
	if p.match(Else) {
		if els, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return &IfStmt{Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expected '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "Expected ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// forStatement parses a for loop and desugars it: the initializer runs in a
// block wrapping a while loop whose body executes the original body and
// then the increment. There is no for node.
func (p *parser) forStatement() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expected '(' after 'for'."); err != nil {
		return nil, err
	}
	var init Stmt
	var err error
	switch {
	case p.match(Semicolon):
		// no initializer
	case p.match(Var):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}
	var cond Expr
	if !p.check(Semicolon) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expected ';' after loop condition."); err != nil {
		return nil, err
	}
	var incr Expr
	if !p.check(RightParen) {
		if incr, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(RightParen, "Expected ')' after for clauses."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if incr != nil {
		body = &BlockStmt{Stmts: []Stmt{body, &ExprStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &LiteralExpr{Value: Boolean(true)}
	}
	var loop Stmt = &WhileStmt{Cond: cond, Body: body}
	if init != nil {
		loop = &BlockStmt{Stmts: []Stmt{init, loop}}
	}
	return loop, nil
}

func (p *parser) breakStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(Semicolon, "Expected ';' after 'break'."); err != nil {
		return nil, err
	}
	return &BreakStmt{Keyword: keyword}, nil
}

func (p *parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	if !p.check(Semicolon) {
		var err error
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expected ';' after return value."); err != nil {
		return nil, err
	}
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

// expression parses at the lowest precedence level, comma sequencing.
func (p *parser) expression() (Expr, error) {
	return p.comma()
}

// comma parses comma sequencing, which evaluates both operands and yields
// the right one.
func (p *parser) comma() (Expr, error) {
	return p.leftAssoc(p.assignment, Comma)
}

// assignment parses an assignment. The target must be a bare variable
// reference; anything else is reported, and the already parsed expression
// stands so the rest of the statement parses normally.
func (p *parser) assignment() (Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if p.match(Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}, nil
		}
		p.rep.ErrorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

// ternary parses a conditional expression. Both branches parse at this
// level, making the operator right-associative.
func (p *parser) ternary() (Expr, error) {
	cond, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(Question) {
		return cond, nil
	}
	op := p.previous()
	then, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Colon, "Expected ':' after expression."); err != nil {
		return nil, err
	}
	els, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return &TernaryExpr{Op: op, Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) or() (Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *parser) and() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *parser) equality() (Expr, error) {
	return p.leftAssoc(p.comparison, BangEqual, EqualEqual)
}

func (p *parser) comparison() (Expr, error) {
	return p.leftAssoc(p.addition, Less, LessEqual, Greater, GreaterEqual)
}

func (p *parser) addition() (Expr, error) {
	return p.leftAssoc(p.multiplication, Plus, Minus)
}

func (p *parser) multiplication() (Expr, error) {
	return p.leftAssoc(p.unary, Star, Slash)
}

// leftAssoc parses a left-associative run of binary operators at one
// precedence level, with higher parsing the operands.
func (p *parser) leftAssoc(higher func() (Expr, error), kinds ...TokenKind) (Expr, error) {
	expr, err := higher()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := higher()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary parses prefix operators. A binary operator in operand position is
// reported and recovered from by parsing and returning its right operand
// alone.
func (p *parser) unary() (Expr, error) {
	switch {
	case p.match(Bang, Minus):
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Right: right}, nil
	case p.match(EqualEqual, BangEqual, Plus, LessEqual, Less, GreaterEqual, Greater, Star, Slash):
		p.rep.ErrorAt(p.previous(), "Expression expected before binary operator")
		return p.unary()
	default:
		return p.call()
	}
}

// call parses a call expression. Calls chain, so f(1)(2) calls the result
// of f(1).
func (p *parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(LeftParen) {
		if expr, err = p.finishCall(expr); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// finishCall parses a call's arguments after the opening parenthesis.
// Arguments parse at assignment level so that commas separate them. More
// than 8 arguments is reported but the call keeps every argument.
func (p *parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(RightParen) {
		for {
			if len(args) >= 8 {
				p.rep.ErrorAt(p.peek(), "Cannot have more than 8 arguments.")
			}
			arg, err := p.assignment()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(Comma) {
				break
			}
		}
	}
	paren, err := p.consume(RightParen, "Expected ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &CallExpr{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *parser) primary() (Expr, error) {
	switch {
	case p.match(Literal):
		return &LiteralExpr{Value: p.previous().Value}, nil
	case p.match(Identifier):
		return &VariableExpr{Name: p.previous()}, nil
	case p.match(LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RightParen, "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expr: expr}, nil
	default:
		return nil, p.error(p.peek(), "Unexpected token")
	}
}
