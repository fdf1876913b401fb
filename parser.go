package main

import (
	"slices"
)

const maxArgs = 255

type Parser struct {
	tokens  []Token
	current int
	errs    []error
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) IsAtEnd() bool {
	return p.peekToken().typ == EOF
}

// program ::= declaration* EOF
//
// Parse keeps going after an error so every syntax error in the source
// is reported. The statements are only meaningful when errs is empty.
func (p *Parser) Parse() (stmts []Stmt, errs []error) {
	for !p.IsAtEnd() {
		stmts = append(stmts, p.parseDeclaration())
	}

	return stmts, p.errs
}

func (p *Parser) report(err ParseError) {
	p.errs = append(p.errs, err)
}

func (p *Parser) peekToken() Token {
	p.current = min(p.current, len(p.tokens)-1) // avoid passing EOF
	return p.tokens[p.current]
}

func (p *Parser) peekNextToken() Token {
	if p.current+1 >= len(p.tokens) {
		return p.peekToken()
	}

	return p.tokens[p.current+1]
}

func (p *Parser) peekIsOneOf(types ...TokenType) bool {
	return slices.Contains(types, p.peekToken().typ)
}

func (p *Parser) peekAndConsume() Token {
	tok := p.peekToken()
	p.current++

	return tok
}

func (p *Parser) consumeToken(typ TokenType, message string) Token {
	if tok := p.peekToken(); tok.typ == typ {
		p.current++
		return tok
	} else {
		panic(ParseError{tok, message})
	}
}

func (p *Parser) tryConsume(typ TokenType) bool {
	if p.peekToken().typ == typ {
		p.current++
		return true
	}

	return false
}

func (p *Parser) consumeOneOf(types ...TokenType) (Token, bool) {
	tok := p.peekToken()
	if slices.Contains(types, tok.typ) {
		p.current++
		return tok, true
	}

	return tok, false
}

func (p *Parser) synchronize() {
	for p.current++; p.current < len(p.tokens); p.current++ {
		prev := p.tokens[p.current-1]
		if prev.typ == SEMICOLON {
			return
		}

		if p.peekIsOneOf(CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN) {
			return
		}
	}
}

// declaration ::= classDecl | funDecl | varDecl | statement
func (p *Parser) parseDeclaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(ParseError); ok {
				p.report(err)
				p.synchronize()
				stmt = &NoOpStmt{}
			} else {
				panic(r) // real panic, let it crash
			}
		}
	}()

	switch p.peekToken().typ {
	case CLASS:
		stmt = p.parseClassDecl()
	case VAR:
		stmt = p.parseVarDecl()
	case FUN:
		// Check next token so we don't parse anonymous functions here
		if p.peekNextToken().typ != LEFT_PAREN {
			stmt = p.parseFunDecl()
			break // so we don't fallthrough to default
		}
		fallthrough
	default:
		stmt = p.parseStatement()
	}

	return
}

// classDecl ::= "class" IDENTIFIER "{" "}"
func (p *Parser) parseClassDecl() Stmt {
	p.consumeToken(CLASS, "Expect 'class'.")

	name := p.consumeToken(IDENTIFIER, "Expect class name.")

	p.consumeToken(LEFT_BRACE, "Expect '{' before class body.")
	if tok := p.peekToken(); tok.typ != RIGHT_BRACE && tok.typ != EOF {
		panic(ParseError{tok, "Class methods are not supported."})
	}
	p.consumeToken(RIGHT_BRACE, "Expect '}' after class body.")

	return &ClassDecl{name}
}

// varDecl ::= "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) parseVarDecl() Stmt {
	p.consumeToken(VAR, "Expect 'var'.")

	name := p.consumeToken(IDENTIFIER, "Expect variable name.")

	var initializer Expr = &Literal{newNode(), nil}
	if p.tryConsume(EQUAL) {
		initializer = p.parseExpression()
	}

	p.consumeToken(SEMICOLON, "Expect ';' after variable declaration.")

	return &VarDecl{name, initializer}
}

// funDecl ::= "fun" IDENTIFIER "(" parameters? ")" block
func (p *Parser) parseFunDecl() Stmt {
	p.consumeToken(FUN, "Expect 'fun'.")

	name := p.consumeToken(IDENTIFIER, "Expect function name.")

	p.consumeToken(LEFT_PAREN, "Expect '(' after function name.")
	params := p.parseParameters()
	p.consumeToken(RIGHT_PAREN, "Expect ')' after parameters.")

	body := p.parseBlockStmts()

	return &FunDecl{name, params, body}
}

// parameters ::= IDENTIFIER ( "," IDENTIFIER )*
func (p *Parser) parseParameters() []Token {
	params := []Token{}

	for !p.peekIsOneOf(RIGHT_PAREN, EOF) {
		if len(params) >= maxArgs {
			p.report(ParseError{p.peekToken(),
				"Can't have more than 255 parameters.",
			})
		}

		param := p.consumeToken(IDENTIFIER, "Expect parameter name.")
		params = append(params, param)

		if p.peekToken().typ != RIGHT_PAREN {
			p.consumeToken(COMMA, "Expect ',' between parameters.")
		}
	}

	return params
}

// statement ::= exprStmt | printStmt | ifStmt | whileStmt
//
//	| forStmt | returnStmt | block
func (p *Parser) parseStatement() Stmt {
	switch p.peekToken().typ {
	case PRINT:
		return p.parsePrintStmt()
	case IF:
		return p.parseIfStmt()
	case WHILE:
		return p.parseWhileStmt()
	case FOR:
		return p.parseForStmt()
	case RETURN:
		return p.parseReturnStmt()
	case LEFT_BRACE:
		return &Block{p.parseBlockStmts()}
	default:
		return p.parseExprStmt()
	}
}

// exprStmt ::= expression ";"
func (p *Parser) parseExprStmt() Stmt {
	expr := p.parseExpression()
	p.consumeToken(SEMICOLON, "Expect ';' after expression.")

	return &ExprStmt{expr}
}

// block ::= "{" declaration* "}"
func (p *Parser) parseBlockStmts() []Stmt {
	p.consumeToken(LEFT_BRACE, "Expect '{' before block.")

	stmts := []Stmt{}
	for !p.peekIsOneOf(RIGHT_BRACE, EOF) {
		stmts = append(stmts, p.parseDeclaration())
	}

	p.consumeToken(RIGHT_BRACE, "Expect '}' after block.")

	return stmts
}

// printStmt ::= "print" expression ";"
func (p *Parser) parsePrintStmt() Stmt {
	p.consumeToken(PRINT, "Expect 'print'.")

	value := p.parseExpression()
	p.consumeToken(SEMICOLON, "Expect ';' after value.")

	return &PrintStmt{value}
}

// ifStmt ::= "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) parseIfStmt() Stmt {
	tok := p.consumeToken(IF, "Expect 'if'.")

	p.consumeToken(LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.parseExpression()
	p.consumeToken(RIGHT_PAREN, "Expect ')' after if condition.")

	thenStmt := p.parseStatement()

	var elseStmt Stmt
	if p.tryConsume(ELSE) {
		elseStmt = p.parseStatement()
	}

	return &IfStmt{tok, cond, thenStmt, elseStmt}
}

// whileStmt ::= "while" "(" expression ")" statement
func (p *Parser) parseWhileStmt() Stmt {
	tok := p.consumeToken(WHILE, "Expect 'while'.")

	p.consumeToken(LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.parseExpression()
	p.consumeToken(RIGHT_PAREN, "Expect ')' after condition.")

	body := p.parseStatement()

	return &WhileStmt{tok, cond, body}
}

// forStmt ::= "for" "(" ( varDecl | exprStmt | ";" )
//
//	expression? ";" expression? ")" statement
//
// There is no for node: the loop is desugared into a while inside a
// block, so the resolver and interpreter never see it.
func (p *Parser) parseForStmt() Stmt {
	tok := p.consumeToken(FOR, "Expect 'for'.")
	p.consumeToken(LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt
	if p.tryConsume(SEMICOLON) {
		initializer = nil
	} else if p.peekToken().typ == VAR {
		initializer = p.parseVarDecl()
	} else {
		initializer = p.parseExprStmt()
	}

	var condition Expr = &Literal{newNode(), true}
	if p.peekToken().typ != SEMICOLON {
		condition = p.parseExpression()
	}
	p.consumeToken(SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if p.peekToken().typ != RIGHT_PAREN {
		increment = p.parseExpression()
	}
	p.consumeToken(RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.parseStatement()

	if increment != nil {
		body = &Block{[]Stmt{body, &ExprStmt{increment}}}
	}

	var loop Stmt = &WhileStmt{tok, condition, body}
	if initializer != nil {
		loop = &Block{[]Stmt{initializer, loop}}
	}

	return loop
}

// returnStmt ::= "return" expression? ";"
func (p *Parser) parseReturnStmt() Stmt {
	tok := p.consumeToken(RETURN, "Expect 'return'.")

	var value Expr
	if p.peekToken().typ != SEMICOLON {
		value = p.parseExpression()
	}
	p.consumeToken(SEMICOLON, "Expect ';' after return value.")

	return &ReturnStmt{tok, value}
}

// expression ::= assignment
func (p *Parser) parseExpression() Expr {
	return p.parseAssignment()
}

// assignment ::= ( call "." )? IDENTIFIER "=" assignment | logicalOr
func (p *Parser) parseAssignment() Expr {
	expr := p.parseLogicalOr()

	if tok, ok := p.consumeOneOf(EQUAL); ok {
		value := p.parseAssignment()

		switch e := expr.(type) {
		case *Variable:
			return &Assign{newNode(), e.name, value}
		case *Get:
			return &Set{newNode(), e.object, e.name, value}
		default:
			p.report(ParseError{tok, "Invalid assignment target."})
		}
	}

	return expr
}

// logicalOr ::= logicalAnd ( "or" logicalAnd )*
func (p *Parser) parseLogicalOr() Expr {
	expr := p.parseLogicalAnd()

	for p.peekToken().typ == OR {
		op := p.peekAndConsume()
		rhs := p.parseLogicalAnd()
		expr = &Logical{newNode(), expr, op, rhs}
	}

	return expr
}

// logicalAnd ::= equality ( "and" equality )*
func (p *Parser) parseLogicalAnd() Expr {
	expr := p.parseEquality()

	for p.peekToken().typ == AND {
		op := p.peekAndConsume()
		rhs := p.parseEquality()
		expr = &Logical{newNode(), expr, op, rhs}
	}

	return expr
}

// equality ::= comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) parseEquality() Expr {
	expr := p.parseComparison()

	for p.peekIsOneOf(BANG_EQUAL, EQUAL_EQUAL) {
		op := p.peekAndConsume()
		rhs := p.parseComparison()
		expr = &Binary{newNode(), expr, op, rhs}
	}

	return expr
}

// comparison ::= term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) parseComparison() Expr {
	expr := p.parseTerm()

	for p.peekIsOneOf(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := p.peekAndConsume()
		rhs := p.parseTerm()
		expr = &Binary{newNode(), expr, op, rhs}
	}

	return expr
}

// term ::= factor ( ( "-" | "+" ) factor )*
func (p *Parser) parseTerm() Expr {
	expr := p.parseFactor()

	for p.peekIsOneOf(MINUS, PLUS) {
		op := p.peekAndConsume()
		rhs := p.parseFactor()
		expr = &Binary{newNode(), expr, op, rhs}
	}

	return expr
}

// factor ::= unary ( ( "*" | "/" ) unary )*
func (p *Parser) parseFactor() Expr {
	expr := p.parseUnary()

	for p.peekIsOneOf(SLASH, STAR) {
		op := p.peekAndConsume()
		rhs := p.parseUnary()
		expr = &Binary{newNode(), expr, op, rhs}
	}

	return expr
}

// unary ::= ( "!" | "-" ) unary | call
func (p *Parser) parseUnary() Expr {
	if op, ok := p.consumeOneOf(BANG, MINUS); ok {
		rhs := p.parseUnary()
		return &Unary{newNode(), op, rhs}
	}

	return p.parseCall()
}

// call ::= primary ( "(" arguments? ")" | "." IDENTIFIER )*
func (p *Parser) parseCall() Expr {
	expr := p.parsePrimary()

	for p.peekIsOneOf(LEFT_PAREN, DOT) {
		switch tok := p.peekAndConsume(); tok.typ {
		case LEFT_PAREN:
			args := p.parseArguments()
			paren := p.consumeToken(RIGHT_PAREN, "Expect ')' after arguments.")
			expr = &CallExpr{newNode(), expr, paren, args}
		case DOT:
			name := p.consumeToken(IDENTIFIER, "Expect property name after '.'.")
			expr = &Get{newNode(), expr, name}
		}
	}

	return expr
}

// arguments ::= expression ( "," expression )*
func (p *Parser) parseArguments() []Expr {
	args := []Expr{}

	for !p.peekIsOneOf(RIGHT_PAREN, EOF) {
		if len(args) >= maxArgs {
			p.report(ParseError{p.peekToken(),
				"Can't have more than 255 arguments.",
			})
		}

		args = append(args, p.parseExpression())

		if p.peekToken().typ != RIGHT_PAREN {
			p.consumeToken(COMMA, "Expect ',' between function arguments.")
		}
	}

	return args
}

/*
 * primary ::= NUMBER | STRING
 * 			 | "true" | "false" | "nil"
 * 			 | "(" expression ")"
 * 			 | IDENTIFIER
 * 			 | anonFunction
 */
func (p *Parser) parsePrimary() Expr {
	tok := p.peekToken()
	// Leave a bad token in place so synchronize starts from it.
	if !p.peekIsOneOf(NUMBER, STRING, TRUE, FALSE, NIL, LEFT_PAREN, IDENTIFIER, FUN) {
		panic(ParseError{tok, "Expect expression."})
	}
	p.current++

	switch tok.typ {
	case NUMBER, STRING:
		return &Literal{newNode(), tok.literal}
	case TRUE:
		return &Literal{newNode(), true}
	case FALSE:
		return &Literal{newNode(), false}
	case NIL:
		return &Literal{newNode(), nil}
	case LEFT_PAREN:
		expr := p.parseExpression()
		p.consumeToken(RIGHT_PAREN, "Expect ')' after expression.")

		return &Grouping{newNode(), expr}
	case IDENTIFIER:
		return &Variable{newNode(), tok}
	case FUN:
		return p.parseAnonFunction(tok)
	}

	panic("Unreachable.")
}

// anonFunction ::= "fun" "(" parameters? ")" block
func (p *Parser) parseAnonFunction(keyword Token) Expr {
	p.consumeToken(LEFT_PAREN, "Expect '(' after 'fun'.")
	params := p.parseParameters()
	p.consumeToken(RIGHT_PAREN, "Expect ')' after parameters.")

	body := p.parseBlockStmts()

	return &FunExpr{newNode(), keyword, params, body}
}
