package main

import (
	"strconv"
)

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

type Tokenizer struct {
	source string
	tokens []Token

	start   int
	current int
	line    int
}

func (t *Tokenizer) Init(source string) {
	t.source = source
	t.tokens = make([]Token, 0)

	t.start = 0
	t.current = 0
	t.line = 1
}

// Tokenize scans the whole source. Errors are collected rather than
// stopping the scan, so the caller sees every bad character at once.
func (t *Tokenizer) Tokenize() ([]Token, []error) {
	errs := make([]error, 0)
	srcLen := len(t.source)
	for t.current < srcLen {
		t.start = t.current
		err := t.scanToken()
		if err != nil {
			errs = append(errs, err)
		}
	}
	t.tokens = append(t.tokens, Token{EOF, "", nil, t.line})
	return t.tokens, errs
}

func (t *Tokenizer) scanToken() error {
	c := t.source[t.current]
	t.current++
	switch c {
	case ' ', '\r', '\t':
		// pass
	case '\n':
		t.line++
	case '(':
		t.addToken(LEFT_PAREN, nil)
	case ')':
		t.addToken(RIGHT_PAREN, nil)
	case '{':
		t.addToken(LEFT_BRACE, nil)
	case '}':
		t.addToken(RIGHT_BRACE, nil)
	case ',':
		t.addToken(COMMA, nil)
	case '.':
		t.addToken(DOT, nil)
	case '-':
		t.addToken(MINUS, nil)
	case '+':
		t.addToken(PLUS, nil)
	case ';':
		t.addToken(SEMICOLON, nil)
	case '*':
		t.addToken(STAR, nil)
	case '/':
		if t.match('/') {
			t.scanComment()
		} else {
			t.addToken(SLASH, nil)
		}
	case '!':
		if t.match('=') {
			t.addToken(BANG_EQUAL, nil)
		} else {
			t.addToken(BANG, nil)
		}
	case '=':
		if t.match('=') {
			t.addToken(EQUAL_EQUAL, nil)
		} else {
			t.addToken(EQUAL, nil)
		}
	case '<':
		if t.match('=') {
			t.addToken(LESS_EQUAL, nil)
		} else {
			t.addToken(LESS, nil)
		}
	case '>':
		if t.match('=') {
			t.addToken(GREATER_EQUAL, nil)
		} else {
			t.addToken(GREATER, nil)
		}
	case '"':
		return t.scanString()
	default:
		switch {
		case IsDigit(c):
			return t.scanNumber()
		case IsAlpha(c):
			t.scanIdentifierOrKeyword()
		default:
			return &LoxError{
				line:    t.line,
				where:   " at '" + string(c) + "'",
				message: "Unexpected character.",
			}
		}
	}
	return nil
}

func (t *Tokenizer) addToken(typ TokenType, literal any) {
	text := t.source[t.start:t.current]
	t.tokens = append(
		t.tokens,
		Token{
			typ:     typ,
			lexeme:  text,
			literal: literal,
			line:    t.line,
		},
	)
}

func (t *Tokenizer) match(expected byte) bool {
	if t.current >= len(t.source) {
		return false
	}
	if t.source[t.current] != expected {
		return false
	}
	t.current++
	return true
}

func (t *Tokenizer) peekChar() byte {
	if t.current >= len(t.source) {
		return 0
	}
	return t.source[t.current]
}

func (t *Tokenizer) peekNextChar() byte {
	if t.current+1 >= len(t.source) {
		return 0
	}
	return t.source[t.current+1]
}

func (t *Tokenizer) scanString() error {
	for t.current < len(t.source) && t.peekChar() != '"' {
		if t.peekChar() == '\n' {
			t.line++
		}
		t.current++
	}
	if t.current >= len(t.source) {
		return &LoxError{
			line:    t.line,
			where:   "",
			message: "Unterminated string.",
			atEOF:   true,
		}
	}
	// Consume closing quote
	t.current++

	str := t.source[t.start+1 : t.current-1] // +1 and -1 remove the surrounding ""
	t.addToken(STRING, str)

	return nil
}

func (t *Tokenizer) scanNumber() error {
	for IsDigit(t.peekChar()) {
		t.current++
	}
	if t.peekChar() == '.' && IsDigit(t.peekNextChar()) {
		t.current++ // consume the .
		for IsDigit(t.peekChar()) {
			t.current++
		}
	}

	numStr := t.source[t.start:t.current]
	number, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return &LoxError{
			line:    t.line,
			where:   " at '" + numStr + "'",
			message: "Invalid number.",
		}
	}
	t.addToken(NUMBER, number)

	return nil
}

func (t *Tokenizer) scanIdentifierOrKeyword() {
	for IsAlphaNumeric(t.peekChar()) {
		t.current++
	}
	text := t.source[t.start:t.current]
	typ, ok := keywords[text]
	if !ok {
		typ = IDENTIFIER
	}
	t.addToken(typ, nil)
}

// Comments run to the end of the line and produce no tokens.
func (t *Tokenizer) scanComment() {
	for t.current < len(t.source) && t.peekChar() != '\n' {
		t.current++
	}
}
