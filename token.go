package main

import (
	"fmt"
)

type TokenType byte

const (
	// Single character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	SEMICOLON
	COMMA
	DOT

	// Math operators
	MINUS
	PLUS
	SLASH
	STAR

	// Assignment
	EQUAL

	// Comparison operators
	BANG
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL

	// Boolean keywords
	AND
	OR
	// NIL keyword
	NIL
	// Boolean literals
	TRUE
	FALSE
	// Control Flow keywords
	IF
	ELSE
	WHILE
	FOR
	FUN
	RETURN
	// OOP Keywords
	SUPER
	THIS
	CLASS
	// Variable declaration keyword
	VAR
	// Misc. keyword(s)
	PRINT

	// Literals
	IDENTIFIER
	NUMBER
	STRING

	EOF
)

var tokenNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	SEMICOLON:     "SEMICOLON",
	COMMA:         "COMMA",
	DOT:           "DOT",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SLASH:         "SLASH",
	STAR:          "STAR",
	EQUAL:         "EQUAL",
	BANG:          "BANG",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	AND:           "AND",
	OR:            "OR",
	NIL:           "NIL",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	IF:            "IF",
	ELSE:          "ELSE",
	WHILE:         "WHILE",
	FOR:           "FOR",
	FUN:           "FUN",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	CLASS:         "CLASS",
	VAR:           "VAR",
	PRINT:         "PRINT",
	IDENTIFIER:    "IDENTIFIER",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	EOF:           "EOF",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}

	panic(fmt.Sprintf("Invalid TokenType: %d", t))
}

type Token struct {
	typ     TokenType
	lexeme  string
	literal any
	line    int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.typ, t.lexeme, t.literal)
}
