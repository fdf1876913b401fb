package main

import (
	"fmt"
	"strings"
)

// LoxError is reported by the tokenizer.
type LoxError struct {
	line    int
	where   string
	message string
	atEOF   bool // the source ended before the token did
}

func (e *LoxError) Error() string {
	return fmt.Sprintf(
		"[line %d] Error%s: %s",
		e.line, e.where, e.message,
	)
}

type ParseError struct {
	tok Token
	msg string
}

func (e ParseError) Error() string {
	if e.tok.typ == EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.tok.line, e.msg)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s",
		e.tok.line, e.tok.lexeme, e.msg)
}

type ResolverError struct {
	tok Token
	msg string
}

func (e ResolverError) Error() string {
	return fmt.Sprintf("[line %d] Resolution Error at '%s': %s",
		e.tok.line, e.tok.lexeme, e.msg)
}

type RuntimeError struct {
	tok Token
	msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] RuntimeError at '%s': %s",
		e.tok.line, e.tok.lexeme, e.msg)
}

// InternalError means a name the resolver placed at some depth was not
// bound there at run time. It is an engine bug, never a user mistake.
type InternalError struct {
	name     string
	distance int
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: '%s' not bound at distance %d",
		e.name, e.distance)
}

// InvariantViolation is the panic value used when the environment chain
// is shorter than a resolved distance.
type InvariantViolation struct {
	msg string
}

func (v InvariantViolation) Error() string {
	return "invariant violated: " + v.msg
}

// StaticErrors holds every scan, parse and resolution error of one
// source unit. None of that unit runs when it is non-empty.
type StaticErrors []error

func (s StaticErrors) Error() string {
	msgs := make([]string, len(s))
	for i, err := range s {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (s StaticErrors) Unwrap() []error {
	return s
}
