package main

import (
	"io"
	"log/slog"
)

// Lox is one interpreter session. Globals and resolved distances persist
// across Run calls, which is what the REPL relies on.
type Lox struct {
	interpreter *Interpreter
}

func NewLox(out io.Writer, logger *slog.Logger) *Lox {
	return &Lox{NewInterpreter(out, logger)}
}

// Run scans, parses and resolves source, and only if all of that
// succeeded executes it. Static problems come back together as a
// StaticErrors; otherwise the first runtime error is returned.
func (l *Lox) Run(source string) error {
	stmts, err := Parse(source)
	if err != nil {
		return err
	}

	if err := NewResolver(l.interpreter).Resolve(stmts...); err != nil {
		return err
	}

	return l.interpreter.Interpret(stmts...)
}

// Parse turns source into statements, reporting scan and parse errors
// together.
func Parse(source string) ([]Stmt, error) {
	tokenizer := new(Tokenizer)
	tokenizer.Init(source)
	toks, scanErrs := tokenizer.Tokenize()

	stmts, parseErrs := NewParser(toks).Parse()

	if errs := append(scanErrs, parseErrs...); len(errs) > 0 {
		return nil, StaticErrors(errs)
	}

	return stmts, nil
}

// Incomplete reports whether err only says the source ended too early,
// e.g. an open block or string, so more input could fix it.
func Incomplete(err error) bool {
	static, ok := err.(StaticErrors)
	if !ok {
		return false
	}

	for _, e := range static {
		switch e := e.(type) {
		case *LoxError:
			if e.atEOF {
				return true
			}
		case ParseError:
			if e.tok.typ == EOF {
				return true
			}
		}
	}

	return false
}
