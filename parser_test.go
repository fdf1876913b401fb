package main

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, source string) []Stmt {
	t.Helper()
	stmts, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q): %v", source, err)
	}
	return stmts
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3;", "(+ 1 (* 2 3));"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3);"},
		{"-a - -b;", "(- (- (var a)) (- (var b)));"},
		{"!true == false;", "(== (! true) false);"},
		{"a or b and c;", "(or (var a) (and (var b) (var c)));"},
		{"a = b = 1;", "(assign a (assign b 1));"},
		{"1 < 2 == 3 >= 4;", "(== (< 1 2) (>= 3 4));"},
		{`f(1, "x")(2);`, `(call (call (var f) 1 "x") 2);`},
		{"a.b.c = 3;", "(set c (get b (var a)) 3);"},
	}

	for _, tt := range tests {
		stmts := mustParse(t, tt.source)
		if got := stmts[0].String(); got != tt.want {
			t.Errorf("%s parsed as %s, want %s", tt.source, got, tt.want)
		}
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := mustParse(t, "for (var i = 0; i < 3; i = i + 1) print i;")

	outer, ok := stmts[0].(*Block)
	if !ok || len(outer.stmts) != 2 {
		t.Fatalf("expected a two statement block, got %s", stmts[0])
	}
	if _, ok := outer.stmts[0].(*VarDecl); !ok {
		t.Errorf("first statement is %T, want *VarDecl", outer.stmts[0])
	}

	loop, ok := outer.stmts[1].(*WhileStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *WhileStmt", outer.stmts[1])
	}
	body, ok := loop.body.(*Block)
	if !ok || len(body.stmts) != 2 {
		t.Fatalf("loop body should hold the statement and the increment, got %s", loop.body)
	}
}

func TestParseForWithoutClauses(t *testing.T) {
	stmts := mustParse(t, "for (;;) print 1;")

	loop, ok := stmts[0].(*WhileStmt)
	if !ok {
		t.Fatalf("got %T, want a bare *WhileStmt", stmts[0])
	}
	if lit, ok := loop.condition.(*Literal); !ok || lit.value != true {
		t.Errorf("missing condition should default to true, got %s", loop.condition)
	}
}

func TestParseDeclarations(t *testing.T) {
	stmts := mustParse(t, `
		var a;
		fun add(x, y) { return x + y; }
		var anon = fun (z) { return z; };
		class Empty {}
	`)

	if v := stmts[0].(*VarDecl); v.initializer.(*Literal).value != nil {
		t.Errorf("uninitialized var should default to nil")
	}
	if f := stmts[1].(*FunDecl); len(f.params) != 2 || len(f.body) != 1 {
		t.Errorf("fun decl parsed as %s with %d body statements", f, len(f.body))
	}
	if _, ok := stmts[2].(*VarDecl).initializer.(*FunExpr); !ok {
		t.Errorf("expected anonymous function initializer")
	}
	if c := stmts[3].(*ClassDecl); c.name.lexeme != "Empty" {
		t.Errorf("class named %q", c.name.lexeme)
	}
}

func TestParseExpressionIDsAreUnique(t *testing.T) {
	seen := map[ExprID]bool{}
	var visit func(e Expr)
	visit = func(e Expr) {
		if seen[e.ID()] {
			t.Errorf("id %d used twice (at %s)", e.ID(), e)
		}
		seen[e.ID()] = true

		switch e := e.(type) {
		case *Binary:
			visit(e.lhs)
			visit(e.rhs)
		case *CallExpr:
			visit(e.callee)
			for _, a := range e.arguments {
				visit(a)
			}
		case *Grouping:
			visit(e.expression)
		}
	}

	for _, source := range []string{"a + (b * c(d, e));", "a + (b * c(d, e));"} {
		for _, stmt := range mustParse(t, source) {
			visit(stmt.(*ExprStmt).expr)
		}
	}

	if len(seen) != 18 {
		t.Errorf("visited %d distinct ids, want 18", len(seen))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		source string
		want   []string
	}{
		{"var = 1;", []string{"Expect variable name."}},
		{"1 = 2;", []string{"Invalid assignment target."}},
		{"print 1", []string{"Error at end: Expect ';' after value."}},
		{"class A { m() {} }", []string{"Class methods are not supported."}},
		{"var = 1; print ; fun (", []string{
			"Expect variable name.",
			"Expect expression.",
			"Expect ')' after parameters.",
		}},
	}

	for _, tt := range tests {
		_, err := Parse(tt.source)

		var static StaticErrors
		if !errors.As(err, &static) {
			t.Errorf("Parse(%q): expected StaticErrors, got %v", tt.source, err)
			continue
		}
		if len(static) != len(tt.want) {
			t.Errorf("Parse(%q): got %d errors %v, want %d", tt.source, len(static), static, len(tt.want))
			continue
		}
		for i, want := range tt.want {
			if !strings.Contains(static[i].Error(), want) {
				t.Errorf("Parse(%q) error %d = %q, want it to contain %q",
					tt.source, i, static[i], want)
			}
		}
	}
}
