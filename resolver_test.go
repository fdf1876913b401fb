package main

import (
	"errors"
	"io"
	"maps"
	"strings"
	"testing"
)

func resolve(t *testing.T, source string) (*Interpreter, []Stmt, error) {
	t.Helper()
	stmts := mustParse(t, source)
	interpreter := NewInterpreter(io.Discard, nil)
	err := NewResolver(interpreter).Resolve(stmts...)
	return interpreter, stmts, err
}

func TestResolveShadowingDistances(t *testing.T) {
	interpreter, stmts, err := resolve(t, `
		var x = 1;
		{
			var x = 2;
			print x;
			{
				print x;
			}
		}
		print x;
	`)
	if err != nil {
		t.Fatal(err)
	}

	block := stmts[1].(*Block)
	near := block.stmts[1].(*PrintStmt).expr
	far := block.stmts[2].(*Block).stmts[0].(*PrintStmt).expr
	global := stmts[2].(*PrintStmt).expr

	if d, ok := interpreter.locals[near.ID()]; !ok || d != 0 {
		t.Errorf("same-block reference: distance %d (%v), want 0", d, ok)
	}
	if d, ok := interpreter.locals[far.ID()]; !ok || d != 1 {
		t.Errorf("nested-block reference: distance %d (%v), want 1", d, ok)
	}
	if _, ok := interpreter.locals[global.ID()]; ok {
		t.Errorf("top-level reference should be left to the globals")
	}
}

func TestResolveClosureAndAssignment(t *testing.T) {
	interpreter, stmts, err := resolve(t, `
		fun counter() {
			var i = 0;
			fun inc() {
				i = i + 1;
				return i;
			}
			return inc;
		}
	`)
	if err != nil {
		t.Fatal(err)
	}

	inc := stmts[0].(*FunDecl).body[1].(*FunDecl)
	assign := inc.body[0].(*ExprStmt).expr.(*Assign)
	read := assign.value.(*Binary).lhs
	ret := inc.body[1].(*ReturnStmt).value
	returnInc := stmts[0].(*FunDecl).body[2].(*ReturnStmt).value

	for name, expr := range map[string]Expr{"assign": assign, "read": read, "return": ret} {
		if d, ok := interpreter.locals[expr.ID()]; !ok || d != 1 {
			t.Errorf("%s of i: distance %d (%v), want 1", name, d, ok)
		}
	}
	if d, ok := interpreter.locals[returnInc.ID()]; !ok || d != 0 {
		t.Errorf("inc inside counter: distance %d (%v), want 0", d, ok)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	interpreter, stmts, err := resolve(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
			var f = fun (x) { return x + a; };
		}
	`)
	if err != nil {
		t.Fatal(err)
	}

	first := maps.Clone(interpreter.locals)
	if err := NewResolver(interpreter).Resolve(stmts...); err != nil {
		t.Fatal(err)
	}
	if !maps.Equal(first, interpreter.locals) {
		t.Errorf("second pass changed the table:\n%v\n%v", first, interpreter.locals)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			"self reference in initializer",
			"{ var a = a; }",
			[]string{"Can't read local variable in its own initializer."},
		},
		{
			"initializer reads the shadowing name",
			"{ var a = 1; { var a = a; } }",
			[]string{"Can't read local variable in its own initializer."},
		},
		{
			"duplicate in block",
			"{ var a = 1; var a = 2; }",
			[]string{"Already a variable with this name in this scope."},
		},
		{
			"duplicate parameter",
			"fun f(a, a) {}",
			[]string{"Already a variable with this name in this scope."},
		},
		{
			"top-level return",
			"return 1;",
			[]string{"Can't return from top-level code."},
		},
		{
			"all errors are collected",
			"return; { var b = b; var c; var c; }",
			[]string{
				"Can't return from top-level code.",
				"Can't read local variable in its own initializer.",
				"Already a variable with this name in this scope.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := resolve(t, tt.source)

			var static StaticErrors
			if !errors.As(err, &static) {
				t.Fatalf("expected StaticErrors, got %v", err)
			}
			if len(static) != len(tt.want) {
				t.Fatalf("got %d errors %v, want %d", len(static), static, len(tt.want))
			}
			for i, want := range tt.want {
				var re ResolverError
				if !errors.As(static[i], &re) {
					t.Errorf("error %d is %T, want ResolverError", i, static[i])
				}
				if !strings.Contains(static[i].Error(), want) {
					t.Errorf("error %d = %q, want %q", i, static[i], want)
				}
			}
		})
	}
}

func TestResolveAllowed(t *testing.T) {
	for _, source := range []string{
		"var a = 1; var a = 2;",         // globals may be redeclared
		"var a = a;",                    // a global self reference fails at run time instead
		"fun f() { return; }",           // bare return inside a function
		"var g = fun () { return 1; };", // return inside an anonymous function
		"{ fun f(n) { return f(n); } }", // local recursion
		"{ class C {} var c = C(); c.x = 1; }",
	} {
		if _, _, err := resolve(t, source); err != nil {
			t.Errorf("%q: unexpected error %v", source, err)
		}
	}
}
