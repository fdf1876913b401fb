package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes source in a fresh session and returns what it printed.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewLox(&out, nil).Run(source)
	return out.String(), err
}

func mustRun(t *testing.T, source string) string {
	t.Helper()
	out, err := run(t, source)
	if err != nil {
		t.Fatalf("Run(%q) failed: %v", source, err)
	}
	return out
}

// A case file holds Lox code after a "--- Test" line, the expected
// printed lines after "--- Expected", and optionally a substring of the
// expected error after "--- Error".
type goldenCase struct {
	code     string
	expected []string
	errSub   string
}

func loadCase(t *testing.T, path string) goldenCase {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var c goldenCase
	var code []string
	section := ""
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "--- Test"):
			section = "test"
			continue
		case strings.HasPrefix(line, "--- Expected"):
			section = "expected"
			continue
		case strings.HasPrefix(line, "--- Error"):
			section = "error"
			continue
		}

		switch section {
		case "test":
			code = append(code, line)
		case "expected":
			if strings.TrimSpace(line) != "" {
				c.expected = append(c.expected, strings.TrimSpace(line))
			}
		case "error":
			if strings.TrimSpace(line) != "" {
				c.errSub = strings.TrimSpace(line)
			}
		}
	}
	c.code = strings.Join(code, "\n")

	return c
}

func TestGoldenCases(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "cases", "*.lox"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no test cases found")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			c := loadCase(t, path)
			out, err := run(t, c.code)

			if c.errSub == "" && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.errSub != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got none", c.errSub)
				}
				if !strings.Contains(err.Error(), c.errSub) {
					t.Fatalf("error %q does not contain %q", err, c.errSub)
				}
			}

			got := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if out == "" {
				got = nil
			}
			if len(got) != len(c.expected) {
				t.Fatalf("got %d lines %q, want %d lines %q",
					len(got), got, len(c.expected), c.expected)
			}
			for i := range got {
				if got[i] != c.expected[i] {
					t.Errorf("line %d: got %q, want %q", i+1, got[i], c.expected[i])
				}
			}
		})
	}
}

func TestStaticErrorsPreventExecution(t *testing.T) {
	out, err := run(t, `print "before"; { var a = a; } print "after";`)
	if out != "" {
		t.Errorf("program with a static error printed %q", out)
	}

	var static StaticErrors
	if !errors.As(err, &static) {
		t.Fatalf("expected StaticErrors, got %T: %v", err, err)
	}
}

func TestParseErrorsPreventExecution(t *testing.T) {
	out, err := run(t, `print "ok"; print ;`)
	if out != "" {
		t.Errorf("program with a parse error printed %q", out)
	}

	var pe ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got %T: %v", err, err)
	}
}

func TestRuntimeErrorAbortsScript(t *testing.T) {
	out, err := run(t, `print 1; print -"x"; print 2;`)
	if out != "1\n" {
		t.Errorf("got output %q, want %q", out, "1\n")
	}

	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
}

func TestSessionPersistsAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	lox := NewLox(&out, nil)

	inputs := []string{
		`fun counter() { var i = 0; fun inc() { i = i + 1; return i; } return inc; }`,
		`var c = counter();`,
		`print c();`,
		`print undefinedThing;`, // fails, session carries on
		`print c();`,
	}
	for n, in := range inputs {
		err := lox.Run(in)
		if n == 3 {
			if err == nil {
				t.Fatal("expected an error for an undefined variable")
			}
			continue
		}
		if err != nil {
			t.Fatalf("input %d: %v", n, err)
		}
	}

	if got, want := out.String(), "1\n2\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"fun f() {", true},
		{"print \"abc", true},
		{"{ var a = 1;", true},
		{"print 1", true},
		{"print 1;", false},
		{"print );", false},
	}

	for _, tt := range tests {
		_, err := Parse(tt.source)
		if got := Incomplete(err); got != tt.want {
			t.Errorf("Incomplete(Parse(%q)) = %v, want %v (err: %v)",
				tt.source, got, tt.want, err)
		}
	}
}
