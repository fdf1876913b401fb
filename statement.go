package main

import (
	"fmt"
	"strings"
)

type Stmt interface {
	isStmt()
	fmt.Stringer
}

// NoOpStmt stands in for a declaration the parser had to skip.
type NoOpStmt struct{}

func (*NoOpStmt) isStmt() {}
func (n *NoOpStmt) String() string {
	return "no-op"
}

type VarDecl struct {
	name        Token
	initializer Expr
}

func (*VarDecl) isStmt() {}
func (d *VarDecl) String() string {
	return "var " + d.name.lexeme + " = " + d.initializer.String() + ";"
}

type FunDecl struct {
	name   Token
	params []Token
	body   []Stmt
}

func (*FunDecl) isStmt() {}
func (f *FunDecl) String() string {
	names := make([]string, len(f.params))
	for i, p := range f.params {
		names[i] = p.lexeme
	}
	return "fun " + f.name.lexeme + "(" + strings.Join(names, ", ") + ")"
}

type ClassDecl struct {
	name Token
}

func (*ClassDecl) isStmt() {}
func (c *ClassDecl) String() string {
	return "class " + c.name.lexeme
}

type ExprStmt struct {
	expr Expr
}

func (*ExprStmt) isStmt() {}
func (e *ExprStmt) String() string {
	return e.expr.String() + ";"
}

type PrintStmt struct {
	expr Expr
}

func (*PrintStmt) isStmt() {}
func (p *PrintStmt) String() string {
	return "print " + p.expr.String() + ";"
}

type IfStmt struct {
	token      Token
	condition  Expr
	thenBranch Stmt
	elseBranch Stmt
}

func (*IfStmt) isStmt() {}
func (i *IfStmt) String() string {
	var sb strings.Builder

	sb.WriteString("if ")
	sb.WriteString(i.condition.String())
	sb.WriteByte(' ')
	sb.WriteString(i.thenBranch.String())

	if i.elseBranch != nil {
		sb.WriteString(" else ")
		sb.WriteString(i.elseBranch.String())
	}

	return sb.String()
}

type WhileStmt struct {
	token     Token
	condition Expr
	body      Stmt
}

func (*WhileStmt) isStmt() {}
func (w *WhileStmt) String() string {
	return "while " + w.condition.String() + " " + w.body.String()
}

type ReturnStmt struct {
	keyword Token
	value   Expr // nil for a bare return
}

func (*ReturnStmt) isStmt() {}
func (r *ReturnStmt) String() string {
	if r.value == nil {
		return "return;"
	}
	return "return " + r.value.String() + ";"
}

type Block struct {
	stmts []Stmt
}

func (*Block) isStmt() {}
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.stmts {
		sb.WriteString(stmt.String())
		sb.WriteByte('\n')
	}
	sb.WriteByte('}')
	return sb.String()
}
