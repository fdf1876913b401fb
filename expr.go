package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// ExprID identifies an expression node for the lifetime of the process.
// The resolver's table is keyed by it, so it must survive copies of the
// tree; node addresses would not.
type ExprID uint64

var lastExprID atomic.Uint64

type exprNode struct {
	id ExprID
}

func newNode() exprNode {
	return exprNode{ExprID(lastExprID.Add(1))}
}

func (n exprNode) ID() ExprID { return n.id }

type Expr interface {
	isExpr()
	ID() ExprID
	fmt.Stringer
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(expr.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

type Assign struct {
	exprNode
	name  Token
	value Expr
}

func (*Assign) isExpr() {}
func (a *Assign) String() string {
	return parenthesize("assign "+a.name.lexeme, a.value)
}

type Binary struct {
	exprNode
	lhs Expr
	op  Token
	rhs Expr
}

func (*Binary) isExpr() {}
func (b *Binary) String() string {
	return parenthesize(b.op.lexeme, b.lhs, b.rhs)
}

// Logical is kept apart from Binary because its rhs may never run.
type Logical struct {
	exprNode
	lhs Expr
	op  Token
	rhs Expr
}

func (*Logical) isExpr() {}
func (l *Logical) String() string {
	return parenthesize(l.op.lexeme, l.lhs, l.rhs)
}

type CallExpr struct {
	exprNode
	callee    Expr
	paren     Token
	arguments []Expr
}

func (*CallExpr) isExpr() {}
func (c *CallExpr) String() string {
	return parenthesize("call "+c.callee.String(), c.arguments...)
}

type Get struct {
	exprNode
	object Expr
	name   Token
}

func (*Get) isExpr() {}
func (g *Get) String() string {
	return parenthesize("get "+g.name.lexeme, g.object)
}

type Set struct {
	exprNode
	object Expr
	name   Token
	value  Expr
}

func (*Set) isExpr() {}
func (s *Set) String() string {
	return parenthesize("set "+s.name.lexeme, s.object, s.value)
}

type Grouping struct {
	exprNode
	expression Expr
}

func (*Grouping) isExpr() {}
func (g *Grouping) String() string {
	return parenthesize("group", g.expression)
}

type Literal struct {
	exprNode
	value any // float64, string, bool, or nil
}

func (*Literal) isExpr() {}
func (l *Literal) String() string {
	switch v := l.value.(type) {
	case string:
		return Repr(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "nil"
	default:
		msg := fmt.Sprintf("Incompatible type: %T", v)
		panic(msg)
	}
}

type Unary struct {
	exprNode
	op  Token
	rhs Expr
}

func (*Unary) isExpr() {}
func (u *Unary) String() string {
	return parenthesize(u.op.lexeme, u.rhs)
}

type Variable struct {
	exprNode
	name Token
}

func (*Variable) isExpr() {}
func (v *Variable) String() string {
	return "(var " + v.name.lexeme + ")"
}

// FunExpr is an anonymous function: fun (a, b) { ... }
type FunExpr struct {
	exprNode
	keyword Token
	params  []Token
	body    []Stmt
}

func (*FunExpr) isExpr() {}
func (f *FunExpr) String() string {
	return "anon/" + strconv.Itoa(len(f.params))
}
