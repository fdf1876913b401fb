package main

import (
	"fmt"
)

type FunctionType byte

const (
	NONE FunctionType = iota
	FUNCTION
)

// Resolver is the static pass run before any code executes. It works out,
// for every variable reference, how many scopes separate it from its
// declaration and records that on the interpreter. Names found in no
// scope are left out of the table and treated as globals.
type Resolver struct {
	interpreter     *Interpreter
	scopes          Stack[map[string]bool]
	currentFunction FunctionType
	errs            []error
}

func NewResolver(interpreter *Interpreter) *Resolver {
	return &Resolver{
		interpreter:     interpreter,
		scopes:          make(Stack[map[string]bool], 0),
		currentFunction: NONE,
	}
}

// Resolve walks every statement and returns all binding errors found,
// as a StaticErrors, or nil.
func (r *Resolver) Resolve(stmts ...Stmt) error {
	r.errs = nil
	r.resolveStmts(stmts)

	if len(r.errs) > 0 {
		return StaticErrors(r.errs)
	}

	return nil
}

func (r *Resolver) error(tok Token, msg string) {
	r.errs = append(r.errs, ResolverError{tok, msg})
}

func (r *Resolver) beginScope() {
	r.scopes.Push(make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes.Pop()
}

func (r *Resolver) declare(name Token) {
	if r.scopes.Empty() {
		return
	}

	scope := r.scopes.Peek()
	if _, ok := scope[name.lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}

	scope[name.lexeme] = false
}

func (r *Resolver) define(name Token) {
	if r.scopes.Empty() {
		return
	}

	scope := r.scopes.Peek()
	scope[name.lexeme] = true
}

func (r *Resolver) resolveLocal(expr Expr, name Token) {
	depth, ok := r.scopes.Search(func(scope map[string]bool) bool {
		_, declared := scope[name.lexeme]
		return declared
	})
	if ok {
		r.interpreter.Resolve(expr, depth)
	}
}

func (r *Resolver) resolveStmts(stmts []Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *Block:
		r.beginScope()
		r.resolveStmts(s.stmts)
		r.endScope()
	case *ClassDecl:
		r.declare(s.name)
		r.define(s.name)
	case *ExprStmt:
		r.resolveExpr(s.expr)
	case *FunDecl:
		r.declare(s.name)
		r.define(s.name) // define before the body so it can recurse
		r.resolveFunction(s.params, s.body, FUNCTION)
	case *IfStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.thenBranch)
		if s.elseBranch != nil {
			r.resolveStmt(s.elseBranch)
		}
	case *NoOpStmt:
		// nothing to resolve
	case *PrintStmt:
		r.resolveExpr(s.expr)
	case *ReturnStmt:
		r.resReturnStmt(s)
	case *WhileStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.body)
	case *VarDecl:
		r.declare(s.name)
		r.resolveExpr(s.initializer)
		r.define(s.name)
	default:
		panic(fmt.Sprintf("Unresolved Statement type: %T", s))
	}
}

func (r *Resolver) resReturnStmt(stmt *ReturnStmt) {
	if r.currentFunction == NONE {
		r.error(stmt.keyword, "Can't return from top-level code.")
	}

	if stmt.value != nil {
		r.resolveExpr(stmt.value)
	}
}

// Parameters and the top-level statements of the body share one scope,
// matching the single environment a call creates.
func (r *Resolver) resolveFunction(params []Token, body []Stmt, funTyp FunctionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = funTyp
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()

	for _, param := range params {
		r.declare(param)
		r.define(param)
	}

	r.resolveStmts(body)
}

func (r *Resolver) resolveExpr(expr Expr) {
	switch e := expr.(type) {
	case *Assign:
		r.resolveExpr(e.value)
		r.resolveLocal(e, e.name)
	case *Binary:
		r.resolveExpr(e.lhs)
		r.resolveExpr(e.rhs)
	case *CallExpr:
		r.resolveExpr(e.callee)
		for _, arg := range e.arguments {
			r.resolveExpr(arg)
		}
	case *FunExpr:
		r.resolveFunction(e.params, e.body, FUNCTION)
	case *Get:
		r.resolveExpr(e.object)
	case *Grouping:
		r.resolveExpr(e.expression)
	case *Literal:
		// nothing to resolve
	case *Logical:
		r.resolveExpr(e.lhs)
		r.resolveExpr(e.rhs)
	case *Set:
		r.resolveExpr(e.value)
		r.resolveExpr(e.object)
	case *Unary:
		r.resolveExpr(e.rhs)
	case *Variable:
		r.resVarExpr(e)
	default:
		panic(fmt.Sprintf("Unresolved Expression type: %T", e))
	}
}

func (r *Resolver) resVarExpr(expr *Variable) {
	if !r.scopes.Empty() {
		if v, ok := r.scopes.Peek()[expr.name.lexeme]; ok && !v {
			r.error(expr.name,
				"Can't read local variable in its own initializer.")
		}
	}

	r.resolveLocal(expr, expr.name)
}
