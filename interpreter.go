package main

import (
	"fmt"
	"io"
	"log/slog"
)

type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ExprID]int // filled in by the Resolver
	out     io.Writer
	logger  *slog.Logger
	depth   int // active function calls
}

func NewInterpreter(out io.Writer, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	globals := NewEnvironment(nil)
	defineNatives(globals)

	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ExprID]int),
		out:     out,
		logger:  logger,
	}
}

// Resolve records that expr refers to a binding depth scopes out.
func (i *Interpreter) Resolve(expr Expr, depth int) {
	i.logger.Debug("resolve",
		slog.String("expr", expr.String()),
		slog.Uint64("id", uint64(expr.ID())),
		slog.Int("depth", depth))
	i.locals[expr.ID()] = depth
}

// Interpret runs stmts in order and stops at the first runtime error.
func (i *Interpreter) Interpret(stmts ...Stmt) error {
	for _, stmt := range stmts {
		if _, err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt Stmt) (*Return, error) {
	switch s := stmt.(type) {
	case *VarDecl:
		val, err := i.evaluate(s.initializer)
		if err != nil {
			return nil, err
		}

		i.env.Define(s.name.lexeme, val)

		return nil, nil
	case *FunDecl:
		i.env.Define(s.name.lexeme, NewFunction(s, i.env))
		return nil, nil
	case *ClassDecl:
		i.env.Define(s.name.lexeme, nil)
		if _, err := i.env.Assign(s.name, &Class{s.name.lexeme}, 0, true); err != nil {
			return nil, err
		}
		return nil, nil
	case *ExprStmt:
		_, err := i.evaluate(s.expr)
		return nil, err
	case *PrintStmt:
		value, err := i.evaluate(s.expr)
		if err != nil {
			return nil, err
		}

		fmt.Fprintln(i.out, Stringify(value))

		return nil, nil
	case *IfStmt:
		return i.execIfStmt(s)
	case *WhileStmt:
		return i.execWhileStmt(s)
	case *ReturnStmt:
		var value any
		if s.value != nil {
			var err error
			if value, err = i.evaluate(s.value); err != nil {
				return nil, err
			}
		}
		return &Return{value}, nil
	case *Block:
		return i.executeBlock(s.stmts, i.env.Enclose())
	case *NoOpStmt:
		return nil, nil
	default:
		panic(fmt.Sprintf(
			"Unimplemented Statement type: %T", s))
	}
}

// executeBlock runs stmts with env as the current environment and puts
// the previous one back however the block ends.
func (i *Interpreter) executeBlock(stmts []Stmt, env *Environment) (*Return, error) {
	prevEnv := i.env
	i.env = env
	defer func() { i.env = prevEnv }()

	for _, stmt := range stmts {
		ret, err := i.execute(stmt)
		if err != nil || ret != nil {
			return ret, err
		}
	}

	return nil, nil
}

func (i *Interpreter) execIfStmt(stmt *IfStmt) (*Return, error) {
	condVal, err := i.evaluate(stmt.condition)
	if err != nil {
		return nil, err
	}

	if IsTruthy(condVal) {
		return i.execute(stmt.thenBranch)
	}

	if stmt.elseBranch != nil {
		return i.execute(stmt.elseBranch)
	}

	return nil, nil
}

func (i *Interpreter) execWhileStmt(stmt *WhileStmt) (*Return, error) {
	for {
		condVal, err := i.evaluate(stmt.condition)
		if err != nil {
			return nil, err
		}

		if !IsTruthy(condVal) {
			return nil, nil
		}

		if ret, err := i.execute(stmt.body); err != nil || ret != nil {
			return ret, err
		}
	}
}

func (i *Interpreter) evaluate(expr Expr) (any, error) {
	switch e := expr.(type) {
	case *Literal:
		return e.value, nil
	case *Grouping:
		return i.evaluate(e.expression)
	case *Variable:
		return i.lookUpVariable(e.name, e)
	case *Assign:
		val, err := i.evaluate(e.value)
		if err != nil {
			return nil, err
		}

		distance, resolved := i.locals[e.ID()]
		if _, err := i.env.Assign(e.name, val, distance, resolved); err != nil {
			return nil, err
		}

		return val, nil
	case *Logical:
		return i.evalLogical(e)
	case *Unary:
		return i.evalUnary(e)
	case *Binary:
		return i.evalBinary(e)
	case *CallExpr:
		return i.evalCall(e)
	case *Get:
		object, err := i.evaluate(e.object)
		if err != nil {
			return nil, err
		}

		instance, ok := object.(*Instance)
		if !ok {
			return nil, &RuntimeError{e.name, "Only instances have properties."}
		}

		return instance.Get(e.name)
	case *Set:
		object, err := i.evaluate(e.object)
		if err != nil {
			return nil, err
		}

		instance, ok := object.(*Instance)
		if !ok {
			return nil, &RuntimeError{e.name, "Only instances have fields."}
		}

		value, err := i.evaluate(e.value)
		if err != nil {
			return nil, err
		}

		instance.Set(e.name, value)

		return nil, nil
	case *FunExpr:
		return NewAnonFunction(e, i.env), nil
	default:
		panic(fmt.Sprintf(
			"Unimplemented Expression type: %T", e))
	}
}

func (i *Interpreter) lookUpVariable(name Token, expr Expr) (any, error) {
	distance, resolved := i.locals[expr.ID()]
	return i.env.Get(name, distance, resolved)
}

func (i *Interpreter) evalLogical(expr *Logical) (any, error) {
	lhs, err := i.evaluate(expr.lhs)
	if err != nil {
		return nil, err
	}

	switch expr.op.typ {
	case OR:
		if IsTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !IsTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic(fmt.Sprintf(
			"Unreachable: unexpected logical operator: %v", expr.op))
	}

	return i.evaluate(expr.rhs)
}

func (i *Interpreter) evalUnary(expr *Unary) (any, error) {
	rhs, err := i.evaluate(expr.rhs)
	if err != nil {
		return nil, err
	}

	switch expr.op.typ {
	case BANG:
		return !IsTruthy(rhs), nil
	case MINUS:
		rhs, ok := rhs.(float64)
		if !ok {
			return nil, &RuntimeError{
				tok: expr.op,
				msg: "Operand must be a number.",
			}
		}

		return -rhs, nil
	default:
		panic(fmt.Sprintf(
			"Unreachable: unexpected unary operator: %v", expr.op))
	}
}

func (i *Interpreter) evalBinary(expr *Binary) (any, error) {
	lhs, err := i.evaluate(expr.lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := i.evaluate(expr.rhs)
	if err != nil {
		return nil, err
	}

	switch expr.op.typ {
	case EQUAL_EQUAL:
		return IsEqual(lhs, rhs), nil
	case BANG_EQUAL:
		return !IsEqual(lhs, rhs), nil
	case PLUS:
		return i.evalPlus(expr.op, lhs, rhs)
	case MINUS, STAR, SLASH:
		return i.evalMath(expr.op, lhs, rhs)
	case LESS, LESS_EQUAL, GREATER, GREATER_EQUAL:
		return i.evalComparison(expr.op, lhs, rhs)
	}

	panic("Unreachable.")
}

// '+' is the one overloaded operator: numbers add, strings concatenate.
func (i *Interpreter) evalPlus(op Token, lhs, rhs any) (any, error) {
	switch l := lhs.(type) {
	case float64:
		if r, ok := rhs.(float64); ok {
			return l + r, nil
		}
	case string:
		if r, ok := rhs.(string); ok {
			return l + r, nil
		}
	}

	return nil, incompatible(op, lhs, rhs,
		"Operands must be two numbers or two strings.")
}

func (i *Interpreter) evalMath(op Token, lhs, rhs any) (any, error) {
	lhsN, lok := lhs.(float64)
	rhsN, rok := rhs.(float64)
	if !lok || !rok {
		return nil, incompatible(op, lhs, rhs, "Operands must be numbers.")
	}

	switch op.typ {
	case MINUS:
		return lhsN - rhsN, nil
	case STAR:
		return lhsN * rhsN, nil
	case SLASH:
		// NOTE: golang behavior:
		// 0/0 == NaN
		// 1/0 == +Inf
		// -1/0 == -Inf
		return lhsN / rhsN, nil
	}

	panic("Unreachable.")
}

func (i *Interpreter) evalComparison(op Token, lhs, rhs any) (any, error) {
	switch l := lhs.(type) {
	case float64:
		if r, ok := rhs.(float64); ok {
			return compare(op.typ, l, r), nil
		}
	case string:
		if r, ok := rhs.(string); ok {
			return compare(op.typ, l, r), nil
		}
	}

	return nil, incompatible(op, lhs, rhs,
		"Operands must be two numbers or two strings.")
}

func compare[T float64 | string](typ TokenType, lhs, rhs T) bool {
	switch typ {
	case LESS:
		return lhs < rhs
	case LESS_EQUAL:
		return lhs <= rhs
	case GREATER:
		return lhs > rhs
	case GREATER_EQUAL:
		return lhs >= rhs
	}

	panic("Unreachable.")
}

func incompatible(op Token, lhs, rhs any, msg string) error {
	return &RuntimeError{
		tok: op,
		msg: fmt.Sprintf("%s Got %s and %s.", msg, TypeName(lhs), TypeName(rhs)),
	}
}

func (i *Interpreter) evalCall(expr *CallExpr) (any, error) {
	callee, err := i.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	function, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{
			expr.paren, "Can only call functions and classes.",
		}
	}

	if len(expr.arguments) != function.Arity() {
		return nil, &RuntimeError{
			expr.paren,
			fmt.Sprintf("Expected %d arguments but got %d.",
				function.Arity(), len(expr.arguments)),
		}
	}

	arguments := make([]any, 0, len(expr.arguments))
	for _, arg := range expr.arguments {
		val, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, val)
	}

	return function.Call(i, arguments)
}
