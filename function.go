package main

import "log/slog"

// Function is a user-defined closure, named or anonymous. closure is the
// environment that was current where the function was declared, not the
// caller's.
type Function struct {
	name    string
	params  []Token
	body    []Stmt
	closure *Environment
}

func NewFunction(decl *FunDecl, closure *Environment) *Function {
	return &Function{decl.name.lexeme, decl.params, decl.body, closure}
}

func NewAnonFunction(expr *FunExpr, closure *Environment) *Function {
	return &Function{"", expr.params, expr.body, closure}
}

func (f *Function) Call(interpreter *Interpreter, arguments []any) (any, error) {
	localEnv := f.closure.Enclose()

	for i, param := range f.params {
		localEnv.Define(param.lexeme, arguments[i])
	}

	interpreter.logger.Debug("push call frame",
		slog.String("function", f.String()),
		slog.Int("depth", interpreter.depth))
	interpreter.depth++
	defer func() {
		interpreter.depth--
		interpreter.logger.Debug("pop call frame",
			slog.String("function", f.String()),
			slog.Int("depth", interpreter.depth))
	}()

	ret, err := interpreter.executeBlock(f.body, localEnv)
	if err != nil {
		return nil, err
	}
	if ret != nil {
		return ret.value, nil
	}

	return nil, nil
}

func (f *Function) Arity() int {
	return len(f.params)
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) String() string {
	if f.name == "" {
		return "<fn>"
	}
	return "<fn " + f.name + ">"
}
