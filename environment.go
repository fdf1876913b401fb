package main

import "fmt"

// Environment is one runtime scope. The outermost environment of every
// chain is the global scope, which has no enclosing link.
type Environment struct {
	enclosing *Environment
	globals   *Environment
	values    map[string]any
}

func NewEnvironment(enclosing *Environment) *Environment {
	env := &Environment{enclosing: enclosing, values: make(map[string]any)}
	if enclosing == nil {
		env.globals = env
	} else {
		env.globals = enclosing.globals
	}

	return env
}

// Enclose returns a fresh child scope of e.
func (e *Environment) Enclose() *Environment {
	return NewEnvironment(e)
}

func (e *Environment) Globals() *Environment {
	return e.globals
}

// Define binds key in e itself, shadowing any outer binding.
func (e *Environment) Define(key string, value any) {
	e.values[key] = value
}

// Get reads name. An unresolved name is looked up in the globals only;
// a resolved one in exactly the scope distance links up.
func (e *Environment) Get(name Token, distance int, resolved bool) (any, error) {
	if !resolved {
		if val, ok := e.globals.values[name.lexeme]; ok {
			return val, nil
		}
		return nil, undefinedVariable(name)
	}

	val, ok := e.ancestor(distance).values[name.lexeme]
	if !ok {
		return nil, &InternalError{name.lexeme, distance}
	}

	return val, nil
}

// Assign overwrites an existing binding using the same traversal as Get.
// It never declares: assigning an unknown global is an error.
func (e *Environment) Assign(name Token, value any, distance int, resolved bool) (bool, error) {
	scope := e.globals
	if resolved {
		scope = e.ancestor(distance)
	}

	if _, ok := scope.values[name.lexeme]; !ok {
		if !resolved {
			return false, undefinedVariable(name)
		}
		return false, &InternalError{name.lexeme, distance}
	}

	scope.values[name.lexeme] = value
	return true, nil
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
		if env == nil {
			panic(InvariantViolation{fmt.Sprintf(
				"environment chain has %d scopes, resolved distance is %d",
				i+1, distance)})
		}
	}

	return env
}

func undefinedVariable(name Token) error {
	return &RuntimeError{name, "Undefined variable '" + name.lexeme + "'."}
}
