package main

import (
	"fmt"
	"strconv"
)

// Lox values live in `any`: float64, string, bool, nil, Callable,
// *Class or *Instance. Nothing else may reach the interpreter.

// IsTruthy: nil and false are falsy, everything else (0 and "" too) is truthy.
func IsTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

func IsEqual(lhs, rhs any) bool {
	switch l := lhs.(type) {
	case nil:
		return rhs == nil
	case float64:
		r, ok := rhs.(float64)
		return ok && l == r
	case string:
		r, ok := rhs.(string)
		return ok && l == r
	case bool:
		r, ok := rhs.(bool)
		return ok && l == r
	case *Class:
		r, ok := rhs.(*Class)
		return ok && l == r
	case *Instance:
		r, ok := rhs.(*Instance)
		return ok && l == r
	case Callable:
		if _, isClass := rhs.(*Class); isClass {
			return false
		}
		r, ok := rhs.(Callable)
		return ok && l.Name() == r.Name() && l.Arity() == r.Arity()
	default:
		panic(fmt.Sprintf("Unreachable: unexpected value type %T", lhs))
	}
}

// Stringify is the form `print` writes.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		panic(fmt.Sprintf("Unreachable: unexpected value type %T", v))
	}
}

// Repr is the debug form: like Stringify but strings keep their quotes.
func Repr(value any) string {
	if s, ok := value.(string); ok {
		return `"` + s + `"`
	}
	return Stringify(value)
}

func TypeName(value any) string {
	switch v := value.(type) {
	case nil:
		return "Nil"
	case bool:
		return "Boolean"
	case float64:
		return "Number"
	case string:
		return "String"
	case *Class:
		return "Class"
	case *Instance:
		return v.class.name
	case Callable:
		return "Callable"
	default:
		return fmt.Sprintf("%T", v)
	}
}
