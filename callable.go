package main

import (
	"fmt"
	"time"
)

type Callable interface {
	Call(interpreter *Interpreter, arguments []any) (any, error)
	Arity() int
	Name() string
	fmt.Stringer
}

// Built-Ins:
type NativeFunction struct {
	name  string
	arity int
	fn    func(arguments []any) (any, error)
}

func (n *NativeFunction) Call(_ *Interpreter, arguments []any) (any, error) {
	return n.fn(arguments)
}

func (n *NativeFunction) Arity() int {
	return n.arity
}

func (n *NativeFunction) Name() string {
	return n.name
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}

var natives = []*NativeFunction{
	{
		name:  "clock",
		arity: 0,
		fn: func(_ []any) (any, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	},
}

func defineNatives(globals *Environment) {
	for _, n := range natives {
		globals.Define(n.name, n)
	}
}
