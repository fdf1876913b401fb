package main

// Class is a nominal type marker. Calling it with no arguments makes an
// instance; there are no methods.
type Class struct {
	name string
}

func (c *Class) Call(_ *Interpreter, _ []any) (any, error) {
	return NewInstance(c), nil
}

func (c *Class) Arity() int {
	return 0
}

func (c *Class) Name() string {
	return c.name
}

func (c *Class) String() string {
	return c.name
}
