package main

type field struct {
	name  string
	value any
}

// Instances are always handled through a pointer so every alias sees
// the same fields. Fields keep insertion order and are searched
// linearly; instances are expected to stay small.
type Instance struct {
	class  *Class
	fields []field
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class}
}

func (i *Instance) Get(name Token) (any, error) {
	for _, f := range i.fields {
		if f.name == name.lexeme {
			return f.value, nil
		}
	}

	return nil, &RuntimeError{
		name, "Undefined property '" + name.lexeme + "'.",
	}
}

func (i *Instance) Set(name Token, value any) {
	for idx := range i.fields {
		if i.fields[idx].name == name.lexeme {
			i.fields[idx].value = value
			return
		}
	}

	i.fields = append(i.fields, field{name.lexeme, value})
}

func (i *Instance) String() string {
	return i.class.name + " instance"
}
