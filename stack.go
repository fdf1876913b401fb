package main

// Stack is a LIFO slice. The resolver keeps its lexical scopes on one.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

func (s *Stack[T]) Peek() T {
	top := (*s)[len(*s)-1]
	return top
}

func (s *Stack[T]) Pop() T {
	top := s.Peek()
	*s = (*s)[0 : len(*s)-1]

	return top
}

func (s *Stack[T]) Empty() bool {
	return len(*s) == 0
}

// Search walks from the top down and returns how many entries lie above
// the first one matching, or false if none does.
func (s Stack[T]) Search(match func(T) bool) (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if match(s[i]) {
			return len(s) - 1 - i, true
		}
	}

	return 0, false
}
