package main

// Return is what a statement executor hands back when a `return` ran.
// A nil *Return means the statement completed normally. Executors stop
// at the first non-nil one and pass it up untouched until the function
// call that owns it unwraps the value.
type Return struct {
	value any
}
