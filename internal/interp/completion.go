package interp

import "smalljs/internal/runtime"

// completion is the outcome of evaluating an expression. A returning completion
// carries the value of a `return` that is unwinding towards the nearest function
// invocation; every caller must hand it back up unchanged instead of continuing.
type completion struct {
	value     runtime.Value
	returning bool
	line      int
}

func normal(value runtime.Value) completion {
	return completion{value: value}
}

func returning(value runtime.Value, line int) completion {
	return completion{value: value, returning: true, line: line}
}
