package runtime

import (
	"errors"
	"fmt"
)

// Runtime errors
var ErrNotAFunction = errors.New("not a function")
var ErrNotAnObject = errors.New("not an object")
var ErrAlreadyDefined = errors.New("variable already defined")
var ErrArity = errors.New("wrong number of arguments")
var ErrType = errors.New("type error")
var ErrDivisionByZero = errors.New("division by zero")
var ErrReturnOutsideFunction = errors.New("return outside of function")
var ErrStackExhausted = errors.New("call stack exhausted")
var ErrUnknownNode = errors.New("unknown node")

// Failure is the single runtime error kind. Line is 0 when the origin is unknown,
// which is the case for failures raised by native functions until the call site
// attaches its own line.
type Failure struct {
	Err    error
	Line   int
	Detail string
}

// Failf builds a Failure caused by err with a formatted detail.
func Failf(line int, err error, format string, a ...interface{}) *Failure {
	return &Failure{
		Err:    err,
		Line:   line,
		Detail: fmt.Sprintf(format, a...),
	}
}

// Message is the failure text without its line.
func (f *Failure) Message() string {
	if f.Detail == "" {
		return f.Err.Error()
	}
	return f.Err.Error() + ": " + f.Detail
}

func (f *Failure) Error() string {
	if f.Line > 0 {
		return fmt.Sprintf("at line %d, %s", f.Line, f.Message())
	}
	return f.Message()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// AtLine gives a line-less Failure the line of the expression that observed it.
// Errors that already carry a line, or are not failures, are returned unchanged.
func AtLine(err error, line int) error {
	var f *Failure
	if !errors.As(err, &f) || f.Line != 0 {
		return err
	}
	located := *f
	located.Line = line
	return &located
}
