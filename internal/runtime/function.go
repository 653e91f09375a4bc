package runtime

import "fmt"

// Callable is the invocation contract shared by native and user-defined functions.
type Callable interface {
	Call(receiver Value, arguments []Value) (Value, error)
}

// Function is a named callable value.
type Function struct {
	Name string
	fn   Callable
}

func NewFunction(name string, fn Callable) *Function {
	return &Function{Name: name, fn: fn}
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Invoke calls the function with receiver bound as `this`.
func (f *Function) Invoke(receiver Value, arguments []Value) (Value, error) {
	return f.fn.Call(receiver, arguments)
}

// Variadic marks a native function that accepts any number of arguments.
const Variadic = -1

// NativeFn is a Callable implemented by host code.
type NativeFn struct {
	ArityValue int
	CallFn     func(receiver Value, arguments []Value) (Value, error)
}

func (n *NativeFn) Call(receiver Value, arguments []Value) (Value, error) {
	if n.ArityValue != Variadic && len(arguments) != n.ArityValue {
		return nil, Failf(0, ErrArity, "expected %d, got %d", n.ArityValue, len(arguments))
	}
	return n.CallFn(receiver, arguments)
}

// NewNative wraps callFn as a Function value.
func NewNative(name string, arity int, callFn func(receiver Value, arguments []Value) (Value, error)) *Function {
	return NewFunction(name, &NativeFn{ArityValue: arity, CallFn: callFn})
}
