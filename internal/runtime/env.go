package runtime

import "fmt"

// Env is a mutable binding scope. Environments are shared by reference: closures
// and the `global` binding alias the same map, so writes are visible everywhere.
type Env struct {
	parent *Env
	values map[string]Value
}

func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		values: make(map[string]Value),
	}
}

func (e *Env) Kind() Kind { return KindEnv }

func (e *Env) String() string {
	if e.parent == nil {
		return "<env global>"
	}
	return fmt.Sprintf("<env %d>", len(e.values))
}

// Parent returns the enclosing environment, nil for the global one.
func (e *Env) Parent() *Env {
	return e.parent
}

// Lookup searches the chain outwards. A name bound nowhere yields Undefined.
func (e *Env) Lookup(name string) Value {
	if value, ok := e.values[name]; ok {
		return value
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return Undefined
}

// Declare binds a new name in this scope. It fails when the name is already
// visible anywhere in the chain, so inner declarations never shadow outer ones.
func (e *Env) Declare(name string, value Value) error {
	if e.Lookup(name) != Undefined {
		return Failf(0, ErrAlreadyDefined, "%s", name)
	}
	e.values[name] = value
	return nil
}

// Assign writes into this scope regardless of what outer scopes hold.
func (e *Env) Assign(name string, value Value) {
	e.values[name] = value
}

func (e *Env) Field(name string) Value {
	return e.Lookup(name)
}

func (e *Env) SetField(name string, value Value) {
	e.Assign(name, value)
}
