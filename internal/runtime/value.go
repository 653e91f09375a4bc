package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindUndefined Kind = iota
	KindInt
	KindString
	KindFunction
	KindEnv
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindEnv:
		return "env"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	String() string
}

// FieldHolder is a value whose named fields can be read and written.
type FieldHolder interface {
	Value
	Field(name string) Value
	SetField(name string, value Value)
}

var (
	_ FieldHolder = (*Object)(nil)
	_ FieldHolder = (*Env)(nil)
)

type undefined struct{}

func (undefined) Kind() Kind { return KindUndefined }

func (undefined) String() string { return "undefined" }

// Undefined is the "no value" marker, also returned by lookups of unbound names.
var Undefined Value = undefined{}

//-----------------------------------------------------------------------------
// Primitives
//-----------------------------------------------------------------------------

type Int int64

func (Int) Kind() Kind { return KindInt }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

type String string

func (String) Kind() Kind { return KindString }

func (s String) String() string { return string(s) }

// Bool maps a host boolean to the integer truth values used by the language.
func Bool(b bool) Int {
	if b {
		return 1
	}
	return 0
}

// Truthy reports whether v selects the then-branch of a conditional.
// Only a nonzero integer is true.
func Truthy(v Value) bool {
	i, ok := v.(Int)
	return ok && i != 0
}

// Equal is structural for primitives and identity for everything else.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case undefined:
		_, ok := b.(undefined)
		return ok
	default:
		return a == b
	}
}

// Compare orders two primitives of the same kind. It returns a negative number,
// zero or a positive number as a is less than, equal to or greater than b.
func Compare(a, b Value) (int, error) {
	switch x := a.(type) {
	case Int:
		if y, ok := b.(Int); ok {
			switch {
			case x < y:
				return -1, nil
			case x > y:
				return 1, nil
			}
			return 0, nil
		}
	case String:
		if y, ok := b.(String); ok {
			switch {
			case x < y:
				return -1, nil
			case x > y:
				return 1, nil
			}
			return 0, nil
		}
	}
	return 0, Failf(0, ErrType, "cannot compare %s with %s", a.Kind(), b.Kind())
}
