package runtime

import "strings"

// Object is a bag of named fields. There is no prototype link.
type Object struct {
	fields map[string]Value
	order  []string
}

func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

func (o *Object) Kind() Kind { return KindObject }

// Field returns the named field or Undefined when it is absent.
func (o *Object) Field(name string) Value {
	if value, ok := o.fields[name]; ok {
		return value
	}
	return Undefined
}

func (o *Object) SetField(name string, value Value) {
	if _, ok := o.fields[name]; !ok {
		o.order = append(o.order, name)
	}
	o.fields[name] = value
}

// Fields lists field names in the order they were first set.
func (o *Object) Fields() []string {
	names := make([]string, len(o.order))
	copy(names, o.order)
	return names
}

func (o *Object) String() string {
	return o.format(make(map[*Object]bool))
}

func (o *Object) format(seen map[*Object]bool) string {
	if seen[o] {
		return "<cycle>"
	}
	seen[o] = true
	defer delete(seen, o)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range o.order {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		if inner, ok := o.fields[name].(*Object); ok {
			sb.WriteString(inner.format(seen))
			continue
		}
		sb.WriteString(o.fields[name].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
