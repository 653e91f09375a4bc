package ast

import (
	"io"
	"os"
	"path/filepath"

	"smalljs/internal/runtime"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Keys each node type may carry besides `type` and `line`.
var nodeFields = map[string][]string{
	"Block":              {"instrs"},
	"Literal":            {"value"},
	"FunCall":            {"callee", "args"},
	"LocalVarAccess":     {"name"},
	"LocalVarAssignment": {"name", "expr", "declaration"},
	"Fun":                {"name", "params", "body"},
	"Return":             {"expr"},
	"If":                 {"condition", "then", "else"},
	"New":                {"fields"},
	"FieldAccess":        {"receiver", "name"},
	"FieldAssignment":    {"receiver", "name", "expr"},
	"MethodCall":         {"receiver", "name", "args"},
}

// Decode reads a program document, YAML or JSON, whose root is a Block node.
func Decode(r io.Reader) (*Program, error) {
	var program Program
	if err := yaml.NewDecoder(r).Decode(&program); err != nil {
		if err == io.EOF {
			return nil, errors.New("decode program: empty document")
		}
		return nil, errors.Wrap(err, "decode program")
	}
	return &program, nil
}

// LoadFile decodes the program stored at path.
func LoadFile(path string) (*Program, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", path)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	program, err := Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", abs)
	}
	program.Path = abs
	return program, nil
}

func (p *Program) UnmarshalYAML(node *yaml.Node) error {
	var raw rawExpr
	if err := node.Decode(&raw); err != nil {
		return err
	}
	expr, err := raw.build()
	if err != nil {
		return err
	}
	block, ok := expr.(*Block)
	if !ok {
		return errors.Errorf("line %d: program root must be a Block, got %s", raw.at, raw.Type)
	}
	p.Body = block
	return nil
}

type rawField struct {
	Name string   `yaml:"name"`
	Expr *rawExpr `yaml:"expr"`
}

type rawExpr struct {
	Type        string     `yaml:"type"`
	Line        int        `yaml:"line"`
	Instrs      []*rawExpr `yaml:"instrs"`
	Value       yaml.Node  `yaml:"value"`
	Callee      *rawExpr   `yaml:"callee"`
	Args        []*rawExpr `yaml:"args"`
	Name        *string    `yaml:"name"`
	Expr        *rawExpr   `yaml:"expr"`
	Declaration bool       `yaml:"declaration"`
	Params      []string   `yaml:"params"`
	Body        *rawExpr   `yaml:"body"`
	Condition   *rawExpr   `yaml:"condition"`
	Then        *rawExpr   `yaml:"then"`
	Else        *rawExpr   `yaml:"else"`
	Fields      []rawField `yaml:"fields"`
	Receiver    *rawExpr   `yaml:"receiver"`

	// line of the mapping in the document, for decode errors
	at int
}

func (r *rawExpr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: expected a node mapping", node.Line)
	}
	typ := ""
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "type" {
			typ = node.Content[i+1].Value
		}
	}
	allowed, ok := nodeFields[typ]
	if !ok {
		return errors.Errorf("line %d: unknown node type %q", node.Line, typ)
	}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Value == "type" || key.Value == "line" {
			continue
		}
		if !lo.Contains(allowed, key.Value) {
			return errors.Errorf("line %d: field %q is not valid for %s", key.Line, key.Value, typ)
		}
	}

	type plain rawExpr
	if err := node.Decode((*plain)(r)); err != nil {
		return err
	}
	r.at = node.Line
	return nil
}

func (r *rawExpr) build() (Expr, error) {
	switch r.Type {
	case "Block":
		instrs, err := buildAll(r.Instrs)
		if err != nil {
			return nil, err
		}
		return MakeBlock(r.Line, instrs...), nil
	case "Literal":
		value, err := literalValue(&r.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", r.at)
		}
		return MakeLiteral(r.Line, value), nil
	case "FunCall":
		callee, err := r.child("callee", r.Callee)
		if err != nil {
			return nil, err
		}
		args, err := buildAll(r.Args)
		if err != nil {
			return nil, err
		}
		return MakeCall(r.Line, callee, args...), nil
	case "LocalVarAccess":
		name, err := r.name()
		if err != nil {
			return nil, err
		}
		return MakeVar(r.Line, name), nil
	case "LocalVarAssignment":
		name, err := r.name()
		if err != nil {
			return nil, err
		}
		expr, err := r.child("expr", r.Expr)
		if err != nil {
			return nil, err
		}
		return &LocalVarAssignment{Name: name, Expr: expr, Declaration: r.Declaration, LineNumber: r.Line}, nil
	case "Fun":
		body, err := r.block("body", r.Body)
		if err != nil {
			return nil, err
		}
		name := ""
		if r.Name != nil {
			name = *r.Name
		}
		return MakeFun(r.Line, name, r.Params, body), nil
	case "Return":
		expr, err := r.child("expr", r.Expr)
		if err != nil {
			return nil, err
		}
		return MakeReturn(r.Line, expr), nil
	case "If":
		condition, err := r.child("condition", r.Condition)
		if err != nil {
			return nil, err
		}
		then, err := r.block("then", r.Then)
		if err != nil {
			return nil, err
		}
		var els *Block
		if r.Else != nil {
			if els, err = r.block("else", r.Else); err != nil {
				return nil, err
			}
		}
		return MakeIf(r.Line, condition, then, els), nil
	case "New":
		fields := make([]FieldInit, 0, len(r.Fields))
		for _, f := range r.Fields {
			if f.Name == "" {
				return nil, errors.Errorf("line %d: New field requires a name", r.at)
			}
			expr, err := r.child("expr of field "+f.Name, f.Expr)
			if err != nil {
				return nil, err
			}
			fields = append(fields, MakeField(f.Name, expr))
		}
		return MakeNew(r.Line, fields...), nil
	case "FieldAccess":
		receiver, err := r.child("receiver", r.Receiver)
		if err != nil {
			return nil, err
		}
		name, err := r.name()
		if err != nil {
			return nil, err
		}
		return MakeFieldAccess(r.Line, receiver, name), nil
	case "FieldAssignment":
		receiver, err := r.child("receiver", r.Receiver)
		if err != nil {
			return nil, err
		}
		name, err := r.name()
		if err != nil {
			return nil, err
		}
		expr, err := r.child("expr", r.Expr)
		if err != nil {
			return nil, err
		}
		return MakeFieldAssign(r.Line, receiver, name, expr), nil
	case "MethodCall":
		receiver, err := r.child("receiver", r.Receiver)
		if err != nil {
			return nil, err
		}
		name, err := r.name()
		if err != nil {
			return nil, err
		}
		args, err := buildAll(r.Args)
		if err != nil {
			return nil, err
		}
		return MakeMethodCall(r.Line, receiver, name, args...), nil
	}
	return nil, errors.Errorf("line %d: unknown node type %q", r.at, r.Type)
}

func buildAll(raws []*rawExpr) ([]Expr, error) {
	exprs := make([]Expr, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			return nil, errors.New("null node in list")
		}
		expr, err := raw.build()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func (r *rawExpr) child(field string, c *rawExpr) (Expr, error) {
	if c == nil {
		return nil, errors.Errorf("line %d: %s requires %s", r.at, r.Type, field)
	}
	return c.build()
}

func (r *rawExpr) block(field string, c *rawExpr) (*Block, error) {
	expr, err := r.child(field, c)
	if err != nil {
		return nil, err
	}
	block, ok := expr.(*Block)
	if !ok {
		return nil, errors.Errorf("line %d: %s of %s must be a Block, got %s", c.at, field, r.Type, c.Type)
	}
	return block, nil
}

func (r *rawExpr) name() (string, error) {
	if r.Name == nil || *r.Name == "" {
		return "", errors.Errorf("line %d: %s requires name", r.at, r.Type)
	}
	return *r.Name, nil
}

func literalValue(node *yaml.Node) (runtime.Value, error) {
	if node.Kind == 0 {
		return runtime.Undefined, nil
	}
	if node.Kind != yaml.ScalarNode {
		return nil, errors.New("literal value must be a scalar")
	}
	switch node.ShortTag() {
	case "!!null":
		return runtime.Undefined, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, err
		}
		return runtime.Int(i), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return runtime.Bool(b), nil
	case "!!str":
		return runtime.String(node.Value), nil
	}
	return nil, errors.Errorf("unsupported literal %q (%s)", node.Value, node.ShortTag())
}
