package ast

import (
	"fmt"
	"strconv"
	"strings"

	"smalljs/internal/runtime"

	"github.com/samber/lo"
)

// PrintProgram renders each top-level instruction of p on its own line.
func PrintProgram(p *Program) string {
	out := ""
	for _, instr := range p.Body.Instrs {
		out += Print(instr) + "\n"
	}
	return out
}

// Print renders e as an s-expression.
func Print(e Expr) string {
	switch e := e.(type) {
	case *Block:
		if len(e.Instrs) == 0 {
			return "(block)"
		}
		return "(block " + printAll(e.Instrs) + ")"
	case *Literal:
		if e.Value == nil {
			return runtime.Undefined.String()
		}
		if s, ok := e.Value.(runtime.String); ok {
			return strconv.Quote(string(s))
		}
		return e.Value.String()
	case *FunCall:
		return printForm("call", Print(e.Callee), printAll(e.Args))
	case *LocalVarAccess:
		return e.Name
	case *LocalVarAssignment:
		if e.Declaration {
			return fmt.Sprintf("(let %s %s)", e.Name, Print(e.Expr))
		}
		return fmt.Sprintf("(set %s %s)", e.Name, Print(e.Expr))
	case *Fun:
		out := "(fn "
		if name, ok := e.Name.Get(); ok {
			out += name + " "
		}
		return out + "(" + strings.Join(e.Params, ", ") + ") " + Print(e.Body) + ")"
	case *Return:
		return fmt.Sprintf("(return %s)", Print(e.Expr))
	case *If:
		out := fmt.Sprintf("(if %s %s", Print(e.Condition), Print(e.Then))
		if e.Else != nil {
			out += " " + Print(e.Else)
		}
		return out + ")"
	case *New:
		fields := lo.Map(e.Fields, func(f FieldInit, _ int) string {
			return fmt.Sprintf("(%s %s)", f.Name, Print(f.Expr))
		})
		return printForm("new", strings.Join(fields, " "))
	case *FieldAccess:
		return fmt.Sprintf("(. %s %s)", Print(e.Receiver), e.Name)
	case *FieldAssignment:
		return fmt.Sprintf("(.= %s %s %s)", Print(e.Receiver), e.Name, Print(e.Expr))
	case *MethodCall:
		return printForm("send", Print(e.Receiver), e.Name, printAll(e.Args))
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func printAll(exprs []Expr) string {
	return strings.Join(lo.Map(exprs, func(e Expr, _ int) string { return Print(e) }), " ")
}

func printForm(head string, parts ...string) string {
	parts = lo.Filter(parts, func(p string, _ int) bool { return p != "" })
	if len(parts) == 0 {
		return "(" + head + ")"
	}
	return "(" + head + " " + strings.Join(parts, " ") + ")"
}
