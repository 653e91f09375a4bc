package ast

import (
	"smalljs/internal/runtime"

	"github.com/samber/mo"
)

func MakeProgram(body *Block) *Program {
	return &Program{Body: body}
}

func MakeBlock(line int, instrs ...Expr) *Block {
	return &Block{Instrs: instrs, LineNumber: line}
}

func MakeLiteral(line int, value runtime.Value) *Literal {
	return &Literal{Value: value, LineNumber: line}
}

func MakeInt(line int, i int64) *Literal {
	return MakeLiteral(line, runtime.Int(i))
}

func MakeString(line int, s string) *Literal {
	return MakeLiteral(line, runtime.String(s))
}

func MakeUndefined(line int) *Literal {
	return MakeLiteral(line, runtime.Undefined)
}

func MakeCall(line int, callee Expr, args ...Expr) *FunCall {
	return &FunCall{Callee: callee, Args: args, LineNumber: line}
}

// MakeOpCall calls the global operator function named op, e.g. `+(left, right)`.
func MakeOpCall(line int, op string, left, right Expr) *FunCall {
	return MakeCall(line, MakeVar(line, op), left, right)
}

func MakeVar(line int, name string) *LocalVarAccess {
	return &LocalVarAccess{Name: name, LineNumber: line}
}

// MakeLet declares name, `let name = expr`.
func MakeLet(line int, name string, expr Expr) *LocalVarAssignment {
	return &LocalVarAssignment{Name: name, Expr: expr, Declaration: true, LineNumber: line}
}

// MakeAssign assigns name without declaring it, `name = expr`.
func MakeAssign(line int, name string, expr Expr) *LocalVarAssignment {
	return &LocalVarAssignment{Name: name, Expr: expr, Declaration: false, LineNumber: line}
}

// MakeFun builds a function expression; an empty name makes it anonymous.
func MakeFun(line int, name string, params []string, body *Block) *Fun {
	optName := mo.None[string]()
	if name != "" {
		optName = mo.Some(name)
	}
	return &Fun{Name: optName, Params: params, Body: body, LineNumber: line}
}

func MakeReturn(line int, expr Expr) *Return {
	return &Return{Expr: expr, LineNumber: line}
}

func MakeIf(line int, condition Expr, then, els *Block) *If {
	return &If{Condition: condition, Then: then, Else: els, LineNumber: line}
}

func MakeNew(line int, fields ...FieldInit) *New {
	return &New{Fields: fields, LineNumber: line}
}

func MakeField(name string, expr Expr) FieldInit {
	return FieldInit{Name: name, Expr: expr}
}

func MakeFieldAccess(line int, receiver Expr, name string) *FieldAccess {
	return &FieldAccess{Receiver: receiver, Name: name, LineNumber: line}
}

func MakeFieldAssign(line int, receiver Expr, name string, expr Expr) *FieldAssignment {
	return &FieldAssignment{Receiver: receiver, Name: name, Expr: expr, LineNumber: line}
}

func MakeMethodCall(line int, receiver Expr, name string, args ...Expr) *MethodCall {
	return &MethodCall{Receiver: receiver, Name: name, Args: args, LineNumber: line}
}
