package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{MakeInt(1, 42), "42"},
		{MakeString(1, "a\"b"), `"a\"b"`},
		{MakeUndefined(1), "undefined"},
		{MakeBlock(1), "(block)"},
		{MakeOpCall(1, "+", MakeVar(1, "x"), MakeInt(1, 2)), "(call + x 2)"},
		{MakeCall(1, MakeVar(1, "f")), "(call f)"},
		{MakeLet(1, "x", MakeInt(1, 1)), "(let x 1)"},
		{MakeAssign(1, "x", MakeInt(1, 1)), "(set x 1)"},
		{MakeFun(1, "f", []string{"a", "b"}, MakeBlock(1, MakeReturn(1, MakeVar(1, "a")))), "(fn f (a, b) (block (return a)))"},
		{MakeFun(1, "", nil, MakeBlock(1)), "(fn () (block))"},
		{MakeIf(1, MakeVar(1, "c"), MakeBlock(1), MakeBlock(1)), "(if c (block) (block))"},
		{MakeIf(1, MakeVar(1, "c"), MakeBlock(1), nil), "(if c (block))"},
		{MakeNew(1, MakeField("a", MakeInt(1, 1)), MakeField("b", MakeInt(1, 2))), "(new (a 1) (b 2))"},
		{MakeNew(1), "(new)"},
		{MakeFieldAccess(1, MakeVar(1, "o"), "a"), "(. o a)"},
		{MakeFieldAssign(1, MakeVar(1, "o"), "a", MakeInt(1, 3)), "(.= o a 3)"},
		{MakeMethodCall(1, MakeVar(1, "o"), "m", MakeInt(1, 1)), "(send o m 1)"},
		{MakeMethodCall(1, MakeVar(1, "o"), "m"), "(send o m)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Print(tt.expr))
	}
}

func TestPrintProgram(t *testing.T) {
	program := MakeProgram(MakeBlock(1,
		MakeLet(1, "x", MakeInt(1, 1)),
		MakeCall(1, MakeVar(1, "print"), MakeOpCall(1, "+", MakeVar(1, "x"), MakeInt(1, 2))),
	))
	assert.Equal(t, "(let x 1)\n(call print (call + x 2))\n", PrintProgram(program))
}
