package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

// Regenerate internal/ast/expr.go with `go generate ./internal/ast`.

func main() {
	out := generateAst("Expr", []string{
		"Block: Instrs []Expr",
		"Literal: Value runtime.Value",
		"FunCall: Callee Expr, Args []Expr",
		"LocalVarAccess: Name string",
		"LocalVarAssignment: Name string, Expr Expr, Declaration bool",
		"Fun: Name mo.Option[string], Params []string, Body *Block",
		"Return: Expr Expr",
		"If: Condition Expr, Then *Block, Else *Block",
		"New: Fields []FieldInit",
		"FieldAccess: Receiver Expr, Name string",
		"FieldAssignment: Receiver Expr, Name string, Expr Expr",
		"MethodCall: Receiver Expr, Name string, Args []Expr",
	})
	src, err := format.Source([]byte(out))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(src))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package ast\n\n"
	out += "import (\n"
	out += "\t\"smalljs/internal/runtime\"\n\n"
	out += "\t\"github.com/samber/mo\"\n"
	out += ")\n\n"

	// Start base interface
	out += "// " + baseName + " is a node of the closed expression set. Every node knows its source line.\n"
	out += "type " + baseName + " interface {\n"
	out += "\tLine() int\n"
	out += "\t" + strings.ToLower(baseName) + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start assertions
	out += "var (\n"
	for _, t := range types {
		name := strings.TrimSpace(strings.Split(t, ":")[0])
		out += "\t_ " + baseName + " = (*" + name + ")(nil)\n"
	}
	out += ")\n\n"
	// End assertions

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	out := "type " + name + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "\tLineNumber int\n"
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + name + ") Line() int {\n"
	out += "\treturn s.LineNumber\n"
	out += "}\n\n"
	out += "func (s *" + name + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Method Definition

	return out
}
