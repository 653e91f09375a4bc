package ast

//go:generate sh -c "go run ../../cmd/ast > expr.go"

// Program is a parsed script: its root block and the file it came from, if any.
type Program struct {
	Path string
	Body *Block
}

// FieldInit is one `name: expr` entry of a New expression. New keeps its
// initializers in source order so they are evaluated deterministically.
type FieldInit struct {
	Name string
	Expr Expr
}
