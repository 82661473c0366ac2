// Package ast defines the closed set of node variants produced by the
// (out-of-scope, externally supplied) parser. Nodes carry no eval/typecheck
// methods of their own: the interpreter and type inferencer dispatch over
// this closed set using a Go type switch instead of double-dispatch virtual
// methods, which keeps this package free of an import cycle back to
// runtime/interp/typeinfer.
package ast

import "fmt"

// Pos is a source-code location: filename plus a line/column span.
type Pos struct {
	File        string
	Line, Col   int
	EndLine     int
	EndCol      int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Node is implemented by every AST variant. Parent is a non-owning back-link
// used only for diagnostic walks; it is set by the parser/builder, never by
// the interpreter.
type Node interface {
	Pos() Pos
	Parent() Node
	SetParent(Node)
	String() string
}

// base is embedded by every concrete node to provide Pos/Parent bookkeeping.
type base struct {
	pos    Pos
	parent Node
}

func (b *base) Pos() Pos         { return b.pos }
func (b *base) Parent() Node     { return b.parent }
func (b *base) SetParent(p Node) { b.parent = p }
