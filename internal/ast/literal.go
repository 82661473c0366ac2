package ast

import "github.com/yona-lang/yona/internal/symbol"

// IntLit is an integer literal.
type IntLit struct {
	base
	Value int64
}

func NewIntLit(pos Pos, v int64) *IntLit { return &IntLit{base{pos: pos}, v} }
func (n *IntLit) String() string         { return "IntLit" }

// FloatLit is a floating-point literal.
type FloatLit struct {
	base
	Value float64
}

func NewFloatLit(pos Pos, v float64) *FloatLit { return &FloatLit{base{pos: pos}, v} }
func (n *FloatLit) String() string             { return "FloatLit" }

// ByteLit is a byte literal.
type ByteLit struct {
	base
	Value byte
}

func NewByteLit(pos Pos, v byte) *ByteLit { return &ByteLit{base{pos: pos}, v} }
func (n *ByteLit) String() string         { return "ByteLit" }

// CharLit is a character literal.
type CharLit struct {
	base
	Value rune
}

func NewCharLit(pos Pos, v rune) *CharLit { return &CharLit{base{pos: pos}, v} }
func (n *CharLit) String() string         { return "CharLit" }

// StringLit is a string literal.
type StringLit struct {
	base
	Value string
}

func NewStringLit(pos Pos, v string) *StringLit { return &StringLit{base{pos: pos}, v} }
func (n *StringLit) String() string             { return "StringLit" }

// SymbolLit is a `:name` symbol literal.
type SymbolLit struct {
	base
	Value symbol.ID
}

func NewSymbolLit(pos Pos, v symbol.ID) *SymbolLit { return &SymbolLit{base{pos: pos}, v} }
func (n *SymbolLit) String() string                { return "SymbolLit:" + n.Value.Str() }

// UnitLit is the `()` literal.
type UnitLit struct{ base }

func NewUnitLit(pos Pos) *UnitLit { return &UnitLit{base{pos: pos}} }
func (n *UnitLit) String() string { return "UnitLit" }

// BoolLit is `true` or `false`.
type BoolLit struct {
	base
	Value bool
}

func NewBoolLit(pos Pos, v bool) *BoolLit { return &BoolLit{base{pos: pos}, v} }
func (n *BoolLit) String() string         { return "BoolLit" }
