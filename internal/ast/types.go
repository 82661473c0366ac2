package ast

import "github.com/yona-lang/yona/internal/symbol"

// TypeNode is the closed set of surface-syntax type annotations. These are
// distinct from internal/types.Type, which is the inferencer's resolved
// representation; TypeNode is what the parser hands the inferencer, which
// then elaborates it into a types.Type.
type TypeNode interface {
	Node
	typeNodeMarker()
}

type typeNodeBase struct{ base }

func (typeNodeBase) typeNodeMarker() {}

// BuiltinTag enumerates the primitive type names the surface syntax can
// write directly, including the "Var" tag for an explicit type variable.
type BuiltinTag int

const (
	TagBool BuiltinTag = iota
	TagByte
	TagInt16
	TagInt32
	TagInt64
	TagInt128
	TagUInt16
	TagUInt32
	TagUInt64
	TagUInt128
	TagFloat32
	TagFloat64
	TagFloat128
	TagChar
	TagString
	TagSymbol
	TagUnit
	TagVar
)

// BuiltinTypeNode is a builtin-type reference, e.g. `Int64` or a type
// variable `a`.
type BuiltinTypeNode struct {
	typeNodeBase
	Tag     BuiltinTag
	VarName string // set only when Tag == TagVar
}

func NewBuiltinTypeNode(pos Pos, tag BuiltinTag) *BuiltinTypeNode {
	n := &BuiltinTypeNode{Tag: tag}
	n.pos = pos
	return n
}
func NewVarTypeNode(pos Pos, name string) *BuiltinTypeNode {
	n := &BuiltinTypeNode{Tag: TagVar, VarName: name}
	n.pos = pos
	return n
}
func (n *BuiltinTypeNode) String() string { return "BuiltinTypeNode" }

// UserTypeNode references a user-defined type by name.
type UserTypeNode struct {
	typeNodeBase
	Name symbol.ID
}

func NewUserTypeNode(pos Pos, name symbol.ID) *UserTypeNode {
	n := &UserTypeNode{Name: name}
	n.pos = pos
	return n
}
func (n *UserTypeNode) String() string { return "UserTypeNode:" + n.Name.Str() }

// FunctionTypeNode is `Arg -> Result` in a type signature.
type FunctionTypeNode struct {
	typeNodeBase
	Arg, Result TypeNode
}

func NewFunctionTypeNode(pos Pos, arg, result TypeNode) *FunctionTypeNode {
	n := &FunctionTypeNode{Arg: arg, Result: result}
	n.pos = pos
	return n
}
func (n *FunctionTypeNode) String() string { return "FunctionTypeNode" }

// TypeDeclNode is `type Name a b` declaring a (possibly parametric) type
// constructor, ahead of the TypeDefNode that gives it alternatives.
type TypeDeclNode struct {
	typeNodeBase
	Name   symbol.ID
	Params []symbol.ID
}

func NewTypeDeclNode(pos Pos, name symbol.ID, params []symbol.ID) *TypeDeclNode {
	n := &TypeDeclNode{Name: name, Params: params}
	n.pos = pos
	return n
}
func (n *TypeDeclNode) String() string { return "TypeDeclNode:" + n.Name.Str() }

// TypeInstanceNode applies a type constructor to arguments, e.g. `Circle(Float64)`
// both as a sum-type alternative and as a type reference in a signature.
type TypeInstanceNode struct {
	typeNodeBase
	Constructor symbol.ID
	Args        []TypeNode
}

func NewTypeInstanceNode(pos Pos, ctor symbol.ID, args []TypeNode) *TypeInstanceNode {
	n := &TypeInstanceNode{Constructor: ctor, Args: args}
	n.pos = pos
	return n
}
func (n *TypeInstanceNode) String() string { return "TypeInstanceNode:" + n.Constructor.Str() }

// TypeDefNode is `type Name = Alt1 | Alt2 | ...`, defining a sum type.
type TypeDefNode struct {
	typeNodeBase
	Name         symbol.ID
	Alternatives []*TypeInstanceNode
}

func NewTypeDefNode(pos Pos, name symbol.ID, alts []*TypeInstanceNode) *TypeDefNode {
	n := &TypeDefNode{Name: name, Alternatives: alts}
	n.pos = pos
	return n
}
func (n *TypeDefNode) String() string { return "TypeDefNode:" + n.Name.Str() }
