package ast

import "github.com/yona-lang/yona/internal/symbol"

// FunctionExpr is a function literal: `\p1 p2 -> body` or, inside a module,
// a named function definition with one or more guarded bodies.
type FunctionExpr struct {
	base
	Name   symbol.ID // symbol.Invalid for an anonymous lambda
	Params []Pattern // one pattern per formal argument
	Bodies []GuardedBody
}

func NewFunctionExpr(pos Pos, name symbol.ID, params []Pattern, bodies []GuardedBody) *FunctionExpr {
	return &FunctionExpr{base{pos: pos}, name, params, bodies}
}
func (n *FunctionExpr) String() string { return "FunctionExpr:" + n.Name.Str() }

// NamedArg is `name := expr` in a function call.
type NamedArg struct {
	Name symbol.ID
	Expr Node
}

// CallArgs is the argument list shared by every call/apply variant.
type CallArgs struct {
	Positional []Node
	Named      []NamedArg
}

// ApplyExpr is a generic application `callee(args)`, used when the callee is
// an arbitrary expression (not resolved through one of the sugared call
// variants below).
type ApplyExpr struct {
	base
	Callee Node
	Args   CallArgs
}

func NewApplyExpr(pos Pos, callee Node, args CallArgs) *ApplyExpr {
	return &ApplyExpr{base{pos: pos}, callee, args}
}
func (n *ApplyExpr) String() string { return "ApplyExpr" }

// NameCallExpr is `name(args)`: call a function bound to a bare identifier in
// the current scope.
type NameCallExpr struct {
	base
	Name symbol.ID
	Args CallArgs
}

func NewNameCallExpr(pos Pos, name symbol.ID, args CallArgs) *NameCallExpr {
	return &NameCallExpr{base{pos: pos}, name, args}
}
func (n *NameCallExpr) String() string { return "NameCallExpr:" + n.Name.Str() }

// AliasCallExpr is `alias\func(args)`: call a function exported by a module
// bound to a local alias (via a ModuleAlias/ModuleImportClause).
type AliasCallExpr struct {
	base
	Alias symbol.ID
	Func  symbol.ID
	Args  CallArgs
}

func NewAliasCallExpr(pos Pos, alias, fn symbol.ID, args CallArgs) *AliasCallExpr {
	return &AliasCallExpr{base{pos: pos}, alias, fn, args}
}
func (n *AliasCallExpr) String() string { return "AliasCallExpr:" + n.Alias.Str() + "\\" + n.Func.Str() }

// ModuleCallExpr is `Pkg\Mod\func(args)`: call a function via an explicit
// fully qualified module name, loading the module on first use.
type ModuleCallExpr struct {
	base
	FQN  *FQNExpr
	Func symbol.ID
	Args CallArgs
}

func NewModuleCallExpr(pos Pos, fqn *FQNExpr, fn symbol.ID, args CallArgs) *ModuleCallExpr {
	return &ModuleCallExpr{base{pos: pos}, fqn, fn, args}
}
func (n *ModuleCallExpr) String() string { return "ModuleCallExpr:" + n.Func.Str() }

// ExprCallExpr is `(expr)(args)`: call whatever function value an arbitrary
// expression evaluates to, typically the result of a previous curried or
// partial application.
type ExprCallExpr struct {
	base
	Expr Node
	Args CallArgs
}

func NewExprCallExpr(pos Pos, expr Node, args CallArgs) *ExprCallExpr {
	return &ExprCallExpr{base{pos: pos}, expr, args}
}
func (n *ExprCallExpr) String() string { return "ExprCallExpr" }

// FunctionDeclExpr is a standalone type signature declaration: `name :: T1 -> T2`.
// It precedes the matching FunctionExpr definition and is consulted, not
// executed, by the type inferencer.
type FunctionDeclExpr struct {
	base
	Name      symbol.ID
	Signature TypeNode
}

func NewFunctionDeclExpr(pos Pos, name symbol.ID, sig TypeNode) *FunctionDeclExpr {
	return &FunctionDeclExpr{base{pos: pos}, name, sig}
}
func (n *FunctionDeclExpr) String() string { return "FunctionDeclExpr:" + n.Name.Str() }
