package ast

import "github.com/yona-lang/yona/internal/symbol"

// Alias is one binding form usable inside `let` or as a `do` step.
type Alias interface {
	Node
	aliasMarker()
}

type aliasBase struct{ base }

func (aliasBase) aliasMarker() {}

// ValueAlias is `name = expr`.
type ValueAlias struct {
	aliasBase
	Name symbol.ID
	Expr Node
}

func NewValueAlias(pos Pos, name symbol.ID, expr Node) *ValueAlias {
	a := &ValueAlias{Name: name, Expr: expr}
	a.pos = pos
	return a
}
func (n *ValueAlias) String() string { return "ValueAlias:" + n.Name.Str() }

// LambdaAlias is `name = \args -> body`. Lambda aliases are bound before the
// rest of a `let`/`do` is evaluated, so later aliases can see it. The
// interpreter's closure captures the frame the name is bound into, so the
// lambda's own body can see the name too and a self-call is not rejected at
// evaluation time; the type inferencer does not bind the name inside the
// body and reports such a self-call as undefined.
type LambdaAlias struct {
	aliasBase
	Name   symbol.ID
	Lambda *FunctionExpr
}

func NewLambdaAlias(pos Pos, name symbol.ID, lambda *FunctionExpr) *LambdaAlias {
	a := &LambdaAlias{Name: name, Lambda: lambda}
	a.pos = pos
	return a
}
func (n *LambdaAlias) String() string { return "LambdaAlias:" + n.Name.Str() }

// PatternAlias is `pattern = expr`; a failed match raises :nomatch (see
// DESIGN.md for why this differs from a guard mismatch inside `case`, which
// raises :guard_failed instead).
type PatternAlias struct {
	aliasBase
	Pattern Pattern
	Expr    Node
}

func NewPatternAlias(pos Pos, pattern Pattern, expr Node) *PatternAlias {
	a := &PatternAlias{Pattern: pattern, Expr: expr}
	a.pos = pos
	return a
}
func (n *PatternAlias) String() string { return "PatternAlias" }

// ModuleAlias is `name = module Foo\Bar exports ... end` (value form).
type ModuleAlias struct {
	aliasBase
	Name   symbol.ID
	Module *ModuleExpr
}

func NewModuleAlias(pos Pos, name symbol.ID, mod *ModuleExpr) *ModuleAlias {
	a := &ModuleAlias{Name: name, Module: mod}
	a.pos = pos
	return a
}
func (n *ModuleAlias) String() string { return "ModuleAlias:" + n.Name.Str() }

// FQNAlias is `name = Foo\Bar` (binds the fully qualified name itself, not
// the loaded module).
type FQNAlias struct {
	aliasBase
	Name symbol.ID
	FQN  *FQNExpr
}

func NewFQNAlias(pos Pos, name symbol.ID, fqn *FQNExpr) *FQNAlias {
	a := &FQNAlias{Name: name, FQN: fqn}
	a.pos = pos
	return a
}
func (n *FQNAlias) String() string { return "FQNAlias:" + n.Name.Str() }

// FunctionAlias is `name = otherName`, aliasing one bound function under a
// second name.
type FunctionAlias struct {
	aliasBase
	Name  symbol.ID
	Other symbol.ID
}

func NewFunctionAlias(pos Pos, name, other symbol.ID) *FunctionAlias {
	a := &FunctionAlias{Name: name, Other: other}
	a.pos = pos
	return a
}
func (n *FunctionAlias) String() string { return "FunctionAlias:" + n.Name.Str() }
