package ast

import "github.com/yona-lang/yona/internal/symbol"

// ModuleExpr is `module Pkg\Name exports f1, f2 as ... record ... end`: the
// top-level unit loaded by the module cache and the body of a ModuleAlias.
type ModuleExpr struct {
	base
	FQN       *FQNExpr
	Exports   []symbol.ID
	Records   []*TypeDeclNode
	FuncDecls []*FunctionDeclExpr
	Functions []*FunctionExpr
}

func NewModuleExpr(pos Pos, fqn *FQNExpr, exports []symbol.ID, records []*TypeDeclNode, decls []*FunctionDeclExpr, funcs []*FunctionExpr) *ModuleExpr {
	return &ModuleExpr{base{pos: pos}, fqn, exports, records, decls, funcs}
}
func (n *ModuleExpr) String() string { return "ModuleExpr:" + n.FQN.String() }

// ImportClause is shared by the two forms an `import` statement can take.
type ImportClause interface {
	Node
	importClauseMarker()
}

type importClauseBase struct{ base }

func (importClauseBase) importClauseMarker() {}

// ModuleImportClause is `import Pkg\Mod as alias`. Without `as`, every
// function the module exports is bound directly into scope.
type ModuleImportClause struct {
	importClauseBase
	FQN   *FQNExpr
	Alias symbol.ID
}

func NewModuleImportClause(pos Pos, fqn *FQNExpr, alias symbol.ID) *ModuleImportClause {
	c := &ModuleImportClause{FQN: fqn, Alias: alias}
	c.pos = pos
	return c
}
func (n *ModuleImportClause) String() string { return "ModuleImportClause:" + n.Alias.Str() }

// FunctionAliasBinding is `exportedName as localName` inside an `import
// Pkg\Mod/{...}` functions-import clause.
type FunctionAliasBinding struct {
	ExportedName symbol.ID
	LocalName    symbol.ID
}

// FunctionsImportClause is `import Pkg\Mod/{f1 as g1, f2}`: imports
// individual exported functions into the current scope rather than binding
// the whole module under an alias.
type FunctionsImportClause struct {
	importClauseBase
	FQN       *FQNExpr
	Functions []FunctionAliasBinding
}

func NewFunctionsImportClause(pos Pos, fqn *FQNExpr, fns []FunctionAliasBinding) *FunctionsImportClause {
	c := &FunctionsImportClause{FQN: fqn, Functions: fns}
	c.pos = pos
	return c
}
func (n *FunctionsImportClause) String() string { return "FunctionsImportClause" }

// ImportExpr is `import clause1, clause2, ... in body end`: brings modules
// or functions into scope for the evaluation of body.
type ImportExpr struct {
	base
	Clauses []ImportClause
	Body    Node
}

func NewImportExpr(pos Pos, clauses []ImportClause, body Node) *ImportExpr {
	return &ImportExpr{base{pos: pos}, clauses, body}
}
func (n *ImportExpr) String() string { return "ImportExpr" }
