package ast

import "github.com/yona-lang/yona/internal/symbol"

// IfExpr is `if cond then thenBranch else elseBranch`.
type IfExpr struct {
	base
	Cond, Then, Else Node
}

func NewIfExpr(pos Pos, cond, then, els Node) *IfExpr { return &IfExpr{base{pos: pos}, cond, then, els} }
func (n *IfExpr) String() string                      { return "IfExpr" }

// LetExpr is `let alias1 alias2 ... in body end`. Aliases are processed in a
// single extended frame, sequentially: each alias can see the bindings
// introduced by the ones before it.
type LetExpr struct {
	base
	Aliases []Alias
	Body    Node
}

func NewLetExpr(pos Pos, aliases []Alias, body Node) *LetExpr {
	return &LetExpr{base{pos: pos}, aliases, body}
}
func (n *LetExpr) String() string { return "LetExpr" }

// DoStep is one step of a `do` block: either an Alias or a bare expression
// evaluated for its side effect (all but the last step) or value (the last).
type DoStep struct {
	Alias Alias // nil if this step is a bare expression
	Expr  Node  // set when Alias is nil, or redundantly mirrors Alias's rhs
}

// DoExpr is `do step1 step2 ... end`: an ordered sequence of steps, the
// value of the last of which is the result.
type DoExpr struct {
	base
	Steps []DoStep
}

func NewDoExpr(pos Pos, steps []DoStep) *DoExpr { return &DoExpr{base{pos: pos}, steps} }
func (n *DoExpr) String() string                { return "DoExpr" }

// GuardedBody is one function/case-clause body, optionally guarded.
type GuardedBody struct {
	Guard Node // nil for an unconditional body
	Body  Node
}

// CaseClause is `pattern [if guard] -> body` inside a `case` expression.
type CaseClause struct {
	Pattern Pattern
	Bodies  []GuardedBody // evaluated in order; first satisfied guard wins
}

// CaseExpr is `case scrutinee of clause1 clause2 ... end`.
type CaseExpr struct {
	base
	Scrutinee Node
	Clauses   []CaseClause
}

func NewCaseExpr(pos Pos, scrutinee Node, clauses []CaseClause) *CaseExpr {
	return &CaseExpr{base{pos: pos}, scrutinee, clauses}
}
func (n *CaseExpr) String() string { return "CaseExpr" }

// CatchClause is `pattern -> body` inside a `catch`. The pattern matches
// against the raised exception value (a 2-tuple of symbol and message).
type CatchClause struct {
	Pattern Pattern
	Body    Node
}

// TryCatchExpr is `try body catch clause1 clause2 ... end`.
type TryCatchExpr struct {
	base
	Body    Node
	Catches []CatchClause
}

func NewTryCatchExpr(pos Pos, body Node, catches []CatchClause) *TryCatchExpr {
	return &TryCatchExpr{base{pos: pos}, body, catches}
}
func (n *TryCatchExpr) String() string { return "TryCatchExpr" }

// RaiseExpr is `raise :symbol "message"`.
type RaiseExpr struct {
	base
	Symbol  symbol.ID
	Message Node // a string-typed expression
}

func NewRaiseExpr(pos Pos, sym symbol.ID, msg Node) *RaiseExpr {
	return &RaiseExpr{base{pos: pos}, sym, msg}
}
func (n *RaiseExpr) String() string { return "RaiseExpr:" + n.Symbol.Str() }

// WithExpr is `with resource [as name] do body end`.
type WithExpr struct {
	base
	Resource Node
	Name     symbol.ID // symbol.Invalid if unnamed (bound as "self")
	Body     Node
}

func NewWithExpr(pos Pos, resource Node, name symbol.ID, body Node) *WithExpr {
	return &WithExpr{base{pos: pos}, resource, name, body}
}
func (n *WithExpr) String() string { return "WithExpr" }

// FieldAccessExpr is `record.field`.
type FieldAccessExpr struct {
	base
	Record Node
	Field  symbol.ID
}

func NewFieldAccessExpr(pos Pos, record Node, field symbol.ID) *FieldAccessExpr {
	return &FieldAccessExpr{base{pos: pos}, record, field}
}
func (n *FieldAccessExpr) String() string { return "FieldAccessExpr:" + n.Field.Str() }

// FieldUpdateInit is one `field = expr` in a functional record update.
type FieldUpdateInit struct {
	Field symbol.ID
	Expr  Node
}

// FieldUpdateExpr is `record{field = expr, ...}`, a non-destructive update.
type FieldUpdateExpr struct {
	base
	Record Node
	Fields []FieldUpdateInit
}

func NewFieldUpdateExpr(pos Pos, record Node, fields []FieldUpdateInit) *FieldUpdateExpr {
	return &FieldUpdateExpr{base{pos: pos}, record, fields}
}
func (n *FieldUpdateExpr) String() string { return "FieldUpdateExpr" }
