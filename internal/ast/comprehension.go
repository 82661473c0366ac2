package ast

// CompClause is one clause of a comprehension: either a generator that binds
// a pattern from a source collection, or a boolean condition that filters
// the bindings produced so far.
type CompClause interface {
	Node
	compClauseMarker()
}

type compClauseBase struct{ base }

func (compClauseBase) compClauseMarker() {}

// GeneratorClause is `pattern <- source`.
type GeneratorClause struct {
	compClauseBase
	Pattern Pattern
	Source  Node
}

func NewGeneratorClause(pos Pos, pattern Pattern, source Node) *GeneratorClause {
	c := &GeneratorClause{Pattern: pattern, Source: source}
	c.pos = pos
	return c
}
func (n *GeneratorClause) String() string { return "GeneratorClause" }

// ConditionClause is a bare boolean expression filtering prior generators'
// bindings.
type ConditionClause struct {
	compClauseBase
	Condition Node
}

func NewConditionClause(pos Pos, cond Node) *ConditionClause {
	c := &ConditionClause{Condition: cond}
	c.pos = pos
	return c
}
func (n *ConditionClause) String() string { return "ConditionClause" }

// SeqComprehension is `[expr | clause1, clause2, ...]`, evaluated by
// iterating its generators left to right depth-first, as nested loops, and
// appending expr's value each time every condition holds.
type SeqComprehension struct {
	base
	Expr    Node
	Clauses []CompClause
}

func NewSeqComprehension(pos Pos, expr Node, clauses []CompClause) *SeqComprehension {
	return &SeqComprehension{base{pos: pos}, expr, clauses}
}
func (n *SeqComprehension) String() string { return "SeqComprehension" }

// SetComprehension is `{expr | clause1, clause2, ...}`, like SeqComprehension
// but collecting into a set (duplicate results collapse).
type SetComprehension struct {
	base
	Expr    Node
	Clauses []CompClause
}

func NewSetComprehension(pos Pos, expr Node, clauses []CompClause) *SetComprehension {
	return &SetComprehension{base{pos: pos}, expr, clauses}
}
func (n *SetComprehension) String() string { return "SetComprehension" }

// DictComprehension is `{k: v | clause1, clause2, ...}`.
type DictComprehension struct {
	base
	Key, Value Node
	Clauses    []CompClause
}

func NewDictComprehension(pos Pos, key, value Node, clauses []CompClause) *DictComprehension {
	return &DictComprehension{base{pos: pos}, key, value, clauses}
}
func (n *DictComprehension) String() string { return "DictComprehension" }
