package ast

import "github.com/yona-lang/yona/internal/symbol"

// TupleExpr is `(e1, e2, ...)`.
type TupleExpr struct {
	base
	Elements []Node
}

func NewTupleExpr(pos Pos, elems []Node) *TupleExpr { return &TupleExpr{base{pos: pos}, elems} }
func (n *TupleExpr) String() string                 { return "TupleExpr" }

// SeqExpr is `[e1, e2, ...]`. Range is non-nil for `[a .. b]`/`[a .. b .. step]`.
type SeqExpr struct {
	base
	Elements []Node
	Range    *RangeSpec
}

// RangeSpec describes an inclusive numeric range with an optional step.
type RangeSpec struct {
	Start, End Node
	Step       Node // nil if omitted
}

func NewSeqExpr(pos Pos, elems []Node) *SeqExpr { return &SeqExpr{base: base{pos: pos}, Elements: elems} }
func NewRangeExpr(pos Pos, start, end, step Node) *SeqExpr {
	return &SeqExpr{base: base{pos: pos}, Range: &RangeSpec{start, end, step}}
}
func (n *SeqExpr) String() string { return "SeqExpr" }

// SetExpr is `{e1, e2, ...}`.
type SetExpr struct {
	base
	Elements []Node
}

func NewSetExpr(pos Pos, elems []Node) *SetExpr { return &SetExpr{base{pos: pos}, elems} }
func (n *SetExpr) String() string               { return "SetExpr" }

// DictEntry is one `key -> value` pair in a dict literal.
type DictEntry struct {
	Key, Value Node
}

// DictExpr is `{k1 -> v1, k2 -> v2, ...}`.
type DictExpr struct {
	base
	Entries []DictEntry
}

func NewDictExpr(pos Pos, entries []DictEntry) *DictExpr { return &DictExpr{base{pos: pos}, entries} }
func (n *DictExpr) String() string                       { return "DictExpr" }

// FieldInit is one `name = expr` initializer in a record instance.
type FieldInit struct {
	Name symbol.ID
	Expr Node
}

// RecordInstanceExpr constructs a record: `RecordName{field = expr, ...}`.
type RecordInstanceExpr struct {
	base
	RecordType symbol.ID
	Fields     []FieldInit
}

func NewRecordInstanceExpr(pos Pos, recordType symbol.ID, fields []FieldInit) *RecordInstanceExpr {
	return &RecordInstanceExpr{base{pos: pos}, recordType, fields}
}
func (n *RecordInstanceExpr) String() string { return "RecordInstanceExpr:" + n.RecordType.Str() }

// FQNExpr is a fully qualified module name: package parts + module name.
type FQNExpr struct {
	base
	PackageParts []symbol.ID
	ModuleName   symbol.ID
}

func NewFQNExpr(pos Pos, pkg []symbol.ID, mod symbol.ID) *FQNExpr {
	return &FQNExpr{base{pos: pos}, pkg, mod}
}
func (n *FQNExpr) String() string { return "FQNExpr" }

// PackageNameExpr names a package path without a trailing module (used in
// import clauses before the module part is resolved).
type PackageNameExpr struct {
	base
	Parts []symbol.ID
}

func NewPackageNameExpr(pos Pos, parts []symbol.ID) *PackageNameExpr {
	return &PackageNameExpr{base{pos: pos}, parts}
}
func (n *PackageNameExpr) String() string { return "PackageNameExpr" }

// IdentifierExpr references a bound name.
type IdentifierExpr struct {
	base
	Name symbol.ID
}

func NewIdentifierExpr(pos Pos, name symbol.ID) *IdentifierExpr {
	return &IdentifierExpr{base{pos: pos}, name}
}
func (n *IdentifierExpr) String() string { return "IdentifierExpr:" + n.Name.Str() }
