package ast

import "github.com/yona-lang/yona/internal/symbol"

// Pattern is the closed set of pattern forms a value can be matched against,
// in `case`, `catch`, function parameters, and pattern aliases.
type Pattern interface {
	Node
	patternMarker()
}

type patternBase struct{ base }

func (patternBase) patternMarker() {}

// UnderscorePattern matches anything and binds nothing: `_`.
type UnderscorePattern struct{ patternBase }

func NewUnderscorePattern(pos Pos) *UnderscorePattern {
	p := &UnderscorePattern{}
	p.pos = pos
	return p
}
func (n *UnderscorePattern) String() string { return "_" }

// IdentifierPattern binds the whole matched value to a name.
type IdentifierPattern struct {
	patternBase
	Name symbol.ID
}

func NewIdentifierPattern(pos Pos, name symbol.ID) *IdentifierPattern {
	p := &IdentifierPattern{Name: name}
	p.pos = pos
	return p
}
func (n *IdentifierPattern) String() string { return "IdentifierPattern:" + n.Name.Str() }

// LiteralPattern matches a value equal to a literal (int, float, byte, char,
// string, symbol, unit or bool literal node).
type LiteralPattern struct {
	patternBase
	Literal Node
}

func NewLiteralPattern(pos Pos, lit Node) *LiteralPattern {
	p := &LiteralPattern{Literal: lit}
	p.pos = pos
	return p
}
func (n *LiteralPattern) String() string { return "LiteralPattern" }

// TuplePattern destructures a tuple element-by-element; arity must match
// exactly.
type TuplePattern struct {
	patternBase
	Elements []Pattern
}

func NewTuplePattern(pos Pos, elems []Pattern) *TuplePattern {
	p := &TuplePattern{Elements: elems}
	p.pos = pos
	return p
}
func (n *TuplePattern) String() string { return "TuplePattern" }

// SequencePattern matches a sequence of exactly len(Elements) elements.
type SequencePattern struct {
	patternBase
	Elements []Pattern
}

func NewSequencePattern(pos Pos, elems []Pattern) *SequencePattern {
	p := &SequencePattern{Elements: elems}
	p.pos = pos
	return p
}
func (n *SequencePattern) String() string { return "SequencePattern" }

// HeadTailsPattern is `[head | tails]`: matches a non-empty sequence,
// binding its first element and the remainder.
type HeadTailsPattern struct {
	patternBase
	Head  Pattern
	Tails Pattern
}

func NewHeadTailsPattern(pos Pos, head, tails Pattern) *HeadTailsPattern {
	p := &HeadTailsPattern{Head: head, Tails: tails}
	p.pos = pos
	return p
}
func (n *HeadTailsPattern) String() string { return "HeadTailsPattern" }

// TailsHeadPattern is `[tails | head]`: matches a non-empty sequence from the
// right, binding its last element and the preceding remainder.
type TailsHeadPattern struct {
	patternBase
	Tails Pattern
	Head  Pattern
}

func NewTailsHeadPattern(pos Pos, tails, head Pattern) *TailsHeadPattern {
	p := &TailsHeadPattern{Tails: tails, Head: head}
	p.pos = pos
	return p
}
func (n *TailsHeadPattern) String() string { return "TailsHeadPattern" }

// HeadTailsHeadPattern is `[left | tails | right]`: matches a sequence with
// at least two elements, binding its first, its last, and the middle.
type HeadTailsHeadPattern struct {
	patternBase
	Left  Pattern
	Tails Pattern
	Right Pattern
}

func NewHeadTailsHeadPattern(pos Pos, left, tails, right Pattern) *HeadTailsHeadPattern {
	p := &HeadTailsHeadPattern{Left: left, Tails: tails, Right: right}
	p.pos = pos
	return p
}
func (n *HeadTailsHeadPattern) String() string { return "HeadTailsHeadPattern" }

// DictPatternEntry is `key -> valuePattern` inside a DictPattern; the key is
// itself an expression (evaluated, not matched) used to look up the entry.
type DictPatternEntry struct {
	Key   Node
	Value Pattern
}

// DictPattern matches a subset of a dict's keys against nested patterns;
// keys not mentioned are ignored.
type DictPattern struct {
	patternBase
	Entries []DictPatternEntry
}

func NewDictPattern(pos Pos, entries []DictPatternEntry) *DictPattern {
	p := &DictPattern{Entries: entries}
	p.pos = pos
	return p
}
func (n *DictPattern) String() string { return "DictPattern" }

// RecordFieldPattern is `field -> pattern` inside a RecordPattern.
type RecordFieldPattern struct {
	Field   symbol.ID
	Pattern Pattern
}

// RecordPattern matches a record of the named type and destructures a
// subset of its fields.
type RecordPattern struct {
	patternBase
	RecordType symbol.ID
	Fields     []RecordFieldPattern
}

func NewRecordPattern(pos Pos, recordType symbol.ID, fields []RecordFieldPattern) *RecordPattern {
	p := &RecordPattern{RecordType: recordType, Fields: fields}
	p.pos = pos
	return p
}
func (n *RecordPattern) String() string { return "RecordPattern:" + n.RecordType.Str() }

// AsPattern is `pattern = name`: matches pattern and also binds the whole
// value to name.
type AsPattern struct {
	patternBase
	Pattern Pattern
	Name    symbol.ID
}

func NewAsPattern(pos Pos, pattern Pattern, name symbol.ID) *AsPattern {
	p := &AsPattern{Pattern: pattern, Name: name}
	p.pos = pos
	return p
}
func (n *AsPattern) String() string { return "AsPattern:" + n.Name.Str() }

// OrPattern is `pattern1 | pattern2 | ...`: matches if any alternative
// matches, tried left to right. Alternatives may bind different sets of
// names; nothing checks that they agree, and only the bindings of the
// alternative that matched are kept.
type OrPattern struct {
	patternBase
	Alternatives []Pattern
}

func NewOrPattern(pos Pos, alts []Pattern) *OrPattern {
	p := &OrPattern{Alternatives: alts}
	p.pos = pos
	return p
}
func (n *OrPattern) String() string { return "OrPattern" }
