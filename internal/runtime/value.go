// Package runtime defines the value representation the interpreter, pattern
// matcher and native stdlib functions all operate over, plus the frame
// (lexical environment) and exception types threaded through evaluation.
package runtime

import (
	"fmt"
	"math"
	"strings"

	"github.com/yona-lang/yona/internal/hash"
	"github.com/yona-lang/yona/internal/symbol"
)

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindUnit Kind = iota
	KindBool
	KindByte
	KindInt
	KindFloat
	KindChar
	KindString
	KindSymbol
	KindTuple
	KindSeq
	KindSet
	KindDict
	KindRecord
	KindFQN
	KindModule
	KindFunction
)

func (k Kind) String() string {
	names := [...]string{
		"Unit", "Bool", "Byte", "Int", "Float", "Char", "String", "Symbol",
		"Tuple", "Seq", "Set", "Dict", "Record", "FQN", "Module", "Function",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Value is a tagged union over every runtime value shape, following the
// teacher's style of a flat struct with a discriminant rather than an
// interface hierarchy, but carrying payloads as plain typed fields and an
// interface{} escape hatch instead of an unsafe.Pointer -- this language
// core's values are not on a hot columnar-scan path the way GQL's are, so
// there is no payoff for the unsafe trick, only risk.
type Value struct {
	kind Kind
	i    int64   // Bool (0/1), Byte, Int, Char (as rune)
	f    float64 // Float
	s    string  // String
	sym  symbol.ID
	ref  interface{} // *Tuple, *Seq, *Set, *Dict, *Record, *FQN, *Module, *Function
}

// Unit is the sole value of unit type.
var Unit = Value{kind: KindUnit}

func NewBool(v bool) Value {
	if v {
		return Value{kind: KindBool, i: 1}
	}
	return Value{kind: KindBool, i: 0}
}
func NewByte(v byte) Value       { return Value{kind: KindByte, i: int64(v)} }
func NewInt(v int64) Value       { return Value{kind: KindInt, i: v} }
func NewFloat(v float64) Value   { return Value{kind: KindFloat, f: v} }
func NewChar(v rune) Value       { return Value{kind: KindChar, i: int64(v)} }
func NewString(v string) Value   { return Value{kind: KindString, s: v} }
func NewSymbol(v symbol.ID) Value { return Value{kind: KindSymbol, sym: v} }

func NewTuple(elems []Value) Value    { return Value{kind: KindTuple, ref: &Tuple{Elements: elems}} }
func NewSeqValue(s *Seq) Value        { return Value{kind: KindSeq, ref: s} }
func NewSetValue(s *Set) Value        { return Value{kind: KindSet, ref: s} }
func NewDictValue(d *Dict) Value      { return Value{kind: KindDict, ref: d} }
func NewRecordValue(r *Record) Value  { return Value{kind: KindRecord, ref: r} }
func NewFQNValue(f *FQN) Value        { return Value{kind: KindFQN, ref: f} }
func NewModuleValue(m *Module) Value  { return Value{kind: KindModule, ref: m} }
func NewFunctionValue(fn *Function) Value { return Value{kind: KindFunction, ref: fn} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Bool() bool        { return v.i != 0 }
func (v Value) Byte() byte        { return byte(v.i) }
func (v Value) Int() int64        { return v.i }
func (v Value) Float() float64    { return v.f }
func (v Value) Char() rune        { return rune(v.i) }
func (v Value) Str() string       { return v.s }
func (v Value) Symbol() symbol.ID { return v.sym }
func (v Value) Tuple() *Tuple      { return v.ref.(*Tuple) }
func (v Value) Seq() *Seq          { return v.ref.(*Seq) }
func (v Value) Set() *Set          { return v.ref.(*Set) }
func (v Value) Dict() *Dict        { return v.ref.(*Dict) }
func (v Value) Record() *Record    { return v.ref.(*Record) }
func (v Value) FQN() *FQN          { return v.ref.(*FQN) }
func (v Value) Module() *Module    { return v.ref.(*Module) }
func (v Value) Function() *Function { return v.ref.(*Function) }

// IsNumeric reports whether v is a Byte, Int, or Float -- the kinds eligible
// for cross-kind promotion under Byte ⊂ Int ⊂ Float.
func (v Value) IsNumeric() bool {
	return v.kind == KindByte || v.kind == KindInt || v.kind == KindFloat
}

// AsFloat promotes a numeric value to float64, for comparisons and
// arithmetic between mixed numeric kinds.
func (v Value) AsFloat() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	case KindByte:
		return float64(byte(v.i))
	default:
		panic(fmt.Sprintf("AsFloat: not numeric: %v", v.kind))
	}
}

// Equals implements structural equality: same-kind required for
// non-numeric kinds; numeric kinds cross-compare with Byte/Int/Float
// promotion; sequences and tuples compare element-wise; sets compare as
// multisets; dicts compare as unordered sets of pairs; records compare by
// name and field equality; functions compare by identity.
func (v Value) Equals(o Value) bool {
	if v.IsNumeric() && o.IsNumeric() {
		if v.kind == KindFloat || o.kind == KindFloat {
			return v.AsFloat() == o.AsFloat()
		}
		return v.i == o.i
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindUnit:
		return true
	case KindBool:
		return v.i == o.i
	case KindChar:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindSymbol:
		return v.sym == o.sym
	case KindTuple:
		return v.Tuple().equals(o.Tuple())
	case KindSeq:
		return v.Seq().equals(o.Seq())
	case KindSet:
		return v.Set().equals(o.Set())
	case KindDict:
		return v.Dict().equals(o.Dict())
	case KindRecord:
		return v.Record().equals(o.Record())
	case KindFQN:
		return v.FQN().String() == o.FQN().String()
	case KindFunction:
		return v.Function() == o.Function()
	case KindModule:
		return v.Module() == o.Module()
	}
	return false
}

// Hash computes a structural hash consistent with Equals.
func (v Value) Hash() hash.Hash {
	switch v.kind {
	case KindUnit:
		return hash.String("()")
	case KindBool:
		return hash.Bool(v.i != 0)
	case KindByte, KindInt:
		return hash.Int(v.i)
	case KindFloat:
		// A whole float equals the integer of the same value, so it must
		// hash like that integer.
		if v.f == math.Trunc(v.f) && v.f >= -9.2e18 && v.f <= 9.2e18 {
			return hash.Int(int64(v.f))
		}
		return hash.Float(v.f)
	case KindChar:
		return hash.Int(v.i)
	case KindString:
		return hash.String(v.s)
	case KindSymbol:
		return v.sym.Hash()
	case KindTuple:
		return v.Tuple().hash()
	case KindSeq:
		return v.Seq().hash()
	case KindSet:
		return v.Set().hash()
	case KindDict:
		return v.Dict().hash()
	case KindRecord:
		return v.Record().hash()
	case KindFQN:
		return hash.String(v.FQN().String())
	default:
		return hash.String(fmt.Sprintf("%p", v.ref))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindUnit:
		return "()"
	case KindBool:
		return fmt.Sprintf("%t", v.Bool())
	case KindByte:
		return fmt.Sprintf("%db", v.Byte())
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return fmt.Sprintf("%f", v.f)
		}
		return fmt.Sprintf("%g", v.f)
	case KindChar:
		return fmt.Sprintf("%c", v.Char())
	case KindString:
		return v.s
	case KindSymbol:
		return ":" + v.sym.Str()
	case KindTuple:
		return v.Tuple().String()
	case KindSeq:
		return v.Seq().String()
	case KindSet:
		return v.Set().String()
	case KindDict:
		return v.Dict().String()
	case KindRecord:
		return v.Record().String()
	case KindFQN:
		return v.FQN().String()
	case KindModule:
		return "module:" + v.Module().FQN.String()
	case KindFunction:
		return "function:" + v.Function().Name.String()
	}
	return "<invalid>"
}

// Tuple is a fixed-arity, heterogeneous, ordered collection.
type Tuple struct{ Elements []Value }

func (t *Tuple) equals(o *Tuple) bool {
	if len(t.Elements) != len(o.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}

func (t *Tuple) hash() hash.Hash {
	h := hash.String("tuple")
	for _, e := range t.Elements {
		h = h.Merge(e.Hash())
	}
	return h
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
