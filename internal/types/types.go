// Package types implements the algebraic description of static types used by
// the type inferencer and the unifier that decides equality between them
// modulo substitution.
package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yona-lang/yona/internal/symbol"
)

// Builtin enumerates the primitive type constants the surface syntax can
// name directly.
type Builtin int

const (
	Bool Builtin = iota
	Byte
	Int16
	Int32
	Int64
	Int128
	UInt16
	UInt32
	UInt64
	UInt128
	Float32
	Float64
	Float128
	Char
	String
	Symbol
	Unit
)

func (b Builtin) String() string {
	names := [...]string{
		"Bool", "Byte", "Int16", "Int32", "Int64", "Int128",
		"UInt16", "UInt32", "UInt64", "UInt128",
		"Float32", "Float64", "Float128", "Char", "String", "Symbol", "Unit",
	}
	if int(b) < len(names) {
		return names[b]
	}
	return "Builtin(?)"
}

// IsNumeric reports whether the builtin is one of the integer or floating
// families (used by the arithmetic promotion rules in section 4.5).
func (b Builtin) IsNumeric() bool {
	switch b {
	case Byte, Int16, Int32, Int64, Int128, UInt16, UInt32, UInt64, UInt128, Float32, Float64, Float128:
		return true
	}
	return false
}

// IsFloat reports whether the builtin is a floating-point family.
func (b Builtin) IsFloat() bool {
	return b == Float32 || b == Float64 || b == Float128
}

// IsInteger reports whether the builtin is an integer family (signed,
// unsigned, or the single-byte type).
func (b Builtin) IsInteger() bool {
	return b.IsNumeric() && !b.IsFloat()
}

// CollectionKind distinguishes the two single-item collection shapes.
type CollectionKind int

const (
	SeqKind CollectionKind = iota
	SetKind
)

func (k CollectionKind) String() string {
	if k == SeqKind {
		return "Seq"
	}
	return "Set"
}

// Kind tags the variant stored in a Type.
type Kind int

const (
	KindBuiltin Kind = iota
	// KindVar is a type variable. Its Name conventionally begins with a
	// lowercase letter or digit; it gets its own Kind variant rather than
	// overloading KindNamed with a naming convention (see DESIGN.md).
	KindVar
	// KindNamed is a reference to a user-defined type by name (a type
	// constructor applied to zero or more type arguments carried in Inner).
	KindNamed
	KindFunction
	KindSum
	KindProduct
	KindCollection
	KindDict
	KindRecord
)

// Type is a flat, tagged-union representation of every type shape the
// inferencer produces: one struct with a Kind discriminant and the fields
// relevant to that kind left zero otherwise.
type Type struct {
	Kind Kind

	Builtin Builtin // KindBuiltin

	Name  string // KindVar, KindNamed
	Inner *Type  // KindNamed: optional type argument

	Arg    *Type // KindFunction
	Result *Type // KindFunction

	Alternatives []*Type // KindSum: unordered set of alternatives

	Elements []*Type // KindProduct: ordered, one per tuple position

	CollectionKind CollectionKind // KindCollection
	Elem           *Type          // KindCollection

	Key *Type // KindDict
	Val *Type // KindDict

	RecordName string           // KindRecord
	Fields     map[string]*Type // KindRecord

	fieldOrder []string // preserves declaration order for printing
}

// NewBuiltin creates a builtin type.
func NewBuiltin(b Builtin) *Type { return &Type{Kind: KindBuiltin, Builtin: b} }

// NewVar creates a fresh type variable with the given name (or id, rendered
// as a string by the caller).
func NewVar(name string) *Type { return &Type{Kind: KindVar, Name: name} }

// NewNamed creates a reference to a user type, optionally parameterized.
func NewNamed(name string, inner *Type) *Type {
	return &Type{Kind: KindNamed, Name: name, Inner: inner}
}

// NewFunction builds a curried function type right-to-left:
// NewFunction(a1, a2, ..., an, r) == a1 -> (a2 -> (... -> (an -> r))).
func NewFunction(argAndResult ...*Type) *Type {
	if len(argAndResult) < 1 {
		panic("types: NewFunction needs at least a result type")
	}
	if len(argAndResult) == 1 {
		return argAndResult[0]
	}
	return &Type{Kind: KindFunction, Arg: argAndResult[0], Result: NewFunction(argAndResult[1:]...)}
}

// NewSum creates a sum type from its alternatives.
func NewSum(alts ...*Type) *Type { return &Type{Kind: KindSum, Alternatives: alts} }

// NewProduct creates a tuple type.
func NewProduct(elems ...*Type) *Type { return &Type{Kind: KindProduct, Elements: elems} }

// NewCollection creates a Seq or Set type over elem.
func NewCollection(kind CollectionKind, elem *Type) *Type {
	return &Type{Kind: KindCollection, CollectionKind: kind, Elem: elem}
}

// NewDict creates a dict type.
func NewDict(key, val *Type) *Type { return &Type{Kind: KindDict, Key: key, Val: val} }

// NewRecord creates a record type. fieldOrder must list every key in fields
// exactly once; it is retained only for deterministic printing.
func NewRecord(name string, fieldOrder []string, fields map[string]*Type) *Type {
	return &Type{Kind: KindRecord, RecordName: name, Fields: fields, fieldOrder: fieldOrder}
}

// IsVar reports whether t is a type variable.
func (t *Type) IsVar() bool { return t.Kind == KindVar }

// String renders the type for diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	switch t.Kind {
	case KindBuiltin:
		return t.Builtin.String()
	case KindVar:
		return "'" + t.Name
	case KindNamed:
		if t.Inner != nil {
			return t.Name + "<" + t.Inner.String() + ">"
		}
		return t.Name
	case KindFunction:
		return t.Arg.String() + " -> " + t.Result.String()
	case KindSum:
		parts := make([]string, len(t.Alternatives))
		for i, a := range t.Alternatives {
			parts[i] = a.String()
		}
		sort.Strings(parts)
		return "(" + strings.Join(parts, " | ") + ")"
	case KindProduct:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindCollection:
		return t.CollectionKind.String() + "<" + t.Elem.String() + ">"
	case KindDict:
		return fmt.Sprintf("Dict<%s,%s>", t.Key, t.Val)
	case KindRecord:
		parts := make([]string, 0, len(t.fieldOrder))
		for _, name := range t.fieldOrder {
			parts = append(parts, name+":"+t.Fields[name].String())
		}
		return t.RecordName + "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<?>"
	}
}

// FieldOrder returns the declared field order of a record type.
func (t *Type) FieldOrder() []string { return t.fieldOrder }

// FreeVars collects the names of all type variables free in t, in first
// occurrence order, deduplicated. Used by generalization.
func FreeVars(t *Type) []string {
	seen := map[string]bool{}
	var order []string
	var walk func(*Type)
	walk = func(t *Type) {
		if t == nil {
			return
		}
		switch t.Kind {
		case KindVar:
			if !seen[t.Name] {
				seen[t.Name] = true
				order = append(order, t.Name)
			}
		case KindNamed:
			walk(t.Inner)
		case KindFunction:
			walk(t.Arg)
			walk(t.Result)
		case KindSum:
			for _, a := range t.Alternatives {
				walk(a)
			}
		case KindProduct:
			for _, e := range t.Elements {
				walk(e)
			}
		case KindCollection:
			walk(t.Elem)
		case KindDict:
			walk(t.Key)
			walk(t.Val)
		case KindRecord:
			for _, name := range t.fieldOrder {
				walk(t.Fields[name])
			}
		}
	}
	walk(t)
	return order
}

// symbolFieldName is a convenience used by callers constructing record types
// from symbol-keyed field lists (the interpreter and inferencer both key
// record fields by symbol.ID at runtime but by string in the static type).
func symbolFieldName(id symbol.ID) string { return id.Str() }
