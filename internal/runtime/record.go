package runtime

import (
	"strings"

	"github.com/yona-lang/yona/internal/hash"
	"github.com/yona-lang/yona/internal/symbol"
)

// RecordType is a declared record shape: a name and its field order (field
// order matters for positional construction and for deterministic
// printing, even though lookup itself is by name).
type RecordType struct {
	Name   symbol.ID
	Fields []symbol.ID
}

func (rt *RecordType) FieldIndex(name symbol.ID) int {
	for i, f := range rt.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// Record is an instance of a declared RecordType. This is a simplified,
// garbage-collector-friendly replacement for the teacher's itable/
// unsafe.Pointer-backed Struct -- a language core's records are small and
// short-lived, not columnar batches of millions of rows, so there is no
// case for struct's field-offset micro-optimization here (see DESIGN.md).
type Record struct {
	Type   *RecordType
	Values []Value // parallel to Type.Fields
}

func NewRecord(rt *RecordType, values []Value) *Record {
	cp := make([]Value, len(values))
	copy(cp, values)
	return &Record{Type: rt, Values: cp}
}

func (r *Record) Field(name symbol.ID) (Value, bool) {
	i := r.Type.FieldIndex(name)
	if i < 0 {
		return Value{}, false
	}
	return r.Values[i], true
}

// Update returns a new Record with the named fields replaced, preserving
// field order and leaving every other field untouched.
func (r *Record) Update(updates map[symbol.ID]Value) *Record {
	out := make([]Value, len(r.Values))
	copy(out, r.Values)
	for name, v := range updates {
		if i := r.Type.FieldIndex(name); i >= 0 {
			out[i] = v
		}
	}
	return &Record{Type: r.Type, Values: out}
}

func (r *Record) equals(o *Record) bool {
	if r.Type.Name != o.Type.Name || len(r.Values) != len(o.Values) {
		return false
	}
	for i := range r.Values {
		if !r.Values[i].Equals(o.Values[i]) {
			return false
		}
	}
	return true
}

func (r *Record) hash() hash.Hash {
	h := r.Type.Name.Hash()
	for _, v := range r.Values {
		h = h.Merge(v.Hash())
	}
	return h
}

func (r *Record) String() string {
	parts := make([]string, len(r.Type.Fields))
	for i, f := range r.Type.Fields {
		parts[i] = f.Str() + " = " + r.Values[i].String()
	}
	return r.Type.Name.Str() + "{" + strings.Join(parts, ", ") + "}"
}
