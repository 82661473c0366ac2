package runtime

import (
	"strings"

	"github.com/yona-lang/yona/internal/hash"
)

// Seq is an ordered, logically immutable sequence with random access.
// "Updates" (Cons, Append, Concat) always return a new Seq backed by a fresh
// slice; there is no in-place mutation primitive, matching the
// shared-resource policy that runtime values are immutable from the user
// program's perspective.
type Seq struct{ elems []Value }

func NewSeq(elems []Value) *Seq {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return &Seq{elems: cp}
}

func EmptySeq() *Seq { return &Seq{} }

func (s *Seq) Len() int        { return len(s.elems) }
func (s *Seq) At(i int) Value  { return s.elems[i] }
func (s *Seq) IsEmpty() bool   { return len(s.elems) == 0 }
func (s *Seq) Elements() []Value {
	cp := make([]Value, len(s.elems))
	copy(cp, s.elems)
	return cp
}

// Head returns the first element; REQUIRES: !s.IsEmpty().
func (s *Seq) Head() Value { return s.elems[0] }

// Tails returns every element but the first; REQUIRES: !s.IsEmpty().
func (s *Seq) Tails() *Seq { return NewSeq(s.elems[1:]) }

// LastHead returns the last element; REQUIRES: !s.IsEmpty().
func (s *Seq) LastHead() Value { return s.elems[len(s.elems)-1] }

// Init returns every element but the last; REQUIRES: !s.IsEmpty().
func (s *Seq) Init() *Seq { return NewSeq(s.elems[:len(s.elems)-1]) }

// Cons prepends v, returning a new Seq.
func (s *Seq) Cons(v Value) *Seq {
	out := make([]Value, 0, len(s.elems)+1)
	out = append(out, v)
	out = append(out, s.elems...)
	return &Seq{elems: out}
}

// Append adds v to the end, returning a new Seq.
func (s *Seq) Append(v Value) *Seq {
	out := make([]Value, len(s.elems), len(s.elems)+1)
	copy(out, s.elems)
	out = append(out, v)
	return &Seq{elems: out}
}

// Concat returns s followed by o's elements.
func (s *Seq) Concat(o *Seq) *Seq {
	out := make([]Value, 0, len(s.elems)+len(o.elems))
	out = append(out, s.elems...)
	out = append(out, o.elems...)
	return &Seq{elems: out}
}

func (s *Seq) equals(o *Seq) bool {
	if len(s.elems) != len(o.elems) {
		return false
	}
	for i := range s.elems {
		if !s.elems[i].Equals(o.elems[i]) {
			return false
		}
	}
	return true
}

func (s *Seq) hash() hash.Hash {
	h := hash.String("seq")
	for _, e := range s.elems {
		h = h.Merge(e.Hash())
	}
	return h
}

func (s *Seq) String() string {
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Set is an unordered collection with structural-equality membership. It
// preserves first-insertion order internally so that iteration is stable
// within a single run, even though the contract only promises that
// stability, not any particular order.
type Set struct{ elems []Value }

func EmptySet() *Set { return &Set{} }

func NewSet(elems []Value) *Set {
	s := EmptySet()
	for _, e := range elems {
		s = s.Add(e)
	}
	return s
}

func (s *Set) Len() int { return len(s.elems) }

func (s *Set) Contains(v Value) bool {
	for _, e := range s.elems {
		if e.Equals(v) {
			return true
		}
	}
	return false
}

// Add returns a new Set containing v; a no-op (but still a fresh Set) if v
// is already a member.
func (s *Set) Add(v Value) *Set {
	if s.Contains(v) {
		out := make([]Value, len(s.elems))
		copy(out, s.elems)
		return &Set{elems: out}
	}
	out := make([]Value, len(s.elems), len(s.elems)+1)
	copy(out, s.elems)
	out = append(out, v)
	return &Set{elems: out}
}

// Remove returns a new Set without v.
func (s *Set) Remove(v Value) *Set {
	out := make([]Value, 0, len(s.elems))
	for _, e := range s.elems {
		if !e.Equals(v) {
			out = append(out, e)
		}
	}
	return &Set{elems: out}
}

func (s *Set) Elements() []Value {
	cp := make([]Value, len(s.elems))
	copy(cp, s.elems)
	return cp
}

// equals compares as multisets of distinct elements (Set itself never holds
// duplicates, so this is simple membership-both-ways).
func (s *Set) equals(o *Set) bool {
	if len(s.elems) != len(o.elems) {
		return false
	}
	for _, e := range s.elems {
		if !o.Contains(e) {
			return false
		}
	}
	return true
}

func (s *Set) hash() hash.Hash {
	h := hash.String("set-empty")
	for _, e := range s.elems {
		h = h.Add(e.Hash())
	}
	return h
}

func (s *Set) String() string {
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// DictEntry is one (key, value) pair.
type DictEntry struct {
	Key, Value Value
}

// Dict is an ordered collection of (key, value) pairs with
// structural-equality keys. Insertion order is preserved and is part of the
// observable iteration contract.
type Dict struct{ entries []DictEntry }

func EmptyDict() *Dict { return &Dict{} }

func NewDict(entries []DictEntry) *Dict {
	d := EmptyDict()
	for _, e := range entries {
		d = d.Set(e.Key, e.Value)
	}
	return d
}

func (d *Dict) Len() int { return len(d.entries) }

func (d *Dict) Get(key Value) (Value, bool) {
	for _, e := range d.entries {
		if e.Key.Equals(key) {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Set returns a new Dict with key bound to value: if key is already present
// its value is replaced in place (preserving its original position),
// otherwise the pair is appended.
func (d *Dict) Set(key, value Value) *Dict {
	out := make([]DictEntry, len(d.entries))
	copy(out, d.entries)
	for i, e := range out {
		if e.Key.Equals(key) {
			out[i].Value = value
			return &Dict{entries: out}
		}
	}
	out = append(out, DictEntry{key, value})
	return &Dict{entries: out}
}

func (d *Dict) Remove(key Value) *Dict {
	out := make([]DictEntry, 0, len(d.entries))
	for _, e := range d.entries {
		if !e.Key.Equals(key) {
			out = append(out, e)
		}
	}
	return &Dict{entries: out}
}

func (d *Dict) Entries() []DictEntry {
	cp := make([]DictEntry, len(d.entries))
	copy(cp, d.entries)
	return cp
}

func (d *Dict) equals(o *Dict) bool {
	if len(d.entries) != len(o.entries) {
		return false
	}
	for _, e := range d.entries {
		v, ok := o.Get(e.Key)
		if !ok || !v.Equals(e.Value) {
			return false
		}
	}
	return true
}

func (d *Dict) hash() hash.Hash {
	h := hash.String("dict-empty")
	for _, e := range d.entries {
		h = h.Add(e.Key.Hash().Merge(e.Value.Hash()))
	}
	return h
}

func (d *Dict) String() string {
	parts := make([]string, len(d.entries))
	for i, e := range d.entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
