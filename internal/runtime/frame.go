package runtime

import "github.com/yona-lang/yona/internal/symbol"

// Frame is one lexical scope: a set of variable bindings plus a link to the
// enclosing scope. Lookups walk outward until a name is found or the chain
// is exhausted. This adapts the teacher's callFrame (two inline slots plus
// an overflow map, to avoid a map allocation for the overwhelmingly common
// one- or two-variable frame) into a persistent linked list rather than a
// flat, clone-on-share stack: a closure here needs to capture an arbitrary
// enclosing Frame by reference and keep running after its creator's own
// frame has been popped, which a flat stack shared across calls cannot
// support without a full copy per closure.
type Frame struct {
	parent     *Frame
	sym0, sym1 symbol.ID
	val0, val1 Value
	vars       map[symbol.ID]Value
}

// NewFrame creates a new, empty scope chained to parent (nil for the
// outermost/global scope).
func NewFrame(parent *Frame) *Frame {
	return &Frame{parent: parent, sym0: symbol.Invalid, sym1: symbol.Invalid}
}

// Bind adds name -> v to this frame. It panics if name is already bound in
// this exact frame (shadowing happens by pushing a new frame, not by
// rebinding within one).
func (f *Frame) Bind(name symbol.ID, v Value) {
	if name == symbol.Invalid {
		panic("cannot bind the invalid symbol")
	}
	if f.sym0 == symbol.Invalid {
		f.sym0, f.val0 = name, v
		return
	}
	if f.sym0 == name {
		panic("variable '" + name.Str() + "' already bound in this frame")
	}
	if f.sym1 == symbol.Invalid {
		f.sym1, f.val1 = name, v
		return
	}
	if f.sym1 == name {
		panic("variable '" + name.Str() + "' already bound in this frame")
	}
	if f.vars == nil {
		f.vars = map[symbol.ID]Value{}
	} else if _, ok := f.vars[name]; ok {
		panic("variable '" + name.Str() + "' already bound in this frame")
	}
	f.vars[name] = v
}

// lookupLocal checks only this frame, not its ancestors.
func (f *Frame) lookupLocal(name symbol.ID) (Value, bool) {
	if name == f.sym0 {
		return f.val0, true
	}
	if name == f.sym1 {
		return f.val1, true
	}
	if f.vars != nil {
		v, ok := f.vars[name]
		return v, ok
	}
	return Value{}, false
}

// Lookup walks from f outward through enclosing frames.
func (f *Frame) Lookup(name symbol.ID) (Value, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.lookupLocal(name); ok {
			return v, true
		}
	}
	return Value{}, false
}

// Child creates a new frame enclosed by f, for entering a nested scope
// (function call, let, case clause, comprehension generator).
func (f *Frame) Child() *Frame { return NewFrame(f) }

// Names lists every variable bound directly in this frame (not ancestors),
// for diagnostics.
func (f *Frame) Names() []symbol.ID {
	var out []symbol.ID
	if f.sym0 != symbol.Invalid {
		out = append(out, f.sym0)
	}
	if f.sym1 != symbol.Invalid {
		out = append(out, f.sym1)
	}
	for s := range f.vars {
		out = append(out, s)
	}
	return out
}
