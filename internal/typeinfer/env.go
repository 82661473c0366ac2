package typeinfer

import (
	"github.com/yona-lang/yona/internal/symbol"
	"github.com/yona-lang/yona/internal/types"
)

// Env is the type-inference environment: a stack of name -> scheme frames,
// structurally identical to the interpreter's runtime.Frame (inline
// two-slot fast path plus map overflow), but carrying type schemes instead
// of values since inference and evaluation are two separate passes over the
// same AST.
type Env struct {
	parent     *Env
	sym0, sym1 symbol.ID
	sch0, sch1 *types.Scheme
	vars       map[symbol.ID]*types.Scheme
}

func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, sym0: symbol.Invalid, sym1: symbol.Invalid}
}

func (e *Env) Bind(name symbol.ID, s *types.Scheme) {
	if e.sym0 == symbol.Invalid || e.sym0 == name {
		e.sym0, e.sch0 = name, s
		return
	}
	if e.sym1 == symbol.Invalid || e.sym1 == name {
		e.sym1, e.sch1 = name, s
		return
	}
	if e.vars == nil {
		e.vars = map[symbol.ID]*types.Scheme{}
	}
	e.vars[name] = s
}

func (e *Env) lookupLocal(name symbol.ID) (*types.Scheme, bool) {
	if name == e.sym0 {
		return e.sch0, true
	}
	if name == e.sym1 {
		return e.sch1, true
	}
	if e.vars != nil {
		s, ok := e.vars[name]
		return s, ok
	}
	return nil, false
}

func (e *Env) Lookup(name symbol.ID) (*types.Scheme, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if s, ok := cur.lookupLocal(name); ok {
			return s, true
		}
	}
	return nil, false
}

func (e *Env) Child() *Env { return NewEnv(e) }

// FreeVars collects every type-variable name free in some scheme reachable
// from e, used by Generalize to decide which variables in a new type are
// safe to quantify over (not already in scope, and so not meaningfully
// "fixed" by an enclosing binding).
func (e *Env) FreeVars() map[string]bool {
	out := map[string]bool{}
	for cur := e; cur != nil; cur = cur.parent {
		addSchemeFree(out, cur.sch0, cur.sym0)
		addSchemeFree(out, cur.sch1, cur.sym1)
		for sym, s := range cur.vars {
			addSchemeFree(out, s, sym)
		}
	}
	return out
}

func addSchemeFree(out map[string]bool, s *types.Scheme, sym symbol.ID) {
	if sym == symbol.Invalid || s == nil {
		return
	}
	quantified := map[string]bool{}
	for _, v := range s.Vars {
		quantified[v] = true
	}
	for _, v := range types.FreeVars(s.Type) {
		if !quantified[v] {
			out[v] = true
		}
	}
}
