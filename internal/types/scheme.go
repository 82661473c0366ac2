package types

import "fmt"

// Scheme is a type universally quantified over a set of type variables, the
// result of generalization.
type Scheme struct {
	Vars []string
	Type *Type
}

// Mono wraps a type with no quantified variables (a monotype).
func Mono(t *Type) *Scheme { return &Scheme{Type: t} }

// VarGen hands out fresh type-variable names for instantiation. Each
// inferencer instance owns its own VarGen; there is no global
// mutable counter, so concurrent inferencer instances cannot collide.
type VarGen struct{ next int }

// Fresh returns a brand-new type variable.
func (g *VarGen) Fresh() *Type {
	name := fmt.Sprintf("t%d", g.next)
	g.next++
	return NewVar(name)
}

// Generalize abstracts over every variable free in t but not free in env,
// producing a type scheme: a let-bound name gets to be used at several
// different instantiated types across its scope.
func Generalize(t *Type, envFree map[string]bool) *Scheme {
	var vars []string
	for _, v := range FreeVars(t) {
		if !envFree[v] {
			vars = append(vars, v)
		}
	}
	return &Scheme{Vars: vars, Type: t}
}

// Instantiate replaces every quantified variable in s with a fresh one,
// producing a monotype ready for unification against a call site.
func Instantiate(s *Scheme, g *VarGen) *Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	sub := Substitution{}
	for _, v := range s.Vars {
		sub[v] = g.Fresh()
	}
	return sub.Apply(s.Type)
}
