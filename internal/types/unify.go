package types

import "fmt"

// Substitution maps type-variable names to types. Composition is right to
// left: (s1.Compose(s2)).Apply(t) == s1.Apply(s2.Apply(t)).
type Substitution map[string]*Type

// Apply replaces every free variable in t according to the substitution.
func (s Substitution) Apply(t *Type) *Type {
	if t == nil || len(s) == 0 {
		return t
	}
	switch t.Kind {
	case KindVar:
		if rep, ok := s[t.Name]; ok {
			return rep
		}
		return t
	case KindNamed:
		if t.Inner == nil {
			return t
		}
		return NewNamed(t.Name, s.Apply(t.Inner))
	case KindFunction:
		return &Type{Kind: KindFunction, Arg: s.Apply(t.Arg), Result: s.Apply(t.Result)}
	case KindSum:
		alts := make([]*Type, len(t.Alternatives))
		for i, a := range t.Alternatives {
			alts[i] = s.Apply(a)
		}
		return NewSum(alts...)
	case KindProduct:
		elems := make([]*Type, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = s.Apply(e)
		}
		return NewProduct(elems...)
	case KindCollection:
		return NewCollection(t.CollectionKind, s.Apply(t.Elem))
	case KindDict:
		return NewDict(s.Apply(t.Key), s.Apply(t.Val))
	case KindRecord:
		fields := make(map[string]*Type, len(t.Fields))
		for k, v := range t.Fields {
			fields[k] = s.Apply(v)
		}
		return NewRecord(t.RecordName, t.fieldOrder, fields)
	default:
		return t
	}
}

// Compose returns a substitution equivalent to applying s2 then s. The
// receiver is the left (outer, applied-last) substitution: for any type t,
// s.Compose(s2).Apply(t) == s.Apply(s2.Apply(t)).
func (s Substitution) Compose(s2 Substitution) Substitution {
	out := Substitution{}
	for k, v := range s2 {
		out[k] = s.Apply(v)
	}
	for k, v := range s {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// UnifyError reports that two types could not be made equal.
type UnifyError struct {
	Left, Right *Type
	Reason      string
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s: %s", e.Left, e.Right, e.Reason)
}

func occurs(name string, t *Type) bool {
	for _, v := range FreeVars(t) {
		if v == name {
			return true
		}
	}
	return false
}

// Unify decides whether t1 and t2 can be made equal by some substitution,
// and if so returns it. Rules are tried in a fixed order: builtins, type
// variables (with an occurs check), functions, collections, dicts, tuples,
// sums, records, then named types -- see DESIGN.md for the occurs-check
// rationale, since recursive types would otherwise unify without ever
// terminating.
func Unify(t1, t2 *Type) (Substitution, error) {
	switch {
	case t1.Kind == KindBuiltin && t2.Kind == KindBuiltin:
		if t1.Builtin == t2.Builtin {
			return Substitution{}, nil
		}
		return nil, &UnifyError{t1, t2, "distinct builtin types"}

	case t1.Kind == KindVar:
		if t2.Kind == KindVar && t1.Name == t2.Name {
			return Substitution{}, nil
		}
		if occurs(t1.Name, t2) {
			return nil, &UnifyError{t1, t2, "occurs check failed"}
		}
		return Substitution{t1.Name: t2}, nil

	case t2.Kind == KindVar:
		return Unify(t2, t1)

	case t1.Kind == KindFunction && t2.Kind == KindFunction:
		sArg, err := Unify(t1.Arg, t2.Arg)
		if err != nil {
			return nil, err
		}
		sRes, err := Unify(sArg.Apply(t1.Result), sArg.Apply(t2.Result))
		if err != nil {
			return nil, err
		}
		return sRes.Compose(sArg), nil

	case t1.Kind == KindCollection && t2.Kind == KindCollection:
		if t1.CollectionKind != t2.CollectionKind {
			return nil, &UnifyError{t1, t2, "Seq vs Set"}
		}
		return Unify(t1.Elem, t2.Elem)

	case t1.Kind == KindDict && t2.Kind == KindDict:
		sKey, err := Unify(t1.Key, t2.Key)
		if err != nil {
			return nil, err
		}
		sVal, err := Unify(sKey.Apply(t1.Val), sKey.Apply(t2.Val))
		if err != nil {
			return nil, err
		}
		return sVal.Compose(sKey), nil

	case t1.Kind == KindProduct && t2.Kind == KindProduct:
		if len(t1.Elements) != len(t2.Elements) {
			return nil, &UnifyError{t1, t2, "tuple arity mismatch"}
		}
		sub := Substitution{}
		for i := range t1.Elements {
			s, err := Unify(sub.Apply(t1.Elements[i]), sub.Apply(t2.Elements[i]))
			if err != nil {
				return nil, err
			}
			sub = s.Compose(sub)
		}
		return sub, nil

	case t1.Kind == KindSum && t2.Kind == KindSum:
		// Sum types unify by bijective, order-independent pairing: each
		// alternative of t1 must unify against some not-yet-matched
		// alternative of t2 (see DESIGN.md for why unequal cardinalities are
		// simply rejected rather than padded or truncated).
		if len(t1.Alternatives) != len(t2.Alternatives) {
			return nil, &UnifyError{t1, t2, "sum type cardinality mismatch"}
		}
		used := make([]bool, len(t2.Alternatives))
		sub := Substitution{}
		for _, a := range t1.Alternatives {
			matched := false
			for j, b := range t2.Alternatives {
				if used[j] {
					continue
				}
				if s, err := Unify(sub.Apply(a), sub.Apply(b)); err == nil {
					sub = s.Compose(sub)
					used[j] = true
					matched = true
					break
				}
			}
			if !matched {
				return nil, &UnifyError{t1, t2, "no matching alternative"}
			}
		}
		return sub, nil

	case t1.Kind == KindRecord && t2.Kind == KindRecord:
		if t1.RecordName != t2.RecordName || len(t1.Fields) != len(t2.Fields) {
			return nil, &UnifyError{t1, t2, "record shape mismatch"}
		}
		sub := Substitution{}
		for name, ft1 := range t1.Fields {
			ft2, ok := t2.Fields[name]
			if !ok {
				return nil, &UnifyError{t1, t2, "missing field " + name}
			}
			s, err := Unify(sub.Apply(ft1), sub.Apply(ft2))
			if err != nil {
				return nil, err
			}
			sub = s.Compose(sub)
		}
		return sub, nil

	case t1.Kind == KindNamed && t2.Kind == KindNamed:
		if t1.Name != t2.Name {
			return nil, &UnifyError{t1, t2, "distinct named types"}
		}
		if t1.Inner == nil && t2.Inner == nil {
			return Substitution{}, nil
		}
		if t1.Inner == nil || t2.Inner == nil {
			return nil, &UnifyError{t1, t2, "type-argument arity mismatch"}
		}
		return Unify(t1.Inner, t2.Inner)

	default:
		return nil, &UnifyError{t1, t2, "incompatible type shapes"}
	}
}
