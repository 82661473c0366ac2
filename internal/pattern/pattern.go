// Package pattern implements the pattern matcher: deciding whether a
// runtime value matches a pattern AST node, and if so, what bindings that
// match introduces.
package pattern

import (
	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

// Evaluator lets the matcher evaluate the key expression of a DictPattern
// entry (a plain expression, not itself matched) without internal/pattern
// importing internal/interp -- the interpreter implements this interface
// and passes itself in, instead.
type Evaluator interface {
	Eval(node ast.Node, frame *runtime.Frame) (runtime.Value, *runtime.Exception)
}

type state struct {
	eval      Evaluator
	enclosing *runtime.Frame
	bindings  map[symbol.ID]runtime.Value
}

// Match decides whether val matches pat. On success it returns the bindings
// introduced by the match (to be merged into the caller's frame by the
// caller); on failure it returns ok=false and no bindings are ever visible
// outside this call -- the scratch map built up during a failed or
// abandoned trial (e.g. a losing OrPattern alternative) is simply dropped,
// never merged.
func Match(pat ast.Pattern, val runtime.Value, enclosing *runtime.Frame, eval Evaluator) (bindings map[symbol.ID]runtime.Value, ok bool, exc *runtime.Exception) {
	s := &state{eval: eval, enclosing: enclosing, bindings: map[symbol.ID]runtime.Value{}}
	matched, exc := s.match(pat, val)
	if exc != nil {
		return nil, false, exc
	}
	if !matched {
		return nil, false, nil
	}
	return s.bindings, true, nil
}

func cloneBindings(b map[symbol.ID]runtime.Value) map[symbol.ID]runtime.Value {
	out := make(map[symbol.ID]runtime.Value, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// bind records name -> v. A name bound twice within the same pattern (a
// non-linear pattern) requires the two values to be structurally equal;
// otherwise the match fails rather than silently keeping the later value.
func (s *state) bind(name symbol.ID, v runtime.Value) bool {
	if existing, ok := s.bindings[name]; ok {
		return existing.Equals(v)
	}
	s.bindings[name] = v
	return true
}

// evalFrame builds a frame reflecting bindings accumulated so far, for
// evaluating a DictPattern key expression mid-match.
func (s *state) evalFrame() *runtime.Frame {
	f := s.enclosing.Child()
	for k, v := range s.bindings {
		f.Bind(k, v)
	}
	return f
}

func (s *state) match(pat ast.Pattern, val runtime.Value) (bool, *runtime.Exception) {
	switch p := pat.(type) {
	case *ast.UnderscorePattern:
		return true, nil

	case *ast.IdentifierPattern:
		return s.bind(p.Name, val), nil

	case *ast.LiteralPattern:
		lv, ok := literalValue(p.Literal)
		if !ok {
			return false, nil
		}
		return lv.Equals(val), nil

	case *ast.TuplePattern:
		if val.Kind() != runtime.KindTuple {
			return false, nil
		}
		elems := val.Tuple().Elements
		if len(elems) != len(p.Elements) {
			return false, nil
		}
		return s.matchAll(p.Elements, elems)

	case *ast.SequencePattern:
		if val.Kind() != runtime.KindSeq {
			return false, nil
		}
		seq := val.Seq()
		if seq.Len() != len(p.Elements) {
			return false, nil
		}
		return s.matchAll(p.Elements, seq.Elements())

	case *ast.HeadTailsPattern:
		if val.Kind() != runtime.KindSeq || val.Seq().IsEmpty() {
			return false, nil
		}
		seq := val.Seq()
		ok, exc := s.match(p.Head, seq.Head())
		if !ok || exc != nil {
			return ok, exc
		}
		return s.match(p.Tails, runtime.NewSeqValue(seq.Tails()))

	case *ast.TailsHeadPattern:
		if val.Kind() != runtime.KindSeq || val.Seq().IsEmpty() {
			return false, nil
		}
		seq := val.Seq()
		ok, exc := s.match(p.Tails, runtime.NewSeqValue(seq.Init()))
		if !ok || exc != nil {
			return ok, exc
		}
		return s.match(p.Head, seq.LastHead())

	case *ast.HeadTailsHeadPattern:
		if val.Kind() != runtime.KindSeq || val.Seq().Len() < 2 {
			return false, nil
		}
		seq := val.Seq()
		n := seq.Len()
		ok, exc := s.match(p.Left, seq.At(0))
		if !ok || exc != nil {
			return ok, exc
		}
		ok, exc = s.match(p.Right, seq.At(n-1))
		if !ok || exc != nil {
			return ok, exc
		}
		middle := runtime.NewSeq(seq.Elements()[1 : n-1])
		return s.match(p.Tails, runtime.NewSeqValue(middle))

	case *ast.DictPattern:
		if val.Kind() != runtime.KindDict {
			return false, nil
		}
		d := val.Dict()
		for _, entry := range p.Entries {
			keyVal, exc := s.eval.Eval(entry.Key, s.evalFrame())
			if exc != nil {
				return false, exc
			}
			v, found := d.Get(keyVal)
			if !found {
				return false, nil
			}
			ok, exc := s.match(entry.Value, v)
			if !ok || exc != nil {
				return ok, exc
			}
		}
		return true, nil

	case *ast.RecordPattern:
		if val.Kind() != runtime.KindRecord {
			return false, nil
		}
		rec := val.Record()
		if rec.Type.Name != p.RecordType {
			return false, nil
		}
		for _, fp := range p.Fields {
			v, found := rec.Field(fp.Field)
			if !found {
				return false, nil
			}
			ok, exc := s.match(fp.Pattern, v)
			if !ok || exc != nil {
				return ok, exc
			}
		}
		return true, nil

	case *ast.AsPattern:
		ok, exc := s.match(p.Pattern, val)
		if !ok || exc != nil {
			return ok, exc
		}
		return s.bind(p.Name, val), nil

	case *ast.OrPattern:
		saved := s.bindings
		for _, alt := range p.Alternatives {
			s.bindings = cloneBindings(saved)
			ok, exc := s.match(alt, val)
			if exc != nil {
				return false, exc
			}
			if ok {
				return true, nil
			}
		}
		s.bindings = saved
		return false, nil

	default:
		return false, nil
	}
}

func (s *state) matchAll(pats []ast.Pattern, vals []runtime.Value) (bool, *runtime.Exception) {
	for i, p := range pats {
		ok, exc := s.match(p, vals[i])
		if !ok || exc != nil {
			return ok, exc
		}
	}
	return true, nil
}

// literalValue converts a literal AST node (the only node kinds valid
// inside a LiteralPattern) into the runtime value it denotes.
func literalValue(n ast.Node) (runtime.Value, bool) {
	switch lit := n.(type) {
	case *ast.IntLit:
		return runtime.NewInt(lit.Value), true
	case *ast.FloatLit:
		return runtime.NewFloat(lit.Value), true
	case *ast.ByteLit:
		return runtime.NewByte(lit.Value), true
	case *ast.CharLit:
		return runtime.NewChar(lit.Value), true
	case *ast.StringLit:
		return runtime.NewString(lit.Value), true
	case *ast.SymbolLit:
		return runtime.NewSymbol(lit.Value), true
	case *ast.UnitLit:
		return runtime.Unit, true
	case *ast.BoolLit:
		return runtime.NewBool(lit.Value), true
	default:
		return runtime.Value{}, false
	}
}
