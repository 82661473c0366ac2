package interp

import (
	"context"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/pattern"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

// evalRecordInstance registers a record's field shape from the first
// instance literal that names it -- ast.TypeDeclNode carries only a type
// name and its type parameters, no field list, so the field set and order
// are established the same structural way the type inferencer's
// RecordRegistry does it: whichever RecordInstanceExpr is evaluated first
// for a given name fixes that record's shape for the rest of the run.
func (interp *Interpreter) evalRecordInstance(n *ast.RecordInstanceExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	rt, ok := interp.records[n.RecordType]
	if !ok {
		fields := make([]symbol.ID, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = f.Name
		}
		rt = &runtime.RecordType{Name: n.RecordType, Fields: fields}
		interp.records[n.RecordType] = rt
	}

	values := make([]runtime.Value, len(rt.Fields))
	seen := make(map[symbol.ID]bool, len(n.Fields))
	for _, f := range n.Fields {
		idx := rt.FieldIndex(f.Name)
		if idx < 0 {
			return runtime.Value{}, runtime.Raisef(symbol.FieldNotFound, n.Pos(), "record %s has no field %s", n.RecordType.Str(), f.Name.Str())
		}
		v, exc := interp.Eval(f.Expr, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		values[idx] = v
		seen[f.Name] = true
	}
	if len(seen) != len(rt.Fields) {
		return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, n.Pos(), "record %s requires every field to be initialized", n.RecordType.Str())
	}
	return runtime.NewRecordValue(runtime.NewRecord(rt, values)), nil
}

// evalRange materializes a `[a .. b]`/`[a .. b .. step]` literal into a Seq.
// The float-bounded case walks to end+/-epsilon so that floating point error
// accumulated over the step additions can't silently drop the last element
// that should be included under an inclusive range.
func (interp *Interpreter) evalRange(n *ast.SeqExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	start, exc := interp.Eval(n.Range.Start, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}
	end, exc := interp.Eval(n.Range.End, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}
	var step runtime.Value
	if n.Range.Step != nil {
		step, exc = interp.Eval(n.Range.Step, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
	} else if start.IsNumeric() && end.IsNumeric() && start.AsFloat() <= end.AsFloat() {
		step = runtime.NewInt(1)
	} else {
		step = runtime.NewInt(-1)
	}
	if !start.IsNumeric() || !end.IsNumeric() || !step.IsNumeric() {
		return runtime.Value{}, runtime.Raisef(symbol.TypeError, n.Pos(), "range bounds and step must be numeric")
	}
	stepF := step.AsFloat()
	if stepF == 0 {
		return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, n.Pos(), "range step must not be zero")
	}

	var elems []runtime.Value
	if start.Kind() == runtime.KindFloat || end.Kind() == runtime.KindFloat || step.Kind() == runtime.KindFloat {
		const epsilon = 1e-9
		a, b := start.AsFloat(), end.AsFloat()
		if stepF > 0 {
			for v := a; v <= b+epsilon; v += stepF {
				elems = append(elems, runtime.NewFloat(v))
			}
		} else {
			for v := a; v >= b-epsilon; v += stepF {
				elems = append(elems, runtime.NewFloat(v))
			}
		}
	} else {
		a, b, s := start.Int(), end.Int(), step.Int()
		if s > 0 {
			for v := a; v <= b; v += s {
				elems = append(elems, runtime.NewInt(v))
			}
		} else {
			for v := a; v >= b; v += s {
				elems = append(elems, runtime.NewInt(v))
			}
		}
	}
	return runtime.NewSeqValue(runtime.NewSeq(elems)), nil
}

// iterateComprehension walks a comprehension's clauses depth-first as nested
// loops, calling emit once per surviving combination of generator bindings
// with a frame that has all of them bound.
func (interp *Interpreter) iterateComprehension(clauses []ast.CompClause, frame *runtime.Frame, emit func(*runtime.Frame) *runtime.Exception) *runtime.Exception {
	if len(clauses) == 0 {
		return emit(frame)
	}
	switch c := clauses[0].(type) {
	case *ast.GeneratorClause:
		src, exc := interp.Eval(c.Source, frame)
		if exc != nil {
			return exc
		}
		var elems []runtime.Value
		switch src.Kind() {
		case runtime.KindSeq:
			elems = src.Seq().Elements()
		case runtime.KindSet:
			elems = src.Set().Elements()
		case runtime.KindDict:
			for _, e := range src.Dict().Entries() {
				elems = append(elems, runtime.NewTuple([]runtime.Value{e.Key, e.Value}))
			}
		default:
			return runtime.Raisef(symbol.TypeError, c.Pos(), "comprehension generator source must be a collection, got %s", src.Kind())
		}
		for _, el := range elems {
			bindings, ok, exc := pattern.Match(c.Pattern, el, frame, interp)
			if exc != nil {
				return exc
			}
			if !ok {
				continue
			}
			child := frame.Child()
			for name, v := range bindings {
				child.Bind(name, v)
			}
			if exc := interp.iterateComprehension(clauses[1:], child, emit); exc != nil {
				return exc
			}
		}
		return nil

	case *ast.ConditionClause:
		v, exc := interp.Eval(c.Condition, frame)
		if exc != nil {
			return exc
		}
		if v.Kind() != runtime.KindBool {
			return runtime.Raisef(symbol.TypeError, c.Pos(), "comprehension condition must be Bool, got %s", v.Kind())
		}
		if !v.Bool() {
			return nil
		}
		return interp.iterateComprehension(clauses[1:], frame, emit)
	}
	return nil
}

func (interp *Interpreter) evalSeqComprehension(n *ast.SeqComprehension, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	var elems []runtime.Value
	exc := interp.iterateComprehension(n.Clauses, frame, func(f *runtime.Frame) *runtime.Exception {
		v, exc := interp.Eval(n.Expr, f)
		if exc != nil {
			return exc
		}
		elems = append(elems, v)
		return nil
	})
	if exc != nil {
		return runtime.Value{}, exc
	}
	return runtime.NewSeqValue(runtime.NewSeq(elems)), nil
}

func (interp *Interpreter) evalSetComprehension(n *ast.SetComprehension, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	acc := runtime.EmptySet()
	exc := interp.iterateComprehension(n.Clauses, frame, func(f *runtime.Frame) *runtime.Exception {
		v, exc := interp.Eval(n.Expr, f)
		if exc != nil {
			return exc
		}
		acc = acc.Add(v)
		return nil
	})
	if exc != nil {
		return runtime.Value{}, exc
	}
	return runtime.NewSetValue(acc), nil
}

func (interp *Interpreter) evalDictComprehension(n *ast.DictComprehension, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	acc := runtime.EmptyDict()
	exc := interp.iterateComprehension(n.Clauses, frame, func(f *runtime.Frame) *runtime.Exception {
		k, exc := interp.Eval(n.Key, f)
		if exc != nil {
			return exc
		}
		v, exc := interp.Eval(n.Value, f)
		if exc != nil {
			return exc
		}
		acc = acc.Set(k, v)
		return nil
	})
	if exc != nil {
		return runtime.Value{}, exc
	}
	return runtime.NewDictValue(acc), nil
}

func (interp *Interpreter) loadModule(fqnExpr *ast.FQNExpr, pos ast.Pos) (*runtime.Module, *runtime.Exception) {
	if interp.loader == nil {
		return nil, runtime.Raisef(symbol.ModuleNotFound, pos, "no module loader configured")
	}
	return interp.loader.Load(context.Background(), fqnFromExpr(fqnExpr), pos)
}

func (interp *Interpreter) evalImport(n *ast.ImportExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	child := frame.Child()
	for _, clause := range n.Clauses {
		switch c := clause.(type) {
		case *ast.ModuleImportClause:
			mod, exc := interp.loadModule(c.FQN, c.Pos())
			if exc != nil {
				return runtime.Value{}, exc
			}
			if c.Alias == symbol.Invalid {
				// No alias: every exported name binds directly into scope
				// rather than the module object itself.
				for name := range mod.Exports {
					fn, ok := mod.Functions[name]
					if !ok {
						continue
					}
					child.Bind(name, runtime.NewFunctionValue(fn))
				}
			} else {
				child.Bind(c.Alias, runtime.NewModuleValue(mod))
			}

		case *ast.FunctionsImportClause:
			mod, exc := interp.loadModule(c.FQN, c.Pos())
			if exc != nil {
				return runtime.Value{}, exc
			}
			for _, b := range c.Functions {
				fn, ok := mod.Functions[b.ExportedName]
				if !ok || !mod.IsExported(b.ExportedName) {
					return runtime.Value{}, runtime.Raisef(symbol.FunctionNotFound, c.Pos(), "module %s has no exported function %s", mod.FQN.String(), b.ExportedName.Str())
				}
				local := b.LocalName
				if local == symbol.Invalid {
					local = b.ExportedName
				}
				child.Bind(local, runtime.NewFunctionValue(fn))
			}
		}
	}
	return interp.Eval(n.Body, child)
}

// evalModule builds a Module value, binding every module-level function into
// one shared frame before any of them can be called -- mutual recursion
// between module functions falls out of Go's reference semantics on
// *runtime.Frame rather than needing a separate fixpoint pass.
func (interp *Interpreter) evalModule(n *ast.ModuleExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	mod := runtime.NewModule(fqnFromExpr(n.FQN))
	for _, name := range n.Exports {
		mod.Exports[name] = true
	}
	moduleFrame := frame.Child()
	for _, fe := range n.Functions {
		fn := &runtime.Function{Name: fe.Name, Params: fe.Params, Bodies: fe.Bodies, Env: moduleFrame}
		mod.Functions[fe.Name] = fn
		moduleFrame.Bind(fe.Name, runtime.NewFunctionValue(fn))
	}
	return runtime.NewModuleValue(mod), nil
}
