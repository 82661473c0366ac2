package interp

import (
	"context"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/pattern"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

// evalArgs evaluates a call's positional arguments in order, then its named
// arguments, appending the named values positionally after the positional
// ones. Named arguments are not reordered to match the callee's parameter
// names -- there is no row-typing/keyword-matching pass here, the same
// simplification the type inferencer makes for the same call shapes.
func (interp *Interpreter) evalArgs(args ast.CallArgs, frame *runtime.Frame) ([]runtime.Value, *runtime.Exception) {
	out := make([]runtime.Value, 0, len(args.Positional)+len(args.Named))
	for _, a := range args.Positional {
		v, exc := interp.Eval(a, frame)
		if exc != nil {
			return nil, exc
		}
		out = append(out, v)
	}
	for _, na := range args.Named {
		v, exc := interp.Eval(na.Expr, frame)
		if exc != nil {
			return nil, exc
		}
		out = append(out, v)
	}
	return out, nil
}

func (interp *Interpreter) evalCall(pos ast.Pos, callee runtime.Value, args ast.CallArgs, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	if callee.Kind() != runtime.KindFunction {
		return runtime.Value{}, runtime.Raisef(symbol.TypeError, pos, "cannot call a value of kind %s", callee.Kind())
	}
	argVals, exc := interp.evalArgs(args, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}
	return interp.apply(context.Background(), callee.Function(), argVals, pos)
}

// apply accumulates args onto fn via WithArgs and, once saturated, invokes
// the body (or native implementation). Over-application -- more arguments
// supplied than the function's total arity -- is a runtime error, not
// auto-application of the excess to the call's result: the original
// interpreter raises rather than treats a function's result as itself
// callable.
func (interp *Interpreter) apply(ctx context.Context, fn *runtime.Function, args []runtime.Value, pos ast.Pos) (runtime.Value, *runtime.Exception) {
	arity := fn.TotalArity()
	if total := len(fn.Applied) + len(args); total > arity {
		return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, pos, "too many arguments provided: expected %d, got %d", arity, total)
	}

	applied := fn.WithArgs(args)
	if !applied.IsSaturated() {
		return runtime.NewFunctionValue(applied), nil
	}
	return interp.invoke(ctx, applied, pos)
}

// invoke runs a saturated function's implementation: for a native function,
// its Go callback directly; for a user-defined one, pattern-matches each
// parameter against its accumulated argument in a fresh call frame, then
// tries each guarded body in order.
func (interp *Interpreter) invoke(ctx context.Context, fn *runtime.Function, pos ast.Pos) (runtime.Value, *runtime.Exception) {
	if fn.Native != nil {
		return fn.Native(ctx, fn.Applied)
	}

	callFrame := fn.Env.Child()
	bindingSets := make([]map[symbol.ID]runtime.Value, len(fn.Params))
	for i, p := range fn.Params {
		bindings, ok, exc := pattern.Match(p, fn.Applied[i], callFrame, interp)
		if exc != nil {
			return runtime.Value{}, exc
		}
		if !ok {
			return runtime.Value{}, runtime.Raisef(symbol.NoMatch, pos, "argument %d did not match function %s's parameter pattern", i, fn.Name.Str())
		}
		bindingSets[i] = bindings
	}
	merged := map[symbol.ID]runtime.Value{}
	for _, bindings := range bindingSets {
		for name, v := range bindings {
			if existing, ok := merged[name]; ok {
				if !existing.Equals(v) {
					return runtime.Value{}, runtime.Raisef(symbol.NoMatch, pos, "parameter %s bound to two different values across %s's parameter patterns", name.Str(), fn.Name.Str())
				}
				continue
			}
			merged[name] = v
		}
	}
	for name, v := range merged {
		callFrame.Bind(name, v)
	}

	for _, gb := range fn.Bodies {
		if gb.Guard != nil {
			gv, exc := interp.Eval(gb.Guard, callFrame)
			if exc != nil {
				return runtime.Value{}, exc
			}
			if gv.Kind() != runtime.KindBool || !gv.Bool() {
				continue
			}
		}
		return interp.Eval(gb.Body, callFrame)
	}
	return runtime.Value{}, runtime.Raisef(symbol.GuardFailed, pos, "no guarded body of function %s held", fn.Name.Str())
}
