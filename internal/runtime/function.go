package runtime

import (
	"context"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/symbol"
)

// NativeFunc is the signature a stdlib module registers for a builtin
// function: it receives already-evaluated arguments and returns either a
// value or an exception, never a Go panic/error -- native code participates
// in the same check-then-short-circuit exception protocol as user code.
type NativeFunc func(ctx context.Context, args []Value) (Value, *Exception)

// Function is a closure: either a user-defined function with one or more
// guarded bodies evaluated against a captured environment, or a native
// function backed by Go code. Calling a Function with fewer than its full
// arity of arguments produces a new, more-applied Function rather than
// executing the body -- currying and partial application share one
// mechanism (WithArgs/IsSaturated), mirroring how the teacher's Func value
// wraps a single funcCB plus captured bindings, generalized here to support
// incremental argument accumulation.
type Function struct {
	Name   symbol.ID // symbol.Invalid for an anonymous lambda
	Params []ast.Pattern
	Bodies []ast.GuardedBody
	Env    *Frame // lexical environment captured at definition time

	NativeArity int
	Native      NativeFunc

	Applied []Value // arguments bound so far, via partial application
}

// TotalArity is the number of arguments this function needs before its body
// (or native implementation) can run.
func (f *Function) TotalArity() int {
	if f.Native != nil {
		return f.NativeArity
	}
	return len(f.Params)
}

// WithArgs returns a new Function with args appended to whatever was
// already partially applied. The original Function is untouched, since
// function values (like all runtime values) are immutable once built.
func (f *Function) WithArgs(args []Value) *Function {
	combined := make([]Value, 0, len(f.Applied)+len(args))
	combined = append(combined, f.Applied...)
	combined = append(combined, args...)
	clone := *f
	clone.Applied = combined
	return &clone
}

// IsSaturated reports whether exactly enough arguments have been applied to
// invoke the function body (or native implementation). Strictly more
// arguments than TotalArity is over-application, a runtime error rather
// than something this predicate tolerates: the caller must reject it before
// ever reaching invoke.
func (f *Function) IsSaturated() bool { return len(f.Applied) == f.TotalArity() }
