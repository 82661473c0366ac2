// Package stdlib provides the native modules pre-seeded into a
// moduleloader.Loader's cache at startup: the bodies are ordinary Go code,
// not Yona source, but each export is otherwise indistinguishable from a
// user-defined function to the rest of the system (imports, aliases, field
// access all resolve through the same lookup tables). Only the registration
// mechanism and a handful of illustrative functions live here -- the full
// contents of IO/Math/String/System are explicitly out of scope.
package stdlib

import (
	"context"
	"fmt"
	"math"

	"github.com/grailbio/base/log"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

// nativePos stands in for a call-site position on exceptions raised from
// inside a native function's Go body, where no AST node is being evaluated.
var nativePos = ast.Pos{File: "<native>"}

// Registry collects native modules before they're handed to a loader, so a
// caller can add its own native modules alongside the ones this package
// ships (e.g. a test harness's fixture module) before calling RegisterAll.
type Registry struct {
	modules []*runtime.Module
}

func NewRegistry() *Registry { return &Registry{} }

// Add appends a fully-built native module to the registry.
func (r *Registry) Add(mod *runtime.Module) { r.modules = append(r.modules, mod) }

// loader is the subset of moduleloader.Loader this package depends on,
// avoiding an import of moduleloader itself (which already imports interp,
// which stdlib has no need of).
type loader interface {
	RegisterNative(mod *runtime.Module)
}

// RegisterAll hands every module in the registry to l.
func (r *Registry) RegisterAll(l loader) {
	for _, mod := range r.modules {
		l.RegisterNative(mod)
	}
}

// Default builds the registry of modules this package ships: IO, Math,
// String. A caller wanting a smaller surface can build narrower registries
// by constructing the individual module functions directly.
func Default() *Registry {
	r := NewRegistry()
	r.Add(ioModule())
	r.Add(mathModule())
	r.Add(stringModule())
	return r
}

func nativeModule(pkg []symbol.ID, name string, fns map[string]*runtime.Function) *runtime.Module {
	fqn := &runtime.FQN{PackageParts: pkg, ModuleName: symbol.Intern(name)}
	mod := runtime.NewModule(fqn)
	for fnName, fn := range fns {
		id := symbol.Intern(fnName)
		mod.Exports[id] = true
		mod.Functions[id] = fn
	}
	return mod
}

func native(name string, arity int, cb runtime.NativeFunc) *runtime.Function {
	return &runtime.Function{Name: symbol.Intern(name), NativeArity: arity, Native: cb}
}

// requireArity raises :type_error rather than a Go index-out-of-range panic
// when a native function is invoked with the wrong argument count -- this
// should be unreachable once a function's declared NativeArity matches
// len(args) at every call site, but native functions participate in the
// same check-then-short-circuit discipline as user code, never a panic.
func requireArity(args []runtime.Value, n int) *runtime.Exception {
	if len(args) != n {
		return runtime.Raisef(symbol.TypeError, nativePos, "expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

func requireKind(v runtime.Value, want runtime.Kind) *runtime.Exception {
	if v.Kind() != want {
		return runtime.Raisef(symbol.TypeError, nativePos, "expected a value of kind %s, got %s", want, v.Kind())
	}
	return nil
}

func requireNumeric(v runtime.Value) *runtime.Exception {
	if !v.IsNumeric() {
		return runtime.Raisef(symbol.TypeError, nativePos, "expected a numeric value, got %s", v.Kind())
	}
	return nil
}

func ioModule() *runtime.Module {
	print := native("print", 1, func(ctx context.Context, args []runtime.Value) (runtime.Value, *runtime.Exception) {
		if exc := requireArity(args, 1); exc != nil {
			return runtime.Value{}, exc
		}
		fmt.Print(displayString(args[0]))
		return runtime.Unit, nil
	})
	println := native("println", 1, func(ctx context.Context, args []runtime.Value) (runtime.Value, *runtime.Exception) {
		if exc := requireArity(args, 1); exc != nil {
			return runtime.Value{}, exc
		}
		log.Printf("%s", displayString(args[0]))
		fmt.Println(displayString(args[0]))
		return runtime.Unit, nil
	})
	return nativeModule([]symbol.ID{symbol.Intern("Native")}, "IO", map[string]*runtime.Function{
		"print":   print,
		"println": println,
	})
}

func displayString(v runtime.Value) string {
	switch v.Kind() {
	case runtime.KindString:
		return v.Str()
	default:
		return fmt.Sprint(v)
	}
}

func mathModule() *runtime.Module {
	unary := func(name string, f func(float64) float64) *runtime.Function {
		return native(name, 1, func(ctx context.Context, args []runtime.Value) (runtime.Value, *runtime.Exception) {
			if exc := requireArity(args, 1); exc != nil {
				return runtime.Value{}, exc
			}
			if exc := requireNumeric(args[0]); exc != nil {
				return runtime.Value{}, exc
			}
			return runtime.NewFloat(f(args[0].AsFloat())), nil
		})
	}
	pow := native("pow", 2, func(ctx context.Context, args []runtime.Value) (runtime.Value, *runtime.Exception) {
		if exc := requireArity(args, 2); exc != nil {
			return runtime.Value{}, exc
		}
		if exc := requireNumeric(args[0]); exc != nil {
			return runtime.Value{}, exc
		}
		if exc := requireNumeric(args[1]); exc != nil {
			return runtime.Value{}, exc
		}
		return runtime.NewFloat(math.Pow(args[0].AsFloat(), args[1].AsFloat())), nil
	})
	return nativeModule([]symbol.ID{symbol.Intern("Native")}, "Math", map[string]*runtime.Function{
		"sqrt":  unary("sqrt", math.Sqrt),
		"floor": unary("floor", math.Floor),
		"ceil":  unary("ceil", math.Ceil),
		"abs":   unary("abs", math.Abs),
		"pow":   pow,
	})
}

func stringModule() *runtime.Module {
	length := native("length", 1, func(ctx context.Context, args []runtime.Value) (runtime.Value, *runtime.Exception) {
		if exc := requireArity(args, 1); exc != nil {
			return runtime.Value{}, exc
		}
		if exc := requireKind(args[0], runtime.KindString); exc != nil {
			return runtime.Value{}, exc
		}
		return runtime.NewInt(int64(len([]rune(args[0].Str())))), nil
	})
	concat := native("concat", 2, func(ctx context.Context, args []runtime.Value) (runtime.Value, *runtime.Exception) {
		if exc := requireArity(args, 2); exc != nil {
			return runtime.Value{}, exc
		}
		if exc := requireKind(args[0], runtime.KindString); exc != nil {
			return runtime.Value{}, exc
		}
		if exc := requireKind(args[1], runtime.KindString); exc != nil {
			return runtime.Value{}, exc
		}
		return runtime.NewString(args[0].Str() + args[1].Str()), nil
	})
	return nativeModule([]symbol.ID{symbol.Intern("Native")}, "String", map[string]*runtime.Function{
		"length": length,
		"concat": concat,
	})
}
