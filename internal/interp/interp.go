// Package interp implements the tree-walking evaluator: given an AST node
// and a lexical Frame, it produces a runtime.Value or, on failure, a
// runtime.Exception propagated by explicit return rather than a Go panic.
package interp

import (
	"context"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/pattern"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

// ModuleLoader resolves a fully qualified module name to a loaded Module,
// consulted by import expressions and the explicit-FQN call form. Defined
// here (rather than imported from internal/moduleloader) so the dependency
// runs one way only: moduleloader imports interp to evaluate a module's
// body, and satisfies this interface to hand the result back, instead of
// interp importing moduleloader and creating a cycle.
type ModuleLoader interface {
	Load(ctx context.Context, fqn *runtime.FQN, pos ast.Pos) (*runtime.Module, *runtime.Exception)
}

// Interpreter holds the state shared across one evaluation run: the record
// type registry (populated the same lazy, structural way as the type
// inferencer's RecordRegistry, and for the same reason -- TypeDeclNode
// carries no field list of its own) and the module loader used to resolve
// imports and explicit module calls.
type Interpreter struct {
	records map[symbol.ID]*runtime.RecordType
	loader  ModuleLoader
}

func NewInterpreter(loader ModuleLoader) *Interpreter {
	return &Interpreter{records: map[symbol.ID]*runtime.RecordType{}, loader: loader}
}

// Eval implements pattern.Evaluator so the pattern matcher can evaluate a
// DictPattern entry's key expression without internal/pattern depending on
// this package.
var _ pattern.Evaluator = (*Interpreter)(nil)

func (interp *Interpreter) Eval(n ast.Node, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	switch node := n.(type) {
	case *ast.IntLit:
		return runtime.NewInt(node.Value), nil
	case *ast.FloatLit:
		return runtime.NewFloat(node.Value), nil
	case *ast.ByteLit:
		return runtime.NewByte(node.Value), nil
	case *ast.CharLit:
		return runtime.NewChar(node.Value), nil
	case *ast.StringLit:
		return runtime.NewString(node.Value), nil
	case *ast.SymbolLit:
		return runtime.NewSymbol(node.Value), nil
	case *ast.UnitLit:
		return runtime.Unit, nil
	case *ast.BoolLit:
		return runtime.NewBool(node.Value), nil

	case *ast.TupleExpr:
		elems, exc := interp.evalAll(node.Elements, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		return runtime.NewTuple(elems), nil

	case *ast.SeqExpr:
		return interp.evalSeq(node, frame)
	case *ast.SetExpr:
		elems, exc := interp.evalAll(node.Elements, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		return runtime.NewSetValue(runtime.NewSet(elems)), nil

	case *ast.DictExpr:
		entries := make([]runtime.DictEntry, len(node.Entries))
		for i, e := range node.Entries {
			k, exc := interp.Eval(e.Key, frame)
			if exc != nil {
				return runtime.Value{}, exc
			}
			v, exc := interp.Eval(e.Value, frame)
			if exc != nil {
				return runtime.Value{}, exc
			}
			entries[i] = runtime.DictEntry{Key: k, Value: v}
		}
		return runtime.NewDictValue(runtime.NewDict(entries)), nil

	case *ast.RecordInstanceExpr:
		return interp.evalRecordInstance(node, frame)

	case *ast.FQNExpr:
		return runtime.NewFQNValue(fqnFromExpr(node)), nil

	case *ast.IdentifierExpr:
		v, ok := frame.Lookup(node.Name)
		if !ok {
			return runtime.Value{}, runtime.Raisef(symbol.UndefinedVar, node.Pos(), "undefined variable %s", node.Name.Str())
		}
		return v, nil

	case *ast.BinaryExpr:
		return interp.evalBinary(node, frame)
	case *ast.UnaryExpr:
		return interp.evalUnary(node, frame)

	case *ast.IfExpr:
		cond, exc := interp.Eval(node.Cond, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		if cond.Kind() != runtime.KindBool {
			return runtime.Value{}, runtime.Raisef(symbol.TypeError, node.Pos(), "if condition must be Bool, got %s", cond.Kind())
		}
		if cond.Bool() {
			return interp.Eval(node.Then, frame)
		}
		return interp.Eval(node.Else, frame)

	case *ast.LetExpr:
		child := frame.Child()
		for _, a := range node.Aliases {
			if exc := interp.evalAlias(a, child); exc != nil {
				return runtime.Value{}, exc
			}
		}
		return interp.Eval(node.Body, child)

	case *ast.DoExpr:
		return interp.evalDo(node, frame)
	case *ast.CaseExpr:
		return interp.evalCase(node, frame)
	case *ast.TryCatchExpr:
		return interp.evalTryCatch(node, frame)

	case *ast.RaiseExpr:
		msg, exc := interp.Eval(node.Message, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		return runtime.Value{}, runtime.NewException(node.Symbol, msg, node.Pos())

	case *ast.WithExpr:
		res, exc := interp.Eval(node.Resource, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		child := frame.Child()
		name := node.Name
		if name == symbol.Invalid {
			name = symbol.Self
		}
		child.Bind(name, res)
		return interp.Eval(node.Body, child)

	case *ast.FieldAccessExpr:
		rec, exc := interp.Eval(node.Record, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		if rec.Kind() != runtime.KindRecord {
			return runtime.Value{}, runtime.Raisef(symbol.TypeError, node.Pos(), "field access on non-record value %s", rec.Kind())
		}
		v, ok := rec.Record().Field(node.Field)
		if !ok {
			return runtime.Value{}, runtime.Raisef(symbol.FieldNotFound, node.Pos(), "record %s has no field %s", rec.Record().Type.Name.Str(), node.Field.Str())
		}
		return v, nil

	case *ast.FieldUpdateExpr:
		rec, exc := interp.Eval(node.Record, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		if rec.Kind() != runtime.KindRecord {
			return runtime.Value{}, runtime.Raisef(symbol.TypeError, node.Pos(), "update on non-record value %s", rec.Kind())
		}
		updates := make(map[symbol.ID]runtime.Value, len(node.Fields))
		for _, f := range node.Fields {
			v, exc := interp.Eval(f.Expr, frame)
			if exc != nil {
				return runtime.Value{}, exc
			}
			if rec.Record().Type.FieldIndex(f.Field) < 0 {
				return runtime.Value{}, runtime.Raisef(symbol.FieldNotFound, node.Pos(), "record %s has no field %s", rec.Record().Type.Name.Str(), f.Field.Str())
			}
			updates[f.Field] = v
		}
		return runtime.NewRecordValue(rec.Record().Update(updates)), nil

	case *ast.FunctionExpr:
		return runtime.NewFunctionValue(&runtime.Function{
			Name:   node.Name,
			Params: node.Params,
			Bodies: node.Bodies,
			Env:    frame,
		}), nil

	case *ast.ApplyExpr:
		callee, exc := interp.Eval(node.Callee, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		return interp.evalCall(node.Pos(), callee, node.Args, frame)

	case *ast.NameCallExpr:
		callee, ok := frame.Lookup(node.Name)
		if !ok {
			return runtime.Value{}, runtime.Raisef(symbol.FunctionNotFound, node.Pos(), "undefined function %s", node.Name.Str())
		}
		return interp.evalCall(node.Pos(), callee, node.Args, frame)

	case *ast.AliasCallExpr:
		modVal, ok := frame.Lookup(node.Alias)
		if !ok || modVal.Kind() != runtime.KindModule {
			return runtime.Value{}, runtime.Raisef(symbol.ModuleNotFound, node.Pos(), "undefined module alias %s", node.Alias.Str())
		}
		fn, ok := modVal.Module().Functions[node.Func]
		if !ok {
			return runtime.Value{}, runtime.Raisef(symbol.FunctionNotFound, node.Pos(), "module %s has no function %s", modVal.Module().FQN.String(), node.Func.Str())
		}
		return interp.evalCall(node.Pos(), runtime.NewFunctionValue(fn), node.Args, frame)

	case *ast.ModuleCallExpr:
		mod, exc := interp.loadModule(node.FQN, node.Pos())
		if exc != nil {
			return runtime.Value{}, exc
		}
		fn, ok := mod.Functions[node.Func]
		if !ok {
			return runtime.Value{}, runtime.Raisef(symbol.FunctionNotFound, node.Pos(), "module %s has no function %s", mod.FQN.String(), node.Func.Str())
		}
		return interp.evalCall(node.Pos(), runtime.NewFunctionValue(fn), node.Args, frame)

	case *ast.ExprCallExpr:
		callee, exc := interp.Eval(node.Expr, frame)
		if exc != nil {
			return runtime.Value{}, exc
		}
		return interp.evalCall(node.Pos(), callee, node.Args, frame)

	case *ast.ImportExpr:
		return interp.evalImport(node, frame)
	case *ast.ModuleExpr:
		return interp.evalModule(node, frame)

	case *ast.SeqComprehension:
		return interp.evalSeqComprehension(node, frame)
	case *ast.SetComprehension:
		return interp.evalSetComprehension(node, frame)
	case *ast.DictComprehension:
		return interp.evalDictComprehension(node, frame)

	default:
		return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, n.Pos(), "cannot evaluate %s", n)
	}
}

func (interp *Interpreter) evalAll(nodes []ast.Node, frame *runtime.Frame) ([]runtime.Value, *runtime.Exception) {
	out := make([]runtime.Value, len(nodes))
	for i, n := range nodes {
		v, exc := interp.Eval(n, frame)
		if exc != nil {
			return nil, exc
		}
		out[i] = v
	}
	return out, nil
}

func (interp *Interpreter) evalDo(n *ast.DoExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	child := frame.Child()
	result := runtime.Unit
	for _, step := range n.Steps {
		if step.Alias != nil {
			if exc := interp.evalAlias(step.Alias, child); exc != nil {
				return runtime.Value{}, exc
			}
			result = runtime.Unit
			continue
		}
		v, exc := interp.Eval(step.Expr, child)
		if exc != nil {
			return runtime.Value{}, exc
		}
		result = v
	}
	return result, nil
}

func (interp *Interpreter) evalAlias(a ast.Alias, frame *runtime.Frame) *runtime.Exception {
	switch al := a.(type) {
	case *ast.ValueAlias:
		v, exc := interp.Eval(al.Expr, frame)
		if exc != nil {
			return exc
		}
		frame.Bind(al.Name, v)
		return nil

	case *ast.LambdaAlias:
		frame.Bind(al.Name, runtime.NewFunctionValue(&runtime.Function{
			Name: al.Name, Params: al.Lambda.Params, Bodies: al.Lambda.Bodies, Env: frame,
		}))
		return nil

	case *ast.PatternAlias:
		v, exc := interp.Eval(al.Expr, frame)
		if exc != nil {
			return exc
		}
		bindings, ok, exc := pattern.Match(al.Pattern, v, frame, interp)
		if exc != nil {
			return exc
		}
		if !ok {
			return runtime.Raisef(symbol.NoMatch, al.Pos(), "pattern alias did not match")
		}
		for name, bv := range bindings {
			frame.Bind(name, bv)
		}
		return nil

	case *ast.ModuleAlias:
		modVal, exc := interp.Eval(al.Module, frame)
		if exc != nil {
			return exc
		}
		frame.Bind(al.Name, modVal)
		return nil

	case *ast.FQNAlias:
		frame.Bind(al.Name, runtime.NewFQNValue(fqnFromExpr(al.FQN)))
		return nil

	case *ast.FunctionAlias:
		v, ok := frame.Lookup(al.Other)
		if !ok {
			return runtime.Raisef(symbol.FunctionNotFound, al.Pos(), "undefined function %s", al.Other.Str())
		}
		frame.Bind(al.Name, v)
		return nil
	}
	return runtime.Raisef(symbol.RuntimeError, a.Pos(), "unknown alias form")
}

func (interp *Interpreter) evalCase(n *ast.CaseExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	scrut, exc := interp.Eval(n.Scrutinee, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}
	anyPatternMatched := false
	for _, clause := range n.Clauses {
		bindings, ok, exc := pattern.Match(clause.Pattern, scrut, frame, interp)
		if exc != nil {
			return runtime.Value{}, exc
		}
		if !ok {
			continue
		}
		anyPatternMatched = true
		child := frame.Child()
		for name, v := range bindings {
			child.Bind(name, v)
		}
		for _, gb := range clause.Bodies {
			if gb.Guard != nil {
				gv, exc := interp.Eval(gb.Guard, child)
				if exc != nil {
					return runtime.Value{}, exc
				}
				if gv.Kind() != runtime.KindBool || !gv.Bool() {
					continue
				}
			}
			return interp.Eval(gb.Body, child)
		}
	}
	if !anyPatternMatched {
		return runtime.Value{}, runtime.Raisef(symbol.NoMatch, n.Pos(), "no clause matched %s", scrut)
	}
	return runtime.Value{}, runtime.Raisef(symbol.GuardFailed, n.Pos(), "every matched clause's guard was false")
}

func (interp *Interpreter) evalTryCatch(n *ast.TryCatchExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	v, exc := interp.Eval(n.Body, frame)
	if exc == nil {
		return v, nil
	}
	excVal := exc.AsTuple()
	for _, c := range n.Catches {
		bindings, ok, matchExc := pattern.Match(c.Pattern, excVal, frame, interp)
		if matchExc != nil {
			return runtime.Value{}, matchExc
		}
		if !ok {
			continue
		}
		child := frame.Child()
		for name, bv := range bindings {
			child.Bind(name, bv)
		}
		return interp.Eval(c.Body, child)
	}
	return runtime.Value{}, exc
}

func (interp *Interpreter) evalSeq(n *ast.SeqExpr, frame *runtime.Frame) (runtime.Value, *runtime.Exception) {
	if n.Range != nil {
		return interp.evalRange(n, frame)
	}
	elems, exc := interp.evalAll(n.Elements, frame)
	if exc != nil {
		return runtime.Value{}, exc
	}
	return runtime.NewSeqValue(runtime.NewSeq(elems)), nil
}

func fqnFromExpr(n *ast.FQNExpr) *runtime.FQN {
	return &runtime.FQN{PackageParts: n.PackageParts, ModuleName: n.ModuleName}
}
