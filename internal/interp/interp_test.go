package interp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

var pos = ast.Pos{File: "<test>", Line: 1, Col: 1}

func sym(s string) symbol.ID { return symbol.Intern(s) }

func newInterp() *Interpreter { return NewInterpreter(nil) }

func TestEvalLiterals(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	v, exc := interp.Eval(ast.NewIntLit(pos, 42), frame)
	require.Nil(t, exc)
	assert.Equal(t, int64(42), v.Int())

	v, exc = interp.Eval(ast.NewStringLit(pos, "hi"), frame)
	require.Nil(t, exc)
	assert.Equal(t, "hi", v.Str())

	v, exc = interp.Eval(ast.NewBoolLit(pos, true), frame)
	require.Nil(t, exc)
	assert.True(t, v.Bool())
}

func TestEvalArithmeticWithPromotion(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	expr := ast.NewBinaryExpr(pos, ast.Add, ast.NewIntLit(pos, 1), ast.NewFloatLit(pos, 2.5))
	v, exc := interp.Eval(expr, frame)
	require.Nil(t, exc)
	assert.Equal(t, runtime.KindFloat, v.Kind())
	assert.Equal(t, 3.5, v.Float())
}

func TestEvalDivisionByZeroRaises(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)
	expr := ast.NewBinaryExpr(pos, ast.Div, ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 0))
	_, exc := interp.Eval(expr, frame)
	require.NotNil(t, exc)
}

func TestEvalIfBranches(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)
	expr := ast.NewIfExpr(pos, ast.NewBoolLit(pos, false), ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 2))
	v, exc := interp.Eval(expr, frame)
	require.Nil(t, exc)
	assert.Equal(t, int64(2), v.Int())
}

func TestEvalLetSequentialAliases(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	letExpr := ast.NewLetExpr(pos, []ast.Alias{
		ast.NewValueAlias(pos, sym("x"), ast.NewIntLit(pos, 1)),
		ast.NewValueAlias(pos, sym("y"), ast.NewBinaryExpr(pos, ast.Add, ast.NewIdentifierExpr(pos, sym("x")), ast.NewIntLit(pos, 1))),
	}, ast.NewIdentifierExpr(pos, sym("y")))

	v, exc := interp.Eval(letExpr, frame)
	require.Nil(t, exc)
	assert.Equal(t, int64(2), v.Int())
}

func TestEvalUndefinedVariableRaises(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)
	_, exc := interp.Eval(ast.NewIdentifierExpr(pos, sym("nowhere")), frame)
	require.NotNil(t, exc)
	assert.Equal(t, symbol.UndefinedVar, exc.Symbol)
}

func TestEvalClosureCurryingAndPartialApplication(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	add := ast.NewFunctionExpr(pos, symbol.Invalid,
		[]ast.Pattern{ast.NewIdentifierPattern(pos, sym("a")), ast.NewIdentifierPattern(pos, sym("b"))},
		[]ast.GuardedBody{{Body: ast.NewBinaryExpr(pos, ast.Add, ast.NewIdentifierExpr(pos, sym("a")), ast.NewIdentifierExpr(pos, sym("b")))}})

	fnVal, exc := interp.Eval(add, frame)
	require.Nil(t, exc)
	require.Equal(t, runtime.KindFunction, fnVal.Kind())

	partial, exc := interp.evalCall(pos, fnVal, ast.CallArgs{Positional: []ast.Node{ast.NewIntLit(pos, 10)}}, frame)
	require.Nil(t, exc)
	require.Equal(t, runtime.KindFunction, partial.Kind())

	result, exc := interp.evalCall(pos, partial, ast.CallArgs{Positional: []ast.Node{ast.NewIntLit(pos, 5)}}, frame)
	require.Nil(t, exc)
	assert.Equal(t, int64(15), result.Int())
}

func TestEvalOverApplicationRaisesRuntimeError(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	add := ast.NewFunctionExpr(pos, symbol.Invalid,
		[]ast.Pattern{ast.NewIdentifierPattern(pos, sym("a")), ast.NewIdentifierPattern(pos, sym("b"))},
		[]ast.GuardedBody{{Body: ast.NewBinaryExpr(pos, ast.Add, ast.NewIdentifierExpr(pos, sym("a")), ast.NewIdentifierExpr(pos, sym("b")))}})

	fnVal, exc := interp.Eval(add, frame)
	require.Nil(t, exc)

	_, exc = interp.evalCall(pos, fnVal, ast.CallArgs{Positional: []ast.Node{
		ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 2), ast.NewIntLit(pos, 3),
	}}, frame)
	require.NotNil(t, exc)
	assert.Equal(t, symbol.RuntimeError, exc.Symbol)
}

func TestEvalCaseGuardFailedWhenNoGuardHolds(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	clause := ast.CaseClause{
		Pattern: ast.NewIdentifierPattern(pos, sym("x")),
		Bodies: []ast.GuardedBody{
			{Guard: ast.NewBoolLit(pos, false), Body: ast.NewIntLit(pos, 1)},
		},
	}
	caseExpr := ast.NewCaseExpr(pos, ast.NewIntLit(pos, 7), []ast.CaseClause{clause})
	_, exc := interp.Eval(caseExpr, frame)
	require.NotNil(t, exc)
	assert.Equal(t, symbol.GuardFailed, exc.Symbol)
}

func TestEvalCaseNoMatchWhenNoPatternMatches(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	clause := ast.CaseClause{
		Pattern: ast.NewLiteralPattern(pos, ast.NewIntLit(pos, 99)),
		Bodies:  []ast.GuardedBody{{Body: ast.NewIntLit(pos, 1)}},
	}
	caseExpr := ast.NewCaseExpr(pos, ast.NewIntLit(pos, 7), []ast.CaseClause{clause})
	_, exc := interp.Eval(caseExpr, frame)
	require.NotNil(t, exc)
	assert.Equal(t, symbol.NoMatch, exc.Symbol)
}

func TestEvalTryCatchRecoversRaisedException(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	raise := ast.NewRaiseExpr(pos, sym("boom"), ast.NewStringLit(pos, "bad"))
	catch := ast.CatchClause{
		Pattern: ast.NewTuplePattern(pos, []ast.Pattern{
			ast.NewIdentifierPattern(pos, sym("tag")),
			ast.NewIdentifierPattern(pos, sym("msg")),
		}),
		Body: ast.NewIdentifierExpr(pos, sym("msg")),
	}
	tryExpr := ast.NewTryCatchExpr(pos, raise, []ast.CatchClause{catch})

	v, exc := interp.Eval(tryExpr, frame)
	require.Nil(t, exc)
	assert.Equal(t, "bad", v.Str())
}

func TestEvalRecordConstructAccessUpdate(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	point := sym("Point")
	instance := ast.NewRecordInstanceExpr(pos, point, []ast.FieldInit{
		{Name: sym("x"), Expr: ast.NewIntLit(pos, 1)},
		{Name: sym("y"), Expr: ast.NewIntLit(pos, 2)},
	})
	access := ast.NewFieldAccessExpr(pos, instance, sym("x"))
	v, exc := interp.Eval(access, frame)
	require.Nil(t, exc)
	assert.Equal(t, int64(1), v.Int())

	update := ast.NewFieldUpdateExpr(pos, instance, []ast.FieldUpdateInit{{Field: sym("x"), Expr: ast.NewIntLit(pos, 99)}})
	updated, exc := interp.Eval(update, frame)
	require.Nil(t, exc)
	v, ok := updated.Record().Field(sym("x"))
	require.True(t, ok)
	assert.Equal(t, int64(99), v.Int())
	v, ok = updated.Record().Field(sym("y"))
	require.True(t, ok)
	assert.Equal(t, int64(2), v.Int())
}

func TestEvalRecordUnknownFieldRaises(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	shape := sym("Shape")
	instance := ast.NewRecordInstanceExpr(pos, shape, []ast.FieldInit{{Name: sym("sides"), Expr: ast.NewIntLit(pos, 4)}})
	interp.Eval(instance, frame)

	bad := ast.NewRecordInstanceExpr(pos, shape, []ast.FieldInit{{Name: sym("corners"), Expr: ast.NewIntLit(pos, 4)}})
	_, exc := interp.Eval(bad, frame)
	require.NotNil(t, exc)
	assert.Equal(t, symbol.FieldNotFound, exc.Symbol)
}

func TestEvalSeqComprehensionWithCondition(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)

	src := ast.NewSeqExpr(pos, []ast.Node{
		ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 2), ast.NewIntLit(pos, 3), ast.NewIntLit(pos, 4),
	})
	comp := ast.NewSeqComprehension(pos,
		ast.NewBinaryExpr(pos, ast.Mul, ast.NewIdentifierExpr(pos, sym("n")), ast.NewIntLit(pos, 10)),
		[]ast.CompClause{
			ast.NewGeneratorClause(pos, ast.NewIdentifierPattern(pos, sym("n")), src),
			ast.NewConditionClause(pos, ast.NewBinaryExpr(pos, ast.Eq, ast.NewBinaryExpr(pos, ast.Mod, ast.NewIdentifierExpr(pos, sym("n")), ast.NewIntLit(pos, 2)), ast.NewIntLit(pos, 0))),
		})

	v, exc := interp.Eval(comp, frame)
	require.Nil(t, exc)
	require.Equal(t, runtime.KindSeq, v.Kind())
	elems := v.Seq().Elements()
	require.Len(t, elems, 2)
	assert.Equal(t, int64(20), elems[0].Int())
	assert.Equal(t, int64(40), elems[1].Int())
}

func TestEvalRangeInclusive(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)
	rng := ast.NewRangeExpr(pos, ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 5), nil)
	v, exc := interp.Eval(rng, frame)
	require.Nil(t, exc)
	elems := v.Seq().Elements()
	require.Len(t, elems, 5)
	assert.Equal(t, int64(5), elems[4].Int())
}

func TestEvalRangeDescendingWithDefaultStep(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)
	rng := ast.NewRangeExpr(pos, ast.NewIntLit(pos, 3), ast.NewIntLit(pos, 1), nil)
	v, exc := interp.Eval(rng, frame)
	require.Nil(t, exc)
	elems := v.Seq().Elements()
	require.Len(t, elems, 3)
	assert.Equal(t, int64(3), elems[0].Int())
	assert.Equal(t, int64(2), elems[1].Int())
	assert.Equal(t, int64(1), elems[2].Int())
}

// fakeLoader resolves any FQN to a fixed module, standing in for
// internal/moduleloader in tests that only need evalImport's behavior.
type fakeLoader struct{ mod *runtime.Module }

func (f fakeLoader) Load(ctx context.Context, fqn *runtime.FQN, pos ast.Pos) (*runtime.Module, *runtime.Exception) {
	return f.mod, nil
}

func fixtureModule() *runtime.Module {
	mod := runtime.NewModule(&runtime.FQN{ModuleName: sym("Fixture")})
	fn := &runtime.Function{
		Name:   sym("add"),
		Params: []ast.Pattern{ast.NewIdentifierPattern(pos, sym("a")), ast.NewIdentifierPattern(pos, sym("b"))},
		Bodies: []ast.GuardedBody{{Body: ast.NewBinaryExpr(pos, ast.Add, ast.NewIdentifierExpr(pos, sym("a")), ast.NewIdentifierExpr(pos, sym("b")))}},
		Env:    runtime.NewFrame(nil),
	}
	mod.Functions[sym("add")] = fn
	mod.Exports[sym("add")] = true
	return mod
}

func TestEvalImportUnaliasedBindsExportsDirectly(t *testing.T) {
	interp := NewInterpreter(fakeLoader{mod: fixtureModule()})
	frame := runtime.NewFrame(nil)

	clause := ast.NewModuleImportClause(pos, ast.NewFQNExpr(pos, nil, sym("Fixture")), symbol.Invalid)
	imp := ast.NewImportExpr(pos, []ast.ImportClause{clause}, ast.NewNameCallExpr(pos, sym("add"), ast.CallArgs{Positional: []ast.Node{ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 2)}}))

	v, exc := interp.Eval(imp, frame)
	require.Nil(t, exc)
	assert.Equal(t, int64(3), v.Int())
}

func TestEvalImportAliasedBindsModuleObject(t *testing.T) {
	interp := NewInterpreter(fakeLoader{mod: fixtureModule()})
	frame := runtime.NewFrame(nil)

	clause := ast.NewModuleImportClause(pos, ast.NewFQNExpr(pos, nil, sym("Fixture")), sym("F"))
	imp := ast.NewImportExpr(pos, []ast.ImportClause{clause}, ast.NewIdentifierExpr(pos, sym("F")))

	v, exc := interp.Eval(imp, frame)
	require.Nil(t, exc)
	assert.Equal(t, runtime.KindModule, v.Kind())
	assert.Equal(t, "Fixture", v.Module().FQN.ModuleName.Str())
}

func TestEvalWithBindsSelfWhenUnnamed(t *testing.T) {
	interp := newInterp()
	frame := runtime.NewFrame(nil)
	withExpr := ast.NewWithExpr(pos, ast.NewIntLit(pos, 9), symbol.Invalid, ast.NewIdentifierExpr(pos, symbol.Self))
	v, exc := interp.Eval(withExpr, frame)
	require.Nil(t, exc)
	assert.Equal(t, int64(9), v.Int())
}
