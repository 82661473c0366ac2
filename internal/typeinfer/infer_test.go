package typeinfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/symbol"
	"github.com/yona-lang/yona/internal/types"
)

var pos = ast.Pos{File: "<test>", Line: 1, Col: 1}

func sym(s string) symbol.ID { return symbol.Intern(s) }

func TestInferLiterals(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)

	assert.Equal(t, types.Int64, inf.Infer(ast.NewIntLit(pos, 1), env).Builtin)
	assert.Equal(t, types.Float64, inf.Infer(ast.NewFloatLit(pos, 1.0), env).Builtin)
	assert.Equal(t, types.Bool, inf.Infer(ast.NewBoolLit(pos, true), env).Builtin)
	assert.Equal(t, types.String, inf.Infer(ast.NewStringLit(pos, "hi"), env).Builtin)
	assert.False(t, inf.errors.HasErrors())
}

func TestInferBinaryNumericPromotion(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)
	expr := ast.NewBinaryExpr(pos, ast.Add, ast.NewIntLit(pos, 1), ast.NewFloatLit(pos, 2.0))
	result := inf.Infer(expr, env)
	assert.Equal(t, types.Float64, result.Builtin)
	assert.False(t, inf.errors.HasErrors())
}

func TestInferBinaryStringConcatAdd(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)
	expr := ast.NewBinaryExpr(pos, ast.Add, ast.NewStringLit(pos, "a"), ast.NewStringLit(pos, "b"))
	result := inf.Infer(expr, env)
	assert.Equal(t, types.String, result.Builtin)
}

func TestInferBinaryMismatchRecordsError(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)
	expr := ast.NewBinaryExpr(pos, ast.Add, ast.NewIntLit(pos, 1), ast.NewStringLit(pos, "x"))
	inf.Infer(expr, env)
	require.True(t, inf.errors.HasErrors())
	assert.Equal(t, ErrMismatch, inf.errors.Errors()[0].Kind)
}

func TestInferIfBranchesMustUnify(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)
	good := ast.NewIfExpr(pos, ast.NewBoolLit(pos, true), ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 2))
	assert.Equal(t, types.Int64, inf.Infer(good, env).Builtin)

	inf2 := NewInferencer()
	bad := ast.NewIfExpr(pos, ast.NewBoolLit(pos, true), ast.NewIntLit(pos, 1), ast.NewStringLit(pos, "x"))
	inf2.Infer(bad, env)
	assert.True(t, inf2.errors.HasErrors())
}

func TestInferLetGeneralizesPolymorphicIdentity(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)

	identity := ast.NewFunctionExpr(pos, symbol.Invalid,
		[]ast.Pattern{ast.NewIdentifierPattern(pos, sym("x"))},
		[]ast.GuardedBody{{Body: ast.NewIdentifierExpr(pos, sym("x"))}})

	body := ast.NewTupleExpr(pos, []ast.Node{
		ast.NewNameCallExpr(pos, sym("id"), ast.CallArgs{Positional: []ast.Node{ast.NewIntLit(pos, 1)}}),
		ast.NewNameCallExpr(pos, sym("id"), ast.CallArgs{Positional: []ast.Node{ast.NewStringLit(pos, "s")}}),
	})

	letExpr := ast.NewLetExpr(pos, []ast.Alias{ast.NewLambdaAlias(pos, sym("id"), identity)}, body)

	result := inf.Infer(letExpr, env)
	require.False(t, inf.errors.HasErrors())
	require.Equal(t, types.KindProduct, result.Kind)
	assert.Equal(t, types.Int64, inf.subst.Apply(result.Elements[0]).Builtin)
	assert.Equal(t, types.String, inf.subst.Apply(result.Elements[1]).Builtin)
}

func TestInferFunctionCurriedType(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)

	add := ast.NewFunctionExpr(pos, symbol.Invalid,
		[]ast.Pattern{ast.NewIdentifierPattern(pos, sym("a")), ast.NewIdentifierPattern(pos, sym("b"))},
		[]ast.GuardedBody{{Body: ast.NewBinaryExpr(pos, ast.Add, ast.NewIdentifierExpr(pos, sym("a")), ast.NewIdentifierExpr(pos, sym("b")))}})

	fnType := inf.Infer(add, env)
	require.False(t, inf.errors.HasErrors())
	require.Equal(t, types.KindFunction, fnType.Kind)
	require.Equal(t, types.KindFunction, fnType.Result.Kind)
}

func TestInferCasePatternBindsAndUnifiesClauseBodies(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)

	scrutinee := ast.NewTupleExpr(pos, []ast.Node{ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 2)})
	clause := ast.CaseClause{
		Pattern: ast.NewTuplePattern(pos, []ast.Pattern{
			ast.NewIdentifierPattern(pos, sym("x")),
			ast.NewIdentifierPattern(pos, sym("y")),
		}),
		Bodies: []ast.GuardedBody{{Body: ast.NewBinaryExpr(pos, ast.Add, ast.NewIdentifierExpr(pos, sym("x")), ast.NewIdentifierExpr(pos, sym("y")))}},
	}
	caseExpr := ast.NewCaseExpr(pos, scrutinee, []ast.CaseClause{clause})

	result := inf.Infer(caseExpr, env)
	require.False(t, inf.errors.HasErrors())
	assert.Equal(t, types.Int64, result.Builtin)
}

func TestInferRecordInstanceAndFieldAccess(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)

	point := sym("Point")
	instance := ast.NewRecordInstanceExpr(pos, point, []ast.FieldInit{
		{Name: sym("x"), Expr: ast.NewIntLit(pos, 1)},
		{Name: sym("y"), Expr: ast.NewIntLit(pos, 2)},
	})
	access := ast.NewFieldAccessExpr(pos, instance, sym("x"))

	result := inf.Infer(access, env)
	require.False(t, inf.errors.HasErrors())
	assert.Equal(t, types.Int64, result.Builtin)
}

func TestInferRecordInstanceFieldMismatchRecordsError(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)

	point := sym("Point2")
	first := ast.NewRecordInstanceExpr(pos, point, []ast.FieldInit{
		{Name: sym("x"), Expr: ast.NewIntLit(pos, 1)},
	})
	inf.Infer(first, env)

	second := ast.NewRecordInstanceExpr(pos, point, []ast.FieldInit{
		{Name: sym("x"), Expr: ast.NewStringLit(pos, "nope")},
	})
	inf.Infer(second, env)
	assert.True(t, inf.errors.HasErrors())
}

func TestInferUndefinedIdentifierRecordsError(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)
	inf.Infer(ast.NewIdentifierExpr(pos, sym("nowhere_"+"to_be_found")), env)
	require.True(t, inf.errors.HasErrors())
	assert.Equal(t, ErrUndefined, inf.errors.Errors()[0].Kind)
}

func TestInferSeqComprehensionElementType(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)

	src := ast.NewSeqExpr(pos, []ast.Node{ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 2)})
	comp := ast.NewSeqComprehension(pos,
		ast.NewBinaryExpr(pos, ast.Mul, ast.NewIdentifierExpr(pos, sym("n")), ast.NewIntLit(pos, 2)),
		[]ast.CompClause{ast.NewGeneratorClause(pos, ast.NewIdentifierPattern(pos, sym("n")), src)})

	result := inf.Infer(comp, env)
	require.False(t, inf.errors.HasErrors())
	require.Equal(t, types.KindCollection, result.Kind)
	assert.Equal(t, types.Int64, result.Elem.Builtin)
}

func TestInferRangeRequiresNumericBounds(t *testing.T) {
	inf := NewInferencer()
	env := NewEnv(nil)
	rng := ast.NewRangeExpr(pos, ast.NewIntLit(pos, 1), ast.NewIntLit(pos, 10), nil)
	result := inf.Infer(rng, env)
	require.False(t, inf.errors.HasErrors())
	assert.Equal(t, types.Int64, result.Elem.Builtin)
}
