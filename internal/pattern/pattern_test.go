package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

type stubEval struct{}

func (stubEval) Eval(n ast.Node, f *runtime.Frame) (runtime.Value, *runtime.Exception) {
	switch lit := n.(type) {
	case *ast.StringLit:
		return runtime.NewString(lit.Value), nil
	case *ast.IntLit:
		return runtime.NewInt(lit.Value), nil
	}
	return runtime.Value{}, runtime.Raisef(symbol.RuntimeError, ast.Pos{}, "cannot eval")
}

var zero = ast.Pos{}

func TestMatchIdentifierBindsWholeValue(t *testing.T) {
	x := symbol.Intern("pm_x")
	pat := ast.NewIdentifierPattern(zero, x)
	b, ok, exc := Match(pat, runtime.NewInt(42), runtime.NewFrame(nil), stubEval{})
	assert.Nil(t, exc)
	assert.True(t, ok)
	assert.Equal(t, int64(42), b[x].Int())
}

func TestMatchUnderscoreAlwaysMatches(t *testing.T) {
	pat := ast.NewUnderscorePattern(zero)
	b, ok, _ := Match(pat, runtime.NewInt(1), runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	assert.Empty(t, b)
}

func TestMatchLiteralPattern(t *testing.T) {
	pat := ast.NewLiteralPattern(zero, ast.NewIntLit(zero, 7))
	_, ok, _ := Match(pat, runtime.NewInt(7), runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	_, ok, _ = Match(pat, runtime.NewInt(8), runtime.NewFrame(nil), stubEval{})
	assert.False(t, ok)
}

func TestMatchTuplePattern(t *testing.T) {
	x := symbol.Intern("pm_tuple_x")
	y := symbol.Intern("pm_tuple_y")
	pat := ast.NewTuplePattern(zero, []ast.Pattern{
		ast.NewIdentifierPattern(zero, x),
		ast.NewIdentifierPattern(zero, y),
	})
	val := runtime.NewTuple([]runtime.Value{runtime.NewInt(1), runtime.NewInt(2)})
	b, ok, _ := Match(pat, val, runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	assert.Equal(t, int64(1), b[x].Int())
	assert.Equal(t, int64(2), b[y].Int())
}

func TestMatchTupleArityMismatch(t *testing.T) {
	pat := ast.NewTuplePattern(zero, []ast.Pattern{ast.NewUnderscorePattern(zero)})
	val := runtime.NewTuple([]runtime.Value{runtime.NewInt(1), runtime.NewInt(2)})
	_, ok, _ := Match(pat, val, runtime.NewFrame(nil), stubEval{})
	assert.False(t, ok)
}

func TestMatchHeadTails(t *testing.T) {
	h := symbol.Intern("pm_head")
	tl := symbol.Intern("pm_tails")
	pat := ast.NewHeadTailsPattern(zero, ast.NewIdentifierPattern(zero, h), ast.NewIdentifierPattern(zero, tl))
	val := runtime.NewSeqValue(runtime.NewSeq([]runtime.Value{runtime.NewInt(1), runtime.NewInt(2), runtime.NewInt(3)}))
	b, ok, _ := Match(pat, val, runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	assert.Equal(t, int64(1), b[h].Int())
	assert.Equal(t, 2, b[tl].Seq().Len())
}

func TestMatchHeadTailsOnEmptyFails(t *testing.T) {
	pat := ast.NewHeadTailsPattern(zero, ast.NewUnderscorePattern(zero), ast.NewUnderscorePattern(zero))
	val := runtime.NewSeqValue(runtime.EmptySeq())
	_, ok, _ := Match(pat, val, runtime.NewFrame(nil), stubEval{})
	assert.False(t, ok)
}

func TestMatchHeadTailsHead(t *testing.T) {
	l := symbol.Intern("pm_l")
	m := symbol.Intern("pm_m")
	r := symbol.Intern("pm_r")
	pat := ast.NewHeadTailsHeadPattern(zero,
		ast.NewIdentifierPattern(zero, l),
		ast.NewIdentifierPattern(zero, m),
		ast.NewIdentifierPattern(zero, r))
	val := runtime.NewSeqValue(runtime.NewSeq([]runtime.Value{
		runtime.NewInt(1), runtime.NewInt(2), runtime.NewInt(3), runtime.NewInt(4),
	}))
	b, ok, _ := Match(pat, val, runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	assert.Equal(t, int64(1), b[l].Int())
	assert.Equal(t, 2, b[m].Seq().Len())
	assert.Equal(t, int64(4), b[r].Int())
}

func TestMatchDictPatternEvaluatesKey(t *testing.T) {
	v := symbol.Intern("pm_dict_v")
	pat := ast.NewDictPattern(zero, []ast.DictPatternEntry{
		{Key: ast.NewStringLit(zero, "a"), Value: ast.NewIdentifierPattern(zero, v)},
	})
	d := runtime.NewDict([]runtime.DictEntry{{Key: runtime.NewString("a"), Value: runtime.NewInt(9)}})
	b, ok, exc := Match(pat, runtime.NewDictValue(d), runtime.NewFrame(nil), stubEval{})
	assert.Nil(t, exc)
	assert.True(t, ok)
	assert.Equal(t, int64(9), b[v].Int())
}

func TestMatchRecordPattern(t *testing.T) {
	rt := &runtime.RecordType{Name: symbol.Intern("pm_Point"), Fields: []symbol.ID{symbol.Intern("pm_x"), symbol.Intern("pm_y")}}
	rec := runtime.NewRecord(rt, []runtime.Value{runtime.NewInt(1), runtime.NewInt(2)})
	xv := symbol.Intern("pm_bound_x")
	pat := ast.NewRecordPattern(zero, rt.Name, []ast.RecordFieldPattern{
		{Field: symbol.Intern("pm_x"), Pattern: ast.NewIdentifierPattern(zero, xv)},
	})
	b, ok, _ := Match(pat, runtime.NewRecordValue(rec), runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	assert.Equal(t, int64(1), b[xv].Int())
}

func TestMatchAsPatternBindsBoth(t *testing.T) {
	whole := symbol.Intern("pm_as_whole")
	pat := ast.NewAsPattern(zero, ast.NewLiteralPattern(zero, ast.NewIntLit(zero, 5)), whole)
	b, ok, _ := Match(pat, runtime.NewInt(5), runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	assert.Equal(t, int64(5), b[whole].Int())
}

func TestMatchOrPatternTriesAlternatives(t *testing.T) {
	bound := symbol.Intern("pm_or_bound")
	pat := ast.NewOrPattern(zero, []ast.Pattern{
		ast.NewLiteralPattern(zero, ast.NewIntLit(zero, 1)),
		ast.NewIdentifierPattern(zero, bound),
	})
	b, ok, _ := Match(pat, runtime.NewInt(2), runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	assert.Equal(t, int64(2), b[bound].Int())
}

func TestMatchOrPatternDiscardsFailedAlternativeBindings(t *testing.T) {
	never := symbol.Intern("pm_never_bound")
	pat := ast.NewOrPattern(zero, []ast.Pattern{
		ast.NewTuplePattern(zero, []ast.Pattern{ast.NewIdentifierPattern(zero, never)}),
		ast.NewLiteralPattern(zero, ast.NewIntLit(zero, 3)),
	})
	b, ok, _ := Match(pat, runtime.NewInt(3), runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)
	_, bound := b[never]
	assert.False(t, bound)
}

func TestMatchNonLinearPatternRequiresEqualValues(t *testing.T) {
	x := symbol.Intern("pm_nonlinear_x")
	pat := ast.NewTuplePattern(zero, []ast.Pattern{
		ast.NewIdentifierPattern(zero, x),
		ast.NewIdentifierPattern(zero, x),
	})
	okVal := runtime.NewTuple([]runtime.Value{runtime.NewInt(1), runtime.NewInt(1)})
	_, ok, _ := Match(pat, okVal, runtime.NewFrame(nil), stubEval{})
	assert.True(t, ok)

	mismatchVal := runtime.NewTuple([]runtime.Value{runtime.NewInt(1), runtime.NewInt(2)})
	_, ok, _ = Match(pat, mismatchVal, runtime.NewFrame(nil), stubEval{})
	assert.False(t, ok)
}
