package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yona-lang/yona/internal/types"
)

func TestUnifyBuiltinSame(t *testing.T) {
	s, err := types.Unify(types.NewBuiltin(types.Int64), types.NewBuiltin(types.Int64))
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestUnifyBuiltinMismatch(t *testing.T) {
	_, err := types.Unify(types.NewBuiltin(types.Int64), types.NewBuiltin(types.String))
	assert.Error(t, err)
}

func TestUnifyVarBinds(t *testing.T) {
	v := types.NewVar("a")
	s, err := types.Unify(v, types.NewBuiltin(types.Bool))
	require.NoError(t, err)
	assert.Equal(t, types.NewBuiltin(types.Bool), s.Apply(v))
}

func TestUnifyOccursCheck(t *testing.T) {
	v := types.NewVar("a")
	rec := types.NewCollection(types.SeqKind, v)
	_, err := types.Unify(v, rec)
	assert.Error(t, err)
}

func TestUnifyFunction(t *testing.T) {
	a := types.NewVar("a")
	f1 := types.NewFunction(a, a)
	f2 := types.NewFunction(types.NewBuiltin(types.Int64), types.NewBuiltin(types.Int64))
	s, err := types.Unify(f1, f2)
	require.NoError(t, err)
	assert.Equal(t, types.NewBuiltin(types.Int64), s.Apply(a))
}

func TestUnifySumEqualCardinality(t *testing.T) {
	s1 := types.NewSum(types.NewBuiltin(types.Int64), types.NewBuiltin(types.String))
	s2 := types.NewSum(types.NewBuiltin(types.String), types.NewBuiltin(types.Int64))
	_, err := types.Unify(s1, s2)
	assert.NoError(t, err)
}

func TestUnifySumCardinalityMismatch(t *testing.T) {
	s1 := types.NewSum(types.NewBuiltin(types.Int64))
	s2 := types.NewSum(types.NewBuiltin(types.Int64), types.NewBuiltin(types.String))
	_, err := types.Unify(s1, s2)
	assert.Error(t, err)
}

func TestGeneralizeAndInstantiate(t *testing.T) {
	a := types.NewVar("a")
	idType := types.NewFunction(a, a)
	scheme := types.Generalize(idType, map[string]bool{})
	assert.Len(t, scheme.Vars, 1)

	gen := &types.VarGen{}
	inst1 := types.Instantiate(scheme, gen)
	inst2 := types.Instantiate(scheme, gen)
	// Each instantiation gets fresh variables, so unifying one against Int64
	// must not constrain the other.
	s, err := types.Unify(inst1, types.NewFunction(types.NewBuiltin(types.Int64), types.NewBuiltin(types.Int64)))
	require.NoError(t, err)
	_ = s
	s2, err := types.Unify(inst2, types.NewFunction(types.NewBuiltin(types.String), types.NewBuiltin(types.String)))
	require.NoError(t, err)
	_ = s2
}
