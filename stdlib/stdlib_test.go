package stdlib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

func findFunc(t *testing.T, mod *runtime.Module, name string) *runtime.Function {
	t.Helper()
	fn, ok := mod.Functions[symbol.Intern(name)]
	require.True(t, ok, "missing export %q", name)
	require.True(t, mod.IsExported(symbol.Intern(name)))
	return fn
}

func TestMathModuleSqrtAndPow(t *testing.T) {
	mod := mathModule()

	sqrt := findFunc(t, mod, "sqrt")
	v, exc := sqrt.Native(context.Background(), []runtime.Value{runtime.NewInt(9)})
	require.Nil(t, exc)
	assert.Equal(t, 3.0, v.Float())

	pow := findFunc(t, mod, "pow")
	v, exc = pow.Native(context.Background(), []runtime.Value{runtime.NewInt(2), runtime.NewInt(10)})
	require.Nil(t, exc)
	assert.Equal(t, 1024.0, v.Float())
}

func TestMathModuleWrongKindRaisesTypeError(t *testing.T) {
	mod := mathModule()
	sqrt := findFunc(t, mod, "sqrt")
	_, exc := sqrt.Native(context.Background(), []runtime.Value{runtime.NewString("nope")})
	require.NotNil(t, exc)
	assert.Equal(t, symbol.TypeError, exc.Symbol)
}

func TestStringModuleLengthAndConcat(t *testing.T) {
	mod := stringModule()

	length := findFunc(t, mod, "length")
	v, exc := length.Native(context.Background(), []runtime.Value{runtime.NewString("héllo")})
	require.Nil(t, exc)
	assert.Equal(t, int64(5), v.Int())

	concat := findFunc(t, mod, "concat")
	v, exc = concat.Native(context.Background(), []runtime.Value{runtime.NewString("foo"), runtime.NewString("bar")})
	require.Nil(t, exc)
	assert.Equal(t, "foobar", v.Str())
}

func TestDefaultRegistryRegistersEveryModule(t *testing.T) {
	registered := map[string]*runtime.Module{}
	fake := fakeLoader{register: func(mod *runtime.Module) { registered[mod.FQN.Key()] = mod }}

	Default().RegisterAll(fake)

	assert.Len(t, registered, 3)
	assert.Contains(t, registered, "Native/IO")
	assert.Contains(t, registered, "Native/Math")
	assert.Contains(t, registered, "Native/String")
}

type fakeLoader struct {
	register func(*runtime.Module)
}

func (f fakeLoader) RegisterNative(mod *runtime.Module) { f.register(mod) }
