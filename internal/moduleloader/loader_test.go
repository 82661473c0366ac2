package moduleloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

var pos = ast.Pos{File: "<test>", Line: 1, Col: 1}

func sym(s string) symbol.ID { return symbol.Intern(s) }

func fqn(name string) *runtime.FQN {
	return &runtime.FQN{ModuleName: sym(name)}
}

func fqnExpr(name string) *ast.FQNExpr {
	return ast.NewFQNExpr(pos, nil, sym(name))
}

// fakeParser maps a path to a pre-built module AST, standing in for an
// external front end so these tests never parse real source. The loader
// still checks that a module's file exists, so tests that load a module
// create an empty file for it with writeFixtures.
type fakeParser struct {
	byPath map[string]*ast.ModuleExpr
	calls  int
}

func (p *fakeParser) Parse(path string) (*ast.ModuleExpr, error) {
	p.calls++
	mod, ok := p.byPath[path]
	if !ok {
		return nil, errors.New("no such fixture: " + path)
	}
	return mod, nil
}

func emptyModule(name string) *ast.ModuleExpr {
	return ast.NewModuleExpr(pos, fqnExpr(name), nil, nil, nil, nil)
}

// writeFixtures creates an empty file for each name in a fresh temporary
// directory and returns that directory.
func writeFixtures(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	return dir
}

func TestLoadParsesAndCachesOnce(t *testing.T) {
	dir := writeFixtures(t, "Foo.yona")
	parser := &fakeParser{byPath: map[string]*ast.ModuleExpr{
		filepath.Join(dir, "Foo.yona"): emptyModule("Foo"),
	}}
	l := New(parser, []string{dir})

	mod1, exc := l.Load(nil, fqn("Foo"), pos)
	require.Nil(t, exc)
	require.NotNil(t, mod1)

	mod2, exc := l.Load(nil, fqn("Foo"), pos)
	require.Nil(t, exc)
	assert.Same(t, mod1, mod2)
	assert.Equal(t, 1, parser.calls)
}

func TestLoadUnknownModuleRaisesModuleNotFound(t *testing.T) {
	parser := &fakeParser{byPath: map[string]*ast.ModuleExpr{}}
	l := New(parser, []string{"/src"})

	_, exc := l.Load(nil, fqn("Missing"), pos)
	require.NotNil(t, exc)
	assert.Equal(t, symbol.ModuleNotFound, exc.Symbol)
}

func TestRegisterNativeBypassesParserAndFilesystem(t *testing.T) {
	parser := &fakeParser{byPath: map[string]*ast.ModuleExpr{}}
	l := New(parser, nil)

	native := runtime.NewModule(fqn("Native\\Math"))
	l.RegisterNative(native)

	mod, exc := l.Load(nil, fqn("Native\\Math"), pos)
	require.Nil(t, exc)
	assert.Same(t, native, mod)
	assert.Equal(t, 0, parser.calls)
}

func TestLoadDetectsDirectCycle(t *testing.T) {
	parser := &fakeParser{byPath: map[string]*ast.ModuleExpr{
		"/src/Self.yona": emptyModule("Self"),
	}}
	l := New(parser, []string{"/src"})

	// Manually push the FQN onto the re-entrancy stack to simulate being
	// mid-load when a second Load for the same key arrives, the situation
	// a self-importing or mutually-importing module pair produces.
	l.stack = append(l.stack, fqn("Self").Key())
	_, exc := l.Load(nil, fqn("Self"), pos)
	require.NotNil(t, exc)
	assert.Equal(t, symbol.ModuleNotFound, exc.Symbol)
}

func TestLoadOrderListsLoadedModules(t *testing.T) {
	dir := writeFixtures(t, "A.yona", "B.yona")
	parser := &fakeParser{byPath: map[string]*ast.ModuleExpr{
		filepath.Join(dir, "A.yona"): emptyModule("A"),
		filepath.Join(dir, "B.yona"): emptyModule("B"),
	}}
	l := New(parser, []string{dir})

	_, exc := l.Load(nil, fqn("A"), pos)
	require.Nil(t, exc)
	_, exc = l.Load(nil, fqn("B"), pos)
	require.Nil(t, exc)

	order := l.LoadOrder()
	assert.ElementsMatch(t, []string{"A", "B"}, order)
}
