// Package moduleloader resolves a fully qualified module name to a loaded,
// evaluated module, memoizing the result in a cache owned by each Loader and
// keyed by FQN, so that two imports of the same module never evaluate its body twice.
package moduleloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"v.io/x/lib/toposort"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/interp"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/internal/symbol"
)

// ModuleExtension is the file suffix a bare FQN resolves to on disk.
const ModuleExtension = ".yona"

// Parser stands in for the externally supplied front end: given a source
// file path, it produces the module's AST. Parsing itself is out of scope
// here; this interface is the seam the rest of the loader is built against.
type Parser interface {
	Parse(path string) (*ast.ModuleExpr, error)
}

// Loader implements interp.ModuleLoader: it resolves an FQN against a search
// path, parses and evaluates the module exactly once, and serves every
// subsequent request for the same FQN out of its cache.
type Loader struct {
	mu    sync.Mutex
	cache map[string]*runtime.Module // FQN.Key() -> evaluated module
	asts  map[string]*ast.ModuleExpr // retained so closures captured by a module's functions keep a live AST behind them
	stack []string                   // FQN.Key() values currently being loaded, innermost last -- detects cycles

	natives map[string]*runtime.Module // pre-seeded modules (stdlib) that never touch the filesystem

	searchPaths []string
	parser      Parser
	interp      *interp.Interpreter

	deps *toposort.Sorter // records importer -> imported edges for LoadOrder diagnostics
}

// New creates a Loader that resolves modules against searchPaths, in order,
// parsing source files with parser. The returned Loader's Interpreter is
// wired to itself, so import expressions evaluated through it resolve back
// through this same cache.
func New(parser Parser, searchPaths []string) *Loader {
	l := &Loader{
		cache:       map[string]*runtime.Module{},
		asts:        map[string]*ast.ModuleExpr{},
		natives:     map[string]*runtime.Module{},
		searchPaths: searchPaths,
		parser:      parser,
		deps:        &toposort.Sorter{},
	}
	l.interp = interp.NewInterpreter(l)
	return l
}

// Interpreter returns the loader-bound interpreter, the one to use for
// evaluating a program's top-level module so that its imports resolve
// through this loader's cache.
func (l *Loader) Interpreter() *interp.Interpreter { return l.interp }

// Parser returns the front end this loader resolves imports with, so a
// caller (e.g. a CLI driver) can parse a top-level entry file through the
// same front end before handing it to Interpreter().Eval.
func (l *Loader) Parser() Parser { return l.parser }

// RegisterNative pre-seeds a module (e.g. a stdlib module implemented in Go
// rather than parsed from a .yona source file) so that importing it never
// touches the filesystem or the parser.
func (l *Loader) RegisterNative(mod *runtime.Module) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.natives[mod.FQN.Key()] = mod
}

// resolve turns an FQN into a source file path by joining the package parts
// and module name as path segments, appending ModuleExtension, and trying
// each search path in order. The first existing file wins.
func (l *Loader) resolve(fqn *runtime.FQN) (string, error) {
	parts := make([]string, 0, len(fqn.PackageParts)+1)
	for _, p := range fqn.PackageParts {
		parts = append(parts, p.Str())
	}
	parts = append(parts, fqn.ModuleName.Str())
	rel := filepath.Join(parts...) + ModuleExtension

	if filepath.IsAbs(rel) {
		if _, err := os.Stat(rel); err == nil {
			return rel, nil
		}
		return "", errors.Errorf("module %s not found at absolute path %s", fqn.String(), rel)
	}

	tried := make([]string, 0, len(l.searchPaths))
	for _, dir := range l.searchPaths {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		tried = append(tried, candidate)
	}
	return "", errors.Errorf("module %s not found, tried: %s", fqn.String(), strings.Join(tried, ", "))
}

// Load implements interp.ModuleLoader. A cycle (module A importing B
// importing A, directly or transitively) is detected via the loader's own
// call stack rather than deferred to a full graph solve, since modules are
// necessarily discovered one import at a time as their importers evaluate;
// the toposort.Sorter below is kept in step purely as a diagnostic of import
// order across a whole run, not as the cycle-detection mechanism itself.
func (l *Loader) Load(ctx context.Context, fqn *runtime.FQN, pos ast.Pos) (*runtime.Module, *runtime.Exception) {
	key := fqn.Key()

	l.mu.Lock()
	if mod, ok := l.natives[key]; ok {
		l.mu.Unlock()
		return mod, nil
	}
	if mod, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return mod, nil
	}
	for _, active := range l.stack {
		if active == key {
			cyclePath := strings.Join(append(append([]string{}, l.stack...), key), " -> ")
			l.mu.Unlock()
			return nil, runtime.Raisef(symbol.ModuleNotFound, pos, "import cycle detected: %s", cyclePath)
		}
	}
	if len(l.stack) > 0 {
		l.deps.AddEdge(l.stack[len(l.stack)-1], key)
	} else {
		l.deps.AddNode(key)
	}
	l.stack = append(l.stack, key)
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.stack = l.stack[:len(l.stack)-1]
		l.mu.Unlock()
	}()

	path, err := l.resolve(fqn)
	if err != nil {
		return nil, runtime.Raisef(symbol.ModuleNotFound, pos, "%s", err)
	}

	modAST, err := l.parser.Parse(path)
	if err != nil {
		return nil, runtime.Raisef(symbol.ModuleNotFound, pos, "parsing %s: %s", path, err)
	}

	log.Printf("moduleloader: loading %s from %s", fqn.String(), path)

	topFrame := runtime.NewFrame(nil)
	var modVal runtime.Value
	var exc *runtime.Exception
	if panicErr := runtime.Recover(func() {
		modVal, exc = l.interp.Eval(modAST, topFrame)
	}); panicErr != nil {
		// A panic out of Eval means a bug in the interpreter, not a
		// user-reachable failure; surface it as a fatal load error at this
		// boundary rather than crashing whatever embeds the loader.
		log.Error.Printf("moduleloader: %s: %v", fqn.String(), panicErr)
		return nil, runtime.Raisef(symbol.RuntimeError, pos, "module %s: %v", fqn.String(), panicErr)
	}
	if exc != nil {
		return nil, exc
	}
	mod := modVal.Module()

	l.mu.Lock()
	l.cache[key] = mod
	l.asts[key] = modAST
	l.mu.Unlock()
	return mod, nil
}

// LoadOrder returns every module key loaded so far, topologically sorted by
// import dependency (a module that imports another is ordered after it). It
// is a diagnostic only -- Load's own recursive-on-demand evaluation already
// guarantees a dependency is fully evaluated before its importer resumes,
// with or without this ordering.
func (l *Loader) LoadOrder() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	sorted, _ := l.deps.Sort()
	out := make([]string, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, s.(string))
	}
	return out
}
