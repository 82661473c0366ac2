// Command yona is the thin driver that wires the module loader, the native
// stdlib registry and the interpreter together to run a single source file.
// The surface-syntax parser is out of scope for this repository;
// ParserFactory below is the seam an external front end registers itself
// into, the same way the teacher's main.go registers an S3
// file.Implementation before running.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grailbio/base/log"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/moduleloader"
	"github.com/yona-lang/yona/internal/runtime"
	"github.com/yona-lang/yona/stdlib"
)

var modulePathFlag = flag.String("module-path", "", "Colon-separated list of directories to search for imported modules. Defaults to $YONA_MODULE_PATH.")

// ParserFactory builds the front end this driver uses to turn a source file
// into an AST. It is nil in this repository -- parsing is explicitly out of
// scope -- and is populated by a real front-end package's init() via
// RegisterParser, mirroring github.com/grailbio/base/file's
// RegisterImplementation pattern for plugging in a backend the core package
// doesn't itself implement.
var ParserFactory func(searchPaths []string) moduleloader.Parser

// RegisterParser installs the parser front end a real build links in.
func RegisterParser(factory func(searchPaths []string) moduleloader.Parser) {
	ParserFactory = factory
}

// unimplementedParser is the default when no front end is linked in: it
// fails with a clear message naming the file it was asked to parse, rather
// than leaving ParserFactory nil to panic on first use.
type unimplementedParser struct{}

func (unimplementedParser) Parse(path string) (*ast.ModuleExpr, error) {
	return nil, fmt.Errorf("no surface-syntax parser linked into this build (tried to parse %s)", path)
}

func modulePath() []string {
	raw := *modulePathFlag
	if raw == "" {
		raw = os.Getenv("YONA_MODULE_PATH")
	}
	if raw == "" {
		return []string{"."}
	}
	return filepath.SplitList(raw)
}

func buildLoader() *moduleloader.Loader {
	paths := modulePath()
	var parser moduleloader.Parser = unimplementedParser{}
	if ParserFactory != nil {
		parser = ParserFactory(paths)
	}
	l := moduleloader.New(parser, paths)
	stdlib.Default().RegisterAll(l)
	return l
}

func printResult(v runtime.Value) {
	if v.Kind() == runtime.KindString {
		fmt.Println(v.Str())
		return
	}
	fmt.Println(v)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: yona [-module-path dirs] <file.yona>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	loader := buildLoader()

	modAST, err := loader.Parser().Parse(path)
	if err != nil {
		log.Error.Printf("parsing %s: %v", path, err)
		os.Exit(1)
	}

	frame := runtime.NewFrame(nil)
	var result runtime.Value
	var exc *runtime.Exception
	if panicErr := runtime.Recover(func() {
		result, exc = loader.Interpreter().Eval(modAST, frame)
	}); panicErr != nil {
		log.Error.Print(panicErr)
		os.Exit(1)
	}
	if exc != nil {
		log.Error.Print(exc.HostError())
		os.Exit(1)
	}
	printResult(result)
}
