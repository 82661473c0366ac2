package runtime

import (
	"fmt"

	"github.com/yona-lang/yona/internal/ast"
	"github.com/yona-lang/yona/internal/symbol"
)

// Exception is a raised runtime error: a symbol tag plus an arbitrary
// payload value (conventionally a string message, but catch patterns may
// destructure anything raise was given). Exceptions propagate by an
// explicit check-then-short-circuit protocol -- every evaluation step that
// can fail returns (Value, *Exception) and the interpreter checks the
// exception before using the value -- rather than by a host Go panic, so
// that `try/catch` is ordinary control flow, not recover().
type Exception struct {
	Symbol  symbol.ID
	Payload Value
	Pos     ast.Pos
}

func NewException(sym symbol.ID, payload Value, pos ast.Pos) *Exception {
	return &Exception{Symbol: sym, Payload: payload, Pos: pos}
}

// Raisef builds an exception whose payload is a formatted string message,
// the common case for runtime-detected errors (type mismatches, missing
// fields, unbound names).
func Raisef(sym symbol.ID, pos ast.Pos, format string, args ...interface{}) *Exception {
	return &Exception{Symbol: sym, Payload: NewString(fmt.Sprintf(format, args...)), Pos: pos}
}

// AsTuple renders the exception the way a `catch` pattern sees it: a
// 2-tuple of (symbol, payload).
func (e *Exception) AsTuple() Value {
	return NewTuple([]Value{NewSymbol(e.Symbol), e.Payload})
}

func (e *Exception) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Pos, e.Symbol.Str(), e.Payload)
}
