package typeinfer

import (
	"fmt"

	"github.com/yona-lang/yona/internal/ast"
)

// ErrorKind classifies an accumulated type error.
type ErrorKind int

const (
	ErrUndefined ErrorKind = iota
	ErrMismatch
	ErrArity
	ErrMissingField
	ErrUnknownRecord
)

func (k ErrorKind) String() string {
	names := [...]string{"undefined", "mismatch", "arity", "missing-field", "unknown-record"}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Error is one accumulated type-inference error: inference never panics or
// aborts on a mismatch, it records one of these and keeps going so the rest
// of the module can still be checked in one pass.
type Error struct {
	Kind    ErrorKind
	Pos     ast.Pos
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// Context accumulates errors across an entire inference run.
type Context struct {
	errors []*Error
}

func (c *Context) Add(kind ErrorKind, pos ast.Pos, format string, args ...interface{}) {
	c.errors = append(c.errors, &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (c *Context) HasErrors() bool  { return len(c.errors) > 0 }
func (c *Context) Errors() []*Error { return c.errors }
