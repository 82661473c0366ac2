package runtime

import (
	"runtime/debug"

	"github.com/grailbio/base/errors"
)

// HostError converts an exception that escaped all the way to a host
// boundary (a top-level Eval call, a module load) into a plain Go error
// suitable for a CLI driver or any other embedder that doesn't know about
// *Exception, the same way gql.Recover turns an interpreter panic into a
// host error rather than letting it cross into code that only understands
// the standard error interface.
func (e *Exception) HostError() error {
	return errors.E("%s: %s: %v", e.Pos, e.Symbol.Str(), e.Payload)
}

// Recover runs cb, catching any Go panic it raises and turning it into an
// error instead of letting it unwind past the host boundary. Every
// evaluation step in this package reports failure through *Exception, never
// panic, so a panic reaching here means a bug in the interpreter itself
// (e.g. a nil dereference) rather than a user-reachable error condition --
// Recover exists so that bug surfaces as a returned error at the boundary
// (a module load, a top-level run) instead of crashing the whole process.
func Recover(cb func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.E("panic %v: %v", r, string(debug.Stack()))
		}
	}()
	cb()
	return nil
}
