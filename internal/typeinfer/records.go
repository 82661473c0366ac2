package typeinfer

import (
	"github.com/yona-lang/yona/internal/symbol"
	"github.com/yona-lang/yona/internal/types"
)

// RecordSchema is the registered type information for one declared record:
// its field order and the declared type of each field, consulted when
// type-checking a record-instance expression or a field access/update.
type RecordSchema struct {
	Name       symbol.ID
	FieldOrder []symbol.ID
	FieldTypes map[symbol.ID]*types.Type
}

// RecordRegistry maps a record type name to its schema. It is shared across
// every module inferred within one Inferencer, mirroring the interpreter's
// own record_types registry (spec section 4.6) which is also process-wide
// for a single run, not per-module.
type RecordRegistry struct {
	schemas map[symbol.ID]*RecordSchema
}

func NewRecordRegistry() *RecordRegistry {
	return &RecordRegistry{schemas: map[symbol.ID]*RecordSchema{}}
}

func (r *RecordRegistry) Register(s *RecordSchema) { r.schemas[s.Name] = s }

func (r *RecordRegistry) Lookup(name symbol.ID) (*RecordSchema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}
