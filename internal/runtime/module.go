package runtime

import (
	"strings"

	"github.com/yona-lang/yona/internal/symbol"
)

// FQN is a fully qualified module name: package parts plus a module name,
// e.g. Data\Map printed from PackageParts=["Data"], ModuleName="Map".
type FQN struct {
	PackageParts []symbol.ID
	ModuleName   symbol.ID
}

func (f *FQN) String() string {
	parts := make([]string, 0, len(f.PackageParts)+1)
	for _, p := range f.PackageParts {
		parts = append(parts, p.Str())
	}
	parts = append(parts, f.ModuleName.Str())
	return strings.Join(parts, "\\")
}

// Key returns the slash-joined cache key used by the module cache, distinct
// from the backslash-joined surface-syntax rendering in String.
func (f *FQN) Key() string {
	parts := make([]string, 0, len(f.PackageParts)+1)
	for _, p := range f.PackageParts {
		parts = append(parts, p.Str())
	}
	parts = append(parts, f.ModuleName.Str())
	return strings.Join(parts, "/")
}

// Module is a loaded, evaluated module: its exported functions, the record
// types it declares, and its FQN for re-lookup in the module cache.
type Module struct {
	FQN       *FQN
	Exports   map[symbol.ID]bool
	Functions map[symbol.ID]*Function
	Records   map[symbol.ID]*RecordType
}

func NewModule(fqn *FQN) *Module {
	return &Module{
		FQN:       fqn,
		Exports:   map[symbol.ID]bool{},
		Functions: map[symbol.ID]*Function{},
		Records:   map[symbol.ID]*RecordType{},
	}
}

// IsExported reports whether name is in this module's export list.
func (m *Module) IsExported(name symbol.ID) bool { return m.Exports[name] }
