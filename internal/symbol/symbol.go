// Package symbol manages interned names. Symbols are deduped strings
// represented as small integers so that AST nodes, frames and pattern
// bindings can compare and hash names in O(1) instead of carrying strings
// around.
package symbol

import (
	"sync"

	"github.com/spaolacci/murmur3"

	"github.com/yona-lang/yona/internal/hash"
)

// ID is an interned name.
type ID int32

// Invalid is the zero value, never returned by Intern.
const Invalid = ID(0)

// numShards splits the hot name->ID lookup across independent locks so that
// concurrent Intern calls for unrelated names don't serialize on one mutex.
// Only the append-only ids slice (which must hand out IDs in one global
// sequence) still needs the table-wide lock.
const numShards = 32

type shard struct {
	mu   sync.RWMutex
	syms map[string]ID // name -> ID
}

type table struct {
	mu     sync.Mutex // protects ids and assigning new IDs across shards
	ids    []string   // ID -> name
	shards [numShards]*shard
	seed   uint32
}

var symbols = newTable()

func newTable() *table {
	t := &table{
		ids:  []string{""}, // index 0 reserved for Invalid
		seed: 0x9e3779b9,
	}
	for i := range t.shards {
		t.shards[i] = &shard{syms: map[string]ID{}}
	}
	return t
}

// shardFor picks the shard a name's entry lives in. Re-hashing with murmur3
// rather than relying on Go's own (unexported, unstable-across-versions) map
// hash mirrors how the teacher's parallel reduce re-hashes a structural hash
// with murmur3 to get enough low-order-bit entropy to distribute across
// shards/buckets evenly.
func (t *table) shardFor(name string) *shard {
	return t.shards[fastHash(name, t.seed)%numShards]
}

// Intern finds or allocates the ID for the given name.
func Intern(name string) ID {
	if name == "" {
		panic("symbol: empty name")
	}
	sh := symbols.shardFor(name)

	sh.mu.RLock()
	if id, ok := sh.syms[name]; ok {
		sh.mu.RUnlock()
		return id
	}
	sh.mu.RUnlock()

	symbols.mu.Lock()
	defer symbols.mu.Unlock()
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if id, ok := sh.syms[name]; ok {
		return id
	}
	id := ID(len(symbols.ids))
	symbols.ids = append(symbols.ids, name)
	sh.syms[name] = id
	return id
}

// Str returns the name the ID was interned from. It panics on an unknown ID.
func (id ID) Str() string {
	symbols.mu.Lock()
	defer symbols.mu.Unlock()
	if int(id) >= len(symbols.ids) {
		panic("symbol: unknown id")
	}
	return symbols.ids[id]
}

// String implements fmt.Stringer. Unlike Str, it never panics -- useful in
// %v format verbs during debugging.
func (id ID) String() string {
	if id == Invalid {
		return "<invalid>"
	}
	return id.Str()
}

// Hash computes a structural hash of the symbol's name. Two equal names
// always produce equal hashes, independent of interning order.
func (id ID) Hash() hash.Hash {
	return hash.String(id.Str())
}

// fastHash is a non-cryptographic hash used for hot interning lookups (shard
// selection), distinct from the cryptographic Hash method above.
func fastHash(name string, seed uint32) uint64 {
	return murmur3.Sum64WithSeed([]byte(name), seed)
}
