package symbol_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yona-lang/yona/internal/symbol"
)

func TestInternDedups(t *testing.T) {
	a := symbol.Intern("foo")
	b := symbol.Intern("foo")
	assert.Equal(t, a, b)
	c := symbol.Intern("bar")
	assert.NotEqual(t, a, c)
}

func TestStrRoundTrips(t *testing.T) {
	id := symbol.Intern("round-trip")
	assert.Equal(t, "round-trip", id.Str())
}

func TestHashStable(t *testing.T) {
	a := symbol.Intern("stable")
	assert.Equal(t, a.Hash(), a.Hash())
}

// TestInternConcurrentDistinctNames exercises the sharded lookup path:
// distinct names are spread across shards by their murmur3 hashes, and
// concurrent first-time interning of them must still hand out distinct,
// stable IDs.
func TestInternConcurrentDistinctNames(t *testing.T) {
	const n = 200
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("concurrent-symbol-%d", i)
	}

	ids := make([]symbol.ID, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i, name := range names {
		i, name := i, name
		go func() {
			defer wg.Done()
			ids[i] = symbol.Intern(name)
		}()
	}
	wg.Wait()

	seen := make(map[symbol.ID]bool, n)
	for i, id := range ids {
		assert.Equal(t, names[i], id.Str())
		assert.False(t, seen[id], "duplicate id assigned for distinct name %s", names[i])
		seen[id] = true
	}
}
