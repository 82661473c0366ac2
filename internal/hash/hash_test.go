package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yona-lang/yona/internal/hash"
)

func TestEmptyInputHashNonZero(t *testing.T) {
	assert.NotEqual(t, hash.Bytes(nil), hash.Hash{})
	assert.NotEqual(t, hash.String(""), hash.Hash{})
}

func TestHashAdd(t *testing.T) {
	h1 := hash.String("a")
	h2 := hash.String("b")
	assert.Equal(t, hash.Hash{}.Add(h1), h1)
	assert.Equal(t, h1.Add(hash.Hash{}), h1)
	assert.NotEqual(t, h1.Add(h1), hash.Hash{})
	assert.Equal(t, h1.Add(h2), h2.Add(h1))
}

func TestHashMerge(t *testing.T) {
	h1 := hash.String("a")
	h2 := hash.String("b")
	assert.NotEqual(t, hash.Hash{}.Merge(h1), h1)
	assert.NotEqual(t, h1.Merge(h2), h2.Merge(h1))
}

func TestIntFloatDistinct(t *testing.T) {
	assert.NotEqual(t, hash.Int(1), hash.Float(1.0))
}
