package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqConsAppendImmutable(t *testing.T) {
	s := NewSeq([]Value{NewInt(2), NewInt(3)})
	consed := s.Cons(NewInt(1))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, consed.Len())
	assert.Equal(t, int64(1), consed.At(0).Int())
	appended := s.Append(NewInt(4))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, int64(4), appended.At(2).Int())
}

func TestSeqHeadTailsAndTailsHead(t *testing.T) {
	s := NewSeq([]Value{NewInt(1), NewInt(2), NewInt(3)})
	assert.Equal(t, int64(1), s.Head().Int())
	assert.Equal(t, 2, s.Tails().Len())
	assert.Equal(t, int64(3), s.LastHead().Int())
	assert.Equal(t, 2, s.Init().Len())
}

func TestSetAddDedupsByStructuralEquality(t *testing.T) {
	s := EmptySet().Add(NewInt(1)).Add(NewByte(1)).Add(NewInt(2))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(NewFloat(1.0)))
}

func TestSetEqualsAsMultiset(t *testing.T) {
	a := NewSet([]Value{NewInt(1), NewInt(2)})
	b := NewSet([]Value{NewInt(2), NewInt(1)})
	assert.True(t, a.equals(b))
}

func TestDictPreservesInsertionOrderOnUpdate(t *testing.T) {
	d := EmptyDict().Set(NewString("a"), NewInt(1)).Set(NewString("b"), NewInt(2))
	d2 := d.Set(NewString("a"), NewInt(99))
	entries := d2.Entries()
	assert.Equal(t, "a", entries[0].Key.Str())
	assert.Equal(t, int64(99), entries[0].Value.Int())
	assert.Equal(t, "b", entries[1].Key.Str())
}

func TestDictGetMissing(t *testing.T) {
	d := EmptyDict()
	_, ok := d.Get(NewString("missing"))
	assert.False(t, ok)
}

func TestDictEqualsAsUnorderedPairs(t *testing.T) {
	a := NewDict([]DictEntry{{NewString("a"), NewInt(1)}, {NewString("b"), NewInt(2)}})
	b := NewDict([]DictEntry{{NewString("b"), NewInt(2)}, {NewString("a"), NewInt(1)}})
	assert.True(t, a.equals(b))
}
