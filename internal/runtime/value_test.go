package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericPromotionEquals(t *testing.T) {
	assert.True(t, NewByte(3).Equals(NewInt(3)))
	assert.True(t, NewInt(3).Equals(NewFloat(3.0)))
	assert.True(t, NewByte(3).Equals(NewFloat(3.0)))
	assert.False(t, NewInt(3).Equals(NewFloat(3.5)))
}

func TestNonNumericKindsRequireSameKind(t *testing.T) {
	assert.False(t, NewString("3").Equals(NewInt(3)))
	assert.True(t, NewString("hi").Equals(NewString("hi")))
}

func TestTupleEquality(t *testing.T) {
	a := NewTuple([]Value{NewInt(1), NewString("x")})
	b := NewTuple([]Value{NewByte(1), NewString("x")})
	c := NewTuple([]Value{NewInt(1), NewString("y")})
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestHashConsistentWithEquals(t *testing.T) {
	a := NewTuple([]Value{NewInt(1), NewString("x")})
	b := NewTuple([]Value{NewByte(1), NewString("x")})
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestUnitSingleton(t *testing.T) {
	assert.True(t, Unit.Equals(Unit))
	assert.Equal(t, KindUnit, Unit.Kind())
}
