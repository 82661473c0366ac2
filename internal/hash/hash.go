// Package hash computes structural hashes of runtime values, symbols and
// function closures: a fixed-size Hash, Add for order-independent
// combination (building up a set/dict digest element by element), and Merge
// for order-dependent combination (chaining fields of a record or elements
// of a tuple), built on blake2b.
package hash

import (
	"encoding/binary"
	"math"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Hash is a 32-byte digest. The zero Hash is a valid "empty" value.
type Hash [32]byte

// Add combines two hashes order-independently (h.Add(h2) == h2.Add(h)) by
// byte-wise addition, so adding a hash to itself does not cancel out. It is
// used to combine values whose relative order is not part of their identity,
// e.g. the members of a set or the entries of a dict.
func (h Hash) Add(h2 Hash) Hash {
	var out Hash
	for i := range out {
		out[i] = h[i] + h2[i]
	}
	return out
}

// Merge combines two hashes order-dependently. Merge is neither associative
// nor commutative; it is used to fold a sequence of hashes where order matters,
// e.g. tuple elements or record fields.
func (h Hash) Merge(h2 Hash) Hash {
	buf := make([]byte, 0, len(h)+len(h2))
	buf = append(buf, h[:]...)
	buf = append(buf, h2[:]...)
	sum := blake2b.Sum256(buf)
	return Hash(sum)
}

func sum(b []byte) Hash {
	return Hash(blake2b.Sum256(b))
}

// Bytes hashes a byte slice.
func Bytes(b []byte) Hash {
	return sum(b)
}

// String hashes a string.
func String(s string) Hash {
	return sum([]byte(s))
}

// Bool hashes a boolean.
func Bool(v bool) Hash {
	if v {
		return sum([]byte{1})
	}
	return sum([]byte{0})
}

// Int hashes a 64-bit integer.
func Int(v int64) Hash {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return sum(buf[:])
}

// Float hashes a 64-bit float.
func Float(v float64) Hash {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return sum(buf[:])
}

// Time hashes a time.Time at nanosecond granularity.
func Time(t time.Time) Hash {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(t.UnixNano()))
	return sum(buf[:])
}

// Uint64 interprets the first 8 bytes of the hash as a little-endian
// uint64, for feeding a structural hash into an integer-keyed table.
func (h Hash) Uint64() uint64 {
	return binary.LittleEndian.Uint64(h[:8])
}
