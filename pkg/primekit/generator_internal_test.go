package primekit

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// suspendedAt builds a uint32 generator that already knows every prime below 2^16,
// and positions its cursor at the given prime.
// This is enough discovered primes to test any uint32 candidate.
func suspendedAt(tb testing.TB, cursor uint32) Suspended[uint32] {
	tb.Helper()
	seq := NewSequence[uint32](WithCeiling[uint32](1<<16 - 1))
	for {
		if _, ok := seq.Next(); !ok {
			break
		}
	}
	g := &generator[uint32]{
		discovered: seq.Primes(),
		cursor:     cursor,
		ceiling:    ^uint32(0),
	}
	return Suspended[uint32]{h: handle[uint32]{g: g}}
}

func TestSuspended_Resume_nearTheTopOfTheRange(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the last primes of the range are found without overflow", func(t *testcase.T) {
		v, next, ok := suspendedAt(t, 4294967279).Resume()
		assert.True(t, ok)
		assert.Equal(t, uint32(4294967291), v)
		assert.Equal(t, KindSuspended, next.Kind())
	})

	s.Test("after the last representable prime the generator completes", func(t *testcase.T) {
		v, next, ok := suspendedAt(t, 4294967291).Resume()
		assert.False(t, ok)
		assert.Equal(t, uint32(0), v)
		assert.Equal(t, KindCompleted, next.Kind())
		assert.Equal(t, uint32(4294967291), next.Primes()[len(next.Primes())-1])
	})
}

func TestGenerator_isPrime(t *testing.T) {
	g := &generator[uint8]{discovered: []uint8{2, 3, 5, 7, 11, 13}}
	// 17*17 does not fit into uint8, the square bound must still hold.
	assert.True(t, g.isPrime(251))
	assert.False(t, g.isPrime(253)) // 11 * 23
	assert.False(t, g.isPrime(255))
	assert.True(t, g.isPrime(17))
}

func TestToConfig(t *testing.T) {
	assert.Equal(t, ^uint16(0), toConfig[uint16](nil).Ceiling)
	assert.Equal(t, uint16(2), toConfig([]Option[uint16]{WithCeiling[uint16](1)}).Ceiling)
	assert.Equal(t, 0, toConfig([]Option[uint16]{WithCapacity[uint16](-1)}).Capacity)
	assert.Equal(t, uint16(2), toConfig([]Option[uint16]{WithCeiling[uint16](0)}).Ceiling)
	assert.Equal(t, uint16(100), toConfig([]Option[uint16]{WithCapacity[uint16](8), WithCeiling[uint16](100)}).Ceiling)
	assert.Equal(t, ^uint16(0), toConfig([]Option[uint16]{Config[uint16]{Capacity: 4}}).Ceiling)
}
