package primekit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/adamluzsi/primes/pkg/primekit"
)

func TestSequence_PullIter(t *testing.T) {
	s := testcase.NewSpec(t)

	seq := testcase.Let(s, func(t *testcase.T) *primekit.Sequence[uint16] {
		return primekit.NewSequence[uint16]()
	})

	s.Test("Next and Value walk the primes", func(t *testcase.T) {
		i := seq.Get(t).PullIter()
		defer i.Close()

		var got []uint16
		for len(got) < 5 && i.Next() {
			got = append(got, i.Value())
		}
		assert.NoError(t, i.Err())
		assert.Equal(t, []uint16{2, 3, 5, 7, 11}, got)
	})

	s.Test("Close ends the iteration without affecting the sequence", func(t *testcase.T) {
		i := seq.Get(t).PullIter()
		assert.True(t, i.Next())
		assert.NoError(t, i.Close())
		assert.False(t, i.Next())
		assert.Equal(t, []uint16{2}, seq.Get(t).Primes())

		v, ok := seq.Get(t).Next()
		assert.True(t, ok)
		assert.Equal(t, uint16(3), v)
	})

	s.Test("exhaustion is reported as the end of the iteration, not as an error", func(t *testcase.T) {
		i := primekit.NewSequence[uint8](primekit.WithCeiling[uint8](10)).PullIter()
		var got []uint8
		for i.Next() {
			got = append(got, i.Value())
		}
		assert.NoError(t, i.Err())
		assert.Equal(t, []uint8{2, 3, 5, 7}, got)
		assert.False(t, i.Next())
	})
}
