package primekit

import "go.llib.dev/frameless/pkg/iterkit"

// PullIter exposes the Sequence through the iterkit.PullIter protocol.
// Closing the iterator only stops this iterator, the Sequence and its discovered primes remain intact.
func (s *Sequence[T]) PullIter() iterkit.PullIter[T] {
	return &pullIter[T]{seq: s}
}

type pullIter[T Unsigned] struct {
	seq    *Sequence[T]
	value  T
	closed bool
}

func (i *pullIter[T]) Next() bool {
	if i.closed {
		return false
	}
	v, ok := i.seq.Next()
	if !ok {
		i.closed = true
		return false
	}
	i.value = v
	return true
}

func (i *pullIter[T]) Value() T {
	return i.value
}

// Err is always nil, exhaustion of the range is the regular end of the sequence.
func (i *pullIter[T]) Err() error {
	return nil
}

func (i *pullIter[T]) Close() error {
	i.closed = true
	return nil
}
