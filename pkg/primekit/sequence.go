package primekit

import (
	"cmp"
	"fmt"
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// State is the lifecycle state of a Sequence.
type State int

const (
	// StateCreated means no value was requested yet.
	StateCreated State = iota
	// StateReady means the sequence produced values and can produce more.
	StateReady
	// StateClosed means the sequence is exhausted. It is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Sequence is an ascending, forward-only sequence of primes.
// It owns exactly one generator and advances it by one step per Next call.
//
// The zero value is a ready to use Sequence with the default configuration.
// Sequence is not safe for concurrent use.
type Sequence[T Unsigned] struct {
	phase Phase[T]
}

// NewSequence makes a Sequence over a fresh generator configured by opts.
func NewSequence[T Unsigned](opts ...Option[T]) *Sequence[T] {
	return &Sequence[T]{phase: New[T](opts...)}
}

// Next returns the next prime.
// When the sequence is exhausted, it returns false, and keeps doing so for every subsequent call.
func (s *Sequence[T]) Next() (T, bool) {
	switch g := s.current().(type) {
	case Uninitialized[T]:
		v, next := g.Init()
		s.phase = next
		return v, true
	case Suspended[T]:
		v, next, ok := g.Resume()
		s.phase = next
		return v, ok
	case Completed[T]:
		var zero T
		return zero, false
	default:
		panic(fmt.Sprintf("primekit: unknown phase %T", g))
	}
}

// Primes returns every prime the sequence produced so far, in order.
func (s *Sequence[T]) Primes() []T {
	return s.current().Primes()
}

// State reports where the Sequence is in its lifecycle.
func (s *Sequence[T]) State() State {
	switch s.current().Kind() {
	case KindUninitialized:
		return StateCreated
	case KindSuspended:
		return StateReady
	default:
		return StateClosed
	}
}

// All returns the remaining primes as a range-over-func iterator.
// Breaking out of the loop leaves the Sequence where it was,
// so a later iteration continues from the next prime.
func (s *Sequence[T]) All() iterkit.SingleUseSeq[T] {
	return iterkit.FromPull(s.Next)
}

func (s *Sequence[T]) current() Phase[T] {
	if s.phase == nil {
		s.phase = New[T]()
	}
	return s.phase
}

// TakeUntil collects values from the iterator until one exceeds the limit.
// The value that exceeded the limit is part of the result.
func TakeUntil[T cmp.Ordered](i iter.Seq[T], limit T) []T {
	var vs []T
	for v := range i {
		vs = append(vs, v)
		if limit < v {
			break
		}
	}
	return vs
}
