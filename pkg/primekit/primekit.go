// Package primekit provides a lazily evaluated, trial division based prime number sequence.
//
// # Summary
//
// The generator is a resumable computation with three lifecycle phases.
// Each phase is its own type, and only the operations that make sense in that phase are defined on it:
//
//	Uninitialized --Init--> Suspended --Resume--> Suspended
//	                                  \--Resume--> Completed
//
// A phase value is consumed by its transition.
// Using a consumed phase again is a programming error and panics immediately.
//
// Sequence wraps the generator into the pull based "next value or end of sequence" protocol,
// and offers range-over-func and PullIter adapters on top of it.
//
// The produced sequence is bounded only by the representable range of the chosen unsigned integer type.
// When the range is exhausted, the generator completes, and the sequence reports no more values from then on.
package primekit

// Unsigned is the set of fixed-width unsigned integer types a generator can work with.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Kind tells which lifecycle phase a generator is in.
type Kind int

const (
	KindUninitialized Kind = iota
	KindSuspended
	KindCompleted
)

func (k Kind) String() string {
	switch k {
	case KindUninitialized:
		return "uninitialized"
	case KindSuspended:
		return "suspended"
	case KindCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
