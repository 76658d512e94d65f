package primekit

import "slices"

// Phase is the closed set of generator phases: Uninitialized, Suspended and Completed.
// Use a type switch to dispatch on the concrete phase.
type Phase[T Unsigned] interface {
	Kind() Kind
	// Primes returns the primes discovered up to this phase, in ascending order.
	// A consumed phase keeps reporting what was known while it was live,
	// later discoveries show up only on the phases that followed it.
	// The returned slice is a copy, mutating it has no effect on the generator.
	Primes() []T

	phase()
}

// New makes a fresh generator in the Uninitialized phase.
func New[T Unsigned](opts ...Option[T]) Uninitialized[T] {
	c := toConfig(opts)
	g := &generator[T]{
		discovered: make([]T, 0, c.Capacity),
		cursor:     2,
		ceiling:    c.Ceiling,
		trace:      c.Trace,
	}
	return Uninitialized[T]{h: handle[T]{g: g}}
}

// Uninitialized is a generator that has not produced any value yet.
type Uninitialized[T Unsigned] struct{ h handle[T] }

func (Uninitialized[T]) Kind() Kind    { return KindUninitialized }
func (u Uninitialized[T]) Primes() []T { return u.h.primes() }
func (Uninitialized[T]) phase()        {}

// Init produces the first prime and moves the generator into the Suspended phase.
// The receiver is consumed.
func (u Uninitialized[T]) Init() (T, Suspended[T]) {
	g := u.h.claim(KindUninitialized, "Init")
	g.cursor = 2
	g.discovered = append(g.discovered[:0], g.cursor)
	g.emit(TraceEvent[T]{Kind: TraceFound, Candidate: g.cursor})
	return g.cursor, Suspended[T]{h: u.h.next()}
}

// Suspended is a live generator waiting to be resumed.
type Suspended[T Unsigned] struct{ h handle[T] }

func (Suspended[T]) Kind() Kind    { return KindSuspended }
func (s Suspended[T]) Primes() []T { return s.h.primes() }
func (Suspended[T]) phase()        {}

// Resume searches for the next prime.
//
// When one is found, it is returned together with the next Suspended phase and true.
// When the candidate range is exhausted, the Completed phase is returned with false.
// The receiver is consumed either way.
func (s Suspended[T]) Resume() (T, Phase[T], bool) {
	g := s.h.claim(KindSuspended, "Resume")
	for g.cursor < g.ceiling {
		g.cursor++
		g.emit(TraceEvent[T]{Kind: TraceTesting, Candidate: g.cursor})
		if !g.isPrime(g.cursor) {
			continue
		}
		g.discovered = append(g.discovered, g.cursor)
		g.emit(TraceEvent[T]{Kind: TraceFound, Candidate: g.cursor})
		return g.cursor, Suspended[T]{h: s.h.next()}, true
	}
	g.emit(TraceEvent[T]{Kind: TraceExhausted, Candidate: g.cursor})
	var zero T
	return zero, Completed[T]{h: s.h.next()}, false
}

// Completed is a generator that exhausted its candidate range.
// It is terminal, the discovered primes remain inspectable.
type Completed[T Unsigned] struct{ h handle[T] }

func (Completed[T]) Kind() Kind    { return KindCompleted }
func (c Completed[T]) Primes() []T { return c.h.primes() }
func (Completed[T]) phase()        {}

type generator[T Unsigned] struct {
	discovered []T
	cursor     T
	ceiling    T
	trace      TraceFunc[T]
	// epoch is bumped on every transition,
	// a handle is only valid while its epoch matches.
	epoch uint64
}

func (g *generator[T]) isPrime(candidate T) bool {
	for _, p := range g.discovered {
		// p > candidate/p is the same as p*p > candidate, but it can't overflow T.
		if p > candidate/p {
			g.emit(TraceEvent[T]{Kind: TraceSquareBound, Candidate: candidate, Prime: p})
			return true
		}
		if candidate%p == 0 {
			g.emit(TraceEvent[T]{Kind: TraceDivisible, Candidate: candidate, Prime: p})
			return false
		}
	}
	return true
}

func (g *generator[T]) emit(e TraceEvent[T]) {
	if g.trace != nil {
		g.trace(e)
	}
}

type handle[T Unsigned] struct {
	g     *generator[T]
	epoch uint64
	// known is the length of discovered when the handle was made.
	// discovered is append-only, so its prefix is a stable snapshot.
	known int
}

func (h handle[T]) claim(kind Kind, op string) *generator[T] {
	if h.g == nil {
		panic(ErrZeroPhase.F("%s called on a zero %s phase, use primekit.New", op, kind))
	}
	if h.g.epoch != h.epoch {
		panic(ErrPhaseConsumed.F("%s called on an already consumed %s phase", op, kind))
	}
	h.g.epoch++
	return h.g
}

func (h handle[T]) next() handle[T] {
	return handle[T]{g: h.g, epoch: h.g.epoch, known: len(h.g.discovered)}
}

func (h handle[T]) primes() []T {
	if h.g == nil {
		return nil
	}
	return slices.Clone(h.g.discovered[:h.known])
}
