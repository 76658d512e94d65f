package primekit

// TraceFunc observes the generator's candidate decisions.
// It is called synchronously, from within Init and Resume.
type TraceFunc[T Unsigned] func(TraceEvent[T])

// TraceKind tells what kind of decision a TraceEvent reports.
type TraceKind int

const (
	// TraceTesting is emitted when a new candidate is about to be tested.
	TraceTesting TraceKind = iota
	// TraceSquareBound is emitted when the candidate is accepted early,
	// because Prime squared already exceeds it.
	TraceSquareBound
	// TraceDivisible is emitted when the candidate is rejected, because Prime divides it.
	TraceDivisible
	// TraceFound is emitted when Candidate is confirmed as the next prime.
	TraceFound
	// TraceExhausted is emitted when the candidate range ran out without finding a further prime.
	TraceExhausted
)

func (k TraceKind) String() string {
	switch k {
	case TraceTesting:
		return "testing"
	case TraceSquareBound:
		return "square-bound"
	case TraceDivisible:
		return "divisible"
	case TraceFound:
		return "found"
	case TraceExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// TraceEvent describes one decision the generator made about Candidate.
type TraceEvent[T Unsigned] struct {
	Kind      TraceKind
	Candidate T
	// Prime is the discovered prime that decided the outcome.
	// Only set for TraceSquareBound and TraceDivisible.
	Prime T
}
