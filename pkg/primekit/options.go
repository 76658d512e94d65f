package primekit

import "go.llib.dev/frameless/port/option"

// Option configures a generator made by New or NewSequence.
type Option[T Unsigned] option.Option[Config[T]]

// Config is the generator configuration.
// Config itself is an Option, so a fully assembled Config can be passed to New.
type Config[T Unsigned] struct {
	// Ceiling is the largest candidate the generator may test.
	// In a Config literal, zero means the full range of T.
	// Values below 2 are raised to 2, since the first prime is always produced.
	Ceiling T
	// Trace receives an event for every decision the generator makes about a candidate.
	Trace TraceFunc[T]
	// Capacity preallocates the storage of the discovered primes.
	Capacity int
}

func (c *Config[T]) Init() {
	c.Ceiling = ^T(0)
}

func (c Config[T]) Configure(t *Config[T]) { *t = c }

// WithCeiling narrows the candidate range of the generator to [2, ceiling].
// A ceiling below 2, zero included, is raised to 2.
func WithCeiling[T Unsigned](ceiling T) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Ceiling = max(ceiling, 2) })
}

// WithTrace registers a TraceFunc.
func WithTrace[T Unsigned](fn TraceFunc[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Trace = fn })
}

// WithCapacity preallocates room for n discovered primes.
// Negative values are ignored.
func WithCapacity[T Unsigned](n int) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Capacity = n })
}

func toConfig[T Unsigned](opts []Option[T]) Config[T] {
	c := option.ToConfig(opts)
	switch {
	case c.Ceiling == 0:
		c.Ceiling = ^T(0)
	case c.Ceiling < 2:
		c.Ceiling = 2
	}
	if c.Capacity < 0 {
		c.Capacity = 0
	}
	return c
}
