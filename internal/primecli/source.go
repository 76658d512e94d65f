package primecli

import (
	"context"
	"fmt"

	"go.llib.dev/frameless/pkg/logging"

	"github.com/adamluzsi/primes/pkg/primekit"
)

// source is a primekit.Sequence with its width erased.
type source interface {
	Next() (uint64, bool)
}

type sequence[T primekit.Unsigned] struct {
	seq *primekit.Sequence[T]
}

func (s sequence[T]) Next() (uint64, bool) {
	v, ok := s.seq.Next()
	return uint64(v), ok
}

func newSource(ctx context.Context, l *logging.Logger, width int) source {
	switch width {
	case 8:
		return newSequence[uint8](ctx, l)
	case 16:
		return newSequence[uint16](ctx, l)
	case 32:
		return newSequence[uint32](ctx, l)
	case 64:
		return newSequence[uint64](ctx, l)
	default:
		panic(fmt.Sprintf("primecli: unsupported width: %d", width))
	}
}

func newSequence[T primekit.Unsigned](ctx context.Context, l *logging.Logger) sequence[T] {
	var opts []primekit.Option[T]
	if l.Level == logging.LevelDebug {
		opts = append(opts, primekit.WithTrace(traceTo[T](ctx, l)))
	}
	return sequence[T]{seq: primekit.NewSequence[T](opts...)}
}

func traceTo[T primekit.Unsigned](ctx context.Context, l *logging.Logger) primekit.TraceFunc[T] {
	return func(e primekit.TraceEvent[T]) {
		ds := []logging.Detail{
			logging.Field("event", e.Kind.String()),
			logging.Field("candidate", uint64(e.Candidate)),
		}
		if e.Kind == primekit.TraceSquareBound || e.Kind == primekit.TraceDivisible {
			ds = append(ds, logging.Field("prime", uint64(e.Prime)))
		}
		l.Debug(ctx, "prime candidate", ds...)
	}
}
