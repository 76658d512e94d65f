package primekit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrPhaseConsumed is the panic cause when a phase value is used after it was already transitioned.
	ErrPhaseConsumed errorkit.Error = "ErrPhaseConsumed"
	// ErrZeroPhase is the panic cause when a transition is attempted on a phase that was not made by New.
	ErrZeroPhase errorkit.Error = "ErrZeroPhase"
)
