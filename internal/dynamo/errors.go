package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates a NaN or Inf in the state vector.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	ErrInvalidConfig = errors.New("dynamo: invalid run configuration")

	// ErrStepTooSmall indicates adaptive refinement hit the minimum step
	// without meeting the tolerance.
	ErrStepTooSmall = errors.New("dynamo: adaptive timestep below minimum")

	// ErrStepRejected is returned by an adaptive step whose error estimate
	// exceeds the tolerance; the returned step size is the retry suggestion.
	ErrStepRejected = errors.New("dynamo: step rejected by error control")

	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)

// SimulationError wraps an error with the step at which it happened.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
