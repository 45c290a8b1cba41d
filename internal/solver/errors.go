package solver

import (
	"errors"
	"fmt"

	"github.com/san-kum/radsim/internal/physics"
)

var (
	// ErrDegenerate indicates a zero-emissivity surface. The power balance
	// does not depend on temperature, so there is no unique root.
	ErrDegenerate = fmt.Errorf("%w: solver: emissivity_ir is zero, balance has no unique root", physics.ErrInvalidArgument)

	// ErrNoConvergence indicates the iteration cap was reached before the
	// tolerance was met.
	ErrNoConvergence = errors.New("solver: root-finder did not converge")
)

// ConvergenceError carries the best estimate reached when the solver gave up.
type ConvergenceError struct {
	Iterations  int
	Temperature float64
	Residual    float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v after %d iterations (T=%.6f K, residual=%.3e W/m²)",
		ErrNoConvergence, e.Iterations, e.Temperature, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}
