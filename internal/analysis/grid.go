package analysis

import (
	"fmt"

	"github.com/san-kum/radsim/internal/physics"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 points, got %d", physics.ErrInvalidArgument, n)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// Logspace returns n logarithmically spaced values from lo to hi inclusive.
// Both bounds must be positive.
func Logspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 points, got %d", physics.ErrInvalidArgument, n)
	}
	if !(lo > 0 && hi > 0) {
		return nil, fmt.Errorf("%w: log grid bounds must be > 0, got [%g, %g]", physics.ErrInvalidArgument, lo, hi)
	}
	return floats.LogSpan(make([]float64, n), lo, hi), nil
}
