package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument indicates an input outside the physical domain of a
// function: non-positive wavelength, negative temperature, emissivity outside
// [0,1], or a NaN/Inf value.
var ErrInvalidArgument = errors.New("physics: invalid argument")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckFraction reports whether v is a finite value in [0,1]. name is used in
// the returned error.
func CheckFraction(name string, v float64) error {
	if !finite(v) || v < 0 || v > 1 {
		return invalid("%s must be in [0,1], got %g", name, v)
	}
	return nil
}

// CheckNonNegative reports whether v is finite and >= 0.
func CheckNonNegative(name string, v float64) error {
	if !finite(v) || v < 0 {
		return invalid("%s must be >= 0, got %g", name, v)
	}
	return nil
}
