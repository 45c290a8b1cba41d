package thermal

import (
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/physics"
)

// ConstantFlux applies the same solar flux at all times, W/m².
type ConstantFlux float64

func (c ConstantFlux) At(x dynamo.State, t float64) dynamo.Input {
	return dynamo.Input{float64(c)}
}

// OrbitFlux is full flux in sunlight and zero in eclipse. Each orbit starts
// in sunlight; the last EclipseFraction of the period is shadow.
type OrbitFlux struct {
	Flux            float64 // W/m² in sunlight
	Period          float64 // s
	EclipseFraction float64
}

func (o OrbitFlux) Validate() error {
	if err := physics.CheckNonNegative("flux", o.Flux); err != nil {
		return err
	}
	if math.IsNaN(o.Period) || math.IsInf(o.Period, 0) || o.Period <= 0 {
		return fmt.Errorf("%w: orbit period must be > 0, got %g", physics.ErrInvalidArgument, o.Period)
	}
	return physics.CheckFraction("eclipse_fraction", o.EclipseFraction)
}

func (o OrbitFlux) InEclipse(t float64) bool {
	phase := math.Mod(t/o.Period, 1)
	if phase < 0 {
		phase++
	}
	return phase >= 1-o.EclipseFraction
}

func (o OrbitFlux) At(x dynamo.State, t float64) dynamo.Input {
	if o.InEclipse(t) {
		return dynamo.Input{0}
	}
	return dynamo.Input{o.Flux}
}

// MeanFlux is the orbit-averaged flux.
func (o OrbitFlux) MeanFlux() float64 {
	return o.Flux * (1 - o.EclipseFraction)
}
