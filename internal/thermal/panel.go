// Package thermal models the temperature history of a thin radiating panel:
//
//	C·dT/dt = α·F(t) + H(t) + εσT_amb⁴ − εσT⁴
//
// with C the areal heat capacity in J/(m²·K) and H an optional heater in
// W/m². Under constant flux T relaxes
// to the equilibrium temperature that package solver computes directly.
// Time-varying flux such as an orbit with eclipse comes from a
// [dynamo.Forcing].
package thermal

import (
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/physics"
)

// Panel is a dynamo.System with state [T] and input [flux, heater]. A
// missing heater component counts as zero.
type Panel struct {
	Material     catalog.Material
	HeatCapacity float64 // J/(m²·K)
	AmbientTemp  float64 // K
}

func (p Panel) Validate() error {
	if err := p.Material.Validate(); err != nil {
		return err
	}
	if math.IsNaN(p.HeatCapacity) || math.IsInf(p.HeatCapacity, 0) || p.HeatCapacity <= 0 {
		return fmt.Errorf("%w: heat_capacity must be > 0, got %g", physics.ErrInvalidArgument, p.HeatCapacity)
	}
	return physics.CheckNonNegative("ambient_temp", p.AmbientTemp)
}

func (p Panel) Derive(x dynamo.State, u dynamo.Input, t float64) dynamo.State {
	flux, heater := 0.0, 0.0
	if len(u) > 0 {
		flux = u[0]
	}
	if len(u) > 1 {
		heater = u[1]
	}
	m := p.Material
	net := m.AbsorptivitySolar*flux + heater + physics.Graybody(m.EmissivityIR, p.AmbientTemp) - physics.Graybody(m.EmissivityIR, x[0])
	return dynamo.State{net / p.HeatCapacity}
}

func (p Panel) StateDim() int { return 1 }
func (p Panel) InputDim() int { return 2 }

// TimeConstant is the linearised relaxation time C/(4εσT³) at temperature
// t, in seconds. It is +Inf for a non-emitting panel or t = 0.
func (p Panel) TimeConstant(t float64) float64 {
	slope := physics.GraybodySlope(p.Material.EmissivityIR, t)
	if slope == 0 {
		return math.Inf(1)
	}
	return p.HeatCapacity / slope
}
