package analysis

import (
	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/san-kum/radsim/internal/solver"
)

const (
	DefaultBalanceMin    = 150.0
	DefaultBalanceMax    = 700.0
	DefaultBalancePoints = 500
)

// PowerBalance is radiated power over a temperature grid against the constant
// absorbed power. The curves cross at the equilibrium temperature.
type PowerBalance struct {
	Material     catalog.Material
	Temps        []float64
	Emitted      []float64
	Absorbed     float64
	EquilibriumK float64
}

func NewPowerBalance(s *solver.Solver, m catalog.Material, flux, tMin, tMax float64, n int) (*PowerBalance, error) {
	temps, err := Linspace(tMin, tMax, n)
	if err != nil {
		return nil, err
	}
	emitted, err := physics.PowerCurve(m.EmissivityIR, temps)
	if err != nil {
		return nil, err
	}
	res, err := s.SolveMaterial(m, flux)
	if err != nil {
		return nil, err
	}

	p := solver.Problem{
		EmissivityIR:      m.EmissivityIR,
		AbsorptivitySolar: m.AbsorptivitySolar,
		SolarFlux:         flux,
		AmbientTemp:       s.Config().AmbientTemp,
	}
	return &PowerBalance{
		Material:     m,
		Temps:        temps,
		Emitted:      emitted,
		Absorbed:     p.Absorbed(),
		EquilibriumK: res.TemperatureK,
	}, nil
}

// AbsorbedLine repeats Absorbed once per grid point, for plotting as a
// horizontal reference line.
func (b *PowerBalance) AbsorbedLine() []float64 {
	out := make([]float64, len(b.Temps))
	for i := range out {
		out[i] = b.Absorbed
	}
	return out
}
