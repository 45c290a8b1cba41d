package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/optim"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/san-kum/radsim/internal/solver"
)

// CoatingDesign is the grid coating whose equilibrium lands closest to a
// target temperature.
type CoatingDesign struct {
	Material     catalog.Material
	TemperatureK float64
	ErrorK       float64
	Evaluated    int
}

// DesignCoating grid-searches ε and α over [0.05, 1] for the surface whose
// equilibrium under flux is nearest targetK.
func DesignCoating(ctx context.Context, s *solver.Solver, flux, targetK float64, steps int) (CoatingDesign, error) {
	if err := physics.CheckNonNegative("target", targetK); err != nil {
		return CoatingDesign{}, err
	}
	axis, err := Linspace(0.05, 1, steps)
	if err != nil {
		return CoatingDesign{}, err
	}

	g := optim.NewGridSearch([]string{"emissivity_ir", "absorptivity_solar"}, [][]float64{axis, axis})
	best, errK, err := g.Search(ctx, func(p map[string]float64) (float64, error) {
		res, err := s.SolveMaterial(coating(p), flux)
		if err != nil {
			return 0, err
		}
		return math.Abs(res.TemperatureK - targetK), nil
	})
	if err != nil {
		return CoatingDesign{}, err
	}

	m := coating(best)
	res, err := s.SolveMaterial(m, flux)
	if err != nil {
		return CoatingDesign{}, err
	}
	return CoatingDesign{Material: m, TemperatureK: res.TemperatureK, ErrorK: errK, Evaluated: g.Evaluated()}, nil
}

func coating(p map[string]float64) catalog.Material {
	e, a := p["emissivity_ir"], p["absorptivity_solar"]
	return catalog.Material{
		Name:              fmt.Sprintf("ε=%.2f α=%.2f", e, a),
		EmissivityIR:      e,
		AbsorptivitySolar: a,
	}
}
