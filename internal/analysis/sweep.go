package analysis

import (
	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/degradation"
	"github.com/san-kum/radsim/internal/solver"
)

type SweepPoint struct {
	Param        float64
	TemperatureK float64
}

// FluxSweep solves the equilibrium of m at steps fluxes from fluxMin to
// fluxMax.
func FluxSweep(s *solver.Solver, m catalog.Material, fluxMin, fluxMax float64, steps int) ([]SweepPoint, error) {
	fluxes, err := Linspace(fluxMin, fluxMax, steps)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, 0, len(fluxes))
	for _, f := range fluxes {
		res, err := s.SolveMaterial(m, f)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Param: f, TemperatureK: res.TemperatureK})
	}
	return points, nil
}

type AgingPoint struct {
	Years        float64
	Material     catalog.Material
	TemperatureK float64
}

// AgingSweep ages a cataloged material from 0 to maxYears and solves its
// equilibrium at each step.
func AgingSweep(s *solver.Solver, model *degradation.Model, name string, flux, maxYears float64, steps int) ([]AgingPoint, error) {
	years, err := Linspace(0, maxYears, steps)
	if err != nil {
		return nil, err
	}
	aged, err := model.Timeline(name, years)
	if err != nil {
		return nil, err
	}

	points := make([]AgingPoint, 0, len(aged))
	for i, m := range aged {
		res, err := s.SolveMaterial(m, flux)
		if err != nil {
			return nil, err
		}
		points = append(points, AgingPoint{Years: years[i], Material: m, TemperatureK: res.TemperatureK})
	}
	return points, nil
}

// Temperatures extracts the temperature column of a sweep.
func Temperatures(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.TemperatureK
	}
	return out
}
