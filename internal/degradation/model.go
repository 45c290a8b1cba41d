// Package degradation projects material optical properties forward in time.
//
// Drift is linear per year and clamped to [0,1], since multi-year
// extrapolation would otherwise leave the physical range:
//
//	ε(t) = clamp(ε₀ + t·Δε, 0, 1)
//	α(t) = clamp(α₀ + t·Δα, 0, 1)
package degradation

import (
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/physics"
)

type Model struct {
	materials *catalog.Materials
}

func New(materials *catalog.Materials) *Model {
	return &Model{materials: materials}
}

// Project ages m by years using rate r. years = 0 returns m unchanged.
func Project(m catalog.Material, r catalog.DegradationRate, years float64) catalog.Material {
	if years == 0 {
		return m
	}
	out := m
	out.EmissivityIR = clamp01(m.EmissivityIR + years*r.DeltaEpsilonPerYear)
	out.AbsorptivitySolar = clamp01(m.AbsorptivitySolar + years*r.DeltaAlphaPerYear)
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// DegradedProperties returns the emissivity and absorptivity of a cataloged
// material after years of exposure.
func (m *Model) DegradedProperties(name string, years float64) (emissivity, absorptivity float64, err error) {
	aged, err := m.age(name, years)
	if err != nil {
		return 0, 0, err
	}
	return aged.EmissivityIR, aged.AbsorptivitySolar, nil
}

// Aged is DegradedProperties returned as a Material labelled with its age.
func (m *Model) Aged(name string, years float64) (catalog.Material, error) {
	aged, err := m.age(name, years)
	if err != nil {
		return catalog.Material{}, err
	}
	if years > 0 {
		aged.Name = fmt.Sprintf("%s (+%gy)", name, years)
	}
	return aged, nil
}

func (m *Model) age(name string, years float64) (catalog.Material, error) {
	if err := physics.CheckNonNegative("years_exposed", years); err != nil {
		return catalog.Material{}, err
	}
	base, err := m.materials.Lookup(name)
	if err != nil {
		return catalog.Material{}, err
	}
	rate, err := m.materials.Rate(name)
	if err != nil {
		return catalog.Material{}, err
	}
	return Project(base, rate, years), nil
}

// Timeline ages a material at each of the given exposure times.
func (m *Model) Timeline(name string, years []float64) ([]catalog.Material, error) {
	out := make([]catalog.Material, 0, len(years))
	for _, y := range years {
		aged, err := m.Aged(name, y)
		if err != nil {
			return nil, err
		}
		out = append(out, aged)
	}
	return out, nil
}
