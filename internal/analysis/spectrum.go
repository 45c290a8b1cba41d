package analysis

import (
	"math"

	"github.com/san-kum/radsim/internal/physics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

var DefaultSpectrumTemps = []float64{300, 500, 1800, 5800}

const (
	DefaultWavelengthMin = 1e-9
	DefaultWavelengthMax = 3e-6
	DefaultSpectrumSize  = 1000
)

type Spectrum struct {
	TemperatureK   float64
	Wavelengths    []float64 // m
	Radiance       []float64 // W·sr⁻¹·m⁻³
	PeakWavelength float64   // m, Wien
}

// MaxIdx returns the grid index of the sampled maximum.
func (s Spectrum) MaxIdx() int { return floats.MaxIdx(s.Radiance) }

// PlanckSpectra samples one spectrum per temperature on a shared log grid.
func PlanckSpectra(temps []float64, wlMin, wlMax float64, n int) ([]Spectrum, error) {
	wls, err := Logspace(wlMin, wlMax, n)
	if err != nil {
		return nil, err
	}

	out := make([]Spectrum, 0, len(temps))
	for _, t := range temps {
		b, err := physics.RadianceCurve(wls, t)
		if err != nil {
			return nil, err
		}
		peak, err := physics.WienPeak(t)
		if err != nil {
			return nil, err
		}
		out = append(out, Spectrum{TemperatureK: t, Wavelengths: wls, Radiance: b, PeakWavelength: peak})
	}
	return out, nil
}

// BandFraction is the share of blackbody radiance at temperature t emitted
// between lo and hi metres, integrated with the trapezoidal rule.
func BandFraction(t, lo, hi float64, n int) (float64, error) {
	wls, err := Logspace(lo, hi, n)
	if err != nil {
		return 0, err
	}
	b, err := physics.RadianceCurve(wls, t)
	if err != nil {
		return 0, err
	}
	total := physics.Sigma * math.Pow(t, 4) / math.Pi
	return integrate.Trapezoidal(wls, b) / total, nil
}

// LogRadiance maps radiance to log10 for plotting, flooring zeros at floor.
func LogRadiance(b []float64, floor float64) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		if v < floor {
			v = floor
		}
		out[i] = math.Log10(v)
	}
	return out
}
