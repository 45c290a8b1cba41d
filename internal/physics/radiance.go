package physics

import "math"

// SpectralRadiance evaluates Planck's law, W·sr⁻¹·m⁻³, for a wavelength in
// metres and a temperature in Kelvin.
func SpectralRadiance(wavelength, temperature float64) (float64, error) {
	if !finite(wavelength) || wavelength <= 0 {
		return 0, invalid("wavelength must be > 0, got %g", wavelength)
	}
	if !finite(temperature) || temperature <= 0 {
		return 0, invalid("temperature must be > 0, got %g", temperature)
	}
	return radiance(wavelength, temperature), nil
}

func radiance(wavelength, temperature float64) float64 {
	exponent := (Planck * SpeedOfLight) / (wavelength * Boltzmann * temperature)
	if exponent > MaxExponent {
		return 0
	}
	numerator := 2.0 * Planck * SpeedOfLight * SpeedOfLight
	return numerator / (math.Pow(wavelength, 5) * math.Expm1(exponent))
}

// RadianceCurve evaluates SpectralRadiance at every wavelength. It stops at
// the first invalid wavelength.
func RadianceCurve(wavelengths []float64, temperature float64) ([]float64, error) {
	out := make([]float64, len(wavelengths))
	for i, w := range wavelengths {
		b, err := SpectralRadiance(w, temperature)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// WienPeak returns the wavelength, m, at which a blackbody at temperature
// peaks.
func WienPeak(temperature float64) (float64, error) {
	if !finite(temperature) || temperature <= 0 {
		return 0, invalid("temperature must be > 0, got %g", temperature)
	}
	return WienB / temperature, nil
}
