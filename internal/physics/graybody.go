package physics

import "math"

// EmittedPower returns the graybody emission ε·σ·T⁴ in W/m².
func EmittedPower(emissivity, temperature float64) (float64, error) {
	if err := CheckFraction("emissivity", emissivity); err != nil {
		return 0, err
	}
	if err := CheckNonNegative("temperature", temperature); err != nil {
		return 0, err
	}
	return Graybody(emissivity, temperature), nil
}

// Graybody is EmittedPower without argument checks, for inner loops whose
// inputs were validated once up front.
func Graybody(emissivity, temperature float64) float64 {
	t2 := temperature * temperature
	return emissivity * Sigma * t2 * t2
}

// PowerCurve evaluates EmittedPower at every temperature.
func PowerCurve(emissivity float64, temps []float64) ([]float64, error) {
	if err := CheckFraction("emissivity", emissivity); err != nil {
		return nil, err
	}
	out := make([]float64, len(temps))
	for i, t := range temps {
		if err := CheckNonNegative("temperature", t); err != nil {
			return nil, err
		}
		out[i] = Graybody(emissivity, t)
	}
	return out, nil
}

// GraybodySlope is d/dT of Graybody, 4εσT³.
func GraybodySlope(emissivity, temperature float64) float64 {
	return 4 * emissivity * Sigma * math.Pow(temperature, 3)
}
