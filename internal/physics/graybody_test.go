package physics

import (
	"errors"
	"math"
	"testing"
)

func TestEmittedPower_StefanBoltzmann(t *testing.T) {
	p, err := EmittedPower(1.0, 100.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p-5.670374419) > 1e-9 {
		t.Errorf("expected 5.670374419 W/m², got %.12f", p)
	}
}

func TestEmittedPower_ScalesWithEmissivity(t *testing.T) {
	black, _ := EmittedPower(1.0, 300)
	gray, _ := EmittedPower(0.5, 300)
	if math.Abs(gray-black/2) > 1e-12 {
		t.Errorf("expected half of %g, got %g", black, gray)
	}
}

func TestEmittedPower_MonotonicInTemperature(t *testing.T) {
	for _, e := range []float64{0.05, 0.5, 0.9, 1.0} {
		prev := -1.0
		for temp := 1.0; temp <= 2000; temp += 7.5 {
			p, err := EmittedPower(e, temp)
			if err != nil {
				t.Fatalf("ε=%g T=%g: %v", e, temp, err)
			}
			if p < 0 {
				t.Fatalf("ε=%g T=%g: negative power %g", e, temp, p)
			}
			if p <= prev {
				t.Fatalf("ε=%g: power not increasing at T=%g (%g <= %g)", e, temp, p, prev)
			}
			prev = p
		}
	}
}

func TestEmittedPower_ZeroTemperature(t *testing.T) {
	p, err := EmittedPower(0.9, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 0 {
		t.Errorf("expected 0, got %g", p)
	}
}

func TestEmittedPower_InvalidArguments(t *testing.T) {
	tests := []struct {
		name        string
		emissivity  float64
		temperature float64
	}{
		{"negative temperature", 0.9, -1},
		{"emissivity above one", 1.01, 300},
		{"negative emissivity", -0.1, 300},
		{"NaN temperature", 0.9, math.NaN()},
		{"Inf temperature", 0.9, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EmittedPower(tt.emissivity, tt.temperature); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestPowerCurve(t *testing.T) {
	temps := []float64{150, 300, 700}
	curve, err := PowerCurve(0.9, temps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, temp := range temps {
		if curve[i] != Graybody(0.9, temp) {
			t.Errorf("point %d: expected %g, got %g", i, Graybody(0.9, temp), curve[i])
		}
	}

	if _, err := PowerCurve(0.9, []float64{300, -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGraybodySlope(t *testing.T) {
	h := 1e-3
	temp := 250.0
	numeric := (Graybody(0.8, temp+h) - Graybody(0.8, temp-h)) / (2 * h)
	if math.Abs(GraybodySlope(0.8, temp)-numeric)/numeric > 1e-6 {
		t.Errorf("slope %g differs from finite difference %g", GraybodySlope(0.8, temp), numeric)
	}
}

func TestTemperatureConversions(t *testing.T) {
	if KelvinToCelsius(273.15) != 0 {
		t.Error("273.15 K should be 0 °C")
	}
	if CelsiusToKelvin(-273.15) != 0 {
		t.Error("-273.15 °C should be 0 K")
	}
}
