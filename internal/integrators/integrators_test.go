package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/radsim/internal/dynamo"
)

// newtonCooling relaxes toward ambient with rate k: dT/dt = -k(T - ambient).
type newtonCooling struct {
	k, ambient float64
}

func (n *newtonCooling) Derive(x dynamo.State, u dynamo.Input, t float64) dynamo.State {
	return dynamo.State{-n.k * (x[0] - n.ambient)}
}

func (n *newtonCooling) StateDim() int { return 1 }
func (n *newtonCooling) InputDim() int { return 0 }

func (n *newtonCooling) exact(t0, t float64) float64 {
	return n.ambient + (t0-n.ambient)*math.Exp(-n.k*t)
}

// blowUp has a derivative that overflows immediately.
type blowUp struct{}

func (b *blowUp) Derive(x dynamo.State, u dynamo.Input, t float64) dynamo.State {
	return dynamo.State{math.Inf(1)}
}

func (b *blowUp) StateDim() int { return 1 }
func (b *blowUp) InputDim() int { return 0 }

func integrate(integ dynamo.Integrator, sys dynamo.System, x0 dynamo.State, dt float64, steps int) dynamo.State {
	x := x0.Clone()
	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, nil, float64(i)*dt, dt)
	}
	return x
}

func TestAccuracyOrdering(t *testing.T) {
	sys := &newtonCooling{k: 1.0 / 600, ambient: 200}
	x0 := dynamo.State{400}
	dt := 60.0
	steps := 60
	want := sys.exact(400, dt*float64(steps))

	errEuler := math.Abs(integrate(NewEuler(), sys, x0, dt, steps)[0] - want)
	errRK4 := math.Abs(integrate(NewRK4(), sys, x0, dt, steps)[0] - want)
	errRK45 := math.Abs(integrate(NewRK45(), sys, x0, dt, steps)[0] - want)

	if errRK4 > 1e-4 {
		t.Errorf("RK4 error too large: %g", errRK4)
	}
	if errRK45 > 1e-4 {
		t.Errorf("RK45 error too large: %g", errRK45)
	}
	if errEuler <= errRK4 {
		t.Errorf("expected Euler (%g) to be less accurate than RK4 (%g)", errEuler, errRK4)
	}
}

func TestRK4_ScratchResize(t *testing.T) {
	integ := NewRK4()
	sys := &newtonCooling{k: 0.1, ambient: 0}
	x := integ.Step(sys, dynamo.State{1}, nil, 0, 0.1)
	if len(x) != 1 || !x.IsValid() {
		t.Fatalf("unexpected state %v", x)
	}
	// same integrator, different dimension
	two := &vectorCooling{k: 0.1}
	y := integ.Step(two, dynamo.State{1, 2}, nil, 0, 0.1)
	if len(y) != 2 {
		t.Fatalf("expected 2 components, got %d", len(y))
	}
}

type vectorCooling struct{ k float64 }

func (v *vectorCooling) Derive(x dynamo.State, u dynamo.Input, t float64) dynamo.State {
	out := make(dynamo.State, len(x))
	for i := range x {
		out[i] = -v.k * x[i]
	}
	return out
}

func (v *vectorCooling) StateDim() int { return 2 }
func (v *vectorCooling) InputDim() int { return 0 }

func TestRK45_AdaptiveStep(t *testing.T) {
	integ := NewRK45()
	sys := &newtonCooling{k: 1.0 / 600, ambient: 200}

	x, newDt, err := integ.StepAdaptive(sys, dynamo.State{400}, nil, 0, 10, 1e-8)
	if err != nil {
		t.Fatalf("StepAdaptive returned error: %v", err)
	}
	if !x.IsValid() {
		t.Error("StepAdaptive produced invalid state")
	}
	// smooth problem, tiny step: the suggestion should grow
	if newDt <= 10 {
		t.Errorf("expected a larger suggested step, got %g", newDt)
	}

	_, shrunk, err := integ.StepAdaptive(sys, dynamo.State{400}, nil, 0, 5000, 1e-12)
	if !errors.Is(err, dynamo.ErrStepRejected) {
		t.Errorf("expected ErrStepRejected, got %v", err)
	}
	if shrunk >= 5000 {
		t.Errorf("expected a smaller suggested step, got %g", shrunk)
	}
}

func TestRK45_InvalidState(t *testing.T) {
	_, _, err := NewRK45().StepAdaptive(&blowUp{}, dynamo.State{1}, nil, 0, 1, 1e-6)
	if !errors.Is(err, dynamo.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		integ, err := New(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if integ == nil {
			t.Fatalf("%s: nil integrator", name)
		}
	}
	if len(Names()) != 3 {
		t.Errorf("expected 3 integrators, got %v", Names())
	}

	a, _ := New("rk4")
	b, _ := New("rk4")
	if a == b {
		t.Error("expected distinct integrator instances")
	}

	if _, err := New("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func BenchmarkEuler(b *testing.B) {
	integ := NewEuler()
	sys := &newtonCooling{k: 0.01, ambient: 3}
	x := dynamo.State{300}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, nil, 0, 1)
	}
}

func BenchmarkRK4(b *testing.B) {
	integ := NewRK4()
	sys := &newtonCooling{k: 0.01, ambient: 3}
	x := dynamo.State{300}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, nil, 0, 1)
	}
}

func BenchmarkRK45(b *testing.B) {
	integ := NewRK45()
	sys := &newtonCooling{k: 0.01, ambient: 3}
	x := dynamo.State{300}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, nil, 0, 1)
	}
}
