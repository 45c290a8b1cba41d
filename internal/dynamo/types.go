package dynamo

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Input is the external drive applied during a step. For a radiating panel
// it holds the incident solar flux in W/m².
type Input []float64

type System interface {
	Derive(x State, u Input, t float64) State
	StateDim() int
	InputDim() int
}

type Integrator interface {
	Step(sys System, x State, u Input, t, dt float64) State
}

type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, u Input, t, dt, tol float64) (State, float64, error)
}

// Forcing produces the input at time t.
type Forcing interface {
	At(x State, t float64) Input
}

type Metric interface {
	Name() string
	Observe(x State, u Input, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, u Input, t float64)
}

type Config struct {
	Dt            float64 `yaml:"dt"`       // s
	Duration      float64 `yaml:"duration"` // s
	Adaptive      bool    `yaml:"adaptive"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxDt         float64 `yaml:"max_dt"`
	MinDt         float64 `yaml:"min_dt"`
	ValidateState bool    `yaml:"validate_state"`
}

func DefaultConfig() Config {
	return Config{
		Dt:            10,
		Duration:      5 * 5400,
		Tolerance:     1e-6,
		MaxDt:         120,
		MinDt:         1e-3,
		ValidateState: true,
	}
}

func (c Config) Validate() error {
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, c.Dt)
	}
	if !(c.Duration > 0) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidConfig, c.Duration)
	}
	if c.Adaptive {
		if !(c.Tolerance > 0) {
			return fmt.Errorf("%w: tolerance must be positive for adaptive stepping", ErrInvalidConfig)
		}
		if !(c.MinDt > 0) || c.MaxDt < c.MinDt {
			return fmt.Errorf("%w: step bounds [%g, %g] are invalid", ErrInvalidConfig, c.MinDt, c.MaxDt)
		}
	}
	return nil
}

type Result struct {
	States     []State
	Inputs     []Input
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Series extracts state component i over the run.
func (r *Result) Series(i int) []float64 {
	out := make([]float64, len(r.States))
	for k, s := range r.States {
		if i < len(s) {
			out[k] = s[i]
		}
	}
	return out
}

// Final returns the last recorded state, or nil for an empty result.
func (r *Result) Final() State {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}
