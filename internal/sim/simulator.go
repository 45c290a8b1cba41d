// Package sim drives a dynamo.System through time with a chosen integrator,
// recording the trajectory and per-step metrics.
package sim

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/radsim/internal/dynamo"
)

type Simulator struct {
	sys        dynamo.System
	integrator dynamo.Integrator
	forcing    dynamo.Forcing
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
}

// New builds a simulator. A nil forcing applies a zero input.
func New(sys dynamo.System, integrator dynamo.Integrator, forcing dynamo.Forcing) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		forcing:    forcing,
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) input(x dynamo.State, t float64) dynamo.Input {
	if s.forcing == nil {
		return make(dynamo.Input, s.sys.InputDim())
	}
	return s.forcing.At(x, t)
}

func (s *Simulator) observe(x dynamo.State, u dynamo.Input, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, u, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, u, t)
	}
}

// maxPrealloc caps the initial trajectory capacity; longer runs grow by append.
const maxPrealloc = 1 << 16

// Run integrates from x0 over cfg.Duration. The last step is shortened to
// land on Duration exactly. Metrics see every recorded state, the initial
// one included. On cancellation or an invalid state the partial result is
// returned with the error.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg dynamo.Config) (*dynamo.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.StateDim() {
		return nil, dynamo.ErrDimensionMismatch
	}

	steps := maxPrealloc
	if n := math.Ceil(cfg.Duration / cfg.Dt); n < maxPrealloc {
		steps = int(n)
	}
	result := &dynamo.Result{
		States:  make([]dynamo.State, 0, steps+1),
		Inputs:  make([]dynamo.Input, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt
	end := cfg.Duration * (1 - 1e-12)

	u := s.input(x, t)
	s.record(result, x, u, t)

	for t < end {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		h := math.Min(dt, cfg.Duration-t)

		var newX dynamo.State
		if cfg.Adaptive {
			var err error
			newX, h, dt, err = s.adaptiveStep(x, u, t, h, cfg)
			if err != nil {
				s.collect(result)
				return result, &dynamo.SimulationError{Step: result.StepsTaken, Time: t, State: x, Wrapped: err}
			}
		} else {
			newX = s.integrator.Step(s.sys, x, u, t, h)
		}

		if cfg.ValidateState && !newX.IsValid() {
			s.collect(result)
			return result, &dynamo.SimulationError{Step: result.StepsTaken, Time: t, State: x, Wrapped: dynamo.ErrInvalidState}
		}

		x = newX
		t += h
		result.StepsTaken++

		u = s.input(x, t)
		s.record(result, x, u, t)
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) record(r *dynamo.Result, x dynamo.State, u dynamo.Input, t float64) {
	r.States = append(r.States, x.Clone())
	r.Inputs = append(r.Inputs, u)
	r.Times = append(r.Times, t)
	s.observe(x, u, t)
}

func (s *Simulator) collect(r *dynamo.Result) {
	for _, m := range s.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
}

// adaptiveStep takes one accepted step starting with size h. It returns the
// new state, the step actually taken and the suggested next step.
func (s *Simulator) adaptiveStep(x dynamo.State, u dynamo.Input, t, h float64, cfg dynamo.Config) (dynamo.State, float64, float64, error) {
	if adaptive, ok := s.integrator.(dynamo.AdaptiveIntegrator); ok {
		for {
			newX, next, err := adaptive.StepAdaptive(s.sys, x, u, t, h, cfg.Tolerance)
			next = math.Min(next, cfg.MaxDt)
			if err == nil {
				return newX, h, math.Max(next, cfg.MinDt), nil
			}
			if !errors.Is(err, dynamo.ErrStepRejected) {
				return nil, h, next, err
			}
			if next < cfg.MinDt {
				return nil, h, next, dynamo.ErrStepTooSmall
			}
			h = next
		}
	}

	// step doubling for fixed-step integrators
	for {
		x1 := s.integrator.Step(s.sys, x, u, t, h)
		xHalf := s.integrator.Step(s.sys, x, u, t, h/2)
		x2 := s.integrator.Step(s.sys, xHalf, u, t+h/2, h/2)

		err := x1.Sub(x2).Norm() / math.Max(1, x2.Norm())
		if err > cfg.Tolerance {
			if h/2 < cfg.MinDt {
				return nil, h, h, dynamo.ErrStepTooSmall
			}
			h /= 2
			continue
		}

		next := h
		if err < cfg.Tolerance/10 {
			next = math.Min(h*2, cfg.MaxDt)
		}
		return x2, h, next, nil
	}
}
