// Package solver finds the radiative equilibrium temperature of a graybody
// surface.
//
// The residual
//
//	Balance(T) = εσT⁴ − (α·F + εσT_amb⁴)
//
// is strictly increasing in T for ε > 0, so exactly one non-negative root
// exists whenever the absorbed side is non-negative. [Solver] finds it with a
// Newton iteration seeded at a fixed guess and safeguarded by a bisection
// bracket, so every step stays inside an interval known to contain the root.
//
// Iteration stops once the Newton step is below Tolerance·T or the residual
// is below Tolerance times the absorbed power, so accuracy stays relative
// even for roots far below 1 K.
//
// Zero emissivity is rejected with [ErrDegenerate]. Hitting the iteration cap
// returns the best estimate together with a [*ConvergenceError].
package solver

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/physics"
)

type Config struct {
	InitialGuess float64 `yaml:"initial_guess"` // K
	Tolerance    float64 `yaml:"tolerance"`     // relative to T and to the absorbed power
	MaxIter      int     `yaml:"max_iter"`
	AmbientTemp  float64 `yaml:"ambient_temp"` // K
}

func DefaultConfig() Config {
	return Config{
		InitialGuess: 300.0,
		Tolerance:    1e-9,
		MaxIter:      100,
		AmbientTemp:  physics.CosmicBackground,
	}
}

func (c Config) Validate() error {
	if !(c.InitialGuess > 0) || math.IsInf(c.InitialGuess, 0) {
		return fmt.Errorf("%w: initial guess must be > 0, got %g", physics.ErrInvalidArgument, c.InitialGuess)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be > 0, got %g", physics.ErrInvalidArgument, c.Tolerance)
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: max iterations must be >= 1, got %d", physics.ErrInvalidArgument, c.MaxIter)
	}
	return physics.CheckNonNegative("ambient_temp", c.AmbientTemp)
}

// Problem is one equilibrium query.
type Problem struct {
	EmissivityIR      float64
	AbsorptivitySolar float64
	SolarFlux         float64 // W/m²
	AmbientTemp       float64 // K
}

func (p Problem) Validate() error {
	if err := physics.CheckFraction("emissivity_ir", p.EmissivityIR); err != nil {
		return err
	}
	if err := physics.CheckFraction("absorptivity_solar", p.AbsorptivitySolar); err != nil {
		return err
	}
	if err := physics.CheckNonNegative("solar_flux", p.SolarFlux); err != nil {
		return err
	}
	if err := physics.CheckNonNegative("ambient_temp", p.AmbientTemp); err != nil {
		return err
	}
	if p.EmissivityIR == 0 {
		return ErrDegenerate
	}
	return nil
}

// Absorbed is the temperature-independent side of the balance, W/m².
func (p Problem) Absorbed() float64 {
	return p.AbsorptivitySolar*p.SolarFlux + physics.Graybody(p.EmissivityIR, p.AmbientTemp)
}

// Balance is emitted minus absorbed power at temperature t.
func Balance(p Problem, t float64) float64 {
	return physics.Graybody(p.EmissivityIR, t) - p.Absorbed()
}

type Result struct {
	TemperatureK float64
	Residual     float64
	Iterations   int
	Converged    bool
}

func (r Result) Celsius() float64 { return physics.KelvinToCelsius(r.TemperatureK) }

type Solver struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg, logger: slog.Default()}
}

func (s *Solver) WithLogger(l *slog.Logger) *Solver {
	if l != nil {
		s.logger = l
	}
	return s
}

func (s *Solver) Config() Config { return s.cfg }

// Solve finds T with Balance(p, T) = 0.
func (s *Solver) Solve(p Problem) (Result, error) {
	if err := s.cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	absorbed := p.Absorbed()
	if absorbed == 0 {
		return Result{Converged: true}, nil
	}

	f := func(t float64) float64 { return physics.Graybody(p.EmissivityIR, t) - absorbed }

	// bracket [lo, hi] with f(lo) < 0 < f(hi)
	lo, hi := 0.0, s.cfg.InitialGuess
	for f(hi) <= 0 {
		lo = hi
		hi *= 2
	}

	t := s.cfg.InitialGuess
	res := Result{}
	for i := 1; i <= s.cfg.MaxIter; i++ {
		ft := f(t)
		res = Result{TemperatureK: t, Residual: ft, Iterations: i}
		if ft == 0 {
			res.Converged = true
			break
		}
		if ft < 0 {
			lo = t
		} else {
			hi = t
		}

		next := math.NaN()
		if slope := physics.GraybodySlope(p.EmissivityIR, t); slope > 0 {
			next = t - ft/slope
		}
		if !(next >= lo && next <= hi) {
			next = 0.5 * (lo + hi)
		}

		step := math.Abs(next - t)
		t = next
		if step <= s.cfg.Tolerance*t || math.Abs(f(t)) <= s.cfg.Tolerance*absorbed {
			res = Result{TemperatureK: t, Residual: f(t), Iterations: i, Converged: true}
			break
		}
	}

	s.logger.Debug("equilibrium solve",
		"emissivity_ir", p.EmissivityIR,
		"absorptivity_solar", p.AbsorptivitySolar,
		"solar_flux", p.SolarFlux,
		"ambient_temp", p.AmbientTemp,
		"temperature_k", res.TemperatureK,
		"iterations", res.Iterations,
		"converged", res.Converged,
	)

	if !res.Converged {
		return res, &ConvergenceError{
			Iterations:  res.Iterations,
			Temperature: res.TemperatureK,
			Residual:    res.Residual,
		}
	}
	return res, nil
}

// SolveMaterial solves for a material at the solver's configured ambient.
func (s *Solver) SolveMaterial(m catalog.Material, solarFlux float64) (Result, error) {
	res, err := s.Solve(Problem{
		EmissivityIR:      m.EmissivityIR,
		AbsorptivitySolar: m.AbsorptivitySolar,
		SolarFlux:         solarFlux,
		AmbientTemp:       s.cfg.AmbientTemp,
	})
	if err != nil {
		return res, fmt.Errorf("material %q: %w", m.Name, err)
	}
	return res, nil
}

// EquilibriumTemperature solves with the default configuration, including
// the 3 K cosmic background.
func EquilibriumTemperature(emissivityIR, absorptivitySolar, solarFlux float64) (float64, error) {
	return EquilibriumTemperatureAt(emissivityIR, absorptivitySolar, solarFlux, physics.CosmicBackground)
}

func EquilibriumTemperatureAt(emissivityIR, absorptivitySolar, solarFlux, ambientTemp float64) (float64, error) {
	res, err := New(DefaultConfig()).Solve(Problem{
		EmissivityIR:      emissivityIR,
		AbsorptivitySolar: absorptivitySolar,
		SolarFlux:         solarFlux,
		AmbientTemp:       ambientTemp,
	})
	return res.TemperatureK, err
}
