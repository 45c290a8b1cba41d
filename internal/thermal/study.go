package thermal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/integrators"
	"github.com/san-kum/radsim/internal/metrics"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/san-kum/radsim/internal/sim"
)

// Study runs several panels under the same forcing and start temperature.
type Study struct {
	Forcing     dynamo.Forcing
	Integrator  string
	InitialTemp float64 // K
	Run         dynamo.Config
	BandMin     float64 // K
	BandMax     float64 // K
	Heater      HeaterConfig
	Logger      *slog.Logger
}

// Simulate runs one simulation per panel concurrently. Results are in panel
// order and carry the t_min, t_max, t_mean, in_band, emitted_energy,
// absorbed_energy and heater_energy metrics. Each panel gets its own heater
// controller.
func (s Study) Simulate(ctx context.Context, panels ...Panel) ([]*dynamo.Result, error) {
	if err := physics.CheckNonNegative("initial_temp", s.InitialTemp); err != nil {
		return nil, err
	}
	if err := s.Heater.Validate(); err != nil {
		return nil, err
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jobs := make([]sim.Job, 0, len(panels))
	for _, p := range panels {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Material.Name, err)
		}
		integ, err := integrators.New(s.Integrator)
		if err != nil {
			return nil, err
		}

		forcing := s.Forcing
		if s.Heater.Enabled() {
			forcing = Heated{Base: s.Forcing, Controller: s.Heater.NewController()}
		}

		sm := sim.New(p, integ, forcing)
		sm.AddMetric(metrics.NewMinTemperature())
		sm.AddMetric(metrics.NewMaxTemperature())
		sm.AddMetric(metrics.NewMeanTemperature())
		sm.AddMetric(metrics.NewInBand(s.BandMin, s.BandMax))
		sm.AddMetric(metrics.NewEmittedEnergy(p.Material.EmissivityIR))
		sm.AddMetric(metrics.NewAbsorbedEnergy(p.Material.AbsorptivitySolar))
		sm.AddMetric(metrics.NewHeaterEnergy())

		jobs = append(jobs, sim.Job{Sim: sm, X0: dynamo.State{s.InitialTemp}, Config: s.Run})
	}

	results, err := sim.RunAll(ctx, jobs)
	if err != nil {
		return results, err
	}

	for i, r := range results {
		logger.Debug("transient run",
			"material", panels[i].Material.Name,
			"integrator", s.Integrator,
			"steps", r.StepsTaken,
			"t_final", r.Final()[0],
		)
	}
	return results, nil
}
