package main

import (
	"fmt"

	"github.com/san-kum/radsim/internal/degradation"
	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/thermal"
	"github.com/spf13/cobra"
)

// downsample keeps at most n evenly spaced points so long runs fit the chart.
func downsample(values []float64, n int) []float64 {
	if n < 2 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}

func runTransient(cmd *cobra.Command, args []string) error {
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}
	flux, scenario, err := resolveFlux()
	if err != nil {
		return err
	}

	tc := cfg.Transient
	var forcing dynamo.Forcing = thermal.ConstantFlux(flux)
	if tc.OrbitPeriod > 0 {
		orbit := thermal.OrbitFlux{Flux: flux, Period: tc.OrbitPeriod, EclipseFraction: tc.EclipseFraction}
		if err := orbit.Validate(); err != nil {
			return err
		}
		forcing = orbit
	}

	model := degradation.New(materials)
	names := materialNames(args)
	panels := make([]thermal.Panel, 0, len(names))
	for _, name := range names {
		m, err := model.Aged(name, cfg.Years)
		if err != nil {
			return err
		}
		panels = append(panels, thermal.Panel{
			Material:     m,
			HeatCapacity: tc.HeatCapacity,
			AmbientTemp:  cfg.Solver.AmbientTemp,
		})
	}

	study := thermal.Study{
		Forcing:     forcing,
		Integrator:  tc.Integrator,
		InitialTemp: tc.InitialTemp,
		Run:         tc.Run,
		BandMin:     tc.BandMin,
		BandMax:     tc.BandMax,
		Heater:      tc.Heater,
	}
	results, err := study.Simulate(cmd.Context(), panels...)
	if err != nil {
		return err
	}

	styles := newStyles()
	cells := make([][]string, 0, len(results))
	series := make([][]float64, 0, len(results))
	for i, r := range results {
		m := r.Metrics
		cells = append(cells, []string{
			panels[i].Material.Name,
			fmt.Sprintf("%.1f", m["t_min"]),
			fmt.Sprintf("%.1f", m["t_max"]),
			fmt.Sprintf("%.1f", m["t_mean"]),
			fmt.Sprintf("%.1f", r.Final()[0]),
			fmt.Sprintf("%.0f%%", 100*m["in_band"]),
			fmt.Sprintf("%.3g", m["absorbed_energy"]/1e6),
			fmt.Sprintf("%.3g", m["emitted_energy"]/1e6),
			fmt.Sprintf("%.3g", m["heater_energy"]/1e6),
			fmt.Sprintf("%d", r.StepsTaken),
		})
		series = append(series, downsample(r.Series(0), cfg.Plot.Width*4))
	}

	fmt.Printf("scenario: %s (%.1f W/m²)\n", scenario, flux)
	if orbit, ok := forcing.(thermal.OrbitFlux); ok {
		fmt.Printf("orbit: %.0f s, %.0f%% eclipse, mean flux %.1f W/m²\n",
			orbit.Period, 100*orbit.EclipseFraction, orbit.MeanFlux())
	}
	if tc.Heater.Enabled() {
		fmt.Printf("heater: %s at %.1f K, up to %g W/m²\n", tc.Heater.Mode, tc.Heater.Setpoint, tc.Heater.Power)
	}
	fmt.Printf("panel: C=%g J/(m²·K), T0=%.1f K, %s over %.0f s\n",
		tc.HeatCapacity, tc.InitialTemp, tc.Integrator, tc.Run.Duration)
	fmt.Println(styles.Table([]string{"Material", "T_min", "T_max", "T_mean", "T_end",
		fmt.Sprintf("in %.0f–%.0f K", tc.BandMin, tc.BandMax), "Q_abs (MJ/m²)", "Q_emit (MJ/m²)", "Q_heat (MJ/m²)", "Steps"}, cells))
	fmt.Println(plotMany(series, "temperature (K) over time"))
	return nil
}
