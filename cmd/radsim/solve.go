package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/san-kum/radsim/internal/analysis"
	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/degradation"
	"github.com/san-kum/radsim/internal/exchanger"
	"github.com/san-kum/radsim/internal/export"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/san-kum/radsim/internal/solver"
	"github.com/san-kum/radsim/internal/storage"
	"github.com/spf13/cobra"
)

const defaultAgingHorizon = 10.0

var svgColors = []string{"#00ffff", "#ff4444", "#00ff88", "#ffcc00", "#ff00ff", "#0088ff"}

func resolveFlux() (float64, string, error) {
	return cfg.SolarFlux(catalog.DefaultScenarios())
}

func materialNames(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Materials
}

func formatRatio(r float64) string {
	if math.IsInf(r, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", r)
}

func toRow(m catalog.Material, res solver.Result) storage.Row {
	return storage.Row{
		Material:          m.Name,
		EmissivityIR:      m.EmissivityIR,
		AbsorptivitySolar: m.AbsorptivitySolar,
		Ratio:             m.Ratio(),
		TemperatureK:      res.TemperatureK,
		TemperatureC:      res.Celsius(),
		Iterations:        res.Iterations,
		Converged:         res.Converged,
	}
}

func storeRun(kind, scenario string, flux, years float64, rows []storage.Row) (string, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return "", err
	}
	return st.Save(storage.RunMetadata{
		Kind:        kind,
		Scenario:    scenario,
		SolarFlux:   flux,
		Years:       years,
		AmbientTemp: cfg.Solver.AmbientTemp,
		Tolerance:   cfg.Solver.Tolerance,
		MaxIter:     cfg.Solver.MaxIter,
	}, rows)
}

func runEquilibrium(cmd *cobra.Command, args []string) error {
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}
	names := materialNames(args)

	if cmd.Flags().Changed("custom-e") || cmd.Flags().Changed("custom-a") {
		custom := catalog.MaterialEntry{Material: catalog.Material{
			Name:              "Custom",
			EmissivityIR:      customE,
			AbsorptivitySolar: customA,
		}}
		if materials, err = materials.With(custom); err != nil {
			return err
		}
		names = append(append([]string(nil), names...), custom.Name)
	}

	flux, scenario, err := resolveFlux()
	if err != nil {
		return err
	}

	model := degradation.New(materials)
	s := newSolver()
	styles := newStyles()

	rows := make([]storage.Row, 0, len(names))
	cells := make([][]string, 0, len(names))
	for _, name := range names {
		m, err := model.Aged(name, cfg.Years)
		if err != nil {
			return err
		}
		res, err := s.SolveMaterial(m, flux)
		if err != nil {
			return err
		}
		rows = append(rows, toRow(m, res))
		cells = append(cells, []string{
			m.Name,
			fmt.Sprintf("%.3f", m.EmissivityIR),
			fmt.Sprintf("%.3f", m.AbsorptivitySolar),
			formatRatio(m.Ratio()),
			fmt.Sprintf("%.1f", res.TemperatureK),
			fmt.Sprintf("%.1f", res.Celsius()),
			styles.Badge(analysis.RateMaterial(m)),
		})
	}

	fmt.Printf("scenario: %s (%.1f W/m²)\n", scenario, flux)
	if cfg.Years > 0 {
		fmt.Printf("exposure: %g years\n", cfg.Years)
	}
	fmt.Println(styles.Table([]string{"Material", "ε_IR", "α_solar", "α/ε", "T (K)", "T (°C)", "Rating"}, cells))

	if save {
		runID, err := storeRun("equilibrium", scenario, flux, cfg.Years, rows)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runDegrade(cmd *cobra.Command, args []string) error {
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}
	name := cfg.Materials[0]
	if len(args) == 1 {
		name = args[0]
	}
	horizon := cfg.Years
	if horizon == 0 {
		horizon = defaultAgingHorizon
	}

	flux, scenario, err := resolveFlux()
	if err != nil {
		return err
	}

	points, err := analysis.AgingSweep(newSolver(), degradation.New(materials), name, flux, horizon, degradeSteps)
	if err != nil {
		return err
	}

	styles := newStyles()
	cells := make([][]string, 0, len(points))
	rows := make([]storage.Row, 0, len(points))
	series := make([]float64, 0, len(points))
	for _, p := range points {
		cells = append(cells, []string{
			fmt.Sprintf("%.1f", p.Years),
			fmt.Sprintf("%.3f", p.Material.EmissivityIR),
			fmt.Sprintf("%.3f", p.Material.AbsorptivitySolar),
			formatRatio(p.Material.Ratio()),
			fmt.Sprintf("%.1f", p.TemperatureK),
			styles.Badge(analysis.RateMaterial(p.Material)),
		})
		rows = append(rows, storage.Row{
			Material:          p.Material.Name,
			EmissivityIR:      p.Material.EmissivityIR,
			AbsorptivitySolar: p.Material.AbsorptivitySolar,
			Ratio:             p.Material.Ratio(),
			TemperatureK:      p.TemperatureK,
			TemperatureC:      physics.KelvinToCelsius(p.TemperatureK),
			Converged:         true,
		})
		series = append(series, p.TemperatureK)
	}

	fmt.Printf("material: %s\n", name)
	fmt.Printf("scenario: %s (%.1f W/m²)\n", scenario, flux)
	fmt.Println(styles.Table([]string{"Years", "ε_IR", "α_solar", "α/ε", "T (K)", "Rating"}, cells))
	fmt.Printf("trend: %s\n\n", styles.Sparkline(series, len(series)))
	fmt.Println(plotTemps(series, fmt.Sprintf("T_eq (K) over %g years", horizon)))

	if save {
		runID, err := storeRun("degrade", scenario, flux, horizon, rows)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}
	name := cfg.Materials[0]
	if len(args) == 1 {
		name = args[0]
	}
	m, err := degradation.New(materials).Aged(name, cfg.Years)
	if err != nil {
		return err
	}

	points, err := analysis.FluxSweep(newSolver(), m, 0, maxFlux, sweepSteps)
	if err != nil {
		return err
	}

	fmt.Printf("material: %s\n\n", m.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FLUX (W/m²)\tT (K)\tT (°C)")
	for _, p := range points {
		fmt.Fprintf(w, "%.1f\t%.1f\t%.1f\n", p.Param, p.TemperatureK, physics.KelvinToCelsius(p.TemperatureK))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(plotTemps(analysis.Temperatures(points), fmt.Sprintf("T_eq (K) for flux 0..%g W/m²", maxFlux)))
	return nil
}

func runBalance(cmd *cobra.Command, args []string) error {
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}
	flux, scenario, err := resolveFlux()
	if err != nil {
		return err
	}

	model := degradation.New(materials)
	s := newSolver()
	var curves []export.Series

	fmt.Printf("scenario: %s (%.1f W/m²)\n\n", scenario, flux)
	for i, name := range materialNames(args) {
		m, err := model.Aged(name, cfg.Years)
		if err != nil {
			return err
		}
		b, err := analysis.NewPowerBalance(s, m, flux, cfg.Plot.TMin, cfg.Plot.TMax, cfg.Plot.Points)
		if err != nil {
			return err
		}

		caption := fmt.Sprintf("%s: emitted vs absorbed (W/m²), %g..%g K", m.Name, cfg.Plot.TMin, cfg.Plot.TMax)
		fmt.Println(plotMany([][]float64{b.Emitted, b.AbsorbedLine()}, caption))
		fmt.Printf("absorbed: %.1f W/m²   equilibrium: %.1f K\n\n", b.Absorbed, b.EquilibriumK)

		color := svgColors[i%len(svgColors)]
		curves = append(curves,
			export.Series{X: b.Temps, Y: b.Emitted, Stroke: color},
			export.Series{X: b.Temps, Y: b.AbsorbedLine(), Stroke: color},
		)
	}

	return writeSVG(curves)
}

func runExchanger(cmd *cobra.Command, args []string) error {
	res, err := exchanger.Exchanger{UA: ua}.Solve(
		exchanger.Stream{Capacity: hotCap, InletK: hotIn},
		exchanger.Stream{Capacity: coldCap, InletK: coldIn},
	)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NTU\t%.4f\n", res.NTU)
	fmt.Fprintf(w, "C_r\t%.4f\n", res.CapacityRatio)
	fmt.Fprintf(w, "effectiveness\t%.4f\n", res.Effectiveness)
	fmt.Fprintf(w, "heat rate\t%.1f W\n", res.HeatRate)
	fmt.Fprintf(w, "hot outlet\t%.2f K\n", res.HotOutletK)
	fmt.Fprintf(w, "cold outlet\t%.2f K\n", res.ColdOutletK)
	return w.Flush()
}

func writeSVG(curves []export.Series) error {
	if svgPath == "" {
		return nil
	}
	svg := export.CurveToSVG(curves, 800, 400)
	if svg == "" {
		return fmt.Errorf("nothing to draw")
	}
	if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgPath)
	return nil
}
