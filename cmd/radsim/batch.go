package main

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/radsim/internal/analysis"
	"github.com/san-kum/radsim/internal/automation"
	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/storage"
	"github.com/spf13/cobra"
)

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := automation.LoadBatch(args[0])
	if err != nil {
		return err
	}
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}

	r := automation.Runner{
		Solver:    newSolver(),
		Materials: materials,
		Scenarios: catalog.DefaultScenarios(),
		Logger:    slog.Default(),
	}
	results, err := r.Run(cmd.Context(), b)
	if err != nil {
		return err
	}

	styles := newStyles()
	if b.Name != "" {
		fmt.Println(styles.Title.Render(b.Name))
	}
	for _, cr := range results {
		rows := make([]storage.Row, 0, len(cr.Outcomes))
		cells := make([][]string, 0, len(cr.Outcomes))
		for _, o := range cr.Outcomes {
			rows = append(rows, toRow(o.Material, o.Result))
			cells = append(cells, []string{
				o.Material.Name,
				formatRatio(o.Material.Ratio()),
				fmt.Sprintf("%.1f", o.Result.TemperatureK),
				fmt.Sprintf("%.1f", o.Result.Celsius()),
				styles.Badge(analysis.RateMaterial(o.Material)),
			})
		}

		fmt.Printf("%s: %s (%.1f W/m²)", cr.Case.Name, cr.Scenario, cr.SolarFlux)
		if cr.Case.Years > 0 {
			fmt.Printf(", %g years", cr.Case.Years)
		}
		fmt.Println()
		fmt.Println(styles.Table([]string{"Material", "α/ε", "T (K)", "T (°C)", "Rating"}, cells))

		if save || cr.Case.SaveAs != "" {
			kind := cr.Case.SaveAs
			if kind == "" {
				kind = "batch"
			}
			runID, err := storeRun(kind, cr.Scenario, cr.SolarFlux, cr.Case.Years, rows)
			if err != nil {
				return err
			}
			fmt.Printf("run id: %s\n", runID)
		}
	}
	return nil
}
