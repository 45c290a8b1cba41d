package main

import (
	"fmt"

	"github.com/san-kum/radsim/internal/analysis"
	"github.com/spf13/cobra"
)

func runDesign(cmd *cobra.Command, args []string) error {
	flux, scenario, err := resolveFlux()
	if err != nil {
		return err
	}

	d, err := analysis.DesignCoating(cmd.Context(), newSolver(), flux, targetTemp, designSteps)
	if err != nil {
		return err
	}

	styles := newStyles()
	fmt.Printf("scenario: %s (%.1f W/m²)\n", scenario, flux)
	fmt.Printf("target: %.1f K, %d coatings evaluated\n", targetTemp, d.Evaluated)
	fmt.Println(styles.Table(
		[]string{"ε_IR", "α_solar", "α/ε", "T (K)", "ΔT (K)", "Rating"},
		[][]string{{
			fmt.Sprintf("%.3f", d.Material.EmissivityIR),
			fmt.Sprintf("%.3f", d.Material.AbsorptivitySolar),
			formatRatio(d.Material.Ratio()),
			fmt.Sprintf("%.1f", d.TemperatureK),
			fmt.Sprintf("%.2f", d.ErrorK),
			styles.Badge(analysis.RateMaterial(d.Material)),
		}},
	))
	return nil
}
