package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/san-kum/radsim/internal/analysis"
	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/config"
	"github.com/spf13/cobra"
)

func listMaterials(cmd *cobra.Command, args []string) error {
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}
	fmt.Println(materialTable(materials))
	return nil
}

func materialTable(materials *catalog.Materials) string {
	styles := newStyles()
	cells := make([][]string, 0, materials.Len())
	for _, e := range materials.Entries() {
		cells = append(cells, []string{
			e.Name,
			fmt.Sprintf("%.2f", e.EmissivityIR),
			fmt.Sprintf("%.2f", e.AbsorptivitySolar),
			formatRatio(e.Ratio()),
			fmt.Sprintf("%+.3f", e.Rate.DeltaAlphaPerYear),
			fmt.Sprintf("%+.3f", e.Rate.DeltaEpsilonPerYear),
			styles.Badge(analysis.RateMaterial(e.Material)),
		})
	}
	return styles.Table([]string{"Material", "ε_IR", "α_solar", "α/ε", "Δα/yr", "Δε/yr", "Rating"}, cells)
}

func listScenarios(cmd *cobra.Command, args []string) error {
	scenarios := catalog.DefaultScenarios()
	list := scenarios.All()
	if category != "" {
		list = scenarios.ByCategory(category)
		if len(list) == 0 {
			return fmt.Errorf("no scenarios in category %q", category)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFLUX (W/m²)\tCATEGORY")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%.1f\t%s\n", s.Name, s.SolarFlux, s.Category)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSCENARIO\tYEARS\tMATERIALS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		scenario := p.Scenario
		if p.Flux != nil {
			scenario = fmt.Sprintf("%.1f W/m²", *p.Flux)
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\n", name, scenario, p.Years, len(p.Materials))
	}
	return w.Flush()
}

func exportCatalog(cmd *cobra.Command, args []string) error {
	materials, err := cfg.Catalog()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return materials.WriteCSV(out)
}

func importCatalog(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	materials, err := catalog.LoadMaterialsCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Printf("%s: %d materials\n", args[0], materials.Len())
	fmt.Println(materialTable(materials))
	return nil
}
