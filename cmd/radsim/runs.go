package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/radsim/internal/storage"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tSCENARIO\tFLUX\tYEARS\tROWS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t%g\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Scenario,
			run.SolarFlux,
			run.Years,
			run.Rows,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rows, err := st.LoadRows(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)
	fmt.Printf("scenario: %s (%.1f W/m²)\n", meta.Scenario, meta.SolarFlux)
	fmt.Printf("ambient: %g K   tolerance: %g   max iter: %d\n\n", meta.AmbientTemp, meta.Tolerance, meta.MaxIter)

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Material,
			fmt.Sprintf("%.3f", r.EmissivityIR),
			fmt.Sprintf("%.3f", r.AbsorptivitySolar),
			formatRatio(r.Ratio),
			fmt.Sprintf("%.1f", r.TemperatureK),
			fmt.Sprintf("%.1f", r.TemperatureC),
			fmt.Sprintf("%d", r.Iterations),
		})
	}
	fmt.Println(newStyles().Table([]string{"Material", "ε_IR", "α_solar", "α/ε", "T (K)", "T (°C)", "Iter"}, cells))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}
