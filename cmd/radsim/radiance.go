package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/radsim/internal/analysis"
	"github.com/san-kum/radsim/internal/export"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/spf13/cobra"
)

// log10 floor for plotting; radiance below 1 W·sr⁻¹·m⁻³ is drawn as 0
const radianceFloor = 1.0

func runRadiance(cmd *cobra.Command, args []string) error {
	spectra, err := analysis.PlanckSpectra(temps, analysis.DefaultWavelengthMin, analysis.DefaultWavelengthMax, analysis.DefaultSpectrumSize)
	if err != nil {
		return err
	}

	series := make([][]float64, 0, len(spectra))
	curves := make([]export.Series, 0, len(spectra))
	for i, s := range spectra {
		logB := analysis.LogRadiance(s.Radiance, radianceFloor)
		series = append(series, logB)

		nm := make([]float64, len(s.Wavelengths))
		for j, wl := range s.Wavelengths {
			nm[j] = wl * 1e9
		}
		curves = append(curves, export.Series{X: nm, Y: logB, Stroke: svgColors[i%len(svgColors)]})
	}

	fmt.Println(plotMany(series, "log10 spectral radiance, 1 nm to 3 µm (log λ axis)"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T (K)\tWIEN PEAK (nm)\tSAMPLED PEAK (nm)\tVISIBLE\tIN RANGE")
	for _, s := range spectra {
		visible, err := analysis.BandFraction(s.TemperatureK, physics.VisibleMin, physics.VisibleMax, 200)
		if err != nil {
			return err
		}
		inRange, err := analysis.BandFraction(s.TemperatureK, analysis.DefaultWavelengthMin, analysis.DefaultWavelengthMax, analysis.DefaultSpectrumSize)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.0f\t%.0f\t%.0f\t%.2f%%\t%.2f%%\n",
			s.TemperatureK,
			s.PeakWavelength*1e9,
			s.Wavelengths[s.MaxIdx()]*1e9,
			visible*100,
			inRange*100,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return writeSVG(curves)
}
