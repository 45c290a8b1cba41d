package catalog

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// MaterialRow is the CSV layout of a material catalog.
type MaterialRow struct {
	Name                string  `csv:"name"`
	EmissivityIR        float64 `csv:"emissivity_ir"`
	AbsorptivitySolar   float64 `csv:"absorptivity_solar"`
	DeltaAlphaPerYear   float64 `csv:"delta_alpha_per_year"`
	DeltaEpsilonPerYear float64 `csv:"delta_epsilon_per_year"`
}

func (r MaterialRow) entry() MaterialEntry {
	return MaterialEntry{
		Material: Material{
			Name:              r.Name,
			EmissivityIR:      r.EmissivityIR,
			AbsorptivitySolar: r.AbsorptivitySolar,
		},
		Rate: DegradationRate{
			DeltaAlphaPerYear:   r.DeltaAlphaPerYear,
			DeltaEpsilonPerYear: r.DeltaEpsilonPerYear,
		},
	}
}

// LoadMaterialsCSV builds a catalog from CSV rows, keeping row order.
func LoadMaterialsCSV(r io.Reader) (*Materials, error) {
	var rows []*MaterialRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse materials csv: %w", err)
	}

	entries := make([]MaterialEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.entry())
	}
	return NewMaterials(entries...)
}

// WriteCSV writes the catalog in the layout read by LoadMaterialsCSV.
func (c *Materials) WriteCSV(w io.Writer) error {
	rows := make([]*MaterialRow, 0, c.Len())
	for _, e := range c.Entries() {
		rows = append(rows, &MaterialRow{
			Name:                e.Name,
			EmissivityIR:        e.EmissivityIR,
			AbsorptivitySolar:   e.AbsorptivitySolar,
			DeltaAlphaPerYear:   e.Rate.DeltaAlphaPerYear,
			DeltaEpsilonPerYear: e.Rate.DeltaEpsilonPerYear,
		})
	}
	return gocsv.Marshal(rows, w)
}
