// Package viz renders radsim results for the terminal.
//
// Tables and rating badges are drawn with lipgloss and colored from a
// [Theme]. Curves (power balance, spectra, sweeps) go through asciigraph.
// Output degrades to plain text when stdout is not a color terminal.
package viz
