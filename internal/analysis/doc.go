// Package analysis builds plot-ready data sets on top of the numeric core.
//
//   - [FluxSweep]: equilibrium temperature against incident flux
//   - [AgingSweep]: equilibrium temperature as a coating degrades
//   - [NewPowerBalance]: radiated vs absorbed power over a temperature grid
//   - [PlanckSpectra]: blackbody curves on a shared log wavelength grid
//   - [Rate]: α/ε classification of a surface
//   - [DesignCoating]: grid search for a coating that hits a target temperature
//
// # Equilibrium from the balance curve
//
// The emitted curve of a [PowerBalance] crosses its absorbed line at the
// equilibrium temperature:
//
//	b, _ := analysis.NewPowerBalance(s, m, 1366, 150, 700, 500)
//	fmt.Println(b.EquilibriumK)
package analysis
