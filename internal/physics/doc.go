// Package physics provides closed-form radiative transfer functions.
//
// The package covers the two laws the rest of radsim is built on:
//
//   - [SpectralRadiance]: Planck's law for a single wavelength/temperature pair
//   - [EmittedPower]: Stefan–Boltzmann emission of a graybody surface
//
// Both have vectorised forms ([RadianceCurve], [PowerCurve]) for plotting.
//
// # Overflow
//
// Planck's exponent hc/(λkT) overflows float64 exp past ~709. Any exponent
// above [MaxExponent] is treated as the asymptotic limit and yields exactly 0:
//
//	b, _ := physics.SpectralRadiance(1e-9, 300) // 0, not NaN
//
// Non-positive wavelengths or temperatures are rejected with
// [ErrInvalidArgument] rather than returning NaN or Inf.
package physics
