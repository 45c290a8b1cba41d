package physics

const (
	Sigma        = 5.670374419e-8 // Stefan–Boltzmann, W/m²K⁴
	Planck       = 6.62607015e-34 // J·s
	SpeedOfLight = 3.0e8          // m/s
	Boltzmann    = 1.380649e-23   // J/K

	// WienB is Wien's displacement constant, m·K.
	WienB = 2.897771955e-3

	AbsoluteZeroCelsius = 273.15
	CosmicBackground    = 3.0    // K
	SolarConstant       = 1366.0 // W/m² at 1 AU

	// MaxExponent is the largest Planck exponent evaluated before the radiance
	// is reported as zero.
	MaxExponent = 700.0
)

// Visible band edges, m.
const (
	VisibleMin = 400e-9
	VisibleMax = 700e-9
)

func KelvinToCelsius(k float64) float64 { return k - AbsoluteZeroCelsius }
func CelsiusToKelvin(c float64) float64 { return c + AbsoluteZeroCelsius }
