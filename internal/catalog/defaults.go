package catalog

var defaultMaterials = []MaterialEntry{
	{
		Material: Material{Name: "SpaceX Starship Tile (black coating)", EmissivityIR: 0.90, AbsorptivitySolar: 0.85},
		Rate:     DegradationRate{DeltaAlphaPerYear: 0.005, DeltaEpsilonPerYear: -0.002},
	},
	{
		Material: Material{Name: "White Paint (Z93-type)", EmissivityIR: 0.90, AbsorptivitySolar: 0.18},
		Rate:     DegradationRate{DeltaAlphaPerYear: 0.015, DeltaEpsilonPerYear: -0.005},
	},
	{
		Material: Material{Name: "White Paint (AZ93-type)", EmissivityIR: 0.88, AbsorptivitySolar: 0.12},
		Rate:     DegradationRate{DeltaAlphaPerYear: 0.008, DeltaEpsilonPerYear: -0.003},
	},
	{
		// quartz/silver, very stable
		Material: Material{Name: "Optical Solar Reflector (OSR)", EmissivityIR: 0.85, AbsorptivitySolar: 0.10},
		Rate:     DegradationRate{DeltaAlphaPerYear: 0.003, DeltaEpsilonPerYear: -0.001},
	},
	{
		// oxide growth lowers emissivity
		Material: Material{Name: "Polished Aluminum", EmissivityIR: 0.05, AbsorptivitySolar: 0.12},
		Rate:     DegradationRate{DeltaAlphaPerYear: 0.010, DeltaEpsilonPerYear: -0.010},
	},
	{
		Material: Material{Name: "Ideal Radiator", EmissivityIR: 1.00, AbsorptivitySolar: 0.00},
	},
	{
		Material: Material{Name: "Black Paint", EmissivityIR: 0.95, AbsorptivitySolar: 0.95},
		Rate:     DegradationRate{DeltaAlphaPerYear: 0.002, DeltaEpsilonPerYear: -0.008},
	},
}

const (
	CategoryOrbit        = "orbit"
	CategorySpaceWeather = "space-weather"
)

var defaultScenarios = []Scenario{
	{Name: "Deep Space (no sun)", SolarFlux: 0, Category: CategoryOrbit},
	{Name: "Earth Orbit Average", SolarFlux: 1366.0 / 4, Category: CategoryOrbit},
	{Name: "Full Sun (sun-facing)", SolarFlux: 1366, Category: CategoryOrbit},
	{Name: "LEO Hot Case (albedo + Earth IR)", SolarFlux: 800, Category: CategoryOrbit},
	{Name: "Calm Solar Conditions", SolarFlux: 1361, Category: CategorySpaceWeather},
	{Name: "Moderate Solar Storm", SolarFlux: 1500, Category: CategorySpaceWeather},
	{Name: "Severe Solar Storm", SolarFlux: 1800, Category: CategorySpaceWeather},
}

// DefaultMaterials returns the built-in material catalog. It panics only if
// the static table itself is malformed.
func DefaultMaterials() *Materials {
	c, err := NewMaterials(defaultMaterials...)
	if err != nil {
		panic(err)
	}
	return c
}

func DefaultScenarios() *Scenarios {
	c, err := NewScenarios(defaultScenarios...)
	if err != nil {
		panic(err)
	}
	return c
}
