package config

import (
	"fmt"
	"os"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/integrators"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/san-kum/radsim/internal/solver"
	"github.com/san-kum/radsim/internal/thermal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario   = "Earth Orbit Average"
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 15
	DefaultLogLevel   = "info"
	DefaultTheme      = "frost"
)

var DefaultMaterialSet = []string{
	"White Paint (Z93-type)",
	"SpaceX Starship Tile (black coating)",
	"Ideal Radiator",
}

type Config struct {
	Scenario        string           `yaml:"scenario"`
	Flux            *float64         `yaml:"flux,omitempty"`
	Materials       []string         `yaml:"materials"`
	Years           float64          `yaml:"years"`
	Solver          solver.Config    `yaml:"solver"`
	Plot            PlotConfig       `yaml:"plot"`
	CustomMaterials []CustomMaterial `yaml:"custom_materials,omitempty"`
	Transient       TransientConfig  `yaml:"transient"`
	Log             LogConfig        `yaml:"log"`
}

type PlotConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TMin   float64 `yaml:"t_min"`
	TMax   float64 `yaml:"t_max"`
	Points int     `yaml:"points"`
	Theme  string  `yaml:"theme"`
}

type CustomMaterial struct {
	catalog.Material        `yaml:",inline"`
	catalog.DegradationRate `yaml:",inline"`
}

// TransientConfig drives the time-domain panel simulation. An OrbitPeriod of
// zero means constant flux.
type TransientConfig struct {
	HeatCapacity    float64              `yaml:"heat_capacity"` // J/(m²·K)
	InitialTemp     float64              `yaml:"initial_temp"`  // K
	Integrator      string               `yaml:"integrator"`
	OrbitPeriod     float64              `yaml:"orbit_period"` // s
	EclipseFraction float64              `yaml:"eclipse_fraction"`
	BandMin         float64              `yaml:"band_min"` // K
	BandMax         float64              `yaml:"band_max"` // K
	Run             dynamo.Config        `yaml:"run"`
	Heater          thermal.HeaterConfig `yaml:"heater"`
}

func DefaultTransientConfig() TransientConfig {
	return TransientConfig{
		HeatCapacity:    2430,
		InitialTemp:     293.15,
		Integrator:      "rk4",
		OrbitPeriod:     5400,
		EclipseFraction: 0.35,
		BandMin:         233.15,
		BandMax:         333.15,
		Run:             dynamo.DefaultConfig(),
		Heater:          thermal.DefaultHeaterConfig(),
	}
}

func (t TransientConfig) Validate() error {
	if !(t.HeatCapacity > 0) {
		return fmt.Errorf("%w: heat_capacity must be > 0, got %g", physics.ErrInvalidArgument, t.HeatCapacity)
	}
	if err := physics.CheckNonNegative("initial_temp", t.InitialTemp); err != nil {
		return err
	}
	if _, err := integrators.New(t.Integrator); err != nil {
		return fmt.Errorf("%w: %w", physics.ErrInvalidArgument, err)
	}
	if err := physics.CheckNonNegative("orbit_period", t.OrbitPeriod); err != nil {
		return err
	}
	if err := physics.CheckFraction("eclipse_fraction", t.EclipseFraction); err != nil {
		return err
	}
	if t.BandMax < t.BandMin {
		return fmt.Errorf("%w: band [%g, %g] is empty", physics.ErrInvalidArgument, t.BandMin, t.BandMax)
	}
	if err := t.Heater.Validate(); err != nil {
		return fmt.Errorf("heater: %w", err)
	}
	if err := t.Run.Validate(); err != nil {
		return fmt.Errorf("%w: %w", physics.ErrInvalidArgument, err)
	}
	return nil
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func DefaultConfig() *Config {
	materials := make([]string, len(DefaultMaterialSet))
	copy(materials, DefaultMaterialSet)
	return &Config{
		Scenario:  DefaultScenario,
		Materials: materials,
		Solver:    solver.DefaultConfig(),
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
			TMin:   150,
			TMax:   700,
			Points: 500,
			Theme:  DefaultTheme,
		},
		Transient: DefaultTransientConfig(),
		Log:       LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Solver.Validate(); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	if len(c.Materials) == 0 {
		return fmt.Errorf("%w: no materials selected", physics.ErrInvalidArgument)
	}
	if err := physics.CheckNonNegative("years", c.Years); err != nil {
		return err
	}
	if c.Flux != nil {
		if err := physics.CheckNonNegative("flux", *c.Flux); err != nil {
			return err
		}
	}
	if c.Plot.TMin < 0 || c.Plot.TMax <= c.Plot.TMin {
		return fmt.Errorf("%w: plot range [%g, %g] is empty", physics.ErrInvalidArgument, c.Plot.TMin, c.Plot.TMax)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 || c.Plot.Points < 2 {
		return fmt.Errorf("%w: plot size must be positive", physics.ErrInvalidArgument)
	}
	if err := c.Transient.Validate(); err != nil {
		return fmt.Errorf("transient: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Catalog returns the default material catalog extended with any custom
// materials from the config.
func (c *Config) Catalog() (*catalog.Materials, error) {
	base := catalog.DefaultMaterials()
	if len(c.CustomMaterials) == 0 {
		return base, nil
	}
	extra := make([]catalog.MaterialEntry, 0, len(c.CustomMaterials))
	for _, cm := range c.CustomMaterials {
		extra = append(extra, catalog.MaterialEntry{Material: cm.Material, Rate: cm.DegradationRate})
	}
	return base.With(extra...)
}

// SolarFlux resolves the configured flux: an explicit value wins over the
// named scenario.
func (c *Config) SolarFlux(scenarios *catalog.Scenarios) (float64, string, error) {
	if c.Flux != nil {
		return *c.Flux, "custom", nil
	}
	s, err := scenarios.Lookup(c.Scenario)
	if err != nil {
		return 0, "", err
	}
	return s.SolarFlux, s.Name, nil
}
