package config

import "sort"

func flux(v float64) *float64 { return &v }

var Presets = map[string]*Config{
	"leo-radiator": {
		Scenario:  "LEO Hot Case (albedo + Earth IR)",
		Materials: []string{"White Paint (Z93-type)", "White Paint (AZ93-type)", "Optical Solar Reflector (OSR)"},
	},
	"deep-space": {
		Scenario:  "Deep Space (no sun)",
		Materials: []string{"Ideal Radiator", "Black Paint", "Polished Aluminum"},
	},
	"full-sun": {
		Scenario:  "Full Sun (sun-facing)",
		Materials: []string{"SpaceX Starship Tile (black coating)", "White Paint (Z93-type)", "Polished Aluminum"},
	},
	"solar-storm": {
		Scenario:  "Severe Solar Storm",
		Materials: []string{"Optical Solar Reflector (OSR)", "Black Paint"},
	},
	"aging": {
		Scenario:  "Earth Orbit Average",
		Materials: []string{"White Paint (Z93-type)", "White Paint (AZ93-type)"},
		Years:     15,
	},
	"solar-constant": {
		Flux:      flux(1366),
		Materials: []string{"Ideal Radiator", "Black Paint"},
	},
}

// GetPreset returns a full config built from the named preset on top of the
// defaults, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if p.Scenario != "" {
		cfg.Scenario = p.Scenario
	}
	if p.Flux != nil {
		v := *p.Flux
		cfg.Flux = &v
	}
	if len(p.Materials) > 0 {
		cfg.Materials = append([]string(nil), p.Materials...)
	}
	cfg.Years = p.Years
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
