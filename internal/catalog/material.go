// Package catalog holds the read-only material and scenario tables.
//
// Catalogs are built once, validated at construction, and never mutated.
// Enumeration returns names in insertion order so callers can populate menus
// deterministically. Custom materials are plain [Material] values built by the
// caller; they are never inserted into an existing catalog.
package catalog

import (
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/physics"
)

type Material struct {
	Name              string  `yaml:"name"`
	EmissivityIR      float64 `yaml:"emissivity_ir"`
	AbsorptivitySolar float64 `yaml:"absorptivity_solar"`
}

// Validate rejects optical properties outside [0,1]. Values are never clamped.
func (m Material) Validate() error {
	if err := physics.CheckFraction("emissivity_ir", m.EmissivityIR); err != nil {
		return fmt.Errorf("material %q: %w", m.Name, err)
	}
	if err := physics.CheckFraction("absorptivity_solar", m.AbsorptivitySolar); err != nil {
		return fmt.Errorf("material %q: %w", m.Name, err)
	}
	return nil
}

// Ratio is α/ε. A non-emitting surface reports +Inf.
func (m Material) Ratio() float64 {
	if m.EmissivityIR == 0 {
		return math.Inf(1)
	}
	return m.AbsorptivitySolar / m.EmissivityIR
}

// DegradationRate is a linear per-year drift of a material's optical
// properties. Absorptivity usually rises (darkening), emissivity usually falls.
type DegradationRate struct {
	DeltaAlphaPerYear   float64 `yaml:"delta_alpha_per_year"`
	DeltaEpsilonPerYear float64 `yaml:"delta_epsilon_per_year"`
}

func (r DegradationRate) Validate() error {
	if math.IsNaN(r.DeltaAlphaPerYear) || math.IsInf(r.DeltaAlphaPerYear, 0) ||
		math.IsNaN(r.DeltaEpsilonPerYear) || math.IsInf(r.DeltaEpsilonPerYear, 0) {
		return fmt.Errorf("%w: degradation rate must be finite", physics.ErrInvalidArgument)
	}
	return nil
}

// MaterialEntry pairs a material with its degradation rate for catalog
// construction.
type MaterialEntry struct {
	Material
	Rate DegradationRate
}

// Materials is an immutable, insertion-ordered material table.
type Materials struct {
	order   []string
	byName  map[string]Material
	byRates map[string]DegradationRate
}

func NewMaterials(entries ...MaterialEntry) (*Materials, error) {
	c := &Materials{
		order:   make([]string, 0, len(entries)),
		byName:  make(map[string]Material, len(entries)),
		byRates: make(map[string]DegradationRate, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: material name is empty", physics.ErrInvalidArgument)
		}
		if _, ok := c.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, e.Name)
		}
		if err := e.Material.Validate(); err != nil {
			return nil, err
		}
		if err := e.Rate.Validate(); err != nil {
			return nil, fmt.Errorf("material %q: %w", e.Name, err)
		}
		c.order = append(c.order, e.Name)
		c.byName[e.Name] = e.Material
		c.byRates[e.Name] = e.Rate
	}
	return c, nil
}

func (c *Materials) Lookup(name string) (Material, error) {
	m, ok := c.byName[name]
	if !ok {
		return Material{}, fmt.Errorf("%w: material %q", ErrNotFound, name)
	}
	return m, nil
}

func (c *Materials) Rate(name string) (DegradationRate, error) {
	r, ok := c.byRates[name]
	if !ok {
		return DegradationRate{}, fmt.Errorf("%w: degradation rate for %q", ErrNotFound, name)
	}
	return r, nil
}

// Names returns material names in insertion order. The slice is a copy.
func (c *Materials) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

func (c *Materials) All() []Material {
	out := make([]Material, len(c.order))
	for i, name := range c.order {
		out[i] = c.byName[name]
	}
	return out
}

func (c *Materials) Entries() []MaterialEntry {
	out := make([]MaterialEntry, len(c.order))
	for i, name := range c.order {
		out[i] = MaterialEntry{Material: c.byName[name], Rate: c.byRates[name]}
	}
	return out
}

func (c *Materials) Len() int { return len(c.order) }

// With returns a new catalog holding c's entries followed by extra.
func (c *Materials) With(extra ...MaterialEntry) (*Materials, error) {
	return NewMaterials(append(c.Entries(), extra...)...)
}
