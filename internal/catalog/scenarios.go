package catalog

import (
	"fmt"

	"github.com/san-kum/radsim/internal/physics"
)

// Scenario is a named incident solar flux, W/m².
type Scenario struct {
	Name      string
	SolarFlux float64
	Category  string
}

type Scenarios struct {
	order  []string
	byName map[string]Scenario
}

func NewScenarios(entries ...Scenario) (*Scenarios, error) {
	c := &Scenarios{
		order:  make([]string, 0, len(entries)),
		byName: make(map[string]Scenario, len(entries)),
	}
	for _, s := range entries {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scenario name is empty", physics.ErrInvalidArgument)
		}
		if _, ok := c.byName[s.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, s.Name)
		}
		if err := physics.CheckNonNegative("solar_flux", s.SolarFlux); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		c.order = append(c.order, s.Name)
		c.byName[s.Name] = s
	}
	return c, nil
}

func (c *Scenarios) Lookup(name string) (Scenario, error) {
	s, ok := c.byName[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: scenario %q", ErrNotFound, name)
	}
	return s, nil
}

func (c *Scenarios) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

func (c *Scenarios) All() []Scenario {
	out := make([]Scenario, len(c.order))
	for i, name := range c.order {
		out[i] = c.byName[name]
	}
	return out
}

// ByCategory returns the scenarios of one category in insertion order.
func (c *Scenarios) ByCategory(category string) []Scenario {
	var out []Scenario
	for _, name := range c.order {
		if s := c.byName[name]; s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

func (c *Scenarios) Len() int { return len(c.order) }
