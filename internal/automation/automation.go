// Package automation runs scripted batches of equilibrium cases from a YAML
// file.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/radsim/internal/catalog"
	"github.com/san-kum/radsim/internal/degradation"
	"github.com/san-kum/radsim/internal/physics"
	"github.com/san-kum/radsim/internal/solver"
	"github.com/san-kum/radsim/internal/storage"
	"gopkg.in/yaml.v3"
)

// Batch is a named list of cases.
type Batch struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

// Case solves a set of materials under one flux. Flux, when set, wins over
// Scenario.
type Case struct {
	Name      string   `yaml:"name"`
	Scenario  string   `yaml:"scenario"`
	Flux      *float64 `yaml:"flux,omitempty"`
	Materials []string `yaml:"materials"`
	Years     float64  `yaml:"years"`
	SaveAs    string   `yaml:"save_as"`
}

func (c Case) Validate() error {
	if c.Scenario == "" && c.Flux == nil {
		return fmt.Errorf("%w: case %q needs a scenario or a flux", physics.ErrInvalidArgument, c.Name)
	}
	if len(c.Materials) == 0 {
		return fmt.Errorf("%w: case %q has no materials", physics.ErrInvalidArgument, c.Name)
	}
	if c.SaveAs != "" {
		if err := storage.CheckName(c.SaveAs); err != nil {
			return fmt.Errorf("case %q save_as: %w", c.Name, err)
		}
	}
	if c.Flux != nil {
		if err := physics.CheckNonNegative("flux", *c.Flux); err != nil {
			return err
		}
	}
	return physics.CheckNonNegative("years", c.Years)
}

// LoadBatch reads and validates a batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(b.Cases) == 0 {
		return nil, fmt.Errorf("%w: %s has no cases", physics.ErrInvalidArgument, path)
	}
	for i, c := range b.Cases {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
	}
	return &b, nil
}

// Outcome is one solved material within a case.
type Outcome struct {
	Material catalog.Material
	Result   solver.Result
}

type CaseResult struct {
	Case      Case
	Scenario  string
	SolarFlux float64
	Outcomes  []Outcome
}

// Runner solves batches against fixed catalogs.
type Runner struct {
	Solver    *solver.Solver
	Materials *catalog.Materials
	Scenarios *catalog.Scenarios
	Logger    *slog.Logger
}

// Run executes the cases in order and stops at the first failure, returning
// the cases completed so far.
func (r Runner) Run(ctx context.Context, b *Batch) ([]CaseResult, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	model := degradation.New(r.Materials)
	results := make([]CaseResult, 0, len(b.Cases))

	for i, c := range b.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Info("running case", "step", i+1, "of", len(b.Cases), "name", c.Name)

		cr, err := r.runCase(model, c)
		if err != nil {
			return results, fmt.Errorf("case %d (%s): %w", i+1, c.Name, err)
		}
		results = append(results, cr)
	}
	return results, nil
}

func (r Runner) runCase(model *degradation.Model, c Case) (CaseResult, error) {
	cr := CaseResult{Case: c, Scenario: "custom"}
	if c.Flux != nil {
		cr.SolarFlux = *c.Flux
	} else {
		s, err := r.Scenarios.Lookup(c.Scenario)
		if err != nil {
			return cr, err
		}
		cr.Scenario, cr.SolarFlux = s.Name, s.SolarFlux
	}

	for _, name := range c.Materials {
		m, err := model.Aged(name, c.Years)
		if err != nil {
			return cr, err
		}
		res, err := r.Solver.SolveMaterial(m, cr.SolarFlux)
		if err != nil {
			return cr, err
		}
		cr.Outcomes = append(cr.Outcomes, Outcome{Material: m, Result: res})
	}
	return cr, nil
}
