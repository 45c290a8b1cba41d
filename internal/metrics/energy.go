package metrics

import (
	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/physics"
)

// trapezoid accumulates ∫y dt over irregular samples.
type trapezoid struct {
	area  float64
	first float64
	lastT float64
	lastY float64
	seen  bool
}

func (tr *trapezoid) add(t, y float64) {
	if tr.seen {
		tr.area += 0.5 * (y + tr.lastY) * (t - tr.lastT)
	} else {
		tr.first = t
		tr.seen = true
	}
	tr.lastT, tr.lastY = t, y
}

func (tr *trapezoid) span() float64 { return tr.lastT - tr.first }

// EmittedEnergy is the radiated energy per unit area over a run, J/m².
type EmittedEnergy struct {
	emissivity float64
	acc        trapezoid
}

func NewEmittedEnergy(emissivity float64) *EmittedEnergy {
	return &EmittedEnergy{emissivity: emissivity}
}

func (e *EmittedEnergy) Name() string { return "emitted_energy" }

func (e *EmittedEnergy) Observe(x dynamo.State, u dynamo.Input, t float64) {
	if len(x) > 0 {
		e.acc.add(t, physics.Graybody(e.emissivity, x[0]))
	}
}

func (e *EmittedEnergy) Value() float64 { return e.acc.area }
func (e *EmittedEnergy) Reset()         { e.acc = trapezoid{} }

// AbsorbedEnergy is the absorbed solar energy per unit area, J/m². The first
// input component is the incident flux.
type AbsorbedEnergy struct {
	absorptivity float64
	acc          trapezoid
}

func NewAbsorbedEnergy(absorptivity float64) *AbsorbedEnergy {
	return &AbsorbedEnergy{absorptivity: absorptivity}
}

func (a *AbsorbedEnergy) Name() string { return "absorbed_energy" }

func (a *AbsorbedEnergy) Observe(x dynamo.State, u dynamo.Input, t float64) {
	flux := 0.0
	if len(u) > 0 {
		flux = u[0]
	}
	a.acc.add(t, a.absorptivity*flux)
}

func (a *AbsorbedEnergy) Value() float64 { return a.acc.area }
func (a *AbsorbedEnergy) Reset()         { a.acc = trapezoid{} }

// HeaterEnergy is the heater energy per unit area, J/m², from the second
// input component.
type HeaterEnergy struct {
	acc trapezoid
}

func NewHeaterEnergy() *HeaterEnergy { return &HeaterEnergy{} }

func (h *HeaterEnergy) Name() string { return "heater_energy" }

func (h *HeaterEnergy) Observe(x dynamo.State, u dynamo.Input, t float64) {
	power := 0.0
	if len(u) > 1 {
		power = u[1]
	}
	h.acc.add(t, power)
}

func (h *HeaterEnergy) Value() float64 { return h.acc.area }
func (h *HeaterEnergy) Reset()         { h.acc = trapezoid{} }
