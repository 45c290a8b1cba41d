// Package metrics holds dynamo.Metric implementations for panel temperature
// histories. State component 0 is the temperature in K.
package metrics

import (
	"math"

	"github.com/san-kum/radsim/internal/dynamo"
)

type Extreme struct {
	name  string
	max   bool
	value float64
	seen  bool
}

func NewMinTemperature() *Extreme { return &Extreme{name: "t_min"} }
func NewMaxTemperature() *Extreme { return &Extreme{name: "t_max", max: true} }

func (e *Extreme) Name() string { return e.name }

func (e *Extreme) Observe(x dynamo.State, u dynamo.Input, t float64) {
	if len(x) == 0 {
		return
	}
	switch {
	case !e.seen:
		e.value = x[0]
	case e.max:
		e.value = math.Max(e.value, x[0])
	default:
		e.value = math.Min(e.value, x[0])
	}
	e.seen = true
}

func (e *Extreme) Value() float64 { return e.value }

func (e *Extreme) Reset() {
	e.value = 0
	e.seen = false
}

// MeanTemperature is the time-weighted mean, integrated with the trapezoidal
// rule so adaptive steps do not bias it.
type MeanTemperature struct {
	acc trapezoid
}

func NewMeanTemperature() *MeanTemperature { return &MeanTemperature{} }

func (m *MeanTemperature) Name() string { return "t_mean" }

func (m *MeanTemperature) Observe(x dynamo.State, u dynamo.Input, t float64) {
	if len(x) > 0 {
		m.acc.add(t, x[0])
	}
}

func (m *MeanTemperature) Value() float64 {
	if m.acc.span() <= 0 {
		return m.acc.lastY
	}
	return m.acc.area / m.acc.span()
}

func (m *MeanTemperature) Reset() { m.acc = trapezoid{} }
