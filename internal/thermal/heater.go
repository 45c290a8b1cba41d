package thermal

import (
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/controllers"
	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/physics"
)

const (
	HeaterOff        = "off"
	HeaterThermostat = "thermostat"
	HeaterPID        = "pid"
)

// HeaterConfig describes a survival heater bonded to the panel.
type HeaterConfig struct {
	Mode       string  `yaml:"mode"`
	Setpoint   float64 `yaml:"setpoint"`   // K
	Power      float64 `yaml:"power"`      // W/m², maximum
	Hysteresis float64 `yaml:"hysteresis"` // K, thermostat only
	Kp         float64 `yaml:"kp"`
	Ki         float64 `yaml:"ki"`
	Kd         float64 `yaml:"kd"`
}

func DefaultHeaterConfig() HeaterConfig {
	return HeaterConfig{
		Mode:       HeaterOff,
		Setpoint:   253.15,
		Power:      400,
		Hysteresis: 10,
		Kp:         50,
		Ki:         0.05,
	}
}

func (h HeaterConfig) Enabled() bool { return h.Mode != "" && h.Mode != HeaterOff }

func (h HeaterConfig) Validate() error {
	switch h.Mode {
	case "", HeaterOff:
		return nil
	case HeaterThermostat, HeaterPID:
	default:
		return fmt.Errorf("%w: unknown heater mode %q", physics.ErrInvalidArgument, h.Mode)
	}
	if err := physics.CheckNonNegative("setpoint", h.Setpoint); err != nil {
		return err
	}
	if err := physics.CheckNonNegative("power", h.Power); err != nil {
		return err
	}
	if err := physics.CheckNonNegative("hysteresis", h.Hysteresis); err != nil {
		return err
	}
	for _, g := range []float64{h.Kp, h.Ki, h.Kd} {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("%w: heater gains must be finite", physics.ErrInvalidArgument)
		}
	}
	return nil
}

// NewController builds a fresh controller, or nil when the heater is off.
func (h HeaterConfig) NewController() controllers.Controller {
	switch h.Mode {
	case HeaterThermostat:
		return controllers.NewThermostat(h.Setpoint, h.Hysteresis, h.Power)
	case HeaterPID:
		return controllers.NewPID(h.Kp, h.Ki, h.Kd, h.Setpoint, h.Power)
	}
	return nil
}

// Heated appends a heater command to a base forcing, giving the input
// [flux, heater].
type Heated struct {
	Base       dynamo.Forcing
	Controller controllers.Controller
}

func (h Heated) At(x dynamo.State, t float64) dynamo.Input {
	flux := 0.0
	if h.Base != nil {
		if u := h.Base.At(x, t); len(u) > 0 {
			flux = u[0]
		}
	}
	return dynamo.Input{flux, h.Controller.Compute(x, t)}
}
