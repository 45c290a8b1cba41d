package controllers

import "github.com/san-kum/radsim/internal/dynamo"

// Thermostat is an on/off heater with a hysteresis band centred on Setpoint.
type Thermostat struct {
	Setpoint   float64
	Hysteresis float64
	Power      float64
	on         bool
}

func NewThermostat(setpoint, hysteresis, power float64) *Thermostat {
	return &Thermostat{Setpoint: setpoint, Hysteresis: hysteresis, Power: power}
}

func (th *Thermostat) Compute(x dynamo.State, t float64) float64 {
	if len(x) == 0 {
		return 0
	}
	half := th.Hysteresis / 2
	switch {
	case x[0] < th.Setpoint-half:
		th.on = true
	case x[0] > th.Setpoint+half:
		th.on = false
	}
	if th.on {
		return th.Power
	}
	return 0
}

func (th *Thermostat) On() bool { return th.on }

func (th *Thermostat) Reset() { th.on = false }
