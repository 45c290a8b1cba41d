package controllers

import "github.com/san-kum/radsim/internal/dynamo"

// PID drives x[0] toward Target with output clamped to [0, MaxPower]. The
// integral only accumulates while the output is unsaturated.
type PID struct {
	Kp       float64
	Ki       float64
	Kd       float64
	Target   float64
	MaxPower float64
	integral float64
	prevErr  float64
	prevT    float64
	first    bool
}

func NewPID(kp, ki, kd, target, maxPower float64) *PID {
	return &PID{
		Kp:       kp,
		Ki:       ki,
		Kd:       kd,
		Target:   target,
		MaxPower: maxPower,
		first:    true,
	}
}

func (p *PID) Compute(x dynamo.State, t float64) float64 {
	if len(x) == 0 {
		return 0
	}

	err := p.Target - x[0]

	if p.first {
		p.prevErr = err
		p.prevT = t
		p.first = false
		return clamp(p.Kp*err, 0, p.MaxPower)
	}

	dt := t - p.prevT
	if dt <= 0 {
		return clamp(p.Kp*err+p.Ki*p.integral, 0, p.MaxPower)
	}

	derivative := (err - p.prevErr) / dt
	integral := p.integral + err*dt
	u := p.Kp*err + p.Ki*integral + p.Kd*derivative
	if u >= 0 && u <= p.MaxPower {
		p.integral = integral
	}

	p.prevErr = err
	p.prevT = t
	return clamp(u, 0, p.MaxPower)
}

func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.prevT = 0
	p.first = true
}
