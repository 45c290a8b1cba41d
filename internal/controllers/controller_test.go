package controllers

import (
	"testing"

	"github.com/san-kum/radsim/internal/dynamo"
)

func TestThermostat_Hysteresis(t *testing.T) {
	th := NewThermostat(250, 10, 300)

	steps := []struct {
		temp float64
		want float64
	}{
		{260, 0},
		{246, 0},   // inside the band, stays off
		{244, 300}, // below band, switches on
		{250, 300}, // inside the band, stays on
		{256, 0},   // above band, switches off
		{250, 0},
	}
	for i, s := range steps {
		if got := th.Compute(dynamo.State{s.temp}, float64(i)); got != s.want {
			t.Errorf("step %d at %g K: expected %g, got %g", i, s.temp, s.want, got)
		}
	}

	th.Compute(dynamo.State{200}, 10)
	th.Reset()
	if th.On() {
		t.Error("reset should switch the heater off")
	}
}

func TestPID_Clamped(t *testing.T) {
	ctrl := NewPID(10, 0.1, 0, 250, 400)

	if u := ctrl.Compute(dynamo.State{300}, 0); u != 0 {
		t.Errorf("panel above target should get no heat, got %f", u)
	}
	if u := ctrl.Compute(dynamo.State{100}, 1); u != 400 {
		t.Errorf("cold panel should get full power, got %f", u)
	}
	if ctrl.integral != 0 {
		t.Errorf("saturated output should not wind up, integral %f", ctrl.integral)
	}
}

func TestPID_Integrates(t *testing.T) {
	ctrl := NewPID(1, 0.5, 0, 250, 1000)
	ctrl.Compute(dynamo.State{249}, 0)
	u1 := ctrl.Compute(dynamo.State{249}, 1)
	u2 := ctrl.Compute(dynamo.State{249}, 2)
	if u2 <= u1 {
		t.Errorf("constant error should grow the output, got %f then %f", u1, u2)
	}

	ctrl.Reset()
	if u := ctrl.Compute(dynamo.State{249}, 0); u != 1 {
		t.Errorf("after reset expected proportional term only, got %f", u)
	}
}

func TestControllers_EmptyState(t *testing.T) {
	for _, c := range []Controller{NewPID(1, 1, 1, 250, 100), NewThermostat(250, 5, 100)} {
		if u := c.Compute(nil, 0); u != 0 {
			t.Errorf("%T: expected 0 for empty state, got %f", c, u)
		}
	}
}
