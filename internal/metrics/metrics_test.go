package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/radsim/internal/dynamo"
	"github.com/san-kum/radsim/internal/physics"
)

func feed(m dynamo.Metric, temps []float64, flux float64, dt float64) {
	for i, temp := range temps {
		m.Observe(dynamo.State{temp}, dynamo.Input{flux}, float64(i)*dt)
	}
}

func TestExtremes(t *testing.T) {
	temps := []float64{250, 310, 190, 260}

	lo := NewMinTemperature()
	hi := NewMaxTemperature()
	feed(lo, temps, 0, 1)
	feed(hi, temps, 0, 1)

	if lo.Value() != 190 {
		t.Errorf("expected min 190, got %g", lo.Value())
	}
	if hi.Value() != 310 {
		t.Errorf("expected max 310, got %g", hi.Value())
	}

	lo.Reset()
	feed(lo, []float64{400}, 0, 1)
	if lo.Value() != 400 {
		t.Errorf("reset did not clear the minimum, got %g", lo.Value())
	}
}

func TestMeanTemperature_TimeWeighted(t *testing.T) {
	m := NewMeanTemperature()
	// 100 K for 1 s then ramp to 300 K over 3 s: area 100 + 600 = 700 over 4 s
	m.Observe(dynamo.State{100}, nil, 0)
	m.Observe(dynamo.State{100}, nil, 1)
	m.Observe(dynamo.State{300}, nil, 4)

	if math.Abs(m.Value()-175) > 1e-12 {
		t.Errorf("expected 175, got %g", m.Value())
	}

	m.Reset()
	m.Observe(dynamo.State{42}, nil, 0)
	if m.Value() != 42 {
		t.Errorf("single sample should be its own mean, got %g", m.Value())
	}
}

func TestInBand(t *testing.T) {
	b := NewInBand(233, 333)
	if b.Value() != 1 {
		t.Errorf("empty band should read 1, got %g", b.Value())
	}
	feed(b, []float64{200, 250, 300, 350}, 0, 1)
	if b.Value() != 0.5 {
		t.Errorf("expected 0.5, got %g", b.Value())
	}
}

func TestEnergy(t *testing.T) {
	emitted := NewEmittedEnergy(0.9)
	absorbed := NewAbsorbedEnergy(0.2)

	temps := []float64{300, 300, 300}
	feed(emitted, temps, 1000, 10)
	feed(absorbed, temps, 1000, 10)

	wantEmit := physics.Graybody(0.9, 300) * 20
	if math.Abs(emitted.Value()-wantEmit) > 1e-9 {
		t.Errorf("expected emitted %g, got %g", wantEmit, emitted.Value())
	}
	if math.Abs(absorbed.Value()-0.2*1000*20) > 1e-9 {
		t.Errorf("expected absorbed 4000, got %g", absorbed.Value())
	}

	emitted.Reset()
	if emitted.Value() != 0 {
		t.Error("reset did not clear energy")
	}
}

func TestHeaterEnergy(t *testing.T) {
	h := NewHeaterEnergy()
	h.Observe(dynamo.State{250}, dynamo.Input{0, 100}, 0)
	h.Observe(dynamo.State{250}, dynamo.Input{0, 100}, 10)
	h.Observe(dynamo.State{250}, dynamo.Input{0}, 20)

	// trapezoid: 100·10 + 50·10
	if math.Abs(h.Value()-1500) > 1e-9 {
		t.Errorf("expected 1500 J/m², got %g", h.Value())
	}
}
