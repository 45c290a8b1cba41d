package metrics

import "github.com/san-kum/radsim/internal/dynamo"

// InBand is the fraction of samples whose temperature lies within
// [Min, Max], e.g. the survival range of the electronics behind a radiator.
type InBand struct {
	Min, Max float64
	inside   int
	samples  int
}

func NewInBand(lo, hi float64) *InBand {
	return &InBand{Min: lo, Max: hi}
}

func (b *InBand) Name() string { return "in_band" }

func (b *InBand) Observe(x dynamo.State, u dynamo.Input, t float64) {
	if len(x) == 0 {
		return
	}
	b.samples++
	if x[0] >= b.Min && x[0] <= b.Max {
		b.inside++
	}
}

func (b *InBand) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return float64(b.inside) / float64(b.samples)
}

func (b *InBand) Reset() {
	b.inside = 0
	b.samples = 0
}
