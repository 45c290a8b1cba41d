// Package exchanger sizes counterflow heat exchangers with the ε-NTU method.
package exchanger

import (
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/physics"
)

// Stream is one side of the exchanger. Capacity is ṁ·cp in W/K.
type Stream struct {
	Capacity float64
	InletK   float64
}

type Exchanger struct {
	UA float64 // overall conductance U·A, W/K
}

type Result struct {
	NTU           float64
	CapacityRatio float64
	Effectiveness float64
	HeatRate      float64 // W
	HotOutletK    float64
	ColdOutletK   float64
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %g", physics.ErrInvalidArgument, name, v)
	}
	return nil
}

func NTU(ua, cMin float64) (float64, error) {
	if err := physics.CheckNonNegative("UA", ua); err != nil {
		return 0, err
	}
	if err := positive("C_min", cMin); err != nil {
		return 0, err
	}
	return ua / cMin, nil
}

func CapacityRatio(cMin, cMax float64) (float64, error) {
	if err := positive("C_min", cMin); err != nil {
		return 0, err
	}
	if err := positive("C_max", cMax); err != nil {
		return 0, err
	}
	if cMin > cMax {
		return 0, fmt.Errorf("%w: C_min %g exceeds C_max %g", physics.ErrInvalidArgument, cMin, cMax)
	}
	return cMin / cMax, nil
}

// Effectiveness of a counterflow exchanger. Balanced flow (C_r = 1) uses the
// limit NTU/(1+NTU).
func Effectiveness(ntu, cr float64) float64 {
	if cr == 1 {
		return ntu / (1 + ntu)
	}
	e := math.Exp(-ntu * (1 - cr))
	return (1 - e) / (1 - cr*e)
}

// Solve runs the full ε-NTU calculation for a hot and a cold stream.
func (x Exchanger) Solve(hot, cold Stream) (Result, error) {
	if err := positive("hot capacity", hot.Capacity); err != nil {
		return Result{}, err
	}
	if err := positive("cold capacity", cold.Capacity); err != nil {
		return Result{}, err
	}
	if err := physics.CheckNonNegative("hot inlet", hot.InletK); err != nil {
		return Result{}, err
	}
	if err := physics.CheckNonNegative("cold inlet", cold.InletK); err != nil {
		return Result{}, err
	}

	cMin, cMax := math.Min(hot.Capacity, cold.Capacity), math.Max(hot.Capacity, cold.Capacity)
	ntu, err := NTU(x.UA, cMin)
	if err != nil {
		return Result{}, err
	}
	cr, err := CapacityRatio(cMin, cMax)
	if err != nil {
		return Result{}, err
	}

	eff := Effectiveness(ntu, cr)
	q := eff * cMin * (hot.InletK - cold.InletK)

	return Result{
		NTU:           ntu,
		CapacityRatio: cr,
		Effectiveness: eff,
		HeatRate:      q,
		HotOutletK:    hot.InletK - q/hot.Capacity,
		ColdOutletK:   cold.InletK + q/cold.Capacity,
	}, nil
}
