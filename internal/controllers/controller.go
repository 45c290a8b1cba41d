// Package controllers turns a measured panel temperature into a heater
// command in W/m².
package controllers

import "github.com/san-kum/radsim/internal/dynamo"

type Controller interface {
	Compute(x dynamo.State, t float64) float64
	Reset()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
