// Package integrators implements single-step ODE schemes for dynamo.System.
package integrators

import "github.com/san-kum/radsim/internal/dynamo"

// Euler is first-order explicit Euler. It is only stable for dt well below
// the thermal time constant.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, u dynamo.Input, t, dt float64) dynamo.State {
	dx := sys.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
