// Package dynamo holds the primitives shared by the time-stepping code:
//
//   - [State]: state vector, here panel temperatures in K
//   - [System]: an ODE dX/dt = f(X, u, t)
//   - [Integrator] and [AdaptiveIntegrator]: single-step schemes
//   - [Forcing]: the time-varying input u, such as the solar flux on a panel
//   - [Metric] and [Observer]: per-step hooks used by package sim
//
// Nothing here allocates goroutines. Integrators may keep scratch buffers,
// so an integrator value must not be shared between concurrent runs.
package dynamo
