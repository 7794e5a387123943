// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Metric]: per-step observable aggregated over a run
//
// # Example
//
//	sys, _ := spring.NewSystem(spring.DefaultParams())
//	integ := integrators.NewRK4()
//	result, _ := sim.New(sys, integ).Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Systems and integrators hold no shared state across simulation
// instances; distinct (System, State) pairs may be advanced from
// different goroutines without coordination.
package dynamo
