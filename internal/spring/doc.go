// Package spring provides the damped spring-mass oscillator models.
//
// Two configurations implement the [dynamo.System] interface:
//
//   - [OneDimensional]: scalar displacement about equilibrium, state [x vx]
//   - [Vector]: planar gravity-loaded spring anchored at the origin,
//     state [x y vx vy]
//
// Both also implement [dynamo.Hamiltonian] for energy monitoring and
// [dynamo.Configurable] for interactive parameter adjustment.
//
// Parameters are validated eagerly by [Params.Validate]; the force laws
// themselves are total over valid parameters and never fail at step time.
package spring
