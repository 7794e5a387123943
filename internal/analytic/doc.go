// Package analytic derives the closed-form trajectory of the damped
// oscillator from its current state and parameters.
//
// [Solve] classifies the damping regime (underdamped, critically
// damped, overdamped) from the damping ratio and returns a [Solution]
// carrying every coefficient needed to reconstruct x(t) without
// re-deriving from state; [Solution.Evaluate] performs that
// reconstruction. The solver never mutates its inputs and is
// independent of the integrator, so numerical trajectories can be
// validated against it at any point of a run.
package analytic
