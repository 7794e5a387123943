package integrators

import "github.com/san-kum/springlab/internal/dynamo"

// Euler is the explicit first-order integrator, kept as a baseline for
// accuracy comparisons against RK4.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	if dt == 0 {
		return x.Clone()
	}
	dx := sys.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
