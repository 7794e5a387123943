package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/springlab/internal/dynamo"
)

// harmonic is the unit oscillator a = -x, whose exact solution
// from (1, 0) is cos(t).
type harmonic struct{}

func (h *harmonic) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (h *harmonic) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	sys := &harmonic{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4ZeroDtIsNoop(t *testing.T) {
	sys := &harmonic{}
	integ := NewRK4()

	x := dynamo.State{0.7, -1.3}
	next := integ.Step(sys, x, 0.0, 0.0)

	if next[0] != x[0] || next[1] != x[1] {
		t.Errorf("dt=0 must return identical state: %v vs %v", next, x)
	}

	// Must be a copy, not an alias.
	next[0] = 99
	if x[0] == 99 {
		t.Error("dt=0 result aliases the input state")
	}
}

// TestRK4ConvergenceOrder halves dt and expects the error against the
// exact cos(t) trajectory to shrink by roughly 2^4.
func TestRK4ConvergenceOrder(t *testing.T) {
	sys := &harmonic{}
	integ := NewRK4()

	endTime := 1.0
	errAt := func(dt float64) float64 {
		x := dynamo.State{1.0, 0.0}
		steps := int(endTime / dt)
		for i := 0; i < steps; i++ {
			x = integ.Step(sys, x, float64(i)*dt, dt)
		}
		return math.Abs(x[0] - math.Cos(endTime))
	}

	e1 := errAt(0.02)
	e2 := errAt(0.01)

	ratio := e1 / e2
	// Fourth order: halving dt should cut the error ~16x. Allow slack
	// for floating-point rounding at these already-small errors.
	if ratio < 8 {
		t.Errorf("expected ~16x error reduction for dt/2, got %.2fx (e1=%g, e2=%g)", ratio, e1, e2)
	}
}

func TestEulerLessAccurateThanRK4(t *testing.T) {
	sys := &harmonic{}
	dt := 0.01
	steps := 200

	run := func(integ dynamo.Integrator) float64 {
		x := dynamo.State{1.0, 0.0}
		for i := 0; i < steps; i++ {
			x = integ.Step(sys, x, float64(i)*dt, dt)
		}
		return math.Abs(x[0] - math.Cos(float64(steps)*dt))
	}

	eulerErr := run(NewEuler())
	rk4Err := run(NewRK4())

	if rk4Err >= eulerErr {
		t.Errorf("RK4 error (%g) should beat Euler (%g)", rk4Err, eulerErr)
	}
}

func TestEulerZeroDtIsNoop(t *testing.T) {
	sys := &harmonic{}
	integ := NewEuler()

	x := dynamo.State{0.5, 0.5}
	next := integ.Step(sys, x, 1.0, 0.0)

	if next[0] != x[0] || next[1] != x[1] {
		t.Errorf("dt=0 must return identical state: %v vs %v", next, x)
	}
}
