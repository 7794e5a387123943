package analytic

import (
	"fmt"
	"math"

	"github.com/san-kum/springlab/internal/dynamo"
	"github.com/san-kum/springlab/internal/spring"
)

// Regime classifies oscillator behavior by damping ratio.
type Regime int

const (
	Underdamped Regime = iota
	Critical
	Overdamped
)

func (r Regime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case Critical:
		return "critical"
	case Overdamped:
		return "overdamped"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// criticalBand is the half-width around zeta = 1 treated as exactly
// critical. Checked before the underdamped branch so values within the
// band on either side of 1 classify as critical.
const criticalBand = 1e-9

// Solution is the closed-form trajectory descriptor. OmegaN and Zeta
// are always set; OmegaD, A, B apply to the underdamped case, A, B to
// the critical case, and R1, R2, A, B to the overdamped case.
type Solution struct {
	Regime Regime
	OmegaN float64
	Zeta   float64
	OmegaD float64
	A, B   float64
	R1, R2 float64
}

// Solve classifies the damping regime for p and derives the
// coefficients matching the initial conditions read from x. In 1D mode
// the displacement and velocity are taken directly; in vector mode the
// radial displacement and radial velocity component are used, which
// discards direction (displayed trajectories are radial by convention).
func Solve(p spring.Params, x dynamo.State) Solution {
	omegaN := math.Sqrt(p.Stiffness / p.Mass)
	zeta := p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))

	var x0, v0 float64
	if p.Mode == spring.ModeVector {
		r := math.Hypot(x[0], x[1])
		x0 = r
		if r > spring.DegenerateRadius {
			v0 = (x[2]*x[0] + x[3]*x[1]) / r
		}
	} else {
		x0 = x[0]
		v0 = x[1]
	}

	sol := Solution{OmegaN: omegaN, Zeta: zeta}

	switch {
	case math.Abs(zeta-1) <= criticalBand:
		sol.Regime = Critical
		sol.A = x0
		sol.B = v0 + omegaN*x0

	case zeta < 1:
		sol.Regime = Underdamped
		sol.OmegaD = omegaN * math.Sqrt(1-zeta*zeta)
		sol.A = x0
		sol.B = (v0 + zeta*omegaN*x0) / sol.OmegaD

	default:
		sol.Regime = Overdamped
		sq := math.Sqrt(zeta*zeta - 1)
		sol.R1 = -omegaN * (zeta - sq)
		sol.R2 = -omegaN * (zeta + sq)
		det := sol.R2 - sol.R1
		sol.A = (sol.R2*x0 - v0) / det
		sol.B = (v0 - sol.R1*x0) / det
	}

	return sol
}

// Evaluate reconstructs x(t) from the descriptor.
func (s Solution) Evaluate(t float64) float64 {
	switch s.Regime {
	case Critical:
		return math.Exp(-s.OmegaN*t) * (s.A + s.B*t)
	case Overdamped:
		return s.A*math.Exp(s.R1*t) + s.B*math.Exp(s.R2*t)
	default:
		return math.Exp(-s.Zeta*s.OmegaN*t) *
			(s.A*math.Cos(s.OmegaD*t) + s.B*math.Sin(s.OmegaD*t))
	}
}
