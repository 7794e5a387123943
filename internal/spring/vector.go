package spring

import (
	"fmt"
	"math"

	"github.com/san-kum/springlab/internal/dynamo"
)

// DegenerateRadius is the radius below which the spring is treated as
// resting exactly at the origin and the radial direction is undefined.
const DegenerateRadius = 1e-9

// Vector models a planar spring anchored at the origin carrying a point
// mass under gravity. The spring force acts along the radial unit
// vector relative to the natural length, damping acts on the radial
// velocity component only, and gravity acts in the fixed +y world
// direction. State layout: [x y vx vy].
type Vector struct {
	p Params
}

func NewVector(p Params) (*Vector, error) {
	p.Mode = ModeVector
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Vector{p: p}, nil
}

func (s *Vector) StateDim() int  { return 4 }
func (s *Vector) Params() Params { return s.p }

func (s *Vector) Derive(x dynamo.State, t float64) dynamo.State {
	px, py := x[0], x[1]
	vx, vy := x[2], x[3]

	r := math.Hypot(px, py)
	var ux, uy float64
	if r < DegenerateRadius {
		// Radial direction undefined at the origin; fall back to +y so
		// the step stays finite and deterministic.
		ux, uy = 0.0, 1.0
	} else {
		ux, uy = px/r, py/r
	}

	stretch := r - s.p.NaturalLength
	fSpring := -s.p.Stiffness * stretch

	vRadial := vx*ux + vy*uy
	fDamp := -s.p.Damping * vRadial

	fRadial := fSpring + fDamp
	ax := fRadial * ux / s.p.Mass
	ay := (fRadial*uy + s.p.Mass*s.p.Gravity) / s.p.Mass

	return dynamo.State{vx, vy, ax, ay}
}

// Energy sums kinetic, elastic, and gravitational terms. Gravity points
// along +y, so its potential is -m*g*y.
func (s *Vector) Energy(x dynamo.State) float64 {
	px, py := x[0], x[1]
	vx, vy := x[2], x[3]

	ke := 0.5 * s.p.Mass * (vx*vx + vy*vy)

	stretch := math.Hypot(px, py) - s.p.NaturalLength
	pe := 0.5 * s.p.Stiffness * stretch * stretch

	return ke + pe - s.p.Mass*s.p.Gravity*py
}

func (s *Vector) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      s.p.Mass,
		"stiffness": s.p.Stiffness,
		"damping":   s.p.Damping,
		"gravity":   s.p.Gravity,
		"length":    s.p.NaturalLength,
	}
}

func (s *Vector) SetParam(name string, value float64) error {
	next := s.p
	switch name {
	case "mass":
		next.Mass = value
	case "stiffness":
		next.Stiffness = value
	case "damping":
		next.Damping = value
	case "gravity":
		next.Gravity = value
	case "length":
		next.NaturalLength = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.p = next
	return nil
}
