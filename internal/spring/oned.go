package spring

import (
	"fmt"

	"github.com/san-kum/springlab/internal/dynamo"
)

// OneDimensional models m*a = -k*x - c*v with x measured as
// displacement from equilibrium. State layout: [x vx].
type OneDimensional struct {
	p Params
}

func NewOneDimensional(p Params) (*OneDimensional, error) {
	p.Mode = ModeOneDimensional
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &OneDimensional{p: p}, nil
}

func (s *OneDimensional) StateDim() int  { return 2 }
func (s *OneDimensional) Params() Params { return s.p }

func (s *OneDimensional) Derive(x dynamo.State, t float64) dynamo.State {
	pos, vel := x[0], x[1]
	acc := (-s.p.Stiffness*pos - s.p.Damping*vel) / s.p.Mass
	return dynamo.State{vel, acc}
}

func (s *OneDimensional) Energy(x dynamo.State) float64 {
	pos, vel := x[0], x[1]
	ke := 0.5 * s.p.Mass * vel * vel
	pe := 0.5 * s.p.Stiffness * pos * pos
	return ke + pe
}

func (s *OneDimensional) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      s.p.Mass,
		"stiffness": s.p.Stiffness,
		"damping":   s.p.Damping,
	}
}

func (s *OneDimensional) SetParam(name string, value float64) error {
	next := s.p
	switch name {
	case "mass":
		next.Mass = value
	case "stiffness":
		next.Stiffness = value
	case "damping":
		next.Damping = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.p = next
	return nil
}
