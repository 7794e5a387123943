package spring

import (
	"fmt"
	"strings"

	"github.com/san-kum/springlab/internal/dynamo"
)

// Mode selects which force law governs the oscillator.
type Mode int

const (
	ModeOneDimensional Mode = iota
	ModeVector
)

func (m Mode) String() string {
	switch m {
	case ModeOneDimensional:
		return "1D"
	case ModeVector:
		return "VECTOR"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1D":
		return ModeOneDimensional, nil
	case "VECTOR":
		return ModeVector, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want 1D or VECTOR)", s)
	}
}

// Params holds the physical constants of a simulation run. They are
// fixed for the lifetime of a run; replace the whole set between runs
// rather than mutating fields mid-integration.
type Params struct {
	Mass          float64
	Stiffness     float64
	Damping       float64
	Gravity       float64
	NaturalLength float64
	Mode          Mode
}

func DefaultParams() Params {
	return Params{
		Mass:          1.0,
		Stiffness:     10.0,
		Damping:       0.5,
		Gravity:       9.81,
		NaturalLength: 1.0,
		Mode:          ModeOneDimensional,
	}
}

// Validate rejects parameter sets the force laws cannot operate on.
// Mass is a divisor in every acceleration; stiffness and damping must
// be non-negative for the model to dissipate rather than inject energy.
func (p Params) Validate() error {
	if p.Mass <= 0 {
		return fmt.Errorf("%w: mass must be > 0, got %g", dynamo.ErrParameterBounds, p.Mass)
	}
	if p.Stiffness < 0 {
		return fmt.Errorf("%w: stiffness must be >= 0, got %g", dynamo.ErrParameterBounds, p.Stiffness)
	}
	if p.Damping < 0 {
		return fmt.Errorf("%w: damping must be >= 0, got %g", dynamo.ErrParameterBounds, p.Damping)
	}
	if p.NaturalLength < 0 {
		return fmt.Errorf("%w: natural length must be >= 0, got %g", dynamo.ErrParameterBounds, p.NaturalLength)
	}
	return nil
}

// StateDim reports the state arity of the selected mode.
func (p Params) StateDim() int {
	if p.Mode == ModeVector {
		return 4
	}
	return 2
}

// NewSystem validates p and returns the system for its mode.
func NewSystem(p Params) (dynamo.System, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Mode == ModeVector {
		return &Vector{p: p}, nil
	}
	return &OneDimensional{p: p}, nil
}
