package spring

import (
	"math"
	"testing"

	"github.com/san-kum/springlab/internal/dynamo"
)

func TestOneDimensionalDerive_Equilibrium(t *testing.T) {
	sys, err := NewOneDimensional(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	dx := sys.Derive(dynamo.State{0.0, 0.0}, 0.0)

	if dx[0] != 0 {
		t.Errorf("velocity at equilibrium should be 0, got %f", dx[0])
	}
	if dx[1] != 0 {
		t.Errorf("acceleration at equilibrium should be 0, got %f", dx[1])
	}
}

func TestOneDimensionalDerive_Displaced(t *testing.T) {
	p := Params{Mass: 2.0, Stiffness: 4.0, Damping: 0.5}
	sys, err := NewOneDimensional(p)
	if err != nil {
		t.Fatal(err)
	}

	dx := sys.Derive(dynamo.State{1.0, 3.0}, 0.0)

	if dx[0] != 3.0 {
		t.Errorf("dx/dt should equal velocity, got %f", dx[0])
	}

	expectedAcc := (-4.0*1.0 - 0.5*3.0) / 2.0
	if math.Abs(dx[1]-expectedAcc) > 1e-12 {
		t.Errorf("expected acceleration %f, got %f", expectedAcc, dx[1])
	}
}

func TestOneDimensionalEnergy(t *testing.T) {
	p := Params{Mass: 1.0, Stiffness: 10.0}
	sys, err := NewOneDimensional(p)
	if err != nil {
		t.Fatal(err)
	}

	// Full PE at the turning point equals full KE through equilibrium
	// for matching amplitude: 0.5*k*x^2 == 0.5*m*v^2 when v = x*sqrt(k/m).
	e1 := sys.Energy(dynamo.State{1.0, 0.0})
	e2 := sys.Energy(dynamo.State{0.0, math.Sqrt(10.0)})

	if math.Abs(e1-e2) > 1e-12 {
		t.Errorf("turning point and equilibrium energies differ: %f vs %f", e1, e2)
	}
	if math.Abs(e1-5.0) > 1e-12 {
		t.Errorf("expected energy 5.0, got %f", e1)
	}
}

func TestOneDimensionalSetParam(t *testing.T) {
	sys, err := NewOneDimensional(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	if err := sys.SetParam("stiffness", 25.0); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if got := sys.GetParams()["stiffness"]; got != 25.0 {
		t.Errorf("stiffness = %f, want 25", got)
	}

	if err := sys.SetParam("mass", -1.0); err == nil {
		t.Error("expected error for negative mass")
	}
	if got := sys.GetParams()["mass"]; got != 1.0 {
		t.Errorf("rejected SetParam must not change mass, got %f", got)
	}

	if err := sys.SetParam("bogus", 1.0); err == nil {
		t.Error("expected error for unknown param")
	}
}
