package spring

import (
	"errors"
	"testing"

	"github.com/san-kum/springlab/internal/dynamo"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(p *Params) {}, false},
		{"zero stiffness", func(p *Params) { p.Stiffness = 0 }, false},
		{"zero damping", func(p *Params) { p.Damping = 0 }, false},
		{"zero mass", func(p *Params) { p.Mass = 0 }, true},
		{"negative mass", func(p *Params) { p.Mass = -1 }, true},
		{"negative stiffness", func(p *Params) { p.Stiffness = -0.1 }, true},
		{"negative damping", func(p *Params) { p.Damping = -0.1 }, true},
		{"negative length", func(p *Params) { p.NaturalLength = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr && err != nil && !errors.Is(err, dynamo.ErrParameterBounds) {
				t.Errorf("error should wrap ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"1D", ModeOneDimensional, false},
		{"1d", ModeOneDimensional, false},
		{"VECTOR", ModeVector, false},
		{"vector", ModeVector, false},
		{" Vector ", ModeVector, false},
		{"2D", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeOneDimensional, ModeVector} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("round trip %v -> %q -> %v", m, m.String(), got)
		}
	}
}

func TestNewSystemDispatch(t *testing.T) {
	p := DefaultParams()

	sys, err := NewSystem(p)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if sys.StateDim() != 2 {
		t.Errorf("1D system should have 2 states, got %d", sys.StateDim())
	}

	p.Mode = ModeVector
	sys, err = NewSystem(p)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if sys.StateDim() != 4 {
		t.Errorf("vector system should have 4 states, got %d", sys.StateDim())
	}

	p.Mass = 0
	if _, err := NewSystem(p); err == nil {
		t.Error("expected error for zero mass")
	}
}
