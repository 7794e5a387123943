package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot at (0,0)")
	}

	// Out of range must be ignored, not panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("clear should reset every cell")
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}

func TestPhasePortrait(t *testing.T) {
	states := [][]float64{
		{1.0, 0.0},
		{0.7, -0.6},
		{0.0, -1.0},
		{-0.7, -0.6},
		{-1.0, 0.0},
	}

	p := NewPhasePortrait(states, 0, 1)
	if p == nil {
		t.Fatal("expected portrait")
	}
	if len(p.Points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(p.Points))
	}

	out := p.ASCII(20, 10)
	if out == "" {
		t.Fatal("expected non-empty render")
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 10 {
		t.Error("render should span the full height")
	}
}

func TestPhasePortraitBadIndices(t *testing.T) {
	states := [][]float64{{1.0, 0.0}}
	if NewPhasePortrait(states, 0, 5) != nil {
		t.Error("expected nil for out-of-range index")
	}
	if NewPhasePortrait(nil, 0, 1) != nil {
		t.Error("expected nil for empty states")
	}
}
