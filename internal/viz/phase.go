package viz

// PhasePortrait holds a 2D projection of a trajectory, typically
// displacement against velocity.
type PhasePortrait struct {
	XIndex, YIndex int
	Points         []struct{ X, Y float64 }
}

// NewPhasePortrait projects stored states onto the (xIdx, yIdx) plane.
func NewPhasePortrait(states [][]float64, xIdx, yIdx int) *PhasePortrait {
	if len(states) == 0 || xIdx >= len(states[0]) || yIdx >= len(states[0]) {
		return nil
	}

	p := &PhasePortrait{
		XIndex: xIdx,
		YIndex: yIdx,
		Points: make([]struct{ X, Y float64 }, 0, len(states)),
	}
	for _, s := range states {
		p.Points = append(p.Points, struct{ X, Y float64 }{X: s[xIdx], Y: s[yIdx]})
	}
	return p
}

// ASCII renders the portrait on a Braille canvas. The vertical axis is
// flipped so positive values appear at the top.
func (p *PhasePortrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	c := NewCanvas(width, height)
	subW := float64(width*2 - 1)
	subH := float64(height*4 - 1)

	prevSet := false
	var prevX, prevY int
	for _, pt := range p.Points {
		x := int((pt.X - minX) / rangeX * subW)
		y := int((maxY - pt.Y) / rangeY * subH)
		if prevSet {
			c.DrawLine(prevX, prevY, x, y)
		} else {
			c.Set(x, y)
		}
		prevX, prevY = x, y
		prevSet = true
	}

	return c.String()
}
