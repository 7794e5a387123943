package metrics

import (
	"math"

	"github.com/san-kum/springlab/internal/dynamo"
)

// PeakAmplitude records the largest displacement observed over a run:
// |x| for the scalar oscillator, |r - L0| for the planar one. Damped
// runs should see this dominated by the earliest oscillations.
type PeakAmplitude struct {
	name          string
	naturalLength float64
	peak          float64
	samples       int
}

func NewPeakAmplitude(naturalLength float64) *PeakAmplitude {
	return &PeakAmplitude{
		name:          "peak_amplitude",
		naturalLength: naturalLength,
	}
}

func (p *PeakAmplitude) Name() string { return p.name }

func (p *PeakAmplitude) Observe(x dynamo.State, t float64) {
	var amp float64
	if len(x) >= 4 {
		amp = math.Abs(math.Hypot(x[0], x[1]) - p.naturalLength)
	} else if len(x) >= 1 {
		amp = math.Abs(x[0])
	}
	p.peak = math.Max(p.peak, amp)
	p.samples++
}

func (p *PeakAmplitude) Value() float64 {
	return p.peak
}

func (p *PeakAmplitude) Reset() {
	p.peak = 0
	p.samples = 0
}
