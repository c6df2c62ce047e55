package metrics

import (
	"math"

	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/sim"
)

// StableFraction is the share of frames whose status was STABLE.
type StableFraction struct {
	stable  int
	samples int
}

func NewStableFraction() *StableFraction { return &StableFraction{} }

func (s *StableFraction) Name() string { return "stable_fraction" }

func (s *StableFraction) Observe(x sim.Sample) {
	s.samples++
	if x.Status == physics.Stable {
		s.stable++
	}
}

func (s *StableFraction) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.stable) / float64(s.samples)
}

func (s *StableFraction) Reset() {
	s.stable = 0
	s.samples = 0
}

// Revolutions counts completed laps of the orbit angle. The first sample
// already carries one frame of motion, so the start is backed off by that
// frame's step.
type Revolutions struct {
	start, last float64
	seen        bool
}

func NewRevolutions() *Revolutions { return &Revolutions{} }

func (r *Revolutions) Name() string { return "revolutions" }

func (r *Revolutions) Observe(x sim.Sample) {
	if !r.seen {
		r.start, r.seen = x.Angle, true
		if x.AutoOrbit {
			r.start -= physics.OrbitStep(x.Velocity, x.Distance)
		}
	}
	r.last = x.Angle
}

func (r *Revolutions) Value() float64 {
	return math.Floor((r.last - r.start) / (2 * math.Pi))
}

func (r *Revolutions) Reset() { *r = Revolutions{} }

// MeanForce averages the headline force over the run.
type MeanForce struct {
	sum     float64
	samples int
}

func NewMeanForce() *MeanForce { return &MeanForce{} }

func (m *MeanForce) Name() string { return "mean_force" }

func (m *MeanForce) Observe(x sim.Sample) {
	m.sum += x.Force
	m.samples++
}

func (m *MeanForce) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanForce) Reset() { *m = MeanForce{} }

// PeakTrail is the longest trail seen.
type PeakTrail struct {
	peak int
}

func NewPeakTrail() *PeakTrail { return &PeakTrail{} }

func (p *PeakTrail) Name() string         { return "peak_trail" }
func (p *PeakTrail) Observe(x sim.Sample) { p.peak = max(p.peak, x.TrailLen) }
func (p *PeakTrail) Value() float64       { return float64(p.peak) }
func (p *PeakTrail) Reset()               { p.peak = 0 }

// Defaults returns the metrics recorded for every trace.
func Defaults() []sim.Metric {
	return []sim.Metric{NewStableFraction(), NewRevolutions(), NewMeanForce(), NewPeakTrail()}
}
