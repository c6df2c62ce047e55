package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/sim"
)

func TestStableFraction(t *testing.T) {
	m := NewStableFraction()
	if m.Value() != 1.0 {
		t.Errorf("empty fraction = %v, want 1", m.Value())
	}

	m.Observe(sim.Sample{Status: physics.Stable})
	m.Observe(sim.Sample{Status: physics.Escaping})
	m.Observe(sim.Sample{Status: physics.Stable})
	m.Observe(sim.Sample{Status: physics.Decaying})
	if m.Value() != 0.5 {
		t.Errorf("fraction = %v, want 0.5", m.Value())
	}

	m.Reset()
	if m.Value() != 1.0 {
		t.Error("reset did not clear samples")
	}
}

func TestRevolutions(t *testing.T) {
	m := NewRevolutions()
	for a := 0.3; a < 0.3+5*math.Pi; a += 0.1 {
		m.Observe(sim.Sample{Angle: a})
	}
	if m.Value() != 2 {
		t.Errorf("revolutions = %v, want 2", m.Value())
	}
}

func TestRevolutions_CountsFirstFrame(t *testing.T) {
	m := NewRevolutions()
	step := physics.OrbitStep(2, 100)
	angle := 0.0
	for angle < 2*math.Pi {
		angle += step
		m.Observe(sim.Sample{Angle: angle, AutoOrbit: true, Velocity: 2, Distance: 100})
	}
	if m.Value() != 1 {
		t.Errorf("revolutions = %v after reaching %.4f, want 1", m.Value(), angle)
	}
}

func TestMeanForceAndPeakTrail(t *testing.T) {
	mf, pt := NewMeanForce(), NewPeakTrail()
	for i, f := range []float64{10, 20, 30} {
		s := sim.Sample{Force: f, TrailLen: i * 5}
		mf.Observe(s)
		pt.Observe(s)
	}
	if mf.Value() != 20 {
		t.Errorf("mean force = %v, want 20", mf.Value())
	}
	if pt.Value() != 10 {
		t.Errorf("peak trail = %v, want 10", pt.Value())
	}
	if len(Defaults()) != 4 {
		t.Error("expected four default metrics")
	}
}
