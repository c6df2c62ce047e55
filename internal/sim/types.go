package sim

import (
	"errors"
	"time"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
)

var ErrNoFrames = errors.New("sim: frame count must be positive")

// Event merges Update into the parameter store just before Frame renders.
type Event struct {
	Frame  int
	Update params.Update
}

type Config struct {
	Frames int
	// Interval paces the loop in wall time; zero runs flat out.
	Interval time.Duration
	Events   []Event
}

// Sample is the geometry and telemetry of one rendered frame.
type Sample struct {
	Frame       int
	Time        float64
	Angle       float64
	EarthX      float64
	EarthY      float64
	MoonX       float64
	MoonY       float64
	Distance    float64
	Velocity    float64
	AutoOrbit   bool
	TrailLen    int
	Force       float64
	Stability   float64
	Status      physics.Status
	ArrowLength float64
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(s Sample)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Sample)

func (f ObserverFunc) OnFrame(s Sample) { f(s) }

type Result struct {
	Samples []Sample
	Final   params.Parameters
	Metrics map[string]float64
}
