package physics

import (
	"math"

	"github.com/san-kum/gravitylab/internal/params"
)

// KForce scales Force into a readable headline number.
const KForce = 1000.0

// EquilibriumVelocity is the velocity factor at which Stability peaks.
const EquilibriumVelocity = 1.0

// KMPerUnit converts scene distance into the kilometres shown in the panel.
const KMPerUnit = 1100.0

type Status int

const (
	Decaying Status = iota
	Stable
	Escaping
)

func (s Status) String() string {
	switch s {
	case Stable:
		return "STABLE"
	case Escaping:
		return "ESCAPING"
	default:
		return "DECAYING"
	}
}

// Color is the fixed display colour of the status.
func (s Status) Color() string {
	switch s {
	case Stable:
		return "#10b981"
	case Escaping:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// Telemetry is the derived readout for one parameter snapshot.
type Telemetry struct {
	Force     float64
	Stability float64
	Status    Status
}

func Compute(p params.Parameters) Telemetry {
	return Telemetry{
		Force:     Force(p.EarthMass, p.MoonMass, p.Distance),
		Stability: Stability(p.Velocity),
		Status:    Classify(p.Velocity),
	}
}

// Force is the display-scaled gravitational magnitude. Not dimensioned.
func Force(earthMass, moonMass, distance float64) float64 {
	r := distance / 100
	return earthMass * moonMass * KForce / (r * r)
}

// Stability is 100 at the equilibrium velocity and falls off linearly on
// both sides, floored at 0.
func Stability(velocity float64) float64 {
	return math.Max(0, 100-math.Abs(velocity-EquilibriumVelocity)*100)
}

// Classify maps velocity to a status. Velocities in (1.15, 1.2] are
// neither stable nor escaping and report Decaying.
func Classify(velocity float64) Status {
	switch {
	case velocity > 1.2:
		return Escaping
	case velocity >= 0.85 && velocity <= 1.15:
		return Stable
	default:
		return Decaying
	}
}

func RadiusKM(distance float64) float64 {
	return distance * KMPerUnit
}
