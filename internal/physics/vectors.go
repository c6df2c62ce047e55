package physics

import "math"

// Arrow length bounds, in scene pixels.
const (
	MinArrowLength = 35.0
	MaxArrowLength = 130.0
)

// ArrowForce is the raw magnitude printed on the force arrows.
func ArrowForce(earthMass, moonMass, distance float64) float64 {
	return earthMass * moonMass * 10000 / (distance * 0.7)
}

// ArrowLength compresses a raw arrow force logarithmically into
// [MinArrowLength, MaxArrowLength].
func ArrowLength(raw float64) float64 {
	return math.Max(MinArrowLength, math.Min(MaxArrowLength, 20*math.Log10(raw+1)))
}

// VelocityArrowLength grows with velocity and shrinks with the square root
// of distance.
func VelocityArrowLength(velocity, distance float64) float64 {
	return 75 * velocity * (100 / math.Sqrt(distance))
}

// OrbitStep is the angle, in radians, the moon advances per frame.
func OrbitStep(velocity, distance float64) float64 {
	return math.Sqrt(100/distance) * 0.05 * velocity
}
