package scene

import (
	"math"
	"math/rand"
)

// DefaultStars is the size of the star field generated at mount.
const DefaultStars = 200

// Star is decorative background. X and Y are normalised to the surface.
type Star struct {
	X, Y    float64
	Size    float64
	Opacity float64
	Twinkle float64
}

// NewStarField draws n stars from rng. The field never changes afterwards.
func NewStarField(n int, rng *rand.Rand) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:       rng.Float64(),
			Y:       rng.Float64(),
			Size:    rng.Float64()*1.8 + 0.4,
			Opacity: rng.Float64()*0.7 + 0.1,
			Twinkle: rng.Float64() * 0.04,
		}
	}
	return stars
}

// OpacityAt is the star's twinkling opacity at elapsed time t.
func (s Star) OpacityAt(t float64) float64 {
	return s.Opacity + math.Sin(t+s.X*200)*s.Twinkle
}
