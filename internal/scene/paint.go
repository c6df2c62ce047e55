package scene

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is a colour with straight alpha in [0, 1].
type Paint struct {
	C colorful.Color
	A float64
}

// RGBA builds a Paint from a "#rrggbb" string. It panics on malformed
// input; every call site passes a literal.
func RGBA(hex string, alpha float64) Paint {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("scene: bad colour %q: %v", hex, err))
	}
	return Paint{C: c, A: clamp01(alpha)}
}

func Solid(hex string) Paint { return RGBA(hex, 1) }

func (p Paint) WithAlpha(a float64) Paint {
	p.A = clamp01(a)
	return p
}

// Over composites p onto an opaque background colour.
func (p Paint) Over(bg colorful.Color) colorful.Color {
	return bg.BlendRgb(p.C, p.A).Clamped()
}

// Lerp interpolates colour and alpha.
func (p Paint) Lerp(q Paint, t float64) Paint {
	return Paint{C: p.C.BlendRgb(q.C, t), A: p.A + (q.A-p.A)*t}
}

type Stop struct {
	Offset float64
	Paint  Paint
}

// Gradient is a two-circle radial gradient: the focal circle (F, R0) grows
// into the outer circle (C, R1). Colours outside [0, 1] are padded.
type Gradient struct {
	F     Point
	R0    float64
	C     Point
	R1    float64
	Stops []Stop
}

// At returns the gradient colour at (x, y).
func (g Gradient) At(x, y float64) Paint {
	if len(g.Stops) == 0 {
		return Paint{}
	}
	t, ok := g.param(x, y)
	if !ok {
		return Paint{}
	}
	return g.sample(clamp01(t))
}

// param solves |p - c(t)| = r(t) for the largest t with r(t) >= 0, where
// c and r interpolate linearly from the focal to the outer circle.
func (g Gradient) param(x, y float64) (float64, bool) {
	dx, dy := g.C.X-g.F.X, g.C.Y-g.F.Y
	dr := g.R1 - g.R0
	qx, qy := x-g.F.X, y-g.F.Y

	a := dx*dx + dy*dy - dr*dr
	b := -2 * (qx*dx + qy*dy + g.R0*dr)
	c := qx*qx + qy*qy - g.R0*g.R0

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := -c / b
		return t, g.R0+t*dr >= 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (-b+sq)/(2*a), (-b-sq)/(2*a)
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if g.R0+t1*dr >= 0 {
		return t1, true
	}
	if g.R0+t2*dr >= 0 {
		return t2, true
	}
	return 0, false
}

func (g Gradient) sample(t float64) Paint {
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Paint
	}
	for i := 1; i < len(g.Stops); i++ {
		lo, hi := g.Stops[i-1], g.Stops[i]
		if t <= hi.Offset {
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Paint
			}
			return lo.Paint.Lerp(hi.Paint, (t-lo.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Paint
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Ring is an annulus painted with one colour.
type Ring struct {
	Inner, Outer float64
	Paint        Paint
}

// Annuli splits the disc of radius r around c into n rings that touch but
// never overlap, so translucent stops keep their alpha. Each ring takes the
// gradient at its mid radius on the side facing away from the focal point.
// Fully transparent rings are dropped.
func (g Gradient) Annuli(c Point, r float64, n int) []Ring {
	if n < 1 || r <= 0 {
		return nil
	}
	ux, uy := 1.0, 0.0
	if d := math.Hypot(c.X-g.F.X, c.Y-g.F.Y); d > 0 {
		ux, uy = (c.X-g.F.X)/d, (c.Y-g.F.Y)/d
	}
	rings := make([]Ring, 0, n)
	for i := 0; i < n; i++ {
		in, out := r*float64(i)/float64(n), r*float64(i+1)/float64(n)
		mid := (in + out) / 2
		p := g.At(c.X+ux*mid, c.Y+uy*mid)
		if p.A <= 0 {
			continue
		}
		rings = append(rings, Ring{Inner: in, Outer: out, Paint: p})
	}
	return rings
}
