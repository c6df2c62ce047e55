package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/physics"
	"github.com/san-kum/gravitylab/internal/trail"
)

// FrameTime is the elapsed-time increment per frame driving the twinkle.
const FrameTime = 0.012

const (
	fieldSample  = 15.0
	maxDeform    = 60.0
	deformScale  = 1600.0
	deformOffset = 40.0
)

var (
	Background = Solid("#020617")

	starInk   = Solid("#ffffff")
	gridInk   = RGBA("#3b82f6", 0.08)
	trailInk  = RGBA("#ec4899", 0.25)
	actionInk = Solid("#ef4444")
	reactInk  = Solid("#10b981")
	speedInk  = Solid("#f59e0b")

	trailDash = []float64{2, 10}

	earthHaloStops = []Stop{
		{0, RGBA("#2563eb", 0.25)},
		{0.5, RGBA("#2563eb", 0.05)},
		{1, RGBA("#2563eb", 0)},
	}
	earthStops = []Stop{
		{0, Solid("#93c5fd")},
		{0.5, Solid("#2563eb")},
		{1, Solid("#020617")},
	}
	moonHaloStops = []Stop{
		{0, RGBA("#f8fafc", 0.1)},
		{1, RGBA("#000000", 0)},
	}
	moonStops = []Stop{
		{0, Solid("#f8fafc")},
		{0.6, Solid("#94a3b8")},
		{1, Solid("#1e293b")},
	}
)

// Frame describes the geometry of one rendered frame.
type Frame struct {
	Drawn         bool
	Width, Height float64
	Tier          Tier
	EarthX        float64
	EarthY        float64
	MoonX         float64
	MoonY         float64
	Angle         float64
	// ActionLength and ReactionLength are the two force arrow lengths; zero
	// when vectors are hidden.
	ActionLength   float64
	ReactionLength float64
	VelocityLength float64
	TrailLen       int
}

// Renderer draws the two-body scene. It owns the orbit angle accumulator,
// the twinkle clock and the trail, so one Renderer belongs to one view.
// Angle and clock carry on across parameter changes; only a new Renderer
// starts them from zero.
type Renderer struct {
	stars []Star
	trail *trail.Buffer
	angle float64
	time  float64
}

func NewRenderer(stars []Star) *Renderer {
	return &Renderer{stars: stars, trail: trail.New(trail.Capacity)}
}

func (r *Renderer) Angle() float64       { return r.angle }
func (r *Renderer) Elapsed() float64     { return r.time }
func (r *Renderer) Trail() *trail.Buffer { return r.trail }

// Render draws one frame back to front. A nil or zero-sized surface is
// skipped without advancing any state.
func (r *Renderer) Render(s Surface, p params.Parameters) Frame {
	if s == nil {
		return Frame{}
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return Frame{}
	}
	r.time += FrameTime

	f := Frame{Drawn: true, Width: w, Height: h, Tier: TierFor(w)}

	s.Clear(Background)
	r.drawStars(s, w, h)

	f.EarthX, f.EarthY = EarthX(w, p.Distance), h/2

	if p.ShowField {
		r.drawField(s, w, h, f.EarthX, f.EarthY, p.EarthMass)
	}

	f.MoonX, f.MoonY = f.EarthX+p.Distance, f.EarthY
	if p.AutoOrbit {
		r.angle += physics.OrbitStep(p.Velocity, p.Distance)
		f.MoonX = f.EarthX + p.Distance*math.Cos(r.angle)
		f.MoonY = f.EarthY + p.Distance*math.Sin(r.angle)
	} else {
		r.trail.Clear()
	}
	f.Angle = r.angle

	if p.ShowPath && p.AutoOrbit {
		r.trail.Append(Point{X: f.MoonX, Y: f.MoonY})
		s.Polyline(r.trail.Points(), trailInk, 1, trailDash)
	}
	f.TrailLen = r.trail.Len()

	r.drawBodies(s, w, f, p)

	if p.ShowVectors {
		r.drawVectors(s, &f, p)
	}
	return f
}

func (r *Renderer) drawStars(s Surface, w, h float64) {
	for _, st := range r.stars {
		s.FillCircle(Point{X: st.X * w, Y: st.Y * h}, st.Size, starInk.WithAlpha(st.OpacityAt(r.time)))
	}
}

// drawField strokes a grid whose samples are pulled toward earth, harder
// the closer they sit.
func (r *Renderer) drawField(s Surface, w, h, ex, ey, earthMass float64) {
	spacing := GridSpacing(w)
	bend := func(x, y float64) Point {
		dx, dy := x-ex, y-ey
		dist := math.Hypot(dx, dy)
		deform := math.Min(maxDeform, earthMass*deformScale/(dist+deformOffset))
		a := math.Atan2(dy, dx)
		return Point{X: x - math.Cos(a)*deform, Y: y - math.Sin(a)*deform}
	}

	line := make([]Point, 0, int(math.Max(w, h)/fieldSample)+1)
	for x := 0.0; x < w; x += spacing {
		line = line[:0]
		for y := 0.0; y < h; y += fieldSample {
			line = append(line, bend(x, y))
		}
		s.Polyline(line, gridInk, 1, nil)
	}
	for y := 0.0; y < h; y += spacing {
		line = line[:0]
		for x := 0.0; x < w; x += fieldSample {
			line = append(line, bend(x, y))
		}
		s.Polyline(line, gridInk, 1, nil)
	}
}

func (r *Renderer) drawBodies(s Surface, w float64, f Frame, p params.Parameters) {
	earth := Point{X: f.EarthX, Y: f.EarthY}
	er := EarthRadius(w, p.EarthMass)
	s.FillDisc(earth, er*1.8, Gradient{F: earth, R0: er, C: earth, R1: er * 1.8, Stops: earthHaloStops})
	s.FillDisc(earth, er, Gradient{
		F: Point{X: earth.X - er/3, Y: earth.Y - er/3}, R0: er / 10,
		C: earth, R1: er, Stops: earthStops,
	})

	moon := Point{X: f.MoonX, Y: f.MoonY}
	mr := MoonRadius(w, p.MoonMass)
	s.FillDisc(moon, mr*2, Gradient{F: moon, R0: mr, C: moon, R1: mr * 2, Stops: moonHaloStops})
	s.FillDisc(moon, mr, Gradient{
		F: Point{X: moon.X - mr/4, Y: moon.Y - mr/4}, R0: mr / 10,
		C: moon, R1: mr, Stops: moonStops,
	})
}

// drawVectors draws the action/reaction pair with identical lengths, plus
// the tangential velocity while orbiting.
func (r *Renderer) drawVectors(s Surface, f *Frame, p params.Parameters) {
	angle := math.Atan2(f.MoonY-f.EarthY, f.MoonX-f.EarthX)
	raw := physics.ArrowForce(p.EarthMass, p.MoonMass, p.Distance)
	length := physics.ArrowLength(raw)
	label := fmt.Sprintf("%.0fN", raw)

	DrawArrow(s, Arrow{Origin: Point{X: f.MoonX, Y: f.MoonY}, Angle: angle + math.Pi, Length: length, Paint: actionInk, Label: "F_G: " + label})
	DrawArrow(s, Arrow{Origin: Point{X: f.EarthX, Y: f.EarthY}, Angle: angle, Length: length, Paint: reactInk, Label: "F_R: " + label})
	f.ActionLength, f.ReactionLength = length, length

	if p.AutoOrbit {
		vl := physics.VelocityArrowLength(p.Velocity, p.Distance)
		DrawArrow(s, Arrow{Origin: Point{X: f.MoonX, Y: f.MoonY}, Angle: angle + math.Pi/2, Length: vl, Paint: speedInk, Label: "V_f"})
		f.VelocityLength = vl
	}
}

// Fork returns an independent copy of r, used to draw a one-off frame on a
// second surface without disturbing the live view.
func (r *Renderer) Fork() *Renderer {
	c := &Renderer{stars: r.stars, trail: trail.New(r.trail.Cap()), angle: r.angle, time: r.time}
	for _, p := range r.trail.Points() {
		c.trail.Append(p)
	}
	return c
}
