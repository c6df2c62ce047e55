package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravitylab/internal/scene"
)

const (
	textSize     = 12
	discRings    = 28
	ringSegments = 64
	textSpacing  = 1
)

// Surface draws the scene straight into the raylib back buffer. Calls
// must happen between BeginDrawing and EndDrawing.
type Surface struct {
	Font rl.Font
}

func (s *Surface) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

func (s *Surface) Clear(bg scene.Paint) {
	rl.ClearBackground(toColor(bg))
}

func (s *Surface) FillCircle(c scene.Point, r float64, p scene.Paint) {
	rl.DrawCircleV(vec(c), float32(r), toColor(p))
}

// FillDisc draws the gradient as abutting rings.
func (s *Surface) FillDisc(c scene.Point, r float64, g scene.Gradient) {
	for _, ring := range g.Annuli(c, r, discRings) {
		rl.DrawRing(vec(c), float32(ring.Inner), float32(ring.Outer), 0, 360, ringSegments, toColor(ring.Paint))
	}
}

func (s *Surface) Polyline(pts []scene.Point, p scene.Paint, width float64, dash []float64) {
	col := toColor(p)
	for _, run := range scene.Dashes(pts, dash) {
		for i := 1; i < len(run); i++ {
			rl.DrawLineEx(vec(run[i-1]), vec(run[i]), float32(width), col)
		}
	}
}

// FillTriangle hands raylib the counter-clockwise winding; the other one
// is culled as a back face.
func (s *Surface) FillTriangle(a, b, c scene.Point, p scene.Paint) {
	a, b, c = scene.CounterClockwise(a, b, c)
	rl.DrawTriangle(vec(a), vec(b), vec(c), toColor(p))
}

func (s *Surface) FillRect(x, y, w, h float64, p scene.Paint) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), toColor(p))
}

func (s *Surface) Text(at scene.Point, str string, p scene.Paint) {
	w := s.MeasureText(str)
	pos := rl.NewVector2(float32(at.X-w/2), float32(at.Y-textSize+2))
	rl.DrawTextEx(s.Font, str, pos, textSize, textSpacing, toColor(p))
}

func (s *Surface) MeasureText(str string) float64 {
	return float64(rl.MeasureTextEx(s.Font, str, textSize, textSpacing).X)
}

func vec(p scene.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func toColor(p scene.Paint) rl.Color {
	r, g, b := p.C.Clamped().RGB255()
	return rl.NewColor(r, g, b, uint8(math.Round(p.A*255)))
}
