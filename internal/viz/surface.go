package viz

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/gravitylab/internal/scene"
)

const (
	// strokeFloor lifts faint strokes so a single dot stays visible.
	strokeFloor = 0.3
	// discCutoff drops gradient samples too faint to be worth a dot.
	discCutoff = 0.03
)

// BrailleSurface draws scene pixels onto a Canvas. Scale is the number of
// scene pixels per braille dot.
type BrailleSurface struct {
	canvas *Canvas
	scale  float64
}

func NewBrailleSurface(c *Canvas, scale float64) *BrailleSurface {
	if scale <= 0 {
		scale = 1
	}
	return &BrailleSurface{canvas: c, scale: scale}
}

func (s *BrailleSurface) Size() (float64, float64) {
	w, h := s.canvas.DotSize()
	return float64(w) * s.scale, float64(h) * s.scale
}

// ToScene converts a terminal cell to the scene point at its centre.
func (s *BrailleSurface) ToScene(col, row int) scene.Point {
	return scene.Point{
		X: (float64(col) + 0.5) * 2 * s.scale,
		Y: (float64(row) + 0.5) * 4 * s.scale,
	}
}

func (s *BrailleSurface) Clear(bg scene.Paint) {
	s.canvas.Fill(bg.Over(colorful.Color{}))
}

func (s *BrailleSurface) dot(x, y float64) (int, int) {
	return int(math.Floor(x / s.scale)), int(math.Floor(y / s.scale))
}

func (s *BrailleSurface) stroke(p scene.Paint) colorful.Color {
	return p.WithAlpha(math.Max(p.A, strokeFloor)).Over(s.canvas.base)
}

func (s *BrailleSurface) FillCircle(c scene.Point, r float64, p scene.Paint) {
	if p.A <= 0 {
		return
	}
	col := s.stroke(p)
	rr := r / s.scale
	cx, cy := c.X/s.scale, c.Y/s.scale
	if rr < 1 {
		s.canvas.SetColor(int(math.Floor(cx)), int(math.Floor(cy)), col)
		return
	}
	for y := int(math.Floor(cy - rr)); y <= int(math.Ceil(cy+rr)); y++ {
		for x := int(math.Floor(cx - rr)); x <= int(math.Ceil(cx+rr)); x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= rr {
				s.canvas.SetColor(x, y, col)
			}
		}
	}
}

// FillDisc samples the gradient at each dot centre inside the disc.
func (s *BrailleSurface) FillDisc(c scene.Point, r float64, g scene.Gradient) {
	rr := r / s.scale
	cx, cy := c.X/s.scale, c.Y/s.scale
	for y := int(math.Floor(cy - rr)); y <= int(math.Ceil(cy+rr)); y++ {
		for x := int(math.Floor(cx - rr)); x <= int(math.Ceil(cx+rr)); x++ {
			px, py := (float64(x)+0.5)*s.scale, (float64(y)+0.5)*s.scale
			if math.Hypot(px-c.X, py-c.Y) > r {
				continue
			}
			p := g.At(px, py)
			if p.A < discCutoff {
				continue
			}
			s.canvas.SetColor(x, y, p.Over(s.canvas.base))
		}
	}
}

// Polyline rasterises each visible dash run dot to dot. Wide strokes are
// thickened to a dot square.
func (s *BrailleSurface) Polyline(pts []scene.Point, p scene.Paint, width float64, dash []float64) {
	if p.A <= 0 {
		return
	}
	col := s.stroke(p)
	offsets := [][2]int{{0, 0}}
	if width/s.scale >= 1.5 {
		offsets = append(offsets, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	}
	for _, run := range scene.Dashes(pts, dash) {
		for i := 1; i < len(run); i++ {
			x0, y0 := s.dot(run[i-1].X, run[i-1].Y)
			x1, y1 := s.dot(run[i].X, run[i].Y)
			for _, o := range offsets {
				s.canvas.DrawLineColor(x0+o[0], y0+o[1], x1+o[0], y1+o[1], col)
			}
		}
	}
}

func (s *BrailleSurface) FillTriangle(a, b, c scene.Point, p scene.Paint) {
	if p.A <= 0 {
		return
	}
	col := s.stroke(p)
	minX := math.Min(a.X, math.Min(b.X, c.X)) / s.scale
	maxX := math.Max(a.X, math.Max(b.X, c.X)) / s.scale
	minY := math.Min(a.Y, math.Min(b.Y, c.Y)) / s.scale
	maxY := math.Max(a.Y, math.Max(b.Y, c.Y)) / s.scale
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			pt := scene.Point{X: (float64(x) + 0.5) * s.scale, Y: (float64(y) + 0.5) * s.scale}
			if inTriangle(pt, a, b, c) {
				s.canvas.SetColor(x, y, col)
			}
		}
	}
	for _, v := range []scene.Point{a, b, c} {
		x, y := s.dot(v.X, v.Y)
		s.canvas.SetColor(x, y, col)
	}
}

func inTriangle(p, a, b, c scene.Point) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func cross(p, a, b scene.Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// FillRect tints the background of every cell the rectangle overlaps. An
// edge lying on a cell boundary does not reach into the next cell.
func (s *BrailleSurface) FillRect(x, y, w, h float64, p scene.Paint) {
	if w <= 0 || h <= 0 || p.A <= 0 {
		return
	}
	cw, ch := 2*s.scale, 4*s.scale
	bg := p.Over(s.canvas.base)
	for row := int(math.Floor(y / ch)); row < int(math.Ceil((y+h)/ch)); row++ {
		for col := int(math.Floor(x / cw)); col < int(math.Ceil((x+w)/cw)); col++ {
			s.canvas.Tint(col, row, bg)
		}
	}
}

// Text centres s on the cell holding at.X, on the row above the baseline.
func (s *BrailleSurface) Text(at scene.Point, str string, p scene.Paint) {
	cw, ch := 2*s.scale, 4*s.scale
	n := len([]rune(str))
	col := int(math.Round(at.X/cw - float64(n)/2))
	row := int(math.Floor((at.Y - 4) / ch))
	s.canvas.PutText(col, row, str, s.stroke(p))
}

// MeasureText is one cell per character.
func (s *BrailleSurface) MeasureText(str string) float64 {
	return float64(len([]rune(str))) * 2 * s.scale
}
