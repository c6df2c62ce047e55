package scene

import (
	"math"
	"strings"
)

const (
	arrowShaft    = 3.5
	arrowHeadLen  = 12.0
	arrowHeadHalf = 7.0
	labelGap      = 22.0
	labelPad      = 6.0
	labelHalfH    = 8.0
)

var (
	labelPlate = RGBA("#000000", 0.7)
	labelInk   = Solid("#ffffff")
)

// Arrow is a labelled vector anchored at Origin pointing along Angle.
type Arrow struct {
	Origin Point
	Angle  float64
	Length float64
	Paint  Paint
	Label  string
}

// Tip is the arrow's end point.
func (a Arrow) Tip() Point {
	return Point{
		X: a.Origin.X + math.Cos(a.Angle)*a.Length,
		Y: a.Origin.Y + math.Sin(a.Angle)*a.Length,
	}
}

// DrawArrow strokes the shaft, fills a triangular head and writes the label
// upright beyond the tip on a translucent plate.
func DrawArrow(s Surface, a Arrow) {
	cos, sin := math.Cos(a.Angle), math.Sin(a.Angle)
	tip := a.Tip()
	s.Polyline([]Point{a.Origin, tip}, a.Paint, arrowShaft, nil)

	back := Point{X: tip.X - cos*arrowHeadLen, Y: tip.Y - sin*arrowHeadLen}
	left := Point{X: back.X + sin*arrowHeadHalf, Y: back.Y - cos*arrowHeadHalf}
	right := Point{X: back.X - sin*arrowHeadHalf, Y: back.Y + cos*arrowHeadHalf}
	s.FillTriangle(tip, left, right, a.Paint)

	if a.Label == "" {
		return
	}
	label := strings.ToUpper(a.Label)
	tx := a.Origin.X + cos*(a.Length+labelGap)
	ty := a.Origin.Y + sin*(a.Length+labelGap)
	w := s.MeasureText(label)
	s.FillRect(tx-w/2-labelPad, ty-labelHalfH, w+2*labelPad, 2*labelHalfH, labelPlate)
	s.Text(Point{X: tx, Y: ty + 4}, label, labelInk)
}

// Winding is the z component of (b-a)×(c-a). With y pointing down it is
// negative when a, b, c run counter-clockwise on screen.
func Winding(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// CounterClockwise reorders a triangle so that Winding(a, b, c) <= 0.
func CounterClockwise(a, b, c Point) (Point, Point, Point) {
	if Winding(a, b, c) > 0 {
		return a, c, b
	}
	return a, b, c
}
