package scene

import "github.com/san-kum/gravitylab/internal/trail"

type Point = trail.Point

// Surface is a 2D raster the renderer draws on. Coordinates are scene pixels
// with the origin top-left; implementations map them to their own device
// units.
type Surface interface {
	// Size reports the current drawable area. A zero area skips the frame.
	Size() (w, h float64)
	Clear(bg Paint)
	FillCircle(c Point, r float64, p Paint)
	// FillDisc fills the circle (c, r) with a radial gradient.
	FillDisc(c Point, r float64, g Gradient)
	// Polyline strokes connected segments. A non-empty dash alternates
	// on/off lengths along the path.
	Polyline(pts []Point, p Paint, width float64, dash []float64)
	FillTriangle(a, b, c Point, p Paint)
	FillRect(x, y, w, h float64, p Paint)
	// Text draws s horizontally centred on at.X with its baseline at at.Y.
	Text(at Point, s string, p Paint)
	MeasureText(s string) float64
}

// Discard is a sized Surface that draws nothing.
type Discard struct {
	W, H float64
}

func (d Discard) Size() (float64, float64)                         { return d.W, d.H }
func (Discard) Clear(Paint)                                        {}
func (Discard) FillCircle(Point, float64, Paint)                   {}
func (Discard) FillDisc(Point, float64, Gradient)                  {}
func (Discard) Polyline([]Point, Paint, float64, []float64)        {}
func (Discard) FillTriangle(Point, Point, Point, Paint)            {}
func (Discard) FillRect(float64, float64, float64, float64, Paint) {}
func (Discard) Text(Point, string, Paint)                          {}
func (Discard) MeasureText(s string) float64                       { return float64(len(s)) * 7 }
