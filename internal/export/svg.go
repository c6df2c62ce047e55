package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/gravitylab/internal/scene"
)

// SVG is a scene.Surface that records a frame as an SVG document.
type SVG struct {
	W, H  float64
	sb    strings.Builder
	grads int
}

func NewSVG(w, h float64) *SVG {
	return &SVG{W: w, H: h}
}

func (s *SVG) Size() (float64, float64) { return s.W, s.H }

func (s *SVG) Clear(bg scene.Paint) {
	s.sb.Reset()
	s.grads = 0
	fmt.Fprintf(&s.sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", bg.C.Hex())
}

func (s *SVG) FillCircle(c scene.Point, r float64, p scene.Paint) {
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.2f" %s/>`+"\n", c.X, c.Y, r, fill(p))
}

// FillDisc defines a radialGradient in user space and fills the disc with
// it. The focal circle maps to fx, fy and fr.
func (s *SVG) FillDisc(c scene.Point, r float64, g scene.Gradient) {
	if len(g.Stops) == 0 {
		return
	}
	s.grads++
	id := fmt.Sprintf("g%d", s.grads)
	fmt.Fprintf(&s.sb, `<defs><radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%.1f" cy="%.1f" r="%.2f" fx="%.1f" fy="%.1f" fr="%.2f">`,
		id, g.C.X, g.C.Y, g.R1, g.F.X, g.F.Y, g.R0)
	for _, st := range g.Stops {
		fmt.Fprintf(&s.sb, `<stop offset="%g" stop-color="%s" stop-opacity="%.3f"/>`, st.Offset, st.Paint.C.Hex(), st.Paint.A)
	}
	s.sb.WriteString("</radialGradient></defs>\n")
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="url(#%s)"/>`+"\n", c.X, c.Y, r, id)
}

func (s *SVG) Polyline(pts []scene.Point, p scene.Paint, width float64, dash []float64) {
	if len(pts) < 2 {
		return
	}
	var d strings.Builder
	for i, pt := range pts {
		if i == 0 {
			fmt.Fprintf(&d, "M%.1f,%.1f", pt.X, pt.Y)
		} else {
			fmt.Fprintf(&d, " L%.1f,%.1f", pt.X, pt.Y)
		}
	}
	dashAttr := ""
	if len(dash) > 0 {
		parts := make([]string, len(dash))
		for i, v := range dash {
			parts[i] = fmt.Sprintf("%g", v)
		}
		dashAttr = fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	fmt.Fprintf(&s.sb, `<path fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="%g"%s d="%s"/>`+"\n",
		p.C.Hex(), p.A, width, dashAttr, d.String())
}

func (s *SVG) FillTriangle(a, b, c scene.Point, p scene.Paint) {
	fmt.Fprintf(&s.sb, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" %s/>`+"\n", a.X, a.Y, b.X, b.Y, c.X, c.Y, fill(p))
}

func (s *SVG) FillRect(x, y, w, h float64, p scene.Paint) {
	fmt.Fprintf(&s.sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", x, y, w, h, fill(p))
}

func (s *SVG) Text(at scene.Point, str string, p scene.Paint) {
	fmt.Fprintf(&s.sb, `<text x="%.1f" y="%.1f" text-anchor="middle" font-family="monospace" font-weight="900" font-size="11" %s>%s</text>`+"\n",
		at.X, at.Y, fill(p), html.EscapeString(str))
}

// MeasureText assumes an 11px monospace face.
func (s *SVG) MeasureText(str string) float64 {
	return float64(len(str)) * 6.6
}

// WriteTo writes the complete document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
%s</svg>
`, s.W, s.H, s.W, s.H, s.sb.String())
	return int64(n), err
}

func (s *SVG) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

func fill(p scene.Paint) string {
	return fmt.Sprintf(`fill="%s" fill-opacity="%.3f"`, p.C.Hex(), p.A)
}
