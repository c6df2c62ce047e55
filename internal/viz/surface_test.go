package viz

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/gravitylab/internal/params"
	"github.com/san-kum/gravitylab/internal/scene"
)

func dots(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for b := r - blank; b != 0; b &= b - 1 {
				n++
			}
		}
	}
	return n
}

func TestBrailleSurface_Size(t *testing.T) {
	s := NewBrailleSurface(NewCanvas(100, 30), 5)
	if w, h := s.Size(); w != 1000 || h != 600 {
		t.Errorf("Size = %vx%v, want 1000x600", w, h)
	}
	if p := s.ToScene(0, 0); p.X != 5 || p.Y != 10 {
		t.Errorf("ToScene(0,0) = %+v", p)
	}
}

func TestBrailleSurface_FaintStrokeStillDraws(t *testing.T) {
	c := NewCanvas(20, 5)
	s := NewBrailleSurface(c, 1)
	s.Clear(scene.Background)
	s.Polyline([]scene.Point{{X: 0, Y: 2}, {X: 39, Y: 2}}, scene.RGBA("#3b82f6", 0.08), 1, nil)
	if n := dots(c); n != 40 {
		t.Errorf("dots = %d, want 40", n)
	}
}

func TestBrailleSurface_DashLeavesGaps(t *testing.T) {
	c := NewCanvas(20, 5)
	s := NewBrailleSurface(c, 1)
	s.Polyline([]scene.Point{{X: 0, Y: 2}, {X: 39, Y: 2}}, scene.Solid("#ec4899"), 1, []float64{2, 10})
	if n := dots(c); n < 8 || n > 12 {
		t.Errorf("dashed dots = %d, want four short runs", n)
	}
	for col := 2; col <= 5; col++ {
		if c.Grid[0][col] != blank {
			t.Errorf("gap cell %d inked: %#x", col, c.Grid[0][col])
		}
	}
	if c.Grid[0][0] == blank || c.Grid[0][6] == blank {
		t.Error("dash runs missing")
	}
}

func TestBrailleSurface_WideStrokeThickens(t *testing.T) {
	c := NewCanvas(10, 2)
	s := NewBrailleSurface(c, 1)
	s.Polyline([]scene.Point{{X: 0, Y: 2}, {X: 9, Y: 2}}, scene.Solid("#ef4444"), 3.5, nil)
	if n := dots(c); n != 22 {
		t.Errorf("dots = %d, want 22", n)
	}
}

func TestBrailleSurface_FillRectStopsAtCellEdge(t *testing.T) {
	c := NewCanvas(6, 4)
	s := NewBrailleSurface(c, 1)
	s.Clear(scene.Background)
	base := c.bg[0][0]

	s.FillRect(0, 0, 4, 8, scene.Solid("#ffffff"))
	for row := 0; row < 4; row++ {
		for col := 0; col < 6; col++ {
			tinted := c.bg[row][col] != base
			want := row < 2 && col < 2
			if tinted != want {
				t.Errorf("cell %d,%d tinted=%v, want %v", col, row, tinted, want)
			}
		}
	}

	s.Clear(scene.Background)
	s.FillRect(1, 1, 2, 2, scene.Solid("#ffffff"))
	if c.bg[0][0] == base || c.bg[0][1] == base {
		t.Error("partly covered cells should tint")
	}
	if c.bg[1][0] != base {
		t.Error("row below a rect inside one cell row tinted")
	}
}

func TestBrailleSurface_FillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	s := NewBrailleSurface(c, 1)
	s.FillCircle(scene.Point{X: 10, Y: 10}, 4, scene.Solid("#ffffff"))
	n := dots(c)
	if n < 40 || n > 60 {
		t.Errorf("disc of radius 4 set %d dots", n)
	}
}

func TestBrailleSurface_TextCentred(t *testing.T) {
	c := NewCanvas(20, 4)
	s := NewBrailleSurface(c, 1)
	s.Text(scene.Point{X: 20, Y: 8}, "ABCD", scene.Solid("#ffffff"))
	line := strings.Split(plain(c), "\n")[1]
	if got := strings.Index(line, "ABCD"); got < 0 {
		t.Fatalf("text missing: %q", plain(c))
	}
	if w := s.MeasureText("ABCD"); w != 8 {
		t.Errorf("MeasureText = %v, want 8", w)
	}
}

func TestBrailleSurface_RendersScene(t *testing.T) {
	c := NewCanvas(150, 45)
	s := NewBrailleSurface(c, 8)
	r := scene.NewRenderer(scene.NewStarField(scene.DefaultStars, rand.New(rand.NewSource(1))))
	f := r.Render(s, params.Defaults())
	if !f.Drawn || f.Tier != scene.Wide {
		t.Fatalf("frame = %+v", f)
	}
	out := plain(c)
	if !strings.Contains(out, "F_G: 18N") || !strings.Contains(out, "V_F") {
		t.Errorf("labels missing from canvas")
	}
}
