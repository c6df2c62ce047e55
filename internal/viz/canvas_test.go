package viz

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// plain is the canvas without colour, one line per row.
func plain(c *Canvas) string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			b.WriteRune(c.Rune(col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var white = colorful.Color{R: 1, G: 1, B: 1}

func TestCanvas_SetColorMapsBrailleBits(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetColor(0, 0, white)
	c.SetColor(1, 3, white)
	if got := c.Grid[0][0]; got != blank|0x1|0x80 {
		t.Errorf("cell = %#x, want %#x", got, blank|0x1|0x80)
	}
	c.SetColor(2, 0, white)
	if got := c.Grid[0][1]; got != blank|0x1 {
		t.Errorf("second cell = %#x", got)
	}
}

func TestCanvas_OutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(3, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 8}, {100, 100}} {
		c.SetColor(p[0], p[1], white)
	}
	if strings.ContainsFunc(plain(c), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Errorf("out of range dots landed on canvas:\n%s", plain(c))
	}
}

func TestCanvas_DrawLineColor(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLineColor(0, 0, 7, 0, white)
	for col := 0; col < 4; col++ {
		if c.Grid[0][col] != blank|0x1|0x8 {
			t.Errorf("col %d = %#x", col, c.Grid[0][col])
		}
	}
	c.Clear()
	c.DrawLineColor(1, 3, 1, 0, white)
	if got := c.Grid[0][0]; got != blank|0x8|0x10|0x20|0x80 {
		t.Errorf("vertical line = %#x", got)
	}
}

func TestCanvas_TextOverlaysDots(t *testing.T) {
	c := NewCanvas(6, 1)
	c.SetColor(0, 0, white)
	c.PutText(1, 0, "HELLO!!", white)
	if got := plain(c); got != string(blank|0x1)+"HELLO\n" {
		t.Errorf("plain = %q", got)
	}
}

func TestCanvas_Resize(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetColor(1, 1, white)
	c.Resize(10, 3)
	if w, h := c.DotSize(); w != 20 || h != 12 {
		t.Errorf("DotSize = %dx%d", w, h)
	}
	if c.Grid[0][0] != blank {
		t.Error("resize should clear")
	}
}

func TestCanvas_RenderKeepsText(t *testing.T) {
	c := NewCanvas(8, 2)
	c.Fill(colorful.Color{R: 0.01, G: 0.02, B: 0.09})
	c.PutText(0, 1, "F_G", colorful.Color{R: 1, G: 1, B: 1})
	out := c.Render()
	if !strings.Contains(out, "F_G") {
		t.Errorf("render lost text: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("render has %d newlines, want 1", n)
	}
}

func TestThousands(t *testing.T) {
	tests := map[int64]string{0: "0", 999: "999", 1000: "1,000", 385000: "385,000", 1234567: "1,234,567", -4200: "-4,200"}
	for in, want := range tests {
		if got := Thousands(in); got != want {
			t.Errorf("Thousands(%d) = %q, want %q", in, got, want)
		}
	}
}
