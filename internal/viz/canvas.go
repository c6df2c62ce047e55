package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = rune(0x2800)

// Canvas is a braille raster with one foreground and one background colour
// per cell, plus a text layer drawn over the dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	fg   [][]colorful.Color
	bg   [][]colorful.Color
	text [][]rune
	ink  [][]colorful.Color
	base colorful.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid. Contents are dropped.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.fg = make([][]colorful.Color, h)
	c.bg = make([][]colorful.Color, h)
	c.text = make([][]rune, h)
	c.ink = make([][]colorful.Color, h)
	for i := 0; i < h; i++ {
		c.Grid[i] = make([]rune, w)
		c.fg[i] = make([]colorful.Color, w)
		c.bg[i] = make([]colorful.Color, w)
		c.text[i] = make([]rune, w)
		c.ink[i] = make([]colorful.Color, w)
	}
	c.Clear()
}

// DotSize is the canvas size in sub-pixels.
func (c *Canvas) DotSize() (int, int) { return c.Width * 2, c.Height * 4 }

// SetColor sets a pixel and makes col the cell's foreground. The last
// colour written to a cell wins.
func (c *Canvas) SetColor(x, y int, col colorful.Color) {
	if row, cl, ok := c.cell(x, y); ok {
		c.Grid[row][cl] |= rune(pixelMap[y%4][x%2])
		c.fg[row][cl] = col
	}
}

func (c *Canvas) cell(x, y int) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Clear resets dots, text and cell colours to the current base colour.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.fg[i][j] = colorful.Color{R: 1, G: 1, B: 1}
			c.bg[i][j] = c.base
			c.text[i][j] = 0
		}
	}
}

// Fill sets the base colour and clears the canvas to it.
func (c *Canvas) Fill(base colorful.Color) {
	c.base = base
	c.Clear()
}

// Tint sets the background of a cell.
func (c *Canvas) Tint(col, row int, bg colorful.Color) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.bg[row][col] = bg
}

// PutText writes s starting at the given cell. Characters past the right
// edge are dropped.
func (c *Canvas) PutText(col, row int, s string, ink colorful.Color) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		if col >= 0 {
			c.text[row][col] = r
			c.ink[row][col] = ink
		}
		col++
	}
}

// DrawLineColor draws a line between two dots using Bresenham's algorithm.
func (c *Canvas) DrawLineColor(x0, y0, x1, y1 int, col colorful.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetColor(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rune is the character shown at a cell: text wins over dots.
func (c *Canvas) Rune(col, row int) rune {
	if t := c.text[row][col]; t != 0 {
		return t
	}
	return c.Grid[row][col]
}

// Render is the canvas with colours, one lipgloss style per run of cells
// sharing foreground and background.
func (c *Canvas) Render() string {
	var b strings.Builder
	var run strings.Builder
	for row := 0; row < c.Height; row++ {
		var curFg, curBg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(curFg)).Background(lipgloss.Color(curBg))
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.Width; col++ {
			fg := c.fg[row][col]
			if c.text[row][col] != 0 {
				fg = c.ink[row][col]
			}
			fh, bh := fg.Clamped().Hex(), c.bg[row][col].Clamped().Hex()
			if fh != curFg || bh != curBg {
				flush()
				curFg, curBg = fh, bh
			}
			run.WriteRune(c.Rune(col, row))
		}
		flush()
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
