package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/catagotchi/asset"
)

// Align is horizontal text alignment relative to the anchor x
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font is the text style: terminal cells have one glyph size, so only style and alignment vary
type Font struct {
	Style tcell.Style
	Align Align
}

// halfBlock draws the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// Canvas provides immediate-mode drawing primitives over a Surface
type Canvas struct {
	surface       Surface
	width, height int
}

// NewCanvas sizes the canvas to the surface
func NewCanvas(s Surface) *Canvas {
	c := &Canvas{surface: s}
	c.Resize()
	return c
}

// Resize re-reads the surface size
func (c *Canvas) Resize() {
	c.width, c.height = c.surface.Size()
}

// Size returns the canvas size in cells
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear wipes the whole surface
func (c *Canvas) Clear() {
	c.surface.Clear()
}

// ClearRect blanks a region with style
func (c *Canvas) ClearRect(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.set(col, row, ' ', style)
		}
	}
}

// DrawImage blits img into the w x h box at x,y
// Draws nothing while the image is still loading or failed to load
func (c *Canvas) DrawImage(img *asset.Image, x, y, w, h int) {
	if img == nil || !img.Ready() {
		return
	}
	cells := img.Cells()
	iw, ih := img.Width(), img.Height()

	for row := 0; row < h && row < ih; row++ {
		for col := 0; col < w && col < iw; col++ {
			cell := cells[row*iw+col]
			if cell.Clear {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Top)).
				Background(toTcell(cell.Bottom))
			c.set(x+col, y+row, halfBlock, style)
		}
	}
}

// DrawText writes text anchored at x,y; returns the cells used
func (c *Canvas) DrawText(text string, x, y int, font Font) int {
	w := runewidth.StringWidth(text)
	switch font.Align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}

	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		c.set(col, y, r, font.Style)
		col += rw
	}
	return w
}

// Show flushes to the terminal
func (c *Canvas) Show() {
	c.surface.Show()
}

// set clips to the canvas
func (c *Canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.surface.SetCell(x, y, r, style)
}

func toTcell(rgba color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
