package render

import "github.com/gdamore/tcell/v2"

// Surface is the raster the scene is drawn on: a grid of styled cells
type Surface interface {
	Size() (width, height int)
	Clear()
	SetCell(x, y int, r rune, style tcell.Style)
	Show()
}

// TcellSurface adapts a tcell.Screen
type TcellSurface struct {
	screen tcell.Screen
}

// NewTcellSurface wraps an initialized screen
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{screen: screen}
}

func (s *TcellSurface) Size() (int, int) { return s.screen.Size() }
func (s *TcellSurface) Clear()           { s.screen.Clear() }
func (s *TcellSurface) Show()            { s.screen.Show() }

func (s *TcellSurface) SetCell(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Sync repaints the whole terminal, used after resize or Ctrl+L
func (s *TcellSurface) Sync() {
	s.screen.Sync()
}
