package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/catagotchi/asset"
	"github.com/lixenwraith/catagotchi/pet"
)

// Layout places every scene element at fixed cell coordinates
type Layout struct {
	ImageX int `toml:"image_x"`
	ImageY int `toml:"image_y"`
	ImageW int `toml:"image_width"`
	ImageH int `toml:"image_height"`

	// Label anchors; labels are centered on their column with a meter on the row below
	LabelY     int  `toml:"label_row"`
	HungerX    int  `toml:"hunger_column"`
	EnergyX    int  `toml:"energy_column"`
	MoodX      int  `toml:"mood_column"`
	StatusY    int  `toml:"status_row"`
	ShowStatus bool `toml:"show_status"`
}

// DefaultLayout fits an 80x24 terminal
func DefaultLayout() Layout {
	return Layout{
		ImageX:     0,
		ImageY:     0,
		ImageW:     48,
		ImageH:     20,
		LabelY:     21,
		HungerX:    8,
		EnergyX:    24,
		MoodX:      40,
		StatusY:    23,
		ShowStatus: true,
	}
}

// Meter drawn one row below each label
const (
	meterWidth = 10
	meterFull  = '█'
	meterEmpty = '░'
)

// View is the per-frame snapshot the scene draws
type View struct {
	Stats pet.Stats
	Alive bool
	Face  pet.Face
	Held  []rune
	Muted bool
	Ticks uint64
}

// ViewOf snapshots a cat
func ViewOf(c *pet.Cat) View {
	return View{
		Stats: c.Stats(),
		Alive: c.IsAlive(),
		Face:  c.Face(),
	}
}

// Scene is the render step: clear, background art, three labels with meters, status line
type Scene struct {
	canvas     *Canvas
	background *asset.Image
	layout     Layout
	labelFont  Font
	hints      string
}

// NewScene binds a canvas, its background and a layout
// background may be nil or still loading
func NewScene(canvas *Canvas, background *asset.Image, layout Layout) *Scene {
	return &Scene{
		canvas:     canvas,
		background: background,
		layout:     layout,
		labelFont: Font{
			Style: tcell.StyleDefault.Foreground(RgbLabel).Bold(true),
			Align: AlignCenter,
		},
		hints: keyHints('f', 'p', 's'),
	}
}

// SetKeyHints updates the status line for rebound pet keys
func (s *Scene) SetKeyHints(feed, play, sleep rune) {
	s.hints = keyHints(feed, play, sleep)
}

func keyHints(feed, play, sleep rune) string {
	return fmt.Sprintf("feed:%c play:%c sleep:%c quit:q", feed, play, sleep)
}

// Draw renders one frame and flushes it
func (s *Scene) Draw(v View) {
	l := s.layout
	s.canvas.Clear()

	s.canvas.DrawImage(s.background, l.ImageX, l.ImageY, l.ImageW, l.ImageH)

	s.drawLabel(fmt.Sprintf("Hunger: %d", v.Stats.Hunger), l.HungerX, v.Stats.Hunger)
	s.drawLabel(fmt.Sprintf("Energy: %d", v.Stats.Energy), l.EnergyX, v.Stats.Energy)
	s.drawLabel(fmt.Sprintf("Mood: %d", v.Stats.Mood), l.MoodX, v.Stats.Mood)

	if !v.Alive {
		s.drawDeath()
	}
	if l.ShowStatus {
		s.drawStatus(v)
	}

	s.canvas.Show()
}

func (s *Scene) drawLabel(text string, x, value int) {
	s.canvas.DrawText(text, x, s.layout.LabelY, s.labelFont)
	s.drawMeter(x, value)
}

// drawMeter draws a bar under a label, filled in proportion to value
func (s *Scene) drawMeter(x, value int) {
	if value < pet.MinStat {
		value = pet.MinStat
	}
	if value > pet.MaxStat {
		value = pet.MaxStat
	}
	filled := value * meterWidth / pet.MaxStat

	left := x - meterWidth/2
	fill := tcell.StyleDefault.Foreground(LevelColor(value))
	empty := tcell.StyleDefault.Foreground(RgbMuted)
	for i := 0; i < meterWidth; i++ {
		if i < filled {
			s.canvas.set(left+i, s.layout.LabelY+1, meterFull, fill)
		} else {
			s.canvas.set(left+i, s.layout.LabelY+1, meterEmpty, empty)
		}
	}
}

func (s *Scene) drawDeath() {
	l := s.layout
	font := Font{
		Style: tcell.StyleDefault.Foreground(RgbDeath).Background(RgbBackground).Bold(true),
		Align: AlignCenter,
	}
	s.canvas.DrawText(" R.I.P. ", l.ImageX+l.ImageW/2, l.ImageY+l.ImageH/2, font)
}

func (s *Scene) drawStatus(v View) {
	font := Font{Style: tcell.StyleDefault.Foreground(RgbStatusBar)}

	x := s.canvas.DrawText(v.Face.Glyph()+" "+v.Face.String(), 0, s.layout.StatusY, font)
	x++

	x += s.canvas.DrawText(s.hints, x, s.layout.StatusY, font)
	x++

	if len(v.Held) > 0 {
		held := Font{Style: tcell.StyleDefault.Foreground(RgbHeldKey).Bold(true)}
		x += s.canvas.DrawText("held:"+strings.ToUpper(string(v.Held)), x, s.layout.StatusY, held)
		x++
	}
	if v.Muted {
		s.canvas.DrawText("muted", x, s.layout.StatusY, Font{Style: tcell.StyleDefault.Foreground(RgbMuted)})
	}
}
