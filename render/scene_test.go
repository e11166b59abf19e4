package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/catagotchi/asset"
	"github.com/lixenwraith/catagotchi/pet"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func readRow(screen tcell.Screen, y, x0, x1 int) string {
	var out []rune
	for x := x0; x < x1; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSceneDrawsCenteredLabels(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), nil, layout)

	scene.Draw(View{Stats: pet.Stats{Hunger: 50, Energy: 35, Mood: 30}, Alive: true})

	// "Hunger: 50" is 10 wide, centered on column 8
	if got := readRow(screen, layout.LabelY, 3, 13); got != "Hunger: 50" {
		t.Errorf("Hunger label = %q", got)
	}
	if got := readRow(screen, layout.LabelY, 19, 29); got != "Energy: 35" {
		t.Errorf("Energy label = %q", got)
	}
	// "Mood: 30" is 8 wide, centered on column 40
	if got := readRow(screen, layout.LabelY, 36, 44); got != "Mood: 30" {
		t.Errorf("Mood label = %q", got)
	}
}

func TestSceneLabelsUseFixedStyle(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), nil, layout)

	// Extremes would pick opposite gradient ends if labels followed the value
	scene.Draw(View{Stats: pet.Stats{Hunger: 0, Energy: 100, Mood: 50}, Alive: true})

	for _, x := range []int{layout.HungerX, layout.EnergyX, layout.MoodX} {
		_, _, style, _ := screen.GetContent(x, layout.LabelY)
		if fg, _, _ := style.Decompose(); fg != RgbLabel {
			t.Errorf("Label at column %d has foreground %v, want RgbLabel", x, fg)
		}
	}
}

func TestSceneDrawsMeters(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), nil, layout)

	scene.Draw(View{Stats: pet.Stats{Hunger: 50, Energy: 100, Mood: 0}, Alive: true})

	row := layout.LabelY + 1
	tests := []struct {
		name string
		x    int
		want string
	}{
		{"half", layout.HungerX, "█████░░░░░"},
		{"full", layout.EnergyX, "██████████"},
		{"empty", layout.MoodX, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := tt.x - meterWidth/2
			if got := readRow(screen, row, left, left+meterWidth); got != tt.want {
				t.Errorf("Meter = %q, want %q", got, tt.want)
			}
		})
	}

	_, _, style, _ := screen.GetContent(layout.EnergyX, row)
	if fg, _, _ := style.Decompose(); fg != LevelColor(100) {
		t.Errorf("Full meter foreground %v, want LevelColor(100)", fg)
	}
}

func TestSceneUnreadyBackgroundDrawsNothing(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	// A directory never decodes, so the background never becomes ready
	bg := asset.LoadImage(t.TempDir(), layout.ImageW, layout.ImageH)
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), bg, layout)

	scene.Draw(View{Stats: pet.DefaultStats(), Alive: true})

	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected blank cell for unready background, got %q", r)
	}
}

func TestSceneDrawsBackground(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	bg := asset.FromImage(solidImage(96, 40, color.RGBA{R: 200, A: 255}), layout.ImageW, layout.ImageH)
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), bg, layout)

	scene.Draw(View{Stats: pet.DefaultStats(), Alive: true})

	for _, pt := range [][2]int{{0, 0}, {layout.ImageW - 1, layout.ImageH - 1}} {
		if r, _, _, _ := screen.GetContent(pt[0], pt[1]); r != halfBlock {
			t.Errorf("Expected half block at %v, got %q", pt, r)
		}
	}
	if r, _, _, _ := screen.GetContent(layout.ImageW, 0); r != ' ' {
		t.Errorf("Expected image clipped to its box, got %q", r)
	}
}

func TestSceneDeathBanner(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), nil, layout)

	scene.Draw(View{Stats: pet.Stats{}, Alive: false, Face: pet.FaceDead})

	cx, cy := layout.ImageX+layout.ImageW/2, layout.ImageY+layout.ImageH/2
	if got := readRow(screen, cy, cx-4, cx+4); got != " R.I.P. " {
		t.Errorf("Death banner = %q", got)
	}
	if got := readRow(screen, layout.StatusY, 0, 5); got != "=x.x=" {
		t.Errorf("Status face = %q", got)
	}
}

func TestSceneStatusShowsHeldKeys(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), nil, layout)

	scene.Draw(View{Stats: pet.DefaultStats(), Alive: true, Held: []rune{'f', 's'}, Muted: true})

	row := readRow(screen, layout.StatusY, 0, 80)
	for _, want := range []string{"held:FS", "muted", "feed:f"} {
		if !contains(row, want) {
			t.Errorf("Status line %q missing %q", row, want)
		}
	}
}

func TestSceneKeyHints(t *testing.T) {
	screen := newTestScreen(t)
	layout := DefaultLayout()
	scene := NewScene(NewCanvas(NewTcellSurface(screen)), nil, layout)

	scene.SetKeyHints('e', 'j', 'z')
	scene.Draw(View{Stats: pet.DefaultStats(), Alive: true})

	row := readRow(screen, layout.StatusY, 0, 80)
	if !contains(row, "feed:e play:j sleep:z") {
		t.Errorf("Status line %q missing rebound keys", row)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
