package render_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/render"
)

func baseFrame() fishing.Frame {
	cat := catalog.Default()
	return fishing.Frame{
		Width:        800,
		Height:       600,
		Phase:        fishing.PhaseWaiting,
		Stage:        cat.Stage("pond"),
		TensionLimit: 100,
		RodTip:       core.V(400, 600),
		SpeciesTotal: len(cat.AllSpecies()),
	}
}

func TestRenderBobber(t *testing.T) {
	term := render.NewTerminal(80, 24)
	f := baseFrame()
	f.ShowLine = true
	f.Bobber = fishing.Bobber{Pos: core.V(400, 300), Submerged: true}

	term.Render(f)

	if got := term.Screen().Get(40, 12); got != render.BobberChar {
		t.Errorf("cell (40,12) = %q, expected the bobber", got)
	}

	line := 0
	for y := 13; y < 23; y++ {
		if strings.ContainsRune(term.Screen().Row(y), render.LineChar) {
			line++
		}
	}
	if line == 0 {
		t.Error("no fishing line drawn below the bobber")
	}
}

func TestRenderNoLineWhenIdle(t *testing.T) {
	term := render.NewTerminal(80, 24)
	f := baseFrame()
	f.Phase = fishing.PhaseIdle
	f.Bobber = fishing.Bobber{Pos: core.V(400, 300)}

	term.Render(f)
	if got := term.Screen().Get(40, 12); got == render.BobberChar {
		t.Error("bobber drawn while no cast is active")
	}
}

func TestRenderFishFacing(t *testing.T) {
	koi := catalog.Default().Species("koi")
	tests := []struct {
		name   string
		right  bool
		scale  float64
		sprite string
	}{
		{"small right", true, 1.0, render.FishRight},
		{"small left", false, 1.0, render.FishLeft},
		{"big right", true, 2.0, render.BigFishRight},
		{"big left", false, 2.0, render.BigFishLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term := render.NewTerminal(80, 24)
			f := baseFrame()
			f.Fish = []fishing.FishView{{
				Pos:         core.V(400, 450),
				Species:     koi,
				Scale:       tc.scale,
				FacingRight: tc.right,
			}}
			term.Render(f)

			row := term.Screen().Row(18)
			if !strings.Contains(row, tc.sprite) {
				t.Errorf("row 18 = %q, expected sprite %q", row, tc.sprite)
			}
		})
	}
}

func TestRenderResultOverlay(t *testing.T) {
	term := render.NewTerminal(80, 24)
	f := baseFrame()
	f.Phase = fishing.PhaseCaught
	f.Result = &fishing.Result{Species: catalog.Default().Species("suzuki"), Size: 60, Points: 0.9}

	term.Render(f)
	out := term.String()
	for _, want := range []string{"CAUGHT!", "Sea Bass", "60 cm", "+0.90"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHUD(t *testing.T) {
	term := render.NewTerminal(80, 24)
	f := baseFrame()
	f.Phase = fishing.PhaseHooked
	f.Score = 12.5
	f.CaughtCount = 3
	f.Tension = 50
	f.Hint = fishing.HintFight

	term.Render(f)
	s := term.Screen()
	if top := s.Row(0); !strings.Contains(top, "Old Pond") || !strings.Contains(top, "Score 12.50") || !strings.Contains(top, "Book 3/13") {
		t.Errorf("HUD row = %q", top)
	}
	if !strings.Contains(s.Row(1), "[##########----------]") {
		t.Errorf("tension row = %q", s.Row(1))
	}
	if !strings.Contains(s.Row(23), fishing.HintFight) {
		t.Errorf("hint row = %q", s.Row(23))
	}
}

func TestRenderTitle(t *testing.T) {
	term := render.NewTerminal(80, 24)
	f := baseFrame()
	f.Phase = fishing.PhaseMenu
	term.Render(f)
	if !strings.Contains(term.String(), "F I S H I N G") {
		t.Error("title overlay missing in the menu")
	}
}

func TestTensionGauge(t *testing.T) {
	tests := []struct {
		tension, limit float64
		width          int
		want           string
	}{
		{0, 100, 4, "[----]"},
		{100, 100, 4, "[####]"},
		{50, 100, 4, "[##--]"},
		{150, 100, 4, "[####]"},
		{10, 0, 4, ""},
	}
	for _, tc := range tests {
		if got := render.TensionGauge(tc.tension, tc.limit, tc.width); got != tc.want {
			t.Errorf("TensionGauge(%v, %v, %d) = %q, expected %q", tc.tension, tc.limit, tc.width, got, tc.want)
		}
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want core.Color
	}{
		{"gold", core.ColorGold},
		{"pattern", core.ColorBrightWhite},
		{"#ff4400", core.ColorOrange},
		{"#111111", core.ColorGray},
		{"#e0e0e0", core.ColorBrightWhite},
		{"#a8c66c", core.ColorBrightGreen},
		{"#2c3e50", core.ColorBlue},
		{"not-a-color", core.ColorDefault},
	}
	for _, tc := range tests {
		if got := render.ColorFromHex(tc.in); got != tc.want {
			t.Errorf("ColorFromHex(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestRGBA(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff4400", color.RGBA{0xff, 0x44, 0x00, 0xff}},
		{"#2c3e50", color.RGBA{0x2c, 0x3e, 0x50, 0xff}},
		{"gold", color.RGBA{0xff, 0xd7, 0x00, 0xff}},
		{"#12", fallback},
	}
	for _, tc := range tests {
		if got := render.RGBA(tc.in, fallback); got != tc.want {
			t.Errorf("RGBA(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
