// Package render draws simulation frames onto a terminal cell grid.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
)

// Glyphs used on the grid.
const (
	BobberChar  = 'o'
	LineChar    = '.'
	SurfaceChar = '~'
	StarChar    = '.'
	MoonChar    = 'O'
	RodChar     = '/'
)

// Fish sprites by facing. Big fish get the long body.
const (
	FishRight    = "><>"
	FishLeft     = "<><"
	BigFishRight = "><(((o>"
	BigFishLeft  = "<o)))><"
	bigScale     = 1.6
)

// Terminal renders frames to a core.Screen.
type Terminal struct {
	screen *core.Screen
}

var _ fishing.Renderer = (*Terminal)(nil)

// NewTerminal creates a renderer for a cols x rows grid.
func NewTerminal(cols, rows int) *Terminal {
	return &Terminal{screen: core.NewScreen(cols, rows)}
}

// Screen returns the grid of the last rendered frame.
func (t *Terminal) Screen() *core.Screen {
	return t.screen
}

// Resize changes the grid size.
func (t *Terminal) Resize(cols, rows int) {
	t.screen.Resize(cols, rows)
}

// String returns the last frame as plain text.
func (t *Terminal) String() string {
	return t.screen.String()
}

// Render implements fishing.Renderer.
func (t *Terminal) Render(f fishing.Frame) {
	s := t.screen
	s.Clear()
	if f.Width <= 0 || f.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}
	p := projector{cols: s.Width(), rows: s.Height(), w: f.Width, h: f.Height}

	t.drawScenery(p, f)
	for _, fv := range f.Fish {
		t.drawFish(p, fv)
	}
	if f.ShowLine {
		t.drawLine(p, f)
	}
	for _, pv := range f.Particles {
		t.drawParticle(p, pv)
	}
	if f.ShowLine {
		bx, by := p.cell(f.Bobber.Pos)
		t.screen.SetColored(bx, by, BobberChar, core.ColorBrightRed)
	}
	t.drawHUD(f)

	switch {
	case f.Phase == fishing.PhaseMenu:
		t.drawTitle(f)
	case f.Result != nil:
		t.drawResult(*f.Result)
	}
}

// projector maps surface pixels to cells.
type projector struct {
	cols, rows int
	w, h       float64
}

func (p projector) cell(v core.Vec2) (int, int) {
	x := int(math.Floor(v.X / p.w * float64(p.cols)))
	y := int(math.Floor(v.Y / p.h * float64(p.rows)))
	return x, y
}

// span converts a horizontal pixel length to cells.
func (p projector) span(px float64) int {
	return int(math.Round(px / p.w * float64(p.cols)))
}

func (t *Terminal) drawScenery(p projector, f fishing.Frame) {
	s := t.screen
	waterLine := catalog.DefaultWaterLine
	if f.Stage != nil {
		waterLine = f.Stage.WaterLine()
	}
	_, surface := p.cell(core.V(0, f.Height*waterLine))

	// Sky: a fixed scatter of stars and the moon.
	for y := 1; y < surface; y++ {
		for x := 0; x < p.cols; x++ {
			if (x*7+y*13)%37 == 0 {
				s.SetColored(x, y, StarChar, core.ColorGray)
			}
		}
	}
	if surface > 2 {
		s.SetColored(p.cols*4/5, 1, MoonChar, core.ColorBrightYellow)
	}

	// Water: the surface line scrolls with the current.
	waterColor := core.ColorBlue
	if f.Stage != nil {
		waterColor = ColorFromHex(f.Stage.WaterColor)
		if waterColor == core.ColorGray || waterColor == core.ColorDefault {
			waterColor = core.ColorBlue
		}
	}
	shift := 0
	if f.Stage != nil {
		shift = int(float64(f.Tick) * f.Stage.Flow / 8)
	}
	for x := 0; x < p.cols; x++ {
		if (x+shift)%3 != 2 {
			s.SetColored(x, surface, SurfaceChar, core.ColorBrightCyan)
		}
	}
	for y := surface + 2; y < p.rows-1; y += 3 {
		for x := 0; x < p.cols; x++ {
			if (x+shift+y*5)%11 == 0 {
				s.SetColored(x, y, SurfaceChar, waterColor)
			}
		}
	}

	tipX, _ := p.cell(core.V(f.Width/2, f.Height))
	s.SetColored(tipX, p.rows-2, RodChar, core.ColorOrange)
}

func (t *Terminal) drawFish(p projector, fv fishing.FishView) {
	sprite := FishLeft
	if fv.FacingRight {
		sprite = FishRight
	}
	if fv.Scale >= bigScale {
		sprite = BigFishLeft
		if fv.FacingRight {
			sprite = BigFishRight
		}
	}

	color := core.ColorWhite
	if fv.Species != nil {
		color = ColorFromHex(fv.Species.Color)
	}
	if fv.State == fishing.FishHooked {
		color = core.ColorBrightRed
	}

	x, y := p.cell(fv.Pos)
	x -= len(sprite) / 2
	t.screen.DrawTextColored(x, y, sprite, color)
}

func (t *Terminal) drawLine(p projector, f fishing.Frame) {
	s := t.screen
	color := core.ColorWhite
	if f.Flash > 0 {
		color = core.ColorBrightYellow
	}

	a, c, b := f.RodTip, f.LineControl(), f.Bobber.Pos
	ax, ay := p.cell(a)
	bx, by := p.cell(b)
	steps := 2 * (abs(bx-ax) + abs(by-ay) + 1)
	for i := 1; i < steps; i++ {
		u := float64(i) / float64(steps)
		q := core.LerpVec(core.LerpVec(a, c, u), core.LerpVec(c, b, u), u)
		x, y := p.cell(q)
		if s.Get(x, y) == ' ' || s.Get(x, y) == StarChar {
			s.SetColored(x, y, LineChar, color)
		}
	}
}

func (t *Terminal) drawParticle(p projector, pv fishing.ParticleView) {
	s := t.screen
	x, y := p.cell(pv.Pos)
	switch pv.Kind {
	case fishing.ParticleRipple:
		r := p.span(pv.Size)
		if r < 1 {
			r = 1
		}
		s.SetColored(x-r, y, '(', core.ColorCyan)
		s.SetColored(x+r, y, ')', core.ColorCyan)
	case fishing.ParticleSplash:
		s.SetColored(x, y, '\'', core.ColorBrightCyan)
	case fishing.ParticleSparkle:
		r := '.'
		if pv.Life > 0.5 {
			r = '*'
		}
		s.SetColored(x, y, r, core.ColorBrightYellow)
	case fishing.ParticleAmbientFall:
		s.SetColored(x, y, ',', core.ColorPink)
	}
}

func (t *Terminal) drawHUD(f fishing.Frame) {
	s := t.screen
	name := ""
	if f.Stage != nil {
		name = f.Stage.NameEn
	}
	left := fmt.Sprintf(" %s ", name)
	right := fmt.Sprintf(" Score %.2f  Book %d/%d ", f.Score, f.CaughtCount, f.SpeciesTotal)
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)
	s.DrawTextColored(s.Width()-len(right), 0, right, core.ColorBrightYellow)

	if f.Phase == fishing.PhaseHooked || f.Phase == fishing.PhaseBroken {
		t.drawTension(f)
	}
	if f.Hint != "" && f.Phase != fishing.PhaseMenu {
		s.DrawTextCentered(s.Height()-1, f.Hint, core.ColorWhite)
	}
}

// TensionGauge renders tension as a fixed-width bar.
func TensionGauge(tension, limit float64, width int) string {
	if limit <= 0 || width <= 0 {
		return ""
	}
	filled := int(math.Round(core.ClampF(tension/limit, 0, 1) * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func (t *Terminal) drawTension(f fishing.Frame) {
	s := t.screen
	const width = 20
	ratio := 0.0
	if f.TensionLimit > 0 {
		ratio = f.Tension / f.TensionLimit
	}
	color := core.ColorBrightGreen
	switch {
	case ratio >= 0.8:
		color = core.ColorBrightRed
	case ratio >= 0.5:
		color = core.ColorYellow
	}
	label := "Tension " + TensionGauge(f.Tension, f.TensionLimit, width)
	s.DrawTextColored(s.Width()-len(label)-1, 1, label, color)
}

func (t *Terminal) drawTitle(f fishing.Frame) {
	s := t.screen
	mid := s.Height() / 2
	box := core.NewRect(s.Width()/2-18, mid-3, 36, 7)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightCyan)
	s.DrawTextCentered(mid-1, "F I S H I N G", core.ColorBrightCyan)
	s.DrawTextCentered(mid+1, "Click or press Enter", core.ColorWhite)
}

func (t *Terminal) drawResult(res fishing.Result) {
	s := t.screen
	mid := s.Height() / 2
	box := core.NewRect(s.Width()/2-16, mid-4, 32, 9)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightYellow)

	name, stars := "?", ""
	color := core.ColorWhite
	if res.Species != nil {
		name, stars = res.Species.NameEn, res.Species.Stars()
		color = ColorFromHex(res.Species.Color)
	}
	s.DrawTextCentered(mid-2, "CAUGHT!", core.ColorBrightYellow)
	s.DrawTextCentered(mid-1, name, color)
	s.DrawTextCentered(mid, stars, core.ColorGold)
	s.DrawTextCentered(mid+1, fmt.Sprintf("%.0f cm  +%.2f", res.Size, res.Points), core.ColorWhite)
	s.DrawTextCentered(mid+3, "Enter to continue", core.ColorGray)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
