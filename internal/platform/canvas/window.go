// Package canvas runs the fishing simulation in a desktop window with
// Ebitengine. The simulation drives at the window's TPS; drawing reads
// the same fishing.Frame the terminal renderer uses.
package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/render"
)

var (
	colorLine    = color.RGBA{0xff, 0xff, 0xff, 0x99}
	colorRod     = color.RGBA{0x5a, 0x40, 0x2a, 0xff}
	colorBobber  = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	colorPetal   = color.RGBA{0xff, 0xb7, 0xc5, 0xcc}
	colorSparkle = color.RGBA{0xff, 0xf0, 0x96, 0xff}
	colorRipple  = color.RGBA{0xff, 0xff, 0xff, 0x80}
	colorSplash  = color.RGBA{0xdd, 0xee, 0xff, 0xcc}
	colorShade   = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	colorDefault = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// lineSegments is how many straight segments approximate the line curve.
const lineSegments = 24

var stageKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Window adapts a fishing.Game to ebiten.Game.
type Window struct {
	game    *fishing.Game
	cat     *catalog.Catalog
	width   int
	height  int
	started bool
	paused  bool

	touches []ebiten.TouchID
	touch   ebiten.TouchID // Finger holding the line, -1 when none
}

var _ ebiten.Game = (*Window)(nil)

// New wraps game for a window of the given initial size.
func New(game *fishing.Game, cat *catalog.Catalog, width, height int) *Window {
	return &Window{
		game:   game,
		cat:    cat,
		width:  width,
		height: height,
		touch:  -1,
	}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || w.game.Closed() {
		w.game.Close()
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	px, py := float64(x), float64(y)
	w.game.SetInput(core.PointerMove(px, py))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		w.press(px, py)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		w.game.SetInput(core.PointerRelease())
	}
	w.updateTouch()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.togglePause()
	}
	ids := w.cat.StageIDs()
	for i, k := range stageKeys {
		if i < len(ids) && inpututil.IsKeyJustPressed(k) {
			if w.game.ChangeStage(ids[i]) {
				w.started, w.paused = true, false
			}
		}
	}

	w.game.Update(float64(w.width), float64(w.height))
	return nil
}

// updateTouch treats the first finger down like the left mouse button.
func (w *Window) updateTouch() {
	if w.touch >= 0 {
		if inpututil.IsTouchJustReleased(w.touch) {
			w.touch = -1
			w.game.SetInput(core.PointerRelease())
			return
		}
		x, y := ebiten.TouchPosition(w.touch)
		w.game.SetInput(core.PointerMove(float64(x), float64(y)))
		return
	}

	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	if len(w.touches) == 0 {
		return
	}
	w.touch = w.touches[0]
	x, y := ebiten.TouchPosition(w.touch)
	w.press(float64(x), float64(y))
}

func (w *Window) press(x, y float64) {
	switch {
	case !w.started:
		w.game.Start()
		w.started = true
	case w.paused:
		w.togglePause()
	case w.game.Phase() == fishing.PhaseCaught:
		w.game.DismissResult()
	default:
		w.game.SetInput(core.PointerPress(x, y))
	}
}

func (w *Window) togglePause() {
	if !w.started {
		return
	}
	if w.paused {
		w.game.CloseMenu()
	} else {
		w.game.OpenMenu()
	}
	w.paused = !w.paused
}

// Layout implements ebiten.Game. The simulation surface follows the
// window size one to one.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	f := w.game.Frame(float64(w.width), float64(w.height))

	w.drawScenery(screen, f)
	for _, fv := range f.Fish {
		drawFish(screen, fv)
	}
	if f.ShowLine {
		drawLine(screen, f)
	}
	for _, pv := range f.Particles {
		drawParticle(screen, pv)
	}
	if f.ShowLine {
		vector.DrawFilledCircle(screen, float32(f.Bobber.Pos.X), float32(f.Bobber.Pos.Y), 5, colorBobber, true)
	}
	if f.Flash > 0 {
		alpha := uint8(f.Flash * 0x80)
		vector.DrawFilledRect(screen, 0, 0, float32(f.Width), float32(f.Height), color.RGBA{alpha, alpha, alpha, alpha}, false)
	}
	w.drawHUD(screen, f)

	switch {
	case f.Phase == fishing.PhaseMenu:
		drawPanel(screen, f, "F I S H I N G\n\nClick to start")
	case f.Result != nil:
		sp := f.Result.Species
		drawPanel(screen, f, fmt.Sprintf("CAUGHT!\n\n%s %s\n%s\n%.0f cm  +%.2f\n\nClick to continue",
			sp.NameEn, sp.Name, sp.Stars(), f.Result.Size, f.Result.Points))
	}
}

func (w *Window) drawScenery(screen *ebiten.Image, f fishing.Frame) {
	st := f.Stage
	stops := make([]color.RGBA, len(st.Gradient))
	for i, hex := range st.Gradient {
		stops[i] = render.RGBA(hex, colorDefault)
	}
	const band = 4
	for y := 0.0; y < f.Height; y += band {
		vector.DrawFilledRect(screen, 0, float32(y), float32(f.Width), band, gradientAt(stops, y/f.Height), false)
	}

	water := f.Height * st.WaterLine()
	wc := render.RGBA(st.WaterColor, colorDefault)
	wc.A = 0xb0
	vector.DrawFilledRect(screen, 0, float32(water), float32(f.Width), float32(f.Height-water), wc, false)
	vector.StrokeLine(screen, 0, float32(water), float32(f.Width), float32(water), 1, colorRipple, false)

	vector.StrokeLine(screen, float32(f.Width/2), float32(f.Height), float32(f.RodTip.X), float32(f.RodTip.Y), 4, colorRod, true)
}

// gradientAt samples evenly spaced color stops at t in [0, 1].
func gradientAt(stops []color.RGBA, t float64) color.RGBA {
	switch len(stops) {
	case 0:
		return colorDefault
	case 1:
		return stops[0]
	}
	pos := core.ClampF(t, 0, 1) * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	u := pos - float64(i)
	a, b := stops[i], stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*u)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xff}
}

func drawFish(screen *ebiten.Image, fv fishing.FishView) {
	c := render.RGBA(fv.Species.Color, colorDefault)
	c.A = 0xc0
	length := fv.Size * fv.Scale
	half := length / 2
	sin, cos := math.Sincos(fv.Angle)

	// Body as a row of circles along the heading, tail behind.
	for i := -2; i <= 2; i++ {
		d := float64(i) * half / 3
		r := float32(half / 3 * (1 - math.Abs(float64(i))/4))
		vector.DrawFilledCircle(screen, float32(fv.Pos.X+cos*d), float32(fv.Pos.Y+sin*d), r, c, true)
	}
	tx, ty := fv.Pos.X-cos*half, fv.Pos.Y-sin*half
	fin := half / 3
	vector.StrokeLine(screen, float32(tx), float32(ty), float32(tx-cos*fin-sin*fin), float32(ty-sin*fin+cos*fin), 2, c, true)
	vector.StrokeLine(screen, float32(tx), float32(ty), float32(tx-cos*fin+sin*fin), float32(ty-sin*fin-cos*fin), 2, c, true)
}

func drawLine(screen *ebiten.Image, f fishing.Frame) {
	p0, p2 := f.RodTip, f.Bobber.Pos
	p1 := f.LineControl()
	prev := p0
	for i := 1; i <= lineSegments; i++ {
		t := float64(i) / lineSegments
		u := 1 - t
		next := core.V(
			u*u*p0.X+2*u*t*p1.X+t*t*p2.X,
			u*u*p0.Y+2*u*t*p1.Y+t*t*p2.Y,
		)
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y), 1, colorLine, true)
		prev = next
	}
}

func drawParticle(screen *ebiten.Image, pv fishing.ParticleView) {
	x, y := float32(pv.Pos.X), float32(pv.Pos.Y)
	size := float32(math.Max(pv.Size, 0.5))
	fade := func(c color.RGBA) color.RGBA {
		a := core.ClampF(pv.Life, 0, 1)
		return color.RGBA{uint8(float64(c.R) * a), uint8(float64(c.G) * a), uint8(float64(c.B) * a), uint8(float64(c.A) * a)}
	}
	switch pv.Kind {
	case fishing.ParticleRipple:
		vector.StrokeCircle(screen, x, y, size, 1, fade(colorRipple), true)
	case fishing.ParticleSplash:
		vector.DrawFilledCircle(screen, x, y, size, fade(colorSplash), true)
	case fishing.ParticleSparkle:
		vector.DrawFilledCircle(screen, x, y, size, fade(colorSparkle), true)
	default:
		vector.DrawFilledCircle(screen, x, y, size, colorPetal, true)
	}
}

func (w *Window) drawHUD(screen *ebiten.Image, f fishing.Frame) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %s", f.Stage.NameEn, f.Stage.Name), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %.2f  Book %d/%d", f.Score, f.CaughtCount, f.SpeciesTotal), int(f.Width)-200, 8)
	if f.Hint != "" {
		ebitenutil.DebugPrintAt(screen, f.Hint, 8, int(f.Height)-20)
	}

	if f.Phase != fishing.PhaseHooked || f.TensionLimit <= 0 {
		return
	}
	const barW, barH = 200, 10
	x := float32(f.Width/2 - barW/2)
	ratio := float32(core.ClampF(f.Tension/f.TensionLimit, 0, 1))
	fill := color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	switch {
	case ratio >= 0.8:
		fill = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	case ratio >= 0.5:
		fill = color.RGBA{0xf1, 0xc4, 0x0f, 0xff}
	}
	vector.DrawFilledRect(screen, x, 30, barW, barH, colorShade, false)
	vector.DrawFilledRect(screen, x, 30, barW*ratio, barH, fill, false)
}

func drawPanel(screen *ebiten.Image, f fishing.Frame, text string) {
	const pw, ph = 240, 120
	x, y := f.Width/2-pw/2, f.Height/2-ph/2
	vector.DrawFilledRect(screen, float32(x), float32(y), pw, ph, colorShade, false)
	vector.StrokeRect(screen, float32(x), float32(y), pw, ph, 1, colorLine, false)
	ebitenutil.DebugPrintAt(screen, text, int(x)+16, int(y)+12)
}

// Run opens the window and blocks until it is closed.
func Run(game *fishing.Game, cat *catalog.Catalog, rc core.RuntimeConfig) error {
	w, h := int(rc.Width), int(rc.Height)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Fishing")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	err := ebiten.RunGame(New(game, cat, w, h))
	game.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
