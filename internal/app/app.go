//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/RNA33/ICG/internal/core"
	"github.com/RNA33/ICG/internal/render"
	"github.com/RNA33/ICG/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the parameter panel to the right of
// the canvas.
const HUDWidth = 220

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a generator view to the ebiten.Game interface.
type Game struct {
	view    core.View
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	opts  map[string]string
	names []string
	index int

	scale    int
	paused   bool
	tickOnce bool
	seed     uint64
}

// New constructs a Game for the provided view. The opts map is reused
// when cycling to other registered views.
func New(view core.View, opts map[string]string, scale, sps int, seed uint64) *Game {
	g := &Game{
		opts:  opts,
		names: core.Names(),
		timer: core.NewFixedStep(sps),
		scale: scale,
		seed:  seed,
	}
	for i, name := range g.names {
		if name == view.Name() {
			g.index = i
		}
	}
	g.attach(view)
	return g
}

func (g *Game) attach(view core.View) {
	g.view = view
	size := view.Size()
	g.painter = render.NewGridPainter(size.W, size.H)
	g.overlay = ui.NewOverlay(view, g.scale)
	g.hud = ui.NewHUD(view, HUDWidth)
}

// Reset reinitializes the view state with the provided seed.
func (g *Game) Reset(seed uint64) {
	g.seed = seed
	g.view.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the view at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(uint64(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleView(1)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.view.Size().W * g.scale)
	}

	if g.tickOnce {
		g.view.Step()
		g.tickOnce = false
		return nil
	}
	if g.paused {
		return nil
	}
	for g.timer.ShouldStep() {
		g.view.Step()
	}
	return nil
}

// cycleView replaces the current view with the next registered one,
// rebuilt from the shared option map and reset to the current seed.
func (g *Game) cycleView(dir int) {
	if len(g.names) < 2 {
		return
	}
	g.index = (g.index + dir + len(g.names)) % len(g.names)
	factory, ok := core.Views()[g.names[g.index]]
	if !ok {
		return
	}
	view := factory(g.opts)
	view.Reset(g.seed)
	g.attach(view)
}

// Draw renders the current view state plus the overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if provider, ok := g.view.(paletteProvider); ok {
		g.painter.BlitPalette(screen, g.view.Cells(), provider.Palette(), g.scale)
	} else {
		g.painter.BlitGray(screen, g.view.Cells(), g.scale)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.view.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.view.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
