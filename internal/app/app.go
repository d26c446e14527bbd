//go:build ebiten

package app

import (
	"errors"

	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	title   string
}

// New constructs a Game driving the provided controller.
func New(ctrl *Controller) *Game {
	return &Game{ctrl: ctrl}
}

// Update polls input, forwards it to the controller and keeps the window
// title in sync with the run state.
func (g *Game) Update() error {
	if err := g.ctrl.Update(ui.Poll()); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	if t := g.ctrl.Title(); t != g.title {
		ebiten.SetWindowTitle(t)
		g.title = t
	}
	return nil
}

// Draw renders the active screen.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.ctrl.Config()
	switch g.ctrl.Screen() {
	case ScreenStart:
		ui.DrawMenu(screen, g.ctrl.StartMenu(), cfg)
	case ScreenPaused:
		ui.DrawMenu(screen, g.ctrl.PauseMenu(), cfg)
	case ScreenSettings:
		ui.DrawSettings(screen, g.ctrl.SettingsMenu(), cfg)
	case ScreenPlaying:
		sim := g.ctrl.Sim()
		if sim == nil {
			return
		}
		size := sim.Size()
		if g.painter == nil {
			g.painter = render.NewGridPainter(size.W, size.H, cfg.CellSize)
		} else if w, h := g.painter.Size(); w != size.W || h != size.H {
			g.painter = render.NewGridPainter(size.W, size.H, cfg.CellSize)
		}
		screen.Fill(cfg.Background)
		g.painter.Draw(screen, sim, cfg.CellRGBA(), cfg.Background, cfg.GridColor)
		if g.ctrl.HUDVisible() {
			ui.DrawHUD(screen, g.ctrl.Status())
		}
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctrl.Config().WindowSize()
}
