package app

import (
	"errors"
	"log/slog"

	"conway/internal/config"
	"conway/internal/core"
	"conway/internal/life"
	"conway/internal/ui"
)

// ErrQuit is returned by Controller.Update when the user asked to exit.
var ErrQuit = errors.New("quit requested")

// Screen identifies which view the shell is showing.
type Screen int

const (
	// ScreenStart is the title screen shown at launch.
	ScreenStart Screen = iota
	// ScreenPlaying shows the grid and takes editing keys.
	ScreenPlaying
	// ScreenPaused shows the pause menu over a frozen session.
	ScreenPaused
	// ScreenSettings edits the TPS and cell colour draft.
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}

type ticker interface {
	ShouldStep() bool
	SetTPS(tps int)
}

// Controller owns the simulation session and routes input between the menu
// screens and the grid. It has no rendering dependencies.
type Controller struct {
	cfg    config.Config
	log    *slog.Logger
	sim    *life.Life
	ticker ticker
	screen Screen
	hud    bool

	start    *ui.Menu
	pause    *ui.Menu
	settings *ui.SettingsMenu
}

// NewController prepares the start screen for cfg. The session is created
// when the user first presses Start.
func NewController(cfg config.Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	w, h := cfg.WindowSize()
	return &Controller{
		cfg:      cfg,
		log:      logger,
		ticker:   core.NewFixedStep(cfg.TPS),
		screen:   ScreenStart,
		hud:      true,
		start:    ui.NewStartMenu(w, h),
		pause:    ui.NewPauseMenu(w, h),
		settings: ui.NewSettingsMenu(w, h, cfg),
	}
}

// Config returns the configuration of the current session.
func (c *Controller) Config() config.Config { return c.cfg }

// Screen returns the active view.
func (c *Controller) Screen() Screen { return c.screen }

// Sim returns the current session, or nil before the first start.
func (c *Controller) Sim() *life.Life { return c.sim }

// StartMenu exposes the start screen for rendering.
func (c *Controller) StartMenu() *ui.Menu { return c.start }

// PauseMenu exposes the pause screen for rendering.
func (c *Controller) PauseMenu() *ui.Menu { return c.pause }

// SettingsMenu exposes the settings screen for rendering.
func (c *Controller) SettingsMenu() *ui.SettingsMenu { return c.settings }

// HUDVisible reports whether the status line should be drawn over the grid.
func (c *Controller) HUDVisible() bool { return c.hud }

// Status summarises the session for the HUD.
func (c *Controller) Status() ui.Status {
	st := ui.Status{TPS: c.cfg.TPS}
	if c.sim != nil {
		st.Running = c.sim.Running()
		st.Generation = c.sim.Generation()
		st.Population = c.sim.Population()
	}
	return st
}

// Title is the window title reflecting the run state.
func (c *Controller) Title() string {
	state := "stopped"
	if c.sim != nil && c.sim.Running() {
		state = "running"
	}
	return "Conway's Game of Life (" + state + ")"
}

// Update applies one frame of input. It returns ErrQuit when the shell
// should exit. A window close request quits from every screen.
func (c *Controller) Update(in ui.Input) error {
	if in.Close {
		c.log.Info("Window close requested.", "screen", c.screen.String())
		return ErrQuit
	}
	switch c.screen {
	case ScreenStart:
		return c.updateStart(in)
	case ScreenPlaying:
		c.updatePlaying(in)
	case ScreenPaused:
		return c.updatePaused(in)
	case ScreenSettings:
		c.updateSettings(in)
	}
	return nil
}

func (c *Controller) updateStart(in ui.Input) error {
	switch c.start.Update(in) {
	case ui.ActionStart:
		if c.sim == nil {
			c.newSession()
		}
		c.setScreen(ScreenPlaying)
	case ui.ActionQuit:
		c.log.Info("Quit from start screen.")
		return ErrQuit
	}
	return nil
}

func (c *Controller) updatePlaying(in ui.Input) {
	if in.JustPressed(ui.KeyEscape) {
		c.setScreen(ScreenPaused)
		return
	}
	if in.JustPressed(ui.KeySpace) {
		c.sim.SetRunning(!c.sim.Running())
		c.log.Debug("Run state toggled.", "running", c.sim.Running(), "generation", c.sim.Generation())
	}
	if in.JustPressed(ui.KeyC) {
		c.sim.Clear()
	}
	if in.JustPressed(ui.KeyR) {
		c.sim.Randomize(c.cfg.Seed, c.cfg.Soup)
	}
	if in.JustPressed(ui.KeyH) {
		c.hud = !c.hud
	}
	if in.Click {
		if x, y, ok := c.cellAt(in.Cursor.X, in.Cursor.Y); ok {
			c.sim.Toggle(x, y)
		}
	}
	if c.ticker.ShouldStep() {
		c.sim.Step()
	}
}

func (c *Controller) updatePaused(in ui.Input) error {
	switch c.pause.Update(in) {
	case ui.ActionResume:
		c.setScreen(ScreenPlaying)
	case ui.ActionSettings:
		c.settings.Reset(c.cfg)
		c.setScreen(ScreenSettings)
	case ui.ActionMenu:
		c.setScreen(ScreenStart)
	case ui.ActionQuit:
		c.log.Info("Quit from pause screen.")
		return ErrQuit
	}
	return nil
}

func (c *Controller) updateSettings(in ui.Input) {
	switch c.settings.Update(in) {
	case ui.ActionSave:
		c.cfg = c.settings.Apply(c.cfg)
		c.ticker.SetTPS(c.cfg.TPS)
		c.log.Info("Settings saved.", "tps", c.cfg.TPS, "cell_color", c.cfg.CellColor)
		c.newSession()
		c.setScreen(ScreenPlaying)
	case ui.ActionCancel:
		c.setScreen(ScreenPlaying)
	}
}

// cellAt maps a pixel position to grid coordinates.
func (c *Controller) cellAt(px, py int) (int, int, bool) {
	if px < 0 || py < 0 || c.cfg.CellSize <= 0 {
		return 0, 0, false
	}
	return px / c.cfg.CellSize, py / c.cfg.CellSize, true
}

func (c *Controller) newSession() {
	c.sim = life.New(c.cfg.Width, c.cfg.Height)
	c.log.Info("Session started.", "width", c.cfg.Width, "height", c.cfg.Height, "tps", c.cfg.TPS)
}

func (c *Controller) setScreen(s Screen) {
	if s == c.screen {
		return
	}
	c.log.Debug("Screen changed.", "from", c.screen.String(), "to", s.String())
	c.screen = s
}
