package ui

import (
	"conway/internal/config"
	"conway/internal/core"
)

// SettingsMenu edits a draft of the TPS and cell colour. The draft only
// takes effect when the caller applies it after ActionSave.
type SettingsMenu struct {
	Title string

	TPS   int
	Color string

	Minus  *Button
	Plus   *Button
	Next   *Button
	Save   *Button
	Cancel *Button

	control core.ParameterControl
	frame   frame
}

// NewSettingsMenu lays out the settings screen for a view of the given size
// and loads the draft from cfg.
func NewSettingsMenu(width, height int, cfg config.Config) *SettingsMenu {
	f := fitFrame(width, height, height/4, 400, 220)
	m := &SettingsMenu{
		Title:   "Settings",
		Minus:   f.button("-", -100, 0, 40, 40),
		Plus:    f.button("+", 60, 0, 40, 40),
		Next:    f.button("Next", -100, 80, 120, 40),
		Save:    f.button("Save", -150, 170, 120, 50),
		Cancel:  f.button("Cancel", 30, 170, 120, 50),
		control: config.TPSControl(),
		frame:   f,
	}
	m.Reset(cfg)
	return m
}

// Reset discards the draft and reloads it from cfg.
func (m *SettingsMenu) Reset(cfg config.Config) {
	m.TPS = m.control.Clamp(cfg.TPS)
	m.Color = cfg.CellColor
	if config.PaletteIndex(m.Color) < 0 {
		m.Color = config.Palette[0].Name
	}
}

// Buttons lists every button on the screen.
func (m *SettingsMenu) Buttons() []*Button {
	return []*Button{m.Minus, m.Plus, m.Next, m.Save, m.Cancel}
}

// CanAdjust reports whether the TPS can move in direction.
func (m *SettingsMenu) CanAdjust(direction int) bool {
	return m.control.CanAdjust(m.TPS, direction)
}

// Update applies one frame of input to the draft.
func (m *SettingsMenu) Update(in Input) Action {
	for _, b := range m.Buttons() {
		b.Hover(in.Cursor)
	}
	switch {
	case m.Minus.Clicked(in):
		m.TPS = m.control.Adjust(m.TPS, -1)
	case m.Plus.Clicked(in):
		m.TPS = m.control.Adjust(m.TPS, 1)
	case m.Next.Clicked(in):
		m.Color = config.Config{CellColor: m.Color}.NextColor()
	case m.Save.Clicked(in):
		return ActionSave
	case m.Cancel.Clicked(in):
		return ActionCancel
	case in.JustPressed(KeyEscape):
		return ActionCancel
	}
	return ActionNone
}

// Apply returns base with the draft settings.
func (m *SettingsMenu) Apply(base config.Config) config.Config {
	return base.WithTPS(m.TPS).WithCellColor(m.Color)
}
