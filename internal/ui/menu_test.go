package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"conway/internal/config"
)

func clickAt(b *Button) Input {
	c := b.Rect.Min.Add(image.Pt(b.Rect.Dx()/2, b.Rect.Dy()/2))
	return Input{Cursor: c, Click: true}
}

func TestButtonHitTest(t *testing.T) {
	b := NewButton("Start", 10, 20, 100, 40)

	require.True(t, b.Contains(image.Pt(10, 20)))
	require.True(t, b.Contains(image.Pt(109, 59)))
	require.False(t, b.Contains(image.Pt(110, 20)), "right edge is exclusive")
	require.False(t, b.Contains(image.Pt(9, 30)))

	b.Hover(image.Pt(50, 30))
	require.True(t, b.Hovered)
	b.Hover(image.Pt(0, 0))
	require.False(t, b.Hovered)

	require.False(t, b.Clicked(Input{Cursor: image.Pt(50, 30)}), "hover alone is not a click")
	require.True(t, b.Clicked(Input{Cursor: image.Pt(50, 30), Click: true}))
}

func TestStartMenuActions(t *testing.T) {
	m := NewStartMenu(1000, 600)
	require.Len(t, m.Buttons, 2)

	require.Equal(t, ActionStart, m.Update(clickAt(m.Buttons[0])))
	require.Equal(t, ActionQuit, m.Update(clickAt(m.Buttons[1])))
	require.Equal(t, ActionQuit, m.Update(Input{Pressed: []Key{KeyEscape}}))
	require.Equal(t, ActionNone, m.Update(Input{Cursor: image.Pt(1, 1), Click: true}))
}

func TestPauseMenuActions(t *testing.T) {
	m := NewPauseMenu(1000, 600)
	want := []Action{ActionResume, ActionSettings, ActionMenu, ActionQuit}
	require.Len(t, m.Buttons, len(want))
	for i, b := range m.Buttons {
		require.Equal(t, want[i], m.Update(clickAt(b)), b.Label)
	}
	require.Equal(t, ActionResume, m.Update(Input{Pressed: []Key{KeyEscape}}))
}

func TestMenuTracksHover(t *testing.T) {
	m := NewPauseMenu(800, 600)
	target := m.Buttons[2]
	m.Update(Input{Cursor: target.Rect.Min})
	for _, b := range m.Buttons {
		require.Equal(t, b == target, b.Hovered, b.Label)
	}
}

func TestSettingsMenuAdjustsDraft(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewSettingsMenu(1000, 600, cfg)
	require.Equal(t, 10, m.TPS)
	require.Equal(t, "yellow", m.Color)

	require.Equal(t, ActionNone, m.Update(clickAt(m.Plus)))
	require.Equal(t, 11, m.TPS)
	m.Update(clickAt(m.Minus))
	m.Update(clickAt(m.Minus))
	require.Equal(t, 9, m.TPS)

	m.Update(clickAt(m.Next))
	require.Equal(t, "red", m.Color)

	require.Equal(t, ActionSave, m.Update(clickAt(m.Save)))
	next := m.Apply(cfg)
	require.Equal(t, 9, next.TPS)
	require.Equal(t, "red", next.CellColor)
	require.Equal(t, 10, cfg.TPS, "Apply must not modify the base config")
}

func TestSettingsMenuBounds(t *testing.T) {
	m := NewSettingsMenu(1000, 600, config.DefaultConfig().WithTPS(1))
	require.False(t, m.CanAdjust(-1))
	m.Update(clickAt(m.Minus))
	require.Equal(t, 1, m.TPS)

	m.Reset(config.DefaultConfig().WithTPS(60))
	require.False(t, m.CanAdjust(1))
	m.Update(clickAt(m.Plus))
	require.Equal(t, 60, m.TPS)
}

func TestSettingsMenuCancel(t *testing.T) {
	m := NewSettingsMenu(1000, 600, config.DefaultConfig())
	m.Update(clickAt(m.Plus))
	require.Equal(t, ActionCancel, m.Update(clickAt(m.Cancel)))
	require.Equal(t, ActionCancel, m.Update(Input{Pressed: []Key{KeyEscape}}))

	m.Reset(config.DefaultConfig())
	require.Equal(t, 10, m.TPS, "Reset discards the draft")
}

func TestSettingsMenuColorCyclesThroughPalette(t *testing.T) {
	m := NewSettingsMenu(1000, 600, config.DefaultConfig())
	for i := 0; i < len(config.Palette); i++ {
		m.Update(clickAt(m.Next))
	}
	require.Equal(t, "yellow", m.Color)
}

func TestDefaultLayoutPositions(t *testing.T) {
	start := NewStartMenu(1000, 600)
	require.Equal(t, image.Rect(440, 250, 560, 300), start.Buttons[0].Rect)
	require.Equal(t, image.Rect(440, 320, 560, 370), start.Buttons[1].Rect)

	pause := NewPauseMenu(1000, 600)
	require.Equal(t, image.Rect(420, 460, 580, 510), pause.Buttons[3].Rect)

	s := NewSettingsMenu(1000, 600, config.DefaultConfig())
	require.Equal(t, image.Rect(400, 150, 440, 190), s.Minus.Rect)
	require.Equal(t, image.Rect(530, 320, 650, 370), s.Cancel.Rect)
}

func TestMenusFitView(t *testing.T) {
	sizes := []image.Point{
		{1000, 600},
		{config.MinWindowWidth, config.MinWindowHeight},
		{1000, 200},
		{300, 800},
		{100, 80},
		{2000, 1200},
	}
	for _, size := range sizes {
		view := image.Rect(0, 0, size.X, size.Y)
		menus := map[string][]*Button{
			"start":    NewStartMenu(size.X, size.Y).Buttons,
			"pause":    NewPauseMenu(size.X, size.Y).Buttons,
			"settings": NewSettingsMenu(size.X, size.Y, config.DefaultConfig()).Buttons(),
		}
		for name, buttons := range menus {
			for i, b := range buttons {
				require.False(t, b.Rect.Empty(), "%s %q in %v", name, b.Label, size)
				require.True(t, b.Rect.In(view), "%s %q at %v outside %v", name, b.Label, b.Rect, size)
				for _, other := range buttons[i+1:] {
					require.False(t, b.Rect.Overlaps(other.Rect), "%s %q overlaps %q in %v", name, b.Label, other.Label, size)
				}
			}
		}
	}
}

func TestSmallViewMenusStillClickable(t *testing.T) {
	m := NewPauseMenu(config.MinWindowWidth, config.MinWindowHeight)
	want := []Action{ActionResume, ActionSettings, ActionMenu, ActionQuit}
	for i, b := range m.Buttons {
		require.Equal(t, want[i], m.Update(clickAt(b)), b.Label)
	}
}
