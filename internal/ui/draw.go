//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"conway/internal/config"
)

var (
	buttonColor      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	buttonHoverColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	buttonOffColor   = color.RGBA{R: 120, G: 110, B: 60, A: 255}
	textColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	titleScale  = 4
	buttonScale = 2
	labelScale  = 2
	textPadding = 4
)

// DrawMenu paints a full-screen menu using the session colours.
func DrawMenu(screen *ebiten.Image, m *Menu, cfg config.Config) {
	screen.Fill(cfg.Background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawTitle(screen, m.Title, w, titleY(h), cfg.CellRGBA())
	for _, b := range m.Buttons {
		drawButton(screen, b, true, cfg.Background)
	}
}

// DrawSettings paints the settings screen with the current draft values.
func DrawSettings(screen *ebiten.Image, m *SettingsMenu, cfg config.Config) {
	screen.Fill(cfg.Background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	f := m.frame
	drawTitle(screen, m.Title, w, h*2/15, cfg.CellRGBA())

	tpsY := m.Minus.Rect.Min.Y + m.Minus.Rect.Dy()/2
	colorY := m.Next.Rect.Min.Y + m.Next.Rect.Dy()/2
	scale := fitScale("Color:", labelScale, f.px(100), m.Next.Rect.Dy())

	drawLeft(screen, "TPS:", f.x(-200), tpsY, scale, textColor)
	drawCentered(screen, strconv.Itoa(m.TPS), f.cx, tpsY, scale, textColor)
	drawLeft(screen, "Color:", f.x(-200), colorY, scale, textColor)

	drawButton(screen, m.Minus, m.CanAdjust(-1), cfg.Background)
	drawButton(screen, m.Plus, m.CanAdjust(1), cfg.Background)
	drawButton(screen, m.Next, true, cfg.Background)
	drawButton(screen, m.Save, true, cfg.Background)
	drawButton(screen, m.Cancel, true, cfg.Background)

	swatch := config.Config{CellColor: m.Color}.CellRGBA()
	nameX := f.x(30)
	drawLeft(screen, m.Color, nameX, colorY, scale, textColor)
	nameW := text.BoundString(basicfont.Face7x13, m.Color).Dx() * scale
	side := max(f.px(40), 1)
	vector.DrawFilledRect(screen, float32(nameX+nameW+f.px(20)), float32(colorY-side/2), float32(side), float32(side), swatch, false)
}

func drawButton(screen *ebiten.Image, b *Button, enabled bool, labelColor color.Color) {
	fill := buttonColor
	switch {
	case !enabled:
		fill = buttonOffColor
	case b.Hovered:
		fill = buttonHoverColor
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	cy := r.Min.Y + r.Dy()/2
	scale := fitScale(b.Label, buttonScale, r.Dx()-textPadding, r.Dy()-textPadding)
	drawCentered(screen, b.Label, r.Min.X+r.Dx()/2, cy, scale, labelColor)
}

// drawTitle centres s at cy, shrinking it to fit the view width.
func drawTitle(dst *ebiten.Image, s string, width, cy int, clr color.Color) {
	scale := fitScale(s, titleScale, width-2*textPadding, cy*2)
	drawCentered(dst, s, width/2, cy, scale, clr)
}

// fitScale returns the largest integer scale up to maxScale at which s fits
// in a w x h box, and never less than 1.
func fitScale(s string, maxScale, w, h int) int {
	bounds := text.BoundString(basicfont.Face7x13, s)
	for scale := maxScale; scale > 1; scale-- {
		if bounds.Dx()*scale <= w && bounds.Dy()*scale <= h {
			return scale
		}
	}
	return 1
}

// drawCentered draws s scaled and centred on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, cx, cy, scale int, clr color.Color) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	x := cx - bounds.Dx()*scale/2 - bounds.Min.X*scale
	y := cy - bounds.Dy()*scale/2 - bounds.Min.Y*scale
	drawText(dst, s, x, y, scale, clr)
}

// drawLeft draws s scaled with its left edge at x, vertically centred on cy.
func drawLeft(dst *ebiten.Image, s string, x, cy, scale int, clr color.Color) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	y := cy - bounds.Dy()*scale/2 - bounds.Min.Y*scale
	drawText(dst, s, x, y, scale, clr)
}

// drawText draws s with its baseline origin at (x, y).
func drawText(dst *ebiten.Image, s string, x, y, scale int, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}
