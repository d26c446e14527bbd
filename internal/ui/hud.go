//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding  = 4
	hudBaseline = 13
)

var hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 180}

// DrawHUD paints the status line in the top-left corner of the grid view.
func DrawHUD(screen *ebiten.Image, s Status) {
	line := s.Text()
	bounds := text.BoundString(basicfont.Face7x13, line)
	w := bounds.Dx() + 2*hudPadding
	h := hudBaseline + 2*hudPadding
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), hudBackground, false)
	text.Draw(screen, line, basicfont.Face7x13, hudPadding, hudPadding+hudBaseline-2, textColor)
}
